package request

type ChatWithAIRequest struct {
	UserInput string `json:"userInput"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
