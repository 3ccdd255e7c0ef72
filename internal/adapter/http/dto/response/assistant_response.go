package response

import "workorder_invoicing/internal/usecase"

type AssistantResponse struct {
	Response string `json:"response"`
}

type ChatResponse struct {
	Response          string `json:"response"`
	Command           string `json:"command"`
	FallbackScheduled bool   `json:"fallback_scheduled"`
}

func FromChatReply(r usecase.ChatReply) ChatResponse {
	return ChatResponse{
		Response:          r.Response,
		Command:           string(r.Command),
		FallbackScheduled: r.FallbackScheduled,
	}
}
