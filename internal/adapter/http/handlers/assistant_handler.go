package handlers

import (
	"errors"
	"net/http"

	request "workorder_invoicing/internal/adapter/http/dto/request"
	response "workorder_invoicing/internal/adapter/http/dto/response"
	"workorder_invoicing/internal/usecase"
	"workorder_invoicing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingURL       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing 'url' parameter.", http.StatusBadRequest)
	errMissingUserInput = pkg.NewDomainErrorSimple("INVALID_REQUEST", "User input is required", http.StatusBadRequest)
	errMissingMessage   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Message is required", http.StatusBadRequest)
)

// AssistantHandler serves the scrape proxy, the chat model proxy and the chat router.
type AssistantHandler struct {
	assistant usecase.IAssistantUseCase
	router    usecase.IQueryRouterUseCase
}

func NewAssistantHandler(assistant usecase.IAssistantUseCase, router usecase.IQueryRouterUseCase) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, router: router}
}

// WebScrape godoc
// @Summary      Forward a query to the scrape service
// @Tags         assistant
// @Produce      json
// @Param        url  query     string  true  "Query"
// @Success      200  {object}  response.AssistantResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /webScrape [get]
func (h *AssistantHandler) WebScrape(c *gin.Context) {
	answer, err := h.assistant.Scrape(c.Request.Context(), c.Query("url"))
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AssistantResponse{Response: answer})
}

// ChatWithAI godoc
// @Summary      Ask the language model
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChatWithAIRequest  true  "User input"
// @Success      200   {object}  response.AssistantResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /chatWithAI [post]
func (h *AssistantHandler) ChatWithAI(c *gin.Context) {
	var payload request.ChatWithAIRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingUserInput.HTTPStatus, errMissingUserInput.ToHTTPError())
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), payload.UserInput)
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AssistantResponse{Response: reply})
}

// Chat godoc
// @Summary      Route a chat message
// @Description  "start ai processing" starts a batch, an INV-<n> id looks up a status, anything else is scraped.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChatRequest  true  "Message"
// @Success      200   {object}  response.ChatResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingMessage.HTTPStatus, errMissingMessage.ToHTTPError())
		return
	}

	reply, err := h.router.Route(c.Request.Context(), payload.Message)
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChatReply(reply))
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingScrapeQuery):
		return errMissingURL
	case errors.Is(err, usecase.ErrMissingUserInput):
		return errMissingUserInput
	case errors.Is(err, usecase.ErrEmptyQuery):
		return errMissingMessage
	default:
		return mapCommonError(err, "Internal Server Error")
	}
}
