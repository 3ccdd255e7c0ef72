package handlers

import (
	"errors"
	"net/http"
	"testing"

	"workorder_invoicing/internal/adapter/http/handlers/mocks"
	"workorder_invoicing/internal/usecase"
	"workorder_invoicing/internal/usecase/interfaces"
	"workorder_invoicing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAssistantRouter(h *AssistantHandler) *gin.Engine {
	r := gin.New()
	r.GET("/webScrape", h.WebScrape)
	r.POST("/chatWithAI", h.ChatWithAI)
	r.POST("/chat", h.Chat)
	return r
}

func TestAssistantHandler_WebScrape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		assistant.EXPECT().Scrape(gomock.Any(), "").Return("", usecase.ErrMissingScrapeQuery)

		w := performJSON(r, http.MethodGet, "/webScrape", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Message != "Missing 'url' parameter." {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("upstream status relayed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		assistant.EXPECT().Scrape(gomock.Any(), "pricing").Return("", &interfaces.UpstreamStatusError{Service: "scrape", StatusCode: http.StatusServiceUnavailable, Status: "503 Service Unavailable"})

		w := performJSON(r, http.MethodGet, "/webScrape?url=pricing", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		assistant.EXPECT().Scrape(gomock.Any(), "pricing").Return("42", nil)

		w := performJSON(r, http.MethodGet, "/webScrape?url=pricing", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		decodeBody(t, w, &body)
		if body["response"] != "42" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAssistantHandler_ChatWithAI(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		assistant.EXPECT().Chat(gomock.Any(), "").Return("", usecase.ErrMissingUserInput)

		w := performJSON(r, http.MethodPost, "/chatWithAI", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Message != "User input is required" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("model unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		assistant.EXPECT().Chat(gomock.Any(), "hi").Return("", errors.Join(interfaces.ErrUpstreamFailure, errors.New("dial")))

		w := performJSON(r, http.MethodPost, "/chatWithAI", `{"userInput":"hi"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		assistant.EXPECT().Chat(gomock.Any(), "hi").Return("hello", nil)

		w := performJSON(r, http.MethodPost, "/chatWithAI", `{"userInput":"hi"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAssistantHandler_Chat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		router.EXPECT().Route(gomock.Any(), "  ").Return(usecase.ChatReply{}, usecase.ErrEmptyQuery)

		w := performJSON(r, http.MethodPost, "/chat", `{"message":"  "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("batch started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		router := mocks.NewMockIQueryRouterUseCase(ctrl)
		r := newAssistantRouter(NewAssistantHandler(assistant, router))

		router.EXPECT().Route(gomock.Any(), "Start AI processing").Return(usecase.ChatReply{
			Response: usecase.ReplyStartingBatch,
			Command:  usecase.CommandStartBatch,
		}, nil)

		w := performJSON(r, http.MethodPost, "/chat", `{"message":"Start AI processing"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["response"] != usecase.ReplyStartingBatch || body["command"] != "start_batch" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
