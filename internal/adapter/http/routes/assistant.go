package routes

import (
	"workorder_invoicing/internal/adapter/http/handlers"
	"workorder_invoicing/internal/app"

	"github.com/gin-gonic/gin"
)

const (
	PathWebScrape  = "/webScrape"
	PathChatWithAI = "/chatWithAI"
	PathChat       = "/chat"
)

func addAssistantRoutes(rg gin.IRoutes, a *app.App) {
	h := handlers.NewAssistantHandler(a.Assistant, a.QueryRouter)

	rg.GET(PathWebScrape, h.WebScrape)
	rg.POST(PathChatWithAI, h.ChatWithAI)
	rg.POST(PathChat, h.Chat)
}
