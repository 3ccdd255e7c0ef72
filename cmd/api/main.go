package main

import (
	_ "workorder_invoicing/docs"
	"workorder_invoicing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Work Order Invoicing API
// @version         1.0
// @description     Work orders, invoice generation and delivery, batch processing and a chat assistant.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
