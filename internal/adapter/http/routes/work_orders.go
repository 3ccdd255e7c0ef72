package routes

import (
	"workorder_invoicing/internal/adapter/http/handlers"
	"workorder_invoicing/internal/app"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders         = "/workOrders"
	PathGenerateInvoice    = "/generateInvoice"
	PathAutoProcess        = "/autoProcess"
	PathSendInvoice        = "/sendInvoice"
	PathYardiMock          = "/yardiMock"
	PathGetWorkOrderStatus = "/getWorkOrderStatus"
)

func addWorkOrderRoutes(rg gin.IRoutes, a *app.App) {
	workOrderHandler := handlers.NewWorkOrderHandler(a.WorkOrders)
	invoiceHandler := handlers.NewInvoiceHandler(a.Invoices, a.Delivery)
	batchHandler := handlers.NewBatchHandler(a.Batch)

	rg.GET(PathWorkOrders, workOrderHandler.ListWorkOrders)
	rg.POST(PathWorkOrders, workOrderHandler.CreateWorkOrder)
	rg.POST(PathGetWorkOrderStatus, workOrderHandler.GetWorkOrderStatus)

	rg.POST(PathGenerateInvoice, invoiceHandler.GenerateInvoice)
	rg.POST(PathSendInvoice, invoiceHandler.SendInvoice)
	rg.POST(PathYardiMock, invoiceHandler.SubmitToBilling)

	rg.POST(PathAutoProcess, batchHandler.AutoProcess)
}
