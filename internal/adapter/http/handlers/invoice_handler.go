package handlers

import (
	"errors"
	"log"
	"net/http"

	request "workorder_invoicing/internal/adapter/http/dto/request"
	response "workorder_invoicing/internal/adapter/http/dto/response"
	"workorder_invoicing/internal/usecase"
	"workorder_invoicing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkOrderID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Work order id is required", http.StatusBadRequest)
	errInvoiceNotFound    = pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work Order Not Found", http.StatusNotFound)
	errInvoiceMissing     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invoice data missing", http.StatusBadRequest)
	errInvalidRecipient   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid client email", http.StatusBadRequest)
)

// InvoiceHandler serves invoice generation and delivery.
type InvoiceHandler struct {
	invoices usecase.IInvoiceUseCase
	delivery usecase.IDeliveryUseCase
}

func NewInvoiceHandler(invoices usecase.IInvoiceUseCase, delivery usecase.IDeliveryUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, delivery: delivery}
}

// GenerateInvoice godoc
// @Summary      Generate the invoice for a work order
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.GenerateInvoiceRequest  true  "Work order id"
// @Success      200   {object}  response.InvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /generateInvoice [post]
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var payload request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderID.HTTPStatus, errInvalidWorkOrderID.ToHTTPError())
		return
	}
	id, err := payload.ResolveWorkOrderID()
	if err != nil {
		c.JSON(errInvalidWorkOrderID.HTTPStatus, errInvalidWorkOrderID.ToHTTPError())
		return
	}

	invoice, err := h.invoices.GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// SendInvoice godoc
// @Summary      Email an invoice to the client and store it
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.SendInvoiceRequest  true  "Invoice and recipient"
// @Success      200   {object}  response.SendInvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /sendInvoice [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	var payload request.SendInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvoiceMissing.HTTPStatus, errInvoiceMissing.ToHTTPError())
		return
	}
	invoice, ok := payload.Invoice.ToEntity()
	if !ok {
		c.JSON(errInvoiceMissing.HTTPStatus, errInvoiceMissing.ToHTTPError())
		return
	}

	rec, err := h.delivery.SendToClient(c.Request.Context(), payload.ClientEmail, invoice)
	if err != nil {
		log.Printf("[invoice][handler] send failed invoice_id=%s err=%v", invoice.InvoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoredInvoice(rec))
}

// SubmitToBilling godoc
// @Summary      Submit an invoice to the billing system
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.BillingSubmitRequest  true  "Invoice"
// @Success      200   {object}  response.BillingAckResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /yardiMock [post]
func (h *InvoiceHandler) SubmitToBilling(c *gin.Context) {
	var payload request.BillingSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvoiceMissing.HTTPStatus, errInvoiceMissing.ToHTTPError())
		return
	}
	invoice, ok := payload.Invoice.ToEntity()
	if !ok {
		c.JSON(errInvoiceMissing.HTTPStatus, errInvoiceMissing.ToHTTPError())
		return
	}

	ack, err := h.delivery.SubmitToBilling(c.Request.Context(), invoice)
	if err != nil {
		log.Printf("[invoice][handler] billing submit failed invoice_id=%s err=%v", invoice.InvoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingAck(ack))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return errInvoiceNotFound
	case errors.Is(err, usecase.ErrInvalidInvoice):
		return errInvoiceMissing
	case errors.Is(err, usecase.ErrInvalidRecipient):
		return errInvalidRecipient
	default:
		return mapCommonError(err, "Failed to store invoice")
	}
}
