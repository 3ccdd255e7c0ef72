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
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER", "Invalid work order payload", http.StatusBadRequest)
	errMissingInvoiceID        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invoice ID is required", http.StatusBadRequest)
)

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// ListWorkOrders godoc
// @Summary      List work orders
// @Tags         work-orders
// @Produce      json
// @Success      200  {array}   response.WorkOrderResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /workOrders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[workorder][handler] list failed err=%v", err)
		appErr := mapCommonError(err, "Failed to load work orders")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// CreateWorkOrder godoc
// @Summary      Create a work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateWorkOrderRequest  true  "Work order"
// @Success      201   {object}  response.WorkOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /workOrders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

// GetWorkOrderStatus godoc
// @Summary      Look up a work order by invoice id
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.WorkOrderStatusRequest  true  "Invoice id"
// @Success      200   {object}  response.WorkOrderStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /getWorkOrderStatus [post]
func (h *WorkOrderHandler) GetWorkOrderStatus(c *gin.Context) {
	var payload request.WorkOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingInvoiceID.HTTPStatus, errMissingInvoiceID.ToHTTPError())
		return
	}

	view, err := h.usecase.StatusByInvoiceID(c.Request.Context(), payload.InvoiceID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderStatus(view))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrder):
		return errInvalidWorkOrderPayload
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return errMissingInvoiceID
	default:
		return mapCommonError(err, "Internal Server Error")
	}
}
