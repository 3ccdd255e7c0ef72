package handlers

import (
	"log"
	"net/http"

	response "workorder_invoicing/internal/adapter/http/dto/response"
	"workorder_invoicing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	usecase usecase.IBatchProcessorUseCase
}

func NewBatchHandler(uc usecase.IBatchProcessorUseCase) *BatchHandler {
	return &BatchHandler{usecase: uc}
}

// AutoProcess godoc
// @Summary      Run the batch processor over new work orders
// @Description  Blocks until the batch finishes. A client disconnect does not stop a started batch.
// @Tags         batch
// @Produce      json
// @Success      200  {object}  response.AutoProcessResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /autoProcess [post]
func (h *BatchHandler) AutoProcess(c *gin.Context) {
	result, err := h.usecase.Run(c.Request.Context())
	if err != nil {
		log.Printf("[batch][handler] run failed err=%v", err)
		appErr := mapCommonError(err, "Failed to process work orders")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatchResult(result))
}
