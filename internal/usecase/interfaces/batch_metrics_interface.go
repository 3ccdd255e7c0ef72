package interfaces

import (
	"time"

	"workorder_invoicing/internal/domain/entities"
)

// IBatchMetrics receives batch processor observations.
type IBatchMetrics interface {
	ObserveRun(outcome string, duration time.Duration)
	ObserveOrder(status entities.WorkOrderStatus)
	ObserveDelivery(step string, success bool, duration time.Duration)
}
