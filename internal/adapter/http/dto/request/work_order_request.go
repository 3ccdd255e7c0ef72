package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"workorder_invoicing/internal/usecase"
)

var ErrInvalidWorkOrderID = errors.New("invalid work order id")

type CreateWorkOrderRequest struct {
	ClientName         string  `json:"client_name" binding:"required"`
	ServiceDescription string  `json:"service_description" binding:"required"`
	HoursWorked        float64 `json:"hours_worked" binding:"required"`
	HourlyRate         float64 `json:"hourly_rate" binding:"required"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		ClientName:         r.ClientName,
		ServiceDescription: r.ServiceDescription,
		HoursWorked:        r.HoursWorked,
		HourlyRate:         r.HourlyRate,
	}
}

// WorkOrderID accepts a work order id sent either as a JSON number or as a numeric string.
type WorkOrderID struct {
	raw string
}

func (id *WorkOrderID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		id.raw = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		id.raw = strings.TrimSpace(s)
		return nil
	}
	id.raw = string(b)
	return nil
}

// GenerateInvoiceRequest is the body of POST /generateInvoice.
type GenerateInvoiceRequest struct {
	WorkOrderID WorkOrderID `json:"workOrderId"`
}

func (r GenerateInvoiceRequest) ResolveWorkOrderID() (int, error) {
	if r.WorkOrderID.raw == "" {
		return 0, ErrInvalidWorkOrderID
	}
	id, err := strconv.Atoi(r.WorkOrderID.raw)
	if err != nil {
		return 0, ErrInvalidWorkOrderID
	}
	return id, nil
}

type WorkOrderStatusRequest struct {
	InvoiceID string `json:"invoiceId"`
}
