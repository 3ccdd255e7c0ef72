package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"workorder_invoicing/internal/adapter/http/handlers/mocks"
	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase"
	"workorder_invoicing/internal/usecase/interfaces"
	"workorder_invoicing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const invoiceBody = `{"invoice_id":"INV-1","client_name":"Acme","service_description":"Repair","amount_due":100,"due_date":"2025-03-17T12:00:00Z","hours_worked":2,"hourly_rate":50,"category":"Repair"}`

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/generateInvoice", h.GenerateInvoice)
	r.POST("/sendInvoice", h.SendInvoice)
	r.POST("/yardiMock", h.SubmitToBilling)
	return r
}

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		w := performJSON(r, http.MethodPost, "/generateInvoice", `{"workOrderId":"abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		invoices.EXPECT().GenerateInvoice(gomock.Any(), 42).Return(entities.Invoice{}, usecase.ErrWorkOrderNotFound)

		w := performJSON(r, http.MethodPost, "/generateInvoice", `{"workOrderId":42}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Message != "Work Order Not Found" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("string id accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		invoices.EXPECT().GenerateInvoice(gomock.Any(), 1).Return(entities.Invoice{
			InvoiceID: "INV-1", ClientName: "Acme", AmountDue: 100, Category: entities.CategoryRepair,
		}, nil)

		w := performJSON(r, http.MethodPost, "/generateInvoice", `{"workOrderId":"1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["invoice_id"] != "INV-1" || body["category"] != "Repair" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_SendInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invoice missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		w := performJSON(r, http.MethodPost, "/sendInvoice", `{"client_email":"a@b.c"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Message != "Invoice data missing" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		delivery.EXPECT().SendToClient(gomock.Any(), "a@b.c", gomock.Any()).Return(entities.StoredInvoiceRecord{}, interfaces.ErrStorageUnavailable)

		w := performJSON(r, http.MethodPost, "/sendInvoice", `{"client_email":"a@b.c","invoice":`+invoiceBody+`}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Message != "Failed to store invoice" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		ts := time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)
		delivery.EXPECT().SendToClient(gomock.Any(), "a@b.c", gomock.Any()).DoAndReturn(
			func(_ any, email string, inv entities.Invoice) (entities.StoredInvoiceRecord, error) {
				if inv.InvoiceID != "INV-1" || inv.AmountDue != 100 {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				return entities.StoredInvoiceRecord{ClientEmail: email, InvoiceID: inv.InvoiceID, AmountDue: inv.AmountDue, Timestamp: ts}, nil
			})

		w := performJSON(r, http.MethodPost, "/sendInvoice", `{"client_email":"a@b.c","invoice":`+invoiceBody+`}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Message      string         `json:"message"`
			EmailContent map[string]any `json:"emailContent"`
		}
		decodeBody(t, w, &body)
		if body.Message != "Invoice stored successfully and email sent to client!" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
		if body.EmailContent["invoice_id"] != "INV-1" || body.EmailContent["client_email"] != "a@b.c" {
			t.Fatalf("unexpected email content: %v", body.EmailContent)
		}
	})
}

func TestInvoiceHandler_SubmitToBilling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invoice missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		w := performJSON(r, http.MethodPost, "/yardiMock", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		delivery.EXPECT().SubmitToBilling(gomock.Any(), gomock.Any()).Return(entities.BillingAck{}, errors.Join(interfaces.ErrUpstreamFailure, errors.New("timeout")))

		w := performJSON(r, http.MethodPost, "/yardiMock", `{"invoice":`+invoiceBody+`}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		delivery := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(invoices, delivery))

		delivery.EXPECT().SubmitToBilling(gomock.Any(), gomock.Any()).Return(entities.BillingAck{
			Status:    entities.DeliveryStatusSuccess,
			Message:   "Invoice INV-1 has been received and processed by Yardi.",
			Timestamp: time.Now(),
		}, nil)

		w := performJSON(r, http.MethodPost, "/yardiMock", `{"invoice":`+invoiceBody+`}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["status"] != "Success" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
