// Package invoicing derives invoices from work orders.
//
// Everything here is pure: the caller supplies the clock reading, so the same order and
// the same instant always produce the same invoice.
package invoicing

import (
	"strings"
	"time"

	"workorder_invoicing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentTerm is the time between generation and due date.
const PaymentTerm = 7 * 24 * time.Hour

type categoryRule struct {
	keyword  string
	category entities.Category
}

// Checked in order; the first keyword found wins.
var categoryRules = []categoryRule{
	{keyword: "plumbing", category: entities.CategoryMaintenance},
	{keyword: "electrical", category: entities.CategoryRepair},
}

// Generate builds the invoice for order as of now.
func Generate(order entities.WorkOrder, now time.Time) entities.Invoice {
	return entities.Invoice{
		InvoiceID:          order.InvoiceID(),
		ClientName:         order.ClientName,
		ServiceDescription: order.ServiceDescription,
		AmountDue:          order.TotalCost,
		DueDate:            now.UTC().Add(PaymentTerm),
		HoursWorked:        order.HoursWorked,
		HourlyRate:         order.HourlyRate,
		Category:           Categorize(order.ServiceDescription),
	}
}

// Categorize classifies a service description by case-insensitive keyword match.
func Categorize(description string) entities.Category {
	d := strings.ToLower(description)
	for _, r := range categoryRules {
		if strings.Contains(d, r.keyword) {
			return r.category
		}
	}
	return entities.CategoryGeneralService
}

// TotalCost returns hours * rate rounded to cents.
func TotalCost(hoursWorked, hourlyRate float64) float64 {
	total := decimal.NewFromFloat(hoursWorked).Mul(decimal.NewFromFloat(hourlyRate)).Round(2)
	f, _ := total.Float64()
	return f
}
