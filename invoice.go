package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Invoice Model
// ---------------------------------------------------------------------------

var ErrInvalidInvoice = errors.New("invalid invoice")

var hundred = decimal.NewFromInt(100)

// LineItem is a single invoice row.
type LineItem struct {
	Description string          `json:"desc"`
	Quantity    int64           `json:"qty"`
	UnitPrice   decimal.Decimal `json:"price"`
}

// LineTotal is quantity times unit price at full precision.
func (it LineItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

type Invoice struct {
	Number          string          `json:"number,omitempty"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	Items           []LineItem      `json:"items"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate"`
	IssueDate       time.Time       `json:"issue_date,omitempty"`
	DueDate         time.Time       `json:"due_date,omitempty"`
}

// Subtotal sums the unrounded line totals.
func (inv Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func (inv Invoice) TaxAmount() decimal.Decimal {
	return inv.Subtotal().Mul(inv.TaxRatePercent).Div(hundred)
}

func (inv Invoice) GrandTotal() decimal.Decimal {
	return inv.Subtotal().Add(inv.TaxAmount())
}

// Validate checks the preconditions the paginator relies on.
func (inv Invoice) Validate() error {
	if strings.TrimSpace(inv.CustomerName) == "" || strings.TrimSpace(inv.CustomerAddress) == "" {
		return fmt.Errorf("%w: missing customer info", ErrInvalidInvoice)
	}
	if len(inv.Items) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInvoice, ErrNoItems)
	}
	for i, it := range inv.Items {
		if strings.TrimSpace(it.Description) == "" {
			return fmt.Errorf("%w: item %d has no description", ErrInvalidInvoice, i+1)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity %d", ErrInvalidInvoice, i+1, it.Quantity)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d negative price", ErrInvalidInvoice, i+1)
		}
	}
	if inv.TaxRatePercent.IsNegative() {
		return fmt.Errorf("%w: negative tax rate", ErrInvalidInvoice)
	}
	return nil
}
