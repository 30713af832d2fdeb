package main

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ---------------------------------------------------------------------------
// Number Formatting
// ---------------------------------------------------------------------------

// Format holds the display conventions for monetary values.
type Format struct {
	CurrencySymbol string
	Language       language.Tag

	printer *message.Printer
}

// NewFormat returns a Format that groups thousands per the given language.
func NewFormat(symbol string, lang language.Tag) Format {
	return Format{
		CurrencySymbol: symbol,
		Language:       lang,
		printer:        message.NewPrinter(lang),
	}
}

// Money formats an amount with 2 decimals and thousands separators.
func (f Format) Money(d decimal.Decimal) string {
	return f.CurrencySymbol + f.grouped(d)
}

// Price formats an amount with 2 decimals and no grouping.
func (f Format) Price(d decimal.Decimal) string {
	return f.CurrencySymbol + d.StringFixed(2)
}

// Percent formats a rate with 2 decimals, e.g. "8.25".
func (f Format) Percent(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// grouped rounds half away from zero before handing the value to the
// locale printer, so the printer never sees more than 2 fraction digits.
func (f Format) grouped(d decimal.Decimal) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(f.Language)
	}
	return p.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

func (f Format) itemRow(it LineItem) Row {
	return Row{
		it.Description,
		strconv.FormatInt(it.Quantity, 10),
		f.Price(it.UnitPrice),
		f.Price(it.LineTotal()),
	}
}

func (f Format) totalsRows(inv Invoice) []Row {
	return []Row{
		{"", "", "Subtotal:", f.Money(inv.Subtotal())},
		{"", "", "Tax (" + f.Percent(inv.TaxRatePercent) + "%):", f.Money(inv.TaxAmount())},
		{"", "", "Grand Total:", f.Money(inv.GrandTotal())},
	}
}
