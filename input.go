package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Invoice Input
// ---------------------------------------------------------------------------

// parseItemLine parses "Description, Quantity, UnitPrice".
func parseItemLine(fields []string) (LineItem, bool) {
	if len(fields) != 3 {
		return LineItem{}, false
	}
	desc := strings.TrimSpace(fields[0])
	qty, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return LineItem{}, false
	}
	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return LineItem{}, false
	}
	return LineItem{Description: desc, Quantity: qty, UnitPrice: price}, true
}

// parseItemsCSV reads one item per line. Blank and malformed lines are
// skipped. Each line is parsed on its own so an unbalanced quote only drops
// the line it appears on.
func parseItemsCSV(r io.Reader) ([]LineItem, error) {
	var items []LineItem

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cr := csv.NewReader(strings.NewReader(line))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true

		record, err := cr.Read()
		if err != nil {
			continue
		}
		if it, ok := parseItemLine(record); ok {
			items = append(items, it)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// parseItemsJSON decodes a JSON array of {desc, qty, price}.
func parseItemsJSON(r io.Reader) ([]LineItem, error) {
	var items []LineItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("invalid JSON for items: %w", err)
	}
	return items, nil
}

// parseInvoiceJSON decodes a whole invoice document.
func parseInvoiceJSON(r io.Reader) (Invoice, error) {
	var inv Invoice
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return Invoice{}, fmt.Errorf("invalid JSON invoice: %w", err)
	}
	return inv, nil
}

// parseInvoiceText reads the plain text format:
//
//	Customer Name: Jane Doe
//	Customer Address: 12 Main St
//	Items:
//	Upper Cabinets, 5, 1200
func parseInvoiceText(r io.Reader) (Invoice, error) {
	var inv Invoice
	inItems := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "Customer Name:"):
			inv.CustomerName = strings.TrimSpace(strings.TrimPrefix(line, "Customer Name:"))
		case strings.HasPrefix(line, "Customer Address:"):
			inv.CustomerAddress = strings.TrimSpace(strings.TrimPrefix(line, "Customer Address:"))
		case strings.HasPrefix(line, "Tax Rate:"):
			rate, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "Tax Rate:"), "%")))
			if err == nil {
				inv.TaxRatePercent = rate
			}
		case strings.HasPrefix(line, "Items:"):
			inItems = true
		case inItems:
			if it, ok := parseItemLine(strings.Split(line, ",")); ok {
				inv.Items = append(inv.Items, it)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Invoice{}, fmt.Errorf("failed to read invoice: %w", err)
	}
	return inv, nil
}

// readInvoiceFile picks a parser by file extension. CSV files hold items only.
func readInvoiceFile(path string) (Invoice, error) {
	f, err := os.Open(path)
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to open invoice: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseInvoiceJSON(f)
	case ".csv":
		items, err := parseItemsCSV(f)
		return Invoice{Items: items}, err
	case ".txt", "":
		return parseInvoiceText(f)
	default:
		return Invoice{}, fmt.Errorf("unsupported invoice format %q", filepath.Ext(path))
	}
}
