package main

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Document Helpers
// ---------------------------------------------------------------------------

const dateLayout = "01/02/2006"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// invoiceNumber generates a structured invoice reference.
// Format: INV-YYYY-MM-XXXX (e.g., INV-2026-02-A7K2)
func invoiceNumber(date time.Time) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, 4)
	rand.Read(b)
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return fmt.Sprintf("INV-%d-%02d-%s", date.Year(), date.Month(), string(b))
}

// sanitizeFilename replaces spaces with underscores and drops everything
// outside [A-Za-z0-9_].
func sanitizeFilename(s string) string {
	return unsafeFilenameChars.ReplaceAllString(strings.ReplaceAll(s, " ", "_"), "")
}

// invoiceFilename returns e.g. "Jane_Doe_12_Main_St_Invoice.pdf".
func invoiceFilename(inv Invoice) string {
	name := sanitizeFilename(inv.CustomerName)
	address := sanitizeFilename(inv.CustomerAddress)
	return fmt.Sprintf("%s_%s_Invoice.pdf", name, address)
}
