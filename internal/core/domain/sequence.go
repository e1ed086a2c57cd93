package domain

import "fmt"

// DocumentKind selects the numbering series for human-readable document numbers.
type DocumentKind string

const (
	DocKindJournalEntry    DocumentKind = "JE"
	DocKindInvoice         DocumentKind = "INV"
	DocKindPayment         DocumentKind = "PAY"
	DocKindPurchaseInvoice DocumentKind = "PINV"
)

// Width returns the zero-padded width of the numeric suffix for the kind.
func (k DocumentKind) Width() int {
	switch k {
	case DocKindPayment, DocKindPurchaseInvoice:
		return 4
	default:
		return 5
	}
}

// FormatNumber renders the nth document number of this kind, e.g. JE-00001.
func (k DocumentKind) FormatNumber(n int64) string {
	return fmt.Sprintf("%s-%0*d", string(k), k.Width(), n)
}
