package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
)

func TestDocumentKind_FormatNumber(t *testing.T) {
	tests := []struct {
		name string
		kind domain.DocumentKind
		n    int64
		want string
	}{
		{name: "journal entry", kind: domain.DocKindJournalEntry, n: 1, want: "JE-00001"},
		{name: "journal entry large", kind: domain.DocKindJournalEntry, n: 123456, want: "JE-123456"},
		{name: "invoice", kind: domain.DocKindInvoice, n: 42, want: "INV-00042"},
		{name: "payment", kind: domain.DocKindPayment, n: 7, want: "PAY-0007"},
		{name: "purchase invoice", kind: domain.DocKindPurchaseInvoice, n: 310, want: "PINV-0310"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.FormatNumber(tt.n))
		})
	}
}

func TestRecurringType_NextDueDate(t *testing.T) {
	base := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		typ  domain.RecurringType
		want time.Time
	}{
		{name: "daily", typ: domain.RecurDaily, want: base.AddDate(0, 0, 1)},
		{name: "weekly", typ: domain.RecurWeekly, want: base.AddDate(0, 0, 7)},
		{name: "monthly", typ: domain.RecurMonthly, want: base.AddDate(0, 1, 0)},
		{name: "quarterly", typ: domain.RecurQuarterly, want: base.AddDate(0, 3, 0)},
		{name: "yearly", typ: domain.RecurYearly, want: base.AddDate(1, 0, 0)},
		{name: "unknown defaults to 30 days", typ: domain.RecurringType("FORTNIGHTLY"), want: base.AddDate(0, 0, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.NextDueDate(base))
		})
	}
}
