package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/utils/accounting"
)

func line(debit, credit float64) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		AccountID:    "acc",
		DebitAmount:  decimal.NewFromFloat(debit),
		CreditAmount: decimal.NewFromFloat(credit),
	}
}

func TestSumLines(t *testing.T) {
	lines := []domain.JournalEntryLine{
		line(100, 0),
		line(50.25, 0),
		line(0, 150.25),
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	assert.True(t, totalDebit.Equal(decimal.NewFromFloat(150.25)))
	assert.True(t, totalCredit.Equal(decimal.NewFromFloat(150.25)))

	totalDebit, totalCredit = accounting.SumLines(nil)
	assert.True(t, totalDebit.IsZero())
	assert.True(t, totalCredit.IsZero())
}

func TestValidateLine(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.JournalEntryLine
		wantErr bool
	}{
		{name: "debit only", line: line(100, 0), wantErr: false},
		{name: "credit only", line: line(0, 100), wantErr: false},
		{name: "both sides set", line: line(100, 100), wantErr: true},
		{name: "neither side set", line: line(0, 0), wantErr: true},
		{name: "negative debit", line: line(-100, 0), wantErr: true},
		{name: "negative credit", line: line(0, -5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEntryBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalEntryLine
		wantErr bool
		errMsg  string
	}{
		{
			name:    "balanced entry",
			lines:   []domain.JournalEntryLine{line(100, 0), line(0, 100)},
			wantErr: false,
		},
		{
			name:    "within tolerance",
			lines:   []domain.JournalEntryLine{line(100.00, 0), line(0, 99.99)},
			wantErr: false,
		},
		{
			name:    "just over tolerance",
			lines:   []domain.JournalEntryLine{line(100.00, 0), line(0, 99.98)},
			wantErr: true,
			errMsg:  "does not balance",
		},
		{
			name:    "single line",
			lines:   []domain.JournalEntryLine{line(100, 0)},
			wantErr: true,
			errMsg:  "at least two lines",
		},
		{
			name:    "empty",
			lines:   nil,
			wantErr: true,
			errMsg:  "at least two lines",
		},
		{
			name:    "invalid line surfaces",
			lines:   []domain.JournalEntryLine{line(100, 100), line(0, 100)},
			wantErr: true,
			errMsg:  "exactly one of debit or credit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntryBalance(tt.lines)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalBalance(t *testing.T) {
	debit := decimal.NewFromInt(700)
	credit := decimal.NewFromInt(300)

	tests := []struct {
		name        string
		accountType domain.AccountType
		want        decimal.Decimal
	}{
		{name: "asset is debit normal", accountType: domain.Asset, want: decimal.NewFromInt(400)},
		{name: "expense is debit normal", accountType: domain.Expense, want: decimal.NewFromInt(400)},
		{name: "liability is credit normal", accountType: domain.Liability, want: decimal.NewFromInt(-400)},
		{name: "equity is credit normal", accountType: domain.Equity, want: decimal.NewFromInt(-400)},
		{name: "income is credit normal", accountType: domain.Income, want: decimal.NewFromInt(-400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.NormalBalance(tt.accountType, debit, credit)
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	_, err := accounting.NormalBalance(domain.AccountType("BOGUS"), debit, credit)
	assert.Error(t, err)
}
