package accounting

import (
	"fmt"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum acceptable absolute difference between the
// debit and credit sides of a journal entry, to absorb rounding on computed
// tax and discount amounts.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumLines returns the debit and credit totals of the given lines.
func SumLines(lines []domain.JournalEntryLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}
	return totalDebit, totalCredit
}

// ValidateLine checks that exactly one of the line's debit/credit amounts is
// positive and the other is zero.
func ValidateLine(line domain.JournalEntryLine) error {
	zero := decimal.Zero
	debitSet := line.DebitAmount.GreaterThan(zero)
	creditSet := line.CreditAmount.GreaterThan(zero)
	if line.DebitAmount.LessThan(zero) || line.CreditAmount.LessThan(zero) {
		return fmt.Errorf("line amounts must not be negative for account ID %s", line.AccountID)
	}
	if debitSet == creditSet {
		return fmt.Errorf("exactly one of debit or credit must be positive for account ID %s", line.AccountID)
	}
	return nil
}

// ValidateEntryBalance checks that the lines form a valid balanced entry:
// at least two lines, each line single-sided, and the debit and credit totals
// equal within BalanceTolerance.
func ValidateEntryBalance(lines []domain.JournalEntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal entry must have at least two lines")
	}
	for _, line := range lines {
		if err := ValidateLine(line); err != nil {
			return err
		}
	}
	totalDebit, totalCredit := SumLines(lines)
	diff := totalDebit.Sub(totalCredit).Abs()
	if diff.GreaterThan(BalanceTolerance) {
		return fmt.Errorf("journal entry does not balance: debits %s, credits %s", totalDebit.String(), totalCredit.String())
	}
	return nil
}

// NormalBalance converts raw debit and credit sums into the account's balance
// according to its normal side.
// ASSET/EXPENSE -> debits minus credits; LIABILITY/EQUITY/INCOME -> credits minus debits.
func NormalBalance(accountType domain.AccountType, totalDebit, totalCredit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return totalDebit.Sub(totalCredit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return totalCredit.Sub(totalDebit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}
