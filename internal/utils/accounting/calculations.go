package accounting

import (
	"fmt"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimals, half away from zero, to
// match currency display semantics. Applied after each summation step, never
// once over a grand total.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// BuildDocumentLines turns a source document into the simple two-line entry
// this system's documents always produce: a debit on the document's debit
// account and a credit on its credit account, both for the full total.
func BuildDocumentLines(doc domain.SourceDocument) ([]domain.JournalLine, error) {
	if doc.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("document %s total amount must be positive, got %s", doc.UUID, doc.TotalAmount.String())
	}

	amount := Round2(doc.TotalAmount)
	return []domain.JournalLine{
		{
			AccountID:    doc.DebitAccountID,
			DebitAmount:  amount,
			CreditAmount: decimal.Zero,
			Reference:    doc.UUID,
		},
		{
			AccountID:    doc.CreditAccountID,
			DebitAmount:  decimal.Zero,
			CreditAmount: amount,
			Reference:    doc.UUID,
		},
	}, nil
}

// ValidateEntryBalance checks the double-entry invariant: the sum of debit
// amounts equals the sum of credit amounts and no line carries a negative or
// two-sided amount. The two-line construction is balanced by construction;
// this guards any future multi-line entry path.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal entry must have at least two lines, got %d", len(lines))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return fmt.Errorf("journal line on account %d carries a negative amount", line.AccountID)
		}
		if line.DebitAmount.IsPositive() && line.CreditAmount.IsPositive() {
			return fmt.Errorf("journal line on account %d is both debit and credit", line.AccountID)
		}
		debits = debits.Add(line.DebitAmount)
		credits = credits.Add(line.CreditAmount)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal entry does not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
