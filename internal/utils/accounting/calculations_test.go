package accounting_test

import (
	"testing"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/contasys/contasys-backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.True(t, accounting.Round2(decimal.RequireFromString("2.675")).Equal(decimal.RequireFromString("2.68")))
	assert.True(t, accounting.Round2(decimal.RequireFromString("-2.675")).Equal(decimal.RequireFromString("-2.68")))
	assert.True(t, accounting.Round2(decimal.RequireFromString("2.674")).Equal(decimal.RequireFromString("2.67")))
	assert.True(t, accounting.Round2(decimal.RequireFromString("10")).Equal(decimal.RequireFromString("10")))
}

func TestBuildDocumentLines(t *testing.T) {
	doc := domain.SourceDocument{
		UUID:            "a4f2b0aa-0000-4000-8000-000000000001",
		CompanyID:       1,
		OperationType:   domain.OperationSale,
		TotalAmount:     decimal.RequireFromString("150.555"),
		WorkDate:        time.Now(),
		DebitAccountID:  100,
		CreditAccountID: 200,
	}

	lines, err := accounting.BuildDocumentLines(doc)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(100), lines[0].AccountID)
	assert.True(t, lines[0].DebitAmount.Equal(decimal.RequireFromString("150.56")))
	assert.True(t, lines[0].CreditAmount.IsZero())

	assert.Equal(t, int64(200), lines[1].AccountID)
	assert.True(t, lines[1].CreditAmount.Equal(decimal.RequireFromString("150.56")))
	assert.True(t, lines[1].DebitAmount.IsZero())

	assert.Equal(t, doc.UUID, lines[0].Reference)
	assert.NoError(t, accounting.ValidateEntryBalance(lines))
}

func TestBuildDocumentLines_NonPositiveTotal(t *testing.T) {
	doc := domain.SourceDocument{UUID: "x", TotalAmount: decimal.Zero}
	_, err := accounting.BuildDocumentLines(doc)
	assert.Error(t, err)

	doc.TotalAmount = decimal.RequireFromString("-5")
	_, err = accounting.BuildDocumentLines(doc)
	assert.Error(t, err)
}

func TestValidateEntryBalance(t *testing.T) {
	balanced := []domain.JournalLine{
		{AccountID: 1, DebitAmount: decimal.RequireFromString("100"), CreditAmount: decimal.Zero},
		{AccountID: 2, DebitAmount: decimal.Zero, CreditAmount: decimal.RequireFromString("60")},
		{AccountID: 3, DebitAmount: decimal.Zero, CreditAmount: decimal.RequireFromString("40")},
	}
	assert.NoError(t, accounting.ValidateEntryBalance(balanced))

	unbalanced := []domain.JournalLine{
		{AccountID: 1, DebitAmount: decimal.RequireFromString("100"), CreditAmount: decimal.Zero},
		{AccountID: 2, DebitAmount: decimal.Zero, CreditAmount: decimal.RequireFromString("90")},
	}
	assert.Error(t, accounting.ValidateEntryBalance(unbalanced))

	single := balanced[:1]
	assert.Error(t, accounting.ValidateEntryBalance(single))

	negative := []domain.JournalLine{
		{AccountID: 1, DebitAmount: decimal.RequireFromString("-10"), CreditAmount: decimal.Zero},
		{AccountID: 2, DebitAmount: decimal.Zero, CreditAmount: decimal.RequireFromString("-10")},
	}
	assert.Error(t, accounting.ValidateEntryBalance(negative))

	twoSided := []domain.JournalLine{
		{AccountID: 1, DebitAmount: decimal.RequireFromString("10"), CreditAmount: decimal.RequireFromString("10")},
		{AccountID: 2, DebitAmount: decimal.Zero, CreditAmount: decimal.Zero},
	}
	assert.Error(t, accounting.ValidateEntryBalance(twoSided))
}

func TestBookTypeFor(t *testing.T) {
	assert.Equal(t, domain.BookTypeSales, domain.BookTypeFor(domain.OperationSale))
	assert.Equal(t, domain.BookTypePurchases, domain.BookTypeFor(domain.OperationPurchase))
}
