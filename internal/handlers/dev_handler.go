package handlers

import (
	"fmt"
	"net/http"
	"time"

	"bank-reconciliation/internal/errors"
	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	statementRepo repositories.StatementLineRepositoryInterface
	ledgerRepo    repositories.LedgerTransactionRepositoryInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	statementRepo repositories.StatementLineRepositoryInterface,
	ledgerRepo repositories.LedgerTransactionRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		statementRepo: statementRepo,
		ledgerRepo:    ledgerRepo,
	}
}

// GenerateTestData generates paired statement lines and ledger transactions
// for exercising reconciliation runs against an account.
//
// Method: POST /api/v1/dev/accounts/:id/generate-test-data
// Environment: Development only
//
// Roughly 60% of the generated statement lines have an exact ledger
// counterpart, 20% a fuzzed one (amount and date nudged within tolerance),
// and 20% no counterpart at all. An extra block of unmatched ledger
// transactions is added so runs see noise on both sides.
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	count := getIntParam(c, "count", 50)
	if count < 1 || count > 500 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("count must be between 1 and 500"))
	}

	batch := fmt.Sprintf("dev-%s", time.Now().UTC().Format("20060102T150405"))
	lines, transactions := generateReconciliationFixtures(accountID, batch, count)

	if err := h.statementRepo.CreateBatch(lines); err != nil {
		return SendSystemError(c, err)
	}
	if err := h.ledgerRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"account_id":          accountID,
			"import_batch":        batch,
			"statement_lines":     len(lines),
			"ledger_transactions": len(transactions),
		},
		Message: "Test data generated",
	})
}

// generateReconciliationFixtures builds the statement and ledger sides of a
// synthetic reconciliation scenario.
func generateReconciliationFixtures(accountID uuid.UUID, batch string, count int) ([]models.StatementLine, []models.LedgerTransaction) {
	lines := make([]models.StatementLine, 0, count)
	transactions := make([]models.LedgerTransaction, 0, count+count/5)

	for i := 0; i < count; i++ {
		company := gofakeit.Company()
		partyID := fmt.Sprintf("party-%06d", gofakeit.Number(1, 999999))
		description := fmt.Sprintf("%s %s %d", company, gofakeit.ProductName(), gofakeit.Number(1000, 9999))
		amount := decimal.NewFromFloat(gofakeit.Price(10, 10000)).Round(2)
		date := gofakeit.DateRange(
			time.Now().AddDate(0, -3, 0),
			time.Now(),
		).Truncate(24 * time.Hour)

		transactionType := models.TransactionTypeRevenue
		lineAmount := amount
		if gofakeit.Bool() {
			transactionType = models.TransactionTypeExpense
			lineAmount = amount.Neg()
		}

		lines = append(lines, models.StatementLine{
			AccountID:       accountID,
			Amount:          lineAmount,
			TransactionDate: date,
			Description:     description,
			PartyID:         partyID,
			PartyName:       company,
			ImportBatch:     batch,
		})

		switch {
		case i%5 == 3:
			// No counterpart; this line stays unmatched.
		case i%5 == 4:
			// Fuzzed counterpart within matching tolerance.
			fuzzedValue := amount.Mul(decimal.NewFromFloat(1 + gofakeit.Float64Range(-0.03, 0.03))).Round(2)
			transactions = append(transactions, models.LedgerTransaction{
				AccountID:       accountID,
				TransactionType: transactionType,
				Value:           fuzzedValue,
				TransactionDate: date.AddDate(0, 0, gofakeit.Number(-2, 2)),
				Description:     description,
				PartyID:         partyID,
				PartyName:       company,
				Status:          models.TransactionStatusPending,
			})
		default:
			// Exact counterpart.
			transactions = append(transactions, models.LedgerTransaction{
				AccountID:       accountID,
				TransactionType: transactionType,
				Value:           amount,
				TransactionDate: date,
				Description:     description,
				PartyID:         partyID,
				PartyName:       company,
				Status:          models.TransactionStatusPending,
			})
		}
	}

	// Ledger-side noise with no statement counterpart.
	for i := 0; i < count/5; i++ {
		transactions = append(transactions, models.LedgerTransaction{
			AccountID:       accountID,
			TransactionType: models.TransactionTypeExpense,
			Value:           decimal.NewFromFloat(gofakeit.Price(10, 10000)).Round(2),
			TransactionDate: gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
			Description:     fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.ProductName()),
			PartyID:         fmt.Sprintf("party-%06d", gofakeit.Number(1, 999999)),
			PartyName:       gofakeit.Company(),
			Status:          models.TransactionStatusPending,
		})
	}

	return lines, transactions
}
