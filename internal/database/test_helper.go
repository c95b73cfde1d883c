package database

import (
	"fmt"
	"testing"
	"time"

	"bank-reconciliation/internal/config"
	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestStatementLine(t *testing.T, db *DB, accountID uuid.UUID, amount float64, date time.Time, description string) *models.StatementLine {
	t.Helper()

	line := &models.StatementLine{
		AccountID:       accountID,
		Amount:          decimal.NewFromFloat(amount),
		TransactionDate: date,
		Description:     description,
	}

	if err := db.Create(line).Error; err != nil {
		t.Fatalf("failed to create test statement line: %v", err)
	}

	return line
}

func CreateTestLedgerTransaction(t *testing.T, db *DB, accountID uuid.UUID, transactionType string, value float64, date time.Time, description string) *models.LedgerTransaction {
	t.Helper()

	transaction := &models.LedgerTransaction{
		AccountID:       accountID,
		TransactionType: transactionType,
		Value:           decimal.NewFromFloat(value),
		TransactionDate: date,
		Description:     description,
		Status:          models.TransactionStatusPending,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test ledger transaction: %v", err)
	}

	return transaction
}

func CreateTestMatch(t *testing.T, db *DB, accountID, statementLineID, transactionID uuid.UUID, confidence float64, decision string) *models.ReconciliationMatch {
	t.Helper()

	level := models.MatchConfidenceLow
	switch {
	case confidence >= 0.85:
		level = models.MatchConfidenceHigh
	case confidence >= 0.65:
		level = models.MatchConfidenceMedium
	}

	match := &models.ReconciliationMatch{
		AccountID:       accountID,
		StatementLineID: statementLineID,
		TransactionID:   transactionID,
		TransactionType: models.TransactionTypeRevenue,
		Confidence:      confidence,
		ConfidenceLevel: level,
		Decision:        decision,
		AutoMatched:     decision == models.MatchDecisionAuto,
	}

	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to create test match: %v", err)
	}

	return match
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"match_audit_logs",
		"reconciliation_matches",
		"ledger_transactions",
		"statement_lines",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
