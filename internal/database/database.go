package database

import (
	"fmt"
	"log"
	"time"

	"bank-reconciliation/internal/config"
	"bank-reconciliation/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.StatementLine{},
		&models.LedgerTransaction{},
		&models.ReconciliationMatch{},
		&models.MatchAuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Statement line indexes
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_account_id ON statement_lines(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_transaction_date ON statement_lines(transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_reconciled ON statement_lines(reconciled)",
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_party_id ON statement_lines(party_id) WHERE party_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_import_batch ON statement_lines(import_batch)",
		// Ledger transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_account_id ON ledger_transactions(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_transaction_date ON ledger_transactions(transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_type ON ledger_transactions(transaction_type)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_reconciled ON ledger_transactions(reconciled)",
		// Match indexes
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_matches_account_id ON reconciliation_matches(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_matches_statement_line_id ON reconciliation_matches(statement_line_id)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_matches_transaction_id ON reconciliation_matches(transaction_id)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_matches_decision ON reconciliation_matches(decision)",
		// Audit log indexes
		"CREATE INDEX IF NOT EXISTS idx_match_audit_logs_actor_id ON match_audit_logs(actor_id)",
		"CREATE INDEX IF NOT EXISTS idx_match_audit_logs_action ON match_audit_logs(action)",
		"CREATE INDEX IF NOT EXISTS idx_match_audit_logs_created_at ON match_audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
