package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Statement line error codes (STATEMENT_*)
const (
	StatementNotFound          ErrorCode = "STATEMENT_001"
	StatementInvalidID         ErrorCode = "STATEMENT_002"
	StatementAlreadyReconciled ErrorCode = "STATEMENT_003"
	StatementImportFailed      ErrorCode = "STATEMENT_004"
)

// Ledger transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidType       ErrorCode = "TRANSACTION_002"
	TransactionAlreadyReconciled ErrorCode = "TRANSACTION_003"
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_004"
	TransactionAccountMismatch   ErrorCode = "TRANSACTION_005"
)

// Reconciliation match error codes (MATCH_*)
const (
	MatchNotFound        ErrorCode = "MATCH_001"
	MatchAlreadyDecided  ErrorCode = "MATCH_002"
	MatchInvalidDecision ErrorCode = "MATCH_003"
	MatchInvalidID       ErrorCode = "MATCH_004"
)

// Reconciliation run error codes (RECON_*)
const (
	ReconInvalidAccount   ErrorCode = "RECON_001"
	ReconInvalidDateRange ErrorCode = "RECON_002"
	ReconRunFailed        ErrorCode = "RECON_003"
	ReconInvalidProfile   ErrorCode = "RECON_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Statement line errors
	StatementNotFound:          "Statement line not found",
	StatementInvalidID:         "Invalid statement line ID format",
	StatementAlreadyReconciled: "Statement line is already reconciled",
	StatementImportFailed:      "Statement import failed",

	// Ledger transaction errors
	TransactionNotFound:          "Ledger transaction not found",
	TransactionInvalidType:       "Invalid transaction type",
	TransactionAlreadyReconciled: "Ledger transaction is already reconciled",
	TransactionInvalidAmount:     "Invalid transaction amount",
	TransactionAccountMismatch:   "Transaction belongs to a different account",

	// Reconciliation match errors
	MatchNotFound:        "Reconciliation match not found",
	MatchAlreadyDecided:  "Match has already been decided by an operator",
	MatchInvalidDecision: "Invalid match decision",
	MatchInvalidID:       "Invalid match ID format",

	// Reconciliation run errors
	ReconInvalidAccount:   "Invalid account ID for reconciliation run",
	ReconInvalidDateRange: "Reconciliation date range is invalid",
	ReconRunFailed:        "Reconciliation run failed",
	ReconInvalidProfile:   "Unknown matching profile",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
