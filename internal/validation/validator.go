package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("match_decision", validateMatchDecision)
	_ = v.RegisterValidation("confidence_level", validateConfidenceLevel)
	_ = v.RegisterValidation("confidence_score", validateConfidenceScore)
	_ = v.RegisterValidation("matching_profile", validateMatchingProfile)
	_ = v.RegisterValidation("entity_id", validateEntityID)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	txType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"revenue": true,
		"expense": true,
	}
	return validTypes[txType]
}

// validateMatchDecision validates that a match decision is one of the allowed states
func validateMatchDecision(fl validator.FieldLevel) bool {
	decision := strings.ToLower(fl.Field().String())
	validDecisions := map[string]bool{
		"auto":       true,
		"confirmed":  true,
		"overridden": true,
		"rejected":   true,
	}
	return validDecisions[decision]
}

// validateConfidenceLevel validates that a confidence level is one of the allowed tiers
func validateConfidenceLevel(fl validator.FieldLevel) bool {
	level := strings.ToLower(fl.Field().String())
	validLevels := map[string]bool{
		"high":   true,
		"medium": true,
		"low":    true,
	}
	return validLevels[level]
}

// validateConfidenceScore validates that a confidence score lies in [0,1]
func validateConfidenceScore(fl validator.FieldLevel) bool {
	score := fl.Field().Float()
	return score >= 0.0 && score <= 1.0
}

// validateMatchingProfile validates that a matching profile name is known
func validateMatchingProfile(fl validator.FieldLevel) bool {
	profile := strings.ToLower(fl.Field().String())
	validProfiles := map[string]bool{
		"default": true,
		"strict":  true,
		"relaxed": true,
	}
	return validProfiles[profile]
}

// validateEntityID validates that an entity ID is a valid UUID v4
func validateEntityID(fl validator.FieldLevel) bool {
	entityID := fl.Field().String()
	if entityID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, entityID)
	return matched
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
