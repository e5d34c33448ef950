package kernel

// ValidationResult carries the outcome of a business-rule validation such as
// a cart checkout check or an order processing check.
//
// Unlike construction invariants, which fail hard with typed errors, business
// validations are returned as data: callers routinely need to inspect why
// something is invalid to render guidance, not merely detect failure.
//
// Errors block the operation; warnings are informational only.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewValidationResult builds a ValidationResult from collected errors and
// warnings. The result is valid iff there are no errors; warnings never
// affect validity.
func NewValidationResult(errors, warnings []string) ValidationResult {
	if errors == nil {
		errors = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	return ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
