// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Summary joins the errors into one line for error responses.
func (r *ValidationResult) Summary() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(parts, "; ")
}

const maxTextLength = 2000

func textField() map[string]interface{} {
	return map[string]interface{}{"type": "string", "maxLength": maxTextLength}
}

func listField() map[string]interface{} {
	return map[string]interface{}{
		"type":     "array",
		"maxItems": 50,
		"items":    textField(),
	}
}

// StakeholderSchema describes the known stakeholder keys. Unknown keys are
// allowed and passed through to the prompt.
func StakeholderSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"company_name":       textField(),
			"industry":           textField(),
			"company_type":       textField(),
			"target_audience":    textField(),
			"business_objective": textField(),
			"key_message":        textField(),
			"budget":             map[string]interface{}{"type": []interface{}{"string", "number"}},
			"timeline":           textField(),
			"brand_personality":  textField(),
			"preferred_channels": listField(),
			"differentiators":    listField(),
			"market_challenges":  listField(),
		},
		"additionalProperties": true,
	}
}

// ValidateInput checks input against a JSON schema given as a Go map.
func ValidateInput(input map[string]interface{}, schema map[string]interface{}) (*ValidationResult, error) {
	if input == nil {
		input = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(input))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

// ValidateStakeholderInput validates a request body against StakeholderSchema.
func ValidateStakeholderInput(input map[string]interface{}) (*ValidationResult, error) {
	return ValidateInput(input, StakeholderSchema())
}
