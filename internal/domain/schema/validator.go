package schema

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Validator validates arbitrary item field payloads against one inventory's
// current custom field configuration. Rules are keyed by field title, which
// is also the payload key.
type Validator struct {
	rules map[string]FieldType
}

// BuildValidator builds a validator from the inventory's configured fields.
// Every field is assumed to carry a registered type; unknown tags are
// rejected at field-creation time and never reach this point.
func BuildValidator(fields []CustomField) *Validator {
	rules := make(map[string]FieldType, len(fields))
	for _, f := range fields {
		rules[f.Title] = f.FieldType
	}
	return &Validator{rules: rules}
}

// Validate checks every key of the payload against the current field set.
// It is a collect-all pass: every malformed or unknown key contributes one
// entry to the returned error map, so the caller can report all form-field
// errors in a single response. On success it returns the cleaned payload
// ready for storage and a nil error map.
//
// Keys not present in the current field set are rejected outright: payload
// shape always tracks the current configuration, even though items
// persisted under an older configuration are not migrated.
func (v *Validator) Validate(payload map[string]interface{}) (map[string]interface{}, map[string]string) {
	cleaned := make(map[string]interface{}, len(payload))
	fieldErrors := make(map[string]string)

	for key, raw := range payload {
		fieldType, known := v.rules[key]
		if !known {
			fieldErrors[key] = fmt.Sprintf("%q is not a field of this inventory", key)
			continue
		}

		value, err := cleanValue(fieldType, raw)
		if err != "" {
			fieldErrors[key] = err
			continue
		}
		cleaned[key] = value
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return cleaned, nil
}

// cleanValue applies the shape rule of one field type. All types are
// nullable. The second return value is the error message, empty on success.
func cleanValue(fieldType FieldType, raw interface{}) (interface{}, string) {
	if raw == nil {
		return nil, ""
	}

	switch fieldType {
	case FieldSingleLineText, FieldMultiLineText:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		spec, _ := LookupFieldType(fieldType)
		if len(s) > spec.MaxLength {
			return nil, fmt.Sprintf("must be at most %d characters", spec.MaxLength)
		}
		return s, ""

	case FieldNumber:
		d, ok := toDecimal(raw)
		if !ok {
			return nil, "must be a number"
		}
		// Stored as json.Number so the payload round-trips as an
		// unquoted JSON number without float precision loss
		return json.Number(d.String()), ""

	case FieldDocumentLink:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a URL string"
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, "must be a valid absolute URL"
		}
		return s, ""

	case FieldBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return b, ""
	}

	// Unreachable for registered types; kept so the function stays total
	return nil, fmt.Sprintf("unsupported field type %q", fieldType)
}

// toDecimal converts the numeric representations JSON decoding can produce
// into a lossless decimal. Numeric strings are accepted and converted, the
// same leniency the validation layer has always had for form submissions.
func toDecimal(raw interface{}) (decimal.Decimal, bool) {
	switch n := raw.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Decimal{}, false
	}
}
