package validation

import (
	"net/url"
	"strconv"
	"strings"
)

// Form reads typed values out of submitted form fields. Values that fail to parse are
// recorded under their field key and read as zero.
type Form struct {
	values url.Values
	fv     *FieldValidator
}

// NewForm wraps parsed form values.
func NewForm(values url.Values) *Form {
	return &Form{values: values, fv: New()}
}

// Text returns the trimmed value of key, checked against validators.
func (f *Form) Text(key string, validators ...Validator) string {
	v := strings.TrimSpace(f.values.Get(key))
	if len(validators) > 0 {
		f.fv.Validate(key, v, validators...)
	}
	return v
}

// Values returns every submitted value of key, in order, including empty ones.
func (f *Form) Values(key string) []string {
	return f.values[key]
}

// Bool reads a checkbox. A hidden "false" input followed by a checked box submits both
// values; any truthy value wins.
func (f *Form) Bool(key string) bool {
	for _, v := range f.values[key] {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true
		}
	}
	return false
}

// Float parses key as a decimal number. Empty reads as 0.
func (f *Form) Float(key, label string) float64 {
	return f.FloatValue(key, f.values.Get(key), label)
}

// FloatValue parses raw, recording a failure under key.
func (f *Form) FloatValue(key, raw, label string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if msg := Number(label)(raw); msg != "" {
		f.fv.Validate(key, raw, Number(label))
		return 0
	}
	n, _ := strconv.ParseFloat(raw, 64)
	return n
}

// IntValue parses raw as a whole number, recording a failure under key. Empty reads as 0.
func (f *Form) IntValue(key, raw, label string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f.fv.Validate(key, raw, WholeNumber(label))
		return 0
	}
	return n
}

// Check runs validators against a raw value read through Values.
func (f *Form) Check(key, raw string, validators ...Validator) *Form {
	f.fv.Validate(key, raw, validators...)
	return f
}

// Merge adds advisory messages for fields that parsed cleanly.
func (f *Form) Merge(errs map[string]string) *Form {
	f.fv.Merge(errs)
	return f
}

// Errors returns the messages collected so far, or nil when there are none.
func (f *Form) Errors() map[string]string {
	if len(f.fv.Errors()) == 0 {
		return nil
	}
	return f.fv.Errors()
}
