// Package validate provides struct-tag validation for request bodies.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	numeric             any number
//	integer             whole number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type Input struct {
//	    Email  string  `json:"email"  validate:"required,email"`
//	    Price  float64 `json:"price"  validate:"required,gte=0"`
//	    Method string  `json:"method" validate:"required,in=card,upi,cod"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}
	case "min":
		if !compareSize(v, param, func(have, want float64) bool { return have >= want }) {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		if !compareSize(v, param, func(have, want float64) bool { return have <= want }) {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	case "gte":
		if !compareNumber(v, param, func(have, want float64) bool { return have >= want }) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lte":
		if !compareNumber(v, param, func(have, want float64) bool { return have <= want }) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
	case "in":
		for _, opt := range strings.Split(param, ",") {
			if raw == opt {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

// compareSize treats strings by length and numbers by value.
func compareSize(v reflect.Value, param string, cmp func(have, want float64) bool) bool {
	want, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return false
	}
	if v.Kind() == reflect.String {
		return cmp(float64(len(v.String())), want)
	}
	return compareNumber(v, param, cmp)
}

func compareNumber(v reflect.Value, param string, cmp func(have, want float64) bool) bool {
	want, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp(float64(v.Int()), want)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp(float64(v.Uint()), want)
	case reflect.Float32, reflect.Float64:
		return cmp(v.Float(), want)
	case reflect.String:
		have, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return false
		}
		return cmp(have, want)
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false // false is a valid value, not "empty"
	default:
		return v.IsZero()
	}
}

var knownBareRules = map[string]bool{
	"required": true,
	"nullable": true,
	"email":    true,
	"numeric":  true,
	"integer":  true,
}

// splitRules splits on commas but keeps "in=a,b,c" parameters intact.
func splitRules(tag string) []string {
	var rules []string
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// A bare value with no '=' following an in= rule belongs to that
		// rule's parameter list, unless it is itself a known rule.
		if len(rules) > 0 && !strings.Contains(part, "=") && !knownBareRules[part] && strings.HasPrefix(rules[len(rules)-1], "in=") {
			rules[len(rules)-1] += "," + part
			continue
		}
		rules = append(rules, part)
	}
	return rules
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}
