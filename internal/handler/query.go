package handler

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"productivity-service/pkg/validation"
)

const dateLayout = "2006-01-02"

// bindQuery copies query parameters into the fields of dst tagged with `query`.
// Supported field types are string, *int and *bool.
func bindQuery(values url.Values, dst interface{}) error {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	var issues []validation.Issue
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("query")
		if name == "" {
			continue
		}

		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}

		target := v.Field(i)
		switch target.Interface().(type) {
		case string:
			target.SetString(raw)
		case *int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				issues = append(issues, validation.Issue{Field: name, Message: "must be an integer"})
				continue
			}
			target.Set(reflect.ValueOf(&n))
		case *bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				issues = append(issues, validation.Issue{Field: name, Message: "must be a boolean"})
				continue
			}
			target.Set(reflect.ValueOf(&b))
		default:
			return fmt.Errorf("unsupported query field type %s", field.Type)
		}
	}

	if len(issues) > 0 {
		return &validation.Error{Issues: issues}
	}
	return nil
}

// parseDate parses an already validated YYYY-MM-DD value; empty yields nil
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
