package util

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToFloat coerces a raw JSON value into a float64, falling back to 0
// for anything missing or unparsable. Report payloads carry quantities
// as numbers or strings interchangeably.
func ToFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

// StringOr returns the value as a trimmed string, or fallback when it
// is absent, empty, or not a string.
func StringOr(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func ToStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		switch t := item.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				out = append(out, strings.TrimSpace(t))
			}
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		case json.Number:
			out = append(out, t.String())
		}
	}
	return out
}
