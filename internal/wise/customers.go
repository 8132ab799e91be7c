package wise

import (
	"errors"
	"strings"
)

// WindowField selects which pair of date fields an outbound order
// search filters on.
type WindowField string

const (
	WindowTargetCompletion WindowField = "targetCompletion"
	WindowAppointment      WindowField = "appointment"
)

// ParseCustomerIDs splits a comma-separated account list, trimming
// whitespace and preserving order and duplicates. Empty tokens are
// dropped; an effectively empty list is an error so a blank
// configuration fails at startup instead of producing a query for
// customer "".
func ParseCustomerIDs(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("customer id list is empty")
	}
	return out, nil
}

// ParseWindowOverrides reads a policy table of the form
// "ORG-685351=appointment,ORG-123=targetCompletion". Customers not
// listed use the target-completion window. Unknown field names are
// ignored rather than failing the whole table.
func ParseWindowOverrides(raw string) map[string]WindowField {
	out := map[string]WindowField{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		switch WindowField(strings.TrimSpace(value)) {
		case WindowAppointment:
			out[key] = WindowAppointment
		case WindowTargetCompletion:
			out[key] = WindowTargetCompletion
		}
	}
	return out
}
