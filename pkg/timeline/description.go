// Package timeline turns journey entries into rows of entry cards.
package timeline

import "strings"

// Clause is one item of a description. Labeled clauses render the label
// emphasised followed by Value exactly as written.
type Clause struct {
	Label   string `json:"label,omitempty"`
	Value   string `json:"value"`
	Labeled bool   `json:"labeled"`
}

// ParseDescription splits text on ";" into clauses. A clause containing ":" is
// split on the first colon only; later colons stay in the value. Whitespace
// around label and value is kept.
func ParseDescription(text string) []Clause {
	parts := strings.Split(text, ";")
	clauses := make([]Clause, 0, len(parts))
	for _, p := range parts {
		label, value, ok := strings.Cut(p, ":")
		if !ok {
			clauses = append(clauses, Clause{Value: p})
			continue
		}
		clauses = append(clauses, Clause{Label: label, Value: value, Labeled: true})
	}
	return clauses
}
