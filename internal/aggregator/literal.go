package aggregator

import (
	"fmt"
	"strings"
)

// parseListLiteral parses a Python-style list literal of quoted strings, the
// form some upstream exports leave in the genre column instead of a plain
// label. Accepts single or double quotes and a trailing comma. Escape
// sequences are not interpreted; a quote of the opening kind ends the entry.
func parseListLiteral(s string) ([]string, error) {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	var out []string
	i := 0
	for {
		for i < len(inner) && (inner[i] == ' ' || inner[i] == '\t') {
			i++
		}
		if i >= len(inner) {
			break
		}
		q := inner[i]
		if q != '\'' && q != '"' {
			return nil, fmt.Errorf("unquoted entry at offset %d", i)
		}
		i++
		start := i
		for i < len(inner) && inner[i] != q {
			i++
		}
		if i >= len(inner) {
			return nil, fmt.Errorf("unterminated quote at offset %d", start)
		}
		out = append(out, inner[start:i])
		i++
		for i < len(inner) && (inner[i] == ' ' || inner[i] == '\t') {
			i++
		}
		if i >= len(inner) {
			break
		}
		if inner[i] != ',' {
			return nil, fmt.Errorf("expected ',' at offset %d", i)
		}
		i++
	}
	return out, nil
}
