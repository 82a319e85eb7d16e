// Package selection parses user-facing column specifications and resolves
// them against a header row into concrete column indices.
//
// Syntax, comma separated:
//
//	1          the first column (indices are 1-based)
//	2-4        columns 2, 3, 4 (a reversed range selects in reverse)
//	-3         columns 1 through 3; "3-" is 3 through the last column
//	name       the first column whose header equals "name"
//	name[2]    the third column named "name" (duplicate pick is 0-based)
//	"a-b"      a quoted name; quoting protects commas, dashes and digits
//
// Names require headers; with --no-headers only numeric forms resolve.
// Resolution happens once, before streaming starts, so a bad selection is
// always a usage error and never a mid-stream failure.
package selection

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kmarsh/csvfill/internal/csvio"
)

// Selection is an ordered set of resolved zero-based column indices.
type Selection []int

// Sorted returns the selection sorted ascending with duplicates removed.
// The fill engine's field mapper requires this form.
func (s Selection) Sorted() Selection {
	out := append(Selection(nil), s...)
	sort.Ints(out)
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

// Spec is a parsed but unresolved column specification.
type Spec struct {
	raw   string
	elems []element
}

// element is one comma-separated piece: a single selector or an inclusive
// range between two selectors.
type element struct {
	start   selector
	end     selector
	isRange bool
}

// selector names one column, by 1-based position or by header name.
type selector struct {
	name  string
	index int  // 1-based; 0 when selecting by name
	dup   int  // k in name[k]; 0 when unspecified
	open  bool // open end of a range ("-3" or "3-")
}

// ParseSpec parses a column specification. Resolution against a header is
// a separate step (Resolve).
func ParseSpec(raw string) (*Spec, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty column selection")
	}
	spec := &Spec{raw: raw}
	for _, part := range splitSpec(raw) {
		elem, err := parseElement(part)
		if err != nil {
			return nil, fmt.Errorf("selection %q: %w", raw, err)
		}
		spec.elems = append(spec.elems, elem)
	}
	return spec, nil
}

// splitSpec splits on commas that are outside double quotes.
func splitSpec(raw string) []string {
	var parts []string
	var cur strings.Builder
	inQuote := false
	for _, r := range raw {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ',' && !inQuote:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

func parseElement(part string) (element, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return element{}, fmt.Errorf("empty selection element")
	}

	// A dash outside quotes makes this a range.
	if i := rangeDash(part); i >= 0 {
		start, err := parseSelector(part[:i], true)
		if err != nil {
			return element{}, err
		}
		end, err := parseSelector(part[i+1:], true)
		if err != nil {
			return element{}, err
		}
		if start.open && end.open {
			return element{}, fmt.Errorf("range %q has no endpoints", part)
		}
		return element{start: start, end: end, isRange: true}, nil
	}

	sel, err := parseSelector(part, false)
	if err != nil {
		return element{}, err
	}
	return element{start: sel}, nil
}

// rangeDash returns the index of the range separator in part, or -1.
// Dashes inside quotes never separate a range.
func rangeDash(part string) int {
	inQuote := false
	for i, r := range part {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == '-' && !inQuote:
			return i
		}
	}
	return -1
}

func parseSelector(s string, allowOpen bool) (selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if allowOpen {
			return selector{open: true}, nil
		}
		return selector{}, fmt.Errorf("empty column selector")
	}

	if strings.HasPrefix(s, `"`) {
		name, rest, err := unquote(s)
		if err != nil {
			return selector{}, err
		}
		sel := selector{name: name}
		return applyDupSuffix(sel, rest)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return selector{}, fmt.Errorf("column index %d out of range (indices are 1-based)", n)
		}
		return selector{index: n}, nil
	}

	sel := selector{name: s}
	if i := strings.IndexByte(s, '['); i >= 0 {
		sel.name = s[:i]
		return applyDupSuffix(sel, s[i:])
	}
	return sel, nil
}

// unquote strips the surrounding quotes from a quoted name and returns
// whatever trails the closing quote (a possible [k] suffix).
func unquote(s string) (name, rest string, err error) {
	end := strings.IndexByte(s[1:], '"')
	if end < 0 {
		return "", "", fmt.Errorf("unterminated quote in %q", s)
	}
	return s[1 : end+1], s[end+2:], nil
}

// applyDupSuffix parses an optional [k] duplicate-pick suffix.
func applyDupSuffix(sel selector, rest string) (selector, error) {
	if rest == "" {
		return sel, nil
	}
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return selector{}, fmt.Errorf("malformed selector suffix %q", rest)
	}
	k, err := strconv.Atoi(rest[1 : len(rest)-1])
	if err != nil || k < 0 {
		return selector{}, fmt.Errorf("malformed duplicate index %q", rest)
	}
	sel.dup = k
	return sel, nil
}

// Resolve maps the spec to concrete column indices using the header row.
// When noHeaders is set the header is really the first data row: only
// numeric selectors are allowed and the row supplies the column count.
func (s *Spec) Resolve(header csvio.Record, noHeaders bool) (Selection, error) {
	var out Selection
	for _, elem := range s.elems {
		if !elem.isRange {
			idx, err := resolveOne(elem.start, header, noHeaders)
			if err != nil {
				return nil, fmt.Errorf("selection %q: %w", s.raw, err)
			}
			out = append(out, idx)
			continue
		}

		start, err := resolveOne(elem.start, header, noHeaders)
		if err != nil {
			return nil, fmt.Errorf("selection %q: %w", s.raw, err)
		}
		end, err := resolveOne(elem.end, header, noHeaders)
		if err != nil {
			return nil, fmt.Errorf("selection %q: %w", s.raw, err)
		}
		if elem.start.open {
			start = 0
		}
		if elem.end.open {
			end = len(header) - 1
		}
		if start <= end {
			for i := start; i <= end; i++ {
				out = append(out, i)
			}
		} else {
			for i := start; i >= end; i-- {
				out = append(out, i)
			}
		}
	}
	return out, nil
}

// resolveOne resolves a single selector to a zero-based index.
func resolveOne(sel selector, header csvio.Record, noHeaders bool) (int, error) {
	if sel.open {
		return 0, nil // caller substitutes the range endpoint
	}
	if sel.index > 0 {
		if sel.index > len(header) {
			return 0, fmt.Errorf("column index %d out of range (row has %d columns)", sel.index, len(header))
		}
		return sel.index - 1, nil
	}

	if noHeaders {
		return 0, fmt.Errorf("cannot select column %q by name with --no-headers", sel.name)
	}
	seen := 0
	for i, h := range header {
		if string(h) == sel.name {
			if seen == sel.dup {
				return i, nil
			}
			seen++
		}
	}
	if seen > 0 {
		return 0, fmt.Errorf("column %q has only %d occurrence(s), wanted [%d]", sel.name, seen, sel.dup)
	}
	return 0, fmt.Errorf("unknown column %q", sel.name)
}
