/*
Package listing converts untrusted query-string parameters into a structured
query descriptor: a free-text search term, field-level filter conditions, and
offset pagination. The descriptor is store-agnostic; translation to a concrete
query happens in the persistence layer.
*/
package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedFilter marks a client-supplied filter value that could not be
// parsed. The whole filter build fails; callers reject the request.
var ErrMalformedFilter = errors.New("malformed filter expression")

// Op identifies a comparison operator in a filter condition.
type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
)

// operatorTokens maps the wire-level operator tokens clients send inside
// nested filter values to their typed form.
var operatorTokens = map[string]Op{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
}

// Reserved control keys that never become filter conditions.
const (
	keySearch = "search"
	keyPage   = "page"
	keyLimit  = "limit"
)

// Condition is a single field-level predicate.
type Condition struct {
	Op    Op
	Value interface{}
}

// Pager holds the resolved offset pagination window.
type Pager struct {
	Page  int
	Limit int
	Skip  int
}

// Descriptor is the structured representation of one listing request.
type Descriptor struct {
	// Search is the free-text term matched against the name field.
	// The literal client value is used as the pattern; metacharacters are
	// not escaped (kept as-observed, see DESIGN.md).
	Search  string
	Filters map[string][]Condition
	Pager   Pager
}

// BuildSearch extracts the free-text search term. Empty string means no
// search condition.
func BuildSearch(params map[string]string) string {
	return params[keySearch]
}

// BuildFilters copies every non-reserved parameter into filter conditions.
// A value shaped like {"gte":"100"} is parsed as a nested operator object;
// anything else is an equality condition. Malformed nested values fail the
// whole build with ErrMalformedFilter.
func BuildFilters(params map[string]string) (map[string][]Condition, error) {
	filters := make(map[string][]Condition)

	for key, value := range params {
		if key == keySearch || key == keyPage || key == keyLimit {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(value), "{") {
			conds, err := parseOperatorObject(key, value)
			if err != nil {
				return nil, err
			}
			filters[key] = conds
			continue
		}

		filters[key] = []Condition{{Op: OpEq, Value: coerceScalar(value)}}
	}

	return filters, nil
}

// parseOperatorObject decodes a nested filter value into typed conditions.
// This is a structured traversal of the parsed object; no text substitution
// is performed on the serialized form.
func parseOperatorObject(key, value string) ([]Condition, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedFilter, key, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: field %q: empty operator object", ErrMalformedFilter, key)
	}

	conds := make([]Condition, 0, len(raw))
	for token, operand := range raw {
		op, ok := operatorTokens[token]
		if !ok {
			return nil, fmt.Errorf("%w: field %q: unknown operator %q", ErrMalformedFilter, key, token)
		}

		var v interface{}
		if err := json.Unmarshal(operand, &v); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedFilter, key, err)
		}
		if s, ok := v.(string); ok {
			v = coerceScalar(s)
		}
		conds = append(conds, Condition{Op: op, Value: v})
	}

	return conds, nil
}

// coerceScalar turns numeric- and boolean-looking strings into typed values
// so comparisons line up with typed document fields.
func coerceScalar(s string) interface{} {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// BuildPager resolves the pagination window. resultPerPage comes from server
// configuration, never from the client; non-numeric or sub-1 page values
// resolve to page 1.
func BuildPager(params map[string]string, resultPerPage int) Pager {
	page := 1
	if raw, ok := params[keyPage]; ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}

	return Pager{
		Page:  page,
		Limit: resultPerPage,
		Skip:  resultPerPage * (page - 1),
	}
}

// Build composes search, filters, and pager into one descriptor.
// The stages are independent; search and filters combine as a logical AND
// when executed, and the pager applies after both.
func Build(params map[string]string, resultPerPage int) (*Descriptor, error) {
	filters, err := BuildFilters(params)
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		Search:  BuildSearch(params),
		Filters: filters,
		Pager:   BuildPager(params, resultPerPage),
	}, nil
}
