package listing

import (
	"errors"
	"testing"
)

func TestBuildSearch(t *testing.T) {
	if got := BuildSearch(map[string]string{}); got != "" {
		t.Errorf("expected empty search term, got %q", got)
	}
	if got := BuildSearch(map[string]string{"search": "shirt"}); got != "shirt" {
		t.Errorf("expected %q, got %q", "shirt", got)
	}
}

func TestBuildPager(t *testing.T) {
	tests := []struct {
		name          string
		params        map[string]string
		resultPerPage int
		wantPage      int
		wantLimit     int
		wantSkip      int
	}{
		{"default page", map[string]string{}, 10, 1, 10, 0},
		{"explicit page", map[string]string{"page": "3"}, 10, 3, 10, 20},
		{"non-numeric page", map[string]string{"page": "abc"}, 10, 1, 10, 0},
		{"zero page", map[string]string{"page": "0"}, 10, 1, 10, 0},
		{"negative page", map[string]string{"page": "-2"}, 10, 1, 10, 0},
		{"page two", map[string]string{"page": "2"}, 6, 2, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPager(tt.params, tt.resultPerPage)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Skip != tt.wantSkip {
				t.Errorf("BuildPager() = %+v, want page=%d limit=%d skip=%d",
					got, tt.wantPage, tt.wantLimit, tt.wantSkip)
			}
		})
	}
}

func TestBuildFiltersEquality(t *testing.T) {
	filters, err := BuildFilters(map[string]string{"category": "tshirts"})
	if err != nil {
		t.Fatalf("BuildFilters() error = %v", err)
	}

	conds, ok := filters["category"]
	if !ok || len(conds) != 1 {
		t.Fatalf("expected one condition for category, got %v", filters)
	}
	if conds[0].Op != OpEq || conds[0].Value != "tshirts" {
		t.Errorf("expected equality on %q, got %+v", "tshirts", conds[0])
	}
}

func TestBuildFiltersComparisonOperators(t *testing.T) {
	filters, err := BuildFilters(map[string]string{"price": `{"gte":"100"}`})
	if err != nil {
		t.Fatalf("BuildFilters() error = %v", err)
	}

	conds := filters["price"]
	if len(conds) != 1 {
		t.Fatalf("expected one condition, got %d", len(conds))
	}
	if conds[0].Op != OpGte {
		t.Errorf("expected operator %q, got %q", OpGte, conds[0].Op)
	}
	if conds[0].Value != float64(100) {
		t.Errorf("expected numeric operand 100, got %v (%T)", conds[0].Value, conds[0].Value)
	}
}

func TestBuildFiltersRange(t *testing.T) {
	filters, err := BuildFilters(map[string]string{"price": `{"gte":199,"lte":999}`})
	if err != nil {
		t.Fatalf("BuildFilters() error = %v", err)
	}

	conds := filters["price"]
	if len(conds) != 2 {
		t.Fatalf("expected two conditions, got %d", len(conds))
	}
	seen := map[Op]float64{}
	for _, c := range conds {
		seen[c.Op] = c.Value.(float64)
	}
	if seen[OpGte] != 199 || seen[OpLte] != 999 {
		t.Errorf("unexpected range conditions: %v", seen)
	}
}

func TestBuildFiltersStripsReservedKeys(t *testing.T) {
	filters, err := BuildFilters(map[string]string{
		"search":   "shirt",
		"page":     "2",
		"limit":    "50",
		"category": "hoodies",
	})
	if err != nil {
		t.Fatalf("BuildFilters() error = %v", err)
	}

	for _, reserved := range []string{"search", "page", "limit"} {
		if _, ok := filters[reserved]; ok {
			t.Errorf("reserved key %q leaked into filters", reserved)
		}
	}
	if _, ok := filters["category"]; !ok {
		t.Error("non-reserved key missing from filters")
	}
}

func TestBuildFiltersMalformed(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"broken json", map[string]string{"price": `{"gte":`}},
		{"unknown operator", map[string]string{"price": `{"between":"1,2"}`}},
		{"empty object", map[string]string{"price": `{}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFilters(tt.params)
			if !errors.Is(err, ErrMalformedFilter) {
				t.Errorf("expected ErrMalformedFilter, got %v", err)
			}
		})
	}
}

func TestBuildComposition(t *testing.T) {
	d, err := Build(map[string]string{
		"search":   "shirt",
		"page":     "3",
		"category": "tshirts",
		"price":    `{"lt":"500"}`,
	}, 10)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if d.Search != "shirt" {
		t.Errorf("search = %q, want %q", d.Search, "shirt")
	}
	if d.Pager.Limit != 10 || d.Pager.Skip != 20 {
		t.Errorf("pager = %+v, want limit=10 skip=20", d.Pager)
	}
	if len(d.Filters) != 2 {
		t.Errorf("expected 2 filter fields, got %d: %v", len(d.Filters), d.Filters)
	}
	if d.Filters["price"][0].Op != OpLt {
		t.Errorf("price operator = %q, want %q", d.Filters["price"][0].Op, OpLt)
	}
}

func TestBuildMalformedFilterFailsWholeBuild(t *testing.T) {
	_, err := Build(map[string]string{"search": "shirt", "price": `{bad`}, 10)
	if !errors.Is(err, ErrMalformedFilter) {
		t.Errorf("expected ErrMalformedFilter, got %v", err)
	}
}
