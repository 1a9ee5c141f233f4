package params

import (
	"net/url"
	"testing"
)

func TestParsePagination_Defaults(t *testing.T) {
	p := ParsePagination(url.Values{})
	if p.Limit != 15 || p.Page != 1 || p.Offset != 0 {
		t.Errorf("defaults = limit %d page %d offset %d", p.Limit, p.Page, p.Offset)
	}
}

func TestParsePagination_CapsAndGuards(t *testing.T) {
	cases := []struct {
		query     string
		wantLimit int
		wantPage  int
	}{
		{"limit=100", 30, 1},
		{"limit=-5", 15, 1},
		{"limit=abc", 15, 1},
		{"limit=20&page=3", 20, 3},
		{"page=0", 15, 1},
		{"page=-2", 15, 1},
	}
	for _, tc := range cases {
		q, _ := url.ParseQuery(tc.query)
		p := ParsePagination(q)
		if p.Limit != tc.wantLimit || p.Page != tc.wantPage {
			t.Errorf("%q: limit %d page %d, want limit %d page %d",
				tc.query, p.Limit, p.Page, tc.wantLimit, tc.wantPage)
		}
		if p.Offset != (p.Page-1)*p.Limit {
			t.Errorf("%q: offset %d inconsistent with page %d limit %d", tc.query, p.Offset, p.Page, p.Limit)
		}
	}
}

func TestComputeMeta(t *testing.T) {
	p := Pagination{Limit: 10, Page: 2, Offset: 10}
	p.ComputeMeta(35)

	if p.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", p.TotalPages)
	}
	if !p.HasPrev || !p.HasNext {
		t.Errorf("HasPrev = %v HasNext = %v, want both true", p.HasPrev, p.HasNext)
	}

	p.Page = 4
	p.ComputeMeta(35)
	if p.HasNext {
		t.Error("last page should not have a next page")
	}
}
