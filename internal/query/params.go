package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// URL parameter names. They are part of shareable shop links and must not change.
const (
	ParamCategory = "category"
	ParamBrand    = "brand"
	ParamSearch   = "q"
	ParamMin      = "min"
	ParamMax      = "max"
	ParamSort     = "sort"
)

// ParseParams reads shop filters from URL query values. Multi-value filters
// are comma separated; numbers that do not parse are ignored and an unknown
// sort falls back to popular.
func ParseParams(values url.Values) Params {
	p := Params{
		Categories: splitList(values.Get(ParamCategory)),
		Brands:     splitList(values.Get(ParamBrand)),
		PriceMin:   parseBound(values.Get(ParamMin)),
		PriceMax:   parseBound(values.Get(ParamMax)),
		Search:     values.Get(ParamSearch),
		Sort:       SortOption(values.Get(ParamSort)),
	}
	if !p.Sort.Valid() {
		p.Sort = SortPopular
	}
	return p
}

// Encode renders p back into URL query values. The default sort is omitted
// so that an unfiltered shop link stays bare.
func (p Params) Encode() url.Values {
	values := url.Values{}
	if len(p.Categories) > 0 {
		values.Set(ParamCategory, strings.Join(p.Categories, ","))
	}
	if len(p.Brands) > 0 {
		values.Set(ParamBrand, strings.Join(p.Brands, ","))
	}
	if p.Search != "" {
		values.Set(ParamSearch, p.Search)
	}
	if p.PriceMin != nil {
		values.Set(ParamMin, strconv.FormatFloat(*p.PriceMin, 'f', -1, 64))
	}
	if p.PriceMax != nil {
		values.Set(ParamMax, strconv.FormatFloat(*p.PriceMax, 'f', -1, 64))
	}
	if p.Sort != "" && p.Sort != SortPopular {
		values.Set(ParamSort, string(p.Sort))
	}
	return values
}

func splitList(raw string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

func parseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}
