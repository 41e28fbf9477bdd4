package domain

import (
	"net/url"
	"strconv"
)

// AllRegions is the region selector's default option. It means "no
// constraint" and must never reach the wire.
const AllRegions = "All Regions"

// SearchFilters is the hero search form state. Zero/sentinel values are
// omitted from the outgoing query so the backend only sees constraints
// the visitor actually set.
type SearchFilters struct {
	Region   string
	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD
	Guests   int

	// Extended filters the backend accepts beyond the hero form.
	PropertyType string
	Bedrooms     int
	MinPrice     float64
	MaxPrice     float64
}

// Query translates the filters into request parameters.
func (f SearchFilters) Query() url.Values {
	params := url.Values{}
	if f.Region != "" && f.Region != AllRegions {
		params.Set("region", f.Region)
	}
	if f.CheckIn != "" {
		params.Set("check_in", f.CheckIn)
	}
	if f.CheckOut != "" {
		params.Set("check_out", f.CheckOut)
	}
	if f.Guests > 1 {
		params.Set("guests", strconv.Itoa(f.Guests))
	}
	if f.PropertyType != "" {
		params.Set("property_type", f.PropertyType)
	}
	if f.Bedrooms > 0 {
		params.Set("bedrooms", strconv.Itoa(f.Bedrooms))
	}
	if f.MinPrice > 0 {
		params.Set("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		params.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	return params
}

// Empty reports whether no constraint was set at all.
func (f SearchFilters) Empty() bool {
	return len(f.Query()) == 0
}
