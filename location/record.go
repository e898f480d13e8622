// Package location provides the business-location record model and the
// repository used to look records up per render. Records are read-only
// snapshots; persistence belongs to whichever store backs the repository.
package location

import (
	"context"

	"github.com/placewise/localgraph/config"
)

// StatusPublished is the publish status of a live location.
const StatusPublished = "publish"

// Hours holds a location's opening-hours overrides. When Override is false
// in shared-opening-hours mode the shared schedule applies regardless of
// what the location defines.
type Hours struct {
	// Override marks this location as opting out of the shared schedule.
	Override bool `yaml:"override"`

	// Open247 overrides the global 24/7 flag when set.
	Open247 *bool `yaml:"open_247"`

	Days config.WeekSchedule `yaml:"days"`
}

// Record is a flat snapshot of one business location.
type Record struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Permalink    string `yaml:"permalink"`
	Status       string `yaml:"status"`
	BusinessType string `yaml:"business_type"`

	Street  string `yaml:"street"`
	Street2 string `yaml:"street_2"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	Zipcode string `yaml:"zipcode"`
	Country string `yaml:"country"`

	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`

	Phone        string `yaml:"phone"`
	Phone2       string `yaml:"phone_2"`
	Fax          string `yaml:"fax"`
	Email        string `yaml:"email"`
	ContactPhone string `yaml:"contact_phone"`
	ContactEmail string `yaml:"contact_email"`
	URL          string `yaml:"url"`

	VATID                string `yaml:"vat_id"`
	TaxID                string `yaml:"tax_id"`
	ChamberID            string `yaml:"coc_id"`
	GlobalLocationNumber string `yaml:"global_location_number"`

	PriceRange         string `yaml:"price_range"`
	CurrenciesAccepted string `yaml:"currencies_accepted"`
	PaymentAccepted    string `yaml:"payment_accepted"`
	AreaServed         string `yaml:"area_served"`

	Logo string `yaml:"logo"`

	Categories []string `yaml:"categories"`

	Hours *Hours `yaml:"hours"`
}

// Published reports whether the location is live.
func (r *Record) Published() bool {
	return r.Status == StatusPublished
}

// HasAddress reports whether the location carries the minimum fields
// required for a valid PostalAddress node: street, postal code and country.
func (r *Record) HasAddress() bool {
	return r.Street != "" && r.Zipcode != "" && r.Country != ""
}

// HasGeo reports whether both coordinates are present.
func (r *Record) HasGeo() bool {
	return r.Latitude != "" && r.Longitude != ""
}

// Filter selects location records. Zero-value fields are ignored.
type Filter struct {
	// IDs restricts results to an explicit id list, in the given order.
	IDs []string

	// Category restricts results to locations tagged with the category.
	Category string

	// Status restricts results by publish status ("publish", "draft").
	Status string

	// Limit caps the number of results; 0 means unlimited.
	Limit int
}

// Repository is the read-only location record provider.
type Repository interface {
	// Get returns the records matching the filter, possibly none.
	Get(ctx context.Context, f Filter) ([]Record, error)

	// ByID returns a single record, or nil when no such location exists.
	ByID(ctx context.Context, id string) (*Record, error)
}
