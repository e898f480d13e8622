// Package config provides configuration loading and management for localgraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Toggle is a boolean option that tolerates loose YAML values. Anything that
// is not recognizably true-ish or false-ish is ignored and the toggle keeps
// its zero value instead of failing the whole config load.
type Toggle bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Toggle) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		*t = Toggle(b)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		*t = false
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "on", "yes", "true":
		*t = true
	default:
		*t = false
	}
	return nil
}

// Bool returns the toggle as a plain bool.
func (t Toggle) Bool() bool { return bool(t) }

// DayHours holds the opening hours for a single day of the week. A second
// from/to pair is only honored when multiple opening hours per day are
// enabled. Empty or unparseable times count as closed.
type DayHours struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	From2  string `yaml:"from2"`
	To2    string `yaml:"to2"`
	Closed Toggle `yaml:"closed"`
}

// WeekSchedule maps lowercase day names ("monday".."sunday") to their hours.
type WeekSchedule map[string]DayHours

// SharedInfo holds business details shared by all locations when the
// shared-business-info mode is active, and company-wide defaults otherwise.
type SharedInfo struct {
	CompanyName  string `yaml:"company_name"`
	Phone        string `yaml:"phone"`
	Phone2       string `yaml:"phone_2"`
	Fax          string `yaml:"fax"`
	Email        string `yaml:"email"`
	ContactPhone string `yaml:"contact_phone"`
	ContactEmail string `yaml:"contact_email"`
	URL          string `yaml:"url"`
	PriceRange   string `yaml:"price_range"`
	AreaServed   string `yaml:"area_served"`
	VATID        string `yaml:"vat_id"`
	TaxID        string `yaml:"tax_id"`
	ChamberID    string `yaml:"coc_id"`
	CompanyLogo  string `yaml:"company_logo"`
}

// HoursOptions holds the shared opening-hours schedule and its formatting
// switches.
type HoursOptions struct {
	Open247        Toggle       `yaml:"open_247"`
	MultiplePerDay Toggle       `yaml:"multiple_per_day"`
	Format12h      Toggle       `yaml:"format_12h"`
	Days           WeekSchedule `yaml:"days"`
}

// SiteInfo describes the site the graphs are rendered for.
type SiteInfo struct {
	// URL is the site root URL, used to scope site-wide node ids.
	URL string `yaml:"url"`

	// Represents is what the site publishes as: "company", "person" or
	// empty.
	Represents string `yaml:"represents"`
}

// Options represents the complete plugin-wide configuration. It is loaded
// once and treated as a read-only snapshot for the duration of a render.
type Options struct {
	// MultipleLocations enables multi-location (franchise/branch) mode.
	MultipleLocations Toggle `yaml:"multiple_locations"`

	// SameOrganization indicates all locations belong to one organization.
	// Only meaningful when MultipleLocations is on.
	SameOrganization Toggle `yaml:"same_organization"`

	// SharedBusinessInfo lets every location inherit the shared contact
	// details instead of defining its own.
	SharedBusinessInfo Toggle `yaml:"shared_business_info"`

	// SharedOpeningHours lets every location inherit the shared schedule.
	SharedOpeningHours Toggle `yaml:"shared_opening_hours"`

	// PrimaryLocation is the id of the designated flagship location.
	PrimaryLocation string `yaml:"primary_location"`

	// DefaultBusinessType is used when a location has no type of its own.
	DefaultBusinessType string `yaml:"default_business_type"`

	Site     SiteInfo     `yaml:"site"`
	Business SharedInfo   `yaml:"business"`
	Hours    HoursOptions `yaml:"hours"`

	// LocationsFile is the path to the YAML location data consumed by the
	// file-backed repository.
	LocationsFile string `yaml:"locations_file"`
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		DefaultBusinessType: "LocalBusiness",
		Site: SiteInfo{
			URL:        "http://localhost",
			Represents: "company",
		},
		Hours: HoursOptions{
			Days: WeekSchedule{},
		},
		LocationsFile: "locations.yaml",
	}
}

// Validate checks that the configuration is internally consistent.
func (o *Options) Validate() error {
	if o.DefaultBusinessType == "" {
		return fmt.Errorf("default_business_type is required")
	}
	if o.SameOrganization && !o.MultipleLocations {
		return fmt.Errorf("same_organization requires multiple_locations")
	}
	if o.SharedBusinessInfo && !o.SameOrganization {
		return fmt.Errorf("shared_business_info requires same_organization")
	}
	if o.SharedOpeningHours && !o.SameOrganization {
		return fmt.Errorf("shared_opening_hours requires same_organization")
	}
	switch o.Site.Represents {
	case "", "company", "person":
	default:
		return fmt.Errorf("site.represents must be company, person or empty, got %q", o.Site.Represents)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return opts, nil
}

// SaveToFile saves configuration to a YAML file.
func (o *Options) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Merge merges another Options into this one. The other config takes
// precedence for non-zero values; toggles merge with OR so a layered file
// can switch a mode on but not off.
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}

	o.MultipleLocations = o.MultipleLocations || other.MultipleLocations
	o.SameOrganization = o.SameOrganization || other.SameOrganization
	o.SharedBusinessInfo = o.SharedBusinessInfo || other.SharedBusinessInfo
	o.SharedOpeningHours = o.SharedOpeningHours || other.SharedOpeningHours

	if other.PrimaryLocation != "" {
		o.PrimaryLocation = other.PrimaryLocation
	}
	if other.DefaultBusinessType != "" {
		o.DefaultBusinessType = other.DefaultBusinessType
	}
	if other.LocationsFile != "" {
		o.LocationsFile = other.LocationsFile
	}

	if other.Site.URL != "" {
		o.Site.URL = other.Site.URL
	}
	if other.Site.Represents != "" {
		o.Site.Represents = other.Site.Represents
	}

	mergeSharedInfo(&o.Business, &other.Business)

	o.Hours.Open247 = o.Hours.Open247 || other.Hours.Open247
	o.Hours.MultiplePerDay = o.Hours.MultiplePerDay || other.Hours.MultiplePerDay
	o.Hours.Format12h = o.Hours.Format12h || other.Hours.Format12h
	for day, hours := range other.Hours.Days {
		if o.Hours.Days == nil {
			o.Hours.Days = WeekSchedule{}
		}
		o.Hours.Days[day] = hours
	}
}

func mergeSharedInfo(dst, src *SharedInfo) {
	if src.CompanyName != "" {
		dst.CompanyName = src.CompanyName
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.Phone2 != "" {
		dst.Phone2 = src.Phone2
	}
	if src.Fax != "" {
		dst.Fax = src.Fax
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.ContactPhone != "" {
		dst.ContactPhone = src.ContactPhone
	}
	if src.ContactEmail != "" {
		dst.ContactEmail = src.ContactEmail
	}
	if src.URL != "" {
		dst.URL = src.URL
	}
	if src.PriceRange != "" {
		dst.PriceRange = src.PriceRange
	}
	if src.AreaServed != "" {
		dst.AreaServed = src.AreaServed
	}
	if src.VATID != "" {
		dst.VATID = src.VATID
	}
	if src.TaxID != "" {
		dst.TaxID = src.TaxID
	}
	if src.ChamberID != "" {
		dst.ChamberID = src.ChamberID
	}
	if src.CompanyLogo != "" {
		dst.CompanyLogo = src.CompanyLogo
	}
}
