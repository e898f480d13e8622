package schema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/placewise/localgraph/location"
)

// Representation indicates what the site as a whole represents.
type Representation string

const (
	RepresentsCompany Representation = "company"
	RepresentsPerson  Representation = "person"
	RepresentsNone    Representation = ""
)

// PageKind classifies the page being rendered.
type PageKind string

const (
	// PageLocation is a single-location detail page.
	PageLocation PageKind = "location"

	// PageLocationsArchive is the locations overview/archive page.
	PageLocationsArchive PageKind = "archive"

	// PageOther is any other page on the site.
	PageOther PageKind = "other"
)

// Context is the per-request render context supplied by the host framework.
// It is immutable for the duration of one render.
type Context struct {
	// RequestID identifies one render for logging and publishing.
	RequestID string

	// SiteURL is the site root URL, used to scope site-wide node ids.
	SiteURL string

	// Canonical is the canonical URL of the page being rendered, used to
	// scope page-level node ids.
	Canonical string

	// Representation indicates whether the site represents a company or a
	// person.
	Representation Representation

	// MainEntityID is the id of the page's main-entity node, computed by
	// the host framework.
	MainEntityID string

	// Page classifies the current page.
	Page PageKind

	// CurrentLocationID is the location shown on this page. Only set when
	// Page is PageLocation.
	CurrentLocationID string

	// PageTitle is the rendered page title, used as the branch
	// organization name.
	PageTitle string
}

// NewContext returns a Context with a fresh request id and the main-entity
// id defaulted to the canonical URL's webpage fragment when unset.
func NewContext(siteURL, canonical string, rep Representation, page PageKind) *Context {
	return &Context{
		RequestID:      uuid.NewString(),
		SiteURL:        siteURL,
		Canonical:      canonical,
		Representation: rep,
		MainEntityID:   canonical + "#webpage",
		Page:           page,
	}
}

// LocationPageContext builds the render context for a location detail page.
func LocationPageContext(siteURL string, rec *location.Record, rep Representation) *Context {
	canonical := rec.Permalink
	if canonical == "" {
		canonical = strings.TrimSuffix(siteURL, "/") + "/locations/" + rec.ID + "/"
	}
	ctx := NewContext(siteURL, canonical, rep, PageLocation)
	ctx.CurrentLocationID = rec.ID
	ctx.PageTitle = rec.Name
	return ctx
}

// ArchivePageContext builds the render context for the locations archive.
func ArchivePageContext(siteURL string, rep Representation) *Context {
	canonical := strings.TrimSuffix(siteURL, "/") + "/locations/"
	return NewContext(siteURL, canonical, rep, PageLocationsArchive)
}

// ParseRepresentation maps a configuration value onto a Representation.
// Unknown values mean the site represents nothing in particular.
func ParseRepresentation(s string) Representation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "company":
		return RepresentsCompany
	case "person":
		return RepresentsPerson
	}
	return RepresentsNone
}

// IsCompany reports whether the site represents a company.
func (c *Context) IsCompany() bool {
	return c.Representation == RepresentsCompany
}

// IsLocationPage reports whether the current page is a location detail page.
func (c *Context) IsLocationPage() bool {
	return c.Page == PageLocation && c.CurrentLocationID != ""
}

// IsArchivePage reports whether the current page is the locations archive.
func (c *Context) IsArchivePage() bool {
	return c.Page == PageLocationsArchive
}
