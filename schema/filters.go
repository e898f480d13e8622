package schema

// OrganizationFilter transforms the host framework's Organization node. The
// host invokes registered filters in registration order while serializing
// the graph; filters must return the node they were given (possibly
// mutated) rather than a replacement.
type OrganizationFilter func(Node) Node

// SiteURLFilter allows the organization's url property to be overridden.
type SiteURLFilter func(string) string

// Filters is the request-scoped hook registry. One piece can transform
// another's output by registering a callback here instead of owning the
// node itself.
type Filters struct {
	org     []OrganizationFilter
	siteURL []SiteURLFilter
}

// NewFilters creates an empty filter registry.
func NewFilters() *Filters {
	return &Filters{}
}

// RegisterOrganization registers a transform applied to Organization nodes.
func (f *Filters) RegisterOrganization(fn OrganizationFilter) {
	f.org = append(f.org, fn)
}

// ApplyOrganization runs all organization filters in order.
func (f *Filters) ApplyOrganization(n Node) Node {
	for _, fn := range f.org {
		n = fn(n)
	}
	return n
}

// RegisterSiteURL registers a site-URL override.
func (f *Filters) RegisterSiteURL(fn SiteURLFilter) {
	f.siteURL = append(f.siteURL, fn)
}

// ApplySiteURL runs all site-URL filters in order.
func (f *Filters) ApplySiteURL(url string) string {
	for _, fn := range f.siteURL {
		url = fn(url)
	}
	return url
}
