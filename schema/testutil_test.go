package schema_test

import (
	"context"
	"slices"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
	"github.com/placewise/localgraph/schema"
)

// memRepo is an in-memory location.Repository for tests.
type memRepo struct {
	recs []location.Record
}

func (m *memRepo) Get(_ context.Context, f location.Filter) ([]location.Record, error) {
	var out []location.Record
	for _, rec := range m.recs {
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		if len(f.IDs) > 0 && !slices.Contains(f.IDs, rec.ID) {
			continue
		}
		out = append(out, rec)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memRepo) ByID(_ context.Context, id string) (*location.Record, error) {
	for _, rec := range m.recs {
		if rec.ID == id {
			r := rec
			return &r, nil
		}
	}
	return nil, nil
}

const testSiteURL = "https://example.com"

// fullLocation returns a published location with every field set.
func fullLocation(id, name string) location.Record {
	return location.Record{
		ID:           id,
		Name:         name,
		Permalink:    testSiteURL + "/locations/" + id + "/",
		Status:       location.StatusPublished,
		BusinessType: "Restaurant",
		Street:       "1 Main St",
		Street2:      "Suite 4",
		City:         "Springfield",
		State:        "OR",
		Zipcode:      "97477",
		Country:      "US",
		Latitude:     "44.05",
		Longitude:    "-123.02",
		Phone:        "+1-555-0100",
		Phone2:       "+1-555-0101",
		Fax:          "+1-555-0102",
		Email:        "hello@example.com",
		ContactPhone: "+1-555-0103",
		ContactEmail: "contact@example.com",
		URL:          testSiteURL + "/" + id,
		VATID:        "VAT-1",
		TaxID:        "TAX-1",
		PriceRange:   "$$",
		AreaServed:   "Springfield",
		Logo:         testSiteURL + "/img/" + id + ".png",
	}
}

// companyOptions returns options for a company site with shared branding.
func companyOptions() *config.Options {
	opts := config.DefaultOptions()
	opts.Site.URL = testSiteURL
	opts.Site.Represents = "company"
	opts.Business.CompanyName = "Example Co"
	opts.Business.CompanyLogo = testSiteURL + "/img/logo.png"
	return opts
}

// locationPage builds the render context for a location's detail page.
func locationPage(rec *location.Record) *schema.Context {
	return schema.LocationPageContext(testSiteURL, rec, schema.RepresentsCompany)
}

// nodeByID finds a node by @id.
func nodeByID(g *schema.Graph, id string) schema.Node {
	for _, n := range g.Nodes {
		if n.ID() == id {
			return n
		}
	}
	return nil
}

// nodesWithKey returns the nodes carrying the given property.
func nodesWithKey(g *schema.Graph, key string) []schema.Node {
	var out []schema.Node
	for _, n := range g.Nodes {
		if _, ok := n[key]; ok {
			out = append(out, n)
		}
	}
	return out
}

// nodesWithType returns the nodes whose @type contains t.
func nodesWithType(g *schema.Graph, t string) []schema.Node {
	var out []schema.Node
	for _, n := range g.Nodes {
		if n.HasType(t) {
			out = append(out, n)
		}
	}
	return out
}
