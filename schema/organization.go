package schema

import (
	"context"

	"github.com/placewise/localgraph/location"
	"github.com/placewise/localgraph/taxonomy"
)

// organizationPiece builds the Organization node, in one of two modes.
//
// Filtering mode: the host framework owns the canonical Organization node
// (it represents the company site-wide), so the piece registers a transform
// callback instead of emitting a node of its own. The callback fills the
// host's node from the related location, from the shared settings when no
// single location represents the organization, or adds only the
// main-entity reference in independent-branch setups.
//
// Direct mode: no host-owned node exists; the main variant emits an
// Organization node filled from the current location, and the branch
// variant emits the branch Organization node for non-primary location
// pages.
type organizationPiece struct {
	branch bool
}

func (p organizationPiece) Name() string {
	if p.branch {
		return "branch-organization"
	}
	return "organization"
}

// RegisterFilters installs the organization transform callback when
// filtering mode applies. The assembler calls this once at the start of a
// render, before any piece generates.
func (p organizationPiece) RegisterFilters(ctx context.Context, r *Render) {
	if p.branch || !r.Topology.ShouldFilterOrganization() {
		return
	}
	r.Filters.RegisterOrganization(func(n Node) Node {
		return p.filterOrganization(ctx, r, n)
	})
}

func (p organizationPiece) IsNeeded(ctx context.Context, r *Render) bool {
	t := r.Topology
	if p.branch {
		return t.WillEmitBranchOrganization(ctx)
	}
	if t.ShouldFilterOrganization() {
		// The host emits the node; the registered callback transforms it.
		return false
	}
	return t.MultipleLocations() && !t.OneOrganization() && t.CurrentLocation(ctx) != nil
}

func (p organizationPiece) Generate(ctx context.Context, r *Render) (Node, error) {
	rec := r.Topology.CurrentLocation(ctx)
	if rec == nil {
		return nil, nil
	}

	n := Node{"@type": []string{"Organization", "Place"}}
	p.fillFromLocation(ctx, r, n, rec)

	if p.branch {
		n["@id"] = BranchOrganizationID(r.Ctx.Canonical)
		setNonEmpty(n, "name", r.Ctx.PageTitle)
		if r.Topology.OneOrganization() {
			n["parentOrganization"] = Ref(OrganizationID(r.Ctx.SiteURL))
		}
	} else {
		setNonEmpty(n, "name", rec.Name)
	}
	return n, nil
}

// filterOrganization is the transform applied to the host-owned
// Organization node.
func (p organizationPiece) filterOrganization(ctx context.Context, r *Render, n Node) Node {
	t := r.Topology

	n.AppendType("Place")

	// The branch organization node is independently complete; leave it be.
	if n.ID() == BranchOrganizationID(r.Ctx.Canonical) {
		return n
	}

	if t.MultipleLocations() && !t.OneOrganization() {
		// Independent branch organizations: the site-wide node only gains
		// the main-entity reference when no branch node claims the page.
		if t.ShouldOutputMainEntity(ctx, false) {
			n["mainEntityOfPage"] = Ref(r.Ctx.MainEntityID)
		}
		return n
	}

	rec := t.RelatedLocation(ctx)
	if rec == nil {
		if t.SharedBusinessInfo() || t.SharedOpeningHours() {
			p.fillFromShared(ctx, r, n)
		}
		return n
	}

	p.fillFromLocation(ctx, r, n, rec)
	if url, ok := n["url"].(string); ok {
		n["url"] = r.Filters.ApplySiteURL(url)
	}
	return n
}

// fillFromShared fills the organization from the shared global settings:
// the virtual organization with no single location behind it.
func (p organizationPiece) fillFromShared(ctx context.Context, r *Render, n Node) {
	t := r.Topology
	info := &r.Opts.Business

	n.AppendType(r.Opts.DefaultBusinessType)

	if t.SharedBusinessInfo() {
		// No primary or acting primary exists here, so no address node is
		// emitted and no address reference is added.
		addTelephone(n, info.Phone, info.Phone2)
		addContactPoint(n, info.ContactPhone, info.ContactEmail)
		setNonEmpty(n, "email", info.Email)
		setNonEmpty(n, "faxNumber", info.Fax)
		setNonEmpty(n, "areaServed", info.AreaServed)
		setNonEmpty(n, "vatID", info.VATID)
		setNonEmpty(n, "taxID", info.TaxID)
		if taxonomy.IsLocalBusinessSubtype(r.Opts.DefaultBusinessType) {
			setNonEmpty(n, "priceRange", info.PriceRange)
		}
	}

	if t.SharedOpeningHours() {
		addOpeningHours(n, r.Hours.Shared())
	}
}

// fillFromLocation fills an organization node from a single location
// record. Shared by the filtering callback and both direct variants.
func (p organizationPiece) fillFromLocation(ctx context.Context, r *Render, n Node, rec *location.Record) {
	businessType := rec.BusinessType
	if businessType == "" {
		businessType = r.Opts.DefaultBusinessType
	}
	n.AppendType(businessType)

	if r.addressWillEmit(ctx, p.branch, rec) {
		n["address"] = Ref(r.addressID(p.branch))
	}

	if p.branch {
		n["@id"] = BranchOrganizationID(r.Ctx.Canonical)
	} else {
		n["@id"] = OrganizationID(r.Ctx.SiteURL)
	}

	if r.Topology.ShouldOutputMainEntity(ctx, p.branch) {
		n["mainEntityOfPage"] = Ref(r.Ctx.MainEntityID)
	}

	if r.logoWillEmit(ctx, p.branch, rec) {
		logoRef := Ref(r.logoID(p.branch))
		n["logo"] = logoRef
		n["image"] = logoRef
	}

	if rec.HasGeo() {
		n["geo"] = Node{
			"@type":     "GeoCoordinates",
			"latitude":  rec.Latitude,
			"longitude": rec.Longitude,
		}
	}

	addTelephone(n, rec.Phone, rec.Phone2)
	addContactPoint(n, rec.ContactPhone, rec.ContactEmail)
	addOpeningHours(n, r.Hours.ForLocation(rec))

	setNonEmpty(n, "email", rec.Email)
	setNonEmpty(n, "faxNumber", rec.Fax)
	setNonEmpty(n, "areaServed", rec.AreaServed)
	setNonEmpty(n, "vatID", rec.VATID)
	setNonEmpty(n, "taxID", rec.TaxID)
	setNonEmpty(n, "url", rec.URL)
	setNonEmpty(n, "globalLocationNumber", rec.GlobalLocationNumber)

	if taxonomy.IsLocalBusinessSubtype(businessType) {
		setNonEmpty(n, "priceRange", rec.PriceRange)
		setNonEmpty(n, "currenciesAccepted", rec.CurrenciesAccepted)
		setNonEmpty(n, "paymentAccepted", rec.PaymentAccepted)
	}
}

// addTelephone sets telephone to the non-empty phone numbers, primary
// first.
func addTelephone(n Node, phones ...string) {
	var numbers []string
	for _, phone := range phones {
		if phone != "" {
			numbers = append(numbers, phone)
		}
	}
	if len(numbers) > 0 {
		n["telephone"] = numbers
	}
}

// addContactPoint sets contactPoint when a contact phone or email exists.
func addContactPoint(n Node, phone, email string) {
	if phone == "" && email == "" {
		return
	}
	cp := Node{
		"@type":       "ContactPoint",
		"contactType": "customer service",
	}
	setNonEmpty(cp, "telephone", phone)
	setNonEmpty(cp, "email", email)
	n["contactPoint"] = cp
}

// addOpeningHours sets openingHoursSpecification from calculator output.
func addOpeningHours(n Node, entries []HoursEntry) {
	if len(entries) == 0 {
		return
	}
	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, e.Node())
	}
	n["openingHoursSpecification"] = nodes
}
