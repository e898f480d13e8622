package schema

import (
	"context"
	"fmt"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
)

// Topology answers the mode questions that decide the shape of the graph:
// single-location, multi-location sharing one organization, or
// multi-location with independent branch organizations. It is the single
// source of truth for these decisions; every piece asks Topology rather
// than re-deriving conditions from the options.
//
// A Topology is request-scoped. Repository lookups are memoized for the
// duration of the render.
type Topology struct {
	opts *config.Options
	repo location.Repository
	rctx *Context

	publishedLoaded bool
	published       []location.Record

	currentLoaded bool
	current       *location.Record
}

// NewTopology creates a request-scoped topology resolver.
func NewTopology(opts *config.Options, repo location.Repository, rctx *Context) *Topology {
	return &Topology{opts: opts, repo: repo, rctx: rctx}
}

// MultipleLocations reports whether multi-location mode is enabled.
func (t *Topology) MultipleLocations() bool {
	return t.opts.MultipleLocations.Bool()
}

// OneOrganization reports whether all locations share one organization.
func (t *Topology) OneOrganization() bool {
	return t.MultipleLocations() && t.opts.SameOrganization.Bool()
}

// SharedBusinessInfo reports whether locations inherit shared contact data.
func (t *Topology) SharedBusinessInfo() bool {
	return t.OneOrganization() && t.opts.SharedBusinessInfo.Bool()
}

// SharedOpeningHours reports whether locations inherit the shared schedule.
func (t *Topology) SharedOpeningHours() bool {
	return t.OneOrganization() && t.opts.SharedOpeningHours.Bool()
}

// HasPrimaryLocation reports whether a primary location is explicitly
// configured and published.
func (t *Topology) HasPrimaryLocation(ctx context.Context) bool {
	if !t.OneOrganization() || t.opts.PrimaryLocation == "" {
		return false
	}
	rec := t.designatedPrimary(ctx)
	return rec != nil
}

// HasLocationActingAsPrimary reports whether exactly one published location
// exists, which then implicitly stands in for the primary.
func (t *Topology) HasLocationActingAsPrimary(ctx context.Context) bool {
	if !t.OneOrganization() {
		return false
	}
	return len(t.publishedLocations(ctx)) == 1
}

// PrimaryLocation resolves the primary location: the explicitly designated
// one when published, otherwise the sole published location. Returns nil
// when neither applies.
func (t *Topology) PrimaryLocation(ctx context.Context) *location.Record {
	if !t.OneOrganization() {
		return nil
	}
	if rec := t.designatedPrimary(ctx); rec != nil {
		return rec
	}
	if pub := t.publishedLocations(ctx); len(pub) == 1 {
		rec := pub[0]
		return &rec
	}
	return nil
}

// RelatedLocation resolves the single location the main organization is
// filled from: in single-location mode the sole published location, in
// one-organization mode the primary (or acting primary). Nil when no single
// location can represent the organization.
func (t *Topology) RelatedLocation(ctx context.Context) *location.Record {
	if !t.MultipleLocations() {
		pub := t.publishedLocations(ctx)
		if len(pub) == 0 {
			return nil
		}
		rec := pub[0]
		return &rec
	}
	return t.PrimaryLocation(ctx)
}

// CurrentLocation resolves the location shown on the current page. Nil on
// non-location pages and for unpublished locations.
func (t *Topology) CurrentLocation(ctx context.Context) *location.Record {
	if t.currentLoaded {
		return t.current
	}
	t.currentLoaded = true

	if !t.rctx.IsLocationPage() {
		return nil
	}
	rec, err := t.repo.ByID(ctx, t.rctx.CurrentLocationID)
	if err != nil || rec == nil || !rec.Published() {
		return nil
	}
	t.current = rec
	return t.current
}

// CurrentLocationIsPrimary reports whether the current page's location is
// the primary (designated or acting). False when neither establishes a
// primary or the page has no location.
func (t *Topology) CurrentLocationIsPrimary(ctx context.Context) bool {
	current := t.CurrentLocation(ctx)
	if current == nil {
		return false
	}
	primary := t.PrimaryLocation(ctx)
	return primary != nil && primary.ID == current.ID
}

// WillEmitBranchOrganization reports whether a branch Organization node will
// be emitted for the current page: the site represents a company, the page
// is a single-location detail page in multi-location mode, and that
// location is not the primary. The branch organization, branch address and
// branch logo pieces all delegate here.
func (t *Topology) WillEmitBranchOrganization(ctx context.Context) bool {
	if !t.rctx.IsCompany() || !t.MultipleLocations() {
		return false
	}
	if t.CurrentLocation(ctx) == nil {
		return false
	}
	return !t.CurrentLocationIsPrimary(ctx)
}

// ShouldFilterOrganization reports whether the host framework owns the
// canonical Organization node, in which case the organization piece
// registers a transform callback instead of generating its own node.
func (t *Topology) ShouldFilterOrganization() bool {
	return t.rctx.IsCompany()
}

// ShouldOutputMainEntity decides whether the organization node (branch when
// branch is true, otherwise the main one) claims mainEntityOfPage. Exactly
// one node in the graph may claim it for a location detail page: the branch
// node when one exists, else the main Organization node.
func (t *Topology) ShouldOutputMainEntity(ctx context.Context, branch bool) bool {
	if !t.rctx.IsLocationPage() {
		return false
	}
	willBranch := t.WillEmitBranchOrganization(ctx)
	if branch {
		return willBranch
	}
	if willBranch {
		return false
	}
	if !t.MultipleLocations() {
		return true
	}
	if t.ShouldFilterOrganization() {
		return t.CurrentLocationIsPrimary(ctx)
	}
	return t.CurrentLocation(ctx) != nil
}

// CheckInvariants verifies the primary-location predicates agree: when both
// a designated primary and an acting primary are resolvable they must be
// the same record. Callers log the returned error; it never aborts a
// render.
func (t *Topology) CheckInvariants(ctx context.Context) error {
	if !t.HasPrimaryLocation(ctx) || !t.HasLocationActingAsPrimary(ctx) {
		return nil
	}
	designated := t.designatedPrimary(ctx)
	pub := t.publishedLocations(ctx)
	if designated != nil && len(pub) == 1 && designated.ID != pub[0].ID {
		return fmt.Errorf("primary location %q disagrees with sole published location %q",
			designated.ID, pub[0].ID)
	}
	return nil
}

func (t *Topology) designatedPrimary(ctx context.Context) *location.Record {
	if t.opts.PrimaryLocation == "" {
		return nil
	}
	rec, err := t.repo.ByID(ctx, t.opts.PrimaryLocation)
	if err != nil || rec == nil || !rec.Published() {
		return nil
	}
	return rec
}

func (t *Topology) publishedLocations(ctx context.Context) []location.Record {
	if t.publishedLoaded {
		return t.published
	}
	t.publishedLoaded = true

	recs, err := t.repo.Get(ctx, location.Filter{Status: location.StatusPublished})
	if err != nil {
		return nil
	}
	t.published = recs
	return t.published
}
