package schema

import (
	"context"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
)

// Piece is one self-contained graph contributor. The assembler asks
// IsNeeded first and calls Generate only when it returns true. Generate
// returns (nil, nil) when no node can be produced; absence is not an error.
type Piece interface {
	// Name identifies the piece in logs and metrics.
	Name() string

	// IsNeeded reports whether the piece applies to the current render.
	IsNeeded(ctx context.Context, r *Render) bool

	// Generate produces the piece's node, or nil when nothing applies.
	Generate(ctx context.Context, r *Render) (Node, error)
}

// ImageResolver turns an image reference into an ImageObject schema node.
// The host framework supplies its own attachment-aware implementation; the
// standalone harness uses URLImageResolver.
type ImageResolver interface {
	// SchemaImage returns an ImageObject node with the given id and
	// caption, or nil when the reference cannot be resolved.
	SchemaImage(imageRef, id, caption string) Node
}

// URLImageResolver resolves image references that are already URLs.
type URLImageResolver struct{}

// SchemaImage implements ImageResolver.
func (URLImageResolver) SchemaImage(imageRef, id, caption string) Node {
	if imageRef == "" {
		return nil
	}
	n := Node{
		"@type":      "ImageObject",
		"@id":        id,
		"url":        imageRef,
		"contentUrl": imageRef,
	}
	setNonEmpty(n, "caption", caption)
	return n
}

// Render bundles everything the pieces need for one page render: the
// request context, the topology resolver, and the shared collaborators.
type Render struct {
	Ctx      *Context
	Topology *Topology
	Opts     *config.Options
	Repo     location.Repository
	Hours    *HoursCalculator
	Filters  *Filters
	Images   ImageResolver
}

// addressWillEmit reports whether the address piece for the variant will
// emit a node this render. Organization nodes only reference the address
// id when it does; a reference to a node nobody emits is a dangling @id.
func (r *Render) addressWillEmit(ctx context.Context, branch bool, rec *location.Record) bool {
	if rec == nil || !rec.HasAddress() {
		return false
	}
	if branch {
		return r.Topology.WillEmitBranchOrganization(ctx)
	}
	return r.Ctx.IsCompany() &&
		(!r.Topology.MultipleLocations() || r.Topology.RelatedLocation(ctx) != nil)
}

// logoWillEmit reports whether the logo piece for the variant will emit a
// node this render, under the same no-dangling-reference rule.
func (r *Render) logoWillEmit(ctx context.Context, branch bool, rec *location.Record) bool {
	if _, ok := r.resolveLogo(rec); !ok {
		return false
	}
	if branch {
		return r.Topology.WillEmitBranchOrganization(ctx)
	}
	return r.Topology.ShouldFilterOrganization() &&
		(!r.Topology.MultipleLocations() || r.Topology.RelatedLocation(ctx) != nil)
}

// resolveLogo picks the logo image reference for a location: the location's
// own logo when set, else the global company logo. ok is false when neither
// exists. rec may be nil, in which case only the company logo applies.
func (r *Render) resolveLogo(rec *location.Record) (string, bool) {
	if rec != nil && rec.Logo != "" {
		return rec.Logo, true
	}
	if r.Opts.Business.CompanyLogo != "" {
		return r.Opts.Business.CompanyLogo, true
	}
	return "", false
}

// logoID returns the id the logo node will carry for the variant.
func (r *Render) logoID(branch bool) string {
	if branch {
		return BranchLogoID(r.Ctx.Canonical)
	}
	return MainLogoID(r.Ctx.SiteURL)
}

// addressID returns the id the address node will carry for the variant.
func (r *Render) addressID(branch bool) string {
	if branch {
		return BranchAddressID(r.Ctx.Canonical)
	}
	return MainAddressID(r.Ctx.SiteURL)
}
