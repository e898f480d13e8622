package schema

import "context"

// logoPiece emits the organization's logo ImageObject node. The main
// variant captions it with the company name; the branch variant uses the
// branch location's business name. Image node construction is delegated to
// the host framework's image resolver.
type logoPiece struct {
	branch bool
}

func (p logoPiece) Name() string {
	if p.branch {
		return "branch-organization-logo"
	}
	return "organization-logo"
}

func (p logoPiece) IsNeeded(ctx context.Context, r *Render) bool {
	if p.branch {
		return r.Topology.WillEmitBranchOrganization(ctx)
	}
	if !r.Topology.ShouldFilterOrganization() {
		return false
	}
	return !r.Topology.MultipleLocations() || r.Topology.RelatedLocation(ctx) != nil
}

func (p logoPiece) Generate(ctx context.Context, r *Render) (Node, error) {
	var rec = r.Topology.RelatedLocation(ctx)
	if p.branch {
		rec = r.Topology.CurrentLocation(ctx)
		if rec == nil {
			return nil, nil
		}
	}

	imageRef, ok := r.resolveLogo(rec)
	if !ok {
		return nil, nil
	}

	caption := r.Opts.Business.CompanyName
	if p.branch {
		caption = rec.Name
	} else if caption == "" && rec != nil {
		caption = rec.Name
	}

	return r.Images.SchemaImage(imageRef, r.logoID(p.branch), caption), nil
}
