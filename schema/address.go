package schema

import (
	"context"
	"strings"
)

// addressPiece emits the PostalAddress node for the main organization or,
// in the branch variant, for the branch shown on the current page. An
// address node is only emitted when the location carries at least a street,
// postal code and country; otherwise nothing is emitted and dependent
// pieces omit their address reference.
type addressPiece struct {
	branch bool
}

func (p addressPiece) Name() string {
	if p.branch {
		return "branch-postal-address"
	}
	return "postal-address"
}

func (p addressPiece) IsNeeded(ctx context.Context, r *Render) bool {
	if p.branch {
		return r.Topology.WillEmitBranchOrganization(ctx)
	}
	if !r.Ctx.IsCompany() {
		return false
	}
	return !r.Topology.MultipleLocations() || r.Topology.RelatedLocation(ctx) != nil
}

func (p addressPiece) Generate(ctx context.Context, r *Render) (Node, error) {
	rec := r.Topology.RelatedLocation(ctx)
	if p.branch {
		rec = r.Topology.CurrentLocation(ctx)
	}
	if rec == nil || !rec.HasAddress() {
		return nil, nil
	}

	n := Node{
		"@type": "PostalAddress",
		"@id":   r.addressID(p.branch),
	}
	setNonEmpty(n, "streetAddress", joinAddressLines(rec.Street, rec.Street2))
	setNonEmpty(n, "addressLocality", rec.City)
	setNonEmpty(n, "postalCode", rec.Zipcode)
	setNonEmpty(n, "addressRegion", rec.State)
	setNonEmpty(n, "addressCountry", rec.Country)
	return n, nil
}

// joinAddressLines joins non-empty address lines with ", ".
func joinAddressLines(lines ...string) string {
	var parts []string
	for _, line := range lines {
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ", ")
}
