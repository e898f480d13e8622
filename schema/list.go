package schema

import (
	"context"
	"fmt"

	"github.com/placewise/localgraph/location"
)

// listPiece emits the ItemList node enumerating all published locations on
// the locations archive page. With zero locations nothing is emitted; an
// empty ItemList is never produced.
type listPiece struct{}

func (listPiece) Name() string { return "locations-list" }

func (listPiece) IsNeeded(_ context.Context, r *Render) bool {
	return r.Ctx.IsArchivePage()
}

func (listPiece) Generate(ctx context.Context, r *Render) (Node, error) {
	recs, err := r.Repo.Get(ctx, location.Filter{Status: location.StatusPublished})
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	items := make([]Node, 0, len(recs))
	for i, rec := range recs {
		items = append(items, Node{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      rec.Permalink,
		})
	}

	return Node{
		"@type":            "ItemList",
		"@id":              ListID(r.Ctx.Canonical),
		"mainEntityOfPage": Ref(r.Ctx.MainEntityID),
		"numberOfItems":    len(recs),
		"itemListElement":  items,
	}, nil
}
