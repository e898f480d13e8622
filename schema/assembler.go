package schema

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
)

// pieceOrder is the fixed registration order. The host framework invokes
// pieces in this order; cross-references rely on fragment ids rather than
// position, so the order only affects node placement in the output.
func pieceOrder() []Piece {
	return []Piece{
		addressPiece{branch: false},
		addressPiece{branch: true},
		organizationPiece{branch: false},
		organizationPiece{branch: true},
		listPiece{},
		logoPiece{branch: false},
		logoPiece{branch: true},
	}
}

// Assembler registers the graph pieces and drives one render: it asks each
// piece whether it is needed, collects generated nodes, and plays the host
// framework's part of emitting the canonical Organization node and running
// registered organization filters over every organization-typed node.
type Assembler struct {
	opts    *config.Options
	repo    location.Repository
	images  ImageResolver
	logger  *slog.Logger
	metrics *Metrics
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithImageResolver sets the host image helper.
func WithImageResolver(images ImageResolver) AssemblerOption {
	return func(a *Assembler) { a.images = images }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) AssemblerOption {
	return func(a *Assembler) { a.logger = logger }
}

// WithMetrics sets the assembly metrics.
func WithMetrics(m *Metrics) AssemblerOption {
	return func(a *Assembler) { a.metrics = m }
}

// NewAssembler creates an Assembler over an options snapshot and a
// location repository.
func NewAssembler(opts *config.Options, repo location.Repository, options ...AssemblerOption) *Assembler {
	a := &Assembler{
		opts:   opts,
		repo:   repo,
		images: URLImageResolver{},
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Assemble renders the structured-data graph for one page.
func (a *Assembler) Assemble(ctx context.Context, rctx *Context) (*Graph, error) {
	start := time.Now()

	r := &Render{
		Ctx:      rctx,
		Topology: NewTopology(a.opts, a.repo, rctx),
		Opts:     a.opts,
		Repo:     a.repo,
		Hours:    NewHoursCalculator(a.opts),
		Filters:  NewFilters(),
		Images:   a.images,
	}

	if err := r.Topology.CheckInvariants(ctx); err != nil {
		a.logger.Warn("Topology invariant violated", "request_id", rctx.RequestID, "error", err)
	}

	pieces := pieceOrder()
	for _, p := range pieces {
		if org, ok := p.(organizationPiece); ok {
			org.RegisterFilters(ctx, r)
		}
	}

	graph := &Graph{}

	// The host framework owns the canonical Organization node whenever the
	// site represents a company; the organization piece transforms it via
	// its registered filter.
	if r.Topology.ShouldFilterOrganization() {
		graph.Nodes = append(graph.Nodes, a.hostOrganization(rctx))
	}

	for _, p := range pieces {
		if !p.IsNeeded(ctx, r) {
			continue
		}
		node, err := p.Generate(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", p.Name(), err)
		}
		if node == nil {
			a.logger.Debug("Piece produced no node",
				"request_id", rctx.RequestID,
				"piece", p.Name())
			continue
		}
		graph.Nodes = append(graph.Nodes, node)
		if a.metrics != nil {
			a.metrics.piecesGenerated.WithLabelValues(p.Name()).Inc()
		}
	}

	// The host runs its organization filter over every organization-typed
	// node while serializing; the callback leaves finalized branch nodes
	// untouched.
	for i, n := range graph.Nodes {
		if n.HasType("Organization") {
			graph.Nodes[i] = r.Filters.ApplyOrganization(n)
		}
	}

	if a.metrics != nil {
		a.metrics.graphsAssembled.Inc()
		a.metrics.assembleSeconds.Observe(time.Since(start).Seconds())
	}

	a.logger.Debug("Assembled graph",
		"request_id", rctx.RequestID,
		"canonical", rctx.Canonical,
		"nodes", len(graph.Nodes))

	return graph, nil
}

// hostOrganization builds the host framework's base Organization node as it
// exists before any local filter runs.
func (a *Assembler) hostOrganization(rctx *Context) Node {
	n := Node{
		"@type": "Organization",
		"@id":   OrganizationID(rctx.SiteURL),
		"url":   rctx.SiteURL,
	}
	setNonEmpty(n, "name", a.opts.Business.CompanyName)
	return n
}
