// Package schema assembles schema.org structured-data graphs for local
// business sites. A set of graph pieces decides, per page render, which
// nodes (Organization, PostalAddress, OpeningHoursSpecification, logo
// ImageObject, ItemList) to emit and how they reference each other by @id.
package schema

import (
	"encoding/json"
	"slices"
)

// SchemaOrgContext is the @context value of every emitted graph.
const SchemaOrgContext = "https://schema.org"

// Node identifier fragments. Every cross-reference between pieces uses one
// of these; a piece referencing a fragment not in this set is a bug.
const (
	FragmentOrganization       = "#organization"
	FragmentMainAddress        = "#local-main-place-address"
	FragmentBranchAddress      = "#local-branch-place-address"
	FragmentBranchOrganization = "#local-branch-organization"
	FragmentMainLogo           = "#local-main-organization-logo"
	FragmentBranchLogo         = "#local-branch-organization-logo"
	FragmentList               = "#list"
)

// Node is a single schema.org graph node: JSON-LD style property keys with
// scalar, array or nested-node values. Nodes reference each other by @id
// pointers, never by embedding another referenceable node.
type Node map[string]any

// Ref builds an @id pointer to another node.
func Ref(id string) Node {
	return Node{"@id": id}
}

// OrganizationID returns the id of the host-owned main Organization node.
func OrganizationID(siteURL string) string {
	return siteURL + FragmentOrganization
}

// MainAddressID returns the id of the main PostalAddress node.
func MainAddressID(siteURL string) string {
	return siteURL + FragmentMainAddress
}

// BranchAddressID returns the id of the branch PostalAddress node.
func BranchAddressID(canonical string) string {
	return canonical + FragmentBranchAddress
}

// BranchOrganizationID returns the id of the branch Organization node.
func BranchOrganizationID(canonical string) string {
	return canonical + FragmentBranchOrganization
}

// MainLogoID returns the id of the main organization logo node.
func MainLogoID(siteURL string) string {
	return siteURL + FragmentMainLogo
}

// BranchLogoID returns the id of the branch organization logo node.
func BranchLogoID(canonical string) string {
	return canonical + FragmentBranchLogo
}

// ListID returns the id of the locations ItemList node.
func ListID(canonical string) string {
	return canonical + FragmentList
}

// Types returns the node's @type normalized to a string slice.
func (n Node) Types() []string {
	switch t := n["@type"].(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// AppendType normalizes @type to an array and appends t unless present.
func (n Node) AppendType(t string) {
	types := n.Types()
	if !slices.Contains(types, t) {
		types = append(types, t)
	}
	n["@type"] = types
}

// HasType reports whether the node's @type contains t.
func (n Node) HasType(t string) bool {
	return slices.Contains(n.Types(), t)
}

// ID returns the node's @id, or "".
func (n Node) ID() string {
	id, _ := n["@id"].(string)
	return id
}

// setNonEmpty sets key to value only when the value is not empty. Empty
// values are omitted rather than emitted as empty properties.
func setNonEmpty(n Node, key, value string) {
	if value != "" {
		n[key] = value
	}
}

// Graph is the ordered set of nodes produced for one page render.
type Graph struct {
	Nodes []Node
}

// MarshalJSON serializes the graph in the schema.org JSON-LD envelope.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"@context": SchemaOrgContext,
		"@graph":   g.Nodes,
	})
}

// JSON returns the indented JSON-LD serialization of the graph.
func (g *Graph) JSON() ([]byte, error) {
	return json.MarshalIndent(map[string]any{
		"@context": SchemaOrgContext,
		"@graph":   g.Nodes,
	}, "", "  ")
}
