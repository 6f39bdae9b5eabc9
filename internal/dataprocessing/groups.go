package dataprocessing

import (
	"wdpacli/pkg/contracts/domain"
)

// SiteGroups is an insertion-ordered multimap from site name to the
// components sharing that name. Iteration over Names follows the order in
// which names were first seen, so downstream processing is deterministic for
// a given input row order.
//
// Names are used verbatim as grouping keys: two rows with identical display
// names merge into one group even when they describe administratively
// distinct areas. That is accepted behavior inherited from the dataset.
type SiteGroups struct {
	names  []string
	groups map[string][]domain.Component
}

// NewSiteGroups creates an empty group collection.
func NewSiteGroups() *SiteGroups {
	return &SiteGroups{
		groups: make(map[string][]domain.Component),
	}
}

// Add appends a component to the group for name, creating the group on
// first use.
func (g *SiteGroups) Add(name string, c domain.Component) {
	if _, ok := g.groups[name]; !ok {
		g.names = append(g.names, name)
	}
	g.groups[name] = append(g.groups[name], c)
}

// Get returns the components grouped under name, in input row order.
func (g *SiteGroups) Get(name string) []domain.Component {
	return g.groups[name]
}

// Names returns the group names in first-insertion order.
func (g *SiteGroups) Names() []string {
	return g.names
}

// Len returns the number of distinct group names.
func (g *SiteGroups) Len() int {
	return len(g.names)
}

// TotalComponents returns the number of components across all groups.
func (g *SiteGroups) TotalComponents() int {
	total := 0
	for _, components := range g.groups {
		total += len(components)
	}
	return total
}
