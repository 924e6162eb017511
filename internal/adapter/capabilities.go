// Package adapter contains the world, telemetry and client adapters the
// salvage core depends on.
package adapter

import (
	m "salvager.dev/pkg/salvager/internal/model"
)

// GroupResolver looks up structure groups from the spatial index.
type GroupResolver interface {
	// ResolveByName returns the group containing a structure with the given
	// display name.
	ResolveByName(name string) (m.StructureGroup, bool)

	// ResolveBySelection returns the group of the structure the actor is
	// looking at or seated on.
	ResolveBySelection(actor *m.Actor) (m.StructureGroup, bool)

	// Names lists every structure display name, used for suggestions.
	Names() []string
}

// ZoneOracle answers safe-zone containment queries.
type ZoneOracle interface {
	IsOutsideAllProtectedZones(position m.Vector) bool
}

// OwnershipOracle answers ownership and privilege queries.
type OwnershipOracle interface {
	// OwnsAll reports whether the actor owns every structure of the group.
	OwnsAll(actor *m.Actor, group m.StructureGroup) bool

	// HasElevatedPrivilege reports whether the actor may bypass ownership.
	HasElevatedPrivilege(actor *m.Actor) bool
}

// Geometry provides the spatial primitives used by the distance check.
type Geometry interface {
	Centroid(group m.StructureGroup) m.Vector
	Distance(a, b m.Vector) float64
}

// EuclideanGeometry averages structure positions and measures straight-line distance.
type EuclideanGeometry struct{}

// Centroid returns the average position of the group's structures.
func (EuclideanGeometry) Centroid(group m.StructureGroup) m.Vector {
	if len(group) == 0 {
		return m.Vector{}
	}

	var sum m.Vector
	for _, s := range group {
		sum = sum.Add(s.Position)
	}

	return sum.Scale(1 / float64(len(group)))
}

// Distance returns the Euclidean distance between a and b.
func (EuclideanGeometry) Distance(a, b m.Vector) float64 {
	return a.DistanceTo(b)
}
