package adapter

import (
	m "salvager.dev/pkg/salvager/internal/model"
)

// WorldIndex answers group, zone and ownership queries over a loaded world.
// Groups are the connected components of the undirected link graph, so
// membership is symmetric even when links are declared on one side only.
type WorldIndex struct {
	world  *m.World
	groups []m.StructureGroup
	byName map[string]int
}

// NewWorldIndex builds the group index for world.
func NewWorldIndex(world *m.World) *WorldIndex {
	idx := &WorldIndex{
		world:  world,
		byName: make(map[string]int, len(world.Structures)),
	}

	idx.build()

	return idx
}

func (idx *WorldIndex) build() {
	structures := idx.world.Structures
	position := make(map[string]int, len(structures))

	for i, s := range structures {
		if _, dup := position[s.Name]; !dup {
			position[s.Name] = i
		}
	}

	parent := make([]int, len(structures))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}

	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}

		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	for i, s := range structures {
		for _, link := range s.Links {
			if j, ok := position[link]; ok {
				union(i, j)
			}
		}
	}

	// Groups and their members keep world order.
	groupOf := map[int]int{}

	for i, s := range structures {
		root := find(i)

		g, ok := groupOf[root]
		if !ok {
			g = len(idx.groups)
			groupOf[root] = g
			idx.groups = append(idx.groups, nil)
		}

		idx.groups[g] = append(idx.groups[g], s)

		if _, dup := idx.byName[s.Name]; !dup {
			idx.byName[s.Name] = g
		}
	}
}

// Groups returns every structure group in world order.
func (idx *WorldIndex) Groups() []m.StructureGroup {
	return idx.groups
}

// ResolveByName returns the group of the first structure named name.
func (idx *WorldIndex) ResolveByName(name string) (m.StructureGroup, bool) {
	g, ok := idx.byName[name]
	if !ok {
		return nil, false
	}

	return idx.groups[g], true
}

// ResolveBySelection returns the group of the actor's selected structure.
func (idx *WorldIndex) ResolveBySelection(actor *m.Actor) (m.StructureGroup, bool) {
	if actor == nil || actor.Selected == "" {
		return nil, false
	}

	return idx.ResolveByName(actor.Selected)
}

// Names lists every structure name in world order.
func (idx *WorldIndex) Names() []string {
	names := make([]string, 0, len(idx.world.Structures))
	for _, s := range idx.world.Structures {
		names = append(names, s.Name)
	}

	return names
}

// IsOutsideAllProtectedZones reports whether position lies outside every active safe zone.
func (idx *WorldIndex) IsOutsideAllProtectedZones(position m.Vector) bool {
	for _, zone := range idx.world.SafeZones {
		if zone.Contains(position) {
			return false
		}
	}

	return true
}

// OwnsAll reports whether actor is an owner of every structure in group.
func (idx *WorldIndex) OwnsAll(actor *m.Actor, group m.StructureGroup) bool {
	if actor == nil {
		return false
	}

	for _, s := range group {
		if !s.OwnedBy(actor.ID) {
			return false
		}
	}

	return true
}

// HasElevatedPrivilege reports whether actor is an admin. The console always is.
func (idx *WorldIndex) HasElevatedPrivilege(actor *m.Actor) bool {
	if actor == nil {
		return true
	}

	return actor.Privilege.AtLeast(m.PromoteAdmin)
}
