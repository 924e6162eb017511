package model

// Physics is the physical body of a structure. Structures without one are
// projections and can never be salvaged.
type Physics struct {
	Mass float64 `yaml:"mass"`
}

// Component is the functional object hosted by a part ("fat block").
type Component struct {
	Name        string       `yaml:"name"`
	Functional  bool         `yaml:"functional,omitempty"`
	Enabled     bool         `yaml:"enabled,omitempty"`
	Inventories []*Inventory `yaml:"inventories,omitempty"`
}

// Empty reports whether every inventory of the component is empty.
func (c *Component) Empty() bool {
	for _, inv := range c.Inventories {
		if !inv.Empty() {
			return false
		}
	}

	return true
}

// Part is a block occupying cells of a structure, identified by its minimum cell.
type Part struct {
	Min        Cell       `yaml:"min"`
	Definition string     `yaml:"definition"`
	Component  *Component `yaml:"component,omitempty"`
	Stockpile  []Stack    `yaml:"stockpile,omitempty"`
}

// Structure is a physically connected assembly of parts (a grid).
type Structure struct {
	Name     string   `yaml:"name"`
	Position Vector   `yaml:"position"`
	Physics  *Physics `yaml:"physics,omitempty"`
	Owners   []string `yaml:"owners,omitempty"`
	Links    []string `yaml:"links,omitempty"`
	Parts    []*Part  `yaml:"parts,omitempty"`
}

// Projected reports whether the structure lacks a physics body.
func (s *Structure) Projected() bool {
	return s.Physics == nil
}

// OwnedBy reports whether id is listed as an owner.
func (s *Structure) OwnedBy(id string) bool {
	for _, owner := range s.Owners {
		if owner == id {
			return true
		}
	}

	return false
}

// ItemCount counts occupied slots across every component inventory.
func (s *Structure) ItemCount() int {
	count := 0

	for _, part := range s.Parts {
		if part.Component == nil {
			continue
		}

		for _, inv := range part.Component.Inventories {
			count += inv.ItemCount()
		}
	}

	return count
}

// RemovePart removes the part whose minimum cell is min.
func (s *Structure) RemovePart(min Cell) bool {
	for i, part := range s.Parts {
		if part.Min == min {
			s.Parts = append(s.Parts[:i], s.Parts[i+1:]...)
			return true
		}
	}

	return false
}

// StructureGroup is an ordered set of mutually linked structures salvaged as one unit.
type StructureGroup []*Structure

// Names returns the display names in group order.
func (g StructureGroup) Names() []string {
	names := make([]string, 0, len(g))
	for _, s := range g {
		names = append(names, s.Name)
	}

	return names
}

// PartCount returns the number of parts across the group.
func (g StructureGroup) PartCount() int {
	count := 0
	for _, s := range g {
		count += len(s.Parts)
	}

	return count
}

// ItemCount returns the number of occupied item slots across the group.
func (g StructureGroup) ItemCount() int {
	count := 0
	for _, s := range g {
		count += s.ItemCount()
	}

	return count
}

// SafeZone is a spherical protected volume.
type SafeZone struct {
	Name     string  `yaml:"name"`
	Center   Vector  `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Disabled bool    `yaml:"disabled,omitempty"`
}

// Contains reports whether p lies inside an active zone.
func (z SafeZone) Contains(p Vector) bool {
	if z.Disabled {
		return false
	}

	return z.Center.DistanceTo(p) <= z.Radius
}

// World is the persisted state a salvage command operates on.
type World struct {
	Version    int          `yaml:"version"`
	Players    []*Actor     `yaml:"players,omitempty"`
	SafeZones  []SafeZone   `yaml:"safe_zones,omitempty"`
	Structures []*Structure `yaml:"structures,omitempty"`
}

// Player finds a player by id or display name.
func (w *World) Player(name string) *Actor {
	for _, p := range w.Players {
		if p.ID == name || p.Name == name {
			return p
		}
	}

	return nil
}

// Prune drops structures that have no parts left and removes links that
// point at them. Links address structures by name, so a link is kept while
// any remaining structure carries that name. It returns the number of
// structures removed.
func (w *World) Prune() int {
	removed := map[string]bool{}
	kept := w.Structures[:0]
	count := 0

	for _, s := range w.Structures {
		if len(s.Parts) == 0 {
			removed[s.Name] = true
			count++

			continue
		}

		kept = append(kept, s)
	}

	w.Structures = kept

	if count == 0 {
		return 0
	}

	for _, s := range w.Structures {
		delete(removed, s.Name)
	}

	for _, s := range w.Structures {
		links := s.Links[:0]

		for _, link := range s.Links {
			if !removed[link] {
				links = append(links, link)
			}
		}

		s.Links = links
	}

	return count
}

// Refresh recomputes the cached bookkeeping of every inventory in the world.
func (w *World) Refresh() {
	for _, p := range w.Players {
		if p.Inventory != nil {
			p.Inventory.Refresh()
		}
	}

	for _, s := range w.Structures {
		for _, part := range s.Parts {
			if part.Component == nil {
				continue
			}

			for _, inv := range part.Component.Inventories {
				inv.Refresh()
			}
		}
	}
}
