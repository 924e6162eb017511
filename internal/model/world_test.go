package model

import (
	"math"
	"testing"
)

func TestVector_DistanceTo(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: 4, Y: 6, Z: 3}

	if got := a.DistanceTo(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceTo() = %v, want 5", got)
	}

	if got := a.Add(b).Scale(0.5); got != (Vector{X: 2.5, Y: 4, Z: 3}) {
		t.Errorf("Add().Scale() = %+v", got)
	}
}

func TestSafeZone_Contains(t *testing.T) {
	zone := SafeZone{Center: Vector{}, Radius: 100}

	if !zone.Contains(Vector{X: 100}) {
		t.Errorf("point on the boundary should be inside")
	}

	if zone.Contains(Vector{X: 100.1}) {
		t.Errorf("point past the radius should be outside")
	}

	zone.Disabled = true
	if zone.Contains(Vector{}) {
		t.Errorf("disabled zone should contain nothing")
	}
}

func TestStructure_RemovePart(t *testing.T) {
	s := &Structure{Parts: []*Part{{Min: Cell{X: 0}}, {Min: Cell{X: 1}}, {Min: Cell{X: 2}}}}

	if !s.RemovePart(Cell{X: 1}) {
		t.Fatalf("RemovePart() = false, want true")
	}

	if len(s.Parts) != 2 || s.Parts[1].Min.X != 2 {
		t.Errorf("Parts after removal = %+v", s.Parts)
	}

	if s.RemovePart(Cell{X: 9}) {
		t.Errorf("RemovePart() of unknown cell should be false")
	}
}

func TestStructureGroup_Counts(t *testing.T) {
	cargo := &Component{Inventories: []*Inventory{{Stacks: []Stack{ore("Iron", 1), ore("Gold", 2)}}}}
	group := StructureGroup{
		{Name: "Alpha", Parts: []*Part{{Component: cargo}, {}}},
		{Name: "Beta", Parts: []*Part{{}}},
	}

	if got := group.PartCount(); got != 3 {
		t.Errorf("PartCount() = %d, want 3", got)
	}

	if got := group.ItemCount(); got != 2 {
		t.Errorf("ItemCount() = %d, want 2", got)
	}

	names := group.Names()
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Beta" {
		t.Errorf("Names() = %v", names)
	}
}

func TestWorld_Player(t *testing.T) {
	w := &World{Players: []*Actor{{ID: "76561", Name: "Ripley"}}}

	if w.Player("76561") == nil || w.Player("Ripley") == nil {
		t.Fatalf("Player() should match by id and by name")
	}

	if w.Player("Hicks") != nil {
		t.Errorf("Player() of unknown name should be nil")
	}
}

func TestWorld_Prune(t *testing.T) {
	w := &World{Structures: []*Structure{
		{Name: "Hull", Links: []string{"Rotor", "Wreck"}, Parts: []*Part{{}}},
		{Name: "Rotor", Links: []string{"Hull"}, Parts: []*Part{{}}},
		{Name: "Wreck", Links: []string{"Hull"}},
	}}

	if removed := w.Prune(); removed != 1 {
		t.Fatalf("Prune() = %d, want 1", removed)
	}

	if len(w.Structures) != 2 {
		t.Fatalf("Structures = %d, want 2", len(w.Structures))
	}

	if links := w.Structures[0].Links; len(links) != 1 || links[0] != "Rotor" {
		t.Errorf("Hull links = %v, want [Rotor]", links)
	}

	if removed := w.Prune(); removed != 0 {
		t.Errorf("second Prune() = %d, want 0", removed)
	}
}

func TestWorld_PruneKeepsLinksToSharedName(t *testing.T) {
	w := &World{Structures: []*Structure{
		{Name: "Hull", Links: []string{"Rotor"}, Parts: []*Part{{}}},
		{Name: "Rotor", Parts: []*Part{{}}},
		{Name: "Rotor"},
	}}

	if removed := w.Prune(); removed != 1 {
		t.Fatalf("Prune() = %d, want 1", removed)
	}

	if links := w.Structures[0].Links; len(links) != 1 || links[0] != "Rotor" {
		t.Errorf("Hull links = %v, want [Rotor]", links)
	}
}

func TestWorld_Refresh(t *testing.T) {
	backpack := &Inventory{Stacks: []Stack{ore("Iron", 2)}}
	cargo := &Inventory{Stacks: []Stack{ore("Gold", 0), ore("Stone", 3)}}
	w := &World{
		Players:    []*Actor{{ID: "1", Inventory: backpack}, {ID: "2"}},
		Structures: []*Structure{{Parts: []*Part{{Component: &Component{Inventories: []*Inventory{cargo}}}, {}}}},
	}

	w.Refresh()

	if backpack.CurrentMass != 2 {
		t.Errorf("backpack mass = %v, want 2", backpack.CurrentMass)
	}

	if cargo.ItemCount() != 1 || cargo.CurrentMass != 3 {
		t.Errorf("cargo = %+v, want one stack of mass 3", cargo)
	}
}

func TestPromoteLevel_AtLeast(t *testing.T) {
	tests := []struct {
		level PromoteLevel
		other PromoteLevel
		want  bool
	}{
		{PromoteAdmin, PromoteSpaceMaster, true},
		{PromoteSpaceMaster, PromoteSpaceMaster, true},
		{PromoteModerator, PromoteSpaceMaster, false},
		{PromoteLevel("pilot"), PromoteScripter, false},
		{PromoteLevel(""), PromoteNone, true},
	}

	for _, tt := range tests {
		if got := tt.level.AtLeast(tt.other); got != tt.want {
			t.Errorf("%q.AtLeast(%q) = %v, want %v", tt.level, tt.other, got, tt.want)
		}
	}
}
