package adapter

import (
	"reflect"
	"testing"

	m "salvager.dev/pkg/salvager/internal/model"
)

func testWorld() *m.World {
	return &m.World{
		Players: []*m.Actor{
			{ID: "1", Name: "Ripley", Selected: "Rotor"},
			{ID: "2", Name: "Bishop", Privilege: m.PromoteAdmin},
		},
		SafeZones: []m.SafeZone{
			{Name: "Station", Center: m.Vector{X: 1000}, Radius: 200},
			{Name: "Old", Center: m.Vector{X: -1000}, Radius: 200, Disabled: true},
		},
		Structures: []*m.Structure{
			{Name: "Hull", Owners: []string{"1"}, Links: []string{"Rotor"}},
			{Name: "Drone", Owners: []string{"2"}},
			{Name: "Rotor", Owners: []string{"1"}},
			{Name: "Wheel", Owners: []string{"1", "2"}, Links: []string{"Hull", "Missing"}},
		},
	}
}

func TestWorldIndex_Groups(t *testing.T) {
	idx := NewWorldIndex(testWorld())

	groups := idx.Groups()
	if len(groups) != 2 {
		t.Fatalf("Groups() = %d groups, want 2", len(groups))
	}

	if got := groups[0].Names(); !reflect.DeepEqual(got, []string{"Hull", "Rotor", "Wheel"}) {
		t.Errorf("first group = %v, want [Hull Rotor Wheel]", got)
	}

	if got := groups[1].Names(); !reflect.DeepEqual(got, []string{"Drone"}) {
		t.Errorf("second group = %v, want [Drone]", got)
	}
}

func TestWorldIndex_ResolveIsSymmetric(t *testing.T) {
	idx := NewWorldIndex(testWorld())

	// Rotor declares no links but is linked from Hull.
	fromRotor, ok := idx.ResolveByName("Rotor")
	if !ok {
		t.Fatalf("ResolveByName(Rotor) not found")
	}

	fromHull, _ := idx.ResolveByName("Hull")

	if !reflect.DeepEqual(fromRotor.Names(), fromHull.Names()) {
		t.Errorf("groups differ: %v vs %v", fromRotor.Names(), fromHull.Names())
	}

	if _, ok := idx.ResolveByName("Nostromo"); ok {
		t.Errorf("ResolveByName(Nostromo) should not be found")
	}
}

func TestWorldIndex_ResolveBySelection(t *testing.T) {
	world := testWorld()
	idx := NewWorldIndex(world)

	group, ok := idx.ResolveBySelection(world.Player("Ripley"))
	if !ok || len(group) != 3 {
		t.Fatalf("ResolveBySelection(Ripley) = %v, %v", group.Names(), ok)
	}

	if _, ok := idx.ResolveBySelection(world.Player("Bishop")); ok {
		t.Errorf("player without selection should resolve nothing")
	}

	if _, ok := idx.ResolveBySelection(nil); ok {
		t.Errorf("nil actor should resolve nothing")
	}
}

func TestWorldIndex_Names(t *testing.T) {
	idx := NewWorldIndex(testWorld())

	want := []string{"Hull", "Drone", "Rotor", "Wheel"}
	if got := idx.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestWorldIndex_Zones(t *testing.T) {
	idx := NewWorldIndex(testWorld())

	tests := []struct {
		name     string
		position m.Vector
		want     bool
	}{
		{name: "open space", position: m.Vector{}, want: true},
		{name: "inside station", position: m.Vector{X: 900}, want: false},
		{name: "inside disabled zone", position: m.Vector{X: -1000}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.IsOutsideAllProtectedZones(tt.position); got != tt.want {
				t.Errorf("IsOutsideAllProtectedZones(%v) = %v, want %v", tt.position, got, tt.want)
			}
		})
	}
}

func TestWorldIndex_Ownership(t *testing.T) {
	world := testWorld()
	idx := NewWorldIndex(world)
	ripley := world.Player("Ripley")
	bishop := world.Player("Bishop")

	group, _ := idx.ResolveByName("Hull")

	if !idx.OwnsAll(ripley, group) {
		t.Errorf("Ripley should own the whole Hull group")
	}

	if idx.OwnsAll(bishop, group) {
		t.Errorf("Bishop owns only part of the Hull group")
	}

	if idx.OwnsAll(nil, group) {
		t.Errorf("nil actor owns nothing")
	}

	if idx.HasElevatedPrivilege(ripley) {
		t.Errorf("Ripley has no elevated privilege")
	}

	if !idx.HasElevatedPrivilege(bishop) || !idx.HasElevatedPrivilege(nil) {
		t.Errorf("admins and the console have elevated privilege")
	}
}

func TestEuclideanGeometry(t *testing.T) {
	geometry := EuclideanGeometry{}
	group := m.StructureGroup{
		{Position: m.Vector{X: 0, Y: 0, Z: 0}},
		{Position: m.Vector{X: 10, Y: 20, Z: -6}},
	}

	centroid := geometry.Centroid(group)
	if centroid != (m.Vector{X: 5, Y: 10, Z: -3}) {
		t.Errorf("Centroid() = %+v", centroid)
	}

	if got := geometry.Centroid(nil); got != (m.Vector{}) {
		t.Errorf("Centroid(nil) = %+v, want origin", got)
	}

	if got := geometry.Distance(m.Vector{}, m.Vector{X: 3, Y: 4}); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}
