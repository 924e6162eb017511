package domain_test

import (
	"fmt"

	m "salvager.dev/pkg/salvager/internal/model"
)

func item(typ, subtype string) m.ItemID {
	return m.ItemID{Type: typ, Subtype: subtype}
}

func stack(typ, subtype string, amount int64, unitMass float64) m.Stack {
	return m.Stack{Item: item(typ, subtype), Amount: amount, UnitMass: unitMass, UnitVolume: unitMass / 10}
}

func ore(subtype string, amount int64) m.Stack {
	return stack("MyObjectBuilder_Ore", subtype, amount, 1)
}

func inventory(stacks ...m.Stack) *m.Inventory {
	inv := &m.Inventory{Stacks: stacks}
	inv.Refresh()

	return inv
}

// cargoPart hosts a component with one inventory holding stacks.
func cargoPart(x int, stacks ...m.Stack) *m.Part {
	return &m.Part{
		Min:        m.Cell{X: x},
		Definition: "LargeBlockSmallContainer",
		Component: &m.Component{
			Name:        fmt.Sprintf("Cargo %d", x),
			Inventories: []*m.Inventory{inventory(stacks...)},
		},
	}
}

// armorPart is a plain block releasing stockpile when disassembled.
func armorPart(x int, stockpile ...m.Stack) *m.Part {
	return &m.Part{Min: m.Cell{X: x}, Definition: "LargeBlockArmorBlock", Stockpile: stockpile}
}

func structure(name string, position m.Vector, owners []string, parts ...*m.Part) *m.Structure {
	return &m.Structure{
		Name:     name,
		Position: position,
		Physics:  &m.Physics{Mass: 1000},
		Owners:   owners,
		Parts:    parts,
	}
}

// groupTotal sums every item unit held by the group, stockpiles included.
func groupTotal(group m.StructureGroup) int64 {
	var total int64

	for _, s := range group {
		for _, part := range s.Parts {
			for _, st := range part.Stockpile {
				total += st.Amount
			}

			if part.Component == nil {
				continue
			}

			for _, inv := range part.Component.Inventories {
				total += inv.Total()
			}
		}
	}

	return total
}

func fillerStacks(n int) []m.Stack {
	stacks := make([]m.Stack, 0, n)
	for i := 0; i < n; i++ {
		stacks = append(stacks, stack("MyObjectBuilder_Component", fmt.Sprintf("Filler%02d", i), 1, 0.1))
	}

	return stacks
}
