package model

import "math"

// Path represents a file system path.
type Path string

// Vector is a position in world space.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale multiplies every component of v by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector) DistanceTo(o Vector) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Cell is an integer grid coordinate inside a structure.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}
