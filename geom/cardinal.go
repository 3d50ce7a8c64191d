package geom

import "fmt"

// Cardinal names one of the six axis-aligned directions.
type Cardinal int

const (
	CardinalNorth Cardinal = iota
	CardinalSouth
	CardinalEast
	CardinalWest
	CardinalUp
	CardinalDown
)

func (c Cardinal) String() string {
	switch c {
	case CardinalNorth:
		return "North"
	case CardinalSouth:
		return "South"
	case CardinalEast:
		return "East"
	case CardinalWest:
		return "West"
	case CardinalUp:
		return "Up"
	case CardinalDown:
		return "Down"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// North returns the unit vector (0, 0, -1).
func North() *Vector3 { return &Vector3{z: -1} }

// South returns the unit vector (0, 0, 1).
func South() *Vector3 { return &Vector3{z: 1} }

// East returns the unit vector (1, 0, 0).
func East() *Vector3 { return &Vector3{x: 1} }

// West returns the unit vector (-1, 0, 0).
func West() *Vector3 { return &Vector3{x: -1} }

// Up returns the unit vector (0, 1, 0).
func Up() *Vector3 { return &Vector3{y: 1} }

// Down returns the unit vector (0, -1, 0).
func Down() *Vector3 { return &Vector3{y: -1} }

// FromCardinal returns the unit vector for the named direction.
func FromCardinal(c Cardinal) (*Vector3, error) {
	switch c {
	case CardinalNorth:
		return North(), nil
	case CardinalSouth:
		return South(), nil
	case CardinalEast:
		return East(), nil
	case CardinalWest:
		return West(), nil
	case CardinalUp:
		return Up(), nil
	case CardinalDown:
		return Down(), nil
	default:
		return nil, fmt.Errorf("unknown cardinal direction: %d", int(c))
	}
}
