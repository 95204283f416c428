package component

import "image/color"

// Marker is drawn by the debug renderer as a disc with a heading line.
type Marker struct {
	Radius float64
	Color  color.Color
	Label  string
}

var MarkerComponent = NewComponent[Marker]()
