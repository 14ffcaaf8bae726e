package fuelcell

// Rect is an axis-aligned rectangle on the drawing surface.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// MidX returns the horizontal centre.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical centre.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Geometry is the fixed layout of the cell: anode, electrolyte with its two
// borders, cathode and the LED above the cell.
type Geometry struct {
	Cell        Rect
	Anode       Rect
	Electrolyte Rect
	Cathode     Rect
	LeftBorder  Rect
	RightBorder Rect
	LED         Rect
}

const (
	cellX      = 100
	cellY      = 150
	cellWidth  = 600
	cellHeight = 300

	electrodeWidth   = 150
	electrolyteWidth = 296
	borderWidth      = 10
	cellInset        = 2

	ledWidth  = 40
	ledHeight = 20
	ledY      = 60

	// gasGap is the opening in each side wall where gas enters.
	gasGap = 120
	// wireRise is how far above the cell the wires turn towards the LED.
	wireRise = 30
)

// NewGeometry returns the standard layout.
func NewGeometry() Geometry {
	cell := Rect{X: cellX, Y: cellY, W: cellWidth, H: cellHeight}
	innerY := cell.Y + cellInset
	innerH := cell.H - 2*cellInset
	anode := Rect{X: cell.X + cellInset, Y: innerY, W: electrodeWidth, H: innerH}
	electrolyte := Rect{X: anode.Right(), Y: innerY, W: electrolyteWidth, H: innerH}
	cathode := Rect{X: electrolyte.Right(), Y: innerY, W: electrodeWidth, H: innerH}
	return Geometry{
		Cell:        cell,
		Anode:       anode,
		Electrolyte: electrolyte,
		Cathode:     cathode,
		LeftBorder:  Rect{X: electrolyte.X, Y: electrolyte.Y, W: borderWidth, H: electrolyte.H},
		RightBorder: Rect{X: electrolyte.Right() - borderWidth, Y: electrolyte.Y, W: borderWidth, H: electrolyte.H},
		LED:         Rect{X: cell.MidX() - ledWidth/2, Y: ledY, W: ledWidth, H: ledHeight},
	}
}

// IonizeX is where a hydrogen atom's leading edge ionizes.
func (g Geometry) IonizeX() float64 { return g.LeftBorder.Right() }

// StopX is where an ionized atom's position is clamped.
func (g Geometry) StopX(p Params) float64 { return g.RightBorder.X - p.StopInset - p.Radius }

// SpawnX is where new hydrogen atoms appear on the anode.
func (g Geometry) SpawnX() float64 { return g.Anode.X + 6 }

// OxygenSpawnX is where oxygen enters on the cathode's outer face.
func (g Geometry) OxygenSpawnX() float64 { return g.Cathode.Right() - 8 }

// OxygenMinX is the leftmost position oxygen may reach.
func (g Geometry) OxygenMinX(p Params) float64 { return g.RightBorder.X + p.OxygenStopOffset }

// WaterExitX is where a droplet starts to fade.
func (g Geometry) WaterExitX() float64 { return g.Cathode.Right() - 6 }
