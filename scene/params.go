package scene

// Size is a figure size in inches.
type Size struct {
	W, H float64
}

// DefaultSize is the 8x8 inch figure.
var DefaultSize = Size{8, 8}

// Params is everything one poster is generated from. Some fields only
// matter for one style: NPoints and Wobble for A, WobbleLow, WobbleHigh and
// Irregularity for B.
//
// Compose does not validate; MinRadius > MaxRadius just makes radii shrink.
type Params struct {
	Style     Style
	NBlobs    int
	NHearts   int
	MinRadius float64
	MaxRadius float64

	// style A
	NPoints int
	Wobble  float64

	// style B
	WobbleLow    float64
	WobbleHigh   float64
	Irregularity float64

	// Seed pins both random streams at the start of Compose. Nil leaves the
	// streams as the caller handed them over.
	Seed *int64

	FigSize Size
}

// DefaultParams returns the starting values of the poster controls for style.
func DefaultParams(style Style) Params {
	if style == StyleB {
		return Params{
			Style:        StyleB,
			NBlobs:       9,
			NHearts:      12,
			MinRadius:    0.7,
			MaxRadius:    2.5,
			WobbleLow:    0.25,
			WobbleHigh:   0.5,
			Irregularity: 0.15,
			Seed:         SeedOf(123),
			FigSize:      DefaultSize,
		}
	}
	return Params{
		Style:     StyleA,
		NBlobs:    10,
		NHearts:   10,
		MinRadius: 0.5,
		MaxRadius: 2.5,
		NPoints:   300,
		Wobble:    0.35,
		Seed:      SeedOf(42),
		FigSize:   DefaultSize,
	}
}

// SeedOf returns a pointer to v, for Params.Seed.
func SeedOf(v int64) *int64 {
	return &v
}
