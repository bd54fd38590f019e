package scene

import (
	"math"

	"github.com/scottkirkwood/blobposter"
)

// DefaultHeartPoints is how finely hearts are sampled.
const DefaultHeartPoints = 400

// Heart samples the classic heart curve
//
//	x(t) = 16 sin³t
//	y(t) = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
//
// at n evenly spaced t in [0, 2π], both ends included, then scales and
// translates it. At scale 1 the heart is about 32 units wide.
func Heart(n int, scale float64, offset blobposter.Point) blobposter.Polygon {
	ts := blobposter.Linspace(0, 2*math.Pi, n, true)
	poly := make(blobposter.Polygon, len(ts))
	for i, t := range ts {
		s := math.Sin(t)
		p := blobposter.Point{
			X: 16 * s * s * s,
			Y: 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t),
		}
		poly[i] = p.Scale(scale).Add(offset)
	}
	return poly
}
