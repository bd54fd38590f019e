package scene

import (
	"math"
	"math/rand"

	"github.com/scottkirkwood/blobposter"
)

// styleAJitter is the fixed spread of per point noise in style A blobs.
const styleAJitter = 0.2

// BlobSpec describes one blob. Harmonic and Seed only apply to style A;
// Irregularity only to style B, where the harmonic is drawn per blob.
type BlobSpec struct {
	NPoints      int
	Radius       float64
	Wobble       float64
	Harmonic     int
	Irregularity float64
	Seed         *int64
}

// DefaultBlobA is a unit style A blob.
func DefaultBlobA() BlobSpec {
	return BlobSpec{NPoints: 200, Radius: 1, Wobble: 0.3, Harmonic: 3}
}

// DefaultBlobB is a unit style B blob.
func DefaultBlobB() BlobSpec {
	return BlobSpec{NPoints: 150, Radius: 1, Wobble: 0.35, Irregularity: 0.25}
}

// MakeBlobA draws the phase and every point's noise from jitter. When
// spec.Seed is set, jitter is reseeded first, so two calls with the same seed
// give the same blob. Compose never sets it; all blobs of one scene share
// the advancing jitter stream instead.
func MakeBlobA(spec BlobSpec, jitter *rand.Rand) blobposter.Polygon {
	if spec.Seed != nil {
		blobposter.SeedJitter(jitter, *spec.Seed)
	}
	phase := blobposter.Phase(jitter)
	return radialBlob(spec.NPoints, spec.Radius, spec.Wobble, spec.Harmonic, phase, styleAJitter, jitter)
}

// MakeBlobB draws the harmonic in [2, 7] and the phase from general and the
// point noise from jitter. There is no reseeding: the result depends on how
// many draws came before it.
func MakeBlobB(spec BlobSpec, general, jitter *rand.Rand) blobposter.Polygon {
	harmonic := blobposter.IntBetween(general, 2, 7)
	phase := blobposter.Phase(general)
	return radialBlob(spec.NPoints, spec.Radius, spec.Wobble, harmonic, phase, spec.Irregularity, jitter)
}

// radialBlob samples n angles over [0, 2π) and sets the radius at angle θ to
//
//	radius × (1 + wobble·sin(harmonic·θ + phase) + sigma·N(0,1))
//
// with one normal draw per point.
func radialBlob(n int, radius, wobble float64, harmonic int, phase, sigma float64, jitter *rand.Rand) blobposter.Polygon {
	angles := blobposter.Linspace(0, 2*math.Pi, n, false)
	poly := make(blobposter.Polygon, len(angles))
	h := float64(harmonic)
	for i, theta := range angles {
		r := radius * (1 + wobble*math.Sin(h*theta+phase) + sigma*jitter.NormFloat64())
		sin, cos := math.Sincos(theta)
		poly[i] = blobposter.Point{X: r * cos, Y: r * sin}
	}
	return poly
}
