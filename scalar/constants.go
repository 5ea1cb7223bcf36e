package scalar

// Default comparison tolerances.
const (
	// RoundingError32 is the default tolerance for float32 comparisons.
	RoundingError32 float32 = 0.00005

	// RoundingError64 is the default tolerance for float64 comparisons.
	RoundingError64 float64 = 0.000005
)

// Angle constants, single precision.
const (
	Pi       float32 = 3.14159265359
	RcpPi    float32 = 1.0 / Pi
	HalfPi   float32 = Pi / 2.0
	TwoPi    float32 = Pi * 2.0
	DegToRad float32 = Pi / 180.0
	RadToDeg float32 = 180.0 / Pi
)

// Cosines of common angles, indexed by degrees.
const (
	Cos1  float32 = 0.99984769515
	Cos5  float32 = 0.99619469809
	Cos10 float32 = 0.98480775301
	Cos15 float32 = 0.96592582628
	Cos30 float32 = 0.86602540378
	Cos45 float32 = 0.70710678118
	Cos60 float32 = 0.5
	Cos75 float32 = 0.25881904510
	Cos80 float32 = 0.17364817766
	Cos85 float32 = 0.08715574274
)
