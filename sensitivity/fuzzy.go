package sensitivity

// IT2 is an interval type-2 trapezoidal fuzzy number: an upper membership
// function (UMF) and a lower membership function (LMF), each a trapezoid
// [a, b, c, d] with its own height. The footprint of uncertainty between
// the two trapezoids is what distinguishes IT2 from an ordinary type-1
// fuzzy number.
type IT2 struct {
	Upper       [4]float64
	Lower       [4]float64
	UpperHeight float64
	LowerHeight float64
}

// Membership-function geometry of FromCrisp. The support spans 40% of the
// crisp value, the LMF sits at two thirds of that spread with height 0.7,
// and the whole figure is shifted by level·value so that defuzzification
// lands away from the original crisp point.
const (
	supportWidthRatio = 0.4
	lowerHeight       = 0.7
	minSupport        = 0.01
)

// FromCrisp widens the crisp value x into an IT2 trapezoid whose centroid
// is shifted by level·x. level is the perturbation fraction (0.05 ⇒ 5%).
// Left supports are clamped at minSupport so perturbed costs stay positive.
func FromCrisp(x, level float64) IT2 {
	shift := x * level
	width := supportWidthRatio * x

	f := IT2{
		Upper: [4]float64{
			clampLow(x - width/2 + shift),
			x - width/4 + shift,
			x + width/4 + shift,
			x + width/2 + shift,
		},
		Lower: [4]float64{
			clampLow(x - width/3 + shift),
			x - width/6 + shift,
			x + width/6 + shift,
			x + width/3 + shift,
		},
		UpperHeight: 1.0,
		LowerHeight: lowerHeight,
	}
	return f
}

// Defuzzify collapses the IT2 number to a crisp value by averaging the
// eight trapezoid vertices, the centroid shortcut for symmetric heights.
func (f IT2) Defuzzify() float64 {
	sum := f.Upper[0] + f.Upper[1] + f.Upper[2] + f.Upper[3] +
		f.Lower[0] + f.Lower[1] + f.Lower[2] + f.Lower[3]
	return sum / 8
}

// clampLow keeps a trapezoid vertex at or above minSupport.
func clampLow(v float64) float64 {
	if v < minSupport {
		return minSupport
	}
	return v
}
