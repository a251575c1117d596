package model

import "github.com/jsphweid/scl/util"

// Ratio is a frequency multiplier kept in lowest terms. The zero value is not
// a valid ratio; use NewRatio.
type Ratio struct {
	num uint32
	den uint32
}

// NewRatio reduces num/den and rejects zero denominators and zero values.
func NewRatio(num, den uint32) (Ratio, error) {
	if den == 0 {
		return Ratio{}, ErrZeroDenominator
	}
	if num == 0 {
		return Ratio{}, ErrNonPositiveRatio
	}
	g := util.Gcd(num, den)
	return Ratio{num: num / g, den: den / g}, nil
}

func (r Ratio) Num() uint32 { return r.num }

func (r Ratio) Den() uint32 { return r.den }

// Float64 is for consumers that need an approximate multiplier; the exact
// value is Num()/Den().
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

func (r Ratio) valid() bool {
	return r.num != 0 && r.den != 0 && util.Gcd(r.num, r.den) == 1
}
