package decimal

import "math"

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func mathPow(x, y float64) float64 {
	return math.Pow(x, y)
}
