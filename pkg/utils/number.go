package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais (half-up para
// valores positivos, que são os únicos que sobrevivem à limpeza)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
