package usecase

import "math"

// CalculateValuePerMile returns the cash value of one mile for a redemption:
// (cashPrice - fees) / milesUsed, rounded to 4 decimals.
// Returns 0 when milesUsed is not positive.
func CalculateValuePerMile(cashPrice, milesUsed, fees float64) float64 {
	if milesUsed <= 0 {
		return 0
	}
	return math.Round((cashPrice-fees)/milesUsed*10000) / 10000
}
