package service

// AdherenceTolerance is the ±5% band around the calorie target.
const AdherenceTolerance = 0.05

func AdherenceWithin(actual float64, target float64, tolerance float64) bool {
	if target == 0 {
		return actual == 0
	}
	lower := target * (1 - tolerance)
	upper := target * (1 + tolerance)
	return actual >= lower && actual <= upper
}
