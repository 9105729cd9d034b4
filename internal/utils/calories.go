package utils

// Per-minute calorie factors by workout intensity, MET-style approximations
// for an average adult.
var calorieFactors = map[string]float64{
	"light":    4.0,
	"moderate": 7.0,
	"vigorous": 10.5,
}

// ValidIntensity reports whether the intensity label is recognized.
func ValidIntensity(intensity string) bool {
	_, ok := calorieFactors[intensity]
	return ok
}

// EstimateCalories approximates calories burned from duration and intensity.
// Used when a workout is logged without an explicit calorie count.
func EstimateCalories(durationMinutes int, intensity string) int {
	factor, ok := calorieFactors[intensity]
	if !ok || durationMinutes <= 0 {
		return 0
	}
	return int(float64(durationMinutes) * factor)
}
