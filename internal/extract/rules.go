package extract

// number is the shared capture for a numeric literal.
const number = `(\d+(?:\.\d+)?)`

// DefaultRules returns the built-in ordered extraction table.
// Order matters: container units before raw units, specific units before the
// trailing-number catch-all. Units without an explicit conversion pass
// through unscaled.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "glasses", Pattern: number + `\s*glass(?:es)?\b`, Unit: "ml", Scale: 250},
		{Name: "bottles", Pattern: number + `\s*bottles?\b`, Unit: "ml", Scale: 500},
		{Name: "cups", Pattern: number + `\s*cups?\b`, Unit: "ml", Scale: 250},
		{Name: "milliliters", Pattern: number + `\s*(?:ml|millilit(?:er|re)s?)\b`, Unit: "ml", Scale: 1},
		{Name: "liters", Pattern: number + `\s*(?:l|lit(?:er|re)s?)\b`, Unit: "ml", Scale: 1000},
		{Name: "kilograms", Pattern: number + `\s*(?:kg|kilo(?:gram)?s?)\b`, Unit: "kg", Scale: 1},
		{Name: "pounds", Pattern: number + `\s*(?:lbs?|pounds?)\b`, Unit: "kg", Scale: 0.45},
		{Name: "kilometers", Pattern: number + `\s*(?:km|kilomet(?:er|re)s?)\b`, Unit: "km", Scale: 1},
		{Name: "miles", Pattern: number + `\s*miles?\b`, Unit: "km", Scale: 1.6},
		{Name: "calories", Pattern: number + `\s*(?:kcal|calories?|cal)\b`, Unit: "kcal", Scale: 1},
		{Name: "steps", Pattern: number + `\s*steps?\b`, Unit: "steps", Scale: 1},
		{Name: "reps", Pattern: number + `\s*(?:push[\s-]?ups?|pull[\s-]?ups?|sit[\s-]?ups?|squats?|reps?)\b`, Unit: "reps", Scale: 1},
		{Name: "hours", Pattern: number + `\s*(?:hrs?|hours?)\b`, Unit: "minutes", Scale: 60},
		{Name: "minutes", Pattern: number + `\s*(?:mins?|minutes?)\b`, Unit: "minutes", Scale: 1},
		{Name: "bare-number", Pattern: number + `\s*$`, Unit: "count", Scale: 1},
	}
}
