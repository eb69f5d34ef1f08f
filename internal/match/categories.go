package match

// Category is a coarse semantic bucket derived from a skill's identifier,
// used to reward on-topic utterances and veto cross-category false matches.
type Category string

const (
	CategoryHydration Category = "hydration"
	CategoryFood      Category = "food"
	CategoryCoffee    Category = "coffee"
	CategoryWalking   Category = "walking"
	CategoryRunning   Category = "running"
	CategoryExercise  Category = "exercise"
	CategoryMood      Category = "mood"
	CategorySleep     Category = "sleep"
	CategoryGeneral   Category = "general"
)

// CategoryRule maps skill-id substrings to a category. Rules are evaluated
// in order; the first rule with a matching substring wins.
type CategoryRule struct {
	Category   Category `json:"category" mapstructure:"category"`
	Substrings []string `json:"substrings" mapstructure:"substrings"`
}

// KeywordSet is the utterance keyword table for one category.
type KeywordSet struct {
	Category Category `json:"category" mapstructure:"category"`
	Keywords []string `json:"keywords" mapstructure:"keywords"`
}

// DefaultCategoryRules returns the built-in id-substring table.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Category: CategoryHydration, Substrings: []string{"water", "hydrat"}},
		{Category: CategoryFood, Substrings: []string{"food", "calorie", "meal", "nutrition"}},
		{Category: CategoryCoffee, Substrings: []string{"coffee", "caffeine"}},
		{Category: CategoryWalking, Substrings: []string{"step", "walk"}},
		{Category: CategoryRunning, Substrings: []string{"run", "jog"}},
		{Category: CategoryExercise, Substrings: []string{"pushup", "pullup", "squat", "workout", "exercise", "gym"}},
		{Category: CategoryMood, Substrings: []string{"mood", "feel", "emotion"}},
		{Category: CategorySleep, Substrings: []string{"sleep", "nap"}},
	}
}

// DefaultKeywordSets returns the built-in category keyword table.
func DefaultKeywordSets() []KeywordSet {
	return []KeywordSet{
		{Category: CategoryHydration, Keywords: []string{"water", "drank", "drink", "glass", "bottle", "hydrat", "ml", "liter"}},
		{Category: CategoryFood, Keywords: []string{"calorie", "kcal", "food", "meal", "lunch", "dinner", "breakfast", "ate", "eaten", "snack"}},
		{Category: CategoryCoffee, Keywords: []string{"coffee", "espresso", "latte", "cappuccino", "caffeine", "cup of"}},
		{Category: CategoryWalking, Keywords: []string{"step", "walk", "walked"}},
		{Category: CategoryRunning, Keywords: []string{"run", "ran", "jog", "km", "mile"}},
		{Category: CategoryExercise, Keywords: []string{"pushup", "pullup", "squat", "rep", "set", "workout", "exercise", "gym"}},
		{Category: CategoryMood, Keywords: []string{"mood", "feeling", "felt", "emotion", "happy", "sad", "anxious", "stress"}},
		{Category: CategorySleep, Keywords: []string{"sleep", "slept", "nap", "bedtime", "woke"}},
	}
}
