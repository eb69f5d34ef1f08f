package match

import (
	"strings"

	"skill-tracking-assistant/internal/model"
)

// Score weights and veto values. The veto is large enough that no
// combination of id/name/trigger bonuses below two full id hits survives a
// cross-category penalty on its own.
const (
	scoreIDMatch      = 10
	scoreNameMatch    = 10
	scoreTriggerMatch = 5
	scoreCategoryHit  = 8
	crossCategoryVeto = -20
)

// Matcher scores registered skills against free text using identifier, name
// and trigger overlap plus a purpose-category heuristic.
type Matcher struct {
	categoryRules []CategoryRule
	keywordSets   []KeywordSet
	keywords      map[Category][]string
}

// New creates a Matcher from explicit tables. Pass the Default* tables for
// standard behavior; both are data records so deployments can override them.
func New(categoryRules []CategoryRule, keywordSets []KeywordSet) *Matcher {
	kw := make(map[Category][]string, len(keywordSets))
	for _, set := range keywordSets {
		kw[set.Category] = set.Keywords
	}
	return &Matcher{
		categoryRules: categoryRules,
		keywordSets:   keywordSets,
		keywords:      kw,
	}
}

// NewDefault creates a Matcher with the built-in tables.
func NewDefault() *Matcher {
	return New(DefaultCategoryRules(), DefaultKeywordSets())
}

// DeriveCategory maps a skill id to its purpose category via ordered
// substring checks. Unrecognized ids are CategoryGeneral.
func (m *Matcher) DeriveCategory(skillID string) Category {
	id := strings.ToLower(skillID)
	for _, rule := range m.categoryRules {
		for _, sub := range rule.Substrings {
			if strings.Contains(id, sub) {
				return rule.Category
			}
		}
	}
	return CategoryGeneral
}

// Match returns the best-matching skill for the utterance, or false when no
// skill reaches a strictly positive score. Ties keep the first skill in
// declared enumeration order.
func (m *Matcher) Match(text string, skills []model.Skill) (model.Skill, bool) {
	lowered := strings.ToLower(text)

	var best model.Skill
	bestScore := 0
	found := false

	for _, skill := range skills {
		score := m.score(lowered, skill)
		if score > bestScore {
			best = skill
			bestScore = score
			found = true
		}
	}

	return best, found
}

func (m *Matcher) score(lowered string, skill model.Skill) int {
	score := 0

	if skill.ID != "" && strings.Contains(lowered, strings.ToLower(skill.ID)) {
		score += scoreIDMatch
	}
	if skill.Name != "" && strings.Contains(lowered, strings.ToLower(skill.Name)) {
		score += scoreNameMatch
	}
	for _, trigger := range skill.Triggers {
		if trigger != "" && strings.Contains(lowered, strings.ToLower(trigger)) {
			score += scoreTriggerMatch
		}
	}

	category := m.DeriveCategory(skill.ID)
	if category != CategoryGeneral && m.containsAny(lowered, category) {
		score += scoreCategoryHit
	}

	score += m.vetoPenalty(lowered, category)

	return score
}

// vetoPenalty applies the cross-category negative rules between hydration
// and food. Meal-context words ("lunch", "dinner") suspend the veto when the
// utterance also carries signal for the skill's own category, so "water with
// lunch" still matches a hydration skill.
func (m *Matcher) vetoPenalty(lowered string, category Category) int {
	hydrationHit := m.containsAny(lowered, CategoryHydration)
	foodHit := m.containsAny(lowered, CategoryFood)
	mealContext := strings.Contains(lowered, "lunch") || strings.Contains(lowered, "dinner")

	switch category {
	case CategoryHydration:
		if foodHit && !(mealContext && hydrationHit) {
			return crossCategoryVeto
		}
	case CategoryFood:
		if hydrationHit && !mealContext {
			return crossCategoryVeto
		}
	}
	return 0
}

func (m *Matcher) containsAny(lowered string, category Category) bool {
	for _, kw := range m.keywords[category] {
		if keywordHit(lowered, kw) {
			return true
		}
	}
	return false
}

// keywordHit reports whether kw occurs in lowered starting at a word
// boundary. Table keywords are stems ("hydrat", "drank") or phrases
// ("cup of"), so only the leading boundary is checked: "hydrated" and
// "500ml" hit, but "ate" buried inside "water" does not.
func keywordHit(lowered, kw string) bool {
	for from := 0; ; {
		i := strings.Index(lowered[from:], kw)
		if i < 0 {
			return false
		}
		pos := from + i
		if pos == 0 || !isLowerLetter(lowered[pos-1]) {
			return true
		}
		from = pos + 1
	}
}

func isLowerLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
