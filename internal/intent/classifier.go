package intent

import (
	"regexp"
	"strings"
)

// Intent is the deterministic label for one utterance.
type Intent string

const (
	IntentQuery   Intent = "query"
	IntentLog     Intent = "log"
	IntentUnknown Intent = "unknown"
)

// Whole-string confirmation/rejection patterns. These are checked by the
// dispatcher before classification so that a bare "yes" can resolve an
// outstanding proposal instead of being classified.
var (
	confirmPattern = regexp.MustCompile(`(?i)^\s*(?:yes|yeah|yep|ok|okay|sure|create it|create|do it|go ahead|confirm)\s*[.!]*\s*$`)
	rejectPattern  = regexp.MustCompile(`(?i)^\s*(?:no|nope|nah|cancel|nevermind|never mind)\s*[.!]*\s*$`)
)

// Query patterns, checked before log patterns.
var queryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhow (?:many|much)\b`),
	regexp.MustCompile(`(?i)\bshow me\b`),
	regexp.MustCompile(`(?i)\bwhat'?s my\b`),
	regexp.MustCompile(`(?i)\bstats\b`),
	regexp.MustCompile(`(?i)\btoday'?s\b`),
	regexp.MustCompile(`(?i)\bhistory\b`),
	regexp.MustCompile(`(?i)\btotal\b`),
	regexp.MustCompile(`(?i)\bprogress\b`),
}

// Log patterns: leading first-person verbs, "was N", or a number followed by
// a known unit token.
var logPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:i|my|just|had|ate|drank|did|logged|tracked|walked|ran)\b`),
	regexp.MustCompile(`(?i)\bwas \d`),
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:ml|l|liters?|litres?|glass(?:es)?|bottles?|cups?|kcal|calories?|cal|kg|lbs?|pounds?|km|miles?|steps?|reps?|push[\s-]?ups?|pull[\s-]?ups?|squats?|hrs?|hours?|mins?|minutes?)\b`),
}

// Classifier labels an utterance as query, log, or unknown using ordered
// pattern rules. It is stateless and safe for concurrent use.
type Classifier struct{}

// New creates a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// IsConfirmation reports whether the whole utterance is an affirmative reply.
func (c *Classifier) IsConfirmation(text string) bool {
	return confirmPattern.MatchString(strings.TrimSpace(text))
}

// IsRejection reports whether the whole utterance is a negative reply.
func (c *Classifier) IsRejection(text string) bool {
	return rejectPattern.MatchString(strings.TrimSpace(text))
}

// Classify labels the utterance. Query patterns are tested first, then log
// patterns, otherwise IntentUnknown.
func (c *Classifier) Classify(text string) Intent {
	for _, re := range queryPatterns {
		if re.MatchString(text) {
			return IntentQuery
		}
	}
	for _, re := range logPatterns {
		if re.MatchString(text) {
			return IntentLog
		}
	}
	return IntentUnknown
}
