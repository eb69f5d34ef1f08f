package intent_test

import (
	"testing"

	"skill-tracking-assistant/internal/intent"
)

func TestClassify(t *testing.T) {
	c := intent.New()

	cases := []struct {
		text string
		want intent.Intent
	}{
		{"how many glasses of water today?", intent.IntentQuery},
		{"how much did I run this week", intent.IntentQuery},
		{"show me my stats", intent.IntentQuery},
		{"what's my progress", intent.IntentQuery},
		{"today's total", intent.IntentQuery},
		{"water history", intent.IntentQuery},

		{"I drank 2 glasses of water", intent.IntentLog},
		{"just had lunch", intent.IntentLog},
		{"ate 400kcal", intent.IntentLog},
		{"walked to work", intent.IntentLog},
		{"weight was 70 this morning", intent.IntentLog},
		{"20 pushups", intent.IntentLog},
		{"2L water", intent.IntentLog},

		{"tell me a joke", intent.IntentUnknown},
		{"what is the capital of France", intent.IntentUnknown},
		{"", intent.IntentUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			if got := c.Classify(tc.text); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestQueryWinsOverLog(t *testing.T) {
	c := intent.New()

	// Contains both a first-person log verb and a query pattern; query
	// patterns are evaluated first.
	if got := c.Classify("how many pushups did I do"); got != intent.IntentQuery {
		t.Errorf("got %q, want query", got)
	}
}

func TestConfirmationPatterns(t *testing.T) {
	c := intent.New()

	for _, text := range []string{"yes", "Yeah", "yep", "ok", "okay", "sure", "create", "create it", "do it", "go ahead", "confirm", " yes! "} {
		if !c.IsConfirmation(text) {
			t.Errorf("IsConfirmation(%q) = false, want true", text)
		}
	}
	for _, text := range []string{"yes please do that thing", "not sure", "confirm the booking"} {
		if c.IsConfirmation(text) {
			t.Errorf("IsConfirmation(%q) = true, want false (whole-string only)", text)
		}
	}
}

func TestRejectionPatterns(t *testing.T) {
	c := intent.New()

	for _, text := range []string{"no", "Nope", "nah", "cancel", "nevermind", "never mind"} {
		if !c.IsRejection(text) {
			t.Errorf("IsRejection(%q) = false, want true", text)
		}
	}
	if c.IsRejection("no idea what you mean") {
		t.Error("IsRejection should only match whole-string replies")
	}
}
