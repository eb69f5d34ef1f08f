package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-tracking-assistant/internal/confirm"
	"skill-tracking-assistant/internal/extract"
	"skill-tracking-assistant/internal/intent"
	"skill-tracking-assistant/internal/match"
	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/internal/research"
	"skill-tracking-assistant/internal/resolve"
	"skill-tracking-assistant/internal/skill"
	pkgLog "skill-tracking-assistant/pkg/log"
)

// DefaultCreateThreshold is the confidence at or above which a CreateSkill
// decision skips user confirmation.
const DefaultCreateThreshold = 0.85

// synthesizedProposalConfidence is assigned to proposals from the keyword
// table. It sits below the threshold so deterministic proposals always ask
// before creating.
const synthesizedProposalConfidence = 0.6

// defaultSessionID keys pending confirmations for callers that carry no
// session of their own, such as a CLI invocation.
const defaultSessionID = "default"

// Resolver is the probabilistic decision surface, satisfied by
// *resolve.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, input resolve.Input) resolve.Decision
}

// ReminderScheduler schedules a recurring reminder for a skill with a daily
// goal. Implementations must absorb their own failures.
type ReminderScheduler interface {
	ScheduleDailyGoal(ctx context.Context, sc model.Scope, s model.Skill)
}

// Config tunes dispatcher behavior.
type Config struct {
	CreateThreshold float64 // 0 means DefaultCreateThreshold
}

// Dispatcher routes utterances to skill operations, skill creation, web
// search or chat. It is the single entry point of the action pipeline.
type Dispatcher struct {
	l          pkgLog.Logger
	classifier *intent.Classifier
	matcher    *match.Matcher
	extractor  *extract.Extractor
	resolver   Resolver
	skills     skill.UseCase
	research   research.UseCase
	pending    confirm.Store
	reminders  ReminderScheduler
	threshold  float64
}

// New creates a Dispatcher. reminders may be nil.
func New(
	l pkgLog.Logger,
	classifier *intent.Classifier,
	matcher *match.Matcher,
	extractor *extract.Extractor,
	resolver Resolver,
	skills skill.UseCase,
	researchUC research.UseCase,
	pending confirm.Store,
	reminders ReminderScheduler,
	cfg Config,
) *Dispatcher {
	threshold := cfg.CreateThreshold
	if threshold <= 0 {
		threshold = DefaultCreateThreshold
	}
	return &Dispatcher{
		l:          l,
		classifier: classifier,
		matcher:    matcher,
		extractor:  extractor,
		resolver:   resolver,
		skills:     skills,
		research:   researchUC,
		pending:    pending,
		reminders:  reminders,
		threshold:  threshold,
	}
}

// Route processes one utterance and always returns a usable ActionResult.
// Collaborator failures and panics are absorbed here; callers never see an
// error.
func (d *Dispatcher) Route(ctx context.Context, input Input) (result ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "dispatch.Route: recovered: %v", r)
			result = d.errorFallback()
		}
	}()

	if input.Scope.SessionID == "" {
		input.Scope.SessionID = defaultSessionID
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return ActionResult{Success: true, Type: TypeChat,
			Content: "I didn't catch that. Tell me what you did, or ask about your stats."}
	}

	if res, handled := d.resolveConfirmation(ctx, input.Scope, text); handled {
		return res
	}

	skills, err := d.skills.List(ctx, input.Scope)
	if err != nil {
		d.l.Errorf(ctx, "dispatch.Route: list skills: %v", err)
		skills = nil
	}

	it := d.classifier.Classify(text)

	// Deterministic path: a matched skill plus an unambiguous intent never
	// consults the resolver.
	if matched, ok := d.matcher.Match(text, skills); ok && it != intent.IntentUnknown {
		if it == intent.IntentLog {
			return d.handleLog(ctx, input.Scope, matched, text, nil)
		}
		return d.handleQuery(ctx, input.Scope, matched, text)
	}

	switch it {
	case intent.IntentLog:
		if proposal, ok := synthesizeProposal(text); ok {
			return d.gateCreate(ctx, input.Scope, proposal, synthesizedProposalConfidence, text)
		}
	case intent.IntentQuery:
		return ActionResult{Success: true, Type: TypeChat,
			Content: "You're not tracking anything like that yet. Tell me what you did and I'll set up a skill for it."}
	}

	decision := d.resolver.Resolve(ctx, resolve.Input{Text: text, Skills: skills, History: input.History})
	return d.dispatchDecision(ctx, input, skills, decision)
}

// resolveConfirmation handles a bare yes/no while a proposal is pending.
// Returns handled=false when the utterance is not a confirmation reply or no
// pending confirmation exists, so the normal pipeline runs instead.
func (d *Dispatcher) resolveConfirmation(ctx context.Context, sc model.Scope, text string) (ActionResult, bool) {
	confirmed := d.classifier.IsConfirmation(text)
	rejected := d.classifier.IsRejection(text)
	if !confirmed && !rejected {
		return ActionResult{}, false
	}

	pending, err := d.pending.Get(ctx, sc.SessionID)
	if err != nil {
		// Storage failures read as "nothing pending".
		d.l.Errorf(ctx, "dispatch: pending lookup: %v", err)
		pending = nil
	}
	if pending == nil {
		return ActionResult{}, false
	}

	if err := d.pending.Clear(ctx, sc.SessionID); err != nil {
		d.l.Errorf(ctx, "dispatch: pending clear: %v", err)
	}

	if rejected {
		return ActionResult{Success: true, Type: TypeCancelled,
			Content: fmt.Sprintf("Okay, I won't create %q.", pending.ProposedSkill.Name)}, true
	}

	// A confirmed proposal is created unconditionally; the confidence gate
	// was already passed when the proposal was stored.
	return d.createSkill(ctx, sc, pending.ProposedSkill), true
}

// gateCreate applies the confidence gate: at or above the threshold the
// skill is created immediately, below it the proposal is parked for a
// yes/no reply.
func (d *Dispatcher) gateCreate(ctx context.Context, sc model.Scope, proposal model.ProposedSkill, confidence float64, originalInput string) ActionResult {
	if confidence >= d.threshold {
		return d.createSkill(ctx, sc, proposal)
	}

	p := model.PendingConfirmation{
		SessionID:     sc.SessionID,
		Kind:          model.ConfirmationKindCreateSkill,
		ProposedSkill: proposal,
		OriginalInput: originalInput,
		CreatedAt:     time.Now(),
	}
	if err := d.pending.Set(ctx, p); err != nil {
		d.l.Errorf(ctx, "dispatch: store pending: %v", err)
		return d.errorFallback()
	}

	unit := proposal.Unit
	if unit == "" {
		unit = "count"
	}
	return ActionResult{
		Success: true,
		Type:    TypeAwaitingConfirmation,
		Content: fmt.Sprintf("I can start tracking %s (in %s). Want me to create it?", proposal.Name, unit),
		Metadata: map[string]any{
			"awaiting_confirmation": true,
			"proposed_skill":        proposal.Name,
		},
	}
}

func (d *Dispatcher) createSkill(ctx context.Context, sc model.Scope, proposal model.ProposedSkill) ActionResult {
	created, err := d.skills.CreateFromProposal(ctx, sc, proposal)
	if err != nil {
		if errors.Is(err, skill.ErrSkillExists) {
			return ActionResult{Success: true, Type: TypeChat,
				Content: fmt.Sprintf("You're already tracking %s. Just tell me when you log something.", proposal.Name)}
		}
		d.l.Errorf(ctx, "dispatch: create skill: %v", err)
		return d.errorFallback()
	}

	if d.reminders != nil && created.DailyGoal > 0 {
		d.reminders.ScheduleDailyGoal(ctx, sc, created)
	}

	return ActionResult{
		Success:  true,
		Type:     TypeSkillCreated,
		Content:  fmt.Sprintf("Created %s (tracked in %s). Tell me whenever you log something.", created.Name, created.Unit),
		Metadata: map[string]any{"skill_id": created.ID},
	}
}

func (d *Dispatcher) errorFallback() ActionResult {
	return ActionResult{
		Success: false,
		Type:    TypeErrorFallback,
		Content: "Something went wrong on my side. Your data is safe, please try that again.",
	}
}
