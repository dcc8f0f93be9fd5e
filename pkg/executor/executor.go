// pkg/executor/executor.go

package executor

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ada/entities"
	itemrepo "ada/pkg/item/repository"
	planrepo "ada/pkg/plan/repository"
)

// CalendarAdapter is the capability-gated calendar boundary.
type CalendarAdapter interface {
	RequestAccess() bool
	CreateEvent(title, dateString, startTime, endTime, location, notes string) (result, externalID string, err error)
}

// ReminderAdapter is the capability-gated reminders boundary.
type ReminderAdapter interface {
	RequestAccess() bool
	CreateReminder(title, dueDateString, priority, notes string) (result, externalID string, err error)
}

// LedgerRecorder appends one audit entry; best-effort by contract.
type LedgerRecorder interface {
	Record(input string, actions, results []string, planID string)
}

// Executor runs a plan's actions strictly in declared order, producing one
// receipt per action. External side effects are never rolled back: a receipt
// records what happened, and persistence failures are logged only.
type Executor struct {
	cal    CalendarAdapter
	rem    ReminderAdapter
	plans  planrepo.PlanRepository
	items  itemrepo.ItemRepository
	ledger LedgerRecorder
	log    zerolog.Logger
}

func New(cal CalendarAdapter, rem ReminderAdapter, plans planrepo.PlanRepository,
	items itemrepo.ItemRepository, ledger LedgerRecorder, log zerolog.Logger) *Executor {
	return &Executor{cal: cal, rem: rem, plans: plans, items: items, ledger: ledger, log: log}
}

// Execute runs the plan. The plan must be in a state that can enter
// executing (draft or awaitingConfirmation); terminal plans are rejected.
func (e *Executor) Execute(plan *entities.Plan) ([]entities.Receipt, error) {
	if err := plan.TransitionTo(entities.PlanExecuting); err != nil {
		return nil, err
	}
	if err := e.plans.Save(plan); err != nil {
		e.log.Error().Err(err).Str("plan_id", plan.ID).Msg("saving executing status")
	}

	receipts := make([]entities.Receipt, 0, len(plan.Actions))
	allOK := true
	for _, action := range plan.Actions {
		r := e.executeAction(action, plan)
		r.ID = uuid.NewString()
		r.PlanID = plan.ID
		r.CreatedAt = time.Now()
		receipts = append(receipts, r)
		if !r.Success {
			allOK = false
		}
	}

	next := entities.PlanCompleted
	if !allOK {
		next = entities.PlanFailed
	}
	if err := plan.TransitionTo(next); err != nil {
		// unreachable from executing, but never leave the plan dangling
		plan.Status = entities.PlanFailed
	}
	now := time.Now()
	plan.ExecutedAt = &now

	actions := make([]string, 0, len(plan.Actions))
	for _, a := range plan.Actions {
		actions = append(actions, fmt.Sprintf("%s: %s", a.Tool, a.Parameters["title"]))
	}
	results := make([]string, 0, len(receipts))
	for _, r := range receipts {
		results = append(results, r.ResultSummary)
	}
	e.ledger.Record(plan.RawInput, actions, results, plan.ID)

	if err := e.plans.CreateReceipts(receipts); err != nil {
		e.log.Error().Err(err).Str("plan_id", plan.ID).Msg("persisting receipts")
	}
	if err := e.plans.Save(plan); err != nil {
		e.log.Error().Err(err).Str("plan_id", plan.ID).Msg("persisting plan")
	}
	return receipts, nil
}

func (e *Executor) executeAction(action entities.Action, plan *entities.Plan) entities.Receipt {
	p := action.Parameters
	switch action.Tool {
	case entities.ToolCreateEvent:
		desc := paramOr(p, "title", "Create event")
		if !e.cal.RequestAccess() {
			return receipt(action, desc, "Calendar access not granted", false, "")
		}
		startTime := paramOr(p, "time", "09:00")
		result, extID, err := e.cal.CreateEvent(p["title"], p["date"], startTime, p["endTime"], p["location"], p["notes"])
		if err != nil {
			return receipt(action, desc, "Error creating event: "+err.Error(), false, "")
		}
		e.recordItem(plan, entities.ItemEvent, p["title"], p["notes"], p["location"])
		return receipt(action, desc, result, true, extID)

	case entities.ToolCreateReminder:
		desc := paramOr(p, "title", "Create reminder")
		if !e.rem.RequestAccess() {
			return receipt(action, desc, "Reminders access not granted", false, "")
		}
		result, extID, err := e.rem.CreateReminder(p["title"], p["date"], p["priority"], p["notes"])
		if err != nil {
			return receipt(action, desc, "Error creating reminder: "+err.Error(), false, "")
		}
		e.recordItem(plan, entities.ItemReminder, p["title"], p["notes"], "")
		return receipt(action, desc, result, true, extID)

	case entities.ToolCreateChecklist:
		title := paramOr(p, "title", "Checklist")
		items := splitItems(p["items"])
		rendered := renderChecklist(items)
		e.recordItem(plan, entities.ItemChecklist, title, rendered, "")
		summary := fmt.Sprintf("Checklist '%s' created with %d items", title, len(items))
		if rendered != "" {
			summary += "\n" + rendered
		}
		return receipt(action, title, summary, true, "")

	case entities.ToolScanAndExtract:
		return receipt(action, "Scan & Extract", "Content queued for scanning", true, "")

	case entities.ToolDailyBrief:
		return receipt(action, "Daily Brief", "Brief generated", true, "")

	default: // inboxToPlan and anything routed to it
		return receipt(action, "Inbox to Plan", "Plan created from inbox", true, "")
	}
}

func (e *Executor) recordItem(plan *entities.Plan, kind entities.ItemKind, title, detail, location string) {
	if title == "" {
		title = string(kind)
	}
	item := entities.Item{
		ID:         uuid.NewString(),
		Title:      title,
		Detail:     detail,
		Kind:       kind,
		Status:     entities.ItemPending,
		Priority:   entities.PriorityNormal,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Location:   location,
		People:     []string{},
		Tags:       []string{},
		SourceText: plan.RawInput,
		PlanID:     plan.ID,
	}
	if err := e.items.Create(&item); err != nil {
		e.log.Error().Err(err).Str("plan_id", plan.ID).Msg("persisting item")
	}
}

func receipt(action entities.Action, desc, summary string, success bool, externalID string) entities.Receipt {
	return entities.Receipt{
		ActionTool:        string(action.Tool),
		ActionDescription: desc,
		ResultSummary:     summary,
		Success:           success,
		ExternalID:        externalID,
	}
}

func paramOr(p map[string]string, key, def string) string {
	if v := strings.TrimSpace(p[key]); v != "" {
		return v
	}
	return def
}

func splitItems(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func renderChecklist(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}
