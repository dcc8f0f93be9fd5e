package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ada/entities"
	"ada/pkg/ai"
	convrepo "ada/pkg/conversation/repository"
	"ada/pkg/executor"
	itemrepo "ada/pkg/item/repository"
	planrepo "ada/pkg/plan/repository"
	"ada/pkg/plan/service"
	"ada/pkg/risk"
)

// ErrBusy means a generation is already in flight for this conversation.
var ErrBusy = errors.New("already processing input for this conversation")

const modelErrorReply = "I couldn't process that. The model may not be available right now."

type PlanSvc struct {
	model  ai.Client
	exec   *executor.Executor
	plans  planrepo.PlanRepository
	items  itemrepo.ItemRepository
	convs  convrepo.ConversationRepository
	ledger executor.LedgerRecorder
	log    zerolog.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

func NewPlanService(model ai.Client, exec *executor.Executor, plans planrepo.PlanRepository,
	items itemrepo.ItemRepository, convs convrepo.ConversationRepository,
	ledger executor.LedgerRecorder, log zerolog.Logger) *PlanSvc {
	return &PlanSvc{
		model: model, exec: exec, plans: plans, items: items, convs: convs,
		ledger: ledger, log: log, inflight: make(map[string]bool),
	}
}

var _ service.PlanService = (*PlanSvc)(nil)

// Process runs one lifecycle attempt: input -> plan -> classify -> execute
// or park. Generation errors abort the attempt: no plan, no ledger entry.
func (s *PlanSvc) Process(ctx context.Context, userID, conversationID, text string) (*service.ProcessResult, error) {
	conv, err := s.resolveConversation(userID, conversationID)
	if err != nil {
		return nil, err
	}

	if !s.acquire(conv.ID) {
		return nil, ErrBusy
	}
	defer s.release(conv.ID)

	s.appendMessage(conv.ID, entities.RoleUser, text, "")

	generated, err := s.model.GeneratePlan(ctx, text)
	if err != nil {
		s.appendMessage(conv.ID, entities.RoleAssistant, modelErrorReply, "")
		return nil, err
	}

	plan := s.toPlan(userID, text, generated)
	if err := s.plans.Create(plan); err != nil {
		return nil, fmt.Errorf("persisting plan: %w", err)
	}

	var receipts []entities.Receipt
	reply := buildReply(generated, plan)
	if risk.AutoExecutable(plan.RiskLevel) {
		receipts, err = s.exec.Execute(plan)
		if err != nil {
			return nil, err
		}
		reply += receiptLines(receipts)
	} else {
		if err := plan.TransitionTo(entities.PlanAwaitingConfirmation); err != nil {
			return nil, err
		}
		if err := s.plans.Save(plan); err != nil {
			s.log.Error().Err(err).Str("plan_id", plan.ID).Msg("parking plan")
		}
		s.ledger.Record(text, actionDescriptions(plan.Actions), []string{"awaiting confirmation"}, plan.ID)
	}

	s.appendMessage(conv.ID, entities.RoleAssistant, reply, plan.ID)
	s.maybeTitleConversation(conv, plan.Intent)

	return &service.ProcessResult{
		ConversationID: conv.ID,
		Plan:           plan,
		Receipts:       receipts,
		Reply:          reply,
	}, nil
}

// Approve executes a parked plan. Only awaitingConfirmation plans qualify;
// the state machine rejects everything else.
func (s *PlanSvc) Approve(userID, planID string) ([]entities.Receipt, error) {
	plan, err := s.ownedPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	return s.exec.Execute(plan)
}

// Dismiss is terminal: the plan moves to failed and cannot be re-run.
func (s *PlanSvc) Dismiss(userID, planID string) error {
	plan, err := s.ownedPlan(userID, planID)
	if err != nil {
		return err
	}
	if err := plan.TransitionTo(entities.PlanFailed); err != nil {
		return err
	}
	if err := s.plans.Save(plan); err != nil {
		return err
	}
	s.ledger.Record(plan.RawInput, actionDescriptions(plan.Actions), []string{"dismissed by user"}, plan.ID)
	return nil
}

func (s *PlanSvc) Inbox(userID string) (*service.InboxView, error) {
	plans, err := s.plans.ListAwaiting(userID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListPending()
	if err != nil {
		return nil, err
	}
	return &service.InboxView{Plans: plans, Items: items}, nil
}

func (s *PlanSvc) List(userID string) ([]entities.Plan, error) {
	return s.plans.ListByUser(userID)
}

func (s *PlanSvc) Get(userID, planID string) (*entities.Plan, []entities.Receipt, error) {
	plan, err := s.ownedPlan(userID, planID)
	if err != nil {
		return nil, nil, err
	}
	receipts, err := s.plans.ReceiptsByPlan(planID)
	if err != nil {
		return nil, nil, err
	}
	return plan, receipts, nil
}

// Delete removes a terminal plan together with its items and receipts.
// Live plans must be dismissed first; the ledger keeps its entries.
func (s *PlanSvc) Delete(userID, planID string) error {
	plan, err := s.ownedPlan(userID, planID)
	if err != nil {
		return err
	}
	if plan.Status != entities.PlanCompleted && plan.Status != entities.PlanFailed {
		return fmt.Errorf("plan %s is still %s, dismiss it first", planID, plan.Status)
	}
	return s.plans.Delete(planID)
}

// toPlan maps generator output onto the durable plan entity. Unknown tool
// kinds are routed to inboxToPlan with forced confirmation, and the plan's
// risk is escalated: a generator emitting tools we don't know is not safe
// to auto-run.
func (s *PlanSvc) toPlan(userID, text string, g *ai.GeneratedPlan) *entities.Plan {
	level := risk.Classify(g.RiskLevel)

	actions := make([]entities.Action, 0, len(g.Actions))
	for _, ga := range g.Actions {
		tool := entities.ToolKind(ga.Tool)
		requires := ga.RequiresConfirmation
		if !entities.KnownTool(ga.Tool) {
			s.log.Warn().Str("tool", ga.Tool).Msg("unknown tool kind from generator")
			tool = entities.ToolInboxToPlan
			requires = true
			level = risk.Escalate(level)
		}
		actions = append(actions, entities.Action{
			ID:   uuid.NewString(),
			Tool: tool,
			Parameters: map[string]string{
				"title":    ga.Title,
				"date":     ga.Date,
				"time":     ga.Time,
				"location": ga.Location,
				"notes":    ga.Notes,
				"priority": "",
				"items":    strings.Join(ga.ListItems, "\n"),
			},
			RequiresConfirmation: requires,
		})
	}

	return &entities.Plan{
		ID:       uuid.NewString(),
		UserID:   userID,
		Intent:   g.Intent,
		RawInput: text,
		Entities: entities.PlanEntities{
			Dates:     g.Dates,
			Times:     g.Times,
			Locations: g.Locations,
			People:    g.People,
			Amounts:   []string{},
		},
		Actions:   actions,
		RiskLevel: level,
		Status:    entities.PlanDraft,
		CreatedAt: time.Now(),
	}
}

func (s *PlanSvc) resolveConversation(userID, conversationID string) (*entities.Conversation, error) {
	if conversationID != "" {
		return s.convs.FindByID(conversationID, userID)
	}
	if conv, err := s.convs.LatestByUser(userID); err == nil {
		return conv, nil
	}
	conv := &entities.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     "New Conversation",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.convs.Create(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *PlanSvc) appendMessage(conversationID string, role entities.MessageRole, content, planID string) {
	m := &entities.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
		PlanID:         planID,
	}
	if err := s.convs.AppendMessage(m); err != nil {
		s.log.Error().Err(err).Str("conversation_id", conversationID).Msg("appending message")
	}
}

// maybeTitleConversation names the thread after the first exchange's intent.
func (s *PlanSvc) maybeTitleConversation(conv *entities.Conversation, intent string) {
	n, err := s.convs.MessageCount(conv.ID)
	if err != nil || n > 2 || intent == "" {
		return
	}
	runes := []rune(intent)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	conv.Title = string(runes)
	if err := s.convs.Save(conv); err != nil {
		s.log.Error().Err(err).Str("conversation_id", conv.ID).Msg("titling conversation")
	}
}

func (s *PlanSvc) ownedPlan(userID, planID string) (*entities.Plan, error) {
	plan, err := s.plans.FindByID(planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, fmt.Errorf("plan %s not found for user", planID)
	}
	return plan, nil
}

func (s *PlanSvc) acquire(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[conversationID] {
		return false
	}
	s.inflight[conversationID] = true
	return true
}

func (s *PlanSvc) release(conversationID string) {
	s.mu.Lock()
	delete(s.inflight, conversationID)
	s.mu.Unlock()
}

func actionDescriptions(actions []entities.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, fmt.Sprintf("%s: %s", a.Tool, a.Parameters["title"]))
	}
	return out
}

func buildReply(g *ai.GeneratedPlan, plan *entities.Plan) string {
	var lines []string
	lines = append(lines, "**"+g.Intent+"**", "")

	for _, a := range g.Actions {
		line := "- " + a.Tool + ": " + a.Title
		if a.Date != "" {
			line += " on " + a.Date
		}
		if a.Time != "" {
			line += " at " + a.Time
		}
		if a.Location != "" {
			line += " (" + a.Location + ")"
		}
		if a.RequiresConfirmation {
			line += " [needs confirmation]"
		}
		lines = append(lines, line)
	}

	if plan.RiskLevel != entities.RiskNone {
		lines = append(lines, "",
			"Some actions need your confirmation before they run. Approve this plan from your inbox.")
	}
	lines = append(lines, "", g.Summary)
	return strings.Join(lines, "\n")
}

func receiptLines(receipts []entities.Receipt) string {
	if len(receipts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n---")
	for _, r := range receipts {
		mark := "ok"
		if !r.Success {
			mark = "failed"
		}
		fmt.Fprintf(&b, "\n[%s] %s", mark, r.ResultSummary)
	}
	return b.String()
}
