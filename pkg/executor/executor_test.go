package executor

import (
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ada/entities"
	itemRepoImp "ada/pkg/item/repositoryImp"
	planRepoImp "ada/pkg/plan/repositoryImp"
)

type fakeCalendar struct {
	granted bool
	fail    bool
	calls   int
}

func (f *fakeCalendar) RequestAccess() bool { return f.granted }

func (f *fakeCalendar) CreateEvent(title, dateString, startTime, endTime, location, notes string) (string, string, error) {
	f.calls++
	if f.fail {
		return "", "", errors.New("store offline")
	}
	return fmt.Sprintf("Event '%s' created for %s %s", title, dateString, startTime), "101", nil
}

type fakeReminders struct {
	granted bool
	fail    bool
}

func (f *fakeReminders) RequestAccess() bool { return f.granted }

func (f *fakeReminders) CreateReminder(title, dueDateString, priority, notes string) (string, string, error) {
	if f.fail {
		return "", "", errors.New("store offline")
	}
	return fmt.Sprintf("Reminder '%s' created", title), "202", nil
}

type ledgerCall struct {
	input   string
	actions []string
	results []string
	planID  string
}

type fakeLedger struct{ calls []ledgerCall }

func (f *fakeLedger) Record(input string, actions, results []string, planID string) {
	f.calls = append(f.calls, ledgerCall{input, actions, results, planID})
}

type fixture struct {
	exec   *Executor
	db     *gorm.DB
	cal    *fakeCalendar
	rem    *fakeReminders
	ledger *fakeLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Plan{}, &entities.Item{}, &entities.Receipt{}))

	cal := &fakeCalendar{granted: true}
	rem := &fakeReminders{granted: true}
	led := &fakeLedger{}
	exec := New(cal, rem, planRepoImp.New(db), itemRepoImp.New(db), led, zerolog.Nop())
	return &fixture{exec: exec, db: db, cal: cal, rem: rem, ledger: led}
}

func draftPlan(t *testing.T, db *gorm.DB, actions ...entities.Action) *entities.Plan {
	t.Helper()
	p := &entities.Plan{
		ID:       uuid.NewString(),
		UserID:   "u1",
		Intent:   "test intent",
		RawInput: "raw text from the user",
		Actions:  actions,
		Status:   entities.PlanDraft,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func action(tool entities.ToolKind, params map[string]string) entities.Action {
	if params == nil {
		params = map[string]string{}
	}
	return entities.Action{ID: uuid.NewString(), Tool: tool, Parameters: params}
}

func TestExecuteOneReceiptPerActionInOrder(t *testing.T) {
	f := newFixture(t)
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateEvent, map[string]string{"title": "Dentist", "date": "2026-09-01", "time": "15:00"}),
		action(entities.ToolCreateReminder, map[string]string{"title": "Call mom", "date": "2026-09-02"}),
		action(entities.ToolCreateChecklist, map[string]string{"title": "Groceries", "items": "milk\neggs"}),
	)

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err)
	require.Len(t, receipts, 3)

	assert.Equal(t, "createEvent", receipts[0].ActionTool)
	assert.Equal(t, "createReminder", receipts[1].ActionTool)
	assert.Equal(t, "createChecklist", receipts[2].ActionTool)
	for _, r := range receipts {
		assert.True(t, r.Success)
		assert.Equal(t, plan.ID, r.PlanID)
		assert.NotEmpty(t, r.ID)
	}
	assert.Equal(t, "101", receipts[0].ExternalID)
	assert.Equal(t, "202", receipts[1].ExternalID)

	assert.Equal(t, entities.PlanCompleted, plan.Status)
	require.NotNil(t, plan.ExecutedAt)

	// receipts and items made it to the store
	var persisted []entities.Receipt
	require.NoError(t, f.db.Where("plan_id = ?", plan.ID).Find(&persisted).Error)
	assert.Len(t, persisted, 3)
	var items []entities.Item
	require.NoError(t, f.db.Where("plan_id = ?", plan.ID).Find(&items).Error)
	assert.Len(t, items, 3)

	// exactly one ledger entry for the attempt
	require.Len(t, f.ledger.calls, 1)
	call := f.ledger.calls[0]
	assert.Equal(t, plan.RawInput, call.input)
	assert.Equal(t, plan.ID, call.planID)
	assert.Len(t, call.actions, 3)
	assert.Len(t, call.results, 3)
	assert.Equal(t, "createEvent: Dentist", call.actions[0])
}

func TestExecuteCalendarAccessDenied(t *testing.T) {
	f := newFixture(t)
	f.cal.granted = false
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateEvent, map[string]string{"title": "Dentist"}))

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err)
	require.Len(t, receipts, 1)

	assert.False(t, receipts[0].Success)
	assert.Equal(t, "Calendar access not granted", receipts[0].ResultSummary)
	assert.Equal(t, entities.PlanFailed, plan.Status)
	assert.Zero(t, f.cal.calls, "adapter must not be called without access")
	assert.Len(t, f.ledger.calls, 1, "denied attempts are still audited")
}

func TestExecuteRemindersAccessDenied(t *testing.T) {
	f := newFixture(t)
	f.rem.granted = false
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateReminder, map[string]string{"title": "Call mom"}))

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.False(t, receipts[0].Success)
	assert.Equal(t, "Reminders access not granted", receipts[0].ResultSummary)
	assert.Equal(t, entities.PlanFailed, plan.Status)
}

func TestExecuteAdapterErrorBecomesFailedReceipt(t *testing.T) {
	f := newFixture(t)
	f.cal.fail = true
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateEvent, map[string]string{"title": "Dentist"}))

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err, "adapter failure is a receipt, not an execute error")
	require.Len(t, receipts, 1)
	assert.False(t, receipts[0].Success)
	assert.Equal(t, "Error creating event: store offline", receipts[0].ResultSummary)
	assert.Equal(t, entities.PlanFailed, plan.Status)
}

func TestExecutePartialFailureFailsPlan(t *testing.T) {
	f := newFixture(t)
	f.rem.fail = true
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateChecklist, map[string]string{"title": "Packing", "items": "passport"}),
		action(entities.ToolCreateReminder, map[string]string{"title": "Renew passport"}),
	)

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.True(t, receipts[0].Success)
	assert.False(t, receipts[1].Success)
	assert.Equal(t, entities.PlanFailed, plan.Status, "any failed receipt fails the plan")
}

func TestExecuteRejectsTerminalPlan(t *testing.T) {
	f := newFixture(t)
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateEvent, map[string]string{"title": "Dentist"}))
	plan.Status = entities.PlanCompleted

	receipts, err := f.exec.Execute(plan)
	require.Error(t, err)
	assert.Nil(t, receipts)
	assert.Empty(t, f.ledger.calls)
}

func TestChecklistReceiptRendersNumberedItems(t *testing.T) {
	f := newFixture(t)
	plan := draftPlan(t, f.db,
		action(entities.ToolCreateChecklist, map[string]string{"title": "Groceries", "items": "milk\neggs\nbread"}))

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Contains(t, receipts[0].ResultSummary, "Checklist 'Groceries' created with 3 items")
	assert.Contains(t, receipts[0].ResultSummary, "1. milk")
	assert.Contains(t, receipts[0].ResultSummary, "3. bread")

	var items []entities.Item
	require.NoError(t, f.db.Where("plan_id = ?", plan.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, entities.ItemChecklist, items[0].Kind)
	assert.Equal(t, entities.ItemPending, items[0].Status)
}

func TestInboxToPlanAlwaysSucceeds(t *testing.T) {
	f := newFixture(t)
	f.cal.granted = false
	f.rem.granted = false
	plan := draftPlan(t, f.db, action(entities.ToolInboxToPlan, map[string]string{"title": "Figure out taxes"}))

	receipts, err := f.exec.Execute(plan)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.True(t, receipts[0].Success)
	assert.Equal(t, "Plan created from inbox", receipts[0].ResultSummary)
	assert.Equal(t, entities.PlanCompleted, plan.Status)
}
