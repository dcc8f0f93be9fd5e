package reminder

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ada/entities"
	"ada/pkg/permissions"
)

func newService(t *testing.T, granted bool) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Reminder{}))
	return New(db, permissions.New(false, granted, false)), db
}

func TestCreateReminderPriorityScale(t *testing.T) {
	svc, db := newService(t, true)

	cases := map[string]int{"high": 1, "medium": 5, "low": 9, "": 5, "whatever": 5}
	for in, want := range cases {
		_, _, err := svc.CreateReminder("r-"+in, "", in, "")
		require.NoError(t, err)

		var r entities.Reminder
		require.NoError(t, db.First(&r, "title = ?", "r-"+in).Error)
		assert.Equal(t, want, r.Priority, "priority %q", in)
	}
}

func TestCreateReminderWithDueDate(t *testing.T) {
	svc, db := newService(t, true)

	result, externalID, err := svc.CreateReminder("Call mom", "2026-09-02", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Reminder 'Call mom' created due 2026-09-02", result)
	assert.NotEmpty(t, externalID)

	var r entities.Reminder
	require.NoError(t, db.First(&r).Error)
	require.NotNil(t, r.DueDate)
	assert.Equal(t, 2026, r.DueDate.Year())
}

func TestCreateReminderUnparsableDateStillSucceeds(t *testing.T) {
	svc, db := newService(t, true)

	result, _, err := svc.CreateReminder("Water plants", "whenever", "", "")
	require.NoError(t, err, "a bad due date never fails the reminder")
	assert.Equal(t, "Reminder 'Water plants' created", result)

	var r entities.Reminder
	require.NoError(t, db.First(&r).Error)
	assert.Nil(t, r.DueDate)
}

func TestCreateReminderDeniedWithoutAccess(t *testing.T) {
	svc, _ := newService(t, false)
	_, _, err := svc.CreateReminder("Call mom", "", "", "")
	require.Error(t, err)
}

func TestDueByExcludesUndatedAndFuture(t *testing.T) {
	svc, db := newService(t, true)
	now := time.Now()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 7)

	for _, r := range []entities.Reminder{
		{Title: "Overdue", DueDate: &past, Priority: 5},
		{Title: "Undated", Priority: 5},
		{Title: "Next week", DueDate: &future, Priority: 5},
	} {
		require.NoError(t, db.Create(&r).Error)
	}

	due, err := svc.DueBy(now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Overdue", due[0].Title)
}
