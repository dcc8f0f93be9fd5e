package serviceImp

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"ada/entities"
	repoImp "ada/pkg/ledger/repositoryImp"
)

func newLedger(t *testing.T) *LedgerSvc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.LedgerEntry{}))
	return New(repoImp.New(db), zerolog.Nop())
}

func TestRecordStoresHashNotInput(t *testing.T) {
	svc := newLedger(t)
	input := "pay the rent to my landlord"
	svc.Record(input, []string{"inboxToPlan: pay the rent"}, []string{"awaiting confirmation"}, "plan-1")

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	sum := sha256.Sum256([]byte(input))
	e := entries[0]
	assert.Equal(t, hex.EncodeToString(sum[:]), e.InputHash)
	assert.Equal(t, input, e.InputPreview, "short inputs are previewed whole")
	assert.Equal(t, []string{"inboxToPlan: pay the rent"}, e.Actions)
	assert.Equal(t, []string{"awaiting confirmation"}, e.Results)
	assert.Equal(t, "plan-1", e.PlanID)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
}

func TestRecordBoundsPreviewRuneSafe(t *testing.T) {
	svc := newLedger(t)
	input := strings.Repeat("é", 300)
	svc.Record(input, nil, nil, "")

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	preview := []rune(entries[0].InputPreview)
	assert.Len(t, preview, 200)
	assert.True(t, strings.HasPrefix(input, entries[0].InputPreview))
	assert.Equal(t, []string{}, entries[0].Actions, "nil slices are stored empty")
}

func TestListNewestFirst(t *testing.T) {
	svc := newLedger(t)
	svc.Record("first input", nil, nil, "p1")
	time.Sleep(5 * time.Millisecond)
	svc.Record("second input", nil, nil, "p2")

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second input", entries[0].InputPreview)
	assert.Equal(t, "first input", entries[1].InputPreview)
}

func TestExportJSON(t *testing.T) {
	svc := newLedger(t)
	svc.Record("older", []string{"a"}, []string{"r"}, "p1")
	time.Sleep(5 * time.Millisecond)
	svc.Record("newer", nil, nil, "p2")

	raw, err := svc.ExportJSON()
	require.NoError(t, err)

	var out []struct {
		Timestamp    string   `json:"timestamp"`
		InputHash    string   `json:"inputHash"`
		InputPreview string   `json:"inputPreview"`
		Actions      []string `json:"actions"`
		Results      []string `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "newer", out[0].InputPreview)
	assert.Equal(t, "older", out[1].InputPreview)
	assert.Equal(t, []string{"a"}, out[1].Actions)
	_, err = time.Parse(time.RFC3339, out[0].Timestamp)
	assert.NoError(t, err)
}

func TestExportXLSX(t *testing.T) {
	svc := newLedger(t)
	svc.Record("spreadsheet me", []string{"createEvent: Dentist"}, []string{"Event 'Dentist' created"}, "p1")

	raw, err := svc.ExportXLSX()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one entry")
	assert.Equal(t, "Timestamp", rows[0][0])
	assert.Equal(t, "spreadsheet me", rows[1][2])
	assert.Equal(t, "createEvent: Dentist", rows[1][3])
}
