package serviceImp

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"ada/entities"
	"ada/pkg/ledger/repository"
)

const previewLimit = 200

// LedgerSvc records the immutable audit trail. Only a one-way hash of the
// raw input and a bounded preview are persisted, never the input itself.
type LedgerSvc struct {
	repo repository.LedgerRepository
	log  zerolog.Logger
}

func New(repo repository.LedgerRepository, log zerolog.Logger) *LedgerSvc {
	return &LedgerSvc{repo: repo, log: log}
}

// Record appends one entry. Best-effort by contract: a failed write is
// logged and swallowed because the external side effects it describes have
// already happened.
func (s *LedgerSvc) Record(input string, actions, results []string, planID string) {
	sum := sha256.Sum256([]byte(input))

	if actions == nil {
		actions = []string{}
	}
	if results == nil {
		results = []string{}
	}
	entry := &entities.LedgerEntry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now(),
		InputHash:    hex.EncodeToString(sum[:]),
		InputPreview: preview(input),
		Actions:      actions,
		Results:      results,
		PlanID:       planID,
	}
	if err := s.repo.Append(entry); err != nil {
		s.log.Error().Err(err).Str("plan_id", planID).Msg("ledger append failed")
	}
}

// List returns all entries, newest first.
func (s *LedgerSvc) List() ([]entities.LedgerEntry, error) {
	return s.repo.ListDescending()
}

// ExportJSON renders the ledger as a timestamp-descending JSON array.
func (s *LedgerSvc) ExportJSON() ([]byte, error) {
	entries, err := s.repo.ListDescending()
	if err != nil {
		return nil, err
	}

	type exportEntry struct {
		Timestamp    string   `json:"timestamp"`
		InputHash    string   `json:"inputHash"`
		InputPreview string   `json:"inputPreview"`
		Actions      []string `json:"actions"`
		Results      []string `json:"results"`
	}
	out := make([]exportEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, exportEntry{
			Timestamp:    e.Timestamp.Format(time.RFC3339),
			InputHash:    e.InputHash,
			InputPreview: e.InputPreview,
			Actions:      e.Actions,
			Results:      e.Results,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// ExportXLSX renders the same view as a spreadsheet, one row per entry.
func (s *LedgerSvc) ExportXLSX() ([]byte, error) {
	entries, err := s.repo.ListDescending()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []any{"Timestamp", "Input Hash", "Input Preview", "Actions", "Results"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := []any{
			e.Timestamp.Format(time.RFC3339),
			e.InputHash,
			e.InputPreview,
			joinLines(e.Actions),
			joinLines(e.Results),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// preview keeps the first 200 characters of the input, rune-safe.
func preview(input string) string {
	runes := []rune(input)
	if len(runes) <= previewLimit {
		return input
	}
	return string(runes[:previewLimit])
}

func joinLines(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += "\n"
		}
		out += s
	}
	return out
}
