// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// mockClient is a deterministic stand-in used when no LLM endpoint is
// configured, and by tests. Keyword-driven, no external calls.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

var (
	timeRe   = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\b|\b(\d{1,2})\s?(am|pm)\b`)
	amountRe = regexp.MustCompile(`\$\d+(?:\.\d{2})?`)
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

func (m *mockClient) GeneratePlan(_ context.Context, input string) (*GeneratedPlan, error) {
	lower := strings.ToLower(input)
	dates, times := extractWhen(lower)

	p := &GeneratedPlan{
		Intent:    strings.TrimSpace(input),
		Dates:     dates,
		Times:     times,
		Locations: []string{},
		People:    []string{},
		RiskLevel: "none",
	}

	date, tm := "", ""
	if len(dates) > 0 {
		date = dates[0]
	}
	if len(times) > 0 {
		tm = times[0]
	}

	switch {
	case containsAny(lower, "pay", "transfer", "wire", "delete"):
		p.RiskLevel = "sensitive"
		p.Actions = append(p.Actions, GeneratedAction{
			Tool: "inboxToPlan", Title: strings.TrimSpace(input), RequiresConfirmation: true,
		})
	case containsAny(lower, "email", "send", "reply", "message"):
		p.RiskLevel = "needs_confirm"
		p.Actions = append(p.Actions, GeneratedAction{
			Tool: "inboxToPlan", Title: strings.TrimSpace(input), RequiresConfirmation: true,
		})
	case containsAny(lower, "remind", "remember", "forget"):
		p.Actions = append(p.Actions, GeneratedAction{
			Tool: "createReminder", Title: strings.TrimSpace(input), Date: date,
		})
	case containsAny(lower, "meet", "meeting", "dentist", "doctor", "appointment", "lunch", "dinner"):
		p.Actions = append(p.Actions, GeneratedAction{
			Tool: "createEvent", Title: strings.TrimSpace(input), Date: date, Time: tm,
		})
	case containsAny(lower, "buy", "pack", "shopping", "checklist"):
		p.Actions = append(p.Actions, GeneratedAction{
			Tool: "createChecklist", Title: strings.TrimSpace(input), ListItems: splitListItems(input),
		})
	default:
		p.RiskLevel = "needs_confirm"
		p.Actions = append(p.Actions, GeneratedAction{
			Tool: "inboxToPlan", Title: strings.TrimSpace(input), RequiresConfirmation: true,
		})
	}

	p.Summary = fmt.Sprintf("%d action(s) planned", len(p.Actions))
	return p, nil
}

func (m *mockClient) ExtractContent(_ context.Context, ocrText string) (*ExtractedContent, error) {
	lower := strings.ToLower(ocrText)
	out := &ExtractedContent{
		DocumentType: "notes",
		Amounts:      amountRe.FindAllString(ocrText, -1),
		Contacts:     emailRe.FindAllString(ocrText, -1),
	}
	switch {
	case strings.Contains(lower, "total") && len(out.Amounts) > 0:
		out.DocumentType = "receipt"
	case len(out.Amounts) > 0:
		out.DocumentType = "bill"
	case containsAny(lower, "schedule", "agenda"):
		out.DocumentType = "schedule"
	}

	var clean []string
	for _, line := range strings.Split(ocrText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		clean = append(clean, line)
		if t, ok := strings.CutPrefix(line, "- "); ok {
			out.Tasks = append(out.Tasks, ExtractedTask{Title: t, Priority: "normal"})
		} else if t, ok := strings.CutPrefix(line, "* "); ok {
			out.Tasks = append(out.Tasks, ExtractedTask{Title: t, Priority: "normal"})
		}
	}
	out.Dates, _ = extractWhen(lower)
	out.CleanDocument = strings.Join(clean, "\n")
	if len(clean) > 0 {
		out.Summary = clean[0]
	}
	out.normalize()
	return out, nil
}

func (m *mockClient) GenerateDailyBrief(_ context.Context, events, tasks, reminders []string) (*DailyBriefOutput, error) {
	greeting := "Good morning"
	switch h := time.Now().Hour(); {
	case h >= 18:
		greeting = "Good evening"
	case h >= 12:
		greeting = "Good afternoon"
	}

	out := &DailyBriefOutput{
		Greeting: greeting,
		Summary: fmt.Sprintf("You have %d event(s), %d task(s) and %d reminder(s) today.",
			len(events), len(tasks), len(reminders)),
		TopPriorities:    append([]string{}, tasks...),
		PendingReminders: append([]string{}, reminders...),
	}
	for _, e := range events {
		be := BriefEvent{Title: e}
		if title, tm, ok := strings.Cut(e, " at "); ok {
			be.Title, be.Time = title, tm
		}
		out.UpcomingEvents = append(out.UpcomingEvents, be)
	}
	out.normalize()
	return out, nil
}

func (m *mockClient) StreamChat(ctx context.Context, input string, onDelta func(string) error) error {
	reply := "I can turn that into a plan. Try the capture endpoint: " + strings.TrimSpace(input)
	for _, word := range strings.Fields(reply) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := onDelta(word + " "); err != nil {
			return err
		}
	}
	return nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractWhen pulls naive date and time mentions out of lowercased text.
// Weekday names resolve to the next occurrence as a full ISO date.
func extractWhen(lower string) (dates, times []string) {
	dates, times = []string{}, []string{}
	now := time.Now()
	if strings.Contains(lower, "today") {
		dates = append(dates, now.Format("2006-01-02"))
	}
	if strings.Contains(lower, "tomorrow") {
		dates = append(dates, now.AddDate(0, 0, 1).Format("2006-01-02"))
	}
	for name, wd := range weekdays {
		if !strings.Contains(lower, name) {
			continue
		}
		days := (int(wd) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		dates = append(dates, now.AddDate(0, 0, days).Format("2006-01-02"))
	}

	for _, match := range timeRe.FindAllStringSubmatch(lower, -1) {
		if match[1] != "" {
			h, _ := strconv.Atoi(match[1])
			times = append(times, fmt.Sprintf("%02d:%s", h, match[2]))
			continue
		}
		h, _ := strconv.Atoi(match[3])
		if match[4] == "pm" && h < 12 {
			h += 12
		}
		if match[4] == "am" && h == 12 {
			h = 0
		}
		times = append(times, fmt.Sprintf("%02d:00", h))
	}
	return dates, times
}

// splitListItems breaks "buy milk, eggs and bread" into checklist items.
func splitListItems(input string) []string {
	s := input
	if i := strings.IndexAny(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	for _, prefix := range []string{"buy ", "Buy ", "pack ", "Pack "} {
		s = strings.TrimPrefix(strings.TrimSpace(s), prefix)
	}
	s = strings.ReplaceAll(s, " and ", ", ")
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
