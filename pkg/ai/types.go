// pkg/ai/types.go

package ai

import "strings"

// GeneratedPlan is the structured plan the model produces from messy user
// input. Field set mirrors the constrained-decoding schema the model is
// prompted with.
type GeneratedPlan struct {
	Intent    string            `json:"intent"`
	Actions   []GeneratedAction `json:"actions"`
	Dates     []string          `json:"dates"`
	Times     []string          `json:"times"`
	Locations []string          `json:"locations"`
	People    []string          `json:"people"`
	RiskLevel string            `json:"riskLevel"` // none | needs_confirm | sensitive
	Summary   string            `json:"summary"`
}

type GeneratedAction struct {
	Tool                 string   `json:"tool"`
	Title                string   `json:"title"`
	Date                 string   `json:"date,omitempty"`
	Time                 string   `json:"time,omitempty"`
	Location             string   `json:"location,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	ListItems            []string `json:"listItems,omitempty"`
	RequiresConfirmation bool     `json:"requiresConfirmation"`
}

// ExtractedContent is the structured output for scanned/OCR text.
type ExtractedContent struct {
	DocumentType  string          `json:"documentType"` // notes|bill|flyer|schedule|receipt|other
	Tasks         []ExtractedTask `json:"tasks"`
	Dates         []string        `json:"dates"`
	Contacts      []string        `json:"contacts"`
	Amounts       []string        `json:"amounts"`
	CleanDocument string          `json:"cleanDocument"`
	Summary       string          `json:"summary"`
}

type ExtractedTask struct {
	Title    string `json:"title"`
	DueDate  string `json:"dueDate,omitempty"`
	Priority string `json:"priority"` // low|normal|high|urgent
	Assignee string `json:"assignee,omitempty"`
}

// DailyBriefOutput is the structured daily briefing.
type DailyBriefOutput struct {
	Greeting         string       `json:"greeting"`
	Summary          string       `json:"summary"`
	TopPriorities    []string     `json:"topPriorities"` // always exactly 3
	UpcomingEvents   []BriefEvent `json:"upcomingEvents"`
	PendingReminders []string     `json:"pendingReminders"`
}

type BriefEvent struct {
	Title    string `json:"title"`
	Time     string `json:"time"`
	Location string `json:"location,omitempty"`
}

func (p *GeneratedPlan) normalize() {
	p.Intent = strings.TrimSpace(p.Intent)
	p.Summary = strings.TrimSpace(p.Summary)
	p.RiskLevel = strings.ToLower(strings.TrimSpace(p.RiskLevel))
	if p.Dates == nil {
		p.Dates = []string{}
	}
	if p.Times == nil {
		p.Times = []string{}
	}
	if p.Locations == nil {
		p.Locations = []string{}
	}
	if p.People == nil {
		p.People = []string{}
	}
	for i := range p.Actions {
		a := &p.Actions[i]
		a.Tool = strings.TrimSpace(a.Tool)
		a.Title = strings.TrimSpace(a.Title)
	}
}

func (b *DailyBriefOutput) normalize() {
	// The brief contract promises exactly 3 priorities.
	for len(b.TopPriorities) < 3 {
		b.TopPriorities = append(b.TopPriorities, "Review your inbox")
	}
	b.TopPriorities = b.TopPriorities[:3]
	if b.UpcomingEvents == nil {
		b.UpcomingEvents = []BriefEvent{}
	}
	if b.PendingReminders == nil {
		b.PendingReminders = []string{}
	}
}

func (e *ExtractedContent) normalize() {
	if e.DocumentType == "" {
		e.DocumentType = "other"
	}
	if e.Tasks == nil {
		e.Tasks = []ExtractedTask{}
	}
	if e.Dates == nil {
		e.Dates = []string{}
	}
	if e.Contacts == nil {
		e.Contacts = []string{}
	}
	if e.Amounts == nil {
		e.Amounts = []string{}
	}
	for i := range e.Tasks {
		if e.Tasks[i].Priority == "" {
			e.Tasks[i].Priority = "normal"
		}
	}
}
