// pkg/ai/openai_client.go

package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const systemInstructions = `You are Ada, a personal operations assistant. Your job is to take messy, unstructured input from the user and produce a clean, structured plan of actions.

You are a task compiler, not a chatbot. Focus on:
- Extracting dates, times, locations, people, and amounts
- Mapping input to concrete actions (create events, reminders, checklists)
- Identifying what needs user confirmation vs. what's safe to execute
- Being precise and never hallucinating actions the user didn't request

Always err on the side of asking for confirmation when the intent is ambiguous.
Reply ONLY valid JSON matching the requested schema.`

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) GeneratePlan(ctx context.Context, input string) (*GeneratedPlan, error) {
	prompt := fmt.Sprintf(`Parse the following user input and create a structured plan of actions:

%q

Extract all dates, times, locations, and people. Map each request to the
appropriate tool (createEvent, createReminder, createChecklist, scanAndExtract,
dailyBrief, inboxToPlan). Flag anything that needs confirmation.

Reply ONLY JSON:
{"intent":"...","actions":[{"tool":"createEvent","title":"...","date":"2025-01-31","time":"14:00","location":"...","notes":"...","listItems":["..."],"requiresConfirmation":false}],"dates":["..."],"times":["..."],"locations":["..."],"people":["..."],"riskLevel":"none|needs_confirm|sensitive","summary":"..."}`, input)

	content, err := c.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out GeneratedPlan
	if err := decodeJSONReply(content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse plan: %v", ErrGeneration, err)
	}
	out.normalize()
	if out.Intent == "" && len(out.Actions) == 0 {
		return nil, fmt.Errorf("%w: empty plan", ErrGeneration)
	}
	return &out, nil
}

func (c *openAI) ExtractContent(ctx context.Context, ocrText string) (*ExtractedContent, error) {
	prompt := fmt.Sprintf(`Analyze the following text extracted from a scanned document. Identify the
document type, extract all tasks, dates, contacts, and amounts. Produce a
clean, formatted version of the content.

Scanned text:
%q

Reply ONLY JSON:
{"documentType":"notes|bill|flyer|schedule|receipt|other","tasks":[{"title":"...","dueDate":"...","priority":"low|normal|high|urgent","assignee":"..."}],"dates":["..."],"contacts":["..."],"amounts":["..."],"cleanDocument":"...","summary":"..."}`, ocrText)

	content, err := c.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out ExtractedContent
	if err := decodeJSONReply(content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse extraction: %v", ErrGeneration, err)
	}
	out.normalize()
	return &out, nil
}

func (c *openAI) GenerateDailyBrief(ctx context.Context, events, tasks, reminders []string) (*DailyBriefOutput, error) {
	prompt := fmt.Sprintf(`Create a daily briefing. Here is what the user has today:

Events: %s
Tasks: %s
Reminders: %s

Summarize the day, identify the top 3 priorities, and list upcoming events.

Reply ONLY JSON:
{"greeting":"...","summary":"...","topPriorities":["...","...","..."],"upcomingEvents":[{"title":"...","time":"...","location":"..."}],"pendingReminders":["..."]}`,
		strings.Join(events, ", "), strings.Join(tasks, ", "), strings.Join(reminders, ", "))

	content, err := c.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out DailyBriefOutput
	if err := decodeJSONReply(content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse brief: %v", ErrGeneration, err)
	}
	out.normalize()
	return &out, nil
}

func (c *openAI) StreamChat(ctx context.Context, input string, onDelta func(string) error) error {
	if c.endpoint == "" {
		return ErrModelUnavailable
	}
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstructions},
			{"role": "user", "content": input},
		},
		"temperature": 0.2,
		"stream":      true,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST",
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	// No client timeout for streams; the caller's ctx bounds it.
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrGeneration, resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return nil
		}
		var chunk struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		if err := onDelta(chunk.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return nil
}

// chat performs one completion round-trip and returns the raw reply content.
func (c *openAI) chat(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return "", ErrModelUnavailable
	}
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstructions},
			{"role": "user", "content": prompt},
		},
		"temperature":     0.2,
		"response_format": map[string]string{"type": "json_object"},
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST",
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGeneration, resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrGeneration)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty reply", ErrGeneration)
	}
	return content, nil
}

// decodeJSONReply tolerates replies wrapped in markdown fences.
func decodeJSONReply(content string, v any) error {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return json.Unmarshal([]byte(content), v)
}
