// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

var (
	// ErrModelUnavailable means no model can run for this deployment at all.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrGeneration means the model ran but produced malformed output or timed out.
	ErrGeneration = errors.New("generation failed")
)

// Client is the generative model boundary. Implementations are side-effect
// free: text in, structured value out, may fail.
type Client interface {
	// GeneratePlan compiles raw user input into a structured plan.
	GeneratePlan(ctx context.Context, input string) (*GeneratedPlan, error)

	// ExtractContent performs the same contract for scanned-document text.
	ExtractContent(ctx context.Context, ocrText string) (*ExtractedContent, error)

	// GenerateDailyBrief summarizes the day from current events/tasks/reminders.
	GenerateDailyBrief(ctx context.Context, events, tasks, reminders []string) (*DailyBriefOutput, error)

	// StreamChat yields incremental response fragments via onDelta. Returning
	// an error from onDelta, or cancelling ctx, stops the stream.
	StreamChat(ctx context.Context, input string, onDelta func(string) error) error
}
