package extract

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/stedbrown/ste-clone-bot/internal/validation"
)

const aiExtractionTimeout = 10 * time.Second

// NoNameSentinel is the answer the AI is instructed to give when the
// utterance contains no proper name.
const NoNameSentinel = "NESSUN_NOME"

// Source tags where a validated candidate came from.
type Source int

const (
	SourceNone Source = iota
	SourceAI
	SourcePattern
)

func (s Source) String() string {
	switch s {
	case SourceAI:
		return "ai"
	case SourcePattern:
		return "pattern"
	default:
		return "none"
	}
}

// Result is the transient outcome of one cascade run. It is consumed
// immediately by the profile layer and never persisted.
type Result struct {
	Candidate string
	Source    Source
}

// Found reports whether the cascade produced a validated candidate.
func (r Result) Found() bool {
	return r.Source != SourceNone && r.Candidate != ""
}

// AIClient is the narrow slice of the AI client the cascade needs.
// The full client lives in the gemini package.
type AIClient interface {
	ExtractName(ctx context.Context, kind string, utterance string) (string, error)
}

// Cascade runs the two-tier extraction: exactly one AI attempt, then exactly
// one pattern attempt, then give-up. AI failures of any kind (transport,
// timeout, sentinel answer, validation rejection) degrade silently to the
// pattern path.
type Cascade struct {
	ai     AIClient
	logger *slog.Logger
}

// NewCascade creates an extraction cascade. The AI client may be nil, in
// which case only the pattern path runs.
func NewCascade(ai AIClient, logger *slog.Logger) *Cascade {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cascade{
		ai:     ai,
		logger: logger.With("component", "extractor"),
	}
}

// Extract runs the cascade for the given field kind over an utterance.
func (c *Cascade) Extract(ctx context.Context, kind Kind, text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}
	}

	if candidate, ok := c.tryAI(ctx, kind, text); ok {
		return Result{Candidate: candidate, Source: SourceAI}
	}

	if candidate, ok := ByPattern(kind, text); ok {
		c.logger.DebugContext(ctx, "Pattern extraction succeeded", "kind", kind.String())
		return Result{Candidate: candidate, Source: SourcePattern}
	}

	c.logger.DebugContext(ctx, "Extraction yielded no validated candidate", "kind", kind.String())
	return Result{}
}

func (c *Cascade) tryAI(ctx context.Context, kind Kind, text string) (string, bool) {
	if c.ai == nil {
		return "", false
	}
	if ctx.Err() != nil {
		return "", false
	}

	aiCtx, cancel := context.WithTimeout(ctx, aiExtractionTimeout)
	defer cancel()

	raw, err := c.ai.ExtractName(aiCtx, kind.String(), text)
	if err != nil {
		c.logger.WarnContext(ctx, "AI extraction failed, falling back to patterns",
			"kind", kind.String(), "error", err)
		return "", false
	}

	if strings.Contains(strings.ToUpper(raw), NoNameSentinel) {
		c.logger.DebugContext(ctx, "AI reported no name in utterance", "kind", kind.String())
		return "", false
	}

	candidate := validation.CleanName(raw)
	if !validation.ValidName(candidate) {
		c.logger.DebugContext(ctx, "AI candidate rejected by validation",
			"kind", kind.String(), "candidate", candidate)
		return "", false
	}
	return candidate, true
}
