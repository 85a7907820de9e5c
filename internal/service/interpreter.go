package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/vishalPatil7/Binaried/internal/domain"
	"github.com/vishalPatil7/Binaried/internal/llm"
)

// defaultMaxTokens bounds the completion length when none is configured.
// The intent JSON is small; a short cap keeps the model terse.
const defaultMaxTokens = 400

// Interpreter turns free-text prompts into validated intents.
type Interpreter struct {
	provider  llm.Provider
	maxTokens int
	logger    *slog.Logger
}

// NewInterpreter creates an interpreter backed by a completion provider.
// A non-positive maxTokens falls back to the default cap.
func NewInterpreter(provider llm.Provider, maxTokens int, logger *slog.Logger) *Interpreter {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Interpreter{
		provider:  provider,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Interpret converts a prompt into an Intent. It never fails: provider
// errors, malformed output and unrecognized types all collapse into the
// top-rated fallback intent. Callers must reject empty prompts before
// calling; an empty prompt is a client error, not an interpretation case.
func (s *Interpreter) Interpret(ctx context.Context, prompt string) domain.Intent {
	req := llm.NewRequest("", interpreterSystemPrompt, prompt, s.maxTokens, 0)

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		s.logger.Warn("interpretation failed, using fallback",
			"provider", s.provider.Name(),
			"error", err,
		)
		return domain.FallbackIntent()
	}

	intent, err := parseIntent(resp.Content)
	if err != nil {
		s.logger.Warn("could not parse interpreter output, using fallback",
			"raw", resp.Content,
			"error", err,
		)
		return domain.FallbackIntent()
	}

	s.logger.Debug("interpreted prompt",
		"type", intent.Type,
		"limit", intent.Limit,
	)
	return intent
}

// rawIntent mirrors the JSON schema the model is instructed to produce.
type rawIntent struct {
	Type     string `json:"type"`
	Movie    string `json:"movie"`
	Genre    string `json:"genre"`
	Actor    string `json:"actor"`
	Director string `json:"director"`
	Vibe     string `json:"vibe"`
	Keyword  string `json:"keyword"`
	Years    struct {
		From *int `json:"from"`
		To   *int `json:"to"`
	} `json:"years"`
	Limit int `json:"limit"`
}

// parseIntent strips code fences, parses the JSON and normalizes the result
// into a valid Intent.
func parseIntent(raw string) (domain.Intent, error) {
	text := stripFences(raw)

	var parsed rawIntent
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return domain.Intent{}, err
	}

	intent := domain.Intent{
		Type:         domain.IntentType(parsed.Type),
		MovieTitle:   parsed.Movie,
		GenreOrVibe:  parsed.Genre,
		ActorName:    parsed.Actor,
		DirectorName: parsed.Director,
		Keyword:      parsed.Keyword,
		Limit:        parsed.Limit,
	}
	// The model reports moods under "vibe"; downstream they share the
	// genre slot.
	if intent.GenreOrVibe == "" {
		intent.GenreOrVibe = parsed.Vibe
	}
	if parsed.Years.From != nil {
		intent.Years.From = *parsed.Years.From
	}
	if parsed.Years.To != nil {
		intent.Years.To = *parsed.Years.To
	}

	intent.Normalize()
	return intent, nil
}

// stripFences removes Markdown code-fence wrapping, with or without a
// leading "json" language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
