package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalPatil7/Binaried/internal/domain"
	"github.com/vishalPatil7/Binaried/internal/llm"
)

type fakeProvider struct {
	content string
	err     error
	gotReq  *llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content, FinishReason: "stop"}, nil
}

func newTestInterpreter(p llm.Provider) *Interpreter {
	return NewInterpreter(p, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInterpret_ValidIntent(t *testing.T) {
	provider := &fakeProvider{content: `{"type":"actor","actor":"Tom Hanks","limit":5}`}
	interp := newTestInterpreter(provider)

	intent := interp.Interpret(context.Background(), "movies with tom hanks")

	assert.Equal(t, domain.IntentActor, intent.Type)
	assert.Equal(t, "Tom Hanks", intent.ActorName)
	assert.Equal(t, 5, intent.Limit)
}

func TestInterpret_RequestShape(t *testing.T) {
	provider := &fakeProvider{content: `{"type":"top_rated","limit":10}`}
	interp := newTestInterpreter(provider)

	interp.Interpret(context.Background(), "whatever is good")

	req := provider.gotReq
	require.NotNil(t, req)
	assert.Zero(t, req.Temperature)
	assert.Equal(t, defaultMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, "whatever is good", req.Messages[1].Content)
}

func TestInterpret_ConfiguredMaxTokens(t *testing.T) {
	provider := &fakeProvider{content: `{"type":"top_rated","limit":10}`}
	interp := NewInterpreter(provider, 250, slog.New(slog.NewTextHandler(io.Discard, nil)))

	interp.Interpret(context.Background(), "whatever is good")

	require.NotNil(t, provider.gotReq)
	assert.Equal(t, 250, provider.gotReq.MaxTokens)
}

// Fenced and unfenced output of the same JSON must parse identically.
func TestInterpret_CodeFences(t *testing.T) {
	const payload = `{"type":"genre","genre":"horror","limit":7}`

	variants := map[string]string{
		"bare":          payload,
		"json fence":    "```json\n" + payload + "\n```",
		"plain fence":   "```\n" + payload + "\n```",
		"padded fence":  "  ```json  \n" + payload + "\n``` ",
		"uppercase tag": "```JSON\n" + payload + "\n```",
	}

	for name, content := range variants {
		t.Run(name, func(t *testing.T) {
			interp := newTestInterpreter(&fakeProvider{content: content})
			intent := interp.Interpret(context.Background(), "scary stuff")

			assert.Equal(t, domain.IntentGenre, intent.Type)
			assert.Equal(t, "horror", intent.GenreOrVibe)
			assert.Equal(t, 7, intent.Limit)
		})
	}
}

func TestInterpret_NonJSONFallsBack(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{content: "I think you want comedies!"})

	intent := interp.Interpret(context.Background(), "something fun")

	assert.Equal(t, domain.FallbackIntent(), intent)
}

func TestInterpret_TruncatedJSONFallsBack(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{content: `{"type":"genre","genre":"com`})

	intent := interp.Interpret(context.Background(), "something fun")

	assert.Equal(t, domain.FallbackIntent(), intent)
}

func TestInterpret_ProviderErrorFallsBack(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{err: errors.New("connection refused")})

	intent := interp.Interpret(context.Background(), "anything")

	assert.Equal(t, domain.FallbackIntent(), intent)
}

// Valid JSON without a recognized type keeps its other fields but the type
// is coerced.
func TestInterpret_MissingTypeKeepsFields(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{content: `{"genre":"comedy","limit":3}`})

	intent := interp.Interpret(context.Background(), "something fun")

	assert.Equal(t, domain.IntentTopRated, intent.Type)
	assert.Equal(t, "comedy", intent.GenreOrVibe)
	assert.Equal(t, 3, intent.Limit)
}

func TestInterpret_UnknownTypeCoerced(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{content: `{"type":"soundtrack","limit":4}`})

	intent := interp.Interpret(context.Background(), "film scores")

	assert.Equal(t, domain.IntentTopRated, intent.Type)
	assert.Equal(t, 4, intent.Limit)
}

func TestInterpret_VibeFillsGenreSlot(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{content: `{"type":"vibe","vibe":"spooky season","limit":5}`})

	intent := interp.Interpret(context.Background(), "something scary")

	assert.Equal(t, domain.IntentVibe, intent.Type)
	assert.Equal(t, "spooky season", intent.GenreOrVibe)
}

func TestInterpret_DefaultLimit(t *testing.T) {
	interp := newTestInterpreter(&fakeProvider{content: `{"type":"trending"}`})

	intent := interp.Interpret(context.Background(), "what's hot")

	assert.Equal(t, domain.IntentTrending, intent.Type)
	assert.Equal(t, domain.DefaultLimit, intent.Limit)
}

func TestParseIntent_YearRange(t *testing.T) {
	intent, err := parseIntent(`{"type":"year_range","years":{"from":1990,"to":1999},"limit":10}`)
	require.NoError(t, err)

	assert.Equal(t, domain.IntentYearRange, intent.Type)
	assert.Equal(t, 1990, intent.Years.From)
	assert.Equal(t, 1999, intent.Years.To)
}

func TestParseIntent_NullYears(t *testing.T) {
	intent, err := parseIntent(`{"type":"year_range","years":{"from":null,"to":null},"limit":10}`)
	require.NoError(t, err)

	assert.Zero(t, intent.Years.From)
	assert.Zero(t, intent.Years.To)
}
