package rater

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChunk(sha string) models.Chunk {
	return models.Chunk{
		SHA:         sha,
		TotalChunks: 1,
		Message:     "implement session store",
		Timestamp:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Files:       []models.FileChange{{Path: "store/session.go", AddedLines: 120}},
		LinesAdded:  120,
		DiffText:    "+func NewStore() *Store {\n",
	}
}

func completionBody(content string, withUsage bool) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	if withUsage {
		resp["usage"] = map[string]int{
			"prompt_tokens":     200,
			"completion_tokens": 50,
			"total_tokens":      250,
		}
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

const goodRating = `{"effort_score":7,"complexity":6,"novelty":5,"label":"FEATURE","confidence":0.9,"reasoning":"new persistence layer"}`

func TestClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "judge-1", req["model"])
		assert.EqualValues(t, 0, req["temperature"])

		fmt.Fprint(w, completionBody(goodRating, true))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "secret", Model: "judge-1"})
	content, usage, err := client.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, goodRating, content)
	assert.True(t, usage.UsageAvailable)
	assert.Equal(t, 250, usage.TotalTokens)
}

func TestClient_MissingUsage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(goodRating, false))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Model: "judge-1"})
	_, usage, err := client.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.False(t, usage.UsageAvailable)
	assert.Equal(t, "judge-1", usage.Model)
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Model: "judge-1"})
	_, _, err := client.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

// fakeClient returns canned responses keyed by call order.
type fakeClient struct {
	content string
	usage   models.TokenUsage
	err     error
	calls   atomic.Int64
}

func (f *fakeClient) Complete(_ context.Context, _, _ string) (string, models.TokenUsage, error) {
	f.calls.Add(1)
	return f.content, f.usage, f.err
}

func TestRateChunk_Disabled(t *testing.T) {
	fake := &fakeClient{}
	r := New(fake, Config{Enabled: false, Model: "judge-1"})

	rating, usage := r.RateChunk(context.Background(), sampleChunk("a"))
	assert.Equal(t, models.DisabledRating(), rating)
	assert.False(t, usage.UsageAvailable)
	assert.Zero(t, fake.calls.Load(), "disabled rater must not call the model")
}

func TestRateChunk_TransportError(t *testing.T) {
	fake := &fakeClient{err: errors.New("connection refused"), usage: models.UnavailableUsage("judge-1")}
	r := New(fake, Config{Enabled: true})

	rating, _ := r.RateChunk(context.Background(), sampleChunk("a"))
	assert.True(t, rating.IsError)
	assert.Contains(t, rating.ErrorMessage, "connection refused")
}

func TestRateChunk_UnparseableResponse(t *testing.T) {
	fake := &fakeClient{content: "I think this commit is pretty good."}
	r := New(fake, Config{Enabled: true})

	rating, _ := r.RateChunk(context.Background(), sampleChunk("a"))
	assert.False(t, rating.IsError)
	assert.Equal(t, models.LabelTrivial, rating.Label)
	assert.Equal(t, 1, rating.EffortScore)
	assert.Zero(t, rating.Confidence)
}

func TestRateChunk_ValidResponse(t *testing.T) {
	fake := &fakeClient{
		content: goodRating,
		usage:   models.TokenUsage{Model: "judge-1", TotalTokens: 250, UsageAvailable: true},
	}
	r := New(fake, Config{Enabled: true})

	rating, usage := r.RateChunk(context.Background(), sampleChunk("a"))
	assert.Equal(t, 7, rating.EffortScore)
	assert.Equal(t, models.LabelFeature, rating.Label)
	assert.InDelta(t, 0.9, rating.Confidence, 1e-9)
	assert.True(t, usage.UsageAvailable)
}

func TestParseRating(t *testing.T) {
	t.Run("markdown fenced", func(t *testing.T) {
		rating, err := parseRating("```json\n" + goodRating + "\n```")
		require.NoError(t, err)
		assert.Equal(t, models.LabelFeature, rating.Label)
	})

	t.Run("out of range clamped", func(t *testing.T) {
		rating, err := parseRating(`{"effort_score":15,"complexity":0,"novelty":-2,"label":"test","confidence":1.4,"reasoning":""}`)
		require.NoError(t, err)
		assert.Equal(t, 10, rating.EffortScore)
		assert.Equal(t, 1, rating.Complexity)
		assert.Equal(t, 1, rating.Novelty)
		assert.Equal(t, models.LabelTest, rating.Label)
		assert.InDelta(t, 1.0, rating.Confidence, 1e-9)
	})

	t.Run("unknown label rejected", func(t *testing.T) {
		_, err := parseRating(`{"effort_score":5,"complexity":5,"novelty":5,"label":"MASTERPIECE","confidence":0.8}`)
		assert.Error(t, err)
	})
}

func TestRateAll_OrderAndTotals(t *testing.T) {
	fake := &fakeClient{
		content: goodRating,
		usage:   models.TokenUsage{Model: "judge-1", PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15, UsageAvailable: true},
	}
	r := New(fake, Config{Enabled: true, Workers: 3})

	chunks := []models.Chunk{sampleChunk("a"), sampleChunk("b"), sampleChunk("c"), sampleChunk("d")}
	rated, totals := r.RateAll(context.Background(), chunks)

	require.Len(t, rated, 4)
	for i, ac := range rated {
		assert.Equal(t, chunks[i].SHA, ac.Chunk.SHA, "input order preserved")
		assert.Equal(t, 7, ac.Rating.EffortScore)
	}
	assert.Equal(t, 4, totals.LLMCalls)
	assert.Equal(t, 4, totals.CallsWithUsage)
	assert.Equal(t, 60, totals.TotalTokens)
	assert.EqualValues(t, 4, fake.calls.Load())
}

func TestRateAll_DisabledSkipsTokenAccounting(t *testing.T) {
	r := New(&fakeClient{}, Config{Enabled: false})
	rated, totals := r.RateAll(context.Background(), []models.Chunk{sampleChunk("a")})
	require.Len(t, rated, 1)
	assert.Equal(t, models.TokenTotals{}, totals)
}
