package rater

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fairlens/fairlens/pkg/chunker"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/sourcegraph/conc/pool"
)

const systemPrompt = `You assess how much genuine engineering effort a single
commit chunk represents in a student team project. Respond with one JSON
object, nothing else:
{"effort_score": <1-10>, "complexity": <1-10>, "novelty": <1-10>,
 "label": "FEATURE"|"BUG_FIX"|"TEST"|"REFACTOR"|"TRIVIAL",
 "confidence": <0.0-1.0>, "reasoning": "<one sentence>"}
Score copy-pasted, generated, or boilerplate code low on novelty.`

// CompletionClient is the outbound contract the rater needs; satisfied
// by Client and by test fakes.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, models.TokenUsage, error)
}

// Config configures the rater.
type Config struct {
	Enabled      bool
	Workers      int
	MaxDiffChars int
	Model        string
}

// Rater rates chunks through an LLM judge. Safe for concurrent use.
type Rater struct {
	client       CompletionClient
	enabled      bool
	workers      int
	maxDiffChars int
	model        string
}

// New creates a Rater. Workers defaults to 4, diff budget to 10000 chars.
func New(client CompletionClient, cfg Config) *Rater {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	maxDiff := cfg.MaxDiffChars
	if maxDiff <= 0 {
		maxDiff = 10000
	}
	return &Rater{
		client:       client,
		enabled:      cfg.Enabled,
		workers:      workers,
		maxDiffChars: maxDiff,
		model:        cfg.Model,
	}
}

// Enabled reports whether the LLM judge is switched on.
func (r *Rater) Enabled() bool { return r.enabled }

// RateChunk rates a single chunk. Transport failures produce an error
// rating, unparseable responses a trivial one; the analysis never stops
// on a single bad chunk.
func (r *Rater) RateChunk(ctx context.Context, chunk models.Chunk) (models.EffortRating, models.TokenUsage) {
	if !r.enabled {
		return models.DisabledRating(), models.UnavailableUsage(r.model)
	}

	content, usage, err := r.client.Complete(ctx, systemPrompt, r.userPrompt(chunk))
	if err != nil {
		slog.Warn("Chunk rating call failed",
			"chunk", chunk.ID(),
			"error", err)
		return models.ErrorRating(err.Error()), usage
	}

	rating, err := parseRating(content)
	if err != nil {
		slog.Warn("Unparseable rating response, scoring trivial",
			"chunk", chunk.ID(),
			"error", err)
		return models.TrivialRating("unparseable model response"), usage
	}
	if rating.Confidence < 0.7 {
		slog.Warn("Low-confidence rating",
			"chunk", chunk.ID(),
			"confidence", rating.Confidence,
			"label", rating.Label)
	}
	return rating, usage
}

// RateAll rates every chunk through a bounded worker pool, preserving
// input order, and returns the accumulated token totals.
func (r *Rater) RateAll(ctx context.Context, chunks []models.Chunk) ([]models.AnalyzedChunk, models.TokenTotals) {
	rated := make([]models.AnalyzedChunk, len(chunks))

	var mu sync.Mutex
	totals := models.TokenTotals{}

	p := pool.New().WithMaxGoroutines(r.workers)
	for i, chunk := range chunks {
		p.Go(func() {
			rating, usage := r.RateChunk(ctx, chunk)
			rated[i] = models.AnalyzedChunk{Chunk: chunk, Rating: rating, Usage: usage}

			if r.enabled {
				mu.Lock()
				totals = totals.Add(usage)
				mu.Unlock()
			}
		})
	}
	p.Wait()

	return rated, totals
}

func (r *Rater) userPrompt(chunk models.Chunk) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Commit message:\n%s\n\n", strings.TrimSpace(chunk.Message))
	fmt.Fprintf(&b, "Files: %s\n", strings.Join(chunk.FilePaths(), ", "))
	fmt.Fprintf(&b, "Lines: +%d -%d\n", chunk.LinesAdded, chunk.LinesDeleted)
	if chunk.IsBundled {
		fmt.Fprintf(&b, "Bundled from %d small commits.\n", len(chunk.BundledSHAs))
	}
	if chunk.TotalChunks > 1 {
		fmt.Fprintf(&b, "Part %d of %d of a large commit.\n", chunk.ChunkIndex+1, chunk.TotalChunks)
	}
	fmt.Fprintf(&b, "\nDiff:\n%s\n", chunker.TruncateDiff(chunk.DiffText, r.maxDiffChars))
	return b.String()
}

type ratingPayload struct {
	EffortScore int     `json:"effort_score"`
	Complexity  int     `json:"complexity"`
	Novelty     int     `json:"novelty"`
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
}

func parseRating(content string) (models.EffortRating, error) {
	// Some models wrap the JSON in markdown fences despite json_object.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var payload ratingPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return models.EffortRating{}, err
	}

	label := models.ChunkLabel(strings.ToUpper(strings.TrimSpace(payload.Label)))
	if !models.ValidLabel(label) {
		return models.EffortRating{}, fmt.Errorf("unknown label %q", payload.Label)
	}

	return models.EffortRating{
		EffortScore: clampInt(payload.EffortScore, 1, 10),
		Complexity:  clampInt(payload.Complexity, 1, 10),
		Novelty:     clampInt(payload.Novelty, 1, 10),
		Label:       label,
		Confidence:  clampFloat(payload.Confidence, 0, 1),
		Reasoning:   payload.Reasoning,
	}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
