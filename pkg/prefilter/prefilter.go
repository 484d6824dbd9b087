// Package prefilter drops chunks that cannot carry effort signal before
// they reach the LLM rater: merges, reverts, lockfile-only commits,
// reformats, and trivial one-liners.
package prefilter

import (
	"regexp"
	"strings"

	"github.com/fairlens/fairlens/pkg/models"
)

// Reason identifies why a chunk was filtered out. The checks run in a
// fixed order; the first matching reason wins.
type Reason string

// Filter reasons, in evaluation order.
const (
	ReasonEmpty              Reason = "EMPTY"
	ReasonMergeCommit        Reason = "MERGE_COMMIT"
	ReasonRevertCommit       Reason = "REVERT_COMMIT"
	ReasonGeneratedFilesOnly Reason = "GENERATED_FILES_ONLY"
	ReasonRenameOnly         Reason = "RENAME_ONLY"
	ReasonFormatOnly         Reason = "FORMAT_ONLY"
	ReasonMassReformat       Reason = "MASS_REFORMAT"
	ReasonTrivialMessage     Reason = "TRIVIAL_MESSAGE"
	ReasonSmallTrivial       Reason = "SMALL_TRIVIAL_COMMIT"
)

// FilteredChunk pairs a dropped chunk with the reason that dropped it.
type FilteredChunk struct {
	Chunk  models.Chunk `json:"chunk"`
	Reason Reason       `json:"reason"`
}

// Result is the pre-filter's output for one team's chunk list.
type Result struct {
	Analyze  []models.Chunk
	Filtered []FilteredChunk
	Summary  models.FilterSummary
}

var mergePrefixes = []string{
	"merge branch",
	"merge pull request",
	"merge remote-tracking",
	"merge '",
	"merged ",
}

var defaultGeneratedPatterns = []string{
	"*-lock.json",
	"yarn.lock",
	"*.lock",
	"Cargo.lock",
	"go.sum",
	"*.min.js",
	"*.min.css",
	"dist/*",
	"build/*",
	"target/*",
	"node_modules/*",
}

var defaultTrivialPatterns = []string{
	`^[[:punct:]]$`,
	`^(wip|temp|test|oops|stuff|changes|init|initial commit|first commit|typo(s)?|fix typo)$`,
	`chore\(deps\)`,
	`\[bot\]`,
	`auto-format`,
	`update dependencies`,
}

var (
	renameRe = regexp.MustCompile(`(?i)^(rename|move|renamed)\b`)
	formatRe = regexp.MustCompile(`(?i)\b(format|formatting|prettier|eslint|checkstyle|spotless|black|indent|whitespace|style)\b`)
)

// Filter is a stateless chunk classifier. Generated-file and
// trivial-message patterns are configuration, not invariants.
type Filter struct {
	generatedPatterns []string
	trivialPatterns   []*regexp.Regexp
}

// New creates a Filter. Empty pattern slices fall back to the built-in
// defaults. Trivial patterns are case-insensitive regular expressions.
func New(generatedPatterns, trivialPatterns []string) (*Filter, error) {
	if len(generatedPatterns) == 0 {
		generatedPatterns = defaultGeneratedPatterns
	}
	if len(trivialPatterns) == 0 {
		trivialPatterns = defaultTrivialPatterns
	}

	compiled := make([]*regexp.Regexp, 0, len(trivialPatterns))
	for _, p := range trivialPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Filter{generatedPatterns: generatedPatterns, trivialPatterns: compiled}, nil
}

// MustNew is New for the built-in defaults; it panics on compile errors,
// which cannot happen for the defaults.
func MustNew() *Filter {
	f, err := New(nil, nil)
	if err != nil {
		panic(err)
	}
	return f
}

// Apply classifies every chunk, partitioning the input into chunks worth
// rating and filtered chunks with reasons.
func (f *Filter) Apply(chunks []models.Chunk) Result {
	res := Result{
		Summary: models.FilterSummary{
			TotalChunks:    len(chunks),
			CountsByReason: make(map[string]int),
		},
	}
	for _, chunk := range chunks {
		if reason, drop := f.classify(chunk); drop {
			res.Filtered = append(res.Filtered, FilteredChunk{Chunk: chunk, Reason: reason})
			res.Summary.CountsByReason[string(reason)]++
			continue
		}
		res.Analyze = append(res.Analyze, chunk)
	}
	res.Summary.Analyzed = len(res.Analyze)
	res.Summary.Filtered = len(res.Filtered)
	return res
}

func (f *Filter) classify(c models.Chunk) (Reason, bool) {
	message := strings.TrimSpace(c.Message)
	lower := strings.ToLower(message)
	total := c.LinesAdded + c.LinesDeleted

	if c.LinesAdded == 0 && c.LinesDeleted == 0 {
		return ReasonEmpty, true
	}
	if c.IsMerge || hasMergePrefix(lower) {
		return ReasonMergeCommit, true
	}
	if strings.HasPrefix(message, "Revert") || strings.Contains(message, "This reverts commit") {
		return ReasonRevertCommit, true
	}
	if len(c.Files) > 0 && f.allGenerated(c.Files) {
		return ReasonGeneratedFilesOnly, true
	}
	if c.IsRenameOnly || (renameRe.MatchString(message) && total <= 5) {
		return ReasonRenameOnly, true
	}
	if c.IsFormatOnly || formatRe.MatchString(message) {
		return ReasonFormatOnly, true
	}
	if c.IsMassReformat || isMassReformat(c, message) {
		return ReasonMassReformat, true
	}
	if f.isTrivialMessage(message) {
		return ReasonTrivialMessage, true
	}
	if total <= 5 && isShortMessage(message) {
		return ReasonSmallTrivial, true
	}
	return "", false
}

// isShortMessage is the looser trivia test for tiny commits: a message of
// at most three words carries no signal when the diff is five lines or
// fewer ("fix lint", "oops again").
func isShortMessage(message string) bool {
	return len(message) <= 20 && len(strings.Fields(message)) <= 3
}

func hasMergePrefix(lowerMessage string) bool {
	for _, prefix := range mergePrefixes {
		if strings.HasPrefix(lowerMessage, prefix) {
			return true
		}
	}
	return false
}

func (f *Filter) allGenerated(files []models.FileChange) bool {
	for _, file := range files {
		if !f.isGenerated(file.Path) {
			return false
		}
	}
	return true
}

func (f *Filter) isGenerated(path string) bool {
	base := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		base = path[i+1:]
	}
	for _, pattern := range f.generatedPatterns {
		switch {
		case strings.HasSuffix(pattern, "/*"):
			dir := strings.TrimSuffix(pattern, "/*")
			if strings.HasPrefix(path, dir+"/") || strings.Contains(path, "/"+dir+"/") {
				return true
			}
		case strings.HasPrefix(pattern, "*"):
			if strings.HasSuffix(base, pattern[1:]) {
				return true
			}
		default:
			if base == pattern {
				return true
			}
		}
	}
	return false
}

func isMassReformat(c models.Chunk, message string) bool {
	if len(c.Files) < 10 {
		return false
	}
	mean := float64(c.LinesAdded+c.LinesDeleted) / float64(len(c.Files))
	return mean <= 3 && formatRe.MatchString(message)
}

func (f *Filter) isTrivialMessage(message string) bool {
	for _, re := range f.trivialPatterns {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}
