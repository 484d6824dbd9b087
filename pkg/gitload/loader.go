// Package gitload reads a team repository's history into commits with
// per-file line stats, rename flags, and resolved platform author IDs.
package gitload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RepositoryError wraps git failures with the repository and operation
// that produced them.
type RepositoryError struct {
	Repo string
	Op   string
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %s: %v", e.Repo, e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

func repoErr(repo, op string, err error) error {
	return &RepositoryError{Repo: repo, Op: op, Err: err}
}

// Load walks the repository at path from HEAD and returns its commits
// oldest-first. Diffs are taken against the first parent; the initial
// commit diffs against the empty tree. authorsBySHA maps commit SHAs to
// platform author IDs; unmapped SHAs keep a nil author.
func Load(ctx context.Context, path string, authorsBySHA map[string]int64) ([]models.Commit, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, repoErr(path, "open", err)
	}

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, repoErr(path, "log", err)
	}
	defer iter.Close()

	var raw []*object.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw = append(raw, c)
		return nil
	})
	if err != nil {
		return nil, repoErr(path, "walk", err)
	}

	// git log yields newest-first; analysis wants chronological order.
	commits := make([]models.Commit, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		commit, err := convert(ctx, raw[i], authorsBySHA)
		if err != nil {
			return nil, repoErr(path, "diff "+raw[i].Hash.String()[:8], err)
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

func convert(ctx context.Context, c *object.Commit, authorsBySHA map[string]int64) (models.Commit, error) {
	sha := c.Hash.String()
	commit := models.Commit{
		SHA:         sha,
		AuthorEmail: c.Author.Email,
		Message:     c.Message,
		Timestamp:   c.Author.When.UTC(),
		IsMerge:     c.NumParents() > 1,
	}

	if id, ok := authorsBySHA[sha]; ok {
		commit.AuthorID = &id
	} else {
		slog.Warn("No platform author mapping for commit",
			"sha", sha,
			"email", c.Author.Email)
	}

	// Merge commits are filtered downstream; their combined diff would
	// double-count the merged work.
	if commit.IsMerge {
		return commit, nil
	}

	files, renameOnly, err := diffAgainstFirstParent(ctx, c)
	if err != nil {
		return models.Commit{}, err
	}
	commit.Files = files
	commit.IsRenameOnly = renameOnly
	return commit, nil
}

// diffAgainstFirstParent computes per-file changes with rename detection.
// The second result is true when every change is a pure rename.
func diffAgainstFirstParent(ctx context.Context, c *object.Commit) ([]models.FileChange, bool, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, false, err
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, false, err
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, false, err
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, false, err
	}

	var files []models.FileChange
	renameOnly := len(changes) > 0
	for _, change := range changes {
		fc, isRename, err := fileChange(change)
		if err != nil {
			return nil, false, err
		}
		if !isRename || fc.AddedLines > 0 || fc.DeletedLines > 0 {
			renameOnly = false
		}
		files = append(files, fc)
	}
	return files, renameOnly, nil
}

func fileChange(change *object.Change) (models.FileChange, bool, error) {
	path := change.To.Name
	if path == "" {
		path = change.From.Name
	}
	isRename := change.From.Name != "" && change.To.Name != "" && change.From.Name != change.To.Name

	patch, err := change.Patch()
	if err != nil {
		return models.FileChange{}, false, err
	}

	fc := models.FileChange{Path: path}
	var b strings.Builder
	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			continue
		}
		for _, chunk := range fp.Chunks() {
			switch chunk.Type() {
			case diff.Add:
				fc.AddedLines += countLines(chunk.Content())
				writeDiff(&b, "+", chunk.Content())
			case diff.Delete:
				fc.DeletedLines += countLines(chunk.Content())
				writeDiff(&b, "-", chunk.Content())
			}
		}
	}
	fc.DiffText = b.String()
	return fc, isRename, nil
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

func writeDiff(b *strings.Builder, prefix, content string) {
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
