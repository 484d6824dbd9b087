package gitload

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Cache keeps one clone per team under a base directory and refreshes it
// before each analysis run.
type Cache struct {
	dir  string
	auth *githttp.BasicAuth
}

// NewCache creates a repository cache rooted at dir. Username and token
// may be empty for anonymous access.
func NewCache(dir, username, token string) *Cache {
	c := &Cache{dir: dir}
	if token != "" {
		c.auth = &githttp.BasicAuth{Username: username, Password: token}
	}
	return c
}

// Sync clones or updates the repository for slug and returns the local
// path. A pull failure on an existing clone is tolerated: the stale
// snapshot is better than no analysis.
func (c *Cache) Sync(ctx context.Context, slug, uri string) (string, error) {
	path := filepath.Join(c.dir, slug)

	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return path, c.clone(ctx, path, uri)
	}
	if err != nil {
		return "", repoErr(uri, "open cache", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", repoErr(uri, "worktree", err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{Auth: c.auth, Force: true})
	switch {
	case err == nil, errors.Is(err, git.NoErrAlreadyUpToDate):
		return path, nil
	case ctx.Err() != nil:
		return "", ctx.Err()
	default:
		slog.Warn("Pull failed, analyzing cached snapshot",
			"repository", uri,
			"path", path,
			"error", err)
		return path, nil
	}
}

func (c *Cache) clone(ctx context.Context, path, uri string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return repoErr(uri, "mkdir", err)
	}
	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:  uri,
		Auth: c.auth,
	})
	if err != nil {
		// A failed clone leaves a partial directory behind.
		_ = os.RemoveAll(path)
		return repoErr(uri, "clone", err)
	}
	return nil
}
