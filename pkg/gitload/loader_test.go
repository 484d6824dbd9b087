package gitload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	t    *testing.T
	dir  string
	repo *git.Repository
	wt   *git.Worktree
	when time.Time
}

func initRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	return &testRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		wt:   wt,
		when: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (r *testRepo) write(path, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, path)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0o644))
}

func (r *testRepo) commit(message, email string) plumbing.Hash {
	r.t.Helper()
	require.NoError(r.t, r.wt.AddWithOptions(&git.AddOptions{All: true}))
	r.when = r.when.Add(time.Hour)
	hash, err := r.wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Student", Email: email, When: r.when},
	})
	require.NoError(r.t, err)
	return hash
}

func TestLoad_OldestFirstWithStats(t *testing.T) {
	r := initRepo(t)
	r.write("main.go", "package main\n\nfunc main() {}\n")
	first := r.commit("initial commit", "ada@uni.example")
	r.write("main.go", "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n")
	r.write("util.go", "package main\n")
	second := r.commit("add greeting and util", "grace@uni.example")

	authors := map[string]int64{first.String(): 1, second.String(): 2}
	commits, err := Load(context.Background(), r.dir, authors)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, first.String(), commits[0].SHA)
	assert.Equal(t, "initial commit", commits[0].Message)
	require.NotNil(t, commits[0].AuthorID)
	assert.EqualValues(t, 1, *commits[0].AuthorID)
	// Initial commit diffs against the empty tree.
	assert.Equal(t, 3, commits[0].LinesAdded())
	assert.Zero(t, commits[0].LinesDeleted())

	assert.Equal(t, second.String(), commits[1].SHA)
	require.NotNil(t, commits[1].AuthorID)
	assert.EqualValues(t, 2, *commits[1].AuthorID)
	assert.True(t, commits[1].Timestamp.After(commits[0].Timestamp))

	paths := map[string]bool{}
	for _, f := range commits[1].Files {
		paths[f.Path] = true
	}
	assert.True(t, paths["main.go"])
	assert.True(t, paths["util.go"])
	assert.Greater(t, commits[1].LinesAdded(), 0)
	assert.NotEmpty(t, commits[1].Files[0].DiffText)
}

func TestLoad_UnmappedAuthorKeepsNilID(t *testing.T) {
	r := initRepo(t)
	r.write("a.txt", "one\n")
	r.commit("add a", "unknown@elsewhere.example")

	commits, err := Load(context.Background(), r.dir, nil)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Nil(t, commits[0].AuthorID)
	assert.Equal(t, "unknown@elsewhere.example", commits[0].AuthorEmail)
}

func TestLoad_MergeCommitFlagged(t *testing.T) {
	r := initRepo(t)
	r.write("a.txt", "one\n")
	base := r.commit("base", "ada@uni.example")
	r.write("b.txt", "two\n")
	side := r.commit("side work", "grace@uni.example")

	r.when = r.when.Add(time.Hour)
	merge, err := r.wt.Commit("Merge branch 'side'", &git.CommitOptions{
		Author:            &object.Signature{Name: "Student", Email: "ada@uni.example", When: r.when},
		Parents:           []plumbing.Hash{side, base},
		AllowEmptyCommits: true,
	})
	require.NoError(t, err)

	commits, err := Load(context.Background(), r.dir, nil)
	require.NoError(t, err)
	require.Len(t, commits, 3)

	last := commits[2]
	assert.Equal(t, merge.String(), last.SHA)
	assert.True(t, last.IsMerge)
	assert.Empty(t, last.Files)
}

func TestLoad_PureRenameFlagged(t *testing.T) {
	r := initRepo(t)
	r.write("old.go", "package main\n\nvar x = 1\n")
	r.commit("add old", "ada@uni.example")

	require.NoError(t, os.Rename(filepath.Join(r.dir, "old.go"), filepath.Join(r.dir, "new.go")))
	r.commit("rename old to new", "ada@uni.example")

	commits, err := Load(context.Background(), r.dir, nil)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.True(t, commits[1].IsRenameOnly)
	assert.Zero(t, commits[1].LinesAdded()+commits[1].LinesDeleted())
}

func TestLoad_MissingRepository(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir(), nil)
	require.Error(t, err)
	var repoError *RepositoryError
	assert.ErrorAs(t, err, &repoError)
	assert.Equal(t, "open", repoError.Op)
}

func TestCache_CloneThenPull(t *testing.T) {
	origin := initRepo(t)
	origin.write("README.md", "# project\n")
	origin.commit("init", "ada@uni.example")

	cache := NewCache(t.TempDir(), "", "")
	ctx := context.Background()

	path, err := cache.Sync(ctx, "team-7", origin.dir)
	require.NoError(t, err)
	commits, err := Load(ctx, path, nil)
	require.NoError(t, err)
	assert.Len(t, commits, 1)

	// Second sync hits the pull path; up-to-date is not an error.
	again, err := cache.Sync(ctx, "team-7", origin.dir)
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestCache_CloneFailureCleansUp(t *testing.T) {
	cache := NewCache(t.TempDir(), "", "")
	_, err := cache.Sync(context.Background(), "team-x", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	var repoError *RepositoryError
	assert.ErrorAs(t, err, &repoError)
}
