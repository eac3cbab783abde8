package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/inovacc/opnr/internal/model"
	"github.com/stretchr/testify/require"
)

// mkProject creates dir with the given marker file inside it.
func mkProject(t *testing.T, dir, marker string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))

	if marker == ".git" {
		require.NoError(t, os.Mkdir(filepath.Join(dir, marker), 0755))

		return
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, marker), []byte("x"), 0644))
}

func paths(projects []model.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Path
	}

	return out
}

func TestIsProject(t *testing.T) {
	dir := t.TempDir()
	require.False(t, IsProject(dir))

	mkProject(t, dir, "go.mod")
	require.True(t, IsProject(dir))

	// IDE config folders are not markers
	ide := filepath.Join(t.TempDir(), "workspace")
	require.NoError(t, os.MkdirAll(filepath.Join(ide, ".idea"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(ide, ".vscode"), 0755))
	require.False(t, IsProject(ide))

	require.False(t, IsProject(filepath.Join(dir, "does-not-exist")))
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		patterns []string
		want     bool
	}{
		{"exact match", "node_modules", []string{"node_modules"}, true},
		{"substring match", "my_node_modules_copy", []string{"node_modules"}, true},
		{"case folded", "Node_Modules", []string{"NODE_modules"}, true},
		{"pattern trimmed", "dist", []string{" dist "}, true},
		{"no match", "src", []string{"node_modules", "dist"}, false},
		{"empty pattern ignored", "src", []string{""}, false},
		{"no patterns", "node_modules", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsExcluded(tt.folder, tt.patterns))
		})
	}
}

func TestScanEndToEnd(t *testing.T) {
	w := t.TempDir()

	mkProject(t, filepath.Join(w, "a"), ".git")
	mkProject(t, filepath.Join(w, "b", "c"), "package.json")

	got := Scan(Config{RootPaths: []string{w}, MaxDepth: 2})

	require.ElementsMatch(t,
		[]string{filepath.Join(w, "a"), filepath.Join(w, "b", "c")},
		paths(got))

	for _, p := range got {
		require.Equal(t, p.Path, p.ID)
		require.Equal(t, filepath.Base(p.Path), p.Name)
		require.Equal(t, model.KindLocal, p.Kind)
		require.False(t, p.LastModified.IsZero())
	}
}

func TestScanContainerPrecedence(t *testing.T) {
	// a monorepo root carrying its own .git still yields to its members
	root := t.TempDir()
	mkProject(t, root, ".git")
	mkProject(t, filepath.Join(root, "svc"), "go.mod")
	mkProject(t, filepath.Join(root, "web"), "package.json")

	got := Scan(Config{RootPaths: []string{root}, MaxDepth: 3})

	require.ElementsMatch(t,
		[]string{filepath.Join(root, "svc"), filepath.Join(root, "web")},
		paths(got))
	require.NotContains(t, paths(got), root)
}

func TestScanProjectIsLeaf(t *testing.T) {
	// nothing below an emitted project is ever emitted
	root := t.TempDir()
	outer := filepath.Join(root, "app")
	mkProject(t, outer, ".git")
	mkProject(t, filepath.Join(outer, "vendor-tool"), "Makefile")

	// outer has a project child, so it is a container; the child wins
	got := Scan(Config{RootPaths: []string{root}, MaxDepth: 4})
	require.Equal(t, []string{filepath.Join(outer, "vendor-tool")}, paths(got))

	// without a project child, outer itself wins and its subtree is skipped
	plain := filepath.Join(root, "plain")
	mkProject(t, plain, "go.mod")
	require.NoError(t, os.MkdirAll(filepath.Join(plain, "internal", "deep"), 0755))

	got = Scan(Config{RootPaths: []string{plain}, MaxDepth: 4})
	require.Equal(t, []string{plain}, paths(got))
}

func TestScanExclusion(t *testing.T) {
	p := t.TempDir()
	mkProject(t, filepath.Join(p, "node_modules", "x"), "package.json")

	got := Scan(Config{
		RootPaths:         []string{p},
		MaxDepth:          4,
		ExclusionPatterns: []string{"node_modules"},
	})

	require.Empty(t, got)
}

func TestScanDepthZero(t *testing.T) {
	root := t.TempDir()
	mkProject(t, root, "go.mod")
	mkProject(t, filepath.Join(root, "sub"), "Cargo.toml")

	// depth 0 evaluates the root only; the project child makes it a
	// container, so nothing is emitted and nothing is recursed into
	got := Scan(Config{RootPaths: []string{root}, MaxDepth: 0})
	require.Empty(t, got)

	// a plain project root at depth 0 is emitted
	solo := t.TempDir()
	mkProject(t, solo, "go.mod")

	got = Scan(Config{RootPaths: []string{solo}, MaxDepth: 0})
	require.Equal(t, []string{solo}, paths(got))
}

func TestScanDepthBound(t *testing.T) {
	root := t.TempDir()
	mkProject(t, filepath.Join(root, "a", "b", "c"), ".git")

	require.Empty(t, Scan(Config{RootPaths: []string{root}, MaxDepth: 1}))
	require.NotEmpty(t, Scan(Config{RootPaths: []string{root}, MaxDepth: 3}))
}

func TestScanDuplicateRoots(t *testing.T) {
	root := t.TempDir()
	mkProject(t, filepath.Join(root, "a"), ".git")

	got := Scan(Config{RootPaths: []string{root, root}, MaxDepth: 1})
	require.Equal(t, []string{filepath.Join(root, "a")}, paths(got))
}

func TestScanSymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	mkProject(t, filepath.Join(root, "proj"), ".git")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))

	done := make(chan []model.Project, 1)

	go func() {
		done <- Scan(Config{RootPaths: []string{root}, MaxDepth: 6})
	}()

	select {
	case got := <-done:
		require.Equal(t, []string{filepath.Join(root, "proj")}, paths(got))
	case <-time.After(10 * time.Second):
		t.Fatal("scan did not terminate on symlink cycle")
	}
}

func TestLatestModification(t *testing.T) {
	root := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	fileA := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(fileA, []byte("a"), 0644))
	require.NoError(t, os.Chtimes(fileA, old, old))

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	fileB := filepath.Join(sub, "b.txt")
	require.NoError(t, os.WriteFile(fileB, []byte("b"), 0644))
	require.NoError(t, os.Chtimes(fileB, newer, newer))
	require.NoError(t, os.Chtimes(sub, old, old))

	got, ok := LatestModification(root, nil, RecencyDepth)
	require.True(t, ok)
	require.WithinDuration(t, newer, got, 2*time.Second)
}

func TestLatestModificationExcluded(t *testing.T) {
	root := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)

	fileA := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(fileA, []byte("a"), 0644))
	require.NoError(t, os.Chtimes(fileA, old, old))

	// fresher content inside an excluded folder must not count
	nm := filepath.Join(root, "node_modules")
	require.NoError(t, os.Mkdir(nm, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nm, "fresh.js"), []byte("x"), 0644))

	got, ok := LatestModification(root, []string{"node_modules"}, RecencyDepth)
	require.True(t, ok)
	require.WithinDuration(t, old, got, 2*time.Second)
}

func TestLatestModificationEmpty(t *testing.T) {
	_, ok := LatestModification(t.TempDir(), nil, RecencyDepth)
	require.False(t, ok)

	_, ok = LatestModification(filepath.Join(t.TempDir(), "missing"), nil, RecencyDepth)
	require.False(t, ok)
}

func TestRemoteURL(t *testing.T) {
	dir := t.TempDir()
	require.Empty(t, remoteURL(dir))

	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.Mkdir(gitDir, 0755))

	cfg := `[core]
	repositoryformatversion = 0
[remote "origin"]
	url = git@github.com:acme/widgets.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte(cfg), 0644))

	require.Equal(t, "git@github.com:acme/widgets.git", remoteURL(dir))
}

func TestConfigHash(t *testing.T) {
	base := Config{RootPaths: []string{"/w"}, MaxDepth: 3, ExclusionPatterns: []string{"dist"}}

	require.Equal(t, base.Hash(), base.Hash())

	diffRoot := base
	diffRoot.RootPaths = []string{"/src"}
	require.NotEqual(t, base.Hash(), diffRoot.Hash())

	diffDepth := base
	diffDepth.MaxDepth = 4
	require.NotEqual(t, base.Hash(), diffDepth.Hash())

	diffExcl := base
	diffExcl.ExclusionPatterns = []string{"dist", "tmp"}
	require.NotEqual(t, base.Hash(), diffExcl.Hash())
}
