package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/opnr/internal/giturl"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/store"
	"github.com/stretchr/testify/require"
)

func openKV(t *testing.T) store.Store {
	t.Helper()

	kv, err := store.NewBolt(filepath.Join(t.TempDir(), "core.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return kv
}

func TestConfigRoundTrip(t *testing.T) {
	kv := openKV(t)

	cfg := LoadConfig(kv)
	require.Equal(t, model.DefaultScanDepth, cfg.ScanDepth)

	cfg.RootPaths = []string{"/work"}
	cfg.ScanDepth = 5
	cfg.Tokens["github.com"] = "tok123"
	require.NoError(t, SaveConfig(kv, cfg))

	got := LoadConfig(kv)
	require.Equal(t, []string{"/work"}, got.RootPaths)
	require.Equal(t, 5, got.ScanDepth)
	require.Equal(t, "tok123", got.Tokens["github.com"])
}

func TestConfigCorruptSlot(t *testing.T) {
	kv := openKV(t)
	require.NoError(t, kv.Put(store.KeyConfig, []byte("{broken")))

	got := LoadConfig(kv)
	require.Equal(t, model.DefaultScanDepth, got.ScanDepth)
	require.NotNil(t, got.Tokens)
}

func mkProject(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0644))
}

func TestProjectsServedFromCache(t *testing.T) {
	kv := openKV(t)
	root := t.TempDir()
	mkProject(t, filepath.Join(root, "a"))

	cfg := model.DefaultConfig()
	cfg.RootPaths = []string{root}
	cfg.ScanDepth = 2

	got := Projects(kv, cfg)
	require.Len(t, got, 1)

	// a project appearing after the scan is invisible until refresh
	mkProject(t, filepath.Join(root, "b"))

	got = Projects(kv, cfg)
	require.Len(t, got, 1)

	got = Refresh(kv, cfg)
	require.Len(t, got, 2)
}

func TestProjectsDecorated(t *testing.T) {
	kv := openKV(t)
	root := t.TempDir()
	target := filepath.Join(root, "a")
	mkProject(t, target)

	cfg := model.DefaultConfig()
	cfg.RootPaths = []string{root}
	cfg.ScanDepth = 1

	require.NoError(t, FavoriteProject(kv, target))

	got := Projects(kv, cfg)
	require.Len(t, got, 1)
	require.True(t, got[0].Favorite)
	require.True(t, IsFavorite(kv, target))

	require.NoError(t, UnfavoriteProject(kv, target))
	require.False(t, IsFavorite(kv, target))
}

func TestProjectFromPath(t *testing.T) {
	dir := t.TempDir()

	p, err := ProjectFromPath(dir)
	require.NoError(t, err)
	require.Equal(t, dir, p.Path)
	require.Equal(t, p.Path, p.ID)

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err = ProjectFromPath(file)

	var notDir *NotADirectoryError
	require.ErrorAs(t, err, &notDir)

	_, err = ProjectFromPath(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestOpenProjectMissingEditor(t *testing.T) {
	kv := openKV(t)

	cfg := model.DefaultConfig()
	cfg.Editor = "definitely-not-an-editor-binary"

	p := model.Project{ID: "/w/a", Name: "a", Path: "/w/a", Kind: model.KindLocal}

	err := OpenProject(kv, cfg, p, "", false)

	var notInstalled *EditorNotInstalledError
	require.ErrorAs(t, err, &notInstalled)

	// the failed launch must not leave a history entry
	require.Empty(t, HistoryProjects(kv))
}

func TestParseHost(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Host
		wantErr bool
	}{
		{"user and host", "dev@build1", model.Host{User: "dev", Host: "build1"}, false},
		{"with port", "dev@build1:2222", model.Host{User: "dev", Host: "build1", Port: 2222}, false},
		{"trimmed", "  dev@build1  ", model.Host{User: "dev", Host: "build1"}, false},
		{"empty", "", model.Host{}, true},
		{"missing user", "build1", model.Host{}, true},
		{"missing host", "dev@", model.Host{}, true},
		{"bad port", "dev@build1:ssh", model.Host{}, true},
		{"port out of range", "dev@build1:70000", model.Host{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHost(tt.input)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHostsMergesFavoritesAndHistory(t *testing.T) {
	kv := openKV(t)

	// favorites-only host present even with empty history
	favOnly := model.Host{User: "dev", Host: "archive"}
	require.NoError(t, FavoriteHost(kv, favOnly))

	got := Hosts(kv)
	require.Len(t, got, 1)
	require.True(t, got[0].Favorite)
}

func TestPrepareClonePath(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DefaultCloneDir = t.TempDir()

	u, savePath, err := PrepareClonePath(cfg, "https://github.com/acme/widgets.git", CloneOptions{})
	require.NoError(t, err)
	require.Equal(t, "github.com", u.Host)
	require.Equal(t, filepath.Join(cfg.DefaultCloneDir, "widgets"), savePath)

	// an existing target collides unless forced
	require.NoError(t, os.MkdirAll(savePath, 0755))

	_, _, err = PrepareClonePath(cfg, "https://github.com/acme/widgets.git", CloneOptions{})

	var collision *PathCollisionError
	require.ErrorAs(t, err, &collision)

	_, savePath, err = PrepareClonePath(cfg, "https://github.com/acme/widgets.git", CloneOptions{Force: true})
	require.NoError(t, err)

	_, statErr := os.Stat(savePath)
	require.True(t, os.IsNotExist(statErr))
}

func TestPrepareClonePathRejectsNonURL(t *testing.T) {
	cfg := model.DefaultConfig()

	_, _, err := PrepareClonePath(cfg, "not a url", CloneOptions{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCloneRegistryDedup(t *testing.T) {
	kv := openKV(t)

	u, err := giturl.Parse("https://github.com/acme/widgets.git")
	require.NoError(t, err)

	require.NoError(t, SaveClonedRepo(kv, u, "/src/widgets", "main"))
	require.NoError(t, SaveClonedRepo(kv, u, "/src/widgets", "main"))

	repos := ClonedRepos(kv)
	require.Len(t, repos, 1)
	require.NotEmpty(t, repos[0].UID)
	require.Equal(t, "main", repos[0].Branch)
}

func TestNewProject(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DefaultCloneDir = t.TempDir()

	p, err := NewProject(context.Background(), cfg, "widgets", NewProjectOptions{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfg.DefaultCloneDir, "widgets"), p.Path)
	require.FileExists(t, filepath.Join(p.Path, "README.md"))

	// name validation happens before any directory is created
	_, err = NewProject(context.Background(), cfg, "a/b", NewProjectOptions{})
	require.Error(t, err)
	require.NoDirExists(t, filepath.Join(cfg.DefaultCloneDir, "a"))
}
