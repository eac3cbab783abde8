package launch

import (
	"testing"

	"github.com/inovacc/opnr/internal/model"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	require.Equal(t, []string{"/w/a"}, Args("/w/a", false))
	require.Equal(t, []string{"--new-window", "/w/a"}, Args("/w/a", true))
}

func TestRemoteArgs(t *testing.T) {
	h := model.Host{User: "dev", Host: "build1", Port: 2222}

	require.Equal(t,
		[]string{"--remote", "ssh-remote+dev@build1:2222"},
		RemoteArgs(h, false))

	require.Equal(t,
		[]string{"--new-window", "--remote", "ssh-remote+dev@build1:2222"},
		RemoteArgs(h, true))

	// default ssh port is omitted from the authority
	require.Equal(t,
		[]string{"--remote", "ssh-remote+dev@build1"},
		RemoteArgs(model.Host{User: "dev", Host: "build1"}, false))
}

func TestAllEditors(t *testing.T) {
	custom := []model.Editor{{Name: "My Editor", Command: "myed"}}

	all := AllEditors(custom)
	require.Len(t, all, len(DefaultEditors)+1)
	require.Equal(t, "myed", all[len(all)-1].Command)
}

func TestIsInstalled(t *testing.T) {
	require.False(t, IsInstalled("definitely-not-an-editor-binary"))

	// something shell-like exists on every test machine
	require.True(t, IsInstalled("sh") || IsInstalled("cmd"))
}

func TestOpenUnknownEditor(t *testing.T) {
	err := Open("definitely-not-an-editor-binary", t.TempDir(), false)
	require.Error(t, err)

	var editorErr *EditorError
	require.ErrorAs(t, err, &editorErr)
	require.Equal(t, "definitely-not-an-editor-binary", editorErr.Command)
}
