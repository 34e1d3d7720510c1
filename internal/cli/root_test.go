package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-findup/filesystem"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, fs filesystem.FileSystem, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCommand(fs)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func buildProjectTree() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/ws/package.json", []byte("{}"))
	fs.AddDir("/ws/packages/app")
	return fs
}

func TestLookup_Text(t *testing.T) {
	out, err := runCommand(t, buildProjectTree(), "package.json", "--start", "/ws/packages/app")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, out)
}

func TestLookup_JSON(t *testing.T) {
	out, err := runCommand(t, buildProjectTree(), "package.json", "--start", "/ws/packages/app", "--format", "json")
	require.NoError(t, err)

	var result lookupOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.True(t, result.Found)
	require.Equal(t, "/ws/package.json", result.Path)
}

func TestLookup_NotFound(t *testing.T) {
	_, err := runCommand(t, buildProjectTree(), "missing.json", "--start", "/ws/packages/app")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no missing.json found")
}

func TestLookup_NotFoundJSONIsNotAnError(t *testing.T) {
	out, err := runCommand(t, buildProjectTree(), "missing.json", "--start", "/ws/packages/app", "--format", "json")
	require.NoError(t, err)

	var result lookupOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.False(t, result.Found)
	require.Empty(t, result.Path)
}

func TestLookup_FirstNameWinsPerLevel(t *testing.T) {
	fs := buildProjectTree()
	fs.AddFile("/ws/yarn.lock", []byte(""))

	out, err := runCommand(t, fs, "yarn.lock", "package.json", "--start", "/ws/packages/app")
	require.NoError(t, err)
	require.Equal(t, "/ws/yarn.lock\n", out)
}

func TestLookup_SkipCommon(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/package.json", []byte("{}"))
	fs.AddDir("/repo/node_modules/pkg")

	out, err := runCommand(t, fs, "package.json", "--start", "/repo/node_modules/pkg")
	require.NoError(t, err)
	require.Equal(t, "/repo/package.json\n", out)

	_, err = runCommand(t, fs, "package.json", "--start", "/repo/node_modules/pkg", "--skip-common")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no package.json found")
}

func TestRoot_Text(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/go.mod", []byte("module github.com/acme/widget\n\ngo 1.24.0\n"))
	fs.AddDir("/repo/internal/sub")

	out, err := runCommand(t, fs, "root", "--start", "/repo/internal/sub")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, out)
}

func TestRoot_JSONIncludesModulePath(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/go.mod", []byte("module github.com/acme/widget\n\ngo 1.24.0\n"))
	fs.AddDir("/repo/internal/sub")

	out, err := runCommand(t, fs, "root", "--start", "/repo/internal/sub", "--format", "json")
	require.NoError(t, err)

	var result rootOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.True(t, result.Found)
	require.Equal(t, "/repo", result.Root)
	require.Equal(t, "go.mod", result.Marker)
	require.Equal(t, "github.com/acme/widget", result.Module)
}

func TestRoot_WorkspaceFileOutranksModuleFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/go.work", []byte("go 1.24.0\nuse ./app\n"))
	fs.AddFile("/repo/go.mod", []byte("module github.com/acme/widget\n"))
	fs.AddDir("/repo/app")

	out, err := runCommand(t, fs, "root", "--start", "/repo/app", "--format", "json")
	require.NoError(t, err)

	var result rootOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "go.work", result.Marker)
	require.Empty(t, result.Module)
}

func TestRoot_NotFound(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/lonely")

	_, err := runCommand(t, fs, "root", "--start", "/lonely")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no project root found")
}
