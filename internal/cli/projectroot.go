package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	findup "github.com/jakoblorz/go-findup"
	"github.com/jakoblorz/go-findup/filesystem"
	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
)

// rootMarkers are checked in order at each level; a workspace file
// outranks a module file in the same directory.
var rootMarkers = []string{"go.work", "go.mod", "package.json", ".git"}

// RootDirCommand handles the root command
type RootDirCommand struct {
	fs filesystem.FileSystem
}

// rootOutput is the JSON shape of a project root result
type rootOutput struct {
	Root   string `json:"root,omitempty"`
	Marker string `json:"marker,omitempty"`
	Module string `json:"module,omitempty"`
	Found  bool   `json:"found"`
}

// NewRootDirCommand creates a new root command
func NewRootDirCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RootDirCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "root",
		Short: "Print the nearest project root directory",
		Long: `Walks upward from the starting directory until one of the known
project root markers is found: go.work, go.mod, package.json or .git.
Prints the directory containing the marker.`,
		Example: `  # Print the project root of the current directory
  findup root

  # Inspect another tree, with marker and Go module details
  findup root --start ./packages/app --format json`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the root command
func (c *RootDirCommand) Run(cmd *cobra.Command, args []string) error {
	start, _ := cmd.Flags().GetString("start")
	format, _ := cmd.Flags().GetString("format")

	if start == "" {
		start = "."
	}

	finder := findup.NewFinder(c.fs)
	path, found, err := finder.LocateBlocking(start, findup.MatchNames(rootMarkers...))
	if err != nil {
		return err
	}

	if !found {
		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(rootOutput{Found: false})
		}
		return fmt.Errorf("no project root found walking up from %s", start)
	}

	output := rootOutput{
		Root:   filepath.Dir(path),
		Marker: filepath.Base(path),
		Found:  true,
	}
	if output.Marker == "go.mod" {
		output.Module = c.readModulePath(path)
	}

	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(output)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Root)
	return nil
}

// readModulePath returns the module path declared in the go.mod at
// path, or "" when it cannot be read or parsed.
func (c *RootDirCommand) readModulePath(path string) string {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return ""
	}

	file, err := modfile.ParseLax(path, data, nil)
	if err != nil || file.Module == nil {
		return ""
	}
	return file.Module.Mod.Path
}
