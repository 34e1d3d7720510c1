package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	findup "github.com/jakoblorz/go-findup"
	"github.com/jakoblorz/go-findup/filesystem"
	"github.com/spf13/cobra"
)

// LookupCommand handles the default upward lookup
type LookupCommand struct {
	fs filesystem.FileSystem
}

// lookupOutput is the JSON shape of a lookup result
type lookupOutput struct {
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &LookupCommand{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "findup <name>...",
		Short: "Locate the nearest file or directory by walking up from a starting path",
		Long: `Walks upward through ancestor directories, starting at --start (the
current directory by default), until an entry with one of the given
names is found or the filesystem root is reached.

Prints the absolute path of the match. Exits non-zero when nothing
was found.`,
		Example: `  # Find the nearest package.json
  findup package.json

  # Find the nearest lockfile, starting somewhere else
  findup yarn.lock package-lock.json --start ./packages/app

  # Give up early inside dependency and VCS directories
  findup tsconfig.json --skip-common

  # Output JSON for scripting
  findup Makefile --format json`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         cmd.Run,
	}

	rootCmd.PersistentFlags().String("start", "", "Directory or file to start from (default: current directory)")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text or json")
	rootCmd.Flags().StringSlice("skip", nil, "Directory names that abandon the walk early")
	rootCmd.Flags().Bool("skip-common", false, "Abandon the walk inside common dependency and VCS directories")

	// Add subcommands
	rootCmd.AddCommand(NewRootDirCommand(fs))

	return rootCmd
}

// Run executes the lookup
func (c *LookupCommand) Run(cmd *cobra.Command, args []string) error {
	start, _ := cmd.Flags().GetString("start")
	format, _ := cmd.Flags().GetString("format")
	skip, _ := cmd.Flags().GetStringSlice("skip")
	skipCommon, _ := cmd.Flags().GetBool("skip-common")

	if start == "" {
		start = "."
	}

	if skipCommon {
		skip = append(skip, findup.CommonSkipDirs...)
	}
	var options []findup.Option
	if len(skip) > 0 {
		options = append(options, findup.WithSkipDirs(skip...))
	}

	finder := findup.NewFinder(c.fs, options...)
	path, found, err := finder.LocateBlocking(start, findup.MatchNames(args...))
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(lookupOutput{Path: path, Found: found})
	}

	if !found {
		return fmt.Errorf("no %s found walking up from %s", strings.Join(args, " or "), start)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
