package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dumblebots/fss/internal/config"
	"github.com/dumblebots/fss/internal/files/filesystem"
	"github.com/dumblebots/fss/internal/logging"
	"github.com/dumblebots/fss/internal/render"
	"github.com/dumblebots/fss/internal/scan"
	"github.com/dumblebots/fss/pkg/fss"
)

const asciiLogo = `  __
 / _|___ ___
|  _(_-<_-<
|_| /__/__/`

var rootCmd = &cobra.Command{
	Use:   "fss [path]",
	Short: "File system scanner",
	Long: asciiLogo + `

fss scans the filesystem starting from PATH (the current directory when
omitted) and lists what it finds: files, directories, symlinks and special
entries, with optional recursion, name search and recursive directory sizes.

Output streams as entries are discovered, so large trees can be inspected
or piped without waiting for the scan to finish.

Defaults can be stored in fss.yaml (working directory or user config
directory) and overridden with FSS_* environment variables; command-line
flags always win.

Examples:
  # Top-level overview of the current directory
  fss

  # Everything under .., three levels deep, with sizes
  fss .. --recursive=3 --files --symlinks --dir-size

  # Find every file named main.go
  fss / -r -S main.go

Exit Codes:
  0  - Success (recoverable per-entry errors included)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (bad depth, conflicting search modes)
  11 - Starting path missing or inaccessible`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runScan,
	SilenceUsage: true,
}

type scanFlagValues struct {
	recursive                     string
	files, symlinks, special      bool
	dirSize, permissions, modTime bool
	absolute                      bool
	search, searchNoext, contains string
	showErrors                    bool
}

var scanFlags scanFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&scanFlags.recursive, "recursive", "r", "",
		"Recursively scan directories\n"+
			"Bare --recursive (or -r) descends without limit; --recursive=N stops\n"+
			"N levels below the starting path (N=0 shows nothing)")
	// bare -r means unlimited depth
	flags.Lookup("recursive").NoOptDefVal = "unlimited"

	flags.BoolVarP(&scanFlags.files, "files", "f", false, "Show regular files")
	flags.BoolVarP(&scanFlags.symlinks, "symlinks", "l", false, "Show symlinks (never followed)")
	flags.BoolVarP(&scanFlags.special, "special", "s", false, "Show special entries (sockets, devices, FIFOs)")

	flags.BoolVarP(&scanFlags.dirSize, "dir-size", "d", false,
		"Show the recursive apparent size of each directory\n"+
			"A trailing * marks a lower bound (part of the subtree was unreadable)")
	flags.BoolVarP(&scanFlags.permissions, "permissions", "p", false, "Show permissions as rwx triplets")
	flags.BoolVarP(&scanFlags.modTime, "modification-time", "t", false, "Show the last modification time")
	flags.BoolVarP(&scanFlags.absolute, "abs", "a", false, "Show absolute paths without indentation")

	flags.StringVarP(&scanFlags.search, "search", "S", "",
		"Only show entries whose name matches the given string exactly")
	flags.StringVar(&scanFlags.searchNoext, "search-noext", "",
		"Only show entries whose name, minus the extension, matches the given string exactly")
	flags.StringVar(&scanFlags.contains, "contains", "",
		"Only show entries whose name contains the given string")
	rootCmd.MarkFlagsMutuallyExclusive("search", "search-noext", "contains")

	flags.BoolVarP(&scanFlags.showErrors, "show-err", "e", false,
		"Report recoverable per-entry errors on stderr")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value. The flag lives
// on the root command's persistent set, which is only merged into Flags()
// once cobra executes the command, so read it from where it is registered.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.PersistentFlags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func runScan(cmd *cobra.Command, args []string) error {
	defaults, err := config.Discover()
	if err != nil {
		return fmt.Errorf("%v: %w", err, fss.ErrInvalidConfig)
	}

	opts, err := buildScanOptions(cmd, defaults, args)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(opts.Verbose)
	walker := scan.NewWalker(filesystem.NewOSProvider(), logger)

	styles := render.PlainStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		styles = render.DefaultStyles()
	}
	renderer := render.New(os.Stdout, opts, styles)

	// Aggregate rows stand in for hidden entries; they make no sense in
	// absolute-path output and would be noise in search results.
	if !opts.Absolute && !opts.Match.Active() {
		walker.OnDirTally = renderer.DirTally
	}

	report, err := walker.Walk(opts, renderer.Record)
	if err != nil {
		return err
	}
	return renderer.Summary(report)
}

// buildScanOptions resolves the effective scan options for one invocation.
// Flags set on the command line win over defaults from the environment and
// config file. Extracted for testability.
func buildScanOptions(cmd *cobra.Command, defaults *config.Defaults, args []string) (fss.ScanOptions, error) {
	flags := cmd.Flags()

	boolOpt := func(name string, flagVal, defaultVal bool) bool {
		if flags.Changed(name) {
			return flagVal
		}
		return defaultVal
	}

	opts := fss.ScanOptions{
		Root:         fss.DefaultRoot,
		ShowFiles:    boolOpt("files", scanFlags.files, defaults.ShowFiles),
		ShowSymlinks: boolOpt("symlinks", scanFlags.symlinks, defaults.ShowSymlinks),
		ShowSpecial:  boolOpt("special", scanFlags.special, defaults.ShowSpecial),
		DirSize:      boolOpt("dir-size", scanFlags.dirSize, defaults.DirSize),
		Permissions:  boolOpt("permissions", scanFlags.permissions, defaults.Permissions),
		ModTime:      boolOpt("modification-time", scanFlags.modTime, defaults.ModTime),
		Absolute:     boolOpt("abs", scanFlags.absolute, defaults.Absolute),
		ShowErrors:   boolOpt("show-err", scanFlags.showErrors, defaults.ShowErrors),
		Verbose:      getVerboseFlag(cmd) || defaults.Verbose,
	}
	if len(args) == 1 {
		opts.Root = args[0]
	}

	recursive := scanFlags.recursive
	if !flags.Changed("recursive") {
		recursive = defaults.Recursive
	}
	depth, err := parseDepth(recursive)
	if err != nil {
		return fss.ScanOptions{}, err
	}
	opts.Depth = depth

	switch {
	case scanFlags.search != "":
		opts.Match = fss.MatchRule{Mode: fss.MatchExact, Pattern: scanFlags.search}
	case scanFlags.searchNoext != "":
		opts.Match = fss.MatchRule{Mode: fss.MatchNoExt, Pattern: scanFlags.searchNoext}
	case scanFlags.contains != "":
		opts.Match = fss.MatchRule{Mode: fss.MatchContains, Pattern: scanFlags.contains}
	}

	// Search results are printed as absolute paths without indentation,
	// whether or not --abs was given.
	if opts.Match.Active() {
		opts.Absolute = true
	}

	if err := opts.Validate(); err != nil {
		return fss.ScanOptions{}, err
	}
	return opts, nil
}

// parseDepth interprets the recursion setting: empty disables recursion,
// "unlimited" removes the limit, and a non-negative integer bounds it.
func parseDepth(value string) (fss.DepthLimit, error) {
	switch strings.TrimSpace(value) {
	case "":
		return fss.DepthLimit{Mode: fss.DepthNone}, nil
	case "unlimited":
		return fss.DepthLimit{Mode: fss.DepthUnlimited}, nil
	}

	limit, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fss.DepthLimit{}, fmt.Errorf("recursion depth %q is not a number: %w", value, fss.ErrInvalidConfig)
	}
	if limit < 0 {
		return fss.DepthLimit{}, fmt.Errorf("recursion depth cannot be negative: %w", fss.ErrInvalidConfig)
	}
	return fss.DepthLimit{Mode: fss.DepthBounded, Limit: limit}, nil
}
