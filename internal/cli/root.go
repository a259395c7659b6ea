package cli

import (
	"fmt"
	"io"
	"os"
)

// CLI is the root command structure for urlstat.
type CLI struct {
	// Global flags
	Config  string `short:"c" default:"config.yaml" help:"Configuration file in YAML"`
	Quiet   bool   `short:"q" help:"Suppress console preview output"`
	Verbose bool   `short:"v" help:"Show debug output"`

	// Commands
	Report  ReportCmd  `cmd:"" default:"withargs" help:"Generate the HTML report for the latest access log"`
	Inspect InspectCmd `cmd:"" help:"Preview a previously rendered report on the console"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands.
type Globals struct {
	ConfigPath     string
	ConfigExplicit bool
	Quiet          bool
	Verbose        bool
	Stdout         io.Writer
	Stderr         io.Writer
}

// NewGlobals creates a Globals instance from parsed flags. explicit
// reports whether --config was set on the command line rather than
// defaulted, so a missing default file can fall back to built-in settings.
func NewGlobals(c *CLI, explicit bool) *Globals {
	return &Globals{
		ConfigPath:     c.Config,
		ConfigExplicit: explicit,
		Quiet:          c.Quiet,
		Verbose:        c.Verbose,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
}

// Debug prints a debug message if verbose mode is enabled.
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Verbose {
		fmt.Fprintf(g.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	_, err := io.WriteString(globals.Stdout, "urlstat version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
