// Package cmd implements the neumorph CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, inspect, states, version).
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/neumorphic/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "neumorph",
	Short: "neumorph - soft-UI panel renderer",
	Long: `neumorph renders neumorphic (soft-UI) panel scenes described in YAML
to PNG images, and reports the geometry and paint each panel derives.

Use "neumorph <command> --help" for more information about a command.`,
	Usage: "neumorph <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return runCommand(cmd, cmdArgs)
}

// runCommand runs cmd. A panic inside it is reported and returned as an
// error instead of crashing the process.
func runCommand(cmd *Command, args []string) (err error) {
	defer errors.Recover("cmd."+cmd.Name, &err)
	return cmd.Run(args)
}

func printVersion() {
	fmt.Fprintf(stdout, "neumorph version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Report problems with stack traces")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  neumorph render card.yaml             Render card.yaml to card.png")
	fmt.Fprintln(stdout, "  neumorph inspect card.yaml --ops      Print panel geometry and draw calls")
	fmt.Fprintln(stdout, "  neumorph states --shape 1             Render every state of a circle")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
