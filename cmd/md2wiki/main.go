package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// A missing .env file is not an error
	_ = godotenv.Load()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		flags, positional, err := parseConvertFlags(rest, env.Stderr)
		if err != nil {
			return flagErrorCode(err, env)
		}
		return runCommand(env, func(ctx context.Context) error {
			return runConvert(ctx, positional, flags, env)
		})
	case "check":
		flags, positional, err := parseCheckFlags(rest, env.Stderr)
		if err != nil {
			return flagErrorCode(err, env)
		}
		return runCommand(env, func(ctx context.Context) error {
			return runCheck(ctx, positional, flags, env)
		})
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2wiki %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runCommand runs fn under a signal-aware context and maps its error to an
// exit code.
func runCommand(env *Environment, fn func(ctx context.Context) error) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := fn(ctx); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// flagErrorCode reports a flag parsing error. -h/--help is a success.
func flagErrorCode(err error, env *Environment) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, err)
	return ExitUsage
}

// hasVerboseFlag reports whether -v or --verbose appears before any "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
