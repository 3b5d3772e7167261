// Command pncompile compiles an infix arithmetic expression into a
// prefix token stream, and optionally evaluates it against variable
// bindings.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/pncompile/catalogue"
	"github.com/aledsdavies/pncompile/eval"
	"github.com/aledsdavies/pncompile/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug            bool
		decimalSeparator string
	)

	root := &cobra.Command{
		Use:   "pncompile",
		Short: "Compile infix arithmetic expressions into prefix token streams",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", os.Getenv("PNC_DEBUG") != "", "enable debug logging")
	root.PersistentFlags().StringVar(&decimalSeparator, "decimal-separator", ".", "decimal separator rune")

	configFor := func() (parser.Config, error) {
		seps := []rune(decimalSeparator)
		if len(seps) != 1 {
			return parser.Config{}, fmt.Errorf("--decimal-separator must be exactly one character, got %q", decimalSeparator)
		}
		return parser.Config{Catalogue: catalogue.Default(), DecimalSeparator: seps[0]}, nil
	}

	logger := func() *slog.Logger {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	root.AddCommand(newParseCmd(configFor, logger))
	root.AddCommand(newEvalCmd(configFor, logger))
	root.AddCommand(newCheckCmd(configFor, logger))
	return root
}

func newParseCmd(configFor func() (parser.Config, error), logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse an expression and print its canonical prefix form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			cfg, err := configFor()
			if err != nil {
				return err
			}
			log.Debug("parsing", "input", args[0])
			out, err := parser.ParseWithConfig(args[0], cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Canonical())
			return nil
		},
	}
}

func newEvalCmd(configFor func() (parser.Config, error), logger func() *slog.Logger) *cobra.Command {
	var varFlags []string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Parse and evaluate an expression against variable bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			cfg, err := configFor()
			if err != nil {
				return err
			}
			vars, err := parseVarFlags(varFlags)
			if err != nil {
				return err
			}
			log.Debug("parsing", "input", args[0], "vars", vars)
			stream, err := parser.ParseWithConfig(args[0], cfg)
			if err != nil {
				return err
			}
			result, err := eval.Eval(stream, vars, eval.DefaultHandlers())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "variable binding name=value (repeatable)")
	return cmd
}

func newCheckCmd(configFor func() (parser.Config, error), logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression>",
		Short:         "Parse-only; exits non-zero on a syntax error without printing anything",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			cfg, err := configFor()
			if err != nil {
				return err
			}
			log.Debug("checking", "input", args[0])
			_, err = parser.ParseWithConfig(args[0], cfg)
			return err
		},
	}
}

func parseVarFlags(flags []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("--var must be name=value, got %q", f)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("--var %s: %w", name, err)
		}
		vars[name] = v
	}
	return vars, nil
}
