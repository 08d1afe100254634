// Package cli implements the passgen command line front end.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

const maxCount = 100

var ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", maxCount)

// Deps are the collaborators the commands use. Zero values get defaults.
type Deps struct {
	DefaultLength int
	// Copy writes text to the system clipboard.
	Copy func(text string) error
}

type options struct {
	length  int
	upper   bool
	lower   bool
	numbers bool
	symbols bool
	count   int
	copy    bool
	quiet   bool
	verbose bool
	seed    uint64
}

var classFlags = []string{"upper", "lower", "numbers", "symbols"}

// NewRootCmd builds the passgen command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.DefaultLength == 0 {
		deps.DefaultLength = 10
	}
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}

	opts := &options{}

	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and rate their configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			slog.SetDefault(config.NewLogger(config.Config{Env: "cli", LogLevel: level}, cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, deps)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&opts.length, "length", "l", deps.DefaultLength, "password length (1-20)")
	pf.BoolVarP(&opts.upper, "upper", "u", false, "include uppercase letters")
	pf.BoolVarP(&opts.lower, "lower", "w", false, "include lowercase letters")
	pf.BoolVarP(&opts.numbers, "numbers", "n", false, "include digits")
	pf.BoolVarP(&opts.symbols, "symbols", "s", false, "include symbols")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	f := root.Flags()
	f.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	f.BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print passwords only")
	f.Uint64Var(&opts.seed, "seed", 0, "use a deterministic source with this seed")

	root.AddCommand(newStrengthCmd(opts))

	return root
}

func newStrengthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "strength",
		Short: "Rate a configuration without generating a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.length < crypto.MinLength || opts.length > crypto.MaxLength {
				return crypto.ErrInvalidLength
			}
			classes := selectedClasses(cmd, opts)
			strength := crypto.EvaluateClasses(opts.length, classes)

			fmt.Fprintf(cmd.OutOrStdout(), "%s (length %d, classes %s)\n",
				badge(strength), opts.length, describe(classes))
			return nil
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *options, deps Deps) error {
	if opts.count < 1 || opts.count > maxCount {
		return ErrInvalidCount
	}

	var src crypto.RandSource = crypto.NewCryptoSource()
	if cmd.Flags().Changed("seed") {
		slog.Debug("using seeded source", "seed", opts.seed)
		src = crypto.NewSeededSource(opts.seed)
	}
	gen := crypto.NewGenerator(src)

	classes := selectedClasses(cmd, opts)
	out := cmd.OutOrStdout()

	var last string
	for i := 0; i < opts.count; i++ {
		password, err := gen.Generate(opts.length, classes)
		if err != nil {
			return err
		}
		if password == "" {
			return crypto.ErrNoCharacterTypes
		}
		fmt.Fprintln(out, password)
		last = password
	}

	if !opts.quiet {
		strength := crypto.EvaluateClasses(opts.length, classes)
		fmt.Fprintf(cmd.ErrOrStderr(), "strength: %s  score: %d/4\n", badge(strength), crypto.Score(last))
	}

	if opts.copy {
		if err := deps.Copy(last); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		if !opts.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
		}
	}

	return nil
}

// selectedClasses enables every class when no class flag was given.
func selectedClasses(cmd *cobra.Command, opts *options) crypto.ClassSet {
	for _, name := range classFlags {
		if cmd.Flags().Changed(name) {
			return crypto.ClassSetFromFlags(opts.upper, opts.lower, opts.numbers, opts.symbols)
		}
	}
	return crypto.ClassSetFromFlags(true, true, true, true)
}

func describe(classes crypto.ClassSet) string {
	if classes.IsEmpty() {
		return "none"
	}
	return classes.String()
}

func badge(s crypto.Strength) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.Color())).
		Render(s.String())
}

// Execute runs the command tree and reports errors on stderr.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, crypto.ErrInvalidLength) || errors.Is(err, crypto.ErrNoCharacterTypes) || errors.Is(err, ErrInvalidCount) {
			return 2
		}
		return 1
	}
	return 0
}
