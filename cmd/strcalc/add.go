package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/strcalc/pkg/logger"
	"github.com/dmitrymomot/strcalc/svc/calc"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// rejectedError marks an input the calculator refused. The result has
// already been written, so main only sets the exit code.
type rejectedError struct {
	err error
}

func (e *rejectedError) Error() string { return e.err.Error() }
func (e *rejectedError) Unwrap() error { return e.err }

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")

func newAddCmd() *cobra.Command {
	var (
		delimiters []string
		output     string
		unescape   bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "add [numbers]",
		Short: "Sum the numbers in a delimited string",
		Long: `Sum the numbers in a delimited string.

The input is taken from the first argument, or from stdin when no argument or
"-" is given. A single trailing newline on stdin is ignored.`,
		Example: `  strcalc add 1,2,3
  strcalc add --escapes '//[;]\n1;2'
  strcalc add -d '|' -d ';' '1|2;3'
  printf '1\n2' | strcalc add -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("invalid output %q: must be %s, %s or %s", output, outputText, outputJSON, outputYAML)
			}

			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if unescape {
				input = escapes.Replace(input)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.Discard()
			if verbose {
				log = logger.New(logger.WithDevelopment(cfg.AppName), logger.WithOutput(cmd.ErrOrStderr()))
			}
			svc, err := calc.New(cfg.Calc, calc.WithLogger(log))
			if err != nil {
				return err
			}

			res, err := svc.Add(cmd.Context(), calc.Request{Numbers: input, Delimiters: delimiters})
			if err != nil {
				return err
			}
			if err := writeResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), output, res); err != nil {
				return err
			}
			if !res.OK() {
				return &rejectedError{err: res.Err()}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&delimiters, "delimiter", "d", nil, "delimiter to split on instead of comma and newline (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&unescape, "escapes", "e", false, `interpret \n, \t and \\ in the input`)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log evaluation details to stderr")
	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func writeResult(stdout, stderr io.Writer, format string, res calc.Result) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputYAML:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		if !res.OK() {
			_, err := fmt.Fprintln(stderr, "error:", res.Failure.Message)
			return err
		}
		_, err := fmt.Fprintln(stdout, res.Sum)
		return err
	}
}
