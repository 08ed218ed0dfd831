package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// castResult is the JSON shape for a cast evaluation.
type castResult struct {
	Value      any    `json:"value"`
	From       string `json:"from"`
	To         string `json:"to"`
	Conversion string `json:"conversion"`
	Ordinal    int    `json:"ordinal"`
}

// NewCastCommand creates the cast command.
func NewCastCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "cast <literal> <type>",
		Short:         "Convert a literal value to a data type",
		Long: `Convert a literal value to a data type through the conversion catalog.

The literal's type is detected the way a parser would: boolean and numeric
literals first, anything else as a string.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseType(args[1])
			if err != nil {
				return err
			}

			value := parseLiteral(args[0])
			from := sqltype.TypeOf(value)

			conv, err := sqltype.ConversionFor(from, target)
			if err != nil {
				return err
			}
			out, err := conv.Apply(value)
			if err != nil {
				return err
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			text := fmt.Sprintf("%v", out)
			if rootOpts.Verbose {
				text = fmt.Sprintf("%v (%s -> %s via %s/%d)", out, from, target, conv.Name(), conv.Ordinal())
			}
			return f.Success(text, castResult{
				Value:      out,
				From:       from.String(),
				To:         target.String(),
				Conversion: conv.Name(),
				Ordinal:    conv.Ordinal(),
			})
		},
	}
}

// parseLiteral detects a command-line literal's value the way the query
// parser classifies literals: boolean, then integer, then rational, then
// string.
func parseLiteral(s string) any {
	if s == "true" || s == "false" {
		return s == "true"
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
