package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// commonResult is the JSON shape for a common-type query.
type commonResult struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Common string `json:"common"`
}

// NewCommonCommand creates the common command.
func NewCommonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "common <left-type> <right-type>",
		Short:         "Find the common type two operands coerce to",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseType(args[0])
			if err != nil {
				return err
			}
			right, err := parseType(args[1])
			if err != nil {
				return err
			}

			common, ok := sqltype.CommonType(left, right)
			if !ok {
				return fmt.Errorf("no common type between [%s] and [%s]", left, right)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return f.Success(common.String(), commonResult{
				Left:   left.String(),
				Right:  right.String(),
				Common: common.String(),
			})
		},
	}
}

func parseType(name string) (sqltype.DataType, error) {
	t, ok := sqltype.Parse(name)
	if !ok {
		return sqltype.Unsupported, fmt.Errorf("unknown data type [%s]", name)
	}
	return t, nil
}
