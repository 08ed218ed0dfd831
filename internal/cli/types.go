package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/sqltype"
)

// typeRow is the JSON shape for one data type table entry.
type typeRow struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Size      int    `json:"size,omitempty"`
	Primitive bool   `json:"primitive"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "types",
		Short:         "Print the data type table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]typeRow, 0, len(sqltype.Types()))
			for _, t := range sqltype.Types() {
				rows = append(rows, typeRow{
					Name:      t.String(),
					Kind:      kindOf(t),
					Size:      t.Size(),
					Primitive: t.IsPrimitive(),
				})
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return f.Success(renderTypeTable(rows), rows)
		},
	}
}

func kindOf(t sqltype.DataType) string {
	switch {
	case t.IsInteger():
		return "integer"
	case t.IsRational():
		return "rational"
	case t.IsString():
		return "string"
	default:
		return "other"
	}
}

func renderTypeTable(rows []typeRow) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tSIZE\tPRIMITIVE")
	for _, r := range rows {
		size := ""
		if r.Size > 0 {
			size = fmt.Sprintf("%d", r.Size)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", r.Name, r.Kind, size, r.Primitive)
	}
	w.Flush()
	return strings.TrimRight(sb.String(), "\n")
}
