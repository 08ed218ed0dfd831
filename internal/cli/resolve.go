package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/schema"
	"github.com/quarrydb/quarry/internal/sqlexpr"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	DB string // when set, the first argument is a table in this SQLite database
}

// resolvedRow is the JSON shape for one resolved reference.
type resolvedRow struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
	Type string `json:"type"`
	ID   string `json:"id"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <schema.yaml|table> <column>...",
		Short: "Bind column references against a schema",
		Long: `Bind column references against a field catalog.

By default the first argument is a YAML schema file. With --db it names a
table whose columns are read from the given SQLite database.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite database to read the table schema from")
	return cmd
}

func runResolve(opts *ResolveOptions, args []string, cmd *cobra.Command) error {
	var (
		cat      *schema.Schema
		relation string
		err      error
	)
	if opts.DB != "" {
		relation = args[0]
		cat, err = schema.LoadSQLite(opts.DB, relation)
	} else {
		cat, err = schema.LoadYAML(args[0])
	}
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	// counter ids keep the output reproducible run to run
	ids := sqlexpr.NewCounterAllocator()
	resolver := schema.NewResolver(relation, cat, ids)

	rows := make([]resolvedRow, 0, len(args)-1)
	for _, ref := range args[1:] {
		u := sqlexpr.NewUnresolvedAttribute(ids, sqlexpr.Location{}, ref)
		attr, err := resolver.Resolve(u)
		if err != nil {
			return err
		}

		typ, _ := attr.DataType()
		id, _ := attr.ID()
		rows = append(rows, resolvedRow{
			Ref:  ref,
			Name: attr.QualifiedName(),
			Type: typ.String(),
			ID:   string(id),
		})
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return f.Success(renderResolved(rows), rows)
}

func renderResolved(rows []resolvedRow) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%s: %s (#%s)", r.Name, r.Type, r.ID)
	}
	return strings.Join(lines, "\n")
}
