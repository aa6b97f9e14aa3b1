package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageforge/docprinter/doc"
	"github.com/pageforge/docprinter/render"
)

func newDemoCmd() *cobra.Command {
	var maxLineWidth int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a gallery of example layouts built with the doc package",
		RunE: func(cmd *cobra.Command, args []string) error {
			width := maxLineWidth
			if width <= 0 {
				width = render.DefaultMaxLineWidth
			}
			r := render.NewSmartRenderer()
			r.MaxLineWidth = width
			for _, ex := range gallery() {
				out, err := r.ToStr(ex.doc)
				if err != nil {
					return reportError(fmt.Errorf("docprint: demo %q: %w", ex.name, err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "-- %s --\n%s\n\n", ex.name, out)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLineWidth, "max-line-width", 0, "smart renderer line budget (default: 80)")
	return cmd
}

type example struct {
	name string
	doc  doc.Doc
}

func gallery() []example {
	funcCall := doc.Nest(2, false,
		"greet(", doc.Alt(doc.Line, doc.Empty),
		doc.Join(doc.SpaceJoin(",", doc.Alt(doc.Line, doc.Space)), `name="ava"`, "loud=true", "times=3"),
		doc.Alt(doc.Cat(doc.Line, ")"), ")"),
	)

	tableParts := doc.CreateTables([]doc.Doc{
		doc.Row(doc.RowOpts{}, "id", "name", "role"),
		doc.Row(doc.RowOpts{}, "1", "ada", "engineer"),
		doc.Row(doc.RowOpts{}, "2", "grace", "admiral"),
	}, doc.Line)
	tableItems := make([]doc.DocLike, len(tableParts))
	for i, p := range tableParts {
		tableItems[i] = p
	}
	table := doc.Cat(tableItems...)

	quoting := doc.Join(", ",
		doc.SingleQuote("it's fine"),
		doc.DoubleQuote(`say "hi"`),
		doc.SmartQuote(`both ' and "`),
	)

	return []example{
		{"function call, wraps when needed", funcCall},
		{"table from adjacent rows", table},
		{"quoting editors", quoting},
	}
}
