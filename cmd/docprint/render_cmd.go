package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pageforge/docprinter/doc"
	layoutpkg "github.com/pageforge/docprinter/internal/layout"
	"github.com/pageforge/docprinter/render"
)

func newRenderCmd() *cobra.Command {
	var (
		file         string
		layout       string
		maxLineWidth int
	)
	cmd := &cobra.Command{
		Use:   "render [--file doc.json]",
		Short: "Render a document described in dictionary (JSON) form",
		Long: `render reads a document in the {type: ..., ...} dictionary form
documented in doc.ToDict/doc.FromDict from --file (or stdin) and prints
the rendered text to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return reportError(err)
				}
				defer f.Close()
				in = f
			}

			var m map[string]any
			if err := json.NewDecoder(in).Decode(&m); err != nil {
				return reportError(fmt.Errorf("docprint: decoding document: %w", err))
			}
			d := doc.FromDict(m)

			strategy, err := layoutpkg.NewStrategy(layout)
			if err != nil {
				return reportError(fmt.Errorf("docprint: %w", err))
			}

			out, err := renderDoc(d, strategy, maxLineWidth)
			if err != nil {
				return reportError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON document (default: stdin)")
	cmd.Flags().StringVar(&layout, "layout", "smart", `renderer: "smart", "shortest", or "longest"`)
	cmd.Flags().IntVar(&maxLineWidth, "max-line-width", 0, "smart renderer line budget (default: detected terminal width, or 80)")
	return cmd
}

// renderDoc picks and runs a renderer per the --layout flag. The smart
// renderer's default width defers to the terminal when one is attached,
// falling back to render.DefaultMaxLineWidth otherwise.
func renderDoc(d doc.Doc, strategy layoutpkg.Strategy, maxLineWidth int) (string, error) {
	switch strategy {
	case layoutpkg.Shortest:
		return render.NewSimpleRenderer(render.ShortestLines).ToStr(d)
	case layoutpkg.Longest:
		return render.NewSimpleRenderer(render.LongestLines).ToStr(d)
	default:
		width := maxLineWidth
		if width <= 0 {
			width = detectWidth()
		}
		r := render.NewSmartRenderer()
		r.MaxLineWidth = width
		return r.ToStr(d)
	}
}

func detectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return render.DefaultMaxLineWidth
}
