// Command allman prints a tiny Go function declaration using the doc and
// render packages, choosing between a flat and a broken brace block
// depending on whether the body fits the line budget.
package main

import (
	"fmt"
	"os"

	"github.com/pageforge/docprinter/doc"
	"github.com/pageforge/docprinter/render"
)

func main() {
	d := doc.Cat(
		"package main", doc.Line, doc.Line,
		"func main() ", block(`print("yes")`),
	)

	r := render.NewSmartRenderer()
	r.MaxLineWidth = 40
	out, err := r.ToStr(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// block wraps body in braces, preferring to keep it on one line but
// breaking onto its own indented lines when the budget forces it.
func block(body string) doc.Doc {
	return doc.Alt(
		doc.Nest(2, false, "{", doc.Line, body, doc.Line, "}"),
		doc.Cat("{ ", body, " }"),
	)
}
