// Package layout holds the small string-to-enum vocabulary docprint's
// commands use to name a rendering strategy on the command line. It is what
// remains, repurposed, of a fuller measure-and-layout pretty-printing
// package once carried here; that algebra is superseded by doc and render.
package layout

import "fmt"

// Strategy selects which render package renderer a command uses.
type Strategy int

const (
	// Smart selects render.NewSmartRenderer, the bounded-lookahead renderer.
	Smart Strategy = iota
	// Shortest selects render.NewSimpleRenderer(render.ShortestLines).
	Shortest
	// Longest selects render.NewSimpleRenderer(render.LongestLines).
	Longest
)

var strategies = map[string]Strategy{
	"smart":    Smart,
	"shortest": Shortest,
	"longest":  Longest,
}

var validStrategies = [3]string{"smart", "shortest", "longest"}

// NewStrategy converts a string to a [Strategy]. Valid values are "smart",
// "shortest", and "longest". Returns an error if the string is invalid.
func NewStrategy(s string) (Strategy, error) {
	if v, ok := strategies[s]; ok {
		return v, nil
	}
	return Smart, fmt.Errorf("invalid strategy string: %q, valid ones are: %q", s, validStrategies)
}

func (s Strategy) String() string {
	for name, v := range strategies {
		if v == s {
			return name
		}
	}
	return "unknown"
}
