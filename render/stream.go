// Package render walks a doc.Doc tree and produces the token stream that
// is its best rendering: a SimpleRenderer that always commits to one
// layout alternative, and a SmartRenderer that chooses among alternatives
// with bounded lookahead under a line-width budget.
package render

import (
	"iter"
	"strings"

	"github.com/pageforge/docprinter/doc"
)

// TokenStream is a lazy, pull-based, single-pass sequence of rendered
// tokens paired with an error that, if non-nil, is always the stream's
// final value. It is built on Go 1.23 range-over-func iterators rather
// than a hand-rolled continuation.
type TokenStream = iter.Seq2[doc.Token, error]

// newStream builds the TokenStream a renderer's Render method returns: it
// owns a fresh engine, since a renderer holds no state across calls, walks
// d, and forwards tokens to yield until the consumer stops or rendering
// fails.
func newStream(onEmit []OnEmit, d doc.Doc, onAlt altFunc) TokenStream {
	return func(yield func(doc.Token, error) bool) {
		e := &engine{onEmit: append([]OnEmit(nil), onEmit...)}
		out := func(t doc.Token) error {
			if !yield(t, nil) {
				return errStopped
			}
			return nil
		}
		if err := e.walk(d, out, onAlt, doc.Unknown); err != nil && err != errStopped {
			yield(doc.Token{}, err)
		}
	}
}

// ToStr eagerly drains stream and concatenates every token's text. It
// returns the first error encountered, if any, alongside whatever text
// was produced before it.
func ToStr(stream TokenStream) (string, error) {
	var b strings.Builder
	var rerr error
	stream(func(t doc.Token, err error) bool {
		if err != nil {
			rerr = err
			return false
		}
		b.WriteString(t.String())
		return true
	})
	return b.String(), rerr
}
