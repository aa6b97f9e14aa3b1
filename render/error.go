package render

import (
	"errors"
	"fmt"

	"github.com/pageforge/docprinter/doc"
)

// OnEmit transforms or vetoes a token on its way out of a renderer. It may
// return a replacement token, or a non-nil error to abort the render that
// is driving it. Registering on_emit callbacks on a renderer lets a caller
// observe or rewrite every token without reaching into the document tree.
type OnEmit func(doc.Token) (doc.Token, error)

// RenderError reports that Doc could not be rendered because a Fail
// alternative (an Alt with no alternatives) was selected and no fallback
// was available to avoid it.
type RenderError struct {
	Doc doc.Doc
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %T has no viable layout", e.Doc)
}

// errLineWidthExceeded is the strict-mode speculative-render abort signal.
// It is internal: caught at the Alt that started the speculation and never
// reaches a caller. A sentinel error plays the role an exception would in
// a language that has them.
var errLineWidthExceeded = errors.New("render: line width exceeded")

// errStopped unwinds a render when the consumer of its token stream stops
// iterating early (e.g. a "for range" break). It is not a rendering
// failure and is never surfaced through the public TokenStream.
var errStopped = errors.New("render: stopped")
