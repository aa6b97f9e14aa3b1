package render

import "github.com/pageforge/docprinter/doc"

// DefaultMaxLineWidth is the smart renderer's default line budget when
// none is configured.
const DefaultMaxLineWidth = 80

// SmartRenderer extends the simple rendering rules with bounded-lookahead
// selection among an Alt's alternatives: it speculatively tries the
// widest/most single-line forms first and falls back to narrower ones
// whenever a token would push the current line past MaxLineWidth.
type SmartRenderer struct {
	MaxLineWidth int
	OnEmit       []OnEmit
}

// NewSmartRenderer builds a SmartRenderer with the default line width.
func NewSmartRenderer() *SmartRenderer {
	return &SmartRenderer{MaxLineWidth: DefaultMaxLineWidth}
}

// Use registers an additional on_emit callback, applied in registration
// order, ahead of the renderer's own internal strict-mode callback during
// speculative lookahead.
func (r *SmartRenderer) Use(cb OnEmit) { r.OnEmit = append(r.OnEmit, cb) }

// Render lazily renders d into a token stream.
func (r *SmartRenderer) Render(d doc.Doc) TokenStream {
	width := r.MaxLineWidth
	if width <= 0 {
		width = DefaultMaxLineWidth
	}
	return newStream(r.OnEmit, d, smartAltFunc(width))
}

// ToStr eagerly renders d and concatenates every token's text.
func (r *SmartRenderer) ToStr(d doc.Doc) (string, error) {
	return ToStr(r.Render(d))
}

// smartAltFunc implements the bounded-lookahead algorithm. For
// Alt(a1, a2, ..., ak), a1 is the always-fits fallback; a2..ak are tried in
// reverse (widest first). The first candidate that renders without
// exceeding maxWidth anywhere is committed; if none do, the fallback is
// rendered directly, without strict mode.
func smartAltFunc(maxWidth int) altFunc {
	var onAlt altFunc
	onAlt = func(e *engine, n *doc.AltDoc, out sink, suffix doc.WidthHint) error {
		if len(n.Alts) == 0 {
			return &RenderError{Doc: n}
		}
		fallback := n.Alts[0]
		for i := len(n.Alts) - 1; i >= 1; i-- {
			committed, err := e.trySpeculative(n.Alts[i], out, maxWidth, onAlt, suffix)
			if err != nil {
				return err
			}
			if committed {
				return nil
			}
		}
		return e.walk(fallback, out, onAlt, doc.Unknown)
	}
	return onAlt
}

// trySpeculative renders cand under strict mode into a buffer. A strict
// abort (the candidate would overflow maxWidth) or any other rendering
// error reports "not committed" so the caller tries the next candidate;
// only errStopped, meaning the consumer stopped iterating, propagates
// immediately. On success the buffered tokens are forwarded to out and
// position is advanced to account for them — replayed, not re-emitted,
// since the on_emit chain (including the strict callback being popped
// here) already ran once during the speculative pass.
//
// suffix is folded into the commit decision on top of cand's own strict
// check: a candidate that stays within maxWidth by itself but ends
// mid-line still loses to the fallback if what's known to follow it
// would overflow before the next guaranteed break. Without this, greedy
// per-Alt selection picks a layout that looks locally fine but strands a
// later fixed-width token past the line budget, since each Alt only ever
// speculatively renders its own candidate, never its siblings.
func (e *engine) trySpeculative(cand doc.Doc, out sink, maxWidth int, onAlt altFunc, suffix doc.WidthHint) (bool, error) {
	if hint := cand.WidthHint(); hint.EndOfLine && e.column+hint.Width > maxWidth {
		return false, nil
	}

	e.pushCheckpoint()
	e.pushOnEmit(strictCallback(e, maxWidth))
	var buf []doc.Token
	capture := func(t doc.Token) error {
		buf = append(buf, t)
		return nil
	}
	err := e.walk(cand, capture, onAlt, doc.Unknown)
	overflow := false
	if err == nil {
		endedOnLine := len(buf) > 0 && buf[len(buf)-1] == doc.Line
		if !endedOnLine && e.column+suffix.Width > maxWidth {
			overflow = true
		}
	}
	e.popOnEmit()
	e.popCheckpoint()

	if err != nil {
		if err == errStopped {
			return false, err
		}
		return false, nil
	}
	if overflow {
		return false, nil
	}

	for _, t := range buf {
		if err := e.replayOut(t, out); err != nil {
			return true, err
		}
	}
	return true, nil
}

// strictCallback aborts with errLineWidthExceeded the moment a token about
// to be emitted would push the column past maxWidth. Line tokens never
// overflow: they reset the column instead of extending it.
func strictCallback(e *engine, maxWidth int) OnEmit {
	return func(t doc.Token) (doc.Token, error) {
		if t == doc.Line {
			return t, nil
		}
		if e.column+t.Width() > maxWidth {
			return t, errLineWidthExceeded
		}
		return t, nil
	}
}
