package render

import (
	"fmt"

	"github.com/pageforge/docprinter/doc"
)

// sink receives each token a walk produces, in evaluation order. It routes
// the token to its eventual destination: the caller's real output, or a
// buffer used to measure a speculative or to-be-indented/aligned render.
type sink func(doc.Token) error

// altFunc decides how to render an Alt node. The simple renderer always
// commits to a fixed index; the smart renderer runs bounded lookahead.
// suffix is the width-hint-pruning context: what is known to immediately
// follow this Alt within its enclosing Cat, before the next guaranteed line
// break (or before knowledge runs out). It is threaded explicitly through
// recursive walk calls rather than dispatched through an embedded type,
// since Go has no virtual dispatch through struct embedding.
type altFunc func(e *engine, alt *doc.AltDoc, out sink, suffix doc.WidthHint) error

type pos struct{ line, column int }

// engine holds the position and on_emit state shared by every document
// variant's rendering rule. A position_stack of checkpoints implements
// scoped buffering: entering a buffered scope pushes the current position,
// and leaving it restores that position regardless of whether the buffered
// render succeeded — "buffering" is a checkpoint on position bookkeeping,
// not a skip of the emission contract, so on_emit callbacks (strict mode
// included) still observe every token live.
type engine struct {
	line, column int
	onEmit       []OnEmit
	checkpoints  []pos
}

func (e *engine) pushCheckpoint() {
	e.checkpoints = append(e.checkpoints, pos{e.line, e.column})
}

func (e *engine) popCheckpoint() {
	p := e.checkpoints[len(e.checkpoints)-1]
	e.checkpoints = e.checkpoints[:len(e.checkpoints)-1]
	e.line, e.column = p.line, p.column
}

func (e *engine) pushOnEmit(cb OnEmit) { e.onEmit = append(e.onEmit, cb) }

func (e *engine) popOnEmit() { e.onEmit = e.onEmit[:len(e.onEmit)-1] }

// advance updates position bookkeeping for a token that has already been
// through the on_emit chain once. It never re-applies transforms, which is
// what lets a captured, already-emitted token buffer be forwarded to a
// real sink exactly once each, on commit.
func (e *engine) advance(t doc.Token) {
	if t == doc.Line {
		e.line++
		e.column = 0
	} else {
		e.column += t.Width()
	}
}

// emit is the emission contract: every callback in on_emit runs in
// order, then position advances. It runs when a token is produced by a
// walk — buffering only controls whether the resulting position change is
// kept or later discarded via popCheckpoint, not whether the chain runs.
// Replayed tokens (Nest, Row, committed speculation) do not pass through it
// again; an Edit's output stream does, since walkEdit emits each token the
// editor returns.
func (e *engine) emit(t doc.Token) (doc.Token, error) {
	var err error
	for _, cb := range e.onEmit {
		t, err = cb(t)
		if err != nil {
			return t, err
		}
	}
	e.advance(t)
	return t, nil
}

// emitOut runs a freshly produced token through emit and forwards it.
func (e *engine) emitOut(t doc.Token, out sink) error {
	tok, err := e.emit(t)
	if err != nil {
		return err
	}
	return out(tok)
}

// replayOut forwards a token that has already been through emit once
// (captured during an earlier buffered pass), updating position but not
// re-running the on_emit chain.
func (e *engine) replayOut(t doc.Token, out sink) error {
	e.advance(t)
	return out(t)
}

// captureTokens fully buffers d's rendering: position is checkpointed
// before and restored after, regardless of outcome, and every produced
// token (already passed through emit once) is collected. This backs Row
// cell buffering, Table row buffering, Nest's indentation pass and Edit's
// post-processing, all of which need the complete token list before they
// can decide what to emit.
func (e *engine) captureTokens(d doc.Doc, onAlt altFunc) ([]doc.Token, error) {
	e.pushCheckpoint()
	var buf []doc.Token
	capture := func(t doc.Token) error {
		buf = append(buf, t)
		return nil
	}
	err := e.walk(d, capture, onAlt, doc.Unknown)
	e.popCheckpoint()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// suffixHint folds the width hints of docs in order, short-circuiting at
// the first one whose hint reports EndOfLine. It is the "what comes next"
// context passed into an Alt's lookahead: the width known for sure to
// follow before a guaranteed break, or everything foldable before
// knowledge runs out.
func suffixHint(docs []doc.Doc) doc.WidthHint {
	hint := doc.Unknown
	for _, d := range docs {
		hint = hint.Add(d.WidthHint())
		if hint.EndOfLine {
			break
		}
	}
	return hint
}

// walk renders d, calling out for every token in evaluation order. onAlt
// is consulted whenever an Alt node is reached. suffix carries the
// width-hint-pruning context for whichever Alt is reached next; it is
// recomputed at each Cat's children (local to that Cat, since Cat never
// nests a Cat) and reset to doc.Unknown across any buffering boundary
// (Nest, Row/Table cells, Edit), which measure their child independently.
func (e *engine) walk(d doc.Doc, out sink, onAlt altFunc, suffix doc.WidthHint) error {
	switch n := d.(type) {
	case doc.Token:
		return e.emitOut(n, out)
	case *doc.CatDoc:
		for i, c := range n.Docs {
			if err := e.walk(c, out, onAlt, suffixHint(n.Docs[i+1:])); err != nil {
				return err
			}
		}
		return nil
	case *doc.AltDoc:
		return onAlt(e, n, out, suffix)
	case *doc.NestDoc:
		return e.walkNest(n, out, onAlt)
	case *doc.RowDoc:
		return e.walkRow(n, out, onAlt)
	case *doc.TableDoc:
		return e.walkTable(n, out, onAlt)
	case *doc.EditDoc:
		return e.walkEdit(n, out, onAlt)
	default:
		panic(fmt.Sprintf("render: unknown document node %T", d))
	}
}

// walkNest buffers child, then re-emits it with indentation inserted
// before each line's first non-space, non-line token.
func (e *engine) walkNest(n *doc.NestDoc, out sink, onAlt altFunc) error {
	tokens, err := e.captureTokens(n.Doc, onAlt)
	if err != nil {
		return err
	}

	firstLine := true
	hasContent := false
	lineIndent := 0

	for _, t := range tokens {
		switch {
		case t == doc.Line:
			if err := e.replayOut(t, out); err != nil {
				return err
			}
			firstLine = false
			hasContent = false
			lineIndent = 0
			continue
		case t == doc.Space && !hasContent:
			lineIndent++
			continue
		}

		if !hasContent {
			hasContent = true
			indent := 0
			switch {
			case firstLine && n.Overlap && n.Indent > e.column:
				indent = n.Indent - e.column + lineIndent
			case firstLine:
				indent = 0
			default:
				indent = lineIndent + n.Indent
			}
			for i := 0; i < indent; i++ {
				if err := e.emitOut(doc.Space, out); err != nil {
					return err
				}
			}
		}
		if err := e.replayOut(t, out); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) bufferRow(n *doc.RowDoc, onAlt altFunc) (*rowBuffer, error) {
	cells := make([]*cellBuffer, len(n.Cells))
	for i, cell := range n.Cells {
		tokens, err := e.captureTokens(cell, onAlt)
		if err != nil {
			return nil, err
		}
		cells[i] = newCellBuffer(tokens)
	}
	return &rowBuffer{
		cells:        cells,
		hpad:         n.Info.HPad,
		hsep:         n.Info.HSep,
		minColWidths: append([]int(nil), n.Info.MinColWidths...),
	}, nil
}

// emitRow writes a buffered row's cells, padding every cell but the last
// out to its column width and separating cells with hsep.
func (e *engine) emitRow(rb *rowBuffer, out sink) error {
	for i, c := range rb.cells {
		for _, t := range c.tokens {
			if err := e.replayOut(t, out); err != nil {
				return err
			}
		}
		if i == len(rb.cells)-1 {
			continue
		}
		for pad := c.width - c.minWidth; pad > 0; pad-- {
			if err := e.emitOut(rb.hpad, out); err != nil {
				return err
			}
		}
		if err := e.emitOut(rb.hsep, out); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) walkRow(n *doc.RowDoc, out sink, onAlt altFunc) error {
	rb, err := e.bufferRow(n, onAlt)
	if err != nil {
		return err
	}
	rb.setColWidths(rb.colWidths())
	if err := e.emitRow(rb, out); err != nil {
		return err
	}
	return e.emitOut(doc.Line, out)
}

func (e *engine) walkTable(n *doc.TableDoc, out sink, onAlt altFunc) error {
	tb := &tableBuffer{}
	for _, row := range n.Rows {
		rb, err := e.bufferRow(row, onAlt)
		if err != nil {
			return err
		}
		tb.addRow(rb)
	}
	tb.update()
	for _, rb := range tb.rows {
		if err := e.emitRow(rb, out); err != nil {
			return err
		}
		if err := e.emitOut(doc.Line, out); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) walkEdit(n *doc.EditDoc, out sink, onAlt altFunc) error {
	tokens, err := e.captureTokens(n.Doc, onAlt)
	if err != nil {
		return err
	}
	fn, ok := doc.Editors[n.Function]
	if !ok {
		return fmt.Errorf("render: unknown token-stream editor %q", n.Function)
	}
	for _, t := range fn(tokens) {
		if err := e.emitOut(t, out); err != nil {
			return err
		}
	}
	return nil
}
