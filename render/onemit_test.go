package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/pageforge/docprinter/doc"
)

func TestUseAppliesCallbacksInRegistrationOrder(t *testing.T) {
	upper := func(tok doc.Token) (doc.Token, error) {
		if tok == doc.Space || tok == doc.Line || tok == doc.Empty {
			return tok, nil
		}
		return doc.Text(strings.ToUpper(tok.String())), nil
	}
	bang := func(tok doc.Token) (doc.Token, error) {
		if tok == doc.Space || tok == doc.Line || tok == doc.Empty {
			return tok, nil
		}
		return doc.Text(tok.String() + "!"), nil
	}

	r := NewSimpleRenderer(ShortestLines)
	r.Use(upper)
	r.Use(bang)

	got, err := r.ToStr(doc.SpaceJoin("ok", "go"))
	assert.NoError(t, err)
	assert.Equals(t, got, "OK! GO!")
}

func TestUseCallbackCanVetoRender(t *testing.T) {
	wantErr := errors.New("disallowed token")
	reject := func(tok doc.Token) (doc.Token, error) {
		if tok.String() == "secret" {
			return doc.Token{}, wantErr
		}
		return tok, nil
	}

	r := NewSmartRenderer()
	r.Use(reject)

	_, err := r.ToStr(doc.SpaceJoin("public", "secret"))
	assert.True(t, errors.Is(err, wantErr), "render must surface the callback's error, got %v", err)
}
