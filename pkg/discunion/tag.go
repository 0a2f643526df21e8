package discunion

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Tag names exactly one variant. A tag is either text or a symbol.
// Symbols compare by identity, so a symbol never equals a text tag and two
// symbols created with the same description are still different tags.
//
// Tag is comparable and can be used as a map key.
type Tag struct {
	text string
	sym  *symbol
}

type symbol struct {
	description string
	// interned is set for symbols handed out by SymbolFor
	interned bool
}

// symbols holds the interned symbols returned by SymbolFor.
var symbols = xsync.NewMapOf[string, *symbol]()

// Text returns the text tag s.
func Text(s string) Tag {
	return Tag{text: s}
}

// NewSymbol returns a new symbol tag. Every call returns a distinct tag.
func NewSymbol(description string) Tag {
	return Tag{sym: &symbol{description: description}}
}

// SymbolFor returns the interned symbol for key, creating it on first use.
// Repeated calls with the same key return the same tag from any goroutine.
func SymbolFor(key string) Tag {
	s, _ := symbols.LoadOrCompute(key, func() *symbol {
		return &symbol{description: key, interned: true}
	})
	return Tag{sym: s}
}

// KeyFor returns the key a symbol was interned under by SymbolFor.
// It reports false for text tags and for symbols made by NewSymbol.
func KeyFor(t Tag) (string, bool) {
	if t.sym == nil || !t.sym.interned {
		return "", false
	}
	return t.sym.description, true
}

// IsSymbol reports whether t is a symbol tag.
func (t Tag) IsSymbol() bool {
	return t.sym != nil
}

// Description returns the text of a text tag or the description of a symbol.
func (t Tag) Description() string {
	if t.sym != nil {
		return t.sym.description
	}
	return t.text
}

// String returns the text of a text tag, or Symbol(<description>) for a symbol.
func (t Tag) String() string {
	if t.sym != nil {
		return "Symbol(" + t.sym.description + ")"
	}
	return t.text
}

// withPrefix prepends prefix to a text tag. Symbols keep their identity.
func (t Tag) withPrefix(prefix string) Tag {
	if t.sym != nil || prefix == "" {
		return t
	}
	return Text(prefix + t.text)
}

// tagOf reads a discriminant field. A plain string is read as a text tag.
func tagOf(field any) (Tag, bool) {
	switch t := field.(type) {
	case Tag:
		return t, true
	case string:
		return Text(t), true
	default:
		return Tag{}, false
	}
}
