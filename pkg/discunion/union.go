package discunion

import (
	"fmt"
	"sort"
)

// Builder produces the payload of a variant from constructor arguments.
type Builder func(args ...any) map[string]any

// Builders is the closed set of variants handed to DiscUnion, keyed by
// text or symbol tags.
type Builders map[Tag]Builder

// Named lifts text-keyed builders into Builders.
func Named(named map[string]Builder) Builders {
	out := make(Builders, len(named))
	for name, b := range named {
		out[Text(name)] = b
	}
	return out
}

// UnionOptions configures DiscUnion
type UnionOptions struct {
	// Discriminant overrides the factory default when non-empty.
	Discriminant string

	// Prefix is prepended to every text tag. Symbol tags are never prefixed.
	Prefix string
}

// Union is the result of DiscUnion: one Constructor per registered variant.
// Its set of variants is fixed at construction and never changes.
type Union struct {
	factory      *Factory
	discriminant string
	prefix       string

	// byKey is keyed by the tag the variant was registered under
	byKey map[Tag]*Constructor

	// byTag is keyed by the tag stamped on values, prefix included
	byTag map[Tag]*Constructor

	order []Tag
}

// DiscUnion turns builders into tagged constructors. Text keys and symbol keys
// are registered in two separate passes so that neither kind is skipped.
func (f *Factory) DiscUnion(builders Builders, opts ...UnionOptions) *Union {
	var options UnionOptions
	if len(opts) > 0 {
		options = opts[0]
	}

	u := &Union{
		factory:      f,
		discriminant: f.key([]string{options.Discriminant}),
		prefix:       options.Prefix,
		byKey:        make(map[Tag]*Constructor, len(builders)),
		byTag:        make(map[Tag]*Constructor, len(builders)),
		order:        make([]Tag, 0, len(builders)),
	}

	var texts, syms []Tag
	for key := range builders {
		if key.IsSymbol() {
			syms = append(syms, key)
		} else {
			texts = append(texts, key)
		}
	}
	sort.Slice(texts, func(i, j int) bool { return texts[i].text < texts[j].text })
	sort.SliceStable(syms, func(i, j int) bool { return syms[i].sym.description < syms[j].sym.description })

	for _, key := range texts {
		u.register(key, builders[key])
	}
	for _, key := range syms {
		u.register(key, builders[key])
	}

	f.log.Debugw("registered union",
		"union_discriminant", u.discriminant,
		"prefix", u.prefix,
		"text_variants", len(texts),
		"symbol_variants", len(syms),
	)
	return u
}

func (u *Union) register(key Tag, build Builder) {
	tag := key.withPrefix(u.prefix)
	discriminant := u.discriminant
	ctor := u.factory.AttachExtras(func(args ...any) Value {
		var payload map[string]any
		if build != nil {
			payload = build(args...)
		}
		return createType(tag, payload, discriminant)
	}, tag, discriminant)

	u.byKey[key] = ctor
	u.byTag[tag] = ctor
	u.order = append(u.order, key)
}

// Discriminant returns the field every value of the union carries its tag in.
func (u *Union) Discriminant() string {
	return u.discriminant
}

// Prefix returns the prefix applied to the union's text tags.
func (u *Union) Prefix() string {
	return u.prefix
}

// Len returns the number of variants.
func (u *Union) Len() int {
	return len(u.order)
}

// Keys returns the registration keys: text keys in lexical order, then symbols.
func (u *Union) Keys() []Tag {
	out := make([]Tag, len(u.order))
	copy(out, u.order)
	return out
}

// Tags returns the tags stamped on values, in the same order as Keys.
func (u *Union) Tags() []Tag {
	out := make([]Tag, len(u.order))
	for i, key := range u.order {
		out[i] = u.byKey[key].tag
	}
	return out
}

// Constructor returns the constructor registered under key.
// Text keys are looked up without the prefix.
func (u *Union) Constructor(key Tag) (*Constructor, bool) {
	c, ok := u.byKey[key]
	return c, ok
}

// MustConstructor returns the constructor registered under key or panics.
func (u *Union) MustConstructor(key Tag) *Constructor {
	c, ok := u.byKey[key]
	if !ok {
		panic(fmt.Sprintf("discunion: no variant registered under %q", key.String()))
	}
	return c
}

// Lookup returns the constructor that stamps tag, prefix included.
func (u *Union) Lookup(tag Tag) (*Constructor, bool) {
	c, ok := u.byTag[tag]
	return c, ok
}

// Contains reports whether v carries one of the union's tags under the
// union's discriminant.
func (u *Union) Contains(v Value) bool {
	tag, ok := v.Tag(u.discriminant)
	if !ok {
		return false
	}
	_, ok = u.byTag[tag]
	return ok
}

// CheckHandlers reports the first tag of the union that handlers does not
// cover, as a *MissingHandlerError. It returns nil when every tag is covered.
func (u *Union) CheckHandlers(handlers Handlers) error {
	for _, tag := range u.Tags() {
		if handlers[tag] == nil {
			return &MissingHandlerError{Tag: tag, Found: true, Discriminant: u.discriminant}
		}
	}
	return nil
}

// Match dispatches v on the union's discriminant. See Factory.Match.
func (u *Union) Match(v Value, handlers Handlers) (any, error) {
	return u.factory.Match(v, handlers, u.discriminant)
}

// MatchOr dispatches v on the union's discriminant. See Factory.MatchOr.
func (u *Union) MatchOr(v Value, handlers Handlers, otherwise Handler) any {
	return u.factory.MatchOr(v, handlers, otherwise, u.discriminant)
}
