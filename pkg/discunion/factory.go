package discunion

import (
	"go.uber.org/zap"

	"github.com/clockworklabs/SpacetimeDB/crates/discunion-go/internal/logging"
)

// DefaultDiscriminant is the field name used when no other is configured.
const DefaultDiscriminant = "type"

// Factory binds a default discriminant key. Every operation on a Factory
// uses that key unless the call site passes an explicit one.
//
// A Factory is immutable after New returns and is safe for concurrent use.
// Independent factories share no state.
type Factory struct {
	discriminant string
	log          *zap.SugaredLogger
}

// New returns a Factory whose default discriminant is discriminant.
// An empty discriminant selects DefaultDiscriminant.
func New(discriminant string) *Factory {
	if discriminant == "" {
		discriminant = DefaultDiscriminant
	}
	return &Factory{
		discriminant: discriminant,
		log:          logging.Named("discunion").With("discriminant", discriminant),
	}
}

// Discriminant returns the default discriminant key of the factory.
func (f *Factory) Discriminant() string {
	return f.discriminant
}

// key resolves an optional per-call override against the factory default.
func (f *Factory) key(override []string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return f.discriminant
}

// CreateType returns a copy of payload with the discriminant field set to tag,
// replacing any payload field of the same name.
func (f *Factory) CreateType(tag Tag, payload map[string]any, key ...string) Value {
	return createType(tag, payload, f.key(key))
}

// Default is the factory bound to DefaultDiscriminant. The package-level
// functions delegate to it.
var Default = New(DefaultDiscriminant)

// DiscUnion registers builders with the default factory.
func DiscUnion(builders Builders, opts ...UnionOptions) *Union {
	return Default.DiscUnion(builders, opts...)
}

// CreateType tags payload using the default factory.
func CreateType(tag Tag, payload map[string]any, key ...string) Value {
	return Default.CreateType(tag, payload, key...)
}

// AttachExtras wraps fn as a Constructor using the default factory.
func AttachExtras(fn func(args ...any) Value, tag Tag, key ...string) *Constructor {
	return Default.AttachExtras(fn, tag, key...)
}

// Is reports whether v carries tag, using the default factory.
func Is(tag Tag, v Value, key ...string) bool {
	return Default.Is(tag, v, key...)
}

// Get returns v if it carries tag, using the default factory.
func Get(tag Tag, v Value, key ...string) (Value, bool) {
	return Default.Get(tag, v, key...)
}

// Validate returns v if it carries tag and a *TagMismatchError otherwise,
// using the default factory.
func Validate(tag Tag, v Value, key ...string) (Value, error) {
	return Default.Validate(tag, v, key...)
}

// Map applies mapper to v if it carries tag, using the default factory.
func Map(tag Tag, v Value, mapper func(Value) any, key ...string) any {
	return Default.Map(tag, v, mapper, key...)
}

// Match dispatches v to its handler, using the default factory.
func Match(v Value, handlers Handlers, key ...string) (any, error) {
	return Default.Match(v, handlers, key...)
}

// MatchOr dispatches v to its handler or to otherwise, using the default factory.
func MatchOr(v Value, handlers Handlers, otherwise Handler, key ...string) any {
	return Default.MatchOr(v, handlers, otherwise, key...)
}
