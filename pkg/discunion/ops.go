package discunion

// Handler receives a value whose tag selected it.
type Handler func(Value) any

// Handlers maps tags to handlers. Tags are mutually exclusive, so at most
// one handler applies to any value.
type Handlers map[Tag]Handler

// Is reports whether v[key] holds tag. Values from other unions, values
// without the discriminant and nil values all report false.
func (f *Factory) Is(tag Tag, v Value, key ...string) bool {
	actual, ok := v.Tag(f.key(key))
	return ok && actual == tag
}

// Get returns v and true if v carries tag, and nil and false otherwise.
func (f *Factory) Get(tag Tag, v Value, key ...string) (Value, bool) {
	if f.Is(tag, v, key...) {
		return v, true
	}
	return nil, false
}

// Validate returns v if it carries tag. Otherwise it returns a
// *TagMismatchError holding the expected and the actual tag.
func (f *Factory) Validate(tag Tag, v Value, key ...string) (Value, error) {
	k := f.key(key)
	actual, ok := v.Tag(k)
	if ok && actual == tag {
		return v, nil
	}
	return nil, &TagMismatchError{Expected: tag, Actual: actual, Found: ok}
}

// Map returns mapper(v) if v carries tag and v itself otherwise.
// mapper is never called for a value that does not match.
func (f *Factory) Map(tag Tag, v Value, mapper func(Value) any, key ...string) any {
	if f.Is(tag, v, key...) {
		return mapper(v)
	}
	return v
}

// Match calls the handler registered for v's tag and returns its result.
// handlers is expected to cover every tag v can carry; when it does not,
// Match returns a *MissingHandlerError and calls nothing.
func (f *Factory) Match(v Value, handlers Handlers, key ...string) (any, error) {
	k := f.key(key)
	tag, ok := v.Tag(k)
	if ok {
		if h := handlers[tag]; h != nil {
			return h(v), nil
		}
	}
	f.log.Debugw("no handler for value", "tag", tag.String(), "found", ok, "handlers", len(handlers))
	return nil, &MissingHandlerError{Tag: tag, Found: ok, Discriminant: k}
}

// MatchOr calls the handler registered for v's tag, or otherwise when there
// is none. A nil otherwise makes an unmatched value yield nil.
func (f *Factory) MatchOr(v Value, handlers Handlers, otherwise Handler, key ...string) any {
	if tag, ok := v.Tag(f.key(key)); ok {
		if h := handlers[tag]; h != nil {
			return h(v)
		}
	}
	if otherwise == nil {
		return nil
	}
	return otherwise(v)
}
