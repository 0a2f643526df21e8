package discunion

// Constructor builds values of one variant and carries the narrowing
// operations for that variant, already bound to its tag and discriminant.
type Constructor struct {
	factory      *Factory
	tag          Tag
	discriminant string
	fn           func(args ...any) Value
}

// AttachExtras wraps fn, which must produce values tagged with tag under the
// discriminant key, as a Constructor. DiscUnion uses it for every variant;
// it can also wrap a hand-written constructor built on CreateType.
func (f *Factory) AttachExtras(fn func(args ...any) Value, tag Tag, key ...string) *Constructor {
	return &Constructor{
		factory:      f,
		tag:          tag,
		discriminant: f.key(key),
		fn:           fn,
	}
}

// New calls the underlying constructor with args.
func (c *Constructor) New(args ...any) Value {
	return c.fn(args...)
}

// Key returns the variant's tag, including any union prefix.
func (c *Constructor) Key() Tag {
	return c.tag
}

// Discriminant returns the field the constructor stores its tag in.
func (c *Constructor) Discriminant() string {
	return c.discriminant
}

func (c *Constructor) Is(v Value) bool {
	return c.factory.Is(c.tag, v, c.discriminant)
}

func (c *Constructor) Get(v Value) (Value, bool) {
	return c.factory.Get(c.tag, v, c.discriminant)
}

func (c *Constructor) Validate(v Value) (Value, error) {
	return c.factory.Validate(c.tag, v, c.discriminant)
}

func (c *Constructor) Map(v Value, mapper func(Value) any) any {
	return c.factory.Map(c.tag, v, mapper, c.discriminant)
}
