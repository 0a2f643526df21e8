package discunion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscUnion(t *testing.T) {
	t.Run("CreatesConstructors", func(t *testing.T) {
		fbb := DiscUnion(fooBarBazBuilders())

		assert.Equal(t, Value{"type": tagFoo, "msg": "hello"}, fbb.MustConstructor(tagFoo).New("hello"))
		assert.Equal(t, Value{"type": tagBar, "count": 4}, fbb.MustConstructor(tagBar).New(4))
		assert.Equal(t, Value{"type": tagBaz}, fbb.MustConstructor(tagBaz).New())
		assert.Equal(t, 3, fbb.Len())
		assert.Equal(t, "type", fbb.Discriminant())
		assert.Equal(t, "", fbb.Prefix())
	})

	t.Run("EveryTagMatchesOnlyItself", func(t *testing.T) {
		fbb := DiscUnion(fooBarBazBuilders())
		args := map[Tag][]any{tagFoo: {"hello"}, tagBar: {4}, tagBaz: nil}

		for _, key := range fbb.Keys() {
			v := fbb.MustConstructor(key).New(args[key]...)
			for _, other := range fbb.Tags() {
				assert.Equal(t, key == other, Is(other, v), "Is(%s, %s)", other, v)
			}
		}
	})

	t.Run("KeyAndPrefix", func(t *testing.T) {
		dinos := DiscUnion(Named(map[string]Builder{
			"tRex":        func(args ...any) map[string]any { return map[string]any{"name": args[0]} },
			"stegosaurus": func(args ...any) map[string]any { return map[string]any{"plates": args[0]} },
		}), UnionOptions{Discriminant: "kind", Prefix: "dino/"})

		tRex := dinos.MustConstructor(Text("tRex"))
		bill := tRex.New("Bill")
		assert.Equal(t, Value{"kind": Text("dino/tRex"), "name": "Bill"}, bill)
		assert.True(t, Is(Text("dino/tRex"), bill, "kind"))
		assert.False(t, Is(Text("tRex"), bill, "kind"))
		assert.True(t, tRex.Key() == Text("dino/tRex"))

		assert.Equal(t, []Tag{Text("stegosaurus"), Text("tRex")}, dinos.Keys())
		assert.Equal(t, []Tag{Text("dino/stegosaurus"), Text("dino/tRex")}, dinos.Tags())
		assert.Equal(t, "dino/", dinos.Prefix())
		assert.Equal(t, "kind", dinos.Discriminant())
	})

	t.Run("Symbols", func(t *testing.T) {
		qux := NewSymbol("qux")
		builders := fooBarBazBuilders()
		builders[qux] = func(args ...any) map[string]any { return map[string]any{"payload": args[0]} }

		u := DiscUnion(builders, UnionOptions{Prefix: "ns/"})
		require.Equal(t, 4, u.Len())

		ctor, ok := u.Constructor(qux)
		require.True(t, ok)
		assert.True(t, ctor.Key() == qux, "symbols are never prefixed")

		v := ctor.New(42)
		tag, ok := v.Tag("type")
		require.True(t, ok)
		assert.True(t, tag == qux)
		assert.Equal(t, 42, v["payload"])

		keys := u.Keys()
		assert.True(t, keys[len(keys)-1] == qux, "symbols are registered after text keys")
		for _, key := range keys[:3] {
			assert.False(t, key.IsSymbol())
		}
		for _, tag := range u.Tags()[:3] {
			assert.Contains(t, tag.String(), "ns/")
		}
	})

	t.Run("SymbolsWithSameDescriptionStayDistinct", func(t *testing.T) {
		a := NewSymbol("dup")
		b := NewSymbol("dup")
		u := DiscUnion(Builders{a: nil, b: nil})
		require.Equal(t, 2, u.Len())

		va := u.MustConstructor(a).New()
		vb := u.MustConstructor(b).New()
		assert.True(t, Is(a, va))
		assert.False(t, Is(a, vb))
		assert.True(t, Is(b, vb))
		assert.False(t, Is(b, va))
	})

	t.Run("SymbolAndTextWithSamePrintedForm", func(t *testing.T) {
		sym := NewSymbol("foo")
		u := DiscUnion(Builders{sym: nil, Text("Symbol(foo)"): nil})
		require.Equal(t, 2, u.Len())

		v := u.MustConstructor(sym).New()
		assert.True(t, Is(sym, v))
		assert.False(t, Is(Text("Symbol(foo)"), v))
	})

	t.Run("UsesFactoryDiscriminant", func(t *testing.T) {
		u := New("noice").DiscUnion(fooBarBazBuilders())
		assert.Equal(t, "noice", u.Discriminant())
		assert.Equal(t, Value{"noice": tagFoo, "msg": "hello"}, u.MustConstructor(tagFoo).New("hello"))
	})

	t.Run("Empty", func(t *testing.T) {
		u := DiscUnion(nil)
		assert.Equal(t, 0, u.Len())
		assert.Empty(t, u.Keys())
		assert.NoError(t, u.CheckHandlers(nil))
	})
}

func TestUnionLookup(t *testing.T) {
	u := DiscUnion(fooBarBazBuilders(), UnionOptions{Prefix: "ns/"})

	_, ok := u.Constructor(Text("ns/foo"))
	assert.False(t, ok, "Constructor takes the registration key")

	c, ok := u.Lookup(Text("ns/foo"))
	require.True(t, ok)
	assert.True(t, c == u.MustConstructor(tagFoo))

	_, ok = u.Lookup(tagFoo)
	assert.False(t, ok, "Lookup takes the stamped tag")

	assert.PanicsWithValue(t, `discunion: no variant registered under "qux"`, func() {
		u.MustConstructor(Text("qux"))
	})
}

func TestUnionContains(t *testing.T) {
	fbb := DiscUnion(fooBarBazBuilders())
	other := DiscUnion(Named(map[string]Builder{"foo": nil}), UnionOptions{Prefix: "other/"})
	fbbK := DiscUnion(fooBarBazBuilders(), UnionOptions{Discriminant: "kind"})

	assert.True(t, fbb.Contains(fbb.MustConstructor(tagFoo).New("hello")))
	assert.True(t, fbb.Contains(Value{"type": "bar"}))
	assert.False(t, fbb.Contains(other.MustConstructor(tagFoo).New()))
	assert.False(t, fbb.Contains(fbbK.MustConstructor(tagFoo).New("hello")))
	assert.False(t, fbb.Contains(nil))
}

func TestUnionCheckHandlers(t *testing.T) {
	fbb := DiscUnion(fooBarBazBuilders())
	noop := func(Value) any { return nil }

	assert.NoError(t, fbb.CheckHandlers(Handlers{tagFoo: noop, tagBar: noop, tagBaz: noop}))

	err := fbb.CheckHandlers(Handlers{tagFoo: noop, tagBaz: noop})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingHandler))

	var missing *MissingHandlerError
	require.True(t, errors.As(err, &missing))
	assert.True(t, missing.Tag == tagBar)

	err = fbb.CheckHandlers(Handlers{tagFoo: noop, tagBar: nil, tagBaz: noop})
	assert.True(t, errors.Is(err, ErrMissingHandler))
}

func TestUnionMatch(t *testing.T) {
	dinos := New("").DiscUnion(Named(map[string]Builder{
		"tRex":   func(args ...any) map[string]any { return map[string]any{"name": args[0]} },
		"raptor": nil,
	}), UnionOptions{Discriminant: "kind", Prefix: "dino/"})

	handlers := Handlers{
		Text("dino/tRex"):   func(v Value) any { return v["name"] },
		Text("dino/raptor"): func(Value) any { return "raptor" },
	}
	require.NoError(t, dinos.CheckHandlers(handlers))

	got, err := dinos.Match(dinos.MustConstructor(Text("tRex")).New("Bill"), handlers)
	require.NoError(t, err)
	assert.Equal(t, "Bill", got)

	got = dinos.MatchOr(dinos.MustConstructor(Text("raptor")).New(), Handlers{}, func(v Value) any {
		tag, _ := v.Tag("kind")
		return tag.String()
	})
	assert.Equal(t, "dino/raptor", got)
}
