// Package discunion builds and dispatches over tagged variant values:
// records told apart by a single discriminant field, like a closed sum type.
//
// The discriminant field name is configuration. A Factory binds a default
// name, and every operation accepts an explicit one as a trailing argument.
// The package-level functions use Default, which is bound to "type".
//
// Registration:
//   - DiscUnion: turns a closed set of payload builders into Constructors
//   - CreateType: stamps a tag onto a copy of a payload
//   - AttachExtras: wraps a hand-written constructor as a Constructor
//
// Narrowing and dispatch:
//   - Is: membership test
//   - Get: the value if it matches, nil and false otherwise
//   - Validate: the value if it matches, *TagMismatchError otherwise
//   - Map: a transform applied only to matching values
//   - Match: exhaustive dispatch, *MissingHandlerError when uncovered
//   - MatchOr: partial dispatch with a fallback handler
//
// Tags are text (Text) or symbols (NewSymbol, SymbolFor). The two never
// collide, even when they print the same.
//
// Example usage:
//
//	dinos := discunion.New("kind").DiscUnion(discunion.Named(map[string]discunion.Builder{
//		"tRex": func(args ...any) map[string]any { return map[string]any{"name": args[0]} },
//		"raptor": func(args ...any) map[string]any { return nil },
//	}), discunion.UnionOptions{Prefix: "dino/"})
//
//	tRex := dinos.MustConstructor(discunion.Text("tRex"))
//	bill := tRex.New("Bill") // {kind:"dino/tRex" name:"Bill"}
//
//	name, err := dinos.Match(bill, discunion.Handlers{
//		tRex.Key(): func(v discunion.Value) any { return v["name"] },
//		discunion.Text("dino/raptor"): func(discunion.Value) any { return "raptor" },
//	})
package discunion
