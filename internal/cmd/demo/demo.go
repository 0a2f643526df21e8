package demo

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/clockworklabs/SpacetimeDB/crates/discunion-go/internal/config"
	"github.com/clockworklabs/SpacetimeDB/crates/discunion-go/internal/logging"
	"github.com/clockworklabs/SpacetimeDB/crates/discunion-go/pkg/discunion"
)

// Config holds demo command configuration.
type Config struct {
	Discriminant string `env:"DISCUNION_DISCRIMINANT" envDefault:"type"`
	Prefix       string `env:"DISCUNION_PREFIX"`
	LogLevel     string `env:"DISCUNION_LOG_LEVEL"    envDefault:"warn"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Discriminant, "discriminant", cfg.Discriminant, "field that carries the variant tag")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "prefix applied to every text tag")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fossil is the symbol-keyed variant of the demo union.
var fossil = discunion.SymbolFor("fossil")

func dinosaurs(f *discunion.Factory, prefix string) *discunion.Union {
	builders := discunion.Named(map[string]discunion.Builder{
		"tRex": func(args ...any) map[string]any {
			return map[string]any{"name": args[0]}
		},
		"stegosaurus": func(args ...any) map[string]any {
			return map[string]any{"plates": args[0]}
		},
		"pterodactyl": nil,
	})
	builders[fossil] = func(args ...any) map[string]any {
		return map[string]any{"age": args[0]}
	}
	return f.DiscUnion(builders, discunion.UnionOptions{Prefix: prefix})
}

// Run builds the demo union and writes every construction and dispatch to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f := discunion.New(cfg.Discriminant)
	dinos := dinosaurs(f, cfg.Prefix)

	tRex := dinos.MustConstructor(discunion.Text("tRex"))
	stego := dinos.MustConstructor(discunion.Text("stegosaurus"))
	ptero := dinos.MustConstructor(discunion.Text("pterodactyl"))
	old := dinos.MustConstructor(fossil)

	values := []discunion.Value{
		tRex.New("Bill"),
		stego.New(17),
		ptero.New(),
		old.New("66 Myr"),
	}

	describe := discunion.Handlers{
		tRex.Key():  func(v discunion.Value) any { return fmt.Sprintf("a tyrannosaur named %v", v["name"]) },
		stego.Key(): func(v discunion.Value) any { return fmt.Sprintf("a stegosaur with %v plates", v["plates"]) },
		ptero.Key(): func(discunion.Value) any { return "a pterodactyl" },
		old.Key():   func(v discunion.Value) any { return fmt.Sprintf("a fossil, %v old", v["age"]) },
	}
	if err := dinos.CheckHandlers(describe); err != nil {
		return err
	}

	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}

		desc, err := dinos.Match(v, describe)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s => %s\n", v, desc)

		flying := dinos.MatchOr(v, discunion.Handlers{
			ptero.Key(): func(discunion.Value) any { return true },
		}, func(discunion.Value) any { return false })
		fmt.Fprintf(out, "  flies: %v\n", flying)

		if _, err := tRex.Validate(v); err != nil {
			fmt.Fprintf(errOut, "  %v\n", err)
		}
	}
	return nil
}
