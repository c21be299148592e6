package main

import (
	"bufio"
	"context"
	"encoding"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/procgen"
	"github.com/gogpu/procgen/checkpoint"
)

// generator is what the sequence command needs from a procgen generator.
type generator interface {
	procgen.Generator
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Discard(n uint64)
}

func newGenerator(name string, seed uint64) (generator, error) {
	switch name {
	case "xorshift64star", "64":
		g := procgen.NewXorshift64Star(seed)
		return &g, nil
	case "xorshift128plus", "128":
		g := procgen.NewXorshift128Plus(seed)
		return &g, nil
	case "xorshift1024star", "1024":
		g := procgen.NewXorshift1024Star(seed)
		return &g, nil
	default:
		return nil, errors.Errorf("unknown generator %q", name)
	}
}

func sequenceCommand() cli.Command {
	return cli.Command{
		Name:  "sequence",
		Usage: "print generator outputs",
		Flags: append([]cli.Flag{
			configFlag(),
			cli.StringFlag{
				Name:  "gen",
				Value: "xorshift128plus",
				Usage: "generator: xorshift64star, xorshift128plus, xorshift1024star",
			},
			cli.Uint64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "seed, must be non-zero",
			},
			cli.IntFlag{
				Name:  "count",
				Value: 10,
				Usage: "number of outputs",
			},
			cli.BoolFlag{
				Name:  "hex",
				Usage: "print outputs in hexadecimal",
			},
		}, stateFlags()...),
		Action: func(c *cli.Context) error {
			config := Config{}
			config.Generator = c.String("gen")
			config.Seed = c.Uint64("seed")
			config.Count = c.Int("count")
			config.Hex = c.Bool("hex")
			readStateFlags(c, &config)
			if err := loadConfig(c, &config); err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()
			return runSequence(ctx, &config, os.Stdout)
		},
	}
}

func runSequence(ctx context.Context, config *Config, out io.Writer) error {
	if config.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", config.Count)
	}
	if config.Seed == 0 {
		procgen.Logger().Warn("sequence: zero seed gives a degenerate stream", "gen", config.Generator)
	}

	g, err := newGenerator(config.Generator, config.Seed)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	key := config.Key
	if key == "" {
		key = config.Generator
	}
	if store != nil {
		err := checkpoint.Load(ctx, store, key, g)
		switch {
		case err == nil:
			procgen.Logger().Info("sequence: resumed from checkpoint", "key", key)
		case errors.Is(err, checkpoint.ErrNotFound):
			procgen.Logger().Debug("sequence: no checkpoint, starting from seed", "key", key, "seed", config.Seed)
		default:
			return errors.WithStack(err)
		}
	}

	w := bufio.NewWriter(out)
	for range config.Count {
		v := g.Uint64()
		if config.Hex {
			fmt.Fprintf(w, "%#016x\n", v)
		} else {
			fmt.Fprintln(w, v)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}

	if store != nil {
		if err := checkpoint.Save(ctx, store, key, g, checkpoint.WithCompression(!config.NoComp)); err != nil {
			return errors.WithStack(err)
		}
	}

	p := message.NewPrinter(language.English)
	procgen.Logger().Info(p.Sprintf("sequence: %d outputs from %s", config.Count, config.Generator))
	return nil
}
