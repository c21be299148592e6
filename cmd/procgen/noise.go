package main

import (
	"context"
	"image"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/procgen"
	"github.com/gogpu/procgen/checkpoint"
	"github.com/gogpu/procgen/texture"
)

func noiseCommand() cli.Command {
	return cli.Command{
		Name:  "noise",
		Usage: "render a Perlin noise texture",
		Flags: append([]cli.Flag{
			configFlag(),
			cli.Uint64Flag{
				Name:  "seed",
				Value: 0,
				Usage: "permutation seed (32-bit)",
			},
			cli.IntFlag{
				Name:  "width",
				Value: 512,
				Usage: "render width in pixels",
			},
			cli.IntFlag{
				Name:  "height",
				Value: 512,
				Usage: "render height in pixels",
			},
			cli.IntFlag{
				Name:  "outwidth",
				Usage: "resample output to this width (0 keeps render size)",
			},
			cli.IntFlag{
				Name:  "outheight",
				Usage: "resample output to this height (0 keeps render size)",
			},
			cli.Float64Flag{
				Name:  "freq",
				Value: 4,
				Usage: "lattice cells across the image",
			},
			cli.IntFlag{
				Name:  "octaves",
				Value: 6,
				Usage: "octaves summed per sample",
			},
			cli.Float64Flag{
				Name:  "persistence",
				Value: 0.5,
				Usage: "amplitude ratio between octaves",
			},
			cli.Float64Flag{
				Name:  "z",
				Usage: "slice of the 3D noise field",
			},
			cli.BoolFlag{
				Name:  "raw",
				Usage: "use the unnormalized octave sum",
			},
			cli.StringFlag{
				Name:  "ramp",
				Value: "gray",
				Usage: "colour ramp: gray, terrain, fire",
			},
			cli.StringFlag{
				Name:  "out",
				Value: "noise.png",
				Usage: "output file (.png, .bmp, .tif)",
			},
			cli.StringFlag{
				Name:  "format",
				Usage: "output format, overrides the file extension",
			},
			cli.IntFlag{
				Name:  "workers",
				Usage: "render workers (0 uses GOMAXPROCS)",
			},
		}, stateFlags()...),
		Action: func(c *cli.Context) error {
			config := Config{}
			config.Seed = c.Uint64("seed")
			config.Width = c.Int("width")
			config.Height = c.Int("height")
			config.OutWidth = c.Int("outwidth")
			config.OutHeight = c.Int("outheight")
			config.Frequency = c.Float64("freq")
			config.Octaves = c.Int("octaves")
			config.Persistence = c.Float64("persistence")
			config.Z = c.Float64("z")
			config.Raw = c.Bool("raw")
			config.Ramp = c.String("ramp")
			config.Out = c.String("out")
			config.Format = c.String("format")
			config.Workers = c.Int("workers")
			readStateFlags(c, &config)
			if err := loadConfig(c, &config); err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()
			return runNoise(ctx, &config)
		},
	}
}

func runNoise(ctx context.Context, config *Config) error {
	if config.Seed > 0xffffffff {
		return errors.Errorf("seed %d does not fit in 32 bits", config.Seed)
	}
	ramp, err := texture.RampByName(config.Ramp)
	if err != nil {
		return errors.WithStack(err)
	}

	pn, err := loadNoise(ctx, config)
	if err != nil {
		return err
	}

	r := texture.NewRenderer(config.Workers)
	defer r.Close()

	gray, err := r.Render(ctx, &pn, config.Width, config.Height,
		texture.WithFrequency(config.Frequency),
		texture.WithOctaves(config.Octaves),
		texture.WithPersistence(config.Persistence),
		texture.WithZ(config.Z),
		texture.WithNormalize(!config.Raw),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	var img image.Image = gray
	if !strings.EqualFold(config.Ramp, "gray") {
		img = texture.Colorize(gray, ramp)
	}
	if config.OutWidth > 0 || config.OutHeight > 0 {
		w, h := config.OutWidth, config.OutHeight
		if w <= 0 {
			w = config.Width * h / config.Height
		}
		if h <= 0 {
			h = config.Height * w / config.Width
		}
		if img, err = texture.Resize(img, w, h); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := writeImage(config, img); err != nil {
		return err
	}

	b := img.Bounds()
	p := message.NewPrinter(language.English)
	procgen.Logger().Info(p.Sprintf("noise: wrote %d pixels to %s", b.Dx()*b.Dy(), config.Out))
	return nil
}

// loadNoise restores the permutation table from the checkpoint store when
// one is configured and holds the key; otherwise it seeds a new table and
// saves it.
func loadNoise(ctx context.Context, config *Config) (procgen.PerlinNoise, error) {
	store, closeStore, err := openStore(config)
	if err != nil {
		return procgen.PerlinNoise{}, err
	}
	defer closeStore()

	if store == nil {
		return procgen.NewPerlinNoise(uint32(config.Seed)), nil
	}

	key := config.Key
	if key == "" {
		key = "perlin"
	}
	var pn procgen.PerlinNoise
	err = checkpoint.Load(ctx, store, key, &pn)
	switch {
	case err == nil:
		procgen.Logger().Info("noise: permutation table restored", "key", key)
		return pn, nil
	case errors.Is(err, checkpoint.ErrNotFound):
		pn = procgen.NewPerlinNoise(uint32(config.Seed))
		if err := checkpoint.Save(ctx, store, key, &pn, checkpoint.WithCompression(!config.NoComp)); err != nil {
			return procgen.PerlinNoise{}, errors.WithStack(err)
		}
		return pn, nil
	default:
		return procgen.PerlinNoise{}, errors.WithStack(err)
	}
}

func writeImage(config *Config, img image.Image) error {
	if config.Format == "" {
		return errors.WithStack(texture.Save(config.Out, img))
	}

	f, err := texture.ParseFormat(config.Format)
	if err != nil {
		return errors.WithStack(err)
	}
	file, err := os.Create(config.Out)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := texture.Encode(file, img, f); err != nil {
		_ = file.Close()
		return errors.WithStack(err)
	}
	return errors.WithStack(file.Close())
}
