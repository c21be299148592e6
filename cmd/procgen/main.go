// Command procgen prints xorshift sequences and renders Perlin noise
// textures, with optional state checkpoints on disk or in Redis.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/gogpu/procgen"
	"github.com/gogpu/procgen/checkpoint"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "procgen"
	myApp.Usage = "deterministic random sequences and noise textures"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "log level: debug, info, warn, error",
		},
		cli.BoolFlag{
			Name:  "log-json",
			Usage: "emit logs as JSON",
		},
	}
	myApp.Before = func(c *cli.Context) error {
		logger, err := newLogger(c.GlobalString("log-level"), c.GlobalBool("log-json"))
		if err != nil {
			return err
		}
		procgen.SetLogger(logger)
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		})); err != nil {
			logger.Warn("maxprocs: failed to set GOMAXPROCS", "error", err)
		}
		return nil
	}
	myApp.Commands = []cli.Command{
		sequenceCommand(),
		noiseCommand(),
	}

	if err := myApp.Run(os.Args); err != nil {
		checkError(err)
	}
}

func newLogger(level string, asJSON bool) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: l}
	if asJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// loadConfig applies the -c JSON file, if any, on top of flag values.
func loadConfig(c *cli.Context, config *Config) error {
	if path := c.String("c"); path != "" {
		if err := parseJSONConfig(config, path); err != nil {
			return errors.Wrap(err, "parse config")
		}
	}
	return nil
}

// signalContext returns a context cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// openStore returns the checkpoint store selected by the config, or nil
// when neither a state directory nor a Redis address is set.
func openStore(config *Config) (checkpoint.Store, func(), error) {
	switch {
	case config.Redis != "":
		rdb := redis.NewClient(&redis.Options{
			Addr:        config.Redis,
			DialTimeout: 5 * time.Second,
		})
		closer := func() {
			if err := rdb.Close(); err != nil {
				procgen.Logger().Warn("redis: close", "error", err)
			}
		}
		return checkpoint.NewRedisStore(rdb, config.RedisPrefix, 0), closer, nil
	case config.StateDir != "":
		s, err := checkpoint.NewFileStore(config.StateDir)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		return s, func() {}, nil
	default:
		return nil, func() {}, nil
	}
}

func configFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "c",
		Value: "",
		Usage: "config from json file, which will override the command from shell",
	}
}

func stateFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "state",
			Usage: "checkpoint directory; resume from and save to it",
		},
		cli.StringFlag{
			Name:  "redis",
			Usage: "redis address for checkpoints, overrides --state",
		},
		cli.StringFlag{
			Name:  "redisprefix",
			Value: "procgen:",
			Usage: "redis key prefix",
		},
		cli.StringFlag{
			Name:  "key",
			Usage: "checkpoint key (default: generator name)",
		},
		cli.BoolFlag{
			Name:  "nocomp",
			Usage: "store checkpoints without snappy compression",
		},
	}
}

func readStateFlags(c *cli.Context, config *Config) {
	config.StateDir = c.String("state")
	config.Redis = c.String("redis")
	config.RedisPrefix = c.String("redisprefix")
	config.Key = c.String("key")
	config.NoComp = c.Bool("nocomp")
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
