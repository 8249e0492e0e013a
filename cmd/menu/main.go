package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/littlelemon/internal/cli"
	"github.com/idilsaglam/littlelemon/internal/config"
	"github.com/idilsaglam/littlelemon/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	fs := pflag.NewFlagSet("menu", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = cli.PrintHelp
	configPath := fs.String("config", "", "YAML config file")
	url := fs.String("url", "", "remote menu URL")
	driver := fs.String("store", "", "local store: sqlite, json, cbor, memory or none")
	storePath := fs.String("store-path", "", "local store file")
	theme := fs.String("theme", "", "plain output theme: classic, neon or mono")
	level := fs.String("log-level", "", "debug, info, warn or error")
	offline := fs.Bool("offline", false, "skip the remote source")
	noColor := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	override(fs, "url", &cfg.Remote.URL, *url)
	override(fs, "store", &cfg.Store.Driver, *driver)
	override(fs, "store-path", &cfg.Store.Path, *storePath)
	override(fs, "theme", &cfg.UI.Theme, *theme)
	override(fs, "log-level", &cfg.Log.Level, *level)
	if *offline {
		cfg.Remote.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(false, *noColor || os.Getenv("NO_COLOR") != "")

	args := fs.Args()
	interactive := len(args) == 0 || args[0] == "browse"

	logger, closeLog, err := newLogger(cfg.Log, interactive)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, args, cli.Options{Config: cfg, Logger: &logger})
	stop()
	closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

func loadConfig(path string) (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	if path == "" {
		path = os.Getenv("MENU_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func override(fs *pflag.FlagSet, name string, dst *string, v string) {
	if fs.Changed(name) {
		*dst = v
	}
}

// newLogger writes to the configured file, else stderr. While the
// interactive screen owns the terminal, logs without a file are dropped.
func newLogger(c config.LogConfig, interactive bool) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closer := func() {}
	switch {
	case c.File != "":
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), closer, nil
}
