package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/frizinak/webpview"
	"github.com/frizinak/webpview/cli"
	"github.com/frizinak/webpview/glw"
	"github.com/frizinak/webpview/img"
)

// glfw and gl calls must stay on the main thread.
func init() { runtime.LockOSThread() }

func perr(err error) {
	cli.Report(os.Stderr, err)
}

func main() {
	var (
		configFile string
		verbose    bool
	)
	flag.StringVar(&configFile, "config", "", "toml file with window defaults")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <file.webp>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(cli.ExitCode(run(configFile, verbose, flag.Args())))
}

func run(configFile string, verbose bool, args []string) (err error) {
	defer func() { perr(err) }()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if len(args) == 0 {
		return cli.ErrMissingArgument
	}

	conf, err := cli.LoadConfig(configFile)
	if err != nil {
		return err
	}

	open := func(size webpview.Dimensions) (webpview.Surface, error) {
		w, err := glw.New(glw.Config{
			Title:        conf.Title,
			Width:        size.W,
			Height:       size.H,
			UV:           webpview.TexCoords,
			Smooth:       conf.Smooth,
			SwapInterval: conf.SwapInterval(),
			Log:          log,
		})
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	return webpview.Run(
		args[0],
		webpview.Options{
			Codec: img.DefaultCodec,
			Size:  webpview.Dimensions{W: conf.Width, H: conf.Height},
			Log:   log,
		},
		open,
	)
}
