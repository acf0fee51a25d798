// Command cubdemo renders a stock example or a YAML scene with the cub
// rasterizer and writes the result to an image file.
//
// Usage:
//
//	cubdemo -example triangles -output triangles.png
//	cubdemo -example blit -image pog.png -output pog.ppm
//	cubdemo -scene scene.yaml -output scene.bmp -log-level debug
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/cub"
	"github.com/gogpu/cub/imageio"
	"github.com/gogpu/cub/internal/scene"
)

// config holds the command-line settings.
type config struct {
	scene    string
	example  string
	image    string
	width    int
	height   int
	output   string
	logLevel string
	logFile  string
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	applyEnvOverrides(&cfg, os.Getenv)

	logger, closer, err := newLogger(cfg.logLevel, cfg.logFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cubdemo: %v\n", err)
		os.Exit(2)
	}
	defer closer.Close()
	cub.SetLogger(logger)

	if err := run(cfg); err != nil {
		logger.Error("render failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("cubdemo", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.scene, "scene", "", "YAML scene file to render")
	fs.StringVar(&cfg.example, "example", "line",
		"stock example: image, "+strings.Join(scene.Examples(), ", "))
	fs.StringVar(&cfg.image, "image", "", "source image for the image and blit examples")
	fs.IntVar(&cfg.width, "width", 0, "override canvas width")
	fs.IntVar(&cfg.height, "height", 0, "override canvas height")
	fs.StringVar(&cfg.output, "output", "cubdemo.png", "output file (.png, .ppm, .bmp, .tif, .pdf)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&cfg.logFile, "log-file", "", "also write JSON logs to this rotated file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(out, err)
		return config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides lets CUB_LOG_LEVEL and CUB_LOG_FILE replace the flag values.
func applyEnvOverrides(cfg *config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv("CUB_LOG_LEVEL")); v != "" {
		cfg.logLevel = v
	}
	if v := strings.TrimSpace(getenv("CUB_LOG_FILE")); v != "" {
		cfg.logFile = v
	}
}

func run(cfg config) error {
	if cfg.output == "" {
		return errors.New("no output file")
	}
	if _, err := imageio.FormatFromPath(cfg.output); err != nil {
		return err
	}

	c, err := render(cfg)
	if err != nil {
		return err
	}
	if err := imageio.Save(c, cfg.output); err != nil {
		return err
	}

	cub.Logger().Info("image saved",
		"path", cfg.output,
		"width", c.Width(),
		"height", c.Height(),
	)
	return nil
}

func render(cfg config) (*cub.Canvas, error) {
	if cfg.scene == "" && cfg.example == "image" {
		if cfg.image == "" {
			return nil, errors.New("the image example needs -image")
		}
		return imageio.Load(cfg.image)
	}

	var (
		s   *scene.Scene
		err error
	)
	if cfg.scene != "" {
		s, err = scene.LoadFile(cfg.scene)
	} else {
		s, err = scene.Example(cfg.example, cfg.image)
	}
	if err != nil {
		return nil, err
	}

	if cfg.width > 0 {
		s.Width = cfg.width
	}
	if cfg.height > 0 {
		s.Height = cfg.height
	}
	return scene.NewRenderer(nil).Render(s)
}
