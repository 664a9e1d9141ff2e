// Command sketchdemo draws the sketch reference page.
//
// By default it renders one still page into a PNG file. With --frames it
// animates the page through the frame loop, writing numbered PNG files or,
// when built with the sdl tag and run with --window, showing it on screen.
// The record backend prints the surface calls instead of pixels.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/imageio"
	"github.com/gogpu/sketch/loop"
	"github.com/gogpu/sketch/surface"
	"github.com/gogpu/sketch/surface/raster"
	"github.com/gogpu/sketch/surface/record"
)

type options struct {
	Backend   string  `short:"b" long:"backend"    env:"SKETCH_BACKEND"    default:"raster" description:"Surface backend"`
	Scale     float64 `short:"s" long:"scale"      env:"SKETCH_SCALE"      default:"1"      description:"Device pixels per logical unit"`
	Output    string  `short:"o" long:"output"     env:"SKETCH_OUTPUT"     default:"sketch.png" description:"Output PNG for a still page"`
	Frames    int     `short:"n" long:"frames"     env:"SKETCH_FRAMES"     description:"Animate this many frames (0 draws a still page)"`
	FrameRate int     `short:"r" long:"fps"        env:"SKETCH_FPS"        default:"25"     description:"Frames per second"`
	FrameDir  string  `short:"d" long:"frame-dir"  env:"SKETCH_FRAME_DIR"  default:"frames" description:"Output directory for animation frames"`
	Window    bool    `short:"w" long:"window"     env:"SKETCH_WINDOW"     description:"Show frames in a window (sdl builds only)"`
	Image     string  `short:"i" long:"image"      env:"SKETCH_IMAGE"      description:"Image path or URL drawn on the page"`
	FontFile  string  `long:"font-file"            env:"SKETCH_FONT_FILE"  description:"TTF/OTF file used for sans-serif text"`
	LogLevel  string  `short:"l" long:"log-level"  env:"SKETCH_LOG_LEVEL"  default:"info"   description:"Log level: debug, info, warn, error"`
}

func parseCmd(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	choices := append([]string{autoBackend}, surface.Available()...)
	if opt := parser.FindOptionByLongName("backend"); opt != nil {
		opt.Description = "Surface backend: " + strings.Join(choices, ", ")
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return opts, err
	}
	if !slices.Contains(choices, opts.Backend) {
		return opts, fmt.Errorf("unknown backend %q, want one of: %s", opts.Backend, strings.Join(choices, ", "))
	}
	if opts.Scale <= 0 {
		return opts, fmt.Errorf("scale must be positive, got %v", opts.Scale)
	}
	return opts, nil
}

// autoBackend selects the best available surface backend.
const autoBackend = "auto"

func newSurface(name string, w, h int) (surface.Surface, error) {
	if name == autoBackend {
		return surface.New(w, h)
	}
	return surface.NewByName(name, w, h)
}

func main() {
	opts, err := parseCmd(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		if !errors.As(err, &flagsErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(2)
	}
	logrus.SetLevel(level)
	sketch.SetLogger(newLogrusLogger(logrus.StandardLogger()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("sketchdemo failed")
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	if opts.FontFile != "" {
		if err := raster.RegisterFontFile("sans-serif", opts.FontFile); err != nil {
			return err
		}
	}

	w := int(pageWidth * opts.Scale)
	h := int(pageHeight * opts.Scale)
	surf, err := newSurface(opts.Backend, w, h)
	if err != nil {
		return err
	}
	if c, ok := surf.(io.Closer); ok {
		defer c.Close()
	}

	sk := sketch.New(surf,
		sketch.WithScale(opts.Scale),
		sketch.WithImageLoader(imageio.NewLoader(imageio.WithBaseDir("."))),
	)
	if err := sk.Size(pageWidth, pageHeight); err != nil {
		return err
	}

	var img image.Image
	if opts.Image != "" {
		img = sk.LoadImage(ctx, opts.Image)
	}

	logrus.WithFields(logrus.Fields{
		"backend": opts.Backend,
		"width":   w,
		"height":  h,
		"frames":  opts.Frames,
	}).Info("drawing")

	if opts.Frames > 0 || opts.Window {
		return animate(ctx, sk, img, opts)
	}

	drawPage(sk, sketch.Radians(45), img)
	return output(surf, opts.Output, stdout)
}

// output writes the finished page: pixels for raster surfaces, the call
// log for recording surfaces.
func output(surf surface.Surface, path string, stdout io.Writer) error {
	switch s := surf.(type) {
	case *raster.Surface:
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := s.SavePNG(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		logrus.WithField("path", path).Info("page saved")
	case *record.Surface:
		for _, line := range s.Strings() {
			if _, err := fmt.Fprintln(stdout, line); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("backend %T has no output", surf)
	}
	return nil
}

func animate(ctx context.Context, sk *sketch.Sketch, img image.Image, opts options) error {
	var presenter loop.Presenter = &loop.PNGSequence{Dir: opts.FrameDir}
	if opts.Window {
		win, closeWin, err := newWindow("sketchdemo", sk.Surface())
		if err != nil {
			return err
		}
		defer closeWin()
		presenter = win
	}

	r := loop.New(sk,
		loop.WithFrameRate(opts.FrameRate),
		loop.WithMaxFrames(opts.Frames),
		loop.WithPresenter(presenter),
		loop.WithDraw(func(sk *sketch.Sketch, frame int) error {
			spin := sketch.Radians(45 + 360*float64(frame)/float64(opts.FrameRate*4))
			drawPage(sk, spin, img)
			return nil
		}),
	)
	err := r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logrus.WithFields(logrus.Fields{
		"frames":  r.Frames(),
		"dropped": r.Dropped(),
	}).Info("animation finished")
	return err
}
