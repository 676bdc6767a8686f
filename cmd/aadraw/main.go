// Command aadraw demonstrates the aadraw circle and line rasterizers.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/aadraw"
	"github.com/gogpu/aadraw/pipeline"
)

func main() {
	mode := aadraw.AntiAliasAccurate
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		input   = flag.String("input", "", "draw on this image instead of a blank canvas")
		output  = flag.String("output", "demo.png", "output file; the extension selects the format")
		caption = flag.String("caption", "", "caption text set below the image")
		verbose = flag.Bool("v", false, "log debug output")
		workers = flag.Int("workers", 0, "parallel jobs when framing files given as arguments")
		resize  = flag.Int("resize", 0, "scale framed files to this width first (0 keeps the size)")
		watch   = flag.String("watch", "", "frame images appearing in this directory until interrupted")
		outDir  = flag.String("outdir", "framed", "output directory for -watch")
	)
	flag.Var(&mode, "mode", "anti-aliasing tier: off, fast or accurate")
	flag.Parse()

	if *verbose {
		aadraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var frame []pipeline.Unit
	if *resize > 0 {
		frame = append(frame, pipeline.NewResize(*resize, 0))
	}
	frame = append(frame, pipeline.NewMargin(20, 20, 20, 20, aadraw.White))
	if *caption != "" {
		frame = append(frame, pipeline.NewCaption(*caption, 14, aadraw.Black, aadraw.White, pipeline.WithPPI(96)))
	}

	if *watch != "" {
		if err := os.MkdirAll(*outDir, 0o750); err != nil {
			log.Fatalf("Failed to create %s: %v", *outDir, err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log.Printf("Watching %s, writing to %s\n", *watch, *outDir)
		if err := pipeline.Watch(ctx, *watch, *outDir, pipeline.NewChain(frame), 0); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
		return
	}

	// Files given as arguments are framed in batch; no demo is drawn.
	if flag.NArg() > 0 {
		jobs := make([]pipeline.Job, flag.NArg())
		for i, in := range flag.Args() {
			jobs[i] = pipeline.Job{Input: in, Output: strings.TrimSuffix(in, filepath.Ext(in)) + "_framed.png"}
		}
		if err := pipeline.RunBatch(jobs, pipeline.NewChain(frame), *workers); err != nil {
			log.Fatalf("Batch failed: %v", err)
		}
		log.Printf("Framed %d files\n", len(jobs))
		return
	}

	canvas, err := openCanvas(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to open: %v", err)
	}
	dst := canvas.Current()

	if err := drawCirclesDemo(dst, mode); err != nil {
		log.Fatalf("Failed to draw circles: %v", err)
	}
	if err := drawLinesDemo(dst, mode); err != nil {
		log.Fatalf("Failed to draw lines: %v", err)
	}

	if err := pipeline.NewChain(frame).Forward(canvas); err != nil {
		log.Fatalf("Failed to frame: %v", err)
	}

	if err := canvas.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	s := aadraw.GetStampCacheStats()
	log.Printf("Demo saved to %s (%dx%d, mode %s, %d cached stamps)\n",
		*output, canvas.Current().Width(), canvas.Current().Height(), mode, s.Len)
}

func openCanvas(path string, w, h int) (*pipeline.Canvas, error) {
	if path != "" {
		return pipeline.Open(path)
	}
	c := pipeline.NewCanvas(image.NewNRGBA(image.Rect(0, 0, w, h)))
	drawGradientBackground(c.Current())
	return c, nil
}

func drawGradientBackground(pm *aadraw.Pixmap) {
	h := pm.Height()
	for y := range h {
		t := float64(y) / float64(max(h, 1))
		c := aadraw.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2).NRGBA()
		for x := range pm.Width() {
			pm.SetPixel(x, y, c)
		}
	}
}

func drawCirclesDemo(dst *aadraw.Pixmap, mode aadraw.AntiAlias) error {
	// Overlapping translucent circles.
	for i, c := range []aadraw.RGBA{
		aadraw.RGB(1, 0.3, 0.3).WithAlpha(0.8),
		aadraw.RGB(0.3, 1, 0.3).WithAlpha(0.8),
		aadraw.RGB(0.3, 0.3, 1).WithAlpha(0.8),
	} {
		center := aadraw.Pt(150+50*float64(i%2)+25*float64(i/2), 150+50*float64(i/2))
		if err := aadraw.DrawCircle(dst, center, 60, c, mode); err != nil {
			return err
		}
	}

	// A row of growing dots at sub-pixel positions.
	x := 40.0
	for r := 0.5; r <= 16; r *= 1.5 {
		if err := aadraw.DrawCircle(dst, aadraw.Pt(x+0.3, 320.7), r, aadraw.White, mode); err != nil {
			return err
		}
		x += 2*r + 12
	}
	return nil
}

func drawLinesDemo(dst *aadraw.Pixmap, mode aadraw.AntiAlias) error {
	// Lines have no fast tier.
	if mode == aadraw.AntiAliasFast {
		mode = aadraw.AntiAliasAccurate
	}

	// A fan of spokes covering shallow and steep slopes.
	center := aadraw.Pt(560, 180)
	for i := range 24 {
		angle := float64(i) * math.Pi / 12
		end := center.Add(aadraw.Pt(math.Cos(angle), math.Sin(angle)).Mul(120))
		width := 0.5 + float64(i%4)
		c := aadraw.HSL(float64(i)*15, 0.8, 0.6)
		if err := aadraw.DrawLine(dst, aadraw.Segment{P0: center, P1: end}, width, c, mode); err != nil {
			return fmt.Errorf("spoke %d: %w", i, err)
		}
	}

	// Parallel strokes of increasing width.
	for i := range 8 {
		y := 420 + float64(i)*18
		s := aadraw.Seg(60, y, 740, y+40)
		if err := aadraw.DrawLine(dst, s, 0.5+float64(i), aadraw.Hex("#ffcc00"), mode); err != nil {
			return err
		}
	}
	return nil
}
