package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/blurdrag/internal/canvas"
	"github.com/olivier-w/blurdrag/internal/effect"
	"github.com/olivier-w/blurdrag/internal/ui"
)

func main() {
	defaults := effect.DefaultTuning()
	var (
		variantFlag = flag.String("variant", "motion", "Effect variant: motion or zoom")
		debugView   = flag.Bool("debug-view", false, "Drive blur and angle with sliders instead of the gesture")
		fps         = flag.Int("fps", 60, "Animation frame rate")
		blurFactor  = flag.Float64("blur-factor", defaults.BlurFactor, "Motion blur per point/s of drag velocity")
		scaleFactor = flag.Float64("scale-factor", defaults.ScaleFactor, "Squash per point/s of drag velocity")
		zoomFactor  = flag.Float64("zoom-factor", defaults.ZoomBlurFactor, "Zoom blur per unit/s of scale velocity")
		colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256, 16, none")
		debug       = flag.Bool("debug", false, "Write a debug log to blurdrag.log")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: blurdrag [flags] [image]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("blurdrag.log", "blurdrag")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	variant, err := effect.ParseVariant(*variantFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode, err := canvas.ParseColorMode(*colorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := ui.DefaultOptions()
	opts.Variant = variant
	opts.Debug = *debugView
	opts.FPS = *fps
	opts.ColorMode = mode
	opts.Tuning = effect.Tuning{
		BlurFactor:     *blurFactor,
		ScaleFactor:    *scaleFactor,
		ZoomBlurFactor: *zoomFactor,
	}
	log.Printf("starting: variant=%s debug-view=%t fps=%d color=%s", variant, opts.Debug, opts.FPS, mode)

	var model tea.Model
	if flag.NArg() > 0 {
		m, err := buildDemoModel(flag.Arg(0), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		model = m
	} else {
		dir, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		model = newStartupModel(dir, opts)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
