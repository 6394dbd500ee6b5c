package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olivier-w/blurdrag/internal/canvas"
	"github.com/olivier-w/blurdrag/internal/media"
	"github.com/olivier-w/blurdrag/internal/ui"
)

// buildDemoModel loads the image at path and wraps it in a demo model.
// An empty path selects the built-in sample.
func buildDemoModel(path string, opts ui.Options) (ui.Model, error) {
	if path == "" {
		opts.Title = "sample"
		return ui.New(canvas.Sample(), opts), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return ui.Model{}, err
	}
	if info.IsDir() {
		return ui.Model{}, fmt.Errorf("%s is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !media.IsSupportedExt(ext) {
		return ui.Model{}, fmt.Errorf("unsupported format %s (supported: %s)", ext, media.SupportedExtsList())
	}

	img, err := canvas.Load(path)
	if err != nil {
		return ui.Model{}, err
	}
	if b := img.Bounds(); b.Empty() {
		return ui.Model{}, fmt.Errorf("%s has no pixels", path)
	}

	opts.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ui.New(img, opts), nil
}
