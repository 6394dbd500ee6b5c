package ui

import (
	"image"

	"github.com/olivier-w/blurdrag/internal/canvas"
	"github.com/olivier-w/blurdrag/internal/effect"
)

// stageView is the render host: it receives frames from the controller and
// rasterizes them lazily when the view is drawn.
type stageView struct {
	stage    *canvas.Stage
	renderer *canvas.Renderer

	frame      effect.Frame
	cols, rows int
	output     string
	stale      bool
}

func newStageView(img image.Image, mode canvas.ColorMode) *stageView {
	return &stageView{
		stage:    canvas.NewStage(img),
		renderer: canvas.NewRenderer(mode),
		stale:    true,
	}
}

func (v *stageView) Present(f effect.Frame) {
	v.frame = f
	v.stale = true
}

func (v *stageView) resize(cols, rows int) {
	if cols == v.cols && rows == v.rows {
		return
	}
	v.cols, v.rows = cols, rows
	v.stale = true
}

func (v *stageView) view() string {
	if v.cols <= 0 || v.rows <= 0 {
		return ""
	}
	if v.stale {
		tf, u := frameUniforms(v.frame)
		img := v.stage.Compose(v.cols, v.rows*2, tf, u)
		v.output = v.renderer.Render(img, v.cols, v.rows)
		v.stale = false
	}
	return v.output
}

// frameUniforms converts a controller frame into the host's transform and
// shader inputs. With the effect off the motion variant draws the plain
// image unscaled, the zoom variant keeps its scale.
func frameUniforms(f effect.Frame) (canvas.Transform, canvas.Uniforms) {
	tf := canvas.Transform{
		OffsetX: f.Position.X / pointsPerPixel,
		OffsetY: f.Position.Y / pointsPerPixel,
		ScaleX:  f.Scale.X,
		ScaleY:  f.Scale.Y,
	}
	if !f.Enabled {
		if f.Variant == effect.Motion {
			tf.ScaleX, tf.ScaleY = 1, 1
		}
		return tf, canvas.Uniforms{Effect: canvas.EffectNone}
	}

	switch f.Variant {
	case effect.Zoom:
		return tf, canvas.Uniforms{Effect: canvas.EffectZoom, Strength: f.Blur}
	default:
		return tf, canvas.Uniforms{Effect: canvas.EffectMotion, Strength: f.Blur, Angle: f.Angle}
	}
}
