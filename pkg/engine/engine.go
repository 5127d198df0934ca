// Package engine drives layout and paint for a render tree and produces
// frames as images or display lists.
package engine

import (
	"image"
	"sync"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Engine owns a render tree and the canvas size it is laid out for.
//
// The root receives loose constraints of the canvas size, so it may be
// smaller than the canvas; wrap it in a center box to center it.
// An Engine may be shared between goroutines; frames are serialized.
type Engine struct {
	frameLock  sync.Mutex
	owner      *layout.PipelineOwner
	root       layout.RenderBox
	size       rendering.Size
	background rendering.Color
	frames     uint64
}

// New creates an engine for a canvas of the given pixel size.
func New(width, height float64, background rendering.Color) *Engine {
	return &Engine{
		owner:      &layout.PipelineOwner{},
		size:       rendering.Size{Width: width, Height: height},
		background: background,
	}
}

// SetRoot replaces the render tree.
func (e *Engine) SetRoot(root layout.RenderBox) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.root = root
	if root != nil {
		layout.AttachOwner(root, e.owner)
		root.MarkNeedsLayout()
		root.MarkNeedsPaint()
	}
}

// Root returns the current render tree.
func (e *Engine) Root() layout.RenderBox {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.root
}

// Size returns the canvas size.
func (e *Engine) Size() rendering.Size {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.size
}

// Resize changes the canvas size and schedules layout.
func (e *Engine) Resize(width, height float64) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	size := rendering.Size{Width: width, Height: height}
	if size == e.size {
		return
	}
	e.size = size
	if e.root != nil {
		e.root.MarkNeedsLayout()
	}
}

// SetBackground changes the color the canvas is cleared to.
func (e *Engine) SetBackground(c rendering.Color) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.background = c
	if e.root != nil {
		e.root.MarkNeedsPaint()
	}
}

// NeedsFrame reports whether layout or paint is pending.
func (e *Engine) NeedsFrame() bool {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.frames == 0 || e.owner.NeedsLayout() || e.owner.NeedsPaint()
}

// Frames returns the number of frames drawn or recorded.
func (e *Engine) Frames() uint64 {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.frames
}

// DrawFrame lays out and paints the tree into a new image.
func (e *Engine) DrawFrame() (*image.RGBA, error) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	canvas := rendering.NewImageCanvas(int(e.size.Width), int(e.size.Height))
	if err := e.frameLocked("engine.DrawFrame", canvas); err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

// Record lays out and paints the tree into a display list.
func (e *Engine) Record() (*rendering.DisplayList, error) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	recorder := &rendering.PictureRecorder{}
	canvas := recorder.BeginRecording(e.size)
	if err := e.frameLocked("engine.Record", canvas); err != nil {
		recorder.EndRecording()
		return nil, err
	}
	return recorder.EndRecording(), nil
}

// frameLocked runs one layout and paint pass. A panic while laying out or
// painting is reported and returned as a KindPanic error.
func (e *Engine) frameLocked(op string, canvas rendering.Canvas) (err error) {
	defer errors.Recover(op, &err)

	e.frames++
	canvas.Clear(e.background)
	if e.root == nil {
		return nil
	}
	e.owner.FlushLayoutForRoot(e.root, layout.Loose(e.size))
	ctx := &layout.PaintContext{Canvas: canvas}
	e.root.Paint(ctx)
	e.owner.FlushPaint(e.root)
	return nil
}
