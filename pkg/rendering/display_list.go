package rendering

import "fmt"

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Ops describes the recorded operations in order.
func (d *DisplayList) Ops() []DisplayOp {
	out := make([]DisplayOp, len(d.ops))
	for i, op := range d.ops {
		out[i] = op.describe()
	}
	return out
}

// DisplayOp is a serializable description of a recorded operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
	describe() DisplayOp
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) ClipPath(path *Path) {
	c.recorder.append(opClipPath{path: path.Clone()})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(opPath{path: path.Clone(), paint: paint})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) {
	canvas.Save()
}

func (opSave) describe() DisplayOp {
	return DisplayOp{Op: "save"}
}

type opRestore struct{}

func (opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

func (opRestore) describe() DisplayOp {
	return DisplayOp{Op: "restore"}
}

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) {
	canvas.Translate(op.dx, op.dy)
}

func (op opTranslate) describe() DisplayOp {
	return DisplayOp{Op: "translate", Params: map[string]any{"dx": op.dx, "dy": op.dy}}
}

type opClipPath struct {
	path *Path
}

func (op opClipPath) execute(canvas Canvas) {
	canvas.ClipPath(op.path)
}

func (op opClipPath) describe() DisplayOp {
	return DisplayOp{Op: "clipPath", Params: describePath(op.path)}
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

func (op opClear) describe() DisplayOp {
	return DisplayOp{Op: "clear", Params: map[string]any{"color": op.color.String()}}
}

type opPath struct {
	path  *Path
	paint Paint
}

func (op opPath) execute(canvas Canvas) {
	canvas.DrawPath(op.path, op.paint)
}

func (op opPath) describe() DisplayOp {
	params := describePath(op.path)
	if op.paint.HasGradient() {
		stops := op.paint.Gradient.Stops()
		colors := make([]string, len(stops))
		for i, stop := range stops {
			colors[i] = stop.Color.String()
		}
		params["gradient"] = op.paint.Gradient.Type.String()
		params["stops"] = colors
	} else {
		params["color"] = op.paint.Color.String()
	}
	if s := op.paint.Shadow; s != nil {
		params["shadow"] = fmt.Sprintf("%s blur=%.2f offset=(%.2f,%.2f)", s.Color, s.BlurRadius, s.Offset.X, s.Offset.Y)
	}
	return DisplayOp{Op: "drawPath", Params: params}
}

func describePath(path *Path) map[string]any {
	b := path.Bounds()
	return map[string]any{
		"bounds":  fmt.Sprintf("(%.2f,%.2f)-(%.2f,%.2f)", b.Left, b.Top, b.Right, b.Bottom),
		"inverse": path.IsInverseFillType(),
	}
}
