package engine

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/go-drift/neumorphic/pkg/errors"
)

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return &errors.Error{Op: "engine.WritePNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// SavePNG writes img to the file at path, replacing it.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &errors.Error{Op: "engine.SavePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &errors.Error{Op: "engine.SavePNG", Kind: errors.KindRender, Path: path, Err: cerr}
		}
	}()
	return WritePNG(f, img)
}
