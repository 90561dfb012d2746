package render

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"heatsim/internal/core"
)

// Recorder writes snapshots as frames of an MJPEG AVI file.
type Recorder struct {
	aw      mjpeg.AviWriter
	n       int
	scale   int
	frames  int
	options *jpeg.Options
	buf     bytes.Buffer
}

// NewRecorder creates path and prepares it for n×n snapshots drawn at scale.
func NewRecorder(path string, n, scale, fps int) (*Recorder, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 10
	}
	aw, err := mjpeg.New(path, int32(n*scale), int32(n*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{aw: aw, n: n, scale: scale, options: &jpeg.Options{Quality: 90}}, nil
}

// AddFrame encodes s as the next frame.
func (r *Recorder) AddFrame(s core.Snapshot) error {
	if s.Dimension != r.n {
		return fmt.Errorf("%w: frame %d, video %d", core.ErrDimensionMismatch, s.Dimension, r.n)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, Image(s, r.scale), r.options); err != nil {
		return err
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index and closes the file.
func (r *Recorder) Close() error {
	return r.aw.Close()
}
