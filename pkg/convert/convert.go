// Package convert runs one grayscale-and-annotate pass over a single image.
package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PhantomInTheWire/bwconvert/pkg/codec"
	"github.com/PhantomInTheWire/bwconvert/pkg/naming"
	"github.com/PhantomInTheWire/bwconvert/pkg/overlay"
	"github.com/PhantomInTheWire/bwconvert/pkg/probe"
	"github.com/PhantomInTheWire/bwconvert/pkg/tone"
)

// Publisher copies a finished file somewhere else and reports where.
type Publisher interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

type Options struct {
	// JPEGQuality applies to .jpg/.jpeg outputs; out-of-range means the codec default.
	JPEGQuality int
	// Publisher is optional.
	Publisher Publisher
	// Renderer is created and closed by Run when nil.
	Renderer *overlay.Renderer
	Logger   *slog.Logger
}

type Result struct {
	Input     string
	Output    string
	Width     int
	Height    int
	Meta      probe.Metadata
	Location  string
	Published string
}

// Run converts the image at input and writes it next to it under the
// derived name. Metadata lookups never fail the run; a missing input, an
// undecodable image or a failed write does.
func Run(ctx context.Context, input string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if !probe.Exists(input) {
		return nil, &Error{Kind: FileNotFound, Path: input}
	}

	src, err := codec.Decode(input)
	if err != nil {
		log.Debug("decode failed", "path", input, "error", err)
		return nil, &Error{Kind: DecodeFailure, Path: input, Err: err}
	}

	b := src.Bounds()
	res := &Result{
		Input:    input,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Meta:     probe.Probe(input),
		Location: probe.Location(input),
	}
	log.Debug("decoded", "path", input, "width", res.Width, "height", res.Height,
		"size_kb", res.Meta.SizeKB, "modified", res.Meta.Modified)

	frame := tone.ToDisplayable(tone.ToGrayscale(src))
	res.Output = naming.DeriveOutputName(input)

	r := opts.Renderer
	if r == nil {
		if r, err = overlay.NewRenderer(); err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
		defer r.Close()
	}
	r.DrawLines(frame, OverlayLines(res.Width, res.Height, res.Meta, res.Location))
	r.DrawWatermark(frame, overlay.Watermark)

	if err := codec.Encode(res.Output, frame, opts.JPEGQuality); err != nil {
		log.Debug("encode failed", "path", res.Output, "error", err)
		return nil, &Error{Kind: EncodeFailure, Path: res.Output, Err: err}
	}
	log.Info("saved", "output", res.Output)

	if opts.Publisher != nil {
		loc, err := opts.Publisher.Upload(ctx, res.Output)
		if err != nil {
			log.Debug("publish failed", "path", res.Output, "error", err)
			return res, &Error{Kind: PublishFailure, Path: res.Output, Err: err}
		}
		res.Published = loc
	}
	return res, nil
}

// OverlayLines builds the info block in render order. Size is truncated to
// whole kilobytes.
func OverlayLines(width, height int, meta probe.Metadata, location string) []string {
	return []string{
		fmt.Sprintf("Resolution: %dx%d", width, height),
		fmt.Sprintf("Size: %d KB", int(meta.SizeKB)),
		"Modified: " + meta.Modified,
		location,
	}
}
