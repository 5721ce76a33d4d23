package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/observability"
	"github.com/dav88dev/skillorbit/pkg/render/scene"
	"github.com/dav88dev/skillorbit/pkg/render/scene/sink"
	"github.com/dav88dev/skillorbit/pkg/render/scene/styles"
)

// Render encodes f in every requested format. Formats are rendered
// concurrently; each goroutine builds its own scene from f.
func Render(ctx context.Context, f engine.Frame, opts Options) (artifacts map[string][]byte, err error) {
	opts.SetRenderDefaults()
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	var mu sync.Mutex
	artifacts = make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(ctx, f, format, style, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, f engine.Frame, format string, style styles.Style, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return sink.RenderJSON(f, sink.WithJSONStyle(style.Name()), sink.WithJSONIndent())
	case FormatSVG:
		return sink.RenderSVG(scene.Build(f), svgOptions(style, opts)...), nil
	case FormatPDF:
		return sink.RenderPDF(ctx, scene.Build(f), svgOptions(style, opts)...)
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithPNGStyle(style), sink.WithScale(opts.Scale)}
		if opts.FontFile != "" {
			pngOpts = append(pngOpts, sink.WithFontFile(opts.FontFile))
		}
		return sink.RenderPNG(scene.Build(f), pngOpts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

func svgOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}
	return svgOpts
}
