package pipeline

import (
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/plot"
	"github.com/matzehuels/colplot/pkg/plot/sink"
)

// Render encodes the figure in each requested format.
func Render(fig *plot.Figure, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if fig == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no figure to render")
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		data, err := renderArtifact(fig, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderArtifact encodes the figure in a single format.
func renderArtifact(fig *plot.Figure, format string, opts Options) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatSVG:
		data, err = sink.RenderSVG(fig)
	case FormatPNG:
		data, err = sink.RenderPNG(fig, sink.WithDPI(opts.DPI))
	case FormatPDF:
		data, err = sink.RenderPDF(fig)
	case FormatJSON:
		data, err = sink.RenderJSON(fig,
			sink.WithJSONDataset(opts.Dataset),
			sink.WithJSONSeed(opts.Seed))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
	}

	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return data, nil
}
