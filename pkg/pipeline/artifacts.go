package pipeline

import (
	"bytes"
	"context"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/render"
	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// renderArtifacts generates every requested format from the graph.
// SVG is laid out once and shared by the formats derived from it; JSON
// comes straight from the graph and needs no layout.
func renderArtifacts(ctx context.Context, g *viz.Graph, opts Options) (map[string][]byte, error) {
	var svg []byte
	if opts.NeedsSVG() {
		dot := render.ToDOT(g, opts.RenderOptions())
		rendered, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		svg = rendered
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svg
		case FormatHTML:
			data, err = render.RenderHTML(svg, opts.RenderOptions())
		case FormatJSON:
			var buf bytes.Buffer
			if werr := viz.WriteJSON(g, &buf); werr != nil {
				err = errors.Wrap(errors.ErrCodeRenderFailed, werr, "serialize graph")
			} else {
				data = buf.Bytes()
			}
		case FormatPNG:
			data, err = render.ToPNG(svg, opts.PNGScale)
		case FormatPDF:
			data, err = render.ToPDF(svg)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
