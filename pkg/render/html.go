package render

import (
	"bytes"
	"html/template"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// DefaultTitle is the HTML page heading used when Options leaves Title
// unset.
const DefaultTitle = "GraphQL Schema"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 2rem; background: #fafafa; }
  h1 { font-size: 1.4rem; }
  .legend { display: flex; gap: 1.5rem; margin-bottom: 1rem; }
  .legend .entry { display: flex; align-items: center; gap: 0.4rem; font-size: 0.9rem; }
  .legend .swatch { width: 1rem; height: 1rem; border: 1px solid #666; display: inline-block; }
  .diagram { overflow: auto; background: white; border: 1px solid #ddd; padding: 1rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="legend">
{{- range .Legend}}
  <span class="entry"><span class="swatch" style="background: {{.Color}}"></span>{{.Label}}</span>
{{- end}}
</div>
<div class="diagram">
{{.SVG}}
</div>
</body>
</html>
`))

type legendEntry struct {
	Label string
	Color string
}

type pageData struct {
	Title  string
	Legend []legendEntry
	SVG    template.HTML
}

// RenderHTML wraps rendered SVG in a standalone HTML page with a
// legend mapping each node category to its fill color. The SVG bytes
// must come from [RenderSVG]; they are embedded without escaping.
func RenderHTML(svg []byte, opts Options) ([]byte, error) {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	data := pageData{
		Title: title,
		Legend: []legendEntry{
			{Label: "Object / Interface / Union", Color: opts.color(viz.CategoryObject)},
			{Label: "Input object", Color: opts.color(viz.CategoryInput)},
			{Label: "Enum", Color: opts.color(viz.CategoryEnum)},
		},
		SVG: template.HTML(svg),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render HTML page")
	}
	return buf.Bytes(), nil
}
