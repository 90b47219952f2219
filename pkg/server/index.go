package server

import (
	"fmt"
	"html/template"
	"net/http"
	"slices"

	"github.com/matzehuels/colplot/pkg/gallery"
	"github.com/matzehuels/colplot/pkg/pipeline"
)

// indexFigure is the view model for one gallery entry on the index page.
type indexFigure struct {
	ID      string
	Name    string
	Created string
	Meta    string
	Preview string // URL of an image artifact, if one exists
	Links   []indexLink
}

// indexLink is one artifact link on the index page.
type indexLink struct {
	Format string
	URL    string
}

// indexView builds the page model from gallery records.
func indexView(recs []*gallery.Record) []indexFigure {
	figures := make([]indexFigure, 0, len(recs))
	for _, rec := range recs {
		fig := indexFigure{
			ID:      rec.ID,
			Name:    rec.Name,
			Created: rec.CreatedAt.Format("2006-01-02 15:04"),
			Meta: fmt.Sprintf("%s, %dx%d, %d surfaces",
				rec.Request.FigType, rec.Rows, rec.Columns, rec.Surfaces),
		}
		for _, format := range rec.Formats {
			url := fmt.Sprintf("/figures/%s.%s", rec.ID, format)
			fig.Links = append(fig.Links, indexLink{Format: format, URL: url})
		}
		// Browsers can inline svg and png; prefer svg for crisp scaling.
		if slices.Contains(rec.Formats, pipeline.FormatSVG) {
			fig.Preview = fmt.Sprintf("/figures/%s.%s", rec.ID, pipeline.FormatSVG)
		} else if slices.Contains(rec.Formats, pipeline.FormatPNG) {
			fig.Preview = fmt.Sprintf("/figures/%s.%s", rec.ID, pipeline.FormatPNG)
		}
		figures = append(figures, fig)
	}
	return figures
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	recs, err := s.cfg.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexView(recs)); err != nil {
		s.cfg.Logger.Error("render index page", "error", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>colplot gallery</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 900px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-weight: 600; }
  p.empty { color: #777; }
  .figure { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin-bottom: 1.5rem; }
  .figure img { max-width: 100%; height: auto; }
  .meta { color: #777; font-size: 0.875rem; margin: 0.25rem 0 0.75rem; }
  .links a { margin-right: 0.75rem; }
</style>
</head>
<body>
<h1>colplot gallery</h1>
{{if not .}}<p class="empty">No figures yet. POST /api/figures to add one.</p>{{end}}
{{range .}}
<div class="figure">
  <h2>{{.Name}}</h2>
  <p class="meta">{{.Meta}} &middot; {{.Created}} &middot; {{.ID}}</p>
  {{if .Preview}}<a href="{{.Preview}}"><img src="{{.Preview}}" alt="{{.Name}}"></a>{{end}}
  <p class="links">{{range .Links}}<a href="{{.URL}}">{{.Format}}</a>{{end}}</p>
</div>
{{end}}
</body>
</html>
`
