package render

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/dshills/screentime/internal/content"
	"github.com/dshills/screentime/internal/scoring"
	"github.com/dshills/screentime/internal/survey"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"score":    FormatScore,
	"insights": Insights,
}).ParseFS(templateFS, "templates/*.html"))

// PanelData is what the result panel template renders.
type PanelData struct {
	Prediction scoring.Prediction
	Input      survey.Input
}

// PageData is what the full page template renders. Result is nil until a
// valid survey has been submitted.
type PageData struct {
	Site    *content.Site
	Version string
	Form    url.Values
	Errors  []survey.FieldError
	Result  *PanelData
}

// Value returns the submitted form value for a field, for re-populating inputs.
func (d PageData) Value(field string) string {
	if d.Form == nil {
		return ""
	}
	return d.Form.Get(field)
}

// Panel writes the HTML result panel fragment.
func Panel(w io.Writer, p scoring.Prediction, in survey.Input) error {
	return templates.ExecuteTemplate(w, "panel.html", PanelData{Prediction: p, Input: in})
}

// Page writes the full HTML page.
func Page(w io.Writer, d PageData) error {
	return templates.ExecuteTemplate(w, "page.html", d)
}

// Errors writes the HTML list of field errors shown above the form.
func Errors(w io.Writer, errs []survey.FieldError) error {
	return templates.ExecuteTemplate(w, "errors.html", errs)
}
