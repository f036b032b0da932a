package presenter

import (
	"embed"
	htmltemplate "html/template"
	"io"
	"strconv"
	texttemplate "text/template"

	"github.com/pageza/dapur-ai/backend/internal/model"
)

//go:embed templates/*
var templateFS embed.FS

// HTMLTemplateName is the page rendered by the web front end.
const HTMLTemplateName = "page.html"

var funcs = map[string]interface{}{
	"grams": func(v model.Amount) string { return strconv.FormatFloat(float64(v), 'f', -1, 64) },
	"inc":   func(i int) int { return i + 1 },
}

var textTemplate = texttemplate.Must(
	texttemplate.New("result.txt").Funcs(funcs).ParseFS(templateFS, "templates/result.txt"),
)

// HTMLTemplate parses the web page template.
func HTMLTemplate() *htmltemplate.Template {
	return htmltemplate.Must(
		htmltemplate.New(HTMLTemplateName).Funcs(funcs).ParseFS(templateFS, "templates/"+HTMLTemplateName),
	)
}

// PageData is what the HTML template receives.
type PageData struct {
	Snapshot
	Ingredients string
	Lang        string
	// StatusClearAfter is the delay in milliseconds before the page hides
	// the status line; 0 keeps it.
	StatusClearAfter int64
}

// RenderText writes a terminal rendering of s.
func RenderText(w io.Writer, s Snapshot) error {
	return textTemplate.Execute(w, s)
}
