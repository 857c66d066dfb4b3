// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"html/template"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// Page is the data every template receives.
type Page struct {
	Title   string
	Session *models.Session
	Notice  string
	Error   string
	Path    string
	Data    any
}

var sortLabels = map[catalog.SortOption]string{
	catalog.SortDefault:    "Featured",
	catalog.SortPriceAsc:   "Price: Low to High",
	catalog.SortPriceDesc:  "Price: High to Low",
	catalog.SortRatingDesc: "Top Rated",
}

var funcs = template.FuncMap{
	"sortLabel": func(o catalog.SortOption) string { return sortLabels[o] },
	"number":    func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"title":     catalog.CategoryTitle,
}

// Templates parses every embedded page.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}
