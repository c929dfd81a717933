package handler

import (
	"html/template"
	"net/http"

	"github.com/sudo-self/links/web"
)

// pageTmpl is the single-page template set. The site has one public page, so
// there is no base-layout/partial split here.
var pageTmpl = template.Must(template.ParseFS(web.TemplateFS, "templates/index.html"))

// render executes the named template as a full HTML page.
func render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}
