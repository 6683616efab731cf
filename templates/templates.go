package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	// Money is rounded to 2 decimals at presentation time only; the
	// aggregation itself never rounds
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"date": func(v interface{}) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("02 Jan 2006")
		case *time.Time:
			if t == nil {
				return ""
			}
			return t.Format("02 Jan 2006")
		}
		return ""
	},
}

var tmpl = template.Must(template.New("documents").Funcs(funcs).ParseFS(files, "*.html"))

// Render executes the named document template with the given data and
// returns the HTML string to feed the PDF renderer
func Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %v", name, err)
	}
	return buf.String(), nil
}
