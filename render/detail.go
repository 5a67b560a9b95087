// Package render writes the HTML pages of the release server.
package render

import (
	"html/template"
	"io"

	"github.com/relcat/relcat/models"
)

const detailTpl = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
</head>
<body>
    <h1>{{ .Title }}</h1>
    <ul>
        {{- if .ExeURL }}
        <li><a href="{{ .ExeURL }}">Download</a></li>
        {{- end }}
        {{- if .TxtURL }}
        <li><a href="{{ .TxtURL }}">Release notes</a></li>
        {{- end }}
    </ul>
</body>
</html>
`

var detail = template.Must(template.New("detail").Parse(detailTpl))

type detailData struct {
	Title  string
	ExeURL string
	TxtURL string
}

// Detail renders the page of one version, titled "<title> <app> - <version>".
func Detail(w io.Writer, title string, app models.AppRef, version string, entry *models.VersionEntry) error {
	return detail.Execute(w, detailData{
		Title:  title + " " + app.Name + " - " + version,
		ExeURL: entry.ExeURL,
		TxtURL: entry.TxtURL,
	})
}
