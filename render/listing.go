package render

import (
	"html/template"
	"io"
	"net/url"
	"path"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

const listingTpl = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
</head>
<body>
    <h1>{{ .Title }}</h1>
    <table>
        <tr><th>Name</th><th>Size</th><th>Modified</th></tr>
        {{- if .Parent }}
        <tr><td><a href="{{ .Parent }}">..</a></td><td></td><td></td></tr>
        {{- end }}
        {{- range .Entries }}
        <tr>
            <td><a href="{{ .Href }}">{{ .Name }}{{ if .IsDir }}/{{ end }}</a></td>
            <td>{{ if not .IsDir }}{{ .Size }}{{ end }}</td>
            <td>{{ .Modified }}</td>
        </tr>
        {{- end }}
    </table>
</body>
</html>
`

var listing = template.Must(template.New("listing").Parse(listingTpl))

// ListingEntry is one row of a directory page.
type ListingEntry struct {
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

type listingRow struct {
	Name     string
	IsDir    bool
	Href     string
	Size     string
	Modified string
}

type listingData struct {
	Title   string
	Parent  string
	Entries []listingRow
}

// Listing renders the directory dir ("/" for the root), directories first.
// Ages are relative to now.
func Listing(w io.Writer, dir string, entries []ListingEntry, now time.Time) error {
	dir = path.Clean("/" + dir)

	sorted := append([]ListingEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsDir != sorted[j].IsDir {
			return sorted[i].IsDir
		}
		return sorted[i].Name < sorted[j].Name
	})

	data := listingData{Title: "Index of " + dir}
	if dir != "/" {
		data.Parent = href(path.Dir(dir), true)
	}
	for _, e := range sorted {
		row := listingRow{
			Name:  e.Name,
			IsDir: e.IsDir,
			Href:  href(path.Join(dir, e.Name), e.IsDir),
			Size:  humanize.Bytes(uint64(e.Size)),
		}
		if !e.ModTime.IsZero() {
			row.Modified = humanize.RelTime(e.ModTime, now, "ago", "from now")
		}
		data.Entries = append(data.Entries, row)
	}
	return listing.Execute(w, data)
}

func href(p string, isDir bool) string {
	if isDir && p != "/" {
		p += "/"
	}
	return (&url.URL{Path: p}).String()
}
