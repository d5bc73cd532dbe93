package report

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// summaryTemplate joins the file items with newlines, so the last one runs
// straight into </ul>.
const summaryTemplate = `<html><body>
<h1>Assignment Summary</h1>
<ul>
{{range $i, $f := .Files}}{{if $i}}
{{end}}<li><a href="{{$f.RelPath}}">{{$f.Name}}</a> - {{$f.Lines}} lines</li>{{end}}</ul>
<h2>Identifiers</h2>
<ul>
{{range .Identifiers}}<li>{{.}}</li>
{{end}}</ul>
</body></html>
`

const indexTemplate = `<!DOCTYPE html>
<html><body>
<h1>All Assignments</h1>
<ul>
{{range .}}<li><a href="{{.Href}}">Assignment {{.Assignment}}</a></li>
{{end}}</ul>
</body></html>
`

var (
	summaryTpl = template.Must(template.New("summary").Parse(summaryTemplate))
	indexTpl   = template.Must(template.New("index").Parse(indexTemplate))
)

// IndexEntry is one link of the course index.
type IndexEntry struct {
	Assignment int
	Href       string // relative to the course directory, '/'-separated
}

// RenderSummaryHTML renders the assignment page for s.
func RenderSummaryHTML(s Summary) ([]byte, error) {
	var buf bytes.Buffer
	if err := summaryTpl.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("render summary a%d: %w", s.Assignment, err)
	}
	return buf.Bytes(), nil
}

// IndexEntries links every summary relative to courseDir.
func IndexEntries(courseDir string, sums []Summary) ([]IndexEntry, error) {
	out := make([]IndexEntry, 0, len(sums))
	for _, s := range sums {
		rel, err := filepath.Rel(courseDir, s.HTMLPath())
		if err != nil {
			return nil, fmt.Errorf("link summary a%d: %w", s.Assignment, err)
		}
		out = append(out, IndexEntry{Assignment: s.Assignment, Href: filepath.ToSlash(rel)})
	}
	return out, nil
}

// RenderIndexHTML renders the course index page.
func RenderIndexHTML(entries []IndexEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTpl.Execute(&buf, entries); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}
