package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// RenderSummaryMarkdown renders s as a Markdown page mirroring the HTML
// summary, with a file table instead of a link list.
func RenderSummaryMarkdown(s Summary) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1(fmt.Sprintf("Assignment %d Summary", s.Assignment))
	md.PlainText("")

	rows := make([][]string, 0, len(s.Files)+1)
	for _, f := range s.Files {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s)", f.Name, f.RelPath),
			f.Language,
			strconv.Itoa(f.Lines),
		})
	}
	rows = append(rows, []string{"**Total**", "", "**" + strconv.Itoa(s.TotalLines()) + "**"})
	md.Table(markdown.TableSet{
		Header: []string{"File", "Language", "Lines"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(s.Languages) > 0 {
		md.PlainText("Languages: " + strings.Join(s.Languages, ", "))
		md.PlainText("")
	}

	md.H2("Identifiers")
	md.PlainText("")
	if len(s.Identifiers) == 0 {
		md.PlainText("_none_")
	} else {
		md.BulletList(s.Identifiers...)
	}

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("render markdown a%d: %w", s.Assignment, err)
	}
	return buf.Bytes(), nil
}
