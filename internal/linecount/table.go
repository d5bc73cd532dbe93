package linecount

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable formats results as a table with a totals footer.
func RenderTable(results []Result) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"File", "Lines", "Size"})
	var lines int
	var size int64
	for _, r := range results {
		tbl.AppendRow(table.Row{r.Name, strconv.Itoa(r.Lines), humanize.Bytes(uint64(r.Size))})
		lines += r.Lines
		size += r.Size
	}
	tbl.AppendFooter(table.Row{
		"Total: " + strconv.Itoa(len(results)) + " files",
		strconv.Itoa(lines),
		humanize.Bytes(uint64(size)),
	})
	return tbl.Render()
}

// WriteTable writes RenderTable(results) followed by a newline.
func WriteTable(w io.Writer, results []Result) error {
	_, err := io.WriteString(w, RenderTable(results)+"\n")
	return err
}
