package printer

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/relcat/relcat/models"
)

// Out is where tables are printed.
var Out io.Writer = os.Stdout

func newTable(columns ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(columns...).WithWriter(Out)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}

// Apps prints one row per (application, platform).
func Apps(refs []models.AppRef) {
	tbl := newTable("App", "Platform", "Directory")
	for _, ref := range refs {
		tbl.AddRow(ref.Name, ref.Platform, ref.Dir())
	}
	tbl.Print()
}

// Versions prints the catalog in insertion order, marking the latest version.
func Versions(c *models.Catalog) {
	tbl := newTable("Version", "Binary", "Notes", "Latest")
	latest := c.Latest()
	for _, v := range c.Versions() {
		e, _ := c.Get(v)
		mark := ""
		if v == latest {
			mark = "*"
		}
		tbl.AddRow(v, e.Exe, e.Txt, mark)
	}
	tbl.Print()
}
