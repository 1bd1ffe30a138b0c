package collector

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmcpheron/ccc-schedule-collector/internal/parser"
)

// ExtractRows walks every table row of the document and produces the
// parser's positional row sequence. Cells that span multiple columns are
// padded with empty cells so every row addresses the same column layout;
// link hrefs and image sources are carried along for the cells that have
// them (bookstore links, mailto addresses, the ZTC marker image).
func ExtractRows(r io.Reader) ([]parser.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var rows []parser.RawRow
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row parser.RawRow
		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			cell := parser.Cell{Text: strings.TrimSpace(td.Text())}
			if a := td.Find("a").First(); a.Length() > 0 {
				cell.Href = a.AttrOr("href", "")
			}
			if img := td.Find("img").First(); img.Length() > 0 {
				cell.ImgSrc = img.AttrOr("src", "")
			}
			if i == 0 {
				row.HeaderClass = td.AttrOr("class", "")
			}

			span := 1
			if cs, ok := td.Attr("colspan"); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(cs)); err == nil && n > 1 {
					span = n
					row.Wide = true
				}
			}
			row.Cells = append(row.Cells, cell)
			for pad := 1; pad < span; pad++ {
				row.Cells = append(row.Cells, parser.Cell{})
			}
		})
		rows = append(rows, row)
	})
	return rows, nil
}
