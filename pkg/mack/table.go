package mack

import (
	"strings"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertTable renders the table as a monospace grid inside a fenced code
// block: header row, a --- separator matching the header's column count,
// then the body rows. Column widths are not aligned.
func (c *converter) convertTable(n *extast.Table) []slack.Block {
	var lines []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *extast.TableHeader:
			cells := c.tableRowCells(row)
			lines = append(lines, formatTableRow(cells))
			lines = append(lines, formatTableRow(separatorCells(len(cells))))
		case *extast.TableRow:
			lines = append(lines, formatTableRow(c.tableRowCells(row)))
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return []slack.Block{newSection(fenceText(strings.Join(lines, "\n")))}
}

// tableRowCells renders every cell of a row. Within a cell, image children
// contribute their title or URL as a literal token and everything else goes
// through the mrkdwn renderer; child texts are joined by single spaces.
func (c *converter) tableRowCells(row ast.Node) []string {
	var cells []string
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*extast.TableCell)
		if !ok {
			continue
		}
		var parts []string
		for ph := cell.FirstChild(); ph != nil; ph = ph.NextSibling() {
			var text string
			if img, ok := ph.(*ast.Image); ok {
				text = string(img.Title)
				if text == "" {
					text = string(img.Destination)
				}
			} else {
				text = c.renderPhrasing(ph, dialectMrkdwn)
			}
			if text == "" {
				continue
			}
			parts = append(parts, text)
		}
		cells = append(cells, strings.Join(parts, " "))
	}
	return cells
}

func formatTableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func separatorCells(n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	return cells
}
