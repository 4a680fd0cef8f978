// htmlimg.go interprets raw HTML blocks. Only <img> tags are meaningful:
// each one becomes an Image block; all other HTML content is dropped.
package mack

import (
	"strings"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
)

func (c *converter) convertHTMLBlock(n *ast.HTMLBlock) []slack.Block {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(c.source))
	}
	if n.HasClosure() {
		sb.Write(n.ClosureLine.Value(c.source))
	}

	var blocks []slack.Block
	for _, img := range extractImages(sb.String()) {
		blocks = append(blocks, newImage(img.src, img.alt))
	}
	return blocks
}

type htmlImage struct {
	src string
	alt string
}

// extractImages parses an HTML fragment and collects the src/alt attributes
// of every <img> element. A fragment that cannot be parsed yields no images;
// the failure never propagates.
func extractImages(fragment string) []htmlImage {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var images []htmlImage
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			var img htmlImage
			for _, attr := range n.Attr {
				switch attr.Key {
				case "src":
					img.src = attr.Val
				case "alt":
					img.alt = attr.Val
				}
			}
			if img.src != "" {
				images = append(images, img)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return images
}
