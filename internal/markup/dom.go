package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// TreeExtractor is the structural alternative to ScanExtractor: it
// parses the raw markup and renders the matched element's subtree, so
// it is immune to the depth-scan's confusion over tags inside comments
// or attribute values. Matching strategy is the same: id first, then
// first usable class.
type TreeExtractor struct{}

func (TreeExtractor) Extract(raw string, ref SectionRef) string {
	if raw == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	tag := strings.ToLower(ref.Tag)
	if tag == "" {
		tag = "div"
	}

	var node *html.Node
	if ref.ID != "" {
		node = findElement(doc, tag, func(n *html.Node) bool {
			return attrValue(n, "id") == ref.ID
		})
	}
	if node == nil {
		if cls := firstUsableClass(ref.Classes); cls != "" {
			node = findElement(doc, tag, func(n *html.Node) bool {
				return hasClass(n, cls)
			})
		}
	}
	if node == nil {
		return ""
	}

	var sb strings.Builder
	if err := html.Render(&sb, node); err != nil {
		return ""
	}
	return sb.String()
}

func findElement(n *html.Node, tag string, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag, match); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, cls string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == cls {
			return true
		}
	}
	return false
}
