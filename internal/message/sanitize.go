package message

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// mboxDropTags are removed from mailbox-sourced HTML bodies. Mail from
	// arbitrary senders can embed anything.
	mboxDropTags = map[string]bool{"script": true, "iframe": true, "object": true, "embed": true}

	// jsonDropTags are removed from JSON export bodies, which come from a
	// single trusted pipeline.
	jsonDropTags = map[string]bool{"script": true, "style": true}
)

// sanitizeHTML parses src as body content, removes the listed elements with
// their whole subtrees, and re-renders the rest. Input that cannot be parsed
// at all is returned unchanged.
func sanitizeHTML(src string, drop map[string]bool) string {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return src
	}

	var b strings.Builder
	for _, n := range nodes {
		if n.Type == html.ElementNode && drop[n.Data] {
			continue
		}
		dropElements(n, drop)
		if err := html.Render(&b, n); err != nil {
			return src
		}
	}
	return b.String()
}

func dropElements(n *html.Node, drop map[string]bool) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && drop[c.Data] {
			n.RemoveChild(c)
		} else {
			dropElements(c, drop)
		}
		c = next
	}
}
