package discovery

import (
	"errors"
	"strings"

	"github.com/antchfx/xmlquery"
)

var (
	errNoRootElement   = errors.New("document has no root element")
	errMultipleRoots   = errors.New("document has more than one root element")
	errTextOutsideRoot = errors.New("document has text outside the root element")
)

func parseXML(body string) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	roots := 0
	// Text ahead of the first element is attached as a sibling of the document node.
	for _, first := range []*xmlquery.Node{doc.FirstChild, doc.NextSibling} {
		for n := first; n != nil; n = n.NextSibling {
			switch n.Type {
			case xmlquery.ElementNode:
				roots++
			case xmlquery.TextNode, xmlquery.CharDataNode:
				if strings.TrimSpace(n.Data) != "" {
					return nil, errTextOutsideRoot
				}
			}
		}
	}
	switch {
	case roots == 0:
		return nil, errNoRootElement
	case roots > 1:
		return nil, errMultipleRoots
	}
	return doc, nil
}

func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

func isElement(n *xmlquery.Node, space, local string) bool {
	return n.Type == xmlquery.ElementNode && n.Data == local && n.NamespaceURI == space
}

// child returns the first direct child element with the given name
func child(n *xmlquery.Node, space, local string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, space, local) {
			return c
		}
	}
	return nil
}

// descendants returns matching elements below n in document order
func descendants(n *xmlquery.Node, space, local string) []*xmlquery.Node {
	var found []*xmlquery.Node
	var walk func(*xmlquery.Node)
	walk = func(parent *xmlquery.Node) {
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xmlquery.ElementNode {
				continue
			}
			if isElement(c, space, local) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

// childText returns the text content of a direct child, or "" when absent
func childText(n *xmlquery.Node, space, local string) string {
	c := child(n, space, local)
	if c == nil {
		return ""
	}
	return c.InnerText()
}

// attr looks up an unqualified attribute. The second result reports
// whether the attribute exists at all.
func attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// canonicalizeNamespace moves root and every element below it that has no
// namespace into space. Elements in other namespaces are left alone.
func canonicalizeNamespace(root *xmlquery.Node, space string) {
	if root.Type == xmlquery.ElementNode && root.NamespaceURI == "" {
		root.NamespaceURI = space
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			canonicalizeNamespace(c, space)
		}
	}
}

// matchRoot reports whether doc's root element is local in space or in no
// namespace, rewriting the latter into space.
func matchRoot(doc *xmlquery.Node, space, local string) (*xmlquery.Node, bool) {
	root := rootElement(doc)
	if root == nil || root.Data != local {
		return nil, false
	}
	switch root.NamespaceURI {
	case space:
		return root, true
	case "":
		canonicalizeNamespace(root, space)
		return root, true
	default:
		return nil, false
	}
}
