// Package markdown rewrites link destinations in rendered documentation
// text without disturbing the rest of the formatting.
package markdown

import (
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// Rewrite replaces link destinations in src according to targets, keyed by
// the old destination. The markdown is parsed to AST only to learn
// which destinations actually occur as links; the replacement itself is
// textual so that everything around the links survives byte-for-byte.
func Rewrite(src string, targets map[string]string) string {
	if len(targets) == 0 {
		return src
	}

	used := usedDestinations(src, targets)
	if len(used) == 0 {
		return src
	}

	out := src
	for _, dest := range used {
		// Inline form: [text](dest)
		out = strings.ReplaceAll(out, "]("+dest+")", "]("+targets[dest]+")")
	}
	return rewriteReferenceDefs(out, used, targets)
}

// usedDestinations returns the destinations from targets that occur as link
// destinations in src, in first-seen order.
func usedDestinations(src string, targets map[string]string) []string {
	doc := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	var used []string
	seen := make(map[string]bool)
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if link, ok := node.(*ast.Link); ok {
			dest := string(link.Destination)
			if _, match := targets[dest]; match && !seen[dest] {
				seen[dest] = true
				used = append(used, dest)
			}
		}
		return ast.GoToNext
	})
	return used
}

// rewriteReferenceDefs handles reference-style definitions ("[ref]: dest"),
// which the AST walk does not surface as link nodes.
func rewriteReferenceDefs(src string, used []string, targets map[string]string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, dest := range used {
			suffix := "]: " + dest
			if strings.HasSuffix(trimmed, suffix) {
				lines[i] = strings.Replace(line, suffix, "]: "+targets[dest], 1)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
