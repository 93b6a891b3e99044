package extract

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Title derives a display title for a document. For Markdown sources it is
// the first level-1 heading, falling back to the first level-2 heading; for
// everything else, or when no heading exists, the filename is used with its
// extension removed and words capitalized.
func Title(path, content string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		if title := titleFromMarkdown([]byte(content)); title != "" {
			return title
		}
	}
	return titleFromFilename(path)
}

// titleFromMarkdown walks the goldmark AST and returns the first H1, or the
// first H2 if no H1 precedes it. Returns "" when the document has neither.
func titleFromMarkdown(content []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	var firstH1, firstH2 string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headingText := nodeText(heading, content)
		switch {
		case heading.Level == 1 && firstH1 == "":
			firstH1 = headingText
			return ast.WalkStop, nil
		case heading.Level == 2 && firstH2 == "":
			firstH2 = headingText
		}
		return ast.WalkContinue, nil
	})

	if firstH1 != "" {
		return firstH1
	}
	return firstH2
}

// nodeText collects the text segments directly under a node.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			sb.Write(textNode.Segment.Value(source))
		}
	}
	return sb.String()
}

// titleFromFilename strips the extension and capitalizes each word.
func titleFromFilename(path string) string {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
