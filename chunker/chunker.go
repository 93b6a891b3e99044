// Package chunker splits extracted document text into retrievable chunks.
//
// The splitter works in three passes, in precedence order:
//
//  1. Fenced code spans are isolated first, so their contents are never
//     re-split by prose rules. Each fenced span becomes exactly one Code
//     chunk, delimiters included.
//  2. The remaining prose spans are partitioned by lightweight ATX header
//     lines. A header's scope ends at the next header line regardless of
//     level; heading depth is not tracked.
//  3. Preamble and header bodies are split into paragraphs on blank lines.
//
// Split is a total function: any string input, including empty or
// structureless text, yields an ordered (possibly empty) chunk sequence.
package chunker

import (
	"regexp"
	"strings"

	"github.com/hatmanstack/docpipe/core"
)

const fenceMarker = "```"

var (
	// A header line: one or more '#' followed by a space, anchored to line start.
	headerLine = regexp.MustCompile(`(?m)^#+ .*`)

	// One or more blank lines (lines containing only whitespace).
	blankLines = regexp.MustCompile(`\n\s*\n`)
)

// span is one segment of the fence-isolation pass.
type span struct {
	text   string
	fenced bool
}

// Split partitions text into an ordered sequence of typed, header-annotated
// chunks. Chunks are emitted in strict document order: code chunks stay
// interleaved with the surrounding prose at the position they occurred.
//
// A code chunk inherits the most recent header line seen in a preceding
// prose span; fenced spans neither carry nor reset header scope. Header
// lines are structural and never become chunks themselves.
func Split(text string) []core.Chunk {
	var chunks []core.Chunk

	// Current header scope for code chunks, carried across prose spans.
	scope := ""

	for _, s := range splitFences(text) {
		if s.fenced {
			content := strings.TrimSpace(s.text)
			if fenceIsEmpty(content) {
				continue
			}
			chunks = append(chunks, core.Chunk{
				Content: content,
				Type:    core.ChunkTypeCode,
				Header:  scope,
			})
			continue
		}
		chunks = splitProse(chunks, s.text, &scope)
	}

	return chunks
}

// fenceIsEmpty reports whether a fenced span holds nothing but its own
// delimiters and whitespace. The delimiters stay part of the chunk content,
// so emptiness is judged on what sits between them.
func fenceIsEmpty(content string) bool {
	inner := strings.TrimPrefix(content, fenceMarker)
	inner = strings.TrimSuffix(inner, fenceMarker)
	return strings.TrimSpace(inner) == ""
}

// splitFences partitions text into an alternating sequence of prose and
// fenced spans. Fences match non-greedily: a span runs from an opening
// marker to the nearest closing marker. An opening marker with no close
// consumes the remainder of the text as a single fenced span, so the pass
// never fails on malformed input.
func splitFences(text string) []span {
	var spans []span
	for text != "" {
		open := strings.Index(text, fenceMarker)
		if open == -1 {
			spans = append(spans, span{text: text})
			break
		}
		if open > 0 {
			spans = append(spans, span{text: text[:open]})
		}
		rel := strings.Index(text[open+len(fenceMarker):], fenceMarker)
		if rel == -1 {
			// Unterminated fence: consume to end of input.
			spans = append(spans, span{text: text[open:], fenced: true})
			break
		}
		end := open + len(fenceMarker) + rel + len(fenceMarker)
		spans = append(spans, span{text: text[open:end], fenced: true})
		text = text[end:]
	}
	return spans
}

// splitProse expands one prose span into paragraph chunks, appending to
// chunks. Text before the first header line carries the empty header;
// each header line governs everything up to the next header line or the
// end of the span. scope is updated to the last header line seen, which
// is the header a following code chunk inherits.
func splitProse(chunks []core.Chunk, text string, scope *string) []core.Chunk {
	headers := headerLine.FindAllStringIndex(text, -1)

	preambleEnd := len(text)
	if len(headers) > 0 {
		preambleEnd = headers[0][0]
	}
	chunks = appendParagraphs(chunks, text[:preambleEnd], "")

	for i, loc := range headers {
		header := strings.TrimSpace(text[loc[0]:loc[1]])
		bodyEnd := len(text)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		*scope = header
		chunks = appendParagraphs(chunks, text[loc[1]:bodyEnd], header)
	}

	return chunks
}

// appendParagraphs splits body on blank lines and appends one Paragraph
// chunk per non-empty candidate. A header line with an empty body
// contributes nothing.
func appendParagraphs(chunks []core.Chunk, body, header string) []core.Chunk {
	for _, candidate := range blankLines.Split(body, -1) {
		content := strings.TrimSpace(candidate)
		if content == "" {
			continue
		}
		chunks = append(chunks, core.Chunk{
			Content: content,
			Type:    core.ChunkTypeParagraph,
			Header:  header,
		})
	}
	return chunks
}
