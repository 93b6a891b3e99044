package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hatmanstack/docpipe/core"
)

// vectorLine is the wire shape of one line of vector output.
type vectorLine struct {
	Content   string         `json:"content"`
	Metadata  vectorMetadata `json:"metadata"`
	Embedding []float32      `json:"embedding"`
}

type vectorMetadata struct {
	Type   string `json:"type"`
	Header string `json:"header"`
}

// writeVectors writes the embedded chunk records of a document as JSON
// lines under outputDir, one line per chunk in document order. The file
// lands at vectors/<document-id>/<source-stem>.jsonl; the returned path is
// relative to outputDir.
func writeVectors(outputDir string, doc *core.DocumentRecord, records []*core.ChunkRecord) (string, error) {
	stem := sourceStem(doc.SourcePath)
	relPath := filepath.Join("vectors", doc.Id, stem+".jsonl")
	fullPath := filepath.Join(outputDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, record := range records {
		line := vectorLine{
			Content: record.Content,
			Metadata: vectorMetadata{
				Type:   record.Type.String(),
				Header: record.Header,
			},
			Embedding: record.Vector,
		}
		if err := enc.Encode(line); err != nil {
			return "", fmt.Errorf("encoding chunk %d: %w", record.Seq, err)
		}
	}

	if err := w.Flush(); err != nil {
		return "", err
	}
	return relPath, nil
}

// sourceStem returns the source file name without its extension.
func sourceStem(sourcePath string) string {
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
