// Package document provides loading and chunking of source medical documents.
package document

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is the extracted text of one source file plus its origin.
type Document struct {
	Source string // Path relative to the data directory, e.g. "gale-encyclopedia.pdf"
	Text   string // Full extracted plain text
}

// Loader reads all recognized documents from a directory tree.
// Currently only PDF files are recognized; other files are skipped.
type Loader struct {
	extract func(path string) (string, error)
}

// NewLoader creates a Loader backed by the PDF text extractor.
func NewLoader() *Loader {
	return &Loader{extract: extractPDFText}
}

// Load walks dir recursively and returns a Document per PDF file, in
// deterministic lexical walk order. Extraction errors and an unreadable
// directory abort the load.
func (l *Loader) Load(dir string) ([]Document, error) {
	var docs []Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}

		text, err := l.extract(path)
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		docs = append(docs, Document{Source: rel, Text: text})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load documents from %s: %w", dir, err)
	}

	return docs, nil
}

// extractPDFText extracts the plain text content of a PDF file.
func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return buf.String(), nil
}
