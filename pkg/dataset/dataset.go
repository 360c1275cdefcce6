// Package dataset loads summarization training documents from JSON and
// gzipped JSON files.
package dataset

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrUnknownExtension is returned for files that are neither .json nor .gz.
var ErrUnknownExtension = errors.New("dataset: unknown file extension")

// Document is one training example in the extractive summarization format:
// source sentences as token slices, optional per-sentence oracle labels,
// and the abstractive target summary.
type Document struct {
	Source [][]string `json:"src"`
	Labels []int      `json:"labels,omitempty"`
	Target string     `json:"tgt,omitempty"`
}

// Load reads a document list from path. A .json file is decoded directly;
// a .gz file is gunzipped first. The second return value is path with its
// extension stripped (.json.gz loses both extensions), which callers use
// as the base name for derived artifacts.
func Load(path string) ([]Document, string, error) {
	base, ext := splitExt(path)

	var raw []byte
	switch ext {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		raw = data
	case ".gz":
		// Strip the inner extension too, eg "train.json.gz" -> "train".
		base, _ = splitExt(base)
		data, err := readGzip(path)
		if err != nil {
			return nil, "", err
		}
		raw = data
	default:
		return nil, "", fmt.Errorf("%w: %q (want .json or .gz)", ErrUnknownExtension, ext)
	}

	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, "", fmt.Errorf("dataset: decode %s: %w", path, err)
	}
	return docs, base, nil
}

func readGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: gunzip %s: %w", path, err)
	}
	defer func() { _ = gz.Close() }()

	return io.ReadAll(gz)
}

func splitExt(path string) (base, ext string) {
	ext = filepath.Ext(path)
	return strings.TrimSuffix(path, ext), ext
}

// Stats summarizes a loaded document list, used by the inspect command.
type Stats struct {
	Documents    int
	Sentences    int
	Tokens       int
	Labeled      int
	WithTarget   int
	MaxSentences int
}

// Describe computes corpus statistics over docs.
func Describe(docs []Document) Stats {
	var st Stats
	st.Documents = len(docs)
	for _, d := range docs {
		st.Sentences += len(d.Source)
		if len(d.Source) > st.MaxSentences {
			st.MaxSentences = len(d.Source)
		}
		for _, sent := range d.Source {
			st.Tokens += len(sent)
		}
		if len(d.Labels) > 0 {
			st.Labeled++
		}
		if d.Target != "" {
			st.WithTarget++
		}
	}
	return st
}
