// Package goquery implements document loading, segmentation and asset
// path rewriting on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmlchop"
)

// Ensure Loader implements htmlchop.Loader at compile time.
var _ htmlchop.Loader = (*Loader)(nil)

// Loader parses HTML files into htmlchop Documents.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the file at path. The parser is tolerant:
// malformed markup yields a best-effort tree. The head block is serialized
// once here and reused by every emitted fragment; a document without a
// head yields an empty string, which the emitter wraps in a synthesized
// empty <head>.
func (l *Loader) Load(path string) (*htmlchop.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, htmlchop.Errorf(htmlchop.ENOTFOUND, "input file %q not found", path)
		}
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to parse %q: %v", path, err)
	}

	head := ""
	if sel := doc.Find("head").First(); sel.Length() > 0 {
		inner, err := sel.Html()
		if err != nil {
			return nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to serialize head of %q: %v", path, err)
		}
		head = strings.TrimSpace(inner)
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to serialize body of %q: %v", path, err)
	}

	return &htmlchop.Document{
		Path: path,
		Head: head,
		Body: body,
	}, nil
}
