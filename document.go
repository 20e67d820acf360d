package htmlchop

// Document is a parsed input file, reduced to the pieces the splitter
// needs: the serialized head block, shared by every emitted fragment, and
// the serialized body markup the Segmenter scans for boundaries.
type Document struct {
	Path string // source file the document was loaded from
	Head string // inner HTML of <head>, empty when the input had none
	Body string // inner HTML of <body>
}

// Loader reads and parses an HTML file. Implementations use a tolerant
// parser: malformed markup yields a best-effort tree rather than an error.
type Loader interface {
	// Load parses the file at path. Returns ENOTFOUND if the file does
	// not exist and EINVALID if no tree can be recovered at all.
	Load(path string) (*Document, error)
}
