package mock

import "github.com/fwojciec/htmlchop"

var _ htmlchop.Loader = (*Loader)(nil)

// Loader is a mock implementation of htmlchop.Loader.
type Loader struct {
	LoadFn func(path string) (*htmlchop.Document, error)
}

func (l *Loader) Load(path string) (*htmlchop.Document, error) {
	return l.LoadFn(path)
}
