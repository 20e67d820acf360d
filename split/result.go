package split

import (
	"fmt"
	"sync"

	"github.com/fwojciec/htmlchop"
)

// Result summarizes a completed split run. Sections and Subsections are
// counted during the sequential segmentation pass; Warn and Wrote are safe
// for concurrent use so parallel fragment writes can report into it.
type Result struct {
	Sections     int
	Subsections  int
	FilesWritten int
	Warnings     []htmlchop.Warning

	mu   sync.Mutex
	once map[string]bool
}

// Warn records a recoverable problem.
func (r *Result) Warn(code, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, htmlchop.Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// WarnOnce records a recoverable problem only the first time key is seen,
// reporting whether the warning was recorded. Later occurrences of the same
// key, such as one unresolved reference rewritten into many fragments, are
// dropped.
func (r *Result) WarnOnce(code, key, format string, args ...interface{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.once[key] {
		return false
	}
	if r.once == nil {
		r.once = make(map[string]bool)
	}
	r.once[key] = true
	r.Warnings = append(r.Warnings, htmlchop.Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
	return true
}

// Wrote records one successfully written file.
func (r *Result) Wrote() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FilesWritten++
}
