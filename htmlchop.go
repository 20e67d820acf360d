// Package htmlchop splits a single large HTML document into a tree of
// smaller, self-contained HTML files, one per section and one per
// subsection heading, rewriting stylesheet and image references so each
// emitted file still renders from its new location.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package htmlchop
