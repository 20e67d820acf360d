// Package split composes the loader, segmenter, rewriter and writer into
// the one-shot document splitting pipeline.
package split

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlchop"
	"golang.org/x/sync/errgroup"
)

// subsectionsDirName is the directory that holds a section's subsection
// fragments, nested inside the section's own directory.
const subsectionsDirName = "subsections"

// Splitter orchestrates one split run: load, segment, rewrite, emit.
// The Writer must be rooted at the same directory passed to Run as
// outputDir, since rewritten asset paths are computed against it.
type Splitter struct {
	Loader    htmlchop.Loader
	Segmenter htmlchop.Segmenter
	Rewriter  htmlchop.Rewriter
	Writer    htmlchop.FragmentWriter

	// Assets is consulted only under the copy-assets policy.
	Assets htmlchop.AssetCopier

	Logger *slog.Logger
	Config htmlchop.Config
}

// Run splits the document at inputPath into fragments under outputDir.
// assetRoot may be empty, in which case no references are rewritten and
// no assets are copied. Only load-time failures return an error; every
// per-fragment or per-asset problem is recorded as a warning on the
// result and the run continues.
func (s *Splitter) Run(ctx context.Context, inputPath, outputDir, assetRoot string) (*Result, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	doc, err := s.Loader.Load(inputPath)
	if err != nil {
		return nil, err
	}

	sections, err := s.Segmenter.Segment(doc)
	if err != nil {
		return nil, err
	}

	res := &Result{Sections: len(sections)}
	if len(sections) == 0 {
		res.Warn(htmlchop.WarnNoSections, "no section-* elements found in %s", inputPath)
		logger.Warn("no sections found", "input", inputPath)
		return res, nil
	}

	// Shared head is rewritten once relative to the output root.
	sharedHead := doc.Head
	if s.Config.HeadInjection == htmlchop.HeadShared {
		sharedHead = s.rewrite(doc.Head, assetRoot, outputDir, res, logger)
	}

	g := new(errgroup.Group)
	g.SetLimit(s.Config.Concurrency)

	seen := make(map[string]bool)
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			// Drain in-flight writes so res is quiescent when we return.
			_ = g.Wait()
			return res, err
		}

		dirRel := prefixed(section.Name, section.Ordinal, s.Config.OrdinalPrefix)
		if seen[dirRel] {
			res.Warn(htmlchop.WarnDuplicateIdentifier, "section name %q already emitted, %s will be overwritten", section.Name, dirRel)
			logger.Warn("duplicate section name", "name", section.Name)
		}
		seen[dirRel] = true

		s.copyAssets(assetRoot, dirRel, len(section.Subsections) > 0, res, logger)

		// The section fragment is written before its subsections.
		frag := s.buildFragment(sharedHead, doc.Head, section.HTML, outputDir, dirRel,
			path.Join(dirRel, section.Name+".html"), assetRoot, res, logger)
		s.emit(ctx, frag, res, logger)

		subDirRel := path.Join(dirRel, subsectionsDirName)
		subSeen := make(map[string]bool)
		for _, sub := range section.Subsections {
			res.Subsections++
			if sub.Synthesized {
				res.Warn(htmlchop.WarnMissingSubsectionID, "subsection %d of section %q has no heading id, using %q", sub.Ordinal, section.Name, sub.ID)
				logger.Warn("missing subsection id", "section", section.Name, "fallback", sub.ID)
			}
			name := prefixed(sub.ID, sub.Ordinal, s.Config.OrdinalPrefix) + ".html"
			if subSeen[name] {
				res.Warn(htmlchop.WarnDuplicateIdentifier, "subsection id %q already emitted in %s, file will be overwritten", sub.ID, subDirRel)
				logger.Warn("duplicate subsection id", "id", sub.ID, "section", section.Name)
			}
			subSeen[name] = true

			body := sub.HTML
			relPath := path.Join(subDirRel, name)
			work := func() error {
				frag := s.buildFragment(sharedHead, doc.Head, body, outputDir, subDirRel,
					relPath, assetRoot, res, logger)
				s.emit(ctx, frag, res, logger)
				return nil
			}
			// Strict document order is the external contract; only an
			// explicit concurrency setting relaxes the write order.
			if s.Config.Concurrency == 1 {
				_ = work()
			} else {
				g.Go(work)
			}
		}
	}

	if err := g.Wait(); err != nil {
		return res, err
	}

	logger.Info("split complete",
		"input", inputPath,
		"sections", res.Sections,
		"subsections", res.Subsections,
		"files", res.FilesWritten,
		"warnings", len(res.Warnings),
	)
	return res, nil
}

// buildFragment assembles a complete standalone document for one boundary,
// applying the configured head injection and rewrite policy.
func (s *Splitter) buildFragment(sharedHead, rawHead, body, outputDir, dirRel, relPath, assetRoot string, res *Result, logger *slog.Logger) *htmlchop.Fragment {
	outDir := filepath.Join(outputDir, filepath.FromSlash(dirRel))

	head := sharedHead
	if s.Config.HeadInjection == htmlchop.HeadPerFragment {
		head = s.rewrite(rawHead, assetRoot, outDir, res, logger)
	}
	body = s.rewrite(body, assetRoot, outDir, res, logger)

	return &htmlchop.Fragment{
		Path: relPath,
		HTML: assemble(head, body, s.Config.Lang),
	}
}

// rewrite applies the rewrite-in-place policy to a piece of markup,
// recording one missing-asset warning per unresolved reference. Under the
// copy-assets policy, or without an asset root, markup passes through
// untouched.
func (s *Splitter) rewrite(markup, assetRoot, outDir string, res *Result, logger *slog.Logger) string {
	if s.Config.RewritePolicy != htmlchop.RewriteInPlace || assetRoot == "" || markup == "" {
		return markup
	}
	rewritten, missing, err := s.Rewriter.Rewrite(markup, assetRoot, outDir)
	if err != nil {
		res.Warn(htmlchop.WarnMissingAsset, "reference rewriting failed: %s", htmlchop.ErrorMessage(err))
		logger.Warn("rewrite failed", "err", err)
		return markup
	}
	for _, ref := range missing {
		// One diagnostic per reference, however many fragments repeat it
		// (the shared head is rewritten into every fragment).
		if res.WarnOnce(htmlchop.WarnMissingAsset, ref, "asset %q not found under %s, reference left unchanged", ref, assetRoot) {
			logger.Warn("missing asset", "ref", ref, "root", assetRoot)
		}
	}
	return rewritten
}

// copyAssets copies the asset root into the section directory (and its
// subsections directory when needed) under the copy-assets policy.
func (s *Splitter) copyAssets(assetRoot, dirRel string, hasSubsections bool, res *Result, logger *slog.Logger) {
	if s.Config.RewritePolicy != htmlchop.CopyAssets || assetRoot == "" || s.Assets == nil {
		return
	}
	dirs := []string{dirRel}
	if hasSubsections {
		dirs = append(dirs, path.Join(dirRel, subsectionsDirName))
	}
	for _, dir := range dirs {
		if err := s.Assets.CopyAssets(assetRoot, dir); err != nil {
			res.Warn(htmlchop.WarnWriteFailure, "failed to copy assets into %s: %v", dir, err)
			logger.Warn("asset copy failed", "dir", dir, "err", err)
		}
	}
}

// emit writes one fragment, recording a warning instead of failing the run
// when the write errors out.
func (s *Splitter) emit(ctx context.Context, frag *htmlchop.Fragment, res *Result, logger *slog.Logger) {
	if err := s.Writer.WriteFragment(ctx, frag); err != nil {
		res.Warn(htmlchop.WarnWriteFailure, "failed to write %s: %v", frag.Path, err)
		logger.Warn("write failed", "path", frag.Path, "err", err)
		return
	}
	res.Wrote()
}

// prefixed returns the name with its zero-padded ordinal prefix, matching
// the NNN_name output convention, or the bare name when prefixes are off.
func prefixed(name string, ordinal int, enabled bool) string {
	if !enabled {
		return name
	}
	return fmt.Sprintf("%03d_%s", ordinal, name)
}

// assemble wraps a body fragment in a complete standalone document:
// doctype, html root, the shared head, and a body holding exactly the
// captured content.
func assemble(head, body, lang string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	if lang != "" {
		fmt.Fprintf(&b, "<html lang=%q>", lang)
	} else {
		b.WriteString("<html>")
	}
	b.WriteString("<head>")
	b.WriteString(head)
	b.WriteString("</head><body>")
	b.WriteString(body)
	b.WriteString("</body></html>\n")
	return b.String()
}
