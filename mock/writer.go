package mock

import (
	"context"

	"github.com/fwojciec/htmlchop"
)

var _ htmlchop.FragmentWriter = (*FragmentWriter)(nil)

// FragmentWriter is a mock implementation of htmlchop.FragmentWriter.
type FragmentWriter struct {
	WriteFragmentFn func(ctx context.Context, f *htmlchop.Fragment) error
}

func (w *FragmentWriter) WriteFragment(ctx context.Context, f *htmlchop.Fragment) error {
	return w.WriteFragmentFn(ctx, f)
}

var _ htmlchop.AssetCopier = (*AssetCopier)(nil)

// AssetCopier is a mock implementation of htmlchop.AssetCopier.
type AssetCopier struct {
	CopyAssetsFn func(srcDir, dstDir string) error
}

func (c *AssetCopier) CopyAssets(srcDir, dstDir string) error {
	return c.CopyAssetsFn(srcDir, dstDir)
}
