package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/verislang/veris/internal/source"
)

// VerifyFiles runs Verify over every path independently and concurrently,
// bounded by jobs (runtime.GOMAXPROCS(0) if jobs <= 0) — grounded on the
// teacher's own errgroup-based directory fan-out. Each file gets its own
// FileSet; the language has no cross-file imports, so unlike the teacher's
// module graph there is nothing to share between workers. Results are
// returned in the same order as paths regardless of completion order.
func VerifyFiles(ctx context.Context, paths []string, opts Options, jobs int) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(paths))
	for _, path := range paths {
		emit(opts.Events, path, StageQueued, StatusQueued)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			fs := source.NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				return err
			}
			file := fs.Get(id)
			res, err := Verify(gctx, file, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
