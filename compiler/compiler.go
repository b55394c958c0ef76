// Package compiler ties the front end together: resolve -> parse -> link
// -> generate, the driver glue spec.md §6 describes as an external
// interface contract (spec §5 "Concurrency & resource model").
package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/internal/gen"
	"github.com/wireproto/wireproto/linker"
	"github.com/wireproto/wireproto/parser"
	"github.com/wireproto/wireproto/reporter"
	"github.com/wireproto/wireproto/resolver"
)

// Compiler drives one compilation: parsing every requested file (and its
// transitive imports) concurrently, then linking the gathered ASTs
// sequentially, matching spec §5's "parse in parallel, link as a single
// pass over the whole set" resource model.
type Compiler struct {
	// Resolver supplies source for a requested or imported file path.
	// Required.
	Resolver resolver.Resolver

	// MaxParallelism bounds concurrent parses. Zero means
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)).
	MaxParallelism int

	// Reporter collects every diagnostic raised while compiling this batch
	// of files. Per spec §7, a single file's front-end stages stop at the
	// first error in that file, but the driver keeps parsing the rest of
	// the batch and reports every file's failure through this one Handler.
	// Nil means a fresh Handler is used for the call and discarded.
	Reporter *reporter.Handler

	// Logger receives structured progress logging. Nil means no logging.
	Logger *zap.Logger
}

func (c *Compiler) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Compiler) reporterHandler() *reporter.Handler {
	if c.Reporter == nil {
		return reporter.NewHandler()
	}
	return c.Reporter
}

func (c *Compiler) maxParallelism() int {
	if c.MaxParallelism > 0 {
		return c.MaxParallelism
	}
	if n := runtime.GOMAXPROCS(-1); n < runtime.NumCPU() {
		return n
	}
	return runtime.NumCPU()
}

// Compile resolves, parses, and links filenames and everything they
// transitively import, returning the linked Schema. Every file that fails
// to parse is recorded on the Reporter and parsing continues for the rest
// of the batch (spec §7: stop at the first error within a file, but keep
// going across files); once the whole batch has been attempted, any
// recorded error aborts the call with reporter.ErrInvalidSource.
func (c *Compiler) Compile(ctx context.Context, filenames ...string) (*linker.Schema, error) {
	logger := c.logger()
	rep := c.reporterHandler()

	g, ctx := errgroup.WithContext(ctx)
	// sem bounds concurrent parses. g itself has no limit, so the nested
	// g.Go calls made from inside a running closure never block.
	sem := make(chan struct{}, c.maxParallelism())

	var (
		mu     sync.Mutex
		files  = make(map[string]*ast.File)
		seen   sync.Map
		submit func(name string)
	)

	submit = func(name string) {
		if _, loaded := seen.LoadOrStore(name, struct{}{}); loaded {
			return
		}
		g.Go(func() error {
			sem <- struct{}{}
			f, err := c.parseOne(name)
			<-sem
			if err != nil {
				var ep reporter.ErrorWithPos
				if !errors.As(err, &ep) {
					ep = reporter.Errorf(ast.SourcePos{Filename: name}, "%v", err)
				}
				rep.HandleError(ep)
				// Don't propagate: a failed file must not cancel its
				// siblings' parses, only stop its own import expansion.
				return nil
			}

			mu.Lock()
			files[name] = f
			mu.Unlock()

			logger.Debug("parsed proto file", zap.String("file", name))

			for _, imp := range f.Imports {
				submit(imp.Path)
			}
			return nil
		})
	}

	for _, name := range filenames {
		submit(name)
	}
	// No submitted closure above returns an error (parse failures go to
	// rep), so g.Wait returns nil here; the check is defensive.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if rep.HasErrors() {
		return nil, fmt.Errorf("%w: %d file(s) failed to parse", reporter.ErrInvalidSource, len(rep.Errors()))
	}

	schema, err := linker.Link(files)
	if err != nil {
		var ep reporter.ErrorWithPos
		if !errors.As(err, &ep) {
			ep = reporter.Errorf(ast.SourcePos{}, "%v", err)
		}
		rep.HandleError(ep)
		return nil, fmt.Errorf("%w: %v", reporter.ErrInvalidSource, err)
	}
	logger.Info("linked schema", zap.Int("files", len(files)))
	return schema, nil
}

func (c *Compiler) parseOne(name string) (*ast.File, error) {
	rc, err := c.Resolver.FindFile(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return parser.Parse(name, data)
}

// Generate links filenames and their imports, then runs the code
// generator over the result, returning one Go source file per linked
// .proto input keyed by output path (spec §4.5).
func (c *Compiler) Generate(ctx context.Context, filenames ...string) (map[string][]byte, error) {
	schema, err := c.Compile(ctx, filenames...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(schema)
}
