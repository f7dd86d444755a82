// Package safegroup wraps errgroup.Group with panic recovery
package safegroup

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/arch-ops/omega-launcher/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Group runs goroutines whose panics are turned into logged errors
type Group struct {
	group  *errgroup.Group
	logger logger.Logger
}

// New creates a Group and the context cancelled when one of its functions fails.
func New(ctx context.Context, log logger.Logger) (*Group, context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	return &Group{
		group:  g,
		logger: log,
	}, ctx
}

// Go runs fn in a new goroutine with panic recovery.
func (g *Group) Go(fn func() error) {
	g.group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if g.logger != nil {
					g.logger.Error("Goroutine panic recovered",
						logger.WithField("panic", r),
						logger.WithField("stack_trace", string(debug.Stack())))
				}
				err = fmt.Errorf("goroutine panic: %v", r)
			}
		}()

		return fn()
	})
}

// Wait blocks until every goroutine has returned and reports the first error.
func (g *Group) Wait() error {
	return g.group.Wait()
}
