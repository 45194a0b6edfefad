package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
)

var global = &closer{}

type closeFn struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu   sync.Mutex
	fns  []closeFn
	log  *logger.Logger
	done bool
}

// SetLogger attaches a logger used while closing resources.
func SetLogger(l *logger.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = l
}

// AddNamed registers a resource to be closed on shutdown. Resources are
// closed in reverse registration order.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fns = append(global.fns, closeFn{name: name, fn: fn})
}

// CloseAll closes every registered resource, LIFO. All errors are joined;
// closing continues past failures. Subsequent calls are no-ops.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.done {
		return nil
	}
	global.done = true

	var errs []error
	for i := len(global.fns) - 1; i >= 0; i-- {
		c := global.fns[i]
		if err := c.fn(ctx); err != nil {
			if global.log != nil {
				global.log.Error(ctx, "failed to close resource",
					logger.String("resource", c.name),
					logger.ErrorF(err),
				)
			}
			errs = append(errs, err)
			continue
		}
		if global.log != nil {
			global.log.Info(ctx, "resource closed", logger.String("resource", c.name))
		}
	}

	return errors.Join(errs...)
}
