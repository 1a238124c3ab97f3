// Package closer collects named shutdown hooks and runs them in reverse
// registration order during graceful shutdown.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/logger"
)

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu    sync.Mutex
	hooks []hook
	log   = logger.L()
)

func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, hook{name: name, fn: fn})
}

func Add(fn func(ctx context.Context) error) {
	AddNamed("", fn)
}

// CloseAll runs every registered hook LIFO. All hooks run even if some
// fail; failures are joined into the returned error.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	toClose := make([]hook, len(hooks))
	copy(toClose, hooks)
	hooks = nil
	mu.Unlock()

	var errs []error
	for i := len(toClose) - 1; i >= 0; i-- {
		h := toClose[i]

		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("closer: %w", ctx.Err()))
			return errors.Join(errs...)
		default:
		}

		if err := h.fn(ctx); err != nil {
			log.Error(ctx, "close failed",
				logger.String("name", h.name),
				logger.ErrorF(err),
			)
			errs = append(errs, fmt.Errorf("close %s: %w", h.name, err))
			continue
		}
		log.Debug(ctx, "closed", logger.String("name", h.name))
	}

	return errors.Join(errs...)
}
