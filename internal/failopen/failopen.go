// Package failopen collapses integration failures into a fallback value.
package failopen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"career-counsel/internal/logger"
	"career-counsel/internal/metrics"
)

// Do runs fn and returns its value. Any error, or a panic inside fn, is
// logged at warn level and replaced by fallback() with degraded set to true.
// Do itself never fails.
func Do[T any](ctx context.Context, operation string, fn func(context.Context) (T, error), fallback func() T) (result T, degraded bool) {
	value, err := guard(ctx, fn)
	if err == nil {
		return value, false
	}

	logger.Get().Warn("integration failed, using fallback",
		zap.String("operation", operation),
		zap.Error(err),
	)
	metrics.FailOpenTotal.WithLabelValues(operation).Inc()
	return fallback(), true
}

func guard[T any](ctx context.Context, fn func(context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx)
}
