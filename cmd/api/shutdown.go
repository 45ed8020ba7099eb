package main

import (
	"context"
	"errors"
	"fmt"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"
)

type shutdownStep struct {
	name string
	run  func(ctx context.Context) error
}

// inOrder folds the steps into one operation. GracefulShutdown runs its
// operations concurrently, so anything that must outlive another step has to
// come after it here. A failing step does not skip the ones after it.
func inOrder(steps ...shutdownStep) gfshutdown.Operation {
	return func(ctx context.Context) error {
		var errs []error
		for _, step := range steps {
			if err := step.run(ctx); err != nil {
				zap.L().Error("shutdown step failed", zap.String("step", step.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
				continue
			}
			zap.L().Info("shutdown step done", zap.String("step", step.name))
		}
		return errors.Join(errs...)
	}
}
