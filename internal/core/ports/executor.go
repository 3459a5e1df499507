package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// BuildExecutor runs the external build command that consumes a plan's
// source tree, lockfile, and build-time dependency paths, and produces a
// binary at the plan's output path.
//
// The executor is an opaque collaborator: the evaluator only observes its
// exit status, surfaced as domain.ErrBuildExecution on failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type BuildExecutor interface {
	// Execute runs the build described by plan with the given environment.
	// The env parameter contains variables in "KEY=VALUE" format.
	Execute(ctx context.Context, plan *domain.BuildPlan, env []string) error
}
