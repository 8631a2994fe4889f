// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/nbuild/internal/core/domain"
)

// Executor defines the interface for running the native-build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and blocks until the tool exits.
	//
	// It returns an error if the tool cannot be started or exits non-zero.
	Execute(ctx context.Context, inv *domain.Invocation) error
}
