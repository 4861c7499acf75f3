package ports

import "context"

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}

// NamedCheck adapts a plain ping function into a HealthChecker.
type NamedCheck struct {
	DependencyName string
	PingFunc       func(ctx context.Context) error
}

// Ping runs the wrapped function.
func (n NamedCheck) Ping(ctx context.Context) error {
	return n.PingFunc(ctx)
}

// Name returns the dependency name.
func (n NamedCheck) Name() string {
	return n.DependencyName
}
