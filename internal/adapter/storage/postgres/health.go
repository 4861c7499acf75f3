package postgres

import "payment-webhook-notifier/internal/core/ports"

// NewHealthCheck reports PostgreSQL reachability under the "postgresql" name.
func NewHealthCheck(pool Pool) ports.HealthChecker {
	return ports.NamedCheck{DependencyName: "postgresql", PingFunc: pool.Ping}
}
