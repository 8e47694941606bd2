package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownService is returned when no base URL is known for a service.
var ErrUnknownService = errors.New("unknown service")

// Resolver turns a logical service name into a base URL (scheme://host:port).
type Resolver interface {
	Resolve(ctx context.Context, service string) (string, error)
}

// StaticResolver serves fixed base URLs from configuration.
type StaticResolver map[string]string

func (r StaticResolver) Resolve(_ context.Context, service string) (string, error) {
	base, ok := r[service]
	if !ok || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownService, service)
	}
	return strings.TrimRight(base, "/"), nil
}
