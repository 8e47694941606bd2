// Package remote holds the HTTP clients for the customer and inventory
// services. Both follow the same failure convention: a 404 is a zero-value
// entity with a nil error, anything else that goes wrong wraps
// interfaces.ErrUpstreamUnavailable.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"billing_service/internal/infrastructure/discovery"
	"billing_service/internal/infrastructure/httpclient"
	"billing_service/internal/usecase/interfaces"
)

const (
	CustomerServiceName  = "CUSTOMER-SERVICE"
	InventoryServiceName = "INVENTORY-SERVICE"

	DefaultTimeout = 5 * time.Second
)

// base carries what both clients share.
type base struct {
	http     *httpclient.Client
	resolver discovery.Resolver
	service  string
	timeout  time.Duration
}

func newBase(client *httpclient.Client, resolver discovery.Resolver, service string, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return base{http: client, resolver: resolver, service: service, timeout: timeout}
}

// errEmptyResource marks a 2xx answer whose body identifies nothing
// (null, {} or a resource without id, name or self link).
var errEmptyResource = errors.New("empty resource body")

// get resolves the service, then GETs path with the per-call timeout.
// found is false on a 404.
func (b base) get(ctx context.Context, operation, path string, out any) (found bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	baseURL, err := b.resolve(ctx)
	if err != nil {
		return false, err
	}
	return b.getURL(ctx, operation, baseURL+path, out)
}

func (b base) resolve(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	baseURL, err := b.resolver.Resolve(ctx, b.service)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", interfaces.ErrUpstreamUnavailable, b.service, err)
	}
	return baseURL, nil
}

func (b base) emptyBodyError(operation string) error {
	return fmt.Errorf("%w: %s %s: %w", interfaces.ErrUpstreamUnavailable, b.service, operation, errEmptyResource)
}

func isEmptyResource(id int64, name string, l halLinks) bool {
	return id == 0 && name == "" && l.Self == nil
}

func (b base) getURL(ctx context.Context, operation, rawURL string, out any) (bool, error) {
	err := b.http.GetJSON(ctx, b.service, operation, rawURL, out)
	if err == nil {
		return true, nil
	}
	var se *httpclient.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s %s: %w", interfaces.ErrUpstreamUnavailable, b.service, operation, err)
}

// halLinks is the _links block Spring Data REST adds to every resource.
type halLinks struct {
	Self *struct {
		Href string `json:"href"`
	} `json:"self,omitempty"`
	Next *struct {
		Href string `json:"href"`
	} `json:"next,omitempty"`
}

// idFromSelf extracts the trailing numeric segment of a self link. Spring
// Data REST omits the id field from resource bodies unless told otherwise.
func idFromSelf(l halLinks) int64 {
	if l.Self == nil {
		return 0
	}
	href := strings.TrimRight(l.Self.Href, "/")
	if i := strings.Index(href, "{"); i >= 0 {
		href = href[:i]
	}
	seg := href[strings.LastIndex(href, "/")+1:]
	id, _ := strconv.ParseInt(seg, 10, 64)
	return id
}
