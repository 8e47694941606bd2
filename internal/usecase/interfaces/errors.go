package interfaces

import "errors"

// ErrUpstreamUnavailable is wrapped by remote clients when the remote service
// cannot be reached or answers with an unexpected status.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")
