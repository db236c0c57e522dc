package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// mapTransportError classifies a failed round trip. Deadlines become
// [ErrUpstreamTimeout]; everything else (refused connections, DNS failures,
// broken responses) becomes [ErrUpstreamUnavailable].
func mapTransportError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrUpstreamTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w: %w", op, ErrUpstreamTimeout, err)
	}

	return fmt.Errorf("%s: %w: %w", op, ErrUpstreamUnavailable, err)
}
