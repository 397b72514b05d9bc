package npem

import (
	"context"
	"fmt"
	"time"

	"github.com/sigreer/ledgod/internal/ibpi"
)

// Locate turns on the locate indicator for the enclosure at root, waits
// for the duration or context cancellation, then always attempts to turn
// it back off.
func (b *Backend) Locate(ctx context.Context, root string, duration time.Duration) error {
	if err := b.SetState(root, ibpi.PatternLocate); err != nil {
		return fmt.Errorf("failed to turn on locate: %w", err)
	}

	select {
	case <-time.After(duration):
		// Duration elapsed, turn off
	case <-ctx.Done():
		// Cancelled, still turn off
	}

	if err := b.SetState(root, ibpi.PatternLocateOff); err != nil {
		return fmt.Errorf("failed to turn off locate: %w", err)
	}

	return nil
}
