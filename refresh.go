package modmap

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ AutoRefresher = (*mapper)(nil)

// AutoRefresher provides controls for automatic re-mapping runs.
type AutoRefresher interface {
	// RefreshOn begins automatic re-mapping if configured
	RefreshOn() error

	// RefreshOff stops automatic re-mapping
	RefreshOff() error
}

// RefreshOn begins automatic re-mapping if configured.
func (m *mapper) RefreshOn() error {
	if m.options.refreshInterval <= 0 {
		return &errors.ValidationError{
			Field:   "refreshInterval",
			Value:   m.options.refreshInterval,
			Message: "refresh interval must be positive",
		}
	}

	// Stop any existing auto-refresh to prevent resource leaks
	if err := m.RefreshOff(); err != nil {
		return err
	}

	// Recreate stopCh since it was closed in RefreshOff
	m.stopCh = make(chan struct{})

	ticker := time.NewTicker(m.options.refreshInterval)
	m.refreshTicker = ticker

	// Create a cancellable context for the refresh goroutine
	ctx, cancel := context.WithCancel(context.Background())
	m.refreshCancel = cancel

	go func(parentCtx context.Context) {
		for {
			select {
			case <-ticker.C:
				// Bound each run so a stuck source cannot wedge the loop
				runCtx, runCancel := context.WithTimeout(parentCtx, constants.RefreshContextTimeout)
				_, err := m.Run(runCtx)
				runCancel()

				if err != nil {
					// Check if context was canceled - if so, exit the loop
					if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
						return
					}
					// Log other errors but continue
					logging.Error().Err(err).Msg("Auto-refresh failed")
				}
			case <-parentCtx.Done():
				return
			case <-m.stopCh:
				return
			}
		}
	}(ctx)

	return nil
}

// RefreshOff stops automatic re-mapping.
func (m *mapper) RefreshOff() error {
	if m.refreshTicker != nil {
		m.refreshTicker.Stop()
		m.refreshTicker = nil
	}
	if m.refreshCancel != nil {
		m.refreshCancel()
		m.refreshCancel = nil
	}
	select {
	case <-m.stopCh:
		// Already closed
	default:
		close(m.stopCh)
	}
	return nil
}
