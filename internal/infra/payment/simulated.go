// Package payment contains the simulated payment step of checkout. Nothing is
// charged; the processor only waits, the way a gateway round-trip would.
package payment

import (
	"context"
	"log/slog"
	"time"

	"furnishop/config"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"
)

type simulatedProcessor struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedProcessor returns a processor that blocks for delay or until ctx is done.
func NewSimulatedProcessor(delay time.Duration, logger *slog.Logger) service.PaymentProcessor {
	if delay < 0 {
		delay = 0
	}

	return &simulatedProcessor{delay: delay, logger: logger}
}

// NewFromConfig reads checkout.paymentDelay.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) service.PaymentProcessor {
	var delay time.Duration
	if cfg.Checkout != nil {
		delay = cfg.Checkout.PaymentDelay
	}

	return NewSimulatedProcessor(delay, logger)
}

func (p *simulatedProcessor) Process(ctx context.Context, method entity.PaymentMethod, amount float64) error {
	if !method.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + method.String())
	}
	if amount < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}

	p.logger.Debug("Processing payment",
		slog.String("method", method.String()),
		slog.Float64("amount", amount),
		slog.Duration("delay", p.delay),
	)

	if p.delay == 0 {
		return errors.WithStack(ctx.Err())
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "payment cancelled")
	case <-timer.C:
		return nil
	}
}
