package voltage

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultPollMaxAttempts = 30
	DefaultPollInterval    = time.Second
	DefaultPollTimeout     = 30 * time.Second
)

// PollConfig bounds the polling loop that follows an async payment creation.
// Zero values fall back to the defaults.
type PollConfig struct {
	MaxAttempts int
	Interval    time.Duration
	Timeout     time.Duration
}

func (pc PollConfig) withDefaults() PollConfig {
	if pc.MaxAttempts <= 0 {
		pc.MaxAttempts = DefaultPollMaxAttempts
	}
	if pc.Interval <= 0 {
		pc.Interval = DefaultPollInterval
	}
	if pc.Timeout <= 0 {
		pc.Timeout = DefaultPollTimeout
	}
	return pc
}

// pollPayment fetches the payment until it leaves its transient status
// (generating for receive, sending for send). The deadline is checked before
// each fetch, not during it, so a slow final fetch may overshoot the
// configured timeout slightly. Fetch failures are swallowed and retried: the
// record can lag behind the 202 acknowledgment, showing up as a 404 for the
// first attempt or two. A failed status is terminal and never retried.
func (c *Client) pollPayment(ctx context.Context, organizationID, environmentID, paymentID string, direction PaymentDirection, cfg *PollConfig) (*Payment, error) {
	pc := PollConfig{}
	if cfg != nil {
		pc = *cfg
	}
	pc = pc.withDefaults()

	transient := StatusGenerating
	if direction == DirectionSend {
		transient = StatusSending
	}

	start := time.Now()
	for attempts := 0; attempts < pc.MaxAttempts; attempts++ {
		if time.Since(start) > pc.Timeout {
			return nil, &PollTimeoutError{Timeout: pc.Timeout}
		}

		payment, err := c.GetPayment(ctx, organizationID, environmentID, paymentID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if err := sleep(ctx, pc.Interval); err != nil {
				return nil, err
			}
			continue
		}

		if payment.Direction != direction {
			return nil, fmt.Errorf("expected a %s payment, got %s", direction, payment.Direction)
		}

		switch payment.Status {
		case transient:
			if err := sleep(ctx, pc.Interval); err != nil {
				return nil, err
			}
		case StatusFailed:
			ferr := &PaymentFailedError{PaymentID: payment.ID}
			if payment.Error != nil {
				ferr.Type = payment.Error.Type
				ferr.Detail = payment.Error.Detail
			}
			return nil, ferr
		default:
			return payment, nil
		}
	}
	return nil, &PollExhaustedError{Attempts: pc.MaxAttempts}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
