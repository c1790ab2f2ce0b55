package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	applogger "academy/internal/pkg/logger"
)

const defaultSendTimeout = 15 * time.Second

// Dispatcher sends each message on its own goroutine. Failures are logged
// and never reported to the caller.
type Dispatcher struct {
	mailer  Mailer
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(mailer Mailer, logger *zap.Logger, timeout time.Duration) *Dispatcher {
	logger = applogger.OrNop(logger)
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Dispatcher{mailer: mailer, logger: logger, timeout: timeout}
}

// Dispatch queues msg and returns immediately. Messages without a
// recipient are dropped.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || msg.To == "" {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("email dispatch panic", zap.Any("panic", r), zap.String("to", msg.To))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.mailer.Send(ctx, msg); err != nil {
			d.logger.Warn("email delivery failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
			return
		}
		d.logger.Debug("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	}()
}

// Wait blocks until in-flight messages finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
