package notify

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/powerme/portal-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

type resetNotification struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Dispatcher decouples reset-token delivery from the request path. It
// implements ports.ResetNotifier by enqueueing; a fixed set of workers,
// sharded by recipient email, performs the actual delivery so notifications
// for the same address stay ordered.
type Dispatcher struct {
	workers  []chan resetNotification
	delegate ports.ResetNotifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers wrapping
// the given delegate. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, delegate ports.ResetNotifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan resetNotification, numWorkers),
		delegate: delegate,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan resetNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// DeliverResetToken enqueues the notification and returns immediately. The
// call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) DeliverResetToken(_ context.Context, email, token string, expiresAt time.Time) error {
	d.workers[d.shardIndex(email)] <- resetNotification{Email: email, Token: token, ExpiresAt: expiresAt}
	return nil
}

// shardIndex maps a recipient email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan resetNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.delegate.DeliverResetToken(ctx, n.Email, n.Token, n.ExpiresAt); err != nil {
				d.log.Error().Err(err).
					Str("email", n.Email).
					Int("worker_id", id).
					Msg("reset token delivery failed")
			}
		}
	}
}
