package notify

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingNotifier struct {
	delivered chan string
}

func (n *recordingNotifier) DeliverResetToken(_ context.Context, email, _ string, _ time.Time) error {
	n.delivered <- email
	return nil
}

func TestDispatcher_DeliversAsync(t *testing.T) {
	delegate := &recordingNotifier{delivered: make(chan string, 8)}
	d := NewDispatcher(2, delegate, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	if err := d.DeliverResetToken(context.Background(), "a@example.com", "token", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("enqueue returned error: %v", err)
	}

	select {
	case email := <-delegate.delivered:
		if email != "a@example.com" {
			t.Fatalf("unexpected recipient: %q", email)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never delivered")
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingNotifier{delivered: make(chan string, 1)}, zerolog.Nop())

	first := d.shardIndex("a@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("a@example.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
