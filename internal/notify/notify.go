package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// LogNotifier stands in for a platform notification center: it delivers
// each reminder to the log once its delay has passed.
type LogNotifier struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	deliver func(weather.Reminder)
}

// NewLogNotifier creates a notifier. A nil deliver logs the reminder.
func NewLogNotifier(deliver func(weather.Reminder)) *LogNotifier {
	if deliver == nil {
		deliver = func(r weather.Reminder) {
			log.Printf("INFO: reminder %s: %s - %s", r.ID, r.Title, r.Body)
		}
	}
	return &LogNotifier{
		pending: make(map[string]*time.Timer),
		deliver: deliver,
	}
}

// Schedule queues r for delivery after r.FireAfter.
func (n *LogNotifier) Schedule(ctx context.Context, r weather.Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending[r.ID] = time.AfterFunc(r.FireAfter, func() {
		n.mu.Lock()
		delete(n.pending, r.ID)
		n.mu.Unlock()
		n.deliver(r)
	})
	return nil
}

// Stop cancels every reminder not yet delivered.
func (n *LogNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.pending {
		t.Stop()
		delete(n.pending, id)
	}
}
