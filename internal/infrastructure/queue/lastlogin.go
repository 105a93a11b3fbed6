package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/api/metrics"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

type loginEvent struct {
	userID string
	at     time.Time
}

// LastLoginRecorder persists last-login timestamps off the request path.
// Events are sharded to a fixed set of workers by user id, so updates for
// the same user apply in order. Persistence failures are logged and
// dropped; a missed timestamp must never fail or slow a login.
type LastLoginRecorder struct {
	workers []chan loginEvent
	users   ports.UserRepository
	log     zerolog.Logger
}

// NewLastLoginRecorder creates a recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewLastLoginRecorder(numWorkers int, users ports.UserRepository, log zerolog.Logger) *LastLoginRecorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &LastLoginRecorder{
		workers: make([]chan loginEvent, numWorkers),
		users:   users,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan loginEvent, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *LastLoginRecorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// RecordLogin enqueues one last-login update. When the shard's buffer is
// full the event is dropped rather than blocking the login request.
func (r *LastLoginRecorder) RecordLogin(userID string, at time.Time) {
	shard := r.shardIndex(userID)
	select {
	case r.workers[shard] <- loginEvent{userID: userID, at: at}:
		metrics.LastLoginQueueDepth.WithLabelValues(strconv.Itoa(shard)).Set(float64(len(r.workers[shard])))
	default:
		r.log.Warn().Str("user_id", userID).Msg("last-login queue full, update dropped")
	}
}

func (r *LastLoginRecorder) runWorker(ctx context.Context, id int, ch chan loginEvent) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-ch:
			metrics.LastLoginQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := r.users.UpdateLastLogin(ctx, ev.userID, ev.at); err != nil {
				r.log.Warn().Err(err).Str("user_id", ev.userID).Msg("last-login update failed")
			}
		}
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (r *LastLoginRecorder) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(r.workers)
}
