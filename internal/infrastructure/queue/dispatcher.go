package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/api/metrics"
	"github.com/wellpath/wellness/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher runs detached profile updates on a fixed set of workers. Jobs
// are sharded by user id so updates for one user are applied in order.
type Dispatcher struct {
	workers []chan ports.ProfileSyncJob
	syncer  ports.ProfileSyncer
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ ports.SyncQueue = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, syncer ports.ProfileSyncer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ProfileSyncJob, numWorkers),
		syncer:  syncer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ProfileSyncJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Shutdown has drained their channel.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker owning its user id. It never blocks:
// when that worker's buffer is full, or the dispatcher is shut down, the
// job is dropped and false is returned.
func (d *Dispatcher) Enqueue(job ports.ProfileSyncJob) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.ProfileSyncTotal.WithLabelValues("dropped").Inc()
		return false
	}

	idx := d.shardIndex(job.UserID)
	select {
	case d.workers[idx] <- job:
		metrics.ProfileSyncQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return true
	default:
		metrics.ProfileSyncTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("user_id", job.UserID).Int("worker_id", idx).Msg("profile sync queue full, job dropped")
		return false
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("profile sync queue not drained"), ctx.Err())
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ProfileSyncJob) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.ProfileSyncQueueDepth.WithLabelValues(label).Dec()
			d.process(ctx, id, job)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, job ports.ProfileSyncJob) {
	start := time.Now()
	err := d.syncer.Sync(ctx, job)

	result := "ok"
	if err != nil {
		result = "error"
		// The caller has already moved on; the failure is only observable here.
		d.log.Error().Err(err).
			Str("user_id", job.UserID).
			Int("worker_id", id).
			Msg("profile sync failed")
	}
	metrics.ProfileSyncTotal.WithLabelValues(result).Inc()
	metrics.ProfileSyncDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
