package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/webseg/internal/config"
	"github.com/dgallion1/webseg/internal/segment"
	"github.com/dgallion1/webseg/internal/store"
)

// Orchestrator manages the segmentation job pipeline. The engine itself
// is single-threaded per job; concurrency lives here, one job per
// worker at a time.
type Orchestrator struct {
	jobs   *JobStore
	queue  chan *Job
	client *store.Client
	log    *slog.Logger
	cfg    config.Config
	segCfg segment.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. client may be nil, in which
// case artifacts are written under cfg.OutputDir.
func NewOrchestrator(cfg config.Config, client *store.Client, log *slog.Logger) *Orchestrator {
	segCfg := segment.DefaultConfig()
	segCfg.MaxSizeUnits = cfg.MaxSizeUnits
	segCfg.MinSizeUnits = cfg.MinSizeUnits

	return &Orchestrator{
		jobs:   NewJobStore(cfg.JobTTL),
		queue:  make(chan *Job, cfg.MaxQueueSize),
		client: client,
		log:    log,
		cfg:    cfg,
		segCfg: segCfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.client, o.cfg.OutputDir, o.log, o.segCfg, o.cfg.MaxConcurrentStore)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// SegmentConfig returns the engine configuration used for jobs.
func (o *Orchestrator) SegmentConfig() segment.Config {
	return o.segCfg
}
