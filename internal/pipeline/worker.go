package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dgallion1/webseg/internal/page"
	"github.com/dgallion1/webseg/internal/report"
	"github.com/dgallion1/webseg/internal/segment"
	"github.com/dgallion1/webseg/internal/store"
)

// Worker processes a single segmentation job: decode the capture JSON,
// run the engine, persist the chunk and report artifacts.
type Worker struct {
	client *store.Client // remote artifact store; nil means local output
	outDir string
	log    *slog.Logger
	segCfg segment.Config

	maxConcurrentStore int
}

func NewWorker(client *store.Client, outDir string, log *slog.Logger, segCfg segment.Config, maxStore int) *Worker {
	if maxStore <= 0 {
		maxStore = 10
	}
	return &Worker{
		client:             client,
		outDir:             outDir,
		log:                log,
		segCfg:             segCfg,
		maxConcurrentStore: maxStore,
	}
}

// Process runs the full segmentation pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "name", job.Name)

	// Phase 1: Decode.
	job.SetStatus(StatusSegmenting, "decoding")
	doc, err := page.Decode(bytes.NewReader(job.PageData()))
	if err != nil {
		log.Error("decode failed", "error", err)
		job.AddError(fmt.Sprintf("decode: %s", err))
		job.SetStatus(StatusFailed, "decoding")
		return
	}

	// Phase 2: Segment.
	job.SetStatus(StatusSegmenting, "segmenting")
	chunks, rep := segment.Segment(doc, w.segCfg)
	job.SetResult(chunks, rep)
	log.Info("segmented page", "chunks", len(chunks), "principles_met", rep.PrinciplesMet)

	if len(chunks) == 0 {
		for _, e := range rep.Errors {
			job.AddError(e)
		}
		job.SetStatus(StatusFailed, "segmenting")
		return
	}

	// Phase 3: Store artifacts.
	job.SetStatus(StatusStoring, "storing")
	hadErrors := !w.storeArtifacts(ctx, job, chunks, rep, log)

	switch {
	case hadErrors && job.Snapshot().Progress.ChunksStored > 0:
		job.SetStatus(StatusPartial, "done")
	case hadErrors:
		job.SetStatus(StatusFailed, "storing")
	default:
		job.SetStatus(StatusCompleted, "done")
	}
}

// storeArtifacts persists chunks and the report; returns false when any
// write failed.
func (w *Worker) storeArtifacts(ctx context.Context, job *Job, chunks []segment.Chunk, rep segment.Report, log *slog.Logger) bool {
	if w.client == nil {
		dir := store.Dir{Path: filepath.Join(w.outDir, job.ID)}
		if err := dir.WriteChunks(chunks); err != nil {
			log.Error("write chunks failed", "error", err)
			job.AddError(fmt.Sprintf("store: %s", err))
			return false
		}
		for range chunks {
			job.IncrChunksStored()
		}
		if err := dir.WriteReport(rep); err != nil {
			log.Error("write report failed", "error", err)
			job.AddError(fmt.Sprintf("store report: %s", err))
			return false
		}
		if err := dir.WriteSummary(report.Markdown(rep, chunks), ""); err != nil {
			log.Warn("write summary failed", "error", err)
		}
		return true
	}

	ok := true
	sem := make(chan struct{}, w.maxConcurrentStore)
	type storeResult struct {
		key string
		err error
	}
	results := make(chan storeResult, len(chunks)+1)

	putWithRetry := func(key string, payload any) error {
		var lastErr error
		for attempt := 0; attempt < MaxRetries; attempt++ {
			lastErr = w.client.PutArtifact(ctx, key, payload)
			if lastErr == nil || !IsRetryable(lastErr) {
				return lastErr
			}
			log.Warn("retryable store error", "key", key, "attempt", attempt, "error", lastErr)
			select {
			case <-time.After(Backoff(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return lastErr
	}

	for _, chunk := range chunks {
		sem <- struct{}{}
		go func(c segment.Chunk) {
			defer func() { <-sem }()
			key := job.ID + "/" + c.Name
			results <- storeResult{key: key, err: putWithRetry(key, c)}
		}(chunk)
	}

	for range chunks {
		r := <-results
		if r.err != nil {
			log.Error("store failed", "key", r.key, "error", r.err)
			job.AddError(fmt.Sprintf("store %s: %s", r.key, r.err))
			ok = false
			continue
		}
		job.IncrChunksStored()
	}

	if err := putWithRetry(job.ID+"/_validation", rep); err != nil {
		log.Error("store report failed", "error", err)
		job.AddError(fmt.Sprintf("store report: %s", err))
		ok = false
	}
	return ok
}
