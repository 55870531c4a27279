// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"creative-brief/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler processes one activated job and completes or fails it itself.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// WorkerOptions tune a job worker subscription.
type WorkerOptions struct {
	JobType       string
	MaxJobsActive int
	Timeout       time.Duration
}

// JobWorker is a running job subscription.
type JobWorker struct {
	worker  worker.JobWorker
	logger  logger.Logger
	jobType string
}

// StartWorker opens a job worker for opts.JobType.
func StartWorker(client zbc.Client, opts WorkerOptions, handler JobHandler, log logger.Logger) *JobWorker {
	jw := client.NewJobWorker().
		JobType(opts.JobType).
		Handler(handler.Handle).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      opts.JobType,
		"maxJobsActive": opts.MaxJobsActive,
		"timeout_ms":    opts.Timeout.Milliseconds(),
	})

	return &JobWorker{worker: jw, logger: log, jobType: opts.JobType}
}

// Stop closes the subscription and waits for in-flight handlers.
func (w *JobWorker) Stop() {
	w.logger.Info("stopping worker", map[string]interface{}{"taskType": w.jobType})
	w.worker.Close()
	w.worker.AwaitClose()
}
