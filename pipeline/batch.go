package pipeline

import (
	"errors"
	"fmt"

	"github.com/gogpu/aadraw"
	"github.com/gogpu/aadraw/internal/parallel"
)

// Job names one file to process in a batch.
type Job struct {
	Input  string
	Output string
}

// RunBatch opens every job's input, forwards u and saves the result to the
// job's output. Jobs run concurrently on the given number of workers
// (GOMAXPROCS when workers <= 0), so u must be safe for concurrent use; the
// units in this package are.
//
// A failing job does not stop the others. The returned error joins the
// failures, each prefixed with its input path.
func RunBatch(jobs []Job, u Unit, workers int, opts ...SaveOption) error {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	errs := make([]error, len(jobs))
	work := make([]func(), len(jobs))
	for i, job := range jobs {
		work[i] = func() {
			if err := runJob(job, u, opts); err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Input, err)
			}
		}
	}
	pool.ExecuteAll(work)

	aadraw.Logger().Info("pipeline: batch finished", "jobs", len(jobs), "workers", pool.Workers())
	return errors.Join(errs...)
}

func runJob(job Job, u Unit, opts []SaveOption) error {
	c, err := Open(job.Input)
	if err != nil {
		return err
	}
	if err := u.Forward(c); err != nil {
		return err
	}
	return c.Save(job.Output, opts...)
}
