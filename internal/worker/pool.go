package worker

import (
	"sync"

	"github.com/baharkarakas/bank-accounts-api/internal/metrics"
)

type task func()

// Pool runs submitted tasks on a fixed set of goroutines. Queue depth
// is exported through the worker_queue_depth gauge.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
				metrics.WorkerQueueDepth.Dec()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) {
	metrics.WorkerQueueDepth.Inc()
	p.jobs <- f
}

// Stop closes the queue and waits for in-flight tasks to drain.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
