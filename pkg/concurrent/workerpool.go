package concurrent

import "sync"

// WorkerPool runs JobFunc over queued jobs with a fixed number of goroutines.
// Results arrive in completion order, so callers that need a stable order must
// carry it inside G.
type WorkerPool[T JobI, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T JobI, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// Close stops accepting jobs. Workers drain what is already queued.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until every worker is done and then closes the result channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}
