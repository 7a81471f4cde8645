package task

import "sync"

// Queue runs tasks concurrently while honoring declared dependency order.
// Each added task gets its own goroutine that first waits for every
// dependency to finish, then starts the task and waits for its finish
// signal. Tasks without shared dependencies run with no mutual ordering.
type Queue struct {
	wg sync.WaitGroup
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add enqueues t for execution. The dependency list is read once at
// enqueue time; edges added afterwards are not honored.
func (q *Queue) Add(t *Task) {
	deps := t.Dependencies()
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for _, dep := range deps {
			<-dep.Done()
		}
		t.Start()
		<-t.Done()
	}()
}

// Wait blocks until every task added so far has finished. Tasks added
// from within a running task's body are counted before that body's own
// task completes, so a single Wait covers transitively spawned work.
func (q *Queue) Wait() {
	q.wg.Wait()
}
