// Package task provides a single-use, dependency-ordered unit of
// asynchronous work with an explicit finish signal, and a queue that runs
// such tasks concurrently while honoring their dependency edges.
package task

import (
	"sync"
)

// State is the lifecycle state of a Task.
type State int

const (
	// StateIdle means the body is present and the task has not started.
	StateIdle State = iota
	// StateExecuting means the body has been invoked and has not yet
	// signalled finish.
	StateExecuting
	// StateFinished is terminal.
	StateFinished
)

// Func is a task body. It receives a finish callback that it must invoke
// exactly once on every exit path, success or failure. A body that never
// calls finish stalls every dependent task forever; there is no timeout.
type Func func(finish func())

// Task is a single-use unit of asynchronous work. A task may declare
// dependencies on other tasks; a Queue will not invoke its body until
// every declared dependency has finished.
type Task struct {
	name string

	mu    sync.Mutex
	state State
	fn    Func
	deps  []*Task

	finishOnce sync.Once
	done       chan struct{}
}

// New creates an idle task with the given body. The name is used in logs
// and panic messages only.
func New(name string, fn Func) *Task {
	return &Task{
		name: name,
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Name returns the task's name.
func (t *Task) Name() string { return t.name }

// State returns the task's current lifecycle state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done returns a channel that is closed when the task finishes.
func (t *Task) Done() <-chan struct{} { return t.done }

// AddDependency declares that t must not start before dep has finished.
// It panics if t has already been started; dependencies are declared
// before the task is handed to a queue.
func (t *Task) AddDependency(dep *Task) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateIdle {
		panic("task: AddDependency on started task " + t.name)
	}
	t.deps = append(t.deps, dep)
}

// Dependencies returns a copy of the declared dependency list.
func (t *Task) Dependencies() []*Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	deps := make([]*Task, len(t.deps))
	copy(deps, t.deps)
	return deps
}

// Start invokes the task body with the finish callback. The body is
// cleared on first start; calling Start on a task that is not idle is a
// programming error and panics.
func (t *Task) Start() {
	t.mu.Lock()
	if t.state != StateIdle || t.fn == nil {
		t.mu.Unlock()
		panic("task: Start called twice on " + t.name)
	}
	fn := t.fn
	t.fn = nil
	t.state = StateExecuting
	t.mu.Unlock()

	fn(t.finish)
}

// finish transitions the task to its terminal state and releases
// dependents. Safe to call more than once; only the first call counts.
func (t *Task) finish() {
	t.finishOnce.Do(func() {
		t.mu.Lock()
		t.state = StateFinished
		t.mu.Unlock()
		close(t.done)
	})
}
