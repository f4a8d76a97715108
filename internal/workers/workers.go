package workers

import "fmt"

// Workers is an ordered chain of units of work. Invoking the chain runs
// every member in registration order on the calling goroutine, so the chain
// itself is a Worker and can be nested or started on a goroutine as a whole.
//
// The zero value is an empty chain whose Run is a no-op.
type Workers struct {
	workers []Worker
}

// NewWorkers returns a chain holding ws in the given order.
func NewWorkers(ws ...Worker) *Workers {
	chain := &Workers{}
	return chain.Add(ws...)
}

// Add appends ws to the end of the chain and returns the chain.
func (w *Workers) Add(ws ...Worker) *Workers {
	w.workers = append(w.workers, ws...)
	return w
}

// Combine returns a new chain with the members of w followed by the members
// of other. Neither operand is modified.
func (w *Workers) Combine(other *Workers) *Workers {
	combined := make([]Worker, 0, w.Len()+other.Len())
	combined = append(combined, w.members()...)
	combined = append(combined, other.members()...)

	return &Workers{workers: combined}
}

// Len reports the number of members in the chain.
func (w *Workers) Len() int {
	return len(w.members())
}

// Run invokes every member once, in order. A panicking member stops the
// chain; the panic propagates to the caller.
func (w *Workers) Run() {
	for _, worker := range w.members() {
		worker.Run()
	}
}

func (w *Workers) String() string {
	return fmt.Sprintf("chain of %d workers", w.Len())
}

func (w *Workers) members() []Worker {
	if w == nil {
		return nil
	}
	return w.workers
}
