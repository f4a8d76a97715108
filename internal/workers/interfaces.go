// Package workers runs independent, parameterless units of work in three
// ways: one after another on the caller's goroutine, each on its own
// goroutine without waiting, or folded into a single chain that is invoked
// as one unit.
//
// A unit of work is anything implementing [Worker]. Plain functions are
// adapted with [Func], so callers can pick either a named type with a Run
// method or a function value.
package workers

//go:generate mockgen -source=interfaces.go -destination=../mock/worker_mock.go -package=mock

// Worker is the interface that must be implemented by any unit of work.
// It defines a single Run method that performs the work.
//
// Run is expected to block for the duration of the work. A panic inside Run
// is treated as a failure of that invocation only.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // do the work
//	}
type Worker interface {
	Run()
}

// Func adapts an ordinary function to the Worker interface.
type Func func()

// Run calls f.
func (f Func) Run() {
	f()
}
