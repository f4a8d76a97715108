package workers

import (
	"golang.org/x/sync/errgroup"
)

// Batch is the handle of a fire-and-forget launch. Callers that do not care
// about completion may drop it; the goroutines keep running either way.
type Batch struct {
	id    string
	size  int
	group errgroup.Group
}

// ID returns the identifier the launch was logged with.
func (b *Batch) ID() string {
	return b.id
}

// Size returns the number of goroutines the launch started.
func (b *Batch) Size() int {
	return b.size
}

// Wait blocks until every goroutine of the launch has returned and reports
// the first failure, if any. A failure never stops the other goroutines.
// Wait may be called any number of times, from any goroutine.
func (b *Batch) Wait() error {
	return b.group.Wait()
}

func (b *Batch) goRun(fn func() error) {
	b.size++
	b.group.Go(fn)
}
