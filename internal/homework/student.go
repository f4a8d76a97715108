// Package homework provides the demo's unit of work: a student who spends a
// fixed number of "hours" on homework, reporting progress after each one.
package homework

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-homework-dispatch/internal/console"
	"github.com/MKhiriev/go-homework-dispatch/internal/workers"
)

// Hours is the number of progress iterations every student performs.
const Hours = 5

// Student is immutable after construction and only reads its own fields, so
// one Student may run on several goroutines at once.
type Student struct {
	id       int
	tag      console.Tag
	printer  *console.Printer
	interval time.Duration
	sleep    func(time.Duration)
}

// Option customizes a Student.
type Option func(*Student)

// WithInterval sets the pause after each progress line. Default is one second.
func WithInterval(d time.Duration) Option {
	return func(s *Student) {
		s.interval = d
	}
}

// WithSleep replaces time.Sleep, mostly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Student) {
		s.sleep = fn
	}
}

func NewStudent(id int, tag console.Tag, printer *console.Printer, opts ...Option) *Student {
	s := &Student{
		id:       id,
		tag:      tag,
		printer:  printer,
		interval: time.Second,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Student) ID() int {
	return s.id
}

func (s *Student) Tag() console.Tag {
	return s.tag
}

// DoneHomework prints Hours progress lines, pausing after each. It never
// exits early.
func (s *Student) DoneHomework() {
	for i := 0; i < Hours; i++ {
		s.printer.Printf(s.tag, "%s", ProgressLine(s.id, i))
		s.sleep(s.interval)
	}
}

// Run makes a Student a workers.Worker.
func (s *Student) Run() {
	s.DoneHomework()
}

func (s *Student) String() string {
	return fmt.Sprintf("student %d", s.id)
}

// ProgressLine is the text a student prints for the given hour.
func ProgressLine(id, hour int) string {
	return fmt.Sprintf("Student %d is doing homework for %d hours.", id, hour)
}

// Class returns the fixed roster of the demo: students 1, 2 and 3 tagged red,
// yellow and blue.
func Class(printer *console.Printer, opts ...Option) []*Student {
	return []*Student{
		NewStudent(1, console.Red, printer, opts...),
		NewStudent(2, console.Yellow, printer, opts...),
		NewStudent(3, console.Blue, printer, opts...),
	}
}

// AsWorkers exposes students as named workers.
func AsWorkers(students []*Student) []workers.Worker {
	ws := make([]workers.Worker, 0, len(students))
	for _, s := range students {
		ws = append(ws, s)
	}
	return ws
}

// AsFuncs exposes students through their DoneHomework method values.
func AsFuncs(students []*Student) []workers.Worker {
	ws := make([]workers.Worker, 0, len(students))
	for _, s := range students {
		ws = append(ws, workers.Func(s.DoneHomework))
	}
	return ws
}
