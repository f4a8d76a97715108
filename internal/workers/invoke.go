package workers

import (
	"fmt"
	"runtime/debug"

	"github.com/MKhiriev/go-homework-dispatch/internal/logger"
)

// invoke runs w and turns a panic into an error wrapping ErrWorkerFailed.
func invoke(w Worker, log *logger.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrWorkerFailed, describe(w), r)
			log.Error().
				Str("worker", describe(w)).
				Any("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("worker panicked")
		}
	}()

	w.Run()
	return nil
}

func describe(w Worker) string {
	if s, ok := w.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", w)
}
