package packaging

import (
	"time"

	"github.com/MKhiriev/go-homework-dispatch/internal/console"
	"github.com/MKhiriev/go-homework-dispatch/internal/logger"
	"github.com/MKhiriev/go-homework-dispatch/models"
)

// Logger announces created products on the console and records them in the
// diagnostic log.
type Logger struct {
	printer *console.Printer
	logger  *logger.Logger
	now     func() time.Time
}

func NewLogger(printer *console.Printer, log *logger.Logger) *Logger {
	return &Logger{
		printer: printer,
		logger:  log,
		now:     time.Now,
	}
}

// Log has the signature BoxFactory.Package expects from its callback.
func (l *Logger) Log(product models.Product) {
	createdAt := l.now().UTC()

	l.printer.Printf(console.Plain, "%s was created on %s. Price: %g",
		product.Name, createdAt.Format(time.DateTime), product.Price)
	l.logger.Debug().
		Str("product", product.Name).
		Float64("price", product.Price).
		Time("created_at", createdAt).
		Msg("product created")
}
