package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-homework-dispatch/internal/calc"
	"github.com/MKhiriev/go-homework-dispatch/internal/config"
	"github.com/MKhiriev/go-homework-dispatch/internal/console"
	"github.com/MKhiriev/go-homework-dispatch/internal/homework"
	"github.com/MKhiriev/go-homework-dispatch/internal/logger"
	"github.com/MKhiriev/go-homework-dispatch/internal/packaging"
	"github.com/MKhiriev/go-homework-dispatch/internal/workers"
)

// Operands of the calculator section.
const (
	operandX = 300
	operandY = 100
)

type App struct {
	printer    *console.Printer
	calculator *calc.Calculator
	boxes      packaging.BoxFactory
	products   packaging.ProductFactory
	boxLogger  *packaging.Logger
	dispatcher *workers.Dispatcher
	students   []*homework.Student

	logger *logger.Logger
}

// NewApp builds the demo writing to out. Extra options are applied to every
// student after the configured interval.
func NewApp(out io.Writer, cfg config.Workers, log *logger.Logger, opts ...homework.Option) (*App, error) {
	if out == nil {
		return nil, ErrNoOutput
	}
	if cfg.Interval <= 0 {
		return nil, ErrIntervalIsNotSpecified
	}

	printer := console.NewPrinter(out)
	studentOpts := append([]homework.Option{homework.WithInterval(cfg.Interval)}, opts...)

	return &App{
		printer:    printer,
		calculator: calc.NewCalculator(printer),
		boxLogger:  packaging.NewLogger(printer, log),
		dispatcher: workers.NewDispatcher(log),
		students:   homework.Class(printer, studentOpts...),
		logger:     log,
	}, nil
}

// Run prints the whole demonstration. Background dispatches started along
// the way are awaited before Run returns; their failures are joined into the
// returned error.
func (a *App) Run(ctx context.Context) error {
	a.runCalculator()
	a.runPackaging()

	batches, err := a.runHomework(ctx)

	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	for _, batch := range batches {
		if waitErr := batch.Wait(); waitErr != nil {
			errs = append(errs, fmt.Errorf("batch %s: %w", batch.ID(), waitErr))
		}
	}

	a.logger.Debug().Int("batches", len(batches)).Msg("demo finished")
	return errors.Join(errs...)
}

func (a *App) runCalculator() {
	c := a.calculator
	x, y := float64(operandX), float64(operandY)

	// direct calls
	c.Report()
	for i := 0; i < 4; i++ {
		a.printer.Println(c.Add(x, y))
	}

	// a function value without a result, invoked twice
	report := c.Report
	report()
	report()

	// function values with a result
	for _, op := range []func(float64, float64) float64{c.Add, c.Sub, c.Mul, c.Div} {
		a.printer.Println(op(x, y))
	}

	// the same through the named Op type
	for _, op := range c.Ops() {
		a.printer.Println(op(x, y))
	}
}

func (a *App) runPackaging() {
	burgerBox := a.boxes.Package(a.products.ProduceBurger, a.boxLogger.Log)
	pizzaBox := a.boxes.Package(a.products.ProducePizza, a.boxLogger.Log)
	a.printer.Println(burgerBox.Product.Name)
	a.printer.Println(pizzaBox.Product.Name)

	a.printer.Println("// interface instead of delegate")
	burgerBox = a.boxes.InterfacePackage(packaging.GoldBurgerFactory{})
	pizzaBox = a.boxes.InterfacePackage(packaging.PizzaFactory{})
	a.printer.Println(burgerBox.Product.Name)
	a.printer.Println(pizzaBox.Product.Name)
}

// runHomework runs the students through every dispatch mode. The synchronous
// sections finish before the next header is printed; the asynchronous ones
// are returned as batches.
func (a *App) runHomework(ctx context.Context) ([]*workers.Batch, error) {
	named := homework.AsWorkers(a.students)
	funcs := homework.AsFuncs(a.students)

	a.printer.Println("single / multi thread demo")

	a.printer.Println("->explicit sync")
	for _, s := range a.students {
		s.DoneHomework()
	}

	a.printer.Println("->implicit sync")
	a.printer.Println("->->a Single cast")
	if err := a.dispatcher.RunSequential(ctx, funcs); err != nil {
		return nil, err
	}

	a.printer.Println("->->b Multi cast")
	if err := a.dispatcher.RunCombined(ctx, funcs); err != nil {
		return nil, err
	}

	var batches []*workers.Batch
	launch := func(run func(context.Context, []workers.Worker) (*workers.Batch, error), ws []workers.Worker) error {
		batch, err := run(ctx, ws)
		if err != nil {
			return err
		}
		batches = append(batches, batch)
		return nil
	}

	// goroutines stand in for both threads and pooled tasks
	a.printer.Println("->explicit async")
	if err := launch(a.dispatcher.RunConcurrent, named); err != nil {
		return batches, err
	}
	if err := launch(a.dispatcher.RunConcurrent, named); err != nil {
		return batches, err
	}

	a.printer.Println("->implicit async")
	a.printer.Println("->->a Single cast")
	if err := launch(a.dispatcher.RunConcurrent, funcs); err != nil {
		return batches, err
	}

	a.printer.Println("->->b Multi cast")
	if err := launch(a.dispatcher.RunCombinedAsync, funcs); err != nil {
		return batches, err
	}

	return batches, nil
}
