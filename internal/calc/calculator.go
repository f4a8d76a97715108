// Package calc holds the arithmetic used to show function values standing in
// for two-argument callbacks.
package calc

import "github.com/MKhiriev/go-homework-dispatch/internal/console"

// Op is a binary operation on float64 values.
type Op func(x, y float64) float64

// Calculator is stateless apart from where Report prints.
type Calculator struct {
	printer *console.Printer
}

func NewCalculator(printer *console.Printer) *Calculator {
	return &Calculator{printer: printer}
}

// Report prints a fixed line. It takes no arguments and returns nothing.
func (c *Calculator) Report() {
	c.printer.Println("This is a void function without parameters")
}

func (c *Calculator) Add(x, y float64) float64 {
	return x + y
}

func (c *Calculator) Sub(x, y float64) float64 {
	return x - y
}

func (c *Calculator) Mul(x, y float64) float64 {
	return x * y
}

// Div follows IEEE-754: dividing by zero yields ±Inf or NaN.
func (c *Calculator) Div(x, y float64) float64 {
	return x / y
}

// Ops returns the four operations as method values, in add, sub, mul, div
// order.
func (c *Calculator) Ops() []Op {
	return []Op{c.Add, c.Sub, c.Mul, c.Div}
}
