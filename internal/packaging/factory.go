// Package packaging puts products into boxes. The same packaging is done two
// ways: by passing producer and callback functions, and by passing a value
// that implements a single-method interface.
package packaging

import "github.com/MKhiriev/go-homework-dispatch/models"

// LogThreshold is the price above which BoxFactory.Package calls its log
// callback.
const LogThreshold = 100

// Factory makes one kind of product.
type Factory interface {
	Make() models.Product
}

// ProductFactory offers its products as methods, to be passed around as
// function values.
type ProductFactory struct{}

func (ProductFactory) ProduceBurger() models.Product {
	return goldBurger()
}

func (ProductFactory) ProducePizza() models.Product {
	return pizza()
}

type GoldBurgerFactory struct{}

func (GoldBurgerFactory) Make() models.Product {
	return goldBurger()
}

type PizzaFactory struct{}

func (PizzaFactory) Make() models.Product {
	return pizza()
}

func goldBurger() models.Product {
	return models.Product{Name: "Gold Burger", Price: 110}
}

func pizza() models.Product {
	return models.Product{Name: "Pizza", Price: 10}
}

// BoxFactory packages products.
type BoxFactory struct{}

// Package boxes the product returned by produce. logCallback is called with
// the product when its price exceeds LogThreshold.
func (BoxFactory) Package(produce func() models.Product, logCallback func(models.Product)) models.Box {
	product := produce()
	if product.Price > LogThreshold {
		logCallback(product)
	}

	return models.Box{Product: product}
}

// InterfacePackage boxes whatever f makes. It never logs.
func (BoxFactory) InterfacePackage(f Factory) models.Box {
	return models.Box{Product: f.Make()}
}
