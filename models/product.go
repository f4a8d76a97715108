// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is an item made by a factory in the packaging demo.
type Product struct {
	// Name is the display name, e.g. "Pizza".
	Name string
	// Price is the product price in whole currency units.
	Price float64
}

// Box wraps exactly one Product.
type Box struct {
	Product Product
}
