package cartController

import (
	"phonemania-api/models"
)

// mergeItem folds (ref, quantity, price) into the cart. A cart holds at
// most one line item per product: an existing item gets its quantity
// incremented and its price overwritten with the freshly resolved one,
// otherwise a new item is appended. A non-positive price means nothing
// resolved and no hint was given, so the existing snapshot is kept.
func mergeItem(cart *models.Cart, ref models.ProductRef, quantity int, price float64) {
	for i := range cart.Items {
		if cart.Items[i].Product.Matches(ref.String()) {
			cart.Items[i].Quantity += quantity
			if price > 0 {
				cart.Items[i].Price = price
			}
			models.RecomputeTotal(cart)
			return
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		Product:  ref,
		Quantity: quantity,
		Price:    price,
	})
	models.RecomputeTotal(cart)
}

// setItemQuantity replaces the quantity of the matching line item; a
// quantity of zero or less drops the item. price is applied only when
// positive, mirroring the add-path snapshot rules. Returns false when no
// item matches.
func setItemQuantity(cart *models.Cart, productId string, quantity int, price float64) bool {
	idx := -1
	for i := range cart.Items {
		if cart.Items[i].Product.Matches(productId) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
		if price > 0 {
			cart.Items[idx].Price = price
		}
	}
	models.RecomputeTotal(cart)
	return true
}

// hasItem reports whether the cart already holds a line item for
// productId, in either id representation.
func hasItem(cart *models.Cart, productId string) bool {
	for i := range cart.Items {
		if cart.Items[i].Product.Matches(productId) {
			return true
		}
	}
	return false
}

// hasSufficientStock reports whether a catalog product can cover the
// requested quantity. Non-positive quantities always pass; they take
// the removal path instead of reserving stock.
func hasSufficientStock(product *models.Product, quantity int) bool {
	return quantity <= 0 || product.Stock >= quantity
}

// removeItem drops every line item matching productId in either id
// representation.
func removeItem(cart *models.Cart, productId string) {
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !item.Product.Matches(productId) {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	models.RecomputeTotal(cart)
}

func clearItems(cart *models.Cart) {
	cart.Items = []models.CartItem{}
	models.RecomputeTotal(cart)
}
