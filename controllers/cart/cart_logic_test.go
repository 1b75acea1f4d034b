package cartController

import (
	"testing"

	"phonemania-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func checkTotal(t *testing.T, cart *models.Cart) {
	t.Helper()
	want := 0.0
	for _, item := range cart.Items {
		want += item.Price * float64(item.Quantity)
	}
	if cart.TotalPrice != want {
		t.Errorf("TotalPrice = %v, want %v", cart.TotalPrice, want)
	}
}

func TestMergeItemAppendsAndIncrements(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{}}
	ref := models.NewProductRef("p1")

	// p1 resolves to a catalog item priced 15, so the resolved price
	// wins over any client hint.
	mergeItem(&cart, ref, 2, 15)
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 || cart.Items[0].Price != 15 {
		t.Errorf("item = qty %d price %v, want qty 2 price 15", cart.Items[0].Quantity, cart.Items[0].Price)
	}
	if cart.TotalPrice != 30 {
		t.Errorf("TotalPrice = %v, want 30", cart.TotalPrice)
	}

	mergeItem(&cart, ref, 1, 15)
	if len(cart.Items) != 1 {
		t.Fatalf("merge created a duplicate line item, items = %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Items[0].Quantity)
	}
	if cart.TotalPrice != 45 {
		t.Errorf("TotalPrice = %v, want 45", cart.TotalPrice)
	}
}

func TestMergeItemOverwritesPrice(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{
		{Product: models.NewProductRef("p1"), Quantity: 1, Price: 10},
	}}

	mergeItem(&cart, models.NewProductRef("p1"), 1, 12)

	if cart.Items[0].Price != 12 {
		t.Errorf("price = %v, want most recently resolved 12", cart.Items[0].Price)
	}
	checkTotal(t, &cart)
}

func TestMergeItemKeepsSnapshotOnZeroPrice(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{}}
	ref := models.NewProductRef("p1")

	// Re-adding a non-catalog item without a price hint must not wipe
	// out the stored snapshot.
	mergeItem(&cart, ref, 2, 10)
	mergeItem(&cart, ref, 1, 0)

	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Items[0].Quantity)
	}
	if cart.Items[0].Price != 10 {
		t.Errorf("price = %v, want snapshot 10 kept", cart.Items[0].Price)
	}
	if cart.TotalPrice != 30 {
		t.Errorf("TotalPrice = %v, want 30", cart.TotalPrice)
	}
}

func TestHasItem(t *testing.T) {
	oid := primitive.NewObjectID()
	cart := models.Cart{Items: []models.CartItem{
		{Product: models.NewProductRef("p1"), Quantity: 1, Price: 10},
		{Product: models.NewProductRef(oid.Hex()), Quantity: 1, Price: 20},
	}}

	if !hasItem(&cart, "p1") {
		t.Error("hasItem missed an external id")
	}
	if !hasItem(&cart, oid.Hex()) {
		t.Error("hasItem missed a catalog id by hex")
	}
	if hasItem(&cart, "absent") {
		t.Error("hasItem matched an id not in the cart")
	}
}

func TestHasSufficientStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		quantity int
		want     bool
	}{
		{name: "stock covers quantity", stock: 5, quantity: 3, want: true},
		{name: "stock equals quantity", stock: 3, quantity: 3, want: true},
		{name: "stock below quantity", stock: 2, quantity: 3, want: false},
		{name: "out of stock", stock: 0, quantity: 1, want: false},
		{name: "zero quantity takes removal path", stock: 0, quantity: 0, want: true},
		{name: "negative quantity takes removal path", stock: 0, quantity: -2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := models.Product{Stock: tt.stock}
			if got := hasSufficientStock(&product, tt.quantity); got != tt.want {
				t.Errorf("hasSufficientStock(stock %d, qty %d) = %v, want %v", tt.stock, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestMergeItemKeepsDistinctProducts(t *testing.T) {
	oid := primitive.NewObjectID()
	cart := models.Cart{Items: []models.CartItem{}}

	mergeItem(&cart, models.NewProductRef("p1"), 1, 10)
	mergeItem(&cart, models.NewProductRef(oid.Hex()), 2, 20)

	if len(cart.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(cart.Items))
	}
	if cart.TotalPrice != 50 {
		t.Errorf("TotalPrice = %v, want 50", cart.TotalPrice)
	}
}

func TestSetItemQuantity(t *testing.T) {
	oid := primitive.NewObjectID()

	newCart := func() models.Cart {
		return models.Cart{Items: []models.CartItem{
			{Product: models.NewProductRef("p1"), Quantity: 2, Price: 10},
			{Product: models.NewProductRef(oid.Hex()), Quantity: 1, Price: 20},
		}}
	}

	tests := []struct {
		name      string
		productId string
		quantity  int
		price     float64
		found     bool
		wantItems int
		wantTotal float64
	}{
		{name: "replace quantity", productId: "p1", quantity: 5, price: 10, found: true, wantItems: 2, wantTotal: 70},
		{name: "zero removes item", productId: "p1", quantity: 0, found: true, wantItems: 1, wantTotal: 20},
		{name: "negative removes item", productId: "p1", quantity: -3, found: true, wantItems: 1, wantTotal: 20},
		{name: "catalog id by hex", productId: oid.Hex(), quantity: 4, price: 20, found: true, wantItems: 2, wantTotal: 100},
		{name: "unknown id", productId: "nope", quantity: 1, found: false, wantItems: 2, wantTotal: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := newCart()
			found := setItemQuantity(&cart, tt.productId, tt.quantity, tt.price)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if !tt.found {
				return
			}
			if len(cart.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(cart.Items), tt.wantItems)
			}
			if cart.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %v, want %v", cart.TotalPrice, tt.wantTotal)
			}
			checkTotal(t, &cart)
		})
	}
}

func TestSetItemQuantityIgnoresZeroPrice(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{
		{Product: models.NewProductRef("p1"), Quantity: 1, Price: 10},
	}}

	setItemQuantity(&cart, "p1", 2, 0)

	if cart.Items[0].Price != 10 {
		t.Errorf("price = %v, want snapshot 10 kept", cart.Items[0].Price)
	}
	checkTotal(t, &cart)
}

func TestRemoveItem(t *testing.T) {
	oid := primitive.NewObjectID()
	cart := models.Cart{Items: []models.CartItem{
		{Product: models.NewProductRef("p1"), Quantity: 2, Price: 10},
		{Product: models.NewProductRef(oid.Hex()), Quantity: 1, Price: 20},
	}}
	models.RecomputeTotal(&cart)

	removeItem(&cart, "p1")
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
	if cart.TotalPrice != 20 {
		t.Errorf("TotalPrice = %v, want 20", cart.TotalPrice)
	}

	// Removing an id that is not in the cart leaves it untouched.
	removeItem(&cart, "absent")
	if len(cart.Items) != 1 || cart.TotalPrice != 20 {
		t.Errorf("cart changed by removing an absent id")
	}

	removeItem(&cart, oid.Hex())
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Errorf("items = %d total = %v, want empty cart", len(cart.Items), cart.TotalPrice)
	}
}

func TestClearItems(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{
		{Product: models.NewProductRef("p1"), Quantity: 2, Price: 10},
	}}
	models.RecomputeTotal(&cart)

	clearItems(&cart)

	if len(cart.Items) != 0 {
		t.Errorf("items = %d, want 0", len(cart.Items))
	}
	if cart.TotalPrice != 0 {
		t.Errorf("TotalPrice = %v, want 0", cart.TotalPrice)
	}
}
