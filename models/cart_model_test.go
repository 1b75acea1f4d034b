package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewProductRef(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name     string
		raw      string
		external bool
	}{
		{name: "valid object id", raw: oid.Hex(), external: false},
		{name: "demo id", raw: "p1", external: true},
		{name: "truncated hex", raw: oid.Hex()[:10], external: true},
		{name: "user listing id", raw: "USR-1700000000000-42", external: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := NewProductRef(tt.raw)
			if ref.IsExternal() != tt.external {
				t.Fatalf("IsExternal() = %v, want %v", ref.IsExternal(), tt.external)
			}
			if ref.String() != tt.raw {
				t.Errorf("String() = %q, want round-trip of %q", ref.String(), tt.raw)
			}
			if !ref.Matches(tt.raw) {
				t.Errorf("Matches(%q) = false, want true", tt.raw)
			}
		})
	}
}

func TestProductRefMatchesOtherRepresentation(t *testing.T) {
	oid := primitive.NewObjectID()

	catalog := NewProductRef(oid.Hex())
	if catalog.Matches("p1") {
		t.Error("catalog ref matched an unrelated raw id")
	}

	external := NewProductRef("p1")
	if external.Matches(oid.Hex()) {
		t.Error("external ref matched an object id hex")
	}
}

func TestRecomputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  float64
	}{
		{name: "empty cart", items: []CartItem{}, want: 0},
		{
			name: "single item",
			items: []CartItem{
				{Product: NewProductRef("p1"), Quantity: 2, Price: 15},
			},
			want: 30,
		},
		{
			name: "mixed items",
			items: []CartItem{
				{Product: NewProductRef("p1"), Quantity: 3, Price: 15},
				{Product: NewProductRef(primitive.NewObjectID().Hex()), Quantity: 1, Price: 199.99},
			},
			want: 244.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Cart{Items: tt.items, TotalPrice: -1}
			RecomputeTotal(&cart)
			if cart.TotalPrice != tt.want {
				t.Errorf("TotalPrice = %v, want %v", cart.TotalPrice, tt.want)
			}
		})
	}
}
