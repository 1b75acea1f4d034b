package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRef identifies the product behind a cart line item. Exactly one
// of the two fields is set: OID for catalog products, External for ids
// that never resolved to a catalog record (demo/ad hoc products). The
// split is decided once, in NewProductRef, so downstream code never has
// to sniff which shape an id is in.
type ProductRef struct {
	OID      primitive.ObjectID `bson:"oid,omitempty"`
	External string             `bson:"external,omitempty"`
}

// NewProductRef classifies a raw product id. Anything that is not a
// valid ObjectID hex string is treated as an external id.
func NewProductRef(raw string) ProductRef {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return ProductRef{OID: oid}
	}
	return ProductRef{External: raw}
}

func (r ProductRef) IsExternal() bool {
	return r.External != ""
}

// Matches compares against a raw id in either representation, so carts
// holding a mix of catalog and external items look items up uniformly.
func (r ProductRef) Matches(raw string) bool {
	if r.IsExternal() {
		return r.External == raw
	}
	return r.OID.Hex() == raw
}

func (r ProductRef) String() string {
	if r.IsExternal() {
		return r.External
	}
	return r.OID.Hex()
}

func (r ProductRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id       string `json:"id"`
		External bool   `json:"external"`
	}{Id: r.String(), External: r.IsExternal()})
}

type CartItem struct {
	Product  ProductRef `bson:"product" json:"product"`
	Quantity int        `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price    float64    `bson:"price" json:"price"`
	// Details carries the resolved catalog record for display; it is
	// populated per response and never persisted.
	Details *Product `bson:"-" json:"details,omitempty"`
}

type Cart struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId     primitive.ObjectID `bson:"user" json:"userId"`
	Items      []CartItem         `bson:"items" json:"items"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// RecomputeTotal derives totalPrice from the line items. Every mutating
// cart operation ends with a call to it; totalPrice is never updated any
// other way.
func RecomputeTotal(c *Cart) {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalPrice = total
}
