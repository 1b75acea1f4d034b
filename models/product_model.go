package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductImage struct {
	Url string `bson:"url" json:"url" validate:"required"`
}

type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductId   string              `bson:"productId,omitempty" json:"productId,omitempty"`
	Name        string              `bson:"name" json:"name" validate:"required,max=100"`
	Description string              `bson:"description" json:"description" validate:"required,max=2000"`
	Price       float64             `bson:"price" json:"price" validate:"gte=0"`
	Images      []ProductImage      `bson:"images" json:"images"`
	Category    string              `bson:"category" json:"category" validate:"required"`
	Brand       string              `bson:"brand" json:"brand" validate:"required"`
	Stock       int                 `bson:"stock" json:"stock"`
	Condition   string              `bson:"condition,omitempty" json:"condition,omitempty"`
	Seller      *primitive.ObjectID `bson:"seller,omitempty" json:"seller,omitempty"`
	SellerName  string              `bson:"-" json:"sellerName,omitempty"`
	IsSold      bool                `bson:"isSold" json:"isSold"`
	Ratings     float64             `bson:"ratings" json:"ratings"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

var Categories = []string{"Smartphones", "Accessories", "Others"}

var Conditions = []string{"New", "Like New", "Used", "Refurbished"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidCondition(c string) bool {
	for _, v := range Conditions {
		if v == c {
			return true
		}
	}
	return false
}

// IsListing reports whether the product was submitted by a user rather
// than belonging to the platform catalog.
func (p *Product) IsListing() bool {
	return p.Seller != nil
}
