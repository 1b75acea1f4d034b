package productController

import "go.mongodb.org/mongo-driver/bson"

// SearchFilter builds the catalog query for free-text search: a
// case-insensitive substring match over name, description and brand,
// optionally narrowed by category. Without a search string the whole
// catalog matches; "All" is the category sentinel for no narrowing.
func SearchFilter(search, category string) bson.M {
	if search == "" {
		return bson.M{}
	}

	filter := bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
			{"brand": bson.M{"$regex": search, "$options": "i"}},
		},
	}

	if category != "" && category != "All" {
		filter["category"] = bson.M{"$regex": category, "$options": "i"}
	}

	return filter
}
