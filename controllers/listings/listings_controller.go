package listingController

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"phonemania-api/configs"
	"phonemania-api/models"
	"phonemania-api/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "products")
}

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "users")
}

// newListingProductId generates the human-recognizable id user listings
// carry instead of a catalog uuid.
func newListingProductId() string {
	return fmt.Sprintf("USR-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// canModify reports whether caller owns the listing. Products without a
// seller are platform catalog items and are never modifiable through
// the listings routes.
func canModify(product *models.Product, caller primitive.ObjectID) bool {
	return product.Seller != nil && *product.Seller == caller
}

func callerObjectID(c *fiber.Ctx) (primitive.ObjectID, bool) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// GetMyListings returns the caller's own listings.
func GetMyListings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	caller, ok := callerObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cursor, err := productCollection().Find(ctx, bson.M{"seller": caller})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching listings",
		})
	}

	listings := []models.Product{}
	if err = cursor.All(ctx, &listings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing listings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched listings",
		Result:  &fiber.Map{"listings": listings},
	})
}

// GetAllListings returns every user-submitted product, newest first,
// with seller names attached.
func GetAllListings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := productCollection().Find(ctx,
		bson.M{"seller": bson.M{"$exists": true, "$ne": nil}}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching listings",
		})
	}

	listings := []models.Product{}
	if err = cursor.All(ctx, &listings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing listings",
		})
	}

	if err := attachSellerNames(ctx, listings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching seller details",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched listings",
		Result:  &fiber.Map{"listings": listings},
	})
}

func attachSellerNames(ctx context.Context, listings []models.Product) error {
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, l := range listings {
		if l.Seller != nil && !seen[*l.Seller] {
			seen[*l.Seller] = true
			ids = append(ids, *l.Seller)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := userCollection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	var sellers []models.User
	if err = cursor.All(ctx, &sellers); err != nil {
		return err
	}

	names := map[primitive.ObjectID]string{}
	for _, s := range sellers {
		names[s.Id] = s.Name
	}
	for i := range listings {
		if listings[i].Seller != nil {
			listings[i].SellerName = names[*listings[i].Seller]
		}
	}
	return nil
}

func CreateListing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	caller, ok := callerObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var listing models.Product
	if err := c.BodyParser(&listing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing listing data",
		})
	}

	if listing.Name == "" || listing.Description == "" || listing.Brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name, description and brand are required",
		})
	}

	if !models.ValidCategory(listing.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please select correct category",
		})
	}

	if listing.Condition == "" {
		listing.Condition = "New"
	} else if !models.ValidCondition(listing.Condition) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please select a valid condition",
		})
	}

	listing.ID = primitive.NewObjectID()
	listing.ProductId = newListingProductId()
	listing.Seller = &caller
	listing.IsSold = false
	listing.CreatedAt = time.Now()

	if _, err := productCollection().InsertOne(ctx, listing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Listing created successfully",
		Result:  &fiber.Map{"listing": listing},
	})
}

// fetchOwnedListing loads the listing and enforces ownership, answering
// with the right status on the way out.
func fetchOwnedListing(c *fiber.Ctx, ctx context.Context, caller primitive.ObjectID) (*models.Product, error) {
	listingID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid listing Id",
		})
	}

	var listing models.Product
	if err := productCollection().FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Listing not found",
			})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching listing",
		})
	}

	if !canModify(&listing, caller) {
		return nil, c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not authorized to modify this listing",
		})
	}

	return &listing, nil
}

func UpdateListing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	caller, ok := callerObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	listing, err := fetchOwnedListing(c, ctx, caller)
	if listing == nil {
		return err
	}

	var request models.Product
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing listing data",
		})
	}

	update := bson.M{}
	if request.Name != "" {
		update["name"] = request.Name
	}
	if request.Description != "" {
		update["description"] = request.Description
	}
	if request.Price > 0 {
		update["price"] = request.Price
	}
	if len(request.Images) > 0 {
		update["images"] = request.Images
	}
	if request.Category != "" {
		update["category"] = request.Category
	}
	if request.Brand != "" {
		update["brand"] = request.Brand
	}
	if request.Stock > 0 {
		update["stock"] = request.Stock
	}
	if request.Condition != "" {
		update["condition"] = request.Condition
	}

	if len(update) > 0 {
		if _, err := productCollection().UpdateOne(ctx, bson.M{"_id": listing.ID}, bson.M{"$set": update}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error updating listing",
			})
		}
		if err := productCollection().FindOne(ctx, bson.M{"_id": listing.ID}).Decode(listing); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching listing",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Listing updated successfully",
		Result:  &fiber.Map{"listing": listing},
	})
}

func DeleteListing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	caller, ok := callerObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	listing, err := fetchOwnedListing(c, ctx, caller)
	if listing == nil {
		return err
	}

	if _, err := productCollection().DeleteOne(ctx, bson.M{"_id": listing.ID}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting listing",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Listing removed successfully",
	})
}
