package cartController

import (
	"context"
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

func cartCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "carts")
}

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "products")
}

type AddToCartRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price"`
}

type UpdateCartRequest struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func userObjectID(c *fiber.Ctx) (primitive.ObjectID, bool) {
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

// getOrCreateCart fetches the caller's cart, creating an empty one on
// first access.
func getOrCreateCart(ctx context.Context, userOID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := cartCollection().FindOne(ctx, bson.M{"user": userOID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{
			Id:        primitive.NewObjectID(),
			UserId:    userOID,
			Items:     []models.CartItem{},
			CreatedAt: time.Now(),
		}
		if _, insErr := cartCollection().InsertOne(ctx, cart); insErr != nil {
			return cart, insErr
		}
		return cart, nil
	}
	return cart, err
}

// saveCart writes the whole cart back in a single replace on the one
// document keyed by user. Each write lands atomically, but two
// concurrent read-modify-replace cycles remain last-write-wins.
func saveCart(ctx context.Context, cart *models.Cart) error {
	_, err := cartCollection().ReplaceOne(ctx,
		bson.M{"user": cart.UserId}, cart, options.Replace().SetUpsert(true))
	return err
}

// resolvePrice picks the authoritative price for a line item: the
// current catalog price when the ref resolves, the client-supplied hint
// otherwise. External refs never hit the catalog.
func resolvePrice(ctx context.Context, ref models.ProductRef, hint float64) (float64, error) {
	if ref.IsExternal() {
		return hint, nil
	}
	var product models.Product
	err := productCollection().FindOne(ctx, bson.M{"_id": ref.OID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return hint, nil
	}
	if err != nil {
		return 0, err
	}
	return product.Price, nil
}

// populateCart attaches catalog details to resolvable line items for
// display. External and since-deleted products simply stay bare.
func populateCart(ctx context.Context, cart *models.Cart) error {
	for i := range cart.Items {
		if cart.Items[i].Product.IsExternal() {
			continue
		}
		var product models.Product
		err := productCollection().FindOne(ctx, bson.M{"_id": cart.Items[i].Product.OID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return err
		}
		cart.Items[i].Details = &product
	}
	return nil
}

func GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userOID, ok := userObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cart, err := getOrCreateCart(ctx, userOID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	if err := populateCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched cart",
		Result:  &fiber.Map{"cart": cart},
	})
}

func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userOID, ok := userObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var request AddToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if request.ProductID == "" || request.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product or quantity",
		})
	}

	ref := models.NewProductRef(request.ProductID)
	price, err := resolvePrice(ctx, ref, request.Price)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
		})
	}

	cart, err := getOrCreateCart(ctx, userOID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	// A product outside the catalog has no price of its own; the first
	// add must carry one. Re-adds keep the stored snapshot instead.
	if ref.IsExternal() && price <= 0 && !hasItem(&cart, ref.String()) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Price is required for products not in the catalog",
		})
	}

	mergeItem(&cart, ref, request.Quantity, price)

	if err := saveCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	if err := populateCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully added to cart",
		Result:  &fiber.Map{"cart": cart},
	})
}

func UpdateCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userOID, ok := userObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	productId := c.Params("productId")

	var request UpdateCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	ref := models.NewProductRef(productId)
	price := request.Price
	if !ref.IsExternal() {
		var product models.Product
		err := productCollection().FindOne(ctx, bson.M{"_id": ref.OID}).Decode(&product)
		if err == nil {
			price = product.Price
			if !hasSufficientStock(&product, request.Quantity) {
				return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
					Status:  fiber.StatusBadRequest,
					Message: "Insufficient stock",
				})
			}
		} else if err != mongo.ErrNoDocuments {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching product details",
			})
		}
	}

	var cart models.Cart
	if err := cartCollection().FindOne(ctx, bson.M{"user": userOID}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Cart not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	if !setItemQuantity(&cart, productId, request.Quantity, price) {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Item not found in cart",
		})
	}

	if err := saveCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	if err := populateCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully updated cart",
		Result:  &fiber.Map{"cart": cart},
	})
}

func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userOID, ok := userObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var cart models.Cart
	if err := cartCollection().FindOne(ctx, bson.M{"user": userOID}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Cart not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	removeItem(&cart, c.Params("productId"))

	if err := saveCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	if err := populateCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully removed from cart",
		Result:  &fiber.Map{"cart": cart},
	})
}

func ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userOID, ok := userObjectID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var cart models.Cart
	if err := cartCollection().FindOne(ctx, bson.M{"user": userOID}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Cart not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	clearItems(&cart)

	if err := saveCart(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared",
	})
}
