package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gadgetfinder/gadget-finder-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidProductID    = errors.New("invalid product ID format")
	ErrProductNotFound     = errors.New("product not found")
	ErrMissingRequired     = errors.New("missing required fields: name, price, and sku are required")
	ErrNotPersisted        = errors.New("failed to insert product into database")
	ErrDatabaseUnavailable = errors.New("database is not configured")
)

const (
	relatedProductsLimit = int64(4)
	defaultQueryTimeout  = 5 * time.Second
)

// ProductService is the repository for the products collection. A nil
// collection handle is the unconfigured state: every operation answers
// ErrDatabaseUnavailable without touching the network.
type ProductService struct {
	collection *mongo.Collection
}

func NewProductService(collection *mongo.Collection) *ProductService {
	return &ProductService{collection: collection}
}

func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// GetProducts returns every product, newest first. No pagination happens at
// this layer; the catalog engine slices the full list.
func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	if s.collection == nil {
		return nil, ErrDatabaseUnavailable
	}

	ctx, cancel := queryContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetFeaturedProducts returns up to limit featured products, newest first.
func (s *ProductService) GetFeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	if s.collection == nil {
		return nil, ErrDatabaseUnavailable
	}
	if limit <= 0 {
		limit = 4
	}

	ctx, cancel := queryContext(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.collection.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID looks up one product plus up to four others from the same
// category. The identifier is validated before any query, so a malformed id
// never reaches the database. The related lookup is best effort: if it
// fails, the primary result is still returned with an empty related set.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, []models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, ErrInvalidProductID
	}

	if s.collection == nil {
		return nil, nil, ErrDatabaseUnavailable
	}

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var product models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, err
	}

	related := []models.Product{}
	opts := options.Find().SetLimit(relatedProductsLimit)
	cursor, err := s.collection.Find(ctx, bson.M{
		"_id":      bson.M{"$ne": objectID},
		"category": product.Category,
	}, opts)
	if err == nil {
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &related); err != nil {
			related = []models.Product{}
		}
	}

	return &product, related, nil
}

// CreateProduct validates the required fields, stamps both timestamps and
// inserts a single document. It returns the generated identifier as hex.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (string, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price <= 0 || strings.TrimSpace(input.SKU) == "" {
		return "", ErrMissingRequired
	}

	if s.collection == nil {
		return "", ErrDatabaseUnavailable
	}

	now := time.Now()
	status := input.Status
	if status == "" {
		status = "active"
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	product := models.Product{
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		Category:          input.Category,
		Brand:             input.Brand,
		Model:             input.Model,
		SKU:               input.SKU,
		Stock:             input.Stock,
		Weight:            input.Weight,
		Dimensions:        input.Dimensions,
		Specifications:    input.Specifications,
		PowerRequirements: input.PowerRequirements,
		Certifications:    input.Certifications,
		Colors:            input.Colors,
		Features:          input.Features,
		Tags:              input.Tags,
		Status:            status,
		Featured:          input.Featured,
		Images:            images,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	ctx, cancel := queryContext(ctx)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok || insertedID.IsZero() {
		return "", ErrNotPersisted
	}
	return insertedID.Hex(), nil
}
