package mongodb

import (
	// Go Internal Packages
	"context"
	"fmt"

	// Local Packages
	models "pos-engine/models"
	utils "pos-engine/utils"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	organizationsCollection = "organizations"
	locationsCollection     = "locations"
	readersCollection       = "payment_readers"
)

// CatalogRepository reads the organization, its locations and their readers.
type CatalogRepository struct {
	client         *mongo.Client
	database       string
	organizationID int64
	logger         *zap.Logger
}

// NewCatalogRepository returns a repository for organizationID, or for the
// first organization that is not deleted when organizationID is zero.
func NewCatalogRepository(client *mongo.Client, database string, organizationID int64, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{client: client, database: database, organizationID: organizationID, logger: logger}
}

// FetchTransactionData loads the catalog. Locations and readers come back in
// _id order.
func (r *CatalogRepository) FetchTransactionData(ctx context.Context) (*models.TransactionData, error) {
	db := r.client.Database(r.database)

	org, err := r.findOrganization(ctx, db)
	if err != nil {
		return nil, err
	}

	byID := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	var locDocs []locationDoc
	cur, err := db.Collection(locationsCollection).Find(ctx, bson.M{"organization_id": org.ID}, byID)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	if err := cur.All(ctx, &locDocs); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}

	locations := make([]models.Location, 0, len(locDocs))
	locationIDs := make([]int64, 0, len(locDocs))
	for i := range locDocs {
		loc, err := locDocs[i].Transform()
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
		locationIDs = append(locationIDs, loc.ID)
	}

	readers := []models.PaymentReader{}
	if len(locationIDs) > 0 {
		var readerDocs []readerDoc
		filter := bson.M{"location_id": bson.M{"$in": locationIDs}}
		cur, err := db.Collection(readersCollection).Find(ctx, filter, byID)
		if err != nil {
			return nil, fmt.Errorf("failed to query payment readers: %w", err)
		}
		if err := cur.All(ctx, &readerDocs); err != nil {
			return nil, fmt.Errorf("failed to decode payment readers: %w", err)
		}
		for i := range readerDocs {
			readers = append(readers, readerDocs[i].Transform())
		}
	}

	r.logger.Debug("catalog fetched",
		zap.Int64("organization_id", org.ID),
		zap.String("location_ids", utils.JoinIDs(locationIDs)),
		zap.Int("readers", len(readers)),
	)
	return &models.TransactionData{Organization: &org, Locations: locations, Readers: readers}, nil
}

func (r *CatalogRepository) findOrganization(ctx context.Context, db *mongo.Database) (models.Organization, error) {
	filter := bson.M{"deleted_at": nil}
	if r.organizationID != 0 {
		filter = bson.M{"_id": r.organizationID}
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var doc organizationDoc
	err := db.Collection(organizationsCollection).FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, fmt.Errorf("no organization found")
	}
	if err != nil {
		return models.Organization{}, fmt.Errorf("failed to query organization: %w", err)
	}
	return doc.Transform()
}
