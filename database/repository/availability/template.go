// File: database/repository/availability/template.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"lipo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetWeeklyTemplate returns the provider's template rows ordered by weekday.
func (repo *mongoAvailabilityRepo) GetWeeklyTemplate(ctx context.Context, providerID string) ([]models.ProviderAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}})
	cursor, err := repo.templateColl.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching weekly template: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.ProviderAvailability
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding weekly template: %w", err)
	}
	return rows, nil
}

// ReplaceWeeklyTemplate deletes the provider's current template rows and
// inserts the new set inside one transaction, so a failure mid-replace rolls
// back to the previous template instead of leaving zero rows.
func (repo *mongoAvailabilityRepo) ReplaceWeeklyTemplate(ctx context.Context, providerID string, rows []models.ProviderAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(rows))
	for i, row := range rows {
		row.ProviderID = providerID
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
		row.UpdatedAt = now
		docs[i] = row
	}

	sess, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.templateColl.DeleteMany(sc, bson.M{"provider_id": providerID}); err != nil {
			return fmt.Errorf("delete existing template failed: %w", err)
		}
		if len(docs) == 0 {
			return nil
		}
		if _, err := repo.templateColl.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert new template failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("template replace transaction failed: %w", err)
	}
	return nil
}
