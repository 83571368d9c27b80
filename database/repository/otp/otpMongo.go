package otpRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffhub/database"
	"staffhub/models"
	"staffhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoOTPRepo implements OTPRepository using MongoDB.
type MongoOTPRepo struct {
	coll *mongo.Collection
}

func NewMongoOTPRepo(ctx context.Context, db *mongo.Database) OTPRepository {
	repo := &MongoOTPRepo{coll: db.Collection("otps")}

	if err := repo.ensureIndexes(ctx); err != nil {
		utils.GetLogger().Warn("otps: failed to create indexes", zap.Error(err))
	}
	return repo
}

// Replace upserts by email so a new request atomically supersedes the old code.
func (r *MongoOTPRepo) Replace(ctx context.Context, rec *models.OTPRecord) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	update := bson.M{"$set": bson.M{
		"email":     rec.Email,
		"codeHash":  rec.CodeHash,
		"attempts":  rec.Attempts,
		"expiresAt": rec.ExpiresAt,
		"createdAt": rec.CreatedAt,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.OTPRecord
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": rec.Email}, update, opts).Decode(&stored); err != nil {
		return fmt.Errorf("failed to store otp: %w", database.TranslateError(err))
	}
	rec.ID = stored.ID
	return nil
}

func (r *MongoOTPRepo) FindByEmail(ctx context.Context, email string) (*models.OTPRecord, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.OTPRecord
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch otp: %w", err)
	}
	return &rec, nil
}

func (r *MongoOTPRepo) IncrementAttempts(ctx context.Context, rec *models.OTPRecord, max int) (int, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := recordFilter(rec)
	filter["attempts"] = bson.M{"$lt": max}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.OTPRecord
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"attempts": 1}}, opts).Decode(&updated)
	if err != nil {
		return 0, database.TranslateError(err)
	}
	return updated.Attempts, nil
}

func (r *MongoOTPRepo) Consume(ctx context.Context, rec *models.OTPRecord) (bool, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, recordFilter(rec))
	if err != nil {
		return false, fmt.Errorf("failed to delete otp: %w", err)
	}
	return res.DeletedCount == 1, nil
}

func recordFilter(rec *models.OTPRecord) bson.M {
	filter := bson.M{"email": rec.Email, "codeHash": rec.CodeHash}
	if rec.ID != primitive.NilObjectID {
		filter["_id"] = rec.ID
	}
	return filter
}
