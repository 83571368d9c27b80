package departmentRepo

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

// MongoDepartmentRepo implements DepartmentRepository using MongoDB.
type MongoDepartmentRepo struct {
	coll *mongo.Collection
}

func NewMongoDepartmentRepo(ctx context.Context, db *mongo.Database) DepartmentRepository {
	repo := &MongoDepartmentRepo{coll: db.Collection("departments")}

	if err := repo.ensureIndexes(ctx); err != nil {
		utils.GetLogger().Warn("departments: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoDepartmentRepo) List(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer cursor.Close(ctx)

	departments := []models.Department{}
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}
	return departments, nil
}

func (r *MongoDepartmentRepo) GetByID(ctx context.Context, id string) (*models.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dept models.Department
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dept); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch department: %w", err)
	}
	return &dept, nil
}

func (r *MongoDepartmentRepo) Create(ctx context.Context, dept *models.Department) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	dept.ID = primitive.NewObjectID()
	dept.CreatedAt = now
	dept.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dept); err != nil {
		return fmt.Errorf("failed to create department: %w", database.TranslateError(err))
	}
	return nil
}

func (r *MongoDepartmentRepo) Update(ctx context.Context, dept *models.Department) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dept.UpdatedAt = time.Now()
	res, err := r.coll.UpdateByID(ctx, dept.ID, bson.M{"$set": bson.M{
		"name":        dept.Name,
		"description": dept.Description,
		"updatedAt":   dept.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("failed to update department: %w", database.TranslateError(err))
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoDepartmentRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}
