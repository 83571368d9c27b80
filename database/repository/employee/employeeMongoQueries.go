package employeeRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"staffhub/database"
	"staffhub/models"
	"staffhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const sortKeyField = "_sortKey"

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

func NewMongoEmployeeRepo(ctx context.Context, db *mongo.Database) EmployeeRepository {
	repo := &MongoEmployeeRepo{coll: db.Collection("employees")}

	if err := repo.ensureIndexes(ctx); err != nil {
		utils.GetLogger().Warn("employees: failed to create indexes", zap.Error(err))
	}
	return repo
}

// List counts the filtered set and then pages through it with an aggregation.
// String sort fields go through a lower-cased key so ordering ignores case
// while the equality filters stay exact.
func (r *MongoEmployeeRepo) List(ctx context.Context, filter models.EmployeeFilter, sort models.EmployeeSort, skip, limit int) ([]models.Employee, int64, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := buildFilter(filter)
	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	if total == 0 || int64(skip) >= total {
		return []models.Employee{}, total, nil
	}

	cursor, err := r.coll.Aggregate(ctx, buildPipeline(match, sort, skip, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, 0, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, total, nil
}

func buildFilter(f models.EmployeeFilter) bson.M {
	match := bson.M{}
	if f.Name != "" {
		match["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}
	if f.Department != "" {
		match["department"] = f.Department
	}
	if f.Class != "" {
		match["class"] = f.Class
	}
	if f.Status != "" {
		match["status"] = f.Status
	}
	if f.MinAge != nil || f.MaxAge != nil {
		age := bson.M{}
		if f.MinAge != nil {
			age["$gte"] = *f.MinAge
		}
		if f.MaxAge != nil {
			age["$lte"] = *f.MaxAge
		}
		match["age"] = age
	}
	return match
}

func buildPipeline(match bson.M, sort models.EmployeeSort, skip, limit int) mongo.Pipeline {
	dir := 1
	if sort.Descending {
		dir = -1
	}

	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	key := sortField(sort.Field)
	if key == models.SortByName || key == models.SortByDepartment {
		pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.M{
			sortKeyField: bson.M{"$toLower": "$" + key},
		}}})
		key = sortKeyField
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: key, Value: dir}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$skip", Value: int64(skip)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)
	if key == sortKeyField {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{sortKeyField: 0}}})
	}
	return pipeline
}

func sortField(field string) string {
	for _, f := range models.EmployeeSortFields {
		if f == field {
			return f
		}
	}
	return models.SortByName
}

// GetByID retrieves an employee by its unique ID.
func (r *MongoEmployeeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&emp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return &emp, nil
}

// CountByDepartment counts employees assigned to the named department.
func (r *MongoEmployeeRepo) CountByDepartment(ctx context.Context, name string) (int64, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"department": name})
	if err != nil {
		return 0, fmt.Errorf("failed to count employees in department: %w", err)
	}
	return n, nil
}
