package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"staffhub/database"
	"staffhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new employee document.
func (r *MongoEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	emp.ID = primitive.NewObjectID()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	if emp.Subjects == nil {
		emp.Subjects = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, emp); err != nil {
		return fmt.Errorf("failed to create employee: %w", database.TranslateError(err))
	}
	return nil
}

// Update sets every field present in patch and returns the stored result.
func (r *MongoEmployeeRepo) Update(ctx context.Context, id string, patch models.EmployeePatch) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrNotFound
	}
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := patchToSet(patch)
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Employee
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", database.TranslateError(err))
	}
	return &updated, nil
}

func patchToSet(p models.EmployeePatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Age != nil {
		set["age"] = *p.Age
	}
	if p.Class != nil {
		set["class"] = *p.Class
	}
	if p.Subjects != nil {
		set["subjects"] = *p.Subjects
	}
	if p.Attendance != nil {
		set["attendance"] = *p.Attendance
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Department != nil {
		set["department"] = *p.Department
	}
	if p.Position != nil {
		set["position"] = *p.Position
	}
	if p.JoinDate != nil {
		set["joinDate"] = *p.JoinDate
	}
	if p.Salary != nil {
		set["salary"] = *p.Salary
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	return set
}

// Delete removes an employee by ID.
func (r *MongoEmployeeRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

// RenameDepartment reassigns every employee of oldName to newName.
func (r *MongoEmployeeRepo) RenameDepartment(ctx context.Context, oldName, newName string) (int64, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{"department": oldName},
		bson.M{"$set": bson.M{"department": newName, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to rename department on employees: %w", err)
	}
	return res.ModifiedCount, nil
}
