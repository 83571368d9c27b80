package departmentRepo

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"staffhub/database"
	"staffhub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDepartmentRepo implements DepartmentRepository in process memory.
type MemoryDepartmentRepo struct {
	mu          sync.RWMutex
	departments map[primitive.ObjectID]models.Department
}

func NewMemoryDepartmentRepo() *MemoryDepartmentRepo {
	return &MemoryDepartmentRepo{departments: make(map[primitive.ObjectID]models.Department)}
}

func (r *MemoryDepartmentRepo) List(_ context.Context) ([]models.Department, error) {
	r.mu.RLock()
	out := make([]models.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, d)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Department) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (r *MemoryDepartmentRepo) GetByID(_ context.Context, id string) (*models.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.departments[oid]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *MemoryDepartmentRepo) Create(_ context.Context, dept *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(dept.Name, primitive.NilObjectID) {
		return database.ErrDuplicateKey
	}
	now := time.Now()
	dept.ID = primitive.NewObjectID()
	dept.CreatedAt = now
	dept.UpdatedAt = now
	r.departments[dept.ID] = *dept
	return nil
}

func (r *MemoryDepartmentRepo) Update(_ context.Context, dept *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.departments[dept.ID]
	if !ok {
		return database.ErrNotFound
	}
	if r.nameTaken(dept.Name, dept.ID) {
		return database.ErrDuplicateKey
	}
	cur.Name = dept.Name
	cur.Description = dept.Description
	cur.UpdatedAt = time.Now()
	r.departments[dept.ID] = cur
	*dept = cur
	return nil
}

func (r *MemoryDepartmentRepo) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.departments[oid]; !ok {
		return database.ErrNotFound
	}
	delete(r.departments, oid)
	return nil
}

func (r *MemoryDepartmentRepo) nameTaken(name string, except primitive.ObjectID) bool {
	for id, d := range r.departments {
		if id != except && d.Name == name {
			return true
		}
	}
	return false
}
