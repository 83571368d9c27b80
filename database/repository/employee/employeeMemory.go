package employeeRepo

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

// MemoryEmployeeRepo implements EmployeeRepository in process memory.
type MemoryEmployeeRepo struct {
	mu        sync.RWMutex
	employees map[primitive.ObjectID]models.Employee
}

func NewMemoryEmployeeRepo() *MemoryEmployeeRepo {
	return &MemoryEmployeeRepo{employees: make(map[primitive.ObjectID]models.Employee)}
}

func (r *MemoryEmployeeRepo) List(_ context.Context, filter models.EmployeeFilter, sort models.EmployeeSort, skip, limit int) ([]models.Employee, int64, error) {
	r.mu.RLock()
	matched := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if filter.Matches(e) {
			matched = append(matched, cloneEmployee(e))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b models.Employee) int {
		if c := sort.Directed(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.ID.Hex(), b.ID.Hex())
	})

	total := int64(len(matched))
	if skip >= len(matched) {
		return []models.Employee{}, total, nil
	}
	end := min(skip+limit, len(matched))
	return matched[skip:end], total, nil
}

func (r *MemoryEmployeeRepo) GetByID(_ context.Context, id string) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[oid]
	if !ok {
		return nil, nil
	}
	e = cloneEmployee(e)
	return &e, nil
}

func (r *MemoryEmployeeRepo) Create(_ context.Context, emp *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(emp.Email, primitive.NilObjectID) {
		return database.ErrDuplicateKey
	}
	now := time.Now()
	emp.ID = primitive.NewObjectID()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	if emp.Subjects == nil {
		emp.Subjects = []string{}
	}
	r.employees[emp.ID] = cloneEmployee(*emp)
	return nil
}

func (r *MemoryEmployeeRepo) Update(_ context.Context, id string, patch models.EmployeePatch) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	if patch.Email != nil && r.emailTaken(*patch.Email, oid) {
		return nil, database.ErrDuplicateKey
	}
	patch.Apply(&e)
	e.UpdatedAt = time.Now()
	r.employees[oid] = e

	out := cloneEmployee(e)
	return &out, nil
}

func (r *MemoryEmployeeRepo) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[oid]; !ok {
		return database.ErrNotFound
	}
	delete(r.employees, oid)
	return nil
}

func (r *MemoryEmployeeRepo) CountByDepartment(_ context.Context, name string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, e := range r.employees {
		if e.Department == name {
			n++
		}
	}
	return n, nil
}

func (r *MemoryEmployeeRepo) RenameDepartment(_ context.Context, oldName, newName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	now := time.Now()
	for id, e := range r.employees {
		if e.Department == oldName {
			e.Department = newName
			e.UpdatedAt = now
			r.employees[id] = e
			n++
		}
	}
	return n, nil
}

// emailTaken must be called with r.mu held.
func (r *MemoryEmployeeRepo) emailTaken(email string, except primitive.ObjectID) bool {
	for id, e := range r.employees {
		if id != except && e.Email == email {
			return true
		}
	}
	return false
}

func cloneEmployee(e models.Employee) models.Employee {
	e.Subjects = slices.Clone(e.Subjects)
	return e
}
