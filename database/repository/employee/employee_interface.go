package employeeRepo

import (
	"context"

	"staffhub/models"
)

// EmployeeRepository defines methods for employee data access.
type EmployeeRepository interface {
	// List returns the page [skip, skip+limit) of employees matching filter in
	// sort order, plus the number of matches before slicing.
	List(ctx context.Context, filter models.EmployeeFilter, sort models.EmployeeSort, skip, limit int) ([]models.Employee, int64, error)
	// GetByID returns nil, nil when absent.
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	// Create inserts emp and sets its ID. Returns database.ErrDuplicateKey on a taken email.
	Create(ctx context.Context, emp *models.Employee) error
	// Update applies patch and returns the updated record.
	Update(ctx context.Context, id string, patch models.EmployeePatch) (*models.Employee, error)
	// Delete returns database.ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
	// CountByDepartment counts employees whose department equals name exactly.
	CountByDepartment(ctx context.Context, name string) (int64, error)
	// RenameDepartment moves every employee of oldName to newName.
	RenameDepartment(ctx context.Context, oldName, newName string) (int64, error)
}
