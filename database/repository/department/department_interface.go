package departmentRepo

import (
	"context"

	"staffhub/models"
)

// DepartmentRepository defines methods for department data access.
type DepartmentRepository interface {
	// List returns every department ordered by name.
	List(ctx context.Context) ([]models.Department, error)
	// GetByID returns nil, nil when absent.
	GetByID(ctx context.Context, id string) (*models.Department, error)
	// Create inserts dept and sets its ID. Returns database.ErrDuplicateKey on a taken name.
	Create(ctx context.Context, dept *models.Department) error
	// Update overwrites name and description of an existing department.
	Update(ctx context.Context, dept *models.Department) error
	// Delete returns database.ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}
