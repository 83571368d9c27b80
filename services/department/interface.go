package department

import (
	"context"

	departmentRepo "staffhub/database/repository/department"
	employeeRepo "staffhub/database/repository/employee"
	"staffhub/models"
)

type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, id string) (*models.Department, error)
	AddDepartment(ctx context.Context, in models.DepartmentInput) (*models.Department, error)
	// UpdateDepartment renames employees along with the department.
	UpdateDepartment(ctx context.Context, id string, in models.DepartmentInput) (*models.Department, error)
	// DeleteDepartment refuses while employees are assigned to it.
	DeleteDepartment(ctx context.Context, id string) error
}

// DefaultDepartmentService is the production implementation.
type DefaultDepartmentService struct {
	Repo      departmentRepo.DepartmentRepository
	Employees employeeRepo.EmployeeRepository
}
