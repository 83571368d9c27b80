package employee

import (
	"context"

	employeeRepo "staffhub/database/repository/employee"
	"staffhub/models"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context, q models.EmployeeQuery) (*models.EmployeePage, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	AddEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in models.EmployeeUpdateInput) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// DefaultEmployeeService is the production implementation.
type DefaultEmployeeService struct {
	Repo employeeRepo.EmployeeRepository
}
