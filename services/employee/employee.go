package employee

import (
	"context"
	"errors"
	"fmt"

	"staffhub/database"
	"staffhub/models"
	"staffhub/utils"

	"go.uber.org/zap"
)

const (
	msgEmployeeNotFound = "Employee not found"
	msgDuplicateEmail   = "Employee with this email already exists"
)

// ListEmployees returns one page of the filtered, sorted employee set.
func (s *DefaultEmployeeService) ListEmployees(ctx context.Context, q models.EmployeeQuery) (*models.EmployeePage, error) {
	if q.Sort.Field == "" {
		q.Sort.Field = models.SortByName
	}
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	skip := (q.Page - 1) * q.PageSize
	employees, total, err := s.Repo.List(ctx, q.Filter, q.Sort, skip, q.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	return &models.EmployeePage{
		Employees:  employees,
		TotalCount: int(total),
		PageInfo: models.PageInfo{
			CurrentPage:     q.Page,
			PageSize:        q.PageSize,
			TotalPages:      totalPages,
			HasNextPage:     q.Page < totalPages,
			HasPreviousPage: q.Page > 1,
		},
	}, nil
}

func (s *DefaultEmployeeService) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}
	if emp == nil {
		return nil, utils.NotFound(msgEmployeeNotFound)
	}
	return emp, nil
}

func (s *DefaultEmployeeService) AddEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	emp, err := buildEmployee(in)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, emp); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, utils.NewAppError(utils.CodeDuplicateEmail, msgDuplicateEmail)
		}
		return nil, err
	}
	utils.GetLogger().Info("Employee created", zap.String("employeeID", emp.ID.Hex()), zap.String("email", emp.Email))
	return emp, nil
}

func (s *DefaultEmployeeService) UpdateEmployee(ctx context.Context, id string, in models.EmployeeUpdateInput) (*models.Employee, error) {
	patch, err := buildPatch(in)
	if err != nil {
		return nil, err
	}
	emp, err := s.Repo.Update(ctx, id, patch)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil, utils.NotFound(msgEmployeeNotFound)
	case errors.Is(err, database.ErrDuplicateKey):
		return nil, utils.NewAppError(utils.CodeDuplicateEmail, msgDuplicateEmail)
	case err != nil:
		return nil, err
	}
	utils.GetLogger().Info("Employee updated", zap.String("employeeID", id))
	return emp, nil
}

func (s *DefaultEmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NotFound(msgEmployeeNotFound)
		}
		return err
	}
	utils.GetLogger().Info("Employee deleted", zap.String("employeeID", id))
	return nil
}
