package department

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staffhub/database"
	"staffhub/models"
	"staffhub/utils"

	"go.uber.org/zap"
)

const (
	msgDepartmentNotFound = "Department not found"
	msgDepartmentExists   = "Department already exists"
	msgDepartmentNameUsed = "Department with this name already exists"
	msgDepartmentInUse    = "Cannot delete department. %d employee(s) are assigned to this department."
	msgNameRequired       = "Department name is required"
)

func (s *DefaultDepartmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultDepartmentService) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	dept, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get department %s: %w", id, err)
	}
	if dept == nil {
		return nil, utils.NotFound(msgDepartmentNotFound)
	}
	return dept, nil
}

func (s *DefaultDepartmentService) AddDepartment(ctx context.Context, in models.DepartmentInput) (*models.Department, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, utils.BadUserInput(msgNameRequired)
	}
	dept := &models.Department{Name: name}
	if in.Description != nil {
		dept.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.Repo.Create(ctx, dept); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, utils.NewAppError(utils.CodeDuplicateDepartment, msgDepartmentExists)
		}
		return nil, err
	}
	utils.GetLogger().Info("Department created", zap.String("departmentID", dept.ID.Hex()), zap.String("name", dept.Name))
	return dept, nil
}

func (s *DefaultDepartmentService) UpdateDepartment(ctx context.Context, id string, in models.DepartmentInput) (*models.Department, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, utils.BadUserInput(msgNameRequired)
	}
	dept, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	oldName := dept.Name
	dept.Name = name
	if in.Description != nil {
		dept.Description = strings.TrimSpace(*in.Description)
	}

	err = s.Repo.Update(ctx, dept)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil, utils.NotFound(msgDepartmentNotFound)
	case errors.Is(err, database.ErrDuplicateKey):
		return nil, utils.NewAppError(utils.CodeDuplicateDepartment, msgDepartmentNameUsed)
	case err != nil:
		return nil, err
	}

	if oldName != name {
		moved, err := s.Employees.RenameDepartment(ctx, oldName, name)
		if err != nil {
			return nil, fmt.Errorf("rename department on employees: %w", err)
		}
		utils.GetLogger().Info("Department renamed",
			zap.String("departmentID", id),
			zap.String("from", oldName),
			zap.String("to", name),
			zap.Int64("employeesMoved", moved),
		)
	}
	return dept, nil
}

func (s *DefaultDepartmentService) DeleteDepartment(ctx context.Context, id string) error {
	dept, err := s.GetDepartment(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.Employees.CountByDepartment(ctx, dept.Name)
	if err != nil {
		return fmt.Errorf("count employees in department: %w", err)
	}
	if count > 0 {
		return utils.NewAppError(utils.CodeDepartmentInUse, msgDepartmentInUse, count)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NotFound(msgDepartmentNotFound)
		}
		return err
	}
	utils.GetLogger().Info("Department deleted", zap.String("departmentID", id), zap.String("name", dept.Name))
	return nil
}
