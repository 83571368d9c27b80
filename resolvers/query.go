package resolvers

import (
	"context"

	"staffhub/services/auth"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

func (r *Resolver) Employees(ctx context.Context, args employeesArgs) (*employeeConnectionResolver, error) {
	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, r.fail(ctx, "fetch employees", err)
	}
	page, err := r.employees.ListEmployees(ctx, args.toQuery())
	if err != nil {
		return nil, r.fail(ctx, "fetch employees", err)
	}
	return &employeeConnectionResolver{page: page}, nil
}

func (r *Resolver) Employee(ctx context.Context, args struct{ ID graphql.ID }) (*employeeResolver, error) {
	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, r.fail(ctx, "fetch employee", err)
	}
	emp, err := r.employees.GetEmployee(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "fetch employee", err)
	}
	return &employeeResolver{e: *emp}, nil
}

// Me never fails: callers use it to check whether they are logged in.
func (r *Resolver) Me(ctx context.Context) *userResolver {
	user, err := r.auth.Me(ctx)
	if err != nil {
		r.logger.Error("Failed to load current user", zap.Error(err))
		return nil
	}
	if user == nil {
		return nil
	}
	return newUserResolver(user)
}

func (r *Resolver) Departments(ctx context.Context) ([]*departmentResolver, error) {
	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, r.fail(ctx, "fetch departments", err)
	}
	list, err := r.departments.ListDepartments(ctx)
	if err != nil {
		return nil, r.fail(ctx, "fetch departments", err)
	}
	out := make([]*departmentResolver, len(list))
	for i := range list {
		out[i] = &departmentResolver{d: list[i]}
	}
	return out, nil
}

func (r *Resolver) Department(ctx context.Context, args struct{ ID graphql.ID }) (*departmentResolver, error) {
	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, r.fail(ctx, "fetch department", err)
	}
	dept, err := r.departments.GetDepartment(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "fetch department", err)
	}
	return &departmentResolver{d: *dept}, nil
}
