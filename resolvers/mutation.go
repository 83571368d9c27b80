package resolvers

import (
	"context"
	"errors"

	"staffhub/services/auth"
	"staffhub/services/session"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

var errNoSession = errors.New("no session handle on request context")

func (r *Resolver) RequestOTP(ctx context.Context, args struct{ Email string }) (*otpResponseResolver, error) {
	res, err := r.auth.RequestOTP(ctx, args.Email)
	if err != nil {
		return nil, r.fail(ctx, "send OTP", err)
	}
	return &otpResponseResolver{message: res.Message, otp: res.OTP}, nil
}

func (r *Resolver) VerifyOTP(ctx context.Context, args struct {
	Email string
	OTP   string
}) (*authPayloadResolver, error) {
	handle := session.FromContext(ctx)
	if handle == nil {
		return nil, r.fail(ctx, "verify OTP", errNoSession)
	}
	user, err := r.auth.VerifyOTP(ctx, args.Email, args.OTP)
	if err != nil {
		return nil, r.fail(ctx, "verify OTP", err)
	}
	if err := handle.Establish(ctx, user.SessionUser()); err != nil {
		return nil, r.fail(ctx, "verify OTP", err)
	}
	r.logger.Info("User logged in", zap.String("userID", user.ID.Hex()), zap.String("role", user.Role))
	return &authPayloadResolver{user: newUserResolver(user), message: auth.MsgLoginSuccessful}, nil
}

func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	handle := session.FromContext(ctx)
	if handle == nil {
		return true, nil
	}
	if err := handle.Destroy(ctx); err != nil {
		return false, r.fail(ctx, "logout", err)
	}
	return true, nil
}

func (r *Resolver) AddEmployee(ctx context.Context, args struct{ Input employeeInput }) (*employeeResolver, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, "add employee", err)
	}
	emp, err := r.employees.AddEmployee(ctx, args.Input.toModel())
	if err != nil {
		return nil, r.fail(ctx, "add employee", err)
	}
	return &employeeResolver{e: *emp}, nil
}

func (r *Resolver) UpdateEmployee(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateEmployeeInput
}) (*employeeResolver, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, "update employee", err)
	}
	emp, err := r.employees.UpdateEmployee(ctx, string(args.ID), args.Input.toModel())
	if err != nil {
		return nil, r.fail(ctx, "update employee", err)
	}
	return &employeeResolver{e: *emp}, nil
}

func (r *Resolver) DeleteEmployee(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return false, r.fail(ctx, "delete employee", err)
	}
	if err := r.employees.DeleteEmployee(ctx, string(args.ID)); err != nil {
		return false, r.fail(ctx, "delete employee", err)
	}
	return true, nil
}

func (r *Resolver) AddDepartment(ctx context.Context, args struct{ Input departmentInput }) (*departmentResolver, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, "add department", err)
	}
	dept, err := r.departments.AddDepartment(ctx, args.Input.toModel())
	if err != nil {
		return nil, r.fail(ctx, "add department", err)
	}
	return &departmentResolver{d: *dept}, nil
}

func (r *Resolver) UpdateDepartment(ctx context.Context, args struct {
	ID    graphql.ID
	Input departmentInput
}) (*departmentResolver, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, "update department", err)
	}
	dept, err := r.departments.UpdateDepartment(ctx, string(args.ID), args.Input.toModel())
	if err != nil {
		return nil, r.fail(ctx, "update department", err)
	}
	return &departmentResolver{d: *dept}, nil
}

func (r *Resolver) DeleteDepartment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return false, r.fail(ctx, "delete department", err)
	}
	if err := r.departments.DeleteDepartment(ctx, string(args.ID)); err != nil {
		return false, r.fail(ctx, "delete department", err)
	}
	return true, nil
}
