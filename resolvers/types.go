package resolvers

import (
	"time"

	"staffhub/models"

	graphql "github.com/graph-gophers/graphql-go"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type employeeResolver struct {
	e models.Employee
}

func (r *employeeResolver) ID() graphql.ID      { return graphql.ID(r.e.ID.Hex()) }
func (r *employeeResolver) Name() string        { return r.e.Name }
func (r *employeeResolver) Age() int32          { return int32(r.e.Age) }
func (r *employeeResolver) Class() string       { return r.e.Class }
func (r *employeeResolver) Attendance() float64 { return r.e.Attendance }
func (r *employeeResolver) Email() string       { return r.e.Email }
func (r *employeeResolver) Phone() string       { return r.e.Phone }
func (r *employeeResolver) Department() string  { return r.e.Department }
func (r *employeeResolver) Position() string    { return r.e.Position }
func (r *employeeResolver) Salary() float64     { return r.e.Salary }
func (r *employeeResolver) Address() string     { return r.e.Address }
func (r *employeeResolver) Status() string      { return r.e.Status }

func (r *employeeResolver) Subjects() []string {
	if r.e.Subjects == nil {
		return []string{}
	}
	return r.e.Subjects
}

func (r *employeeResolver) JoinDate() string {
	return r.e.JoinDate.UTC().Format(models.JoinDateLayout)
}

func newEmployeeResolvers(list []models.Employee) []*employeeResolver {
	out := make([]*employeeResolver, len(list))
	for i := range list {
		out[i] = &employeeResolver{e: list[i]}
	}
	return out
}

type employeeConnectionResolver struct {
	page *models.EmployeePage
}

func (r *employeeConnectionResolver) Employees() []*employeeResolver {
	return newEmployeeResolvers(r.page.Employees)
}

func (r *employeeConnectionResolver) TotalCount() int32 { return int32(r.page.TotalCount) }

func (r *employeeConnectionResolver) PageInfo() *pageInfoResolver {
	return &pageInfoResolver{p: r.page.PageInfo}
}

type pageInfoResolver struct {
	p models.PageInfo
}

func (r *pageInfoResolver) CurrentPage() int32    { return int32(r.p.CurrentPage) }
func (r *pageInfoResolver) PageSize() int32       { return int32(r.p.PageSize) }
func (r *pageInfoResolver) TotalPages() int32     { return int32(r.p.TotalPages) }
func (r *pageInfoResolver) HasNextPage() bool     { return r.p.HasNextPage }
func (r *pageInfoResolver) HasPreviousPage() bool { return r.p.HasPreviousPage }

type departmentResolver struct {
	d models.Department
}

func (r *departmentResolver) ID() graphql.ID { return graphql.ID(r.d.ID.Hex()) }
func (r *departmentResolver) Name() string   { return r.d.Name }

func (r *departmentResolver) Description() *string {
	if r.d.Description == "" {
		return nil
	}
	return &r.d.Description
}

func (r *departmentResolver) CreatedAt() string {
	return formatTimestamp(r.d.CreatedAt)
}

type userResolver struct {
	id, username, email, role string
}

func newUserResolver(u *models.User) *userResolver {
	return &userResolver{id: u.ID.Hex(), username: u.Username, email: u.Email, role: u.Role}
}

func (r *userResolver) ID() graphql.ID   { return graphql.ID(r.id) }
func (r *userResolver) Username() string { return r.username }
func (r *userResolver) Email() string    { return r.email }
func (r *userResolver) Role() string     { return r.role }

type authPayloadResolver struct {
	user    *userResolver
	message string
}

func (r *authPayloadResolver) User() *userResolver { return r.user }
func (r *authPayloadResolver) Message() *string    { return &r.message }

type otpResponseResolver struct {
	message string
	otp     *string
}

func (r *otpResponseResolver) Success() bool   { return true }
func (r *otpResponseResolver) Message() string { return r.message }
func (r *otpResponseResolver) OTP() *string    { return r.otp }

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
