package resolvers

import (
	"staffhub/models"
)

type employeeFilterInput struct {
	Name       *string
	Department *string
	Class      *string
	Status     *string
	MinAge     *int32
	MaxAge     *int32
}

func (in *employeeFilterInput) toModel() models.EmployeeFilter {
	var f models.EmployeeFilter
	if in == nil {
		return f
	}
	f.Name = deref(in.Name)
	f.Department = deref(in.Department)
	f.Class = deref(in.Class)
	f.Status = deref(in.Status)
	f.MinAge = intPtr(in.MinAge)
	f.MaxAge = intPtr(in.MaxAge)
	return f
}

// employeesArgs mirrors the employees field. Arguments with a schema default
// are never null, so only the filter is a pointer.
type employeesArgs struct {
	Filter    *employeeFilterInput
	Page      int32
	PageSize  int32
	SortBy    string
	SortOrder string
}

func (a employeesArgs) toQuery() models.EmployeeQuery {
	return models.EmployeeQuery{
		Filter:   a.Filter.toModel(),
		Page:     int(a.Page),
		PageSize: int(a.PageSize),
		Sort: models.EmployeeSort{
			Field:      a.SortBy,
			Descending: a.SortOrder == "DESC",
		},
	}
}

type employeeInput struct {
	Name       string
	Age        int32
	Class      string
	Subjects   []string
	Attendance float64
	Email      string
	Phone      string
	Department string
	Position   string
	JoinDate   string
	Salary     float64
	Address    string
	Status     *string
}

func (in employeeInput) toModel() models.EmployeeInput {
	return models.EmployeeInput{
		Name:       in.Name,
		Age:        int(in.Age),
		Class:      in.Class,
		Subjects:   in.Subjects,
		Attendance: in.Attendance,
		Email:      in.Email,
		Phone:      in.Phone,
		Department: in.Department,
		Position:   in.Position,
		JoinDate:   in.JoinDate,
		Salary:     in.Salary,
		Address:    in.Address,
		Status:     deref(in.Status),
	}
}

type updateEmployeeInput struct {
	Name       *string
	Age        *int32
	Class      *string
	Subjects   *[]string
	Attendance *float64
	Email      *string
	Phone      *string
	Department *string
	Position   *string
	JoinDate   *string
	Salary     *float64
	Address    *string
	Status     *string
}

func (in updateEmployeeInput) toModel() models.EmployeeUpdateInput {
	return models.EmployeeUpdateInput{
		Name:       in.Name,
		Age:        intPtr(in.Age),
		Class:      in.Class,
		Subjects:   in.Subjects,
		Attendance: in.Attendance,
		Email:      in.Email,
		Phone:      in.Phone,
		Department: in.Department,
		Position:   in.Position,
		JoinDate:   in.JoinDate,
		Salary:     in.Salary,
		Address:    in.Address,
		Status:     in.Status,
	}
}

type departmentInput struct {
	Name        string
	Description *string
}

func (in departmentInput) toModel() models.DepartmentInput {
	return models.DepartmentInput{Name: in.Name, Description: in.Description}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
