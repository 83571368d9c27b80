package employee

import (
	"context"
	"fmt"
	"testing"

	employeeRepo "staffhub/database/repository/employee"
	"staffhub/models"
	"staffhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *DefaultEmployeeService {
	t.Helper()
	utils.SetLogger(zap.NewNop())
	return &DefaultEmployeeService{Repo: employeeRepo.NewMemoryEmployeeRepo()}
}

func validInput(name, email, department string, age int) models.EmployeeInput {
	return models.EmployeeInput{
		Name:       name,
		Age:        age,
		Class:      models.ClassSenior,
		Subjects:   []string{"Go", " MongoDB "},
		Attendance: 95.5,
		Email:      email,
		Phone:      "+1-555-0101",
		Department: department,
		Position:   "Engineer",
		JoinDate:   "2020-01-15",
		Salary:     120000,
		Address:    "123 Tech St",
	}
}

func seed(t *testing.T, svc *DefaultEmployeeService) {
	t.Helper()
	rows := []struct {
		name, dept string
		age        int
	}{
		{"alice", "Engineering", 30},
		{"Bob", "Engineering", 45},
		{"carol", "Sales", 28},
		{"Dave", "Engineering", 52},
		{"eve", "Marketing", 35},
	}
	for i, r := range rows {
		_, err := svc.AddEmployee(context.Background(), validInput(r.name, fmt.Sprintf("e%d@company.com", i), r.dept, r.age))
		require.NoError(t, err)
	}
}

func names(page *models.EmployeePage) []string {
	out := make([]string, 0, len(page.Employees))
	for _, e := range page.Employees {
		out = append(out, e.Name)
	}
	return out
}

func query(page, size int) models.EmployeeQuery {
	return models.EmployeeQuery{Page: page, PageSize: size, Sort: models.EmployeeSort{Field: models.SortByName}}
}

func TestAddEmployee_NormalizesInput(t *testing.T) {
	svc := newService(t)

	emp, err := svc.AddEmployee(context.Background(), validInput("  John Doe ", " John.Doe@Company.COM ", "Engineering", 30))
	require.NoError(t, err)
	assert.Equal(t, "John Doe", emp.Name)
	assert.Equal(t, "john.doe@company.com", emp.Email)
	assert.Equal(t, []string{"Go", "MongoDB"}, emp.Subjects)
	assert.Equal(t, models.StatusActive, emp.Status)
	assert.Equal(t, "2020-01-15", emp.JoinDate.Format(models.JoinDateLayout))
}

func TestAddEmployee_Validation(t *testing.T) {
	svc := newService(t)
	cases := map[string]func(*models.EmployeeInput){
		"too young":      func(in *models.EmployeeInput) { in.Age = 17 },
		"too old":        func(in *models.EmployeeInput) { in.Age = 101 },
		"bad class":      func(in *models.EmployeeInput) { in.Class = "Intern" },
		"attendance":     func(in *models.EmployeeInput) { in.Attendance = 100.1 },
		"email":          func(in *models.EmployeeInput) { in.Email = "not-an-email" },
		"salary":         func(in *models.EmployeeInput) { in.Salary = -1 },
		"status":         func(in *models.EmployeeInput) { in.Status = "Retired" },
		"join date":      func(in *models.EmployeeInput) { in.JoinDate = "15/01/2020" },
		"missing name":   func(in *models.EmployeeInput) { in.Name = "  " },
		"missing office": func(in *models.EmployeeInput) { in.Address = "" },
		"blank subject":  func(in *models.EmployeeInput) { in.Subjects = []string{"Go", "  "} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput("x", "x@company.com", "Engineering", 30)
			mutate(&in)
			_, err := svc.AddEmployee(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, utils.CodeBadUserInput, utils.ErrorCode(err))
		})
	}
}

func TestAddEmployee_DuplicateEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.AddEmployee(ctx, validInput("a", "dup@company.com", "Engineering", 30))
	require.NoError(t, err)
	_, err = svc.AddEmployee(ctx, validInput("b", "DUP@company.com", "Sales", 31))
	require.Error(t, err)
	assert.Equal(t, utils.CodeDuplicateEmail, utils.ErrorCode(err))
	assert.Equal(t, msgDuplicateEmail, err.Error())
}

func TestListEmployees_DepartmentFilterCountsBeforePaging(t *testing.T) {
	svc := newService(t)
	seed(t, svc)

	q := query(1, 2)
	q.Filter.Department = "Engineering"
	page, err := svc.ListEmployees(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalCount)
	assert.Len(t, page.Employees, 2)
	for _, e := range page.Employees {
		assert.Equal(t, "Engineering", e.Department)
	}
	assert.Equal(t, models.PageInfo{CurrentPage: 1, PageSize: 2, TotalPages: 2, HasNextPage: true, HasPreviousPage: false}, page.PageInfo)

	q.Page = 2
	page, err = svc.ListEmployees(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, page.Employees, 1)
	assert.False(t, page.PageInfo.HasNextPage)
	assert.True(t, page.PageInfo.HasPreviousPage)
}

func TestListEmployees_OutOfRangePageIsEmpty(t *testing.T) {
	svc := newService(t)
	seed(t, svc)

	page, err := svc.ListEmployees(context.Background(), query(10, 2))
	require.NoError(t, err)
	assert.Empty(t, page.Employees)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.PageInfo.TotalPages)
	assert.False(t, page.PageInfo.HasNextPage)
	assert.True(t, page.PageInfo.HasPreviousPage)
}

func TestListEmployees_RejectsBadPaging(t *testing.T) {
	svc := newService(t)
	for _, q := range []models.EmployeeQuery{query(0, 10), query(1, 0), query(1, utils.MaxPageSize+1)} {
		_, err := svc.ListEmployees(context.Background(), q)
		require.Error(t, err)
		assert.Equal(t, utils.CodeBadUserInput, utils.ErrorCode(err))
	}
}

func TestListEmployees_SortIgnoresCase(t *testing.T) {
	svc := newService(t)
	seed(t, svc)

	page, err := svc.ListEmployees(context.Background(), query(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "Bob", "carol", "Dave", "eve"}, names(page))

	q := query(1, 10)
	q.Sort = models.EmployeeSort{Field: models.SortByAge, Descending: true}
	page, err = svc.ListEmployees(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dave", "Bob", "eve", "alice", "carol"}, names(page))
}

func TestListEmployees_NameAndAgeFilters(t *testing.T) {
	svc := newService(t)
	seed(t, svc)

	minAge, maxAge := 30, 45
	q := query(1, 10)
	q.Filter = models.EmployeeFilter{Name: "A", MinAge: &minAge, MaxAge: &maxAge}
	page, err := svc.ListEmployees(context.Background(), q)
	require.NoError(t, err)
	// "alice" (30) matches; "carol" is 28 and "Dave" is 52.
	assert.Equal(t, []string{"alice"}, names(page))

	q.Filter = models.EmployeeFilter{Name: ".*"}
	page, err = svc.ListEmployees(context.Background(), q)
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)
}

func TestUpdateEmployee_PartialPatch(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	emp, err := svc.AddEmployee(ctx, validInput("a", "a@company.com", "Engineering", 30))
	require.NoError(t, err)

	age := 31
	status := models.StatusOnLeave
	updated, err := svc.UpdateEmployee(ctx, emp.ID.Hex(), models.EmployeeUpdateInput{Age: &age, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, models.StatusOnLeave, updated.Status)
	assert.Equal(t, "a@company.com", updated.Email)

	bad := 10
	_, err = svc.UpdateEmployee(ctx, emp.ID.Hex(), models.EmployeeUpdateInput{Age: &bad})
	assert.Equal(t, utils.CodeBadUserInput, utils.ErrorCode(err))

	blank := []string{""}
	_, err = svc.UpdateEmployee(ctx, emp.ID.Hex(), models.EmployeeUpdateInput{Subjects: &blank})
	assert.Equal(t, utils.CodeBadUserInput, utils.ErrorCode(err))

	subjects := []string{" Rust "}
	updated, err = svc.UpdateEmployee(ctx, emp.ID.Hex(), models.EmployeeUpdateInput{Subjects: &subjects})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, updated.Subjects)

	_, err = svc.UpdateEmployee(ctx, "650000000000000000000000", models.EmployeeUpdateInput{Age: &age})
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestDeleteEmployee(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	emp, err := svc.AddEmployee(ctx, validInput("a", "a@company.com", "Engineering", 30))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, emp.ID.Hex()))
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(svc.DeleteEmployee(ctx, emp.ID.Hex())))

	_, err = svc.GetEmployee(ctx, emp.ID.Hex())
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}
