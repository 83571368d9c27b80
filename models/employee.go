package models

import (
	"cmp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee classes.
const (
	ClassJunior   = "Junior"
	ClassMidLevel = "Mid-Level"
	ClassSenior   = "Senior"
	ClassLead     = "Lead"
	ClassManager  = "Manager"
)

// Employee statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"
)

var (
	EmployeeClasses  = []string{ClassJunior, ClassMidLevel, ClassSenior, ClassLead, ClassManager}
	EmployeeStatuses = []string{StatusActive, StatusInactive, StatusOnLeave}
)

// JoinDateLayout is the wire format of Employee.JoinDate.
const JoinDateLayout = "2006-01-02"

type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Age        int                `bson:"age" json:"age"`
	Class      string             `bson:"class" json:"class"`
	Subjects   []string           `bson:"subjects" json:"subjects"`
	Attendance float64            `bson:"attendance" json:"attendance"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Department string             `bson:"department" json:"department"`
	Position   string             `bson:"position" json:"position"`
	JoinDate   time.Time          `bson:"joinDate" json:"joinDate"`
	Salary     float64            `bson:"salary" json:"salary"`
	Address    string             `bson:"address" json:"address"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EmployeeInput is the full set of fields for a new employee. Status may be
// empty and then defaults to Active.
type EmployeeInput struct {
	Name       string
	Age        int
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
	Status     string
}

// EmployeeUpdateInput holds the raw fields of a partial update; nil means
// unchanged.
type EmployeeUpdateInput struct {
	Name       *string
	Age        *int
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

// EmployeePatch is a validated EmployeeUpdateInput.
type EmployeePatch struct {
	Name       *string
	Age        *int
	Class      *string
	Subjects   *[]string
	Attendance *float64
	Email      *string
	Phone      *string
	Department *string
	Position   *string
	JoinDate   *time.Time
	Salary     *float64
	Address    *string
	Status     *string
}

// Apply copies every set field of p onto e.
func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Age != nil {
		e.Age = *p.Age
	}
	if p.Class != nil {
		e.Class = *p.Class
	}
	if p.Subjects != nil {
		e.Subjects = append([]string(nil), (*p.Subjects)...)
	}
	if p.Attendance != nil {
		e.Attendance = *p.Attendance
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.JoinDate != nil {
		e.JoinDate = *p.JoinDate
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}

// EmployeeFilter narrows an employee listing. Every set field must match.
type EmployeeFilter struct {
	Name       string // case-insensitive substring
	Department string
	Class      string
	Status     string
	MinAge     *int
	MaxAge     *int
}

// Matches reports whether e satisfies every predicate of f.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Class != "" && e.Class != f.Class {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.MinAge != nil && e.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && e.Age > *f.MaxAge {
		return false
	}
	return true
}

// Sortable employee fields.
const (
	SortByName       = "name"
	SortByAge        = "age"
	SortByDepartment = "department"
	SortByAttendance = "attendance"
	SortByJoinDate   = "joinDate"
	SortBySalary     = "salary"
)

var EmployeeSortFields = []string{SortByName, SortByAge, SortByDepartment, SortByAttendance, SortByJoinDate, SortBySalary}

// EmployeeSort orders an employee listing by a single field.
type EmployeeSort struct {
	Field      string
	Descending bool
}

// Compare orders a and b by s.Field, returning -1, 0 or 1 before direction is
// applied. String fields compare case-folded.
func (s EmployeeSort) Compare(a, b Employee) int {
	switch s.Field {
	case SortByAge:
		return cmp.Compare(a.Age, b.Age)
	case SortByDepartment:
		return strings.Compare(strings.ToLower(a.Department), strings.ToLower(b.Department))
	case SortByAttendance:
		return cmp.Compare(a.Attendance, b.Attendance)
	case SortByJoinDate:
		return a.JoinDate.Compare(b.JoinDate)
	case SortBySalary:
		return cmp.Compare(a.Salary, b.Salary)
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

// Directed applies the sort direction to Compare.
func (s EmployeeSort) Directed(a, b Employee) int {
	if s.Descending {
		return -s.Compare(a, b)
	}
	return s.Compare(a, b)
}

// EmployeeQuery is a filtered, sorted, paginated listing request.
type EmployeeQuery struct {
	Filter   EmployeeFilter
	Sort     EmployeeSort
	Page     int
	PageSize int
}

// PageInfo describes where a page sits within the full result.
type PageInfo struct {
	CurrentPage     int
	PageSize        int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// EmployeePage is one page of a listing plus the size of the whole filtered set.
type EmployeePage struct {
	Employees  []Employee
	TotalCount int
	PageInfo   PageInfo
}
