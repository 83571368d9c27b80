package employee

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"staffhub/models"
	"staffhub/utils"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const (
	minAge = 18
	maxAge = 100
)

func requiredString(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", utils.BadUserInput("%s is required", field)
	}
	return v, nil
}

func checkAge(age int) error {
	if age < minAge || age > maxAge {
		return utils.BadUserInput("Age must be between %d and %d", minAge, maxAge)
	}
	return nil
}

func checkClass(class string) error {
	if !slices.Contains(models.EmployeeClasses, class) {
		return utils.BadUserInput("Class must be one of: %s", strings.Join(models.EmployeeClasses, ", "))
	}
	return nil
}

func checkStatus(status string) error {
	if !slices.Contains(models.EmployeeStatuses, status) {
		return utils.BadUserInput("Status must be one of: %s", strings.Join(models.EmployeeStatuses, ", "))
	}
	return nil
}

func checkAttendance(v float64) error {
	if v < 0 || v > 100 {
		return utils.BadUserInput("Attendance must be between 0 and 100")
	}
	return nil
}

func checkSalary(v float64) error {
	if v < 0 {
		return utils.BadUserInput("Salary cannot be negative")
	}
	return nil
}

func normalizeEmail(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if !emailPattern.MatchString(v) {
		return "", utils.BadUserInput("Please enter a valid email")
	}
	return v, nil
}

// cleanSubjects trims every subject and rejects blank ones.
func cleanSubjects(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s == "" {
			return nil, utils.BadUserInput("Subjects cannot be blank")
		}
		out = append(out, s)
	}
	return out, nil
}

// parseJoinDate accepts a calendar date or a full RFC 3339 timestamp.
func parseJoinDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(models.JoinDateLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, utils.BadUserInput("Join date must be a date in YYYY-MM-DD format")
}

// buildEmployee validates a full input into a record ready for insertion.
func buildEmployee(in models.EmployeeInput) (*models.Employee, error) {
	var (
		e   models.Employee
		err error
	)
	if e.Name, err = requiredString("Name", in.Name); err != nil {
		return nil, err
	}
	if err = checkAge(in.Age); err != nil {
		return nil, err
	}
	e.Age = in.Age
	if err = checkClass(in.Class); err != nil {
		return nil, err
	}
	e.Class = in.Class
	if e.Subjects, err = cleanSubjects(in.Subjects); err != nil {
		return nil, err
	}
	if err = checkAttendance(in.Attendance); err != nil {
		return nil, err
	}
	e.Attendance = in.Attendance
	if e.Email, err = normalizeEmail(in.Email); err != nil {
		return nil, err
	}
	if e.Phone, err = requiredString("Phone", in.Phone); err != nil {
		return nil, err
	}
	if e.Department, err = requiredString("Department", in.Department); err != nil {
		return nil, err
	}
	if e.Position, err = requiredString("Position", in.Position); err != nil {
		return nil, err
	}
	if e.JoinDate, err = parseJoinDate(in.JoinDate); err != nil {
		return nil, err
	}
	if err = checkSalary(in.Salary); err != nil {
		return nil, err
	}
	e.Salary = in.Salary
	if e.Address, err = requiredString("Address", in.Address); err != nil {
		return nil, err
	}
	e.Status = strings.TrimSpace(in.Status)
	if e.Status == "" {
		e.Status = models.StatusActive
	}
	if err = checkStatus(e.Status); err != nil {
		return nil, err
	}
	return &e, nil
}

// buildPatch validates the fields present in a partial update.
func buildPatch(in models.EmployeeUpdateInput) (models.EmployeePatch, error) {
	var p models.EmployeePatch

	str := func(field string, src *string, dst **string) error {
		if src == nil {
			return nil
		}
		v, err := requiredString(field, *src)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	for _, f := range []struct {
		name string
		src  *string
		dst  **string
	}{
		{"Name", in.Name, &p.Name},
		{"Phone", in.Phone, &p.Phone},
		{"Department", in.Department, &p.Department},
		{"Position", in.Position, &p.Position},
		{"Address", in.Address, &p.Address},
	} {
		if err := str(f.name, f.src, f.dst); err != nil {
			return p, err
		}
	}

	if in.Age != nil {
		if err := checkAge(*in.Age); err != nil {
			return p, err
		}
		p.Age = in.Age
	}
	if in.Class != nil {
		if err := checkClass(*in.Class); err != nil {
			return p, err
		}
		p.Class = in.Class
	}
	if in.Subjects != nil {
		subjects, err := cleanSubjects(*in.Subjects)
		if err != nil {
			return p, err
		}
		p.Subjects = &subjects
	}
	if in.Attendance != nil {
		if err := checkAttendance(*in.Attendance); err != nil {
			return p, err
		}
		p.Attendance = in.Attendance
	}
	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return p, err
		}
		p.Email = &email
	}
	if in.JoinDate != nil {
		d, err := parseJoinDate(*in.JoinDate)
		if err != nil {
			return p, err
		}
		p.JoinDate = &d
	}
	if in.Salary != nil {
		if err := checkSalary(*in.Salary); err != nil {
			return p, err
		}
		p.Salary = in.Salary
	}
	if in.Status != nil {
		if err := checkStatus(*in.Status); err != nil {
			return p, err
		}
		p.Status = in.Status
	}
	return p, nil
}

func validateQuery(q models.EmployeeQuery) error {
	if q.Page < 1 {
		return utils.BadUserInput("page must be at least 1")
	}
	if q.PageSize < 1 || q.PageSize > utils.MaxPageSize {
		return utils.BadUserInput("pageSize must be between 1 and %d", utils.MaxPageSize)
	}
	if !slices.Contains(models.EmployeeSortFields, q.Sort.Field) {
		return utils.BadUserInput("Cannot sort by %q", q.Sort.Field)
	}
	f := q.Filter
	if f.MinAge != nil && f.MaxAge != nil && *f.MinAge > *f.MaxAge {
		return utils.BadUserInput("minAge cannot be greater than maxAge")
	}
	return nil
}
