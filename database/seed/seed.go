package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	departmentRepo "staffhub/database/repository/department"
	employeeRepo "staffhub/database/repository/employee"
	userRepo "staffhub/database/repository/user"
	"staffhub/models"
	"staffhub/utils"

	"go.uber.org/zap"
)

// Seeder loads the demo data set into empty stores.
type Seeder struct {
	Users         userRepo.UserRepository
	Departments   departmentRepo.DepartmentRepository
	Employees     employeeRepo.EmployeeRepository
	AdminEmail    string
	EmployeeEmail string
}

// Run seeds only when no user exists yet, so restarts keep existing data.
func (s *Seeder) Run(ctx context.Context) error {
	logger := utils.GetLogger()

	count, err := s.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		logger.Info("Database already seeded, skipping")
		return nil
	}
	logger.Info("Seeding database")

	for _, u := range []models.User{
		{Username: "admin", Email: normalize(s.AdminEmail, "admin@company.com"), Role: models.RoleAdmin, IsActive: true},
		{Username: "employee", Email: normalize(s.EmployeeEmail, "employee@company.com"), Role: models.RoleEmployee, IsActive: true},
	} {
		if err := s.Users.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed: create user %s: %w", u.Username, err)
		}
		logger.Info("Created user", zap.String("email", u.Email), zap.String("role", u.Role))
	}

	for _, d := range departments {
		dept := d
		if err := s.Departments.Create(ctx, &dept); err != nil {
			return fmt.Errorf("seed: create department %s: %w", d.Name, err)
		}
	}
	logger.Info("Created departments", zap.Int("count", len(departments)))

	for _, e := range employees() {
		emp := e
		if err := s.Employees.Create(ctx, &emp); err != nil {
			return fmt.Errorf("seed: create employee %s: %w", e.Email, err)
		}
	}
	logger.Info("Database seeding completed; log in with an OTP sent to a seeded address",
		zap.String("admin", normalize(s.AdminEmail, "admin@company.com")),
		zap.String("employee", normalize(s.EmployeeEmail, "employee@company.com")),
	)
	return nil
}

func normalize(email, fallback string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fallback
	}
	return email
}

var departments = []models.Department{
	{Name: "Engineering", Description: "Software development and technical operations"},
	{Name: "Marketing", Description: "Marketing and brand management"},
	{Name: "Sales", Description: "Sales and business development"},
	{Name: "Human Resources", Description: "HR and talent management"},
	{Name: "Finance", Description: "Financial planning and accounting"},
	{Name: "Operations", Description: "Business operations and logistics"},
}

func date(s string) time.Time {
	t, err := time.Parse(models.JoinDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func employees() []models.Employee {
	return []models.Employee{
		{
			Name: "John Doe", Age: 30, Class: models.ClassSenior,
			Subjects: []string{"React", "Node.js", "GraphQL"}, Attendance: 95,
			Email: "john.doe@company.com", Phone: "+1-555-0101", Department: "Engineering",
			Position: "Senior Software Engineer", JoinDate: date("2020-01-15"), Salary: 120000,
			Address: "123 Tech Street, San Francisco, CA 94105", Status: models.StatusActive,
		},
		{
			Name: "Jane Smith", Age: 28, Class: models.ClassMidLevel,
			Subjects: []string{"Marketing Strategy", "Social Media", "Content Creation"}, Attendance: 92,
			Email: "jane.smith@company.com", Phone: "+1-555-0102", Department: "Marketing",
			Position: "Marketing Manager", JoinDate: date("2021-03-20"), Salary: 85000,
			Address: "456 Market Ave, San Francisco, CA 94102", Status: models.StatusActive,
		},
		{
			Name: "Michael Johnson", Age: 35, Class: models.ClassLead,
			Subjects: []string{"Sales Strategy", "Client Relations", "Negotiations"}, Attendance: 88,
			Email: "michael.johnson@company.com", Phone: "+1-555-0103", Department: "Sales",
			Position: "Sales Director", JoinDate: date("2019-06-10"), Salary: 135000,
			Address: "789 Business Blvd, San Francisco, CA 94103", Status: models.StatusActive,
		},
		{
			Name: "Emily Davis", Age: 32, Class: models.ClassSenior,
			Subjects: []string{"Recruitment", "Employee Relations", "Training"}, Attendance: 96,
			Email: "emily.davis@company.com", Phone: "+1-555-0104", Department: "Human Resources",
			Position: "HR Manager", JoinDate: date("2020-09-01"), Salary: 95000,
			Address: "321 People Place, San Francisco, CA 94104", Status: models.StatusActive,
		},
		{
			Name: "David Wilson", Age: 40, Class: models.ClassManager,
			Subjects: []string{"Financial Planning", "Budgeting", "Accounting"}, Attendance: 98,
			Email: "david.wilson@company.com", Phone: "+1-555-0105", Department: "Finance",
			Position: "Finance Manager", JoinDate: date("2018-02-15"), Salary: 140000,
			Address: "654 Money Lane, San Francisco, CA 94106", Status: models.StatusActive,
		},
		{
			Name: "Sarah Brown", Age: 26, Class: models.ClassJunior,
			Subjects: []string{"Operations Management", "Logistics", "Supply Chain"}, Attendance: 90,
			Email: "sarah.brown@company.com", Phone: "+1-555-0106", Department: "Operations",
			Position: "Operations Coordinator", JoinDate: date("2022-04-01"), Salary: 65000,
			Address: "987 Ops Street, San Francisco, CA 94107", Status: models.StatusActive,
		},
		{
			Name: "Robert Martinez", Age: 29, Class: models.ClassMidLevel,
			Subjects: []string{"Full-Stack Development", "Database Design", "API Development"}, Attendance: 94,
			Email: "robert.martinez@company.com", Phone: "+1-555-0107", Department: "Engineering",
			Position: "Full-Stack Developer", JoinDate: date("2021-07-15"), Salary: 95000,
			Address: "147 Code Ave, San Francisco, CA 94108", Status: models.StatusActive,
		},
		{
			Name: "Lisa Anderson", Age: 31, Class: models.ClassSenior,
			Subjects: []string{"Brand Management", "Digital Marketing", "SEO"}, Attendance: 91,
			Email: "lisa.anderson@company.com", Phone: "+1-555-0108", Department: "Marketing",
			Position: "Senior Marketing Specialist", JoinDate: date("2020-11-10"), Salary: 88000,
			Address: "258 Brand Blvd, San Francisco, CA 94109", Status: models.StatusActive,
		},
		{
			Name: "James Taylor", Age: 27, Class: models.ClassJunior,
			Subjects: []string{"Sales Operations", "CRM Management", "Lead Generation"}, Attendance: 87,
			Email: "james.taylor@company.com", Phone: "+1-555-0109", Department: "Sales",
			Position: "Sales Representative", JoinDate: date("2022-01-20"), Salary: 55000,
			Address: "369 Sales Circle, San Francisco, CA 94110", Status: models.StatusActive,
		},
		{
			Name: "Amanda White", Age: 33, Class: models.ClassSenior,
			Subjects: []string{"Cloud Architecture", "DevOps", "CI/CD"}, Attendance: 97,
			Email: "amanda.white@company.com", Phone: "+1-555-0110", Department: "Engineering",
			Position: "DevOps Engineer", JoinDate: date("2019-10-05"), Salary: 130000,
			Address: "741 Cloud Way, San Francisco, CA 94111", Status: models.StatusActive,
		},
	}
}
