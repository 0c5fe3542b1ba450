package directory

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

type Member struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     Status `json:"status"`
	Age        int    `json:"age"`
	Salary     int    `json:"salary"`
	Department string `json:"department"`
}

// Field returns the cell for a column, keyed by JSON name.
func (m Member) Field(column string) (any, bool) {
	switch column {
	case "id":
		return m.ID, true
	case "name":
		return m.Name, true
	case "email":
		return m.Email, true
	case "role":
		return m.Role, true
	case "status":
		return string(m.Status), true
	case "age":
		return m.Age, true
	case "salary":
		return m.Salary, true
	case "department":
		return m.Department, true
	}
	return nil, false
}

func (m Member) Values() []any {
	return []any{m.ID, m.Name, m.Email, m.Role, string(m.Status), m.Age, m.Salary, m.Department}
}

// Columns lists the sortable columns in display order.
var Columns = []string{"id", "name", "email", "role", "status", "age", "salary", "department"}

var (
	roles       = []string{"Developer", "Designer", "Manager", "Analyst", "Engineer", "Architect", "Lead"}
	statuses    = []Status{StatusActive, StatusInactive, StatusPending}
	departments = []string{"Engineering", "Design", "Sales", "Marketing", "HR", "Finance", "Operations"}

	firstNames = []string{
		"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Eve", "Frank",
		"Grace", "Henry", "Ivy", "Jack", "Kate", "Liam", "Mia", "Noah",
		"Olivia", "Peter", "Quinn", "Rachel", "Sam", "Tara", "Uma", "Victor",
		"Wendy", "Xavier", "Yara", "Zack", "Anna", "Ben", "Clara", "David",
	}
	lastNames = []string{
		"Doe", "Smith", "Johnson", "Williams", "Brown", "Davis", "Miller", "Wilson",
		"Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin",
		"Thompson", "Garcia", "Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Lee",
	}
)

// Generate builds count members deterministically. IDs start at 1.
func Generate(count int) []Member {
	members := make([]Member, 0, max(count, 0))
	for i := 0; i < count; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i/len(firstNames))%len(lastNames)]

		members = append(members, Member{
			ID:         i + 1,
			Name:       first + " " + last,
			Email:      fmt.Sprintf("%s.%s@company.com", strings.ToLower(first), strings.ToLower(last)),
			Role:       roles[i%len(roles)],
			Status:     statuses[i%len(statuses)],
			Age:        25 + i%35,
			Salary:     50000 + i*1000 + (i/10)*5000,
			Department: departments[i%len(departments)],
		})
	}
	return members
}
