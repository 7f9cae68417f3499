package report

import "context"

// Row is one opaque report record.
type Row map[string]any

// Definition describes how a report endpoint is projected into a table.
// Headers and Keys are parallel.
type Definition struct {
	ID      string
	Title   string
	Path    string
	Headers []string
	Keys    []string
}

var (
	ShelterOccupancy = Definition{
		ID:      "report1",
		Title:   "Shelter Occupancy",
		Path:    "/reports/shelter-occupancy",
		Headers: []string{"Shelter Name", "Capacity", "Occupancy (Trigger)", "Calculated Count (Available)"},
		Keys:    []string{"name", "capacity", "current_occupancy", "calculated_animal_count"},
	}
	EmployeesAboveAverage = Definition{
		ID:      "report2",
		Title:   "Employees Earning Above Average",
		Path:    "/reports/employees-above-average",
		Headers: []string{"Employee Name", "Role", "Salary"},
		Keys:    []string{"name", "role", "salary"},
	}
	MultiAdopters = Definition{
		ID:      "report3",
		Title:   "Adopters With Multiple Adoptions",
		Path:    "/reports/multi-adopters",
		Headers: []string{"First Name", "Last Name", "Phone", "Total Adoptions"},
		Keys:    []string{"first_name", "last_name", "phone", "total_adoptions"},
	}
)

// Standard lists the reports shown on the reports page, in display order.
func Standard() []Definition {
	return []Definition{ShelterOccupancy, EmployeesAboveAverage, MultiAdopters}
}

// Repository fetches report rows.
type Repository interface {
	Fetch(ctx context.Context, path string) ([]Row, error)
}
