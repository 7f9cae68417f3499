package view

import (
	"fmt"
	"strconv"

	"github.com/shelter-admin/service-shelter-web/internal/domain/adopter"
	"github.com/shelter-admin/service-shelter-web/internal/domain/animal"
	"github.com/shelter-admin/service-shelter-web/internal/domain/donor"
	"github.com/shelter-admin/service-shelter-web/internal/domain/employee"
	"github.com/shelter-admin/service-shelter-web/internal/domain/report"
	"github.com/shelter-admin/service-shelter-web/internal/domain/shelter"
)

// Container ids, one per page region.
const (
	AvailableAnimalsID = "data-container"
	AnimalsID          = "animal-table-container"
	AdoptersID         = "adopter-table-container"
	DonorsID           = "donor-table-container"
	EmployeesID        = "employee-table-container"
	SheltersID         = "shelter-table-container"
)

// Action role markers.
const (
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionUpdateSalary = "update-salary"
	ActionCancel       = "cancel"
)

func optionalID(id *int) string {
	if id == nil {
		return "-"
	}
	return strconv.Itoa(*id)
}

// AvailableAnimalCards renders the dashboard's card list.
func AvailableAnimalCards(animals []animal.Animal) Region {
	if len(animals) == 0 {
		return Region{ID: AvailableAnimalsID, Empty: "No available animals found."}
	}
	cards := make([]Card, 0, len(animals))
	for _, a := range animals {
		cards = append(cards, Card{
			Title: fmt.Sprintf("%s (ID: %d)", a.Name, a.ID),
			Lines: []CardLine{
				{Text: fmt.Sprintf("Species: %s (%s)", a.Species, a.Breed)},
				{Text: fmt.Sprintf("Age: %d | Gender: %s", a.Age, a.Gender)},
				{Prefix: "Status: ", Text: string(a.Status), Class: "status-available"},
				{Text: "Shelter ID: " + optionalID(a.ShelterID)},
			},
		})
	}
	return Region{ID: AvailableAnimalsID, Cards: cards}
}

// AnimalTable renders the full animal list with update and delete actions.
func AnimalTable(animals []animal.Animal) Region {
	t := &Table{
		Headers:   []string{"ID", "Name", "Species/Breed", "Age/Gender", "Status", "Shelter ID", "Actions"},
		ActionURL: "/animals/actions",
	}
	for _, a := range animals {
		statusClass := "status-available"
		if a.IsAdopted() {
			statusClass = "status-adopted"
		}
		id := strconv.Itoa(a.ID)
		fields := map[string]string{"id": id, "name": a.Name}
		t.Rows = append(t.Rows, Row{
			ID: id,
			Cells: []Cell{
				{Text: id},
				{Text: a.Name},
				{Text: a.Species + " / " + a.Breed},
				{Text: fmt.Sprintf("%d yrs / %s", a.Age, a.Gender)},
				{Text: string(a.Status), Class: statusClass},
				{Text: optionalID(a.ShelterID)},
			},
			Actions: []Action{
				{Name: ActionUpdate, Label: "Update", Class: "btn-update", Fields: fields},
				{Name: ActionDelete, Label: "Delete", Class: "btn-delete", Fields: fields},
			},
		})
	}
	return TableRegion(AnimalsID, t, "No animals found in the database.")
}

// AdopterTable renders adopters with their customer ids.
func AdopterTable(adopters []adopter.Adopter) Region {
	t := &Table{Headers: []string{"Adopter ID", "Customer ID", "First Name", "Last Name", "Phone"}}
	for _, a := range adopters {
		t.Rows = append(t.Rows, Row{
			ID: strconv.Itoa(a.ID),
			Cells: []Cell{
				{Text: strconv.Itoa(a.ID)},
				{Text: strconv.Itoa(a.CustomerID)},
				{Text: a.FirstName},
				{Text: a.LastName},
				{Text: a.Phone},
			},
		})
	}
	return TableRegion(AdoptersID, t, "No adopters found in the database.")
}

// DonorTable renders donors; the amount gets two decimals.
func DonorTable(donors []donor.Donor) Region {
	t := &Table{Headers: []string{"Donor ID", "Customer ID", "First Name", "Last Name", "Phone", "Amount"}}
	for _, d := range donors {
		t.Rows = append(t.Rows, Row{
			ID: strconv.Itoa(d.ID),
			Cells: []Cell{
				{Text: strconv.Itoa(d.ID)},
				{Text: strconv.Itoa(d.CustomerID)},
				{Text: d.FirstName},
				{Text: d.LastName},
				{Text: d.Phone},
				{Text: d.Amount.String()},
			},
		})
	}
	return TableRegion(DonorsID, t, "No donors found in the database.")
}

// EmployeeTable renders employees with a salary update action.
func EmployeeTable(employees []employee.Employee) Region {
	t := &Table{
		Headers:   []string{"ID", "Name", "Role", "Salary", "Shelter ID", "Action"},
		ActionURL: "/employees/actions",
	}
	for _, e := range employees {
		id := strconv.Itoa(e.ID)
		salary := e.Salary.String()
		t.Rows = append(t.Rows, Row{
			ID: id,
			Cells: []Cell{
				{Text: id},
				{Text: e.Name},
				{Text: e.Role},
				{Text: "$" + salary},
				{Text: optionalID(e.ShelterID)},
			},
			Actions: []Action{{
				Name:   ActionUpdateSalary,
				Label:  "Update Salary",
				Class:  "btn-update-salary",
				Fields: map[string]string{"id": id, "name": e.Name, "current": salary},
			}},
		})
	}
	return TableRegion(EmployeesID, t, "No employees found. Add one above!")
}

// ShelterTable renders shelters; occupancy above 80% of capacity is highlighted.
func ShelterTable(shelters []shelter.Shelter) Region {
	t := &Table{
		Headers:   []string{"ID", "Name", "Address", "Capacity", "Occupancy", "Action"},
		ActionURL: "/shelters/actions",
	}
	for _, s := range shelters {
		id := strconv.Itoa(s.ID)
		occupancyClass := ""
		if s.NearCapacity() {
			occupancyClass = "text-warning"
		}
		t.Rows = append(t.Rows, Row{
			ID: id,
			Cells: []Cell{
				{Text: id},
				{Text: s.Name},
				{Text: s.DisplayLocation()},
				{Text: strconv.Itoa(s.Capacity)},
				{Text: strconv.Itoa(s.CurrentOccupancy), Class: occupancyClass},
			},
			Actions: []Action{{
				Name:   ActionDelete,
				Label:  "Delete",
				Class:  "btn-delete",
				Fields: map[string]string{"id": id, "name": s.Name},
			}},
		})
	}
	return TableRegion(SheltersID, t, "No shelters found. Add one above!")
}

// ReportTable projects report rows through def.
func ReportTable(def report.Definition, rows []report.Row) Region {
	return TableRegion(def.ID+"-container", Projection(def.Headers, def.Keys, rows), "No data found for this report.")
}
