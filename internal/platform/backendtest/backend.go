// Package backendtest runs an in-memory stand-in for the shelter REST backend.
// It mirrors the backend's rules closely enough to drive the pages end to end:
// adoption flips an animal's status once, full shelters reject animals, and
// referenced shelters cannot be deleted.
package backendtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shelter-admin/service-shelter-web/internal/domain/adopter"
	"github.com/shelter-admin/service-shelter-web/internal/domain/animal"
	"github.com/shelter-admin/service-shelter-web/internal/domain/donor"
	"github.com/shelter-admin/service-shelter-web/internal/domain/employee"
	"github.com/shelter-admin/service-shelter-web/internal/domain/money"
	"github.com/shelter-admin/service-shelter-web/internal/domain/shelter"
)

// Prefix is the path prefix the fake serves under, like the real /api.
const Prefix = "/api"

type failure struct {
	status int
	body   any
}

// Backend is an httptest server holding backend state. All methods are safe
// for concurrent use.
type Backend struct {
	mu sync.Mutex

	Animals   []animal.Animal
	Adopters  []adopter.Adopter
	Donors    []donor.Donor
	Employees []employee.Employee
	Shelters  []shelter.Shelter
	Reports   map[string][]map[string]any

	// NextAdoptionID is the id handed to the next successful adoption.
	NextAdoptionID int

	calls    map[string]int
	failures map[string]failure
	hooks    map[string]func()
	bodies   map[string][]map[string]any
	nextID   int
	server   *httptest.Server
}

// New starts an empty backend and stops it when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{
		Reports:        map[string][]map[string]any{},
		NextAdoptionID: 1,
		calls:          map[string]int{},
		failures:       map[string]failure{},
		hooks:          map[string]func(){},
		bodies:         map[string][]map[string]any{},
		nextID:         100,
	}
	b.server = httptest.NewServer(b.router())
	t.Cleanup(b.server.Close)
	return b
}

// URL is the base URL to configure the service with.
func (b *Backend) URL() string {
	return b.server.URL + Prefix
}

// Close stops the server early, e.g. to simulate an unreachable backend.
func (b *Backend) Close() {
	b.server.Close()
}

// Fail makes every request matching method and path (with the prefix stripped,
// e.g. "/shelters/1") answer status with {"error": msg}. An empty msg sends a
// body without the error field.
func (b *Backend) Fail(method, path string, status int, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var body any = gin.H{"detail": "failed"}
	if msg != "" {
		body = gin.H{"error": msg}
	}
	b.failures[method+" "+path] = failure{status: status, body: body}
}

// OnCall runs fn before every request matching method and path is served,
// e.g. to move a test clock while the service waits on the backend.
func (b *Backend) OnCall(method, path string, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks[method+" "+path] = fn
}

// Calls reports how many requests hit method and path.
func (b *Backend) Calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

// Bodies returns the decoded JSON bodies received for method and path.
func (b *Backend) Bodies(method, path string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.bodies[method+" "+path]...)
}

// Seed helpers.

func (b *Backend) AddAnimal(a animal.Animal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Animals = append(b.Animals, a)
}

func (b *Backend) AddShelter(s shelter.Shelter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Shelters = append(b.Shelters, s)
}

func (b *Backend) AddEmployee(e employee.Employee) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Employees = append(b.Employees, e)
}

func (b *Backend) AddAdopter(a adopter.Adopter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Adopters = append(b.Adopters, a)
}

func (b *Backend) AddDonor(d donor.Donor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Donors = append(b.Donors, d)
}

func (b *Backend) SetReport(path string, rows []map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Reports[path] = rows
}

// Animal returns the stored animal with id.
func (b *Backend) Animal(id int) (animal.Animal, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.Animals {
		if a.ID == id {
			return a, true
		}
	}
	return animal.Animal{}, false
}

func (b *Backend) router() *gin.Engine {
	r := gin.New()
	api := r.Group(Prefix, b.track)

	api.GET("/animals", b.listAnimals)
	api.POST("/animals", b.createAnimal)
	api.PUT("/animals/:id", b.updateAnimal)
	api.DELETE("/animals/:id", b.deleteAnimal)

	api.GET("/adopters/details", func(c *gin.Context) { listJSON(b, c, &b.Adopters) })
	api.POST("/adopters", b.createAdopter)
	api.GET("/donors/details", func(c *gin.Context) { listJSON(b, c, &b.Donors) })
	api.POST("/donors", b.createDonor)

	api.GET("/employees", func(c *gin.Context) { listJSON(b, c, &b.Employees) })
	api.POST("/employees", b.createEmployee)
	api.PUT("/employees/:id/salary", b.updateSalary)

	api.GET("/shelters", func(c *gin.Context) { listJSON(b, c, &b.Shelters) })
	api.POST("/shelters", b.createShelter)
	api.DELETE("/shelters/:id", b.deleteShelter)

	api.POST("/adopt", b.adopt)
	api.GET("/reports/:name", b.report)
	return r
}

// track counts the call, captures the body, and applies injected failures.
func (b *Backend) track(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path[len(Prefix):]

	var body map[string]any
	if c.Request.ContentLength != 0 && c.Request.Method != http.MethodGet {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		c.Set("body", body)
	}

	b.mu.Lock()
	b.calls[key]++
	if body != nil {
		b.bodies[key] = append(b.bodies[key], body)
	}
	f, failing := b.failures[key]
	hook := b.hooks[key]
	b.mu.Unlock()

	if hook != nil {
		hook()
	}

	if failing {
		c.AbortWithStatusJSON(f.status, f.body)
		return
	}
	c.Next()
}

func listJSON[T any](b *Backend, c *gin.Context, rows *[]T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := append([]T{}, (*rows)...)
	c.JSON(http.StatusOK, out)
}

func (b *Backend) newID() int {
	b.nextID++
	return b.nextID
}

func (b *Backend) listAnimals(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	status := c.Query("status")
	out := make([]animal.Animal, 0, len(b.Animals))
	for _, a := range b.Animals {
		if status == "" || string(a.Status) == status {
			out = append(out, a)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (b *Backend) createAnimal(c *gin.Context) {
	body := c.MustGet("body").(map[string]any)

	b.mu.Lock()
	defer b.mu.Unlock()
	shelterID := intField(body, "shelter_id")
	for i, s := range b.Shelters {
		if s.ID != shelterID {
			continue
		}
		if s.CurrentOccupancy >= s.Capacity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Shelter is full. Cannot add more animals."})
			return
		}
		b.Shelters[i].CurrentOccupancy++
	}

	id := b.newID()
	b.Animals = append(b.Animals, animal.Animal{
		ID:        id,
		Name:      stringField(body, "name"),
		Species:   stringField(body, "species"),
		Breed:     stringField(body, "breed"),
		Age:       intField(body, "age"),
		Gender:    stringField(body, "gender"),
		Status:    animal.Status(stringField(body, "status")),
		ShelterID: &shelterID,
	})
	c.JSON(http.StatusCreated, gin.H{"new_animal_id": id})
}

func (b *Backend) updateAnimal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	body := c.MustGet("body").(map[string]any)

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Animals {
		if b.Animals[i].ID == id {
			if name, ok := body["name"].(string); ok {
				b.Animals[i].Name = name
			}
			c.JSON(http.StatusOK, gin.H{"rows_affected": 1})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No record found with ID %d in Animal.", id)})
}

func (b *Backend) deleteAnimal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, a := range b.Animals {
		if a.ID == id {
			b.Animals = append(b.Animals[:i], b.Animals[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"rows_affected": 1})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"rows_affected": 0})
}

func (b *Backend) createAdopter(c *gin.Context) {
	body := c.MustGet("body").(map[string]any)

	b.mu.Lock()
	defer b.mu.Unlock()
	customerID, adopterID := b.newID(), b.newID()
	b.Adopters = append(b.Adopters, adopter.Adopter{
		ID:         adopterID,
		CustomerID: customerID,
		FirstName:  stringField(body, "first_name"),
		LastName:   stringField(body, "last_name"),
		Phone:      stringField(body, "phone"),
	})
	c.JSON(http.StatusCreated, gin.H{"customer_id": customerID, "adopter_id": adopterID})
}

func (b *Backend) createDonor(c *gin.Context) {
	body := c.MustGet("body").(map[string]any)
	amount, err := strconv.ParseFloat(stringField(body, "amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect decimal value for amount"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	customerID, donorID := b.newID(), b.newID()
	b.Donors = append(b.Donors, donor.Donor{
		ID:         donorID,
		CustomerID: customerID,
		FirstName:  stringField(body, "first_name"),
		LastName:   stringField(body, "last_name"),
		Phone:      stringField(body, "phone"),
		Amount:     money.Decimal(amount),
	})
	c.JSON(http.StatusCreated, gin.H{"customer_id": customerID, "donor_id": donorID})
}

func (b *Backend) createEmployee(c *gin.Context) {
	body := c.MustGet("body").(map[string]any)

	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newID()
	shelterID := intField(body, "shelter_id")
	salary, _ := body["salary"].(float64)
	b.Employees = append(b.Employees, employee.Employee{
		ID:        id,
		Name:      stringField(body, "name"),
		Role:      stringField(body, "role"),
		Salary:    money.Decimal(salary),
		ShelterID: &shelterID,
	})
	c.JSON(http.StatusCreated, gin.H{"new_employee_id": id})
}

func (b *Backend) updateSalary(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	body := c.MustGet("body").(map[string]any)
	salary, ok := body["salary"].(float64)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'salary' in request body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Employees {
		if b.Employees[i].ID == id {
			b.Employees[i].Salary = money.Decimal(salary)
			c.JSON(http.StatusOK, gin.H{"rows_affected": 1})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"rows_affected": 0})
}

func (b *Backend) createShelter(c *gin.Context) {
	body := c.MustGet("body").(map[string]any)

	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newID()
	b.Shelters = append(b.Shelters, shelter.Shelter{
		ID:       id,
		Name:     stringField(body, "name"),
		Location: stringField(body, "location"),
		Capacity: intField(body, "capacity"),
	})
	c.JSON(http.StatusCreated, gin.H{"new_shelter_id": id})
}

func (b *Backend) deleteShelter(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.Employees {
		if e.ShelterID != nil && *e.ShelterID == id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete shelter: employees or animals are still assigned to it."})
			return
		}
	}
	for _, a := range b.Animals {
		if a.ShelterID != nil && *a.ShelterID == id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete shelter: employees or animals are still assigned to it."})
			return
		}
	}
	for i, s := range b.Shelters {
		if s.ID == id {
			b.Shelters = append(b.Shelters[:i], b.Shelters[i+1:]...)
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"rows_affected": 1})
}

func (b *Backend) adopt(c *gin.Context) {
	body := c.MustGet("body").(map[string]any)
	for _, key := range []string{"animal_id", "adopter_id", "employee_id"} {
		if _, ok := body[key]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must include 'animal_id', 'adopter_id', and 'employee_id'"})
			return
		}
	}
	animalID := intField(body, "animal_id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Animals {
		if b.Animals[i].ID != animalID {
			continue
		}
		if b.Animals[i].Status != animal.StatusAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Animal is already adopted or not available."})
			return
		}
		b.Animals[i].Status = animal.StatusAdopted
		id := b.NextAdoptionID
		b.NextAdoptionID++
		c.JSON(http.StatusCreated, gin.H{
			"message":          "Adoption successful!",
			"adoption_details": gin.H{"adoption_id": id},
		})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No record found with ID %d in Animal.", animalID)})
}

func (b *Backend) report(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rows, ok := b.Reports["/reports/"+c.Param("name")]
	if !ok {
		rows = []map[string]any{}
	}
	c.JSON(http.StatusOK, rows)
}

func stringField(body map[string]any, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func intField(body map[string]any, key string) int {
	switch v := body[key].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
