package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTopic carries the activity stream of the web service.
const DefaultTopic = "shelter.web.events"

// Activity event types, one per successful mutation.
const (
	AnimalCreated         = "animal.created"
	AnimalUpdated         = "animal.updated"
	AnimalDeleted         = "animal.deleted"
	AdopterCreated        = "adopter.created"
	DonorCreated          = "donor.created"
	EmployeeCreated       = "employee.created"
	EmployeeSalaryUpdated = "employee.salary_updated"
	ShelterCreated        = "shelter.created"
	ShelterDeleted        = "shelter.deleted"
	AdoptionCreated       = "adoption.created"
)

// CloudEvent is the envelope every activity event travels in.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in an envelope with a fresh id.
func NewCloudEvent(source, eventType string, data any) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("marshal %s data: %w", eventType, err)
	}
	return CloudEvent{
		ID:     uuid.NewString(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

// ParseCloudEvent decodes an envelope from a message value.
func ParseCloudEvent(b []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(b, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the payload into v.
func (ce CloudEvent) ParseData(v any) error {
	return json.Unmarshal(ce.Data, v)
}

// EntityEvent is the payload for create/update/delete of a single record.
type EntityEvent struct {
	ID      int            `json:"id"`
	Changes map[string]any `json:"changes,omitempty"`
}

// AdoptionEvent is the payload of adoption.created.
type AdoptionEvent struct {
	AdoptionID int `json:"adoption_id"`
	AnimalID   int `json:"animal_id"`
	AdopterID  int `json:"adopter_id"`
	EmployeeID int `json:"employee_id"`
}
