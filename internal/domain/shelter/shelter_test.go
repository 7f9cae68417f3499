package shelter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShelter_NearCapacity(t *testing.T) {
	assert.False(t, Shelter{Capacity: 10, CurrentOccupancy: 8}.NearCapacity())
	assert.True(t, Shelter{Capacity: 10, CurrentOccupancy: 9}.NearCapacity())
	assert.False(t, Shelter{Capacity: 0, CurrentOccupancy: 0}.NearCapacity())
	assert.True(t, Shelter{Capacity: 0, CurrentOccupancy: 1}.NearCapacity())
}

func TestShelter_DisplayLocation(t *testing.T) {
	assert.Equal(t, "Pune", Shelter{Location: "Pune", Address: "old"}.DisplayLocation())
	assert.Equal(t, "12 MG Road", Shelter{Address: "12 MG Road"}.DisplayLocation())
}
