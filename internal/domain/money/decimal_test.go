package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_UnmarshalJSON(t *testing.T) {
	cases := map[string]string{
		`52000`:      "52000.00",
		`52000.5`:    "52000.50",
		`"61000.00"`: "61000.00",
		`" 12.5 "`:   "12.50",
		`null`:       "0.00",
	}
	for in, want := range cases {
		var d Decimal
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.Equal(t, want, d.String(), in)
	}
}

func TestDecimal_UnmarshalJSON_RejectsGarbage(t *testing.T) {
	var d Decimal
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
