package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityCoercion(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Quantity
	}{
		{"number", `{"quantity": 3}`, 3},
		{"numeric string", `{"quantity": "5"}`, 5},
		{"padded string", `{"quantity": " 2 "}`, 2},
		{"negative number", `{"quantity": -2}`, -2},
		{"non-numeric string", `{"quantity": "abc"}`, 0},
		{"empty string", `{"quantity": ""}`, 0},
		{"null", `{"quantity": null}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req UpdateQuantityRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req.Quantity)
		})
	}
}
