package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseIntDecodes(t *testing.T) {
	tests := []struct {
		body string
		want looseInt
	}{
		{`{"n": 7}`, 7},
		{`{"n": "7"}`, 7},
		{`{"n": " 12 "}`, 12},
		{`{"n": "3abc"}`, 3},
		{`{"n": "-2"}`, -2},
		{`{"n": "abc"}`, 0},
		{`{"n": ""}`, 0},
		{`{"n": null}`, 0},
		{`{}`, 0},
	}

	for _, tt := range tests {
		var dst struct {
			N looseInt `json:"n"`
		}
		require.NoError(t, json.Unmarshal([]byte(tt.body), &dst), tt.body)
		assert.Equal(t, tt.want, dst.N, tt.body)
	}
}
