package shared_test

import (
	"testing"

	"hotel/shared"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "valid id", input: "3", expected: 3},
		{name: "large id", input: "9007199254740993", expected: 9007199254740993},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.InvalidIDParam)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:gets", shared.BuildCacheKey("room:gets"))
	assert.Equal(t, "room:get:4", shared.BuildCacheKey("room:get", int64(4)))
	assert.Equal(t, "room:gets:", shared.BuildCacheKey("room:gets", ""))
	assert.Equal(t, "room:gets:suite", shared.BuildCacheKey("room:gets", "suite"))
}
