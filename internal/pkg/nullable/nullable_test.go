package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	StateCode Field[int]    `json:"state_code"`
	Title     Field[string] `json:"title"`
}

func TestField_TriState(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"state_code":null}`), &p))

	assert.True(t, p.StateCode.Set)
	assert.True(t, p.StateCode.Null)
	assert.False(t, p.StateCode.Present())
	assert.Nil(t, p.StateCode.Ptr())

	assert.False(t, p.Title.Set)
	assert.Nil(t, p.Title.Ptr())
}

func TestField_Value(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"state_code":35,"title":"Saúde"}`), &p))

	require.NotNil(t, p.StateCode.Ptr())
	assert.Equal(t, 35, *p.StateCode.Ptr())
	assert.Equal(t, "Saúde", p.Title.Value)
}

func TestField_WrongType(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"state_code":"35"}`), &p)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, 7, *Of(7).Ptr())
	assert.True(t, Null[int]().Set)
	assert.Nil(t, Null[int]().Ptr())
}
