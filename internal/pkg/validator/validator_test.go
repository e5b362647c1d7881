package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct1 struct {
	Field1      string        `json:"field1" validate:"required"`
	Field2      string        `yaml:"field2" validate:"required"`
	Field3      string        `json:"-" validate:"required"`
	Field4      string        `validate:"required"`
	Nested      []testStruct2 `validate:"dive"`
	testStruct2               // anonymous
}

type testStruct2 struct {
	Field4 string `json:"field4" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()
	err := New().Validate(context.Background(), testStruct1{Nested: []testStruct2{{}, {}}})
	expected := `
- "field1" is a required field
- "field2" is a required field
- "Field3" is a required field
- "Field4" is a required field
- "Nested[0].field4" is a required field
- "Nested[1].field4" is a required field
- "field4" is a required field
`
	require.Error(t, err)
	assert.Equal(t, strings.TrimSpace(expected), err.Error())
}

func TestValidateStructOk(t *testing.T) {
	t.Parallel()
	value := testStruct1{
		Field1:      "a",
		Field2:      "b",
		Field3:      "c",
		Field4:      "d",
		testStruct2: testStruct2{Field4: "e"},
	}
	assert.NoError(t, New().Validate(context.Background(), value))
}

func TestValidateCustomRule(t *testing.T) {
	t.Parallel()
	v := New(Rule{
		Tag: "alphanumeric",
		Func: func(fl validator.FieldLevel) bool {
			for _, r := range fl.Field().String() {
				if !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') {
					return false
				}
			}
			return true
		},
	})

	type testStruct struct {
		Name string `json:"name" validate:"alphanumeric"`
	}

	assert.NoError(t, v.Validate(context.Background(), testStruct{Name: "abc123"}))
	err := v.Validate(context.Background(), testStruct{Name: "abc-123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}
