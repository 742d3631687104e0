package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMappingFields(t *testing.T) {
	t.Parallel()

	m := FieldMapping{
		Code:        "SKU",
		Name:        "Title",
		Description: "Desc",
		Weight:      "Kg",
	}

	assert.Equal(t, []MappedField{
		{Field: "code", Column: "SKU"},
		{Field: "name", Column: "Title"},
		{Field: "description", Column: "Desc"},
		{Field: "weight", Column: "Kg"},
	}, m.Fields())
}

func TestProductClassificationComplete(t *testing.T) {
	t.Parallel()

	var nilClass *ProductClassification
	assert.False(t, nilClass.Complete())
	assert.False(t, (&ProductClassification{Category: "Furniture"}).Complete())
	assert.False(t, (&ProductClassification{SubCategory: "Chairs"}).Complete())
	assert.True(t, (&ProductClassification{Category: "Furniture", SubCategory: "Chairs"}).Complete())
}

func TestAIStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, AIStatusPending.Terminal())
	assert.False(t, AIStatusProcessing.Terminal())
	assert.True(t, AIStatusCompleted.Terminal())
	assert.True(t, AIStatusFailed.Terminal())
}
