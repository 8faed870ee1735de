package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfficers(t *testing.T) {
	officers := Officers()

	assert.Len(t, officers, 20)
	for i, o := range officers {
		assert.Equal(t, i+1, o.DisplayOrder)
		assert.NotEmpty(t, o.Name)
		assert.NotEmpty(t, o.Position)
		assert.NotEmpty(t, o.Image)
		assert.Equal(t, "2025-2026", o.Term)
	}
	assert.Equal(t, "SSITE Adviser", officers[0].Position)
	assert.Equal(t, "4th Year Sports Coordinator", officers[19].Position)
}
