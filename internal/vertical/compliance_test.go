package vertical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("Should classify medical verticals", func(t *testing.T) {
		for _, id := range []int{9, 10, 11, 12} {
			class := Classify(id)
			assert.True(t, class.Medical, "vertical %d", id)
			assert.False(t, class.Legal, "vertical %d", id)
		}
	})

	t.Run("Should classify the legal vertical", func(t *testing.T) {
		class := Classify(13)
		assert.True(t, class.Legal)
		assert.False(t, class.Medical)
	})

	t.Run("Should classify everything else as neither", func(t *testing.T) {
		for _, id := range []int{0, 1, 8, 14, 20} {
			class := Classify(id)
			assert.False(t, class.Medical, "vertical %d", id)
			assert.False(t, class.Legal, "vertical %d", id)
		}
	})
}

func TestComplianceModifiers(t *testing.T) {
	t.Run("Should return the medical block for medical verticals", func(t *testing.T) {
		modifiers := ComplianceModifiers(9)
		assert.Equal(t, medicalGuardrails, modifiers)
	})

	t.Run("Should return the legal block for the legal vertical", func(t *testing.T) {
		modifiers := ComplianceModifiers(13)
		assert.Equal(t, legalGuardrails, modifiers)
	})

	t.Run("Should return nothing for other verticals", func(t *testing.T) {
		assert.Empty(t, ComplianceModifiers(0))
		assert.Empty(t, ComplianceModifiers(18))
	})

	t.Run("Should return identical text on repeated calls", func(t *testing.T) {
		assert.Equal(t, ComplianceModifiers(10), ComplianceModifiers(10))
	})
}
