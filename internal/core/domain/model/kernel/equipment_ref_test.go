package kernel_test

import (
	"testing"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquipmentRef(t *testing.T) {
	t.Run("creates_equipment_reference", func(t *testing.T) {
		ref, err := kernel.NewEquipmentRef("PUMP-001")

		require.NoError(t, err)
		assert.Equal(t, "PUMP-001", ref.EquipmentID())
		assert.Empty(t, ref.FunctionalLocation())
		assert.Equal(t, "PUMP-001", ref.String())
	})

	t.Run("rejects_empty_equipment_id", func(t *testing.T) {
		_, err := kernel.NewEquipmentRef("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewFunctionalLocationRef(t *testing.T) {
	ref, err := kernel.NewFunctionalLocationRef("PLANT-A/LINE-2")

	require.NoError(t, err)
	assert.Empty(t, ref.EquipmentID())
	assert.Equal(t, "PLANT-A/LINE-2", ref.FunctionalLocation())
	assert.Equal(t, "PLANT-A/LINE-2", ref.String())
}

func TestRestoreEquipmentRef(t *testing.T) {
	t.Run("restores_equipment_reference", func(t *testing.T) {
		ref, err := kernel.RestoreEquipmentRef("PUMP-001", "")
		require.NoError(t, err)
		assert.Equal(t, "PUMP-001", ref.EquipmentID())
	})

	t.Run("restores_functional_location_reference", func(t *testing.T) {
		ref, err := kernel.RestoreEquipmentRef("", "PLANT-A/LINE-2")
		require.NoError(t, err)
		assert.Equal(t, "PLANT-A/LINE-2", ref.FunctionalLocation())
	})

	t.Run("rejects_both_identifiers", func(t *testing.T) {
		_, err := kernel.RestoreEquipmentRef("PUMP-001", "PLANT-A/LINE-2")
		require.ErrorIs(t, err, kernel.ErrEquipmentRefIsAmbiguous)
	})

	t.Run("rejects_neither_identifier", func(t *testing.T) {
		_, err := kernel.RestoreEquipmentRef("", "")
		require.Error(t, err)
	})
}

func TestEquipmentRef_Validate(t *testing.T) {
	var zero kernel.EquipmentRef
	require.Error(t, zero.Validate())

	ref, _ := kernel.NewEquipmentRef("PUMP-001")
	require.NoError(t, ref.Validate())
}
