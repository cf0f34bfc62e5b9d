package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carecompanion/dashboard"
	"carecompanion/models"
)

func TestCreateMedicationValidatesClockTime(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	cases := []struct {
		time   string
		reason string
	}{
		{"", dashboard.ReasonRequired},
		{"9:00", dashboard.ReasonInvalidFormat},
		{"25:00", dashboard.ReasonInvalidFormat},
		{"08:60", dashboard.ReasonInvalidFormat},
		{"08:00:00", dashboard.ReasonInvalidFormat},
		{"noon", dashboard.ReasonInvalidFormat},
	}
	for _, tc := range cases {
		_, err := m.CreateMedication(user, MedicationInput{Name: "Aricept", Dosage: "10mg", Time: tc.time})
		var verr *dashboard.ValidationError
		require.ErrorAs(t, err, &verr, "time %q", tc.time)
		assert.Equal(t, "time", verr.Field)
		assert.Equal(t, tc.reason, verr.Reason, "time %q", tc.time)
	}

	_, err := m.CreateMedication(user, MedicationInput{Name: "Aricept", Dosage: "10mg", Time: "08:00"})
	assert.NoError(t, err)
}

func TestMedicationsSortByTimeOfDay(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	for _, in := range []MedicationInput{
		{Name: "Evening pill", Dosage: "5mg", Time: "13:30"},
		{Name: "Morning pill", Dosage: "10mg", Time: "07:15"},
		{Name: "Midday pill", Dosage: "5mg", Time: "08:00"},
	} {
		_, err := m.CreateMedication(user, in)
		require.NoError(t, err)
	}

	meds := m.ListMedications(user)
	require.Len(t, meds, 3)
	assert.Equal(t, "07:15", meds[0].Time)
	assert.Equal(t, "08:00", meds[1].Time)
	assert.Equal(t, "13:30", meds[2].Time)
}

func TestToggleMedicationStampsDay(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	med, err := m.CreateMedication(user, MedicationInput{Name: "Aricept", Dosage: "10mg", Time: "08:00"})
	require.NoError(t, err)
	assert.False(t, med.TakenToday)
	assert.Empty(t, med.LastTakenDate)

	checked, err := m.ToggleMedicationTaken(user, med.ID)
	require.NoError(t, err)
	assert.True(t, checked.TakenToday)
	assert.Equal(t, "2024-06-01", checked.LastTakenDate)

	// unchecking keeps the stamp
	unchecked, err := m.ToggleMedicationTaken(user, med.ID)
	require.NoError(t, err)
	assert.False(t, unchecked.TakenToday)
	assert.Equal(t, "2024-06-01", unchecked.LastTakenDate)
}

func TestPatientMayToggleButNotManageMedications(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	med, err := m.CreateMedication(user, MedicationInput{Name: "Aricept", Dosage: "10mg", Time: "08:00"})
	require.NoError(t, err)

	require.NoError(t, m.SetMode(user, dashboard.Patient))

	_, err = m.CreateMedication(user, MedicationInput{Name: "Extra", Dosage: "5mg", Time: "09:00"})
	assert.ErrorIs(t, err, dashboard.ErrNotAllowed)

	_, err = m.UpdateMedication(user, med.ID, MedicationInput{Name: "Aricept", Dosage: "20mg", Time: "08:00"})
	assert.ErrorIs(t, err, dashboard.ErrNotAllowed)

	assert.ErrorIs(t, m.DeleteMedication(user, med.ID), dashboard.ErrNotAllowed)

	_, err = m.ToggleMedicationTaken(user, med.ID)
	assert.NoError(t, err)
}

func TestResetStaleMedChecks(t *testing.T) {
	meds := []models.Medication{
		{ID: "a", Name: "Stale", TakenToday: true, LastTakenDate: "2024-05-31"},
		{ID: "b", Name: "Current", TakenToday: true, LastTakenDate: "2024-06-01"},
		{ID: "c", Name: "Untouched", TakenToday: false},
	}

	out := resetStaleMedChecks(meds, "2024-06-01")
	require.Len(t, out, 3)
	assert.False(t, out[0].TakenToday)
	assert.Equal(t, "2024-05-31", out[0].LastTakenDate)
	assert.True(t, out[1].TakenToday)
	assert.False(t, out[2].TakenToday)

	// input slice untouched
	assert.True(t, meds[0].TakenToday)
}
