package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyAllowedEverything(t *testing.T) {
	p := PatientMay()
	for _, op := range []Op{OpCreate, OpUpdate, OpDelete, OpToggle} {
		assert.True(t, p.Allows(Family, op), "family refused %q", op)
	}
}

func TestPatientAllowedOnlyGrantedOps(t *testing.T) {
	p := PatientMay(OpCreate, OpToggle)

	assert.True(t, p.Allows(Patient, OpCreate))
	assert.True(t, p.Allows(Patient, OpToggle))
	assert.False(t, p.Allows(Patient, OpUpdate))
	assert.False(t, p.Allows(Patient, OpDelete))
}

func TestPatientWithNoGrants(t *testing.T) {
	p := PatientMay()
	for _, op := range []Op{OpCreate, OpUpdate, OpDelete, OpToggle} {
		assert.False(t, p.Allows(Patient, op), "patient allowed %q", op)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(Patient))
	assert.True(t, ValidRole(Family))
	assert.False(t, ValidRole(Role("admin")))
	assert.False(t, ValidRole(Role("")))
}
