package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(&SafeStaff{Role: StaffRoleAdmin}))
	assert.False(t, IsAdmin(&SafeStaff{Role: StaffRoleStaff}))
	assert.False(t, IsAdmin(nil))
}

func TestStaffMember_SafeDropsHash(t *testing.T) {
	member := &StaffMember{ID: "u1", Name: "Ann", Email: "ann@example.org", PasswordHash: "secret", Role: StaffRoleAdmin}
	safe := member.Safe()
	assert.Equal(t, "u1", safe.ID)
	assert.Equal(t, StaffRoleAdmin, safe.Role)
}

func TestProgressPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, ProgressPercentage(5, 10), 1e-9)
	assert.InDelta(t, 100.0, ProgressPercentage(10, 10), 1e-9)
	assert.InDelta(t, 150.0, ProgressPercentage(15, 10), 1e-9)
	assert.Zero(t, ProgressPercentage(5, 0))
}

func TestStrategicObjective_Progress(t *testing.T) {
	obj := &StrategicObjective{TargetValue: 40, ActualValue: 10}
	assert.InDelta(t, 25.0, obj.Progress(), 1e-9)
}
