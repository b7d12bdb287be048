package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "atgs/internal/domain/user/valueobjects"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := NewUser("student1@test.local", "Test Student 1", vo.RoleStudent)
		require.NoError(t, err)
		assert.Equal(t, "student1@test.local", u.Email())
		assert.Equal(t, "Test Student 1", u.DisplayName())
		assert.Equal(t, vo.RoleStudent, u.Role())
		assert.Zero(t, u.ID())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("empty role defaults to student", func(t *testing.T) {
		u, err := NewUser("a@x.edu", "A", "")
		require.NoError(t, err)
		assert.Equal(t, vo.RoleStudent, u.Role())
	})

	t.Run("out-of-vocabulary role is kept as given", func(t *testing.T) {
		u, err := NewUser("a@x.edu", "A", vo.Role("wizard"))
		require.NoError(t, err)
		assert.Equal(t, vo.Role("wizard"), u.Role())
		assert.False(t, u.CanViewAllTickets())
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := NewUser("", "A", vo.RoleStudent)
		assert.Error(t, err)
	})

	t.Run("missing display name", func(t *testing.T) {
		_, err := NewUser("a@x.edu", "", vo.RoleStudent)
		assert.Error(t, err)
	})
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("a@x.edu", "A", vo.RoleStudent)
	require.NoError(t, err)

	require.NoError(t, u.SetID(7))
	assert.Equal(t, uint(7), u.ID())

	assert.Error(t, u.SetID(8), "ID must be immutable once assigned")

	v, err := NewUser("b@x.edu", "B", vo.RoleStudent)
	require.NoError(t, err)
	assert.Error(t, v.SetID(0))
}

func TestUser_CanViewAllTickets(t *testing.T) {
	advisor, err := ReconstructUser(1, "advisor1@test.local", "Test Advisor 1", vo.RoleAdvisor, time.Now())
	require.NoError(t, err)
	admin, err := ReconstructUser(2, "kyran@uoregon.edu", "Kyran McCown", vo.RoleAdmin, time.Now())
	require.NoError(t, err)
	student, err := ReconstructUser(3, "student1@test.local", "Test Student 1", vo.RoleStudent, time.Now())
	require.NoError(t, err)

	assert.True(t, advisor.CanViewAllTickets())
	assert.True(t, admin.CanViewAllTickets())
	assert.False(t, student.CanViewAllTickets())
}
