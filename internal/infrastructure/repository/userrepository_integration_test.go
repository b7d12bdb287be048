package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"atgs/internal/domain/user"
	uservo "atgs/internal/domain/user/valueobjects"
	"atgs/internal/infrastructure/persistence/models"
	"atgs/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.TicketModel{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, email, displayName string, role uservo.Role) *user.User {
	u, err := user.NewUser(email, displayName, role)
	require.NoError(t, err)
	return u
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create user successfully", func(t *testing.T) {
		u := createTestUser(t, "alice@test.local", "Alice", uservo.RoleStudent)

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email should fail", func(t *testing.T) {
		u1 := createTestUser(t, "dup@test.local", "First", uservo.RoleStudent)
		require.NoError(t, repo.Create(ctx, u1))

		u2 := createTestUser(t, "dup@test.local", "Second", uservo.RoleAdvisor)
		err := repo.Create(ctx, u2)
		assert.Error(t, err)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		u := createTestUser(t, "bob@test.local", "Bob", uservo.RoleAdvisor)
		require.NoError(t, repo.Create(ctx, u))

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.Email(), found.Email())
		assert.Equal(t, u.DisplayName(), found.DisplayName())
		assert.Equal(t, uservo.RoleAdvisor, found.Role())
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_GetByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u1 := createTestUser(t, "one@test.local", "One", uservo.RoleStudent)
	u2 := createTestUser(t, "two@test.local", "Two", uservo.RoleStudent)
	require.NoError(t, repo.Create(ctx, u1))
	require.NoError(t, repo.Create(ctx, u2))

	t.Run("returns requested users", func(t *testing.T) {
		users, err := repo.GetByIDs(ctx, []uint{u1.ID(), u2.ID()})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("empty input returns empty slice", func(t *testing.T) {
		users, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "carol@uoregon.edu", "Carol", uservo.RoleAdmin)
	require.NoError(t, repo.Create(ctx, u))

	t.Run("existing email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "carol@uoregon.edu")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("missing email returns nil", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@test.local")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "dave@test.local", "Dave", uservo.RoleStudent)
	require.NoError(t, repo.Create(ctx, u))

	exists, err := repo.ExistsByEmail(ctx, "dave@test.local")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "ghost@test.local")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_ListByRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	for _, tc := range []struct {
		email string
		role  uservo.Role
	}{
		{"s1@test.local", uservo.RoleStudent},
		{"a1@test.local", uservo.RoleAdvisor},
		{"s2@test.local", uservo.RoleStudent},
		{"adm@uoregon.edu", uservo.RoleAdmin},
	} {
		u := createTestUser(t, tc.email, tc.email, tc.role)
		require.NoError(t, repo.Create(ctx, u))
	}

	students, err := repo.ListByRole(ctx, uservo.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 2)

	// Ordered by id so seeding is deterministic for a fixed random source.
	assert.Less(t, students[0].ID(), students[1].ID())

	advisors, err := repo.ListByRole(ctx, uservo.RoleAdvisor)
	require.NoError(t, err)
	assert.Len(t, advisors, 1)
}

func TestUserRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u1 := createTestUser(t, "x@test.local", "X", uservo.RoleStudent)
	u2 := createTestUser(t, "y@test.local", "Y", uservo.RoleAdvisor)
	require.NoError(t, repo.Create(ctx, u1))
	require.NoError(t, repo.Create(ctx, u2))

	t.Run("no filter returns everyone", func(t *testing.T) {
		users, err := repo.List(ctx, user.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("role filter", func(t *testing.T) {
		role := uservo.RoleAdvisor
		users, err := repo.List(ctx, user.ListFilter{Role: &role})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "y@test.local", users[0].Email())
	})
}

func TestUserRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	u := createTestUser(t, "z@test.local", "Z", uservo.RoleStudent)
	require.NoError(t, repo.Create(ctx, u))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
