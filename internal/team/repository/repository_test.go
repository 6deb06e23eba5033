package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"docshelf/internal/team/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory SQLite creates a separate database per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.Team{})
	require.NoError(t, err)

	return db
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	created, err := repo.Create(ctx, &model.Team{
		Name:   "Tigers",
		Mascot: "Tony",
		Players: []model.Player{
			{FirstName: "Sam", LastName: "Smith", Salary: 100000},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tigers", got.Name)
	require.Len(t, got.Players, 1)
	assert.Equal(t, 100000.0, got.Players[0].Salary)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	got, err := repo.GetByID(ctx, "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrTeamNotFound)
}

func TestRepository_Update_RosterAppend(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	created, err := repo.Create(ctx, &model.Team{
		Name:   "Tigers",
		Mascot: "Tony",
		Players: []model.Player{
			{FirstName: "Sam", LastName: "Smith"},
		},
	})
	require.NoError(t, err)

	created.Players = append(created.Players, model.Player{FirstName: "Alex", LastName: "Jones"})
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 2)
	assert.Equal(t, "Sam", got.Players[0].FirstName)
	assert.Equal(t, "Alex", got.Players[1].FirstName)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	created, err := repo.Create(ctx, &model.Team{Name: "Tigers", Mascot: "Tony"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tigers", deleted.Name)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrTeamNotFound)
}
