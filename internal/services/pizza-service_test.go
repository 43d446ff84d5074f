package services

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-shop-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Pizza{}))
	return db
}

func TestGetAllPizzas(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store returns empty slice", func(t *testing.T) {
		svc := NewPizzaService(setupTestDB(t))

		pizzas, err := svc.GetAllPizzas(ctx)

		require.NoError(t, err)
		assert.Empty(t, pizzas)
	})

	t.Run("repeated listing is stable", func(t *testing.T) {
		svc := NewPizzaService(setupTestDB(t))
		for _, name := range []string{"Margherita", "Pepperoni", "Vegetarian"} {
			_, err := svc.AddPizza(ctx, models.NewPizza(models.NewPizzaID(), name))
			require.NoError(t, err)
		}

		first, err := svc.GetAllPizzas(ctx)
		require.NoError(t, err)
		second, err := svc.GetAllPizzas(ctx)
		require.NoError(t, err)

		assert.Len(t, first, 3)
		assert.Equal(t, first, second)
	})

	t.Run("closed database returns error", func(t *testing.T) {
		db := setupTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		pizzas, err := NewPizzaService(db).GetAllPizzas(ctx)

		assert.Error(t, err)
		assert.Nil(t, pizzas)
	})
}

func TestAddPizza(t *testing.T) {
	ctx := context.Background()
	svc := NewPizzaService(setupTestDB(t))
	id := models.NewPizzaID()

	created, err := svc.AddPizza(ctx, models.NewPizza(id, "Margherita"))
	require.NoError(t, err)
	assert.Equal(t, id, created.UUID)
	assert.Equal(t, "Margherita", created.PizzaName)
	assert.False(t, created.CreatedAt.IsZero())

	// primary key collision
	_, err = svc.AddPizza(ctx, models.NewPizza(id, "Duplicate"))
	assert.Error(t, err)

	pizzas, err := svc.GetAllPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Margherita", pizzas[0].PizzaName)
}

func TestUpdatePizza(t *testing.T) {
	ctx := context.Background()
	touched := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	svc := &pizzaService{db: setupTestDB(t), now: func() time.Time { return touched }}

	created, err := svc.AddPizza(ctx, models.NewPizza(models.NewPizzaID(), "Hawaiian"))
	require.NoError(t, err)

	updated, err := svc.UpdatePizza(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, updated.UUID)
	assert.Equal(t, "Hawaiian", updated.PizzaName)
	assert.True(t, updated.UpdatedAt.Equal(touched), "updated_at = %v", updated.UpdatedAt)

	_, err = svc.UpdatePizza(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestDeletePizza(t *testing.T) {
	ctx := context.Background()
	svc := NewPizzaService(setupTestDB(t))

	created, err := svc.AddPizza(ctx, models.NewPizza(models.NewPizzaID(), "Diavola"))
	require.NoError(t, err)

	deleted, err := svc.DeletePizza(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, deleted.UUID)
	assert.Equal(t, "Diavola", deleted.PizzaName)

	_, err = svc.DeletePizza(ctx, created.UUID)
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	pizzas, err := svc.GetAllPizzas(ctx)
	require.NoError(t, err)
	assert.Empty(t, pizzas)
}
