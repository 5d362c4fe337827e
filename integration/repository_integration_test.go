package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	reposql "github.com/iyhunko/product-catalog/internal/repository/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := reposql.NewProductRepository(testDB.DB)
	ctx := context.Background()

	t.Run("create assigns sequential IDs", func(t *testing.T) {
		testDB.TruncateTables(t)

		first, err := repo.Create(ctx, &model.Product{Name: "Pen", Description: "Blue pen", Price: 1.50, Image: "a.png"})
		require.NoError(t, err)
		second, err := repo.Create(ctx, &model.Product{Name: "Notebook", Description: "Lined notebook", Price: 4.25, Image: "b.png"})
		require.NoError(t, err)

		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("find returns stored values", func(t *testing.T) {
		testDB.TruncateTables(t)

		created, err := repo.Create(ctx, &model.Product{Name: "Pen", Description: "Blue pen", Price: 1.50, Image: "a.png"})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pen", found.Name)
		assert.Equal(t, "Blue pen", found.Description)
		assert.Equal(t, 1.50, found.Price)
		assert.Equal(t, "a.png", found.Image)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("find missing id", func(t *testing.T) {
		testDB.TruncateTables(t)

		found, err := repo.FindByID(ctx, 99999)
		require.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.Is(err, repository.ErrProductNotFound))
	})

	t.Run("list pages in primary-key order", func(t *testing.T) {
		testDB.TruncateTables(t)

		names := []string{"Pen", "Notebook", "Pencil", "Eraser"}
		for _, name := range names {
			_, err := repo.Create(ctx, &model.Product{Name: name, Description: "d", Price: 1, Image: "a.png"})
			require.NoError(t, err)
		}

		page, err := repository.NewPage(1, 2)
		require.NoError(t, err)

		products, err := repo.List(ctx, page)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Notebook", products[0].Name)
		assert.Equal(t, "Pencil", products[1].Name)
	})

	t.Run("search is a case-insensitive substring match", func(t *testing.T) {
		testDB.TruncateTables(t)

		for _, name := range []string{"Pen", "Notebook", "Pencil"} {
			_, err := repo.Create(ctx, &model.Product{Name: name, Description: "d", Price: 1, Image: "a.png"})
			require.NoError(t, err)
		}

		products, err := repo.SearchByName(ctx, "PEN")
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Pen", products[0].Name)
		assert.Equal(t, "Pencil", products[1].Name)

		all, err := repo.SearchByName(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("update overwrites mutable columns", func(t *testing.T) {
		testDB.TruncateTables(t)

		created, err := repo.Create(ctx, &model.Product{Name: "Pen", Description: "Blue pen", Price: 1.50, Image: "a.png"})
		require.NoError(t, err)

		created.Description = "Red pen"
		created.Price = 2.00
		created.Touch()

		_, err = repo.Update(ctx, created)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Red pen", found.Description)
		assert.Equal(t, 2.00, found.Price)
	})

	t.Run("delete and count", func(t *testing.T) {
		testDB.TruncateTables(t)

		created, err := repo.Create(ctx, &model.Product{Name: "Pen", Description: "d", Price: 1, Image: "a.png"})
		require.NoError(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, repo.DeleteByID(ctx, created.ID))

		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		err = repo.DeleteByID(ctx, created.ID)
		assert.True(t, errors.Is(err, repository.ErrProductNotFound))
	})
}
