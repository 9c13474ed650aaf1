package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "price", "image_url", "description", "stock", "category_id", "created_at", "updated_at",
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("All", func(t *testing.T) {
		rows := productRows().
			AddRow(1, "Candy A", 10000.0, "candy1.jpg", "Chewy", 30, 1, time.Now(), nil).
			AddRow(2, "Candy B", 15000.0, "candy2.jpg", nil, 12, 2, time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnRows(rows)

		products, err := repo.List(context.Background(), ListFilter{})
		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Candy A", products[0].Name)
		assert.Equal(t, 10000.0, products[0].Price)
	})

	t.Run("SearchFilter", func(t *testing.T) {
		rows := productRows().
			AddRow(1, "Candy A", 10000.0, nil, nil, 30, nil, time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE name ILIKE").
			WithArgs("%Candy A%").
			WillReturnRows(rows)

		products, err := repo.List(context.Background(), ListFilter{Search: "Candy A"})
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background(), ListFilter{})
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := productRows().
			AddRow(7, "Candy C", 20000.0, nil, nil, 0, nil, time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
			WithArgs(uint(7)).
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("NotFoundReturnsNil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
			WithArgs(uint(99)).
			WillReturnRows(productRows())

		p, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := productRows().
		AddRow(1, "Candy A", 10000.0, "candy1.jpg", "Chewy", 30, 1, time.Now(), nil)

	img := "candy1.jpg"
	desc := "Chewy"
	catID := uint(1)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Candy A", 10000.0, &img, &desc, 30, &catID).
		WillReturnRows(rows)

	p, err := repo.Create(context.Background(), CreateInput{
		Name:        "Candy A",
		Price:       10000,
		ImageURL:    &img,
		Description: &desc,
		Stock:       30,
		CategoryID:  &catID,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(uint(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 42), ErrNotFound)
	})
}
