package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func recordRows(recs ...Record) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "product_id", "quantity_in_stock", "min_stock", "reorder_level",
		"reorder_quantity", "status", "last_restocked", "last_updated", "updated_reason",
	})
	for _, rec := range recs {
		rows.AddRow(rec.ID, rec.ProductID, rec.Quantity, rec.MinStock, rec.ReorderLevel,
			rec.ReorderQty, rec.Status, rec.LastRestocked, rec.LastUpdated, rec.UpdatedReason)
	}
	return rows
}

func TestRepositoryList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		recs := []Record{
			{ID: 1, ProductID: 1, Quantity: 30, MinStock: 10, ReorderLevel: 20, ReorderQty: 50, Status: StatusInStock, LastUpdated: time.Now()},
			{ID: 2, ProductID: 2, Quantity: 0, MinStock: 5, ReorderLevel: 10, ReorderQty: 25, Status: StatusOutOfStock, LastUpdated: time.Now()},
		}
		mock.ExpectQuery(`SELECT (.+) FROM inventory ORDER BY product_id`).
			WillReturnRows(recordRows(recs...))

		repo := NewRepository(db)
		got, err := repo.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, StatusOutOfStock, got[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM inventory`).
			WillReturnError(errors.New("connection refused"))

		repo := NewRepository(db)
		_, err = repo.List(context.Background())

		assert.Error(t, err)
	})
}

func TestRepositoryGetByProductID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rec := Record{ID: 1, ProductID: 7, Quantity: 15, MinStock: 10, ReorderLevel: 20, ReorderQty: 50, Status: StatusReorder, LastUpdated: time.Now()}
		mock.ExpectQuery(`SELECT (.+) FROM inventory WHERE product_id = \$1`).
			WithArgs(uint(7)).
			WillReturnRows(recordRows(rec))

		repo := NewRepository(db)
		got, err := repo.GetByProductID(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, StatusReorder, got.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM inventory WHERE product_id = \$1`).
			WithArgs(uint(99)).
			WillReturnRows(recordRows())

		repo := NewRepository(db)
		_, err = repo.GetByProductID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepositoryUpdate(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE inventory`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewRepository(db)
		_, err = repo.Update(context.Background(), &Record{ProductID: 99})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
