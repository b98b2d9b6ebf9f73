package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

func orderRows(o model.Order) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "order_id", "status", "total_documents", "document_type", "price", "created_at", "updated_at"}).
		AddRow(o.ID, o.UserID, o.OrderID, o.Status, o.TotalDocuments, o.DocumentType, o.Price, o.CreatedAt, o.UpdatedAt)
}

func TestOrderPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrderPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	stored := model.Order{
		ID:             1,
		UserID:         7,
		OrderID:        "ORD-1",
		Status:         model.StatusPendingPayment,
		TotalDocuments: 2,
		DocumentType:   model.DocTypeXLSX,
		Price:          50,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(stored.UserID, stored.OrderID, stored.Status, stored.TotalDocuments, stored.DocumentType, stored.Price).
		WillReturnRows(orderRows(stored))

	result, err := repo.Create(ctx, &model.Order{
		UserID:         7,
		OrderID:        "ORD-1",
		Status:         model.StatusPendingPayment,
		TotalDocuments: 2,
		DocumentType:   model.DocTypeXLSX,
		Price:          50,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, now, result.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrderPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnRows(orderRows(model.Order{ID: 1, UserID: 7, OrderID: "ORD-1", Status: model.StatusPending}))

		o, err := repo.FindByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "ORD-1", o.OrderID)
	})

	t.Run("not found maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		o, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, o)
	})
}

func TestOrderPostgres_FindByOrderID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrderPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE order_id = ?").
		WithArgs("ORD-1").
		WillReturnRows(orderRows(model.Order{ID: 1, UserID: 7, OrderID: "ORD-1", Status: model.StatusPending}))

	o, err := repo.FindByOrderID(ctx, "ORD-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderPostgres_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrderPostgres(db)
	ctx := context.Background()

	rows := orderRows(model.Order{ID: 1, UserID: 7, OrderID: "ORD-1", Status: model.StatusPending}).
		AddRow(2, 7, "ORD-2", model.StatusProcessing, 1, model.DocTypeDOCX, 9.99, time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = ?").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	items, err := repo.ListByUser(ctx, 7)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrderPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE orders SET status").
			WithArgs(int64(1), model.StatusProcessing).
			WillReturnRows(orderRows(model.Order{ID: 1, UserID: 7, OrderID: "ORD-1", Status: model.StatusProcessing}))

		o, err := repo.UpdateStatus(ctx, 1, model.StatusProcessing)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusProcessing, o.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE orders SET status").
			WithArgs(int64(99), model.StatusProcessing).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateStatus(ctx, 99, model.StatusProcessing)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
