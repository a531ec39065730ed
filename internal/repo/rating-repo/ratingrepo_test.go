package ratingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const upsertQuery = `INSERT INTO ratings (resource_id, user_session, rating) VALUES ($1, $2, $3) ON CONFLICT (resource_id, user_session) DO UPDATE SET rating = EXCLUDED.rating, updated_at = now() RETURNING id, created_at, updated_at`

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock, tx := NewMock(t)
	created := time.Now().Add(-time.Hour)
	updated := time.Now()

	tests := []struct {
		name      string
		rating    *domain.Rating
		mockSetup func()
		expectErr bool
		expected  *domain.Rating
	}{
		{
			name:   "First rating is inserted",
			rating: &domain.Rating{ResourceID: "abc-123", UserSession: "user_1", Rating: 4},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).
						WithArgs("abc-123", "user_1", 4).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), created, created))
					return fn(ctx)
				})
			},
			expected: &domain.Rating{ID: 7, ResourceID: "abc-123", UserSession: "user_1", Rating: 4, CreatedAt: created, UpdatedAt: created},
		},
		{
			name:   "Second rating from the same session updates the same row",
			rating: &domain.Rating{ResourceID: "abc-123", UserSession: "user_1", Rating: 2},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).
						WithArgs("abc-123", "user_1", 2).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), created, updated))
					return fn(ctx)
				})
			},
			expected: &domain.Rating{ID: 7, ResourceID: "abc-123", UserSession: "user_1", Rating: 2, CreatedAt: created, UpdatedAt: updated},
		},
		{
			name:   "Foreign key violation",
			rating: &domain.Rating{ResourceID: "missing", UserSession: "user_1", Rating: 5},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(upsertQuery)).
						WithArgs("missing", "user_1", 5).
						WillReturnError(errors.New("violates foreign key constraint"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name:   "Transaction can't start",
			rating: &domain.Rating{ResourceID: "abc-123", UserSession: "user_1", Rating: 5},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Upsert(context.Background(), tt.rating)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, tt.rating)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindBySession(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, resource_id, user_session, rating, created_at, updated_at FROM ratings WHERE resource_id = $1 AND user_session = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Rating
	}{
		{
			name: "Rating exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "resource_id", "user_session", "rating", "created_at", "updated_at"}).
					AddRow(int64(1), "abc-123", "user_1", 5, now, now)
				mock.ExpectQuery(query).WithArgs("abc-123", "user_1").WillReturnRows(rows)
			},
			result: &domain.Rating{ID: 1, ResourceID: "abc-123", UserSession: "user_1", Rating: 5, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "No rating yet",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("abc-123", "user_1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("abc-123", "user_1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindBySession(context.Background(), "abc-123", "user_1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ListValues(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta("SELECT resource_id, rating FROM ratings")

	mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"resource_id", "rating"}).
		AddRow("abc-123", 5).
		AddRow("abc-123", 4).
		AddRow("def-456", 1))
	result, err := repo.ListValues(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.Rating{
		{ResourceID: "abc-123", Rating: 5},
		{ResourceID: "abc-123", Rating: 4},
		{ResourceID: "def-456", Rating: 1},
	}, result)

	mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
	result, err = repo.ListValues(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)

	mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"resource_id", "rating"}).AddRow("abc-123", "five"))
	result, err = repo.ListValues(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}
