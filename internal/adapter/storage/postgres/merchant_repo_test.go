package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-webhook-notifier/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const merchantQuery = `SELECT id, name, secret_key_enc, status, created_at, updated_at FROM merchants WHERE id = \$1`

func merchantRow(m domain.Merchant) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "secret_key_enc", "status", "created_at", "updated_at"}).
		AddRow(m.ID, m.Name, m.SecretKeyEnc, m.Status, m.CreatedAt, m.UpdatedAt)
}

func TestMerchantRepo_GetByID(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	suspended := domain.Merchant{
		ID:           "M2",
		Name:         "Paused Shop",
		SecretKeyEnc: "c2VhbGVk",
		Status:       domain.MerchantStatusSuspended,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	active := suspended
	active.ID, active.Name, active.Status = "M1", "Test Shop", domain.MerchantStatusActive

	dbErr := errors.New("connection reset by peer")

	tests := []struct {
		name    string
		id      string
		rows    *pgxmock.Rows
		qErr    error
		want    *domain.Merchant
		wantErr error
	}{
		{name: "active", id: "M1", rows: merchantRow(active), want: &active},
		{name: "suspended", id: "M2", rows: merchantRow(suspended), want: &suspended},
		{name: "not found", id: "missing", qErr: pgx.ErrNoRows},
		{name: "query error", id: "M1", qErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			exp := mock.ExpectQuery(merchantQuery).WithArgs(tt.id)
			if tt.qErr != nil {
				exp.WillReturnError(tt.qErr)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := NewMerchantRepo(mock).GetByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMerchantRepo_StatusDrivesIsActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	m := domain.Merchant{ID: "M3", Name: "Closed", Status: domain.MerchantStatusDeactivated}
	mock.ExpectQuery(merchantQuery).WithArgs("M3").WillReturnRows(merchantRow(m))

	got, err := NewMerchantRepo(mock).GetByID(context.Background(), "M3")
	require.NoError(t, err)
	assert.False(t, got.IsActive())
}
