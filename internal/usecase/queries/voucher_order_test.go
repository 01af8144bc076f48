//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/queries"
	queriesmock "voucher-seckill/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVoucherOrderQueries_GetByID(t *testing.T) {
	view := &queries.VoucherOrderView{
		ID:        "9007199254740993",
		UserID:    "42",
		VoucherID: "7",
		Status:    1,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		actor     int64
		repoView  *queries.VoucherOrderView
		repoErr   error
		wantView  *queries.VoucherOrderView
		wantErr   error
		wantOther bool
	}{
		{
			name:     "owner sees the order",
			actor:    42,
			repoView: view,
			wantView: view,
		},
		{
			name:     "other user gets not found",
			actor:    43,
			repoView: view,
			wantErr:  errs.ErrOrderNotFound,
		},
		{
			name:    "missing row maps to not found",
			actor:   42,
			repoErr: infra.WrapRepoErr("failed to find voucher order by ID", pgx.ErrNoRows),
			wantErr: errs.ErrOrderNotFound,
		},
		{
			name:      "db failure is wrapped",
			actor:     42,
			repoErr:   infra.WrapRepoErr("failed to find voucher order by ID", errors.New("connection reset")),
			wantOther: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockVoucherOrderViewRepo(ctrl)
			repo.EXPECT().FindByID(gomock.Any(), int64(9007199254740993)).Return(tt.repoView, tt.repoErr)

			q := queries.NewVoucherOrderQueries(repo)
			got, err := q.GetByID(context.Background(), tt.actor, 9007199254740993)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantOther:
				require.Error(t, err)
				assert.NotErrorIs(t, err, errs.ErrOrderNotFound)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantView, got)
			}
		})
	}
}
