//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"voucher-seckill/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		kind   []infra.RepositoryErrorKind
		expect infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expect: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expect: infra.KindDuplicateKey},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, expect: infra.KindCheckViolated},
		{name: "other failure", err: errors.New("connection reset"), expect: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expect: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op failed", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(wrapped, tc.expect), "got %v", wrapped)
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}
}
