package auth

import (
	"context"
	"database/sql"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TokenVersions is the durable per-user revocation counter.
//
// Create has ensure semantics: the first call for a user inserts version 1,
// later calls return the current version unchanged, so issuing tokens never
// invalidates tokens already in flight. Revoke increments the counter and is
// a silent no-op for users without a record; no valid token can exist for
// them, so there is nothing to invalidate.
type TokenVersions interface {
	Create(ctx context.Context, userID uuid.UUID) (int64, error)
	Read(ctx context.Context, userID uuid.UUID) (int64, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}

type tokenVersions struct {
	db *bun.DB
}

var _ TokenVersions = (*tokenVersions)(nil)

func NewTokenVersionsRepository(db *bun.DB) TokenVersions {
	return &tokenVersions{db: db}
}

func (r *tokenVersions) Create(ctx context.Context, userID uuid.UUID) (int64, error) {
	var version int64
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		record := &TokenVersion{UserID: userID, Version: 1}

		// Concurrent first issuances race on the insert; DO NOTHING keeps
		// whichever row landed first and the read below settles the value.
		_, err := tx.NewInsert().
			Model(record).
			On("CONFLICT (user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to ensure token version")
		}

		version, err = r.readTx(ctx, tx, userID)
		return err
	})
	if err != nil {
		return 0, err
	}

	return version, nil
}

func (r *tokenVersions) Read(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.readTx(ctx, r.db, userID)
}

func (r *tokenVersions) readTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) (int64, error) {
	record := &TokenVersion{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return 0, ErrVersionNotFound
		}
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to read token version")
	}

	return record.Version, nil
}

func (r *tokenVersions) Revoke(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*TokenVersion)(nil)).
		Set("version = version + 1").
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to revoke tokens")
	}

	return nil
}
