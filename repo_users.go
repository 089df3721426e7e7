package auth

import (
	"context"
	"database/sql"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the durable store for identity records. Add is create-or-update:
// a record without an id is inserted (ErrUserExists when the login is taken),
// a record with an id is updated in place (ErrUserNotExists when absent).
// Every call runs in its own short transaction; there is no cross-call
// atomicity.
type Users interface {
	Add(ctx context.Context, user *User) (*User, error)
	Get(ctx context.Context, filter Filter) (*User, error)
	Select(ctx context.Context, limit, offset int, filter Filter) ([]*User, error)
	Delete(ctx context.Context, filter Filter) error
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var _ Users = (*users)(nil)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) Add(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, goerrors.New("user record is required", goerrors.CategoryBadInput)
	}

	var out *User
	err := a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		out, txErr = a.addTx(ctx, tx, user)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (a *users) addTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		taken, err := a.getTx(ctx, tx, ByLogin(user.Login))
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrUserExists
		}

		prepareUserDefaults(user)
		return a.Repository.CreateTx(ctx, tx, user)
	}

	current, err := a.getTx(ctx, tx, ByID(user.ID))
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotExists
	}

	return a.Repository.UpdateTx(ctx, tx, user, repository.UpdateByID(user.ID.String()))
}

func (a *users) Get(ctx context.Context, filter Filter) (*User, error) {
	return a.getTx(ctx, a.db, filter)
}

func (a *users) getTx(ctx context.Context, tx bun.IDB, filter Filter) (*User, error) {
	record := &User{}
	q := tx.NewSelect().Model(record)

	err := filter.applySelect(q).Limit(1).Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query user")
	}

	return record, nil
}

func (a *users) Select(ctx context.Context, limit, offset int, filter Filter) ([]*User, error) {
	records := []*User{}
	q := a.db.NewSelect().Model(&records)

	q = filter.applySelect(q).Order("usr.login ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list users")
	}

	return records, nil
}

func (a *users) Delete(ctx context.Context, filter Filter) error {
	if len(filter) == 0 {
		return goerrors.New("refusing to delete without a filter", goerrors.CategoryBadInput)
	}

	q := a.db.NewDelete().Model((*User)(nil))
	if _, err := filter.applyDelete(q).Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete users")
	}

	return nil
}

// prepareUserDefaults derives a deterministic id from the unique login so
// re-created bootstrap accounts keep a stable identity across environments.
func prepareUserDefaults(record *User) {
	if record == nil || record.ID != uuid.Nil {
		return
	}

	if id, err := hashid.NewUUID(record.Login); err == nil {
		record.ID = id
		return
	}

	record.ID = uuid.New()
}
