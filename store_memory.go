package auth

import (
	"context"
	"sort"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// MemoryUsers is an in-process Users adapter. It honors the same contract as
// the Bun-backed store so services can run against it without a database.
type MemoryUsers struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*User
}

var _ Users = (*MemoryUsers)(nil)

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{records: map[uuid.UUID]*User{}}
}

func (m *MemoryUsers) Add(_ context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, goerrors.New("user record is required", goerrors.CategoryBadInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == uuid.Nil {
		for _, existing := range m.records {
			if existing.Login == user.Login {
				return nil, ErrUserExists
			}
		}

		record := cloneUser(user)
		prepareUserDefaults(record)
		m.records[record.ID] = record
		return cloneUser(record), nil
	}

	if _, ok := m.records[user.ID]; !ok {
		return nil, ErrUserNotExists
	}

	record := cloneUser(user)
	m.records[record.ID] = record
	return cloneUser(record), nil
}

func (m *MemoryUsers) Get(_ context.Context, filter Filter) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if matchUser(record, filter) {
			return cloneUser(record), nil
		}
	}

	return nil, nil
}

func (m *MemoryUsers) Select(_ context.Context, limit, offset int, filter Filter) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []*User{}
	for _, record := range m.records {
		if matchUser(record, filter) {
			matched = append(matched, cloneUser(record))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Login < matched[j].Login
	})

	if offset > 0 {
		if offset >= len(matched) {
			return []*User{}, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, nil
}

func (m *MemoryUsers) Delete(_ context.Context, filter Filter) error {
	if len(filter) == 0 {
		return goerrors.New("refusing to delete without a filter", goerrors.CategoryBadInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, record := range m.records {
		if matchUser(record, filter) {
			delete(m.records, id)
		}
	}

	return nil
}

func matchUser(u *User, filter Filter) bool {
	for _, f := range filter {
		switch f.Column {
		case "id":
			id, ok := f.Value.(uuid.UUID)
			if !ok || u.ID != id {
				return false
			}
		case "login":
			login, ok := f.Value.(string)
			if !ok || u.Login != login {
				return false
			}
		case "user_group":
			group, ok := f.Value.(string)
			if !ok || u.Group != group {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// MemoryTokenVersions is an in-process TokenVersions adapter
type MemoryTokenVersions struct {
	mu       sync.Mutex
	versions map[uuid.UUID]int64
}

var _ TokenVersions = (*MemoryTokenVersions)(nil)

func NewMemoryTokenVersions() *MemoryTokenVersions {
	return &MemoryTokenVersions{versions: map[uuid.UUID]int64{}}
}

func (m *MemoryTokenVersions) Create(_ context.Context, userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if version, ok := m.versions[userID]; ok {
		return version, nil
	}

	m.versions[userID] = 1
	return 1, nil
}

func (m *MemoryTokenVersions) Read(_ context.Context, userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	version, ok := m.versions[userID]
	if !ok {
		return 0, ErrVersionNotFound
	}

	return version, nil
}

func (m *MemoryTokenVersions) Revoke(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.versions[userID]; ok {
		m.versions[userID]++
	}

	return nil
}
