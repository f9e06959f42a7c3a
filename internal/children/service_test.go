package children

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	children []Child
	failWith error
}

func (f *fakeStore) Create(_ context.Context, child *Child) error {
	if f.failWith != nil {
		return f.failWith
	}
	child.ID = "child-1"
	child.CreatedAt = time.Now()
	f.children = append(f.children, *child)
	return nil
}

func (f *fakeStore) CountByUser(_ context.Context, userID string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	n := 0
	for _, c := range f.children {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]Child, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []Child
	for _, c := range f.children {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeFlags struct {
	flags    map[string]bool
	failWith error
}

func newFakeFlags() *fakeFlags { return &fakeFlags{flags: map[string]bool{}} }

func (f *fakeFlags) MarkRegistered(_ context.Context, userID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.flags[userID] = true
	return nil
}

func (f *fakeFlags) HasRegistered(_ context.Context, userID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	return f.flags[userID], nil
}

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name, childName, birthDate, gender string
		wantErr                            error
	}{
		{"empty name", "", "2024-06-01", "girl", ErrNameRequired},
		{"whitespace name", "   ", "2024-06-01", "girl", ErrNameRequired},
		{"empty date", "Mina", "", "girl", ErrDateRequired},
		{"bad format", "Mina", "24-1-1", "girl", ErrDateFormat},
		{"impossible date", "Mina", "2024-02-30", "girl", ErrDateFormat},
		{"future date", "Mina", time.Now().AddDate(0, 0, 1).Format("2006-01-02"), "girl", ErrDateInFuture},
		{"missing gender", "Mina", "2024-06-01", "", ErrGenderRequired},
		{"unknown gender", "Mina", "2024-06-01", "dragon", ErrGenderRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateRegistration(tc.childName, tc.birthDate, tc.gender)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	child, err := ValidateRegistration("  Mina  ", "2024-06-01", "girl")
	require.NoError(t, err)
	assert.Equal(t, "Mina", child.Name)
	assert.Equal(t, "2024-06-01", child.BirthDate)
	assert.Equal(t, GenderGirl, child.Gender)
}

func TestRegisterThenHasChildRegistered(t *testing.T) {
	svc := NewService(&fakeStore{}, newFakeFlags(), zap.NewNop())
	ctx := context.Background()

	assert.False(t, svc.HasChildRegistered(ctx, "user-1"))

	child, err := svc.Register(ctx, "user-1", "Mina", "2024-06-01", "girl")
	require.NoError(t, err)
	assert.Equal(t, "user-1", child.UserID)
	assert.NotEmpty(t, child.ID)

	assert.True(t, svc.HasChildRegistered(ctx, "user-1"))
	assert.False(t, svc.HasChildRegistered(ctx, "user-2"))
}

func TestRegisterValidationFailureSkipsStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, newFakeFlags(), zap.NewNop())

	_, err := svc.Register(context.Background(), "user-1", "Mina", "2999-01-01", "girl")
	assert.ErrorIs(t, err, ErrDateInFuture)
	assert.Empty(t, store.children)
}

func TestRegisterSucceedsWhenCacheDown(t *testing.T) {
	store := &fakeStore{}
	flags := newFakeFlags()
	flags.failWith = errors.New("redis down")
	svc := NewService(store, flags, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, "user-1", "Mina", "2024-06-01", "girl")
	require.NoError(t, err, "cache failure is not a registration failure")

	// cache errors fall back to the database
	assert.True(t, svc.HasChildRegistered(ctx, "user-1"))
}

func TestHasChildRegisteredFailsSafeToFalse(t *testing.T) {
	store := &fakeStore{failWith: errors.New("db down")}
	flags := newFakeFlags()
	flags.failWith = errors.New("redis down")
	svc := NewService(store, flags, zap.NewNop())

	assert.False(t, svc.HasChildRegistered(context.Background(), "user-1"),
		"internal errors must re-onboard, not grant access")
}
