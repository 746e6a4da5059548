package entry

import (
	"context"
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

type stubAccountSource struct {
	accounts []Account
	err      error
	calls    int
}

func (s *stubAccountSource) AccountsForUser(_ context.Context, _ string) ([]Account, error) {
	s.calls++
	return s.accounts, s.err
}

func TestResolveSelectsDefaultAccount(t *testing.T) {
	source := &stubAccountSource{accounts: []Account{
		{ID: "a1", Name: "Checking"},
		{ID: "a2", Name: "Savings", IsDefault: true},
		{ID: "a3", Name: "Credit"},
	}}
	r := NewResolver(source, nil)

	// a prefilled account id is overwritten by the default
	c := NewController(Draft{AccountID: "a3"})

	accounts, err := r.Resolve(context.Background(), "u1", c)

	be.NilErr(t, err)
	be.Equal(t, 3, len(accounts))
	be.Equal(t, "a2", c.Draft().AccountID)
}

func TestResolveNoDefaultLeavesAccountUnset(t *testing.T) {
	source := &stubAccountSource{accounts: []Account{
		{ID: "a1", Name: "Checking"},
		{ID: "a2", Name: "Savings"},
	}}
	r := NewResolver(source, nil)
	c := NewController(Draft{})

	accounts, err := r.Resolve(context.Background(), "u1", c)

	be.NilErr(t, err)
	be.Equal(t, 2, len(accounts))
	be.Equal(t, "", c.Draft().AccountID)
}

func TestResolveEmptyUserSkipsFetch(t *testing.T) {
	source := &stubAccountSource{}
	r := NewResolver(source, nil)
	c := NewController(Draft{})

	accounts, err := r.Resolve(context.Background(), "", c)

	be.NilErr(t, err)
	be.Zero(t, accounts)
	be.Equal(t, 0, source.calls)
}

func TestResolveFetchErrorDegrades(t *testing.T) {
	source := &stubAccountSource{err: errors.New("boom")}
	r := NewResolver(source, nil)
	c := NewController(Draft{})

	accounts, err := r.Resolve(context.Background(), "u1", c)

	be.Nonzero(t, err)
	be.Zero(t, accounts)
	be.Equal(t, "", c.Draft().AccountID)
}

func TestResolveDropsResultAfterCancellation(t *testing.T) {
	source := &stubAccountSource{accounts: []Account{
		{ID: "a1", Name: "Checking", IsDefault: true},
	}}
	r := NewResolver(source, nil)
	c := NewController(Draft{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, "u1", c)

	be.Nonzero(t, err)
	be.Equal(t, "", c.Draft().AccountID)
}

func TestDefaultAccount(t *testing.T) {
	tests := []struct {
		name     string
		accounts []Account
		wantID   string
		wantOK   bool
	}{
		{
			name: "single default",
			accounts: []Account{
				{ID: "a1"},
				{ID: "a2", IsDefault: true},
			},
			wantID: "a2",
			wantOK: true,
		},
		{
			name:     "no default",
			accounts: []Account{{ID: "a1"}, {ID: "a2"}},
			wantOK:   false,
		},
		{
			name:   "empty list",
			wantOK: false,
		},
		{
			name: "first default wins",
			accounts: []Account{
				{ID: "a1", IsDefault: true},
				{ID: "a2", IsDefault: true},
			},
			wantID: "a1",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultAccount(tt.accounts)
			be.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				be.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}
