package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNewLoadingState(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{
			name: "empty keys",
			keys: []string{},
		},
		{
			name: "single key",
			keys: []string{"session"},
		},
		{
			name: "multiple keys",
			keys: []string{"session", "accounts", "transactions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newLoadingState(tt.keys...)

			for _, key := range tt.keys {
				value, exists := ls[key]
				be.True(t, exists)
				be.False(t, value)
			}

			be.Equal(t, len(tt.keys), len(ls))
		})
	}
}

func TestLoadingStateSetUnset(t *testing.T) {
	ls := newLoadingState("accounts", "transactions")

	be.False(t, ls["accounts"])
	be.False(t, ls["transactions"])

	ls.set("accounts")
	be.True(t, ls["accounts"])
	be.False(t, ls["transactions"])

	ls.set("transactions")
	ls.unset("accounts")
	be.False(t, ls["accounts"])
	be.True(t, ls["transactions"])
}

func TestLoadingStateAllLoaded(t *testing.T) {
	tests := []struct {
		name         string
		keys         []string
		setKeys      []string
		expectLoaded bool
	}{
		{
			name:         "empty state - all loaded",
			keys:         []string{},
			setKeys:      []string{},
			expectLoaded: true,
		},
		{
			name:         "none loaded",
			keys:         []string{"session", "accounts"},
			setKeys:      []string{},
			expectLoaded: false,
		},
		{
			name:         "partially loaded",
			keys:         []string{"session", "accounts", "transactions"},
			setKeys:      []string{"session", "transactions"},
			expectLoaded: false,
		},
		{
			name:         "all loaded",
			keys:         []string{"session", "accounts", "transactions"},
			setKeys:      []string{"session", "accounts", "transactions"},
			expectLoaded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newLoadingState(tt.keys...)

			for _, key := range tt.setKeys {
				ls.set(key)
			}

			loaded, notLoaded := ls.allLoaded()
			be.Equal(t, tt.expectLoaded, loaded)

			if tt.expectLoaded {
				be.Equal(t, "", notLoaded)
			} else {
				be.Nonzero(t, notLoaded)
				be.False(t, ls[notLoaded])
			}
		})
	}
}
