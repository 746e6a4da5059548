package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		expected string
	}{
		{name: "overview", state: overviewState, expected: "overview"},
		{name: "transactions", state: transactions, expected: "transactions"},
		{name: "new transaction", state: newTransaction, expected: "new transaction"},
		{name: "edit transaction", state: editTransaction, expected: "edit transaction"},
		{name: "configuration", state: configView, expected: "configuration"},
		{name: "loading", state: loading, expected: "loading"},
		{name: "error", state: errorState, expected: "error"},
		{name: "unknown", state: sessionState(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, tt.state.String())
		})
	}
}
