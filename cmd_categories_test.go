package main

import (
	"io"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNewCategoriesCmd(t *testing.T) {
	cmd := newCategoriesCmd()

	be.Equal(t, "categories", cmd.Use)

	listCmd, _, err := cmd.Find([]string{"list"})
	be.NilErr(t, err)
	be.Equal(t, "list", listCmd.Use)

	be.Nonzero(t, listCmd.Flags().Lookup("output"))
	be.Nonzero(t, listCmd.Flags().Lookup("type"))
}

func TestCategoriesListRejectsUnknownType(t *testing.T) {
	cmd := newCategoriesCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"list", "--type", "transfer"})

	err := cmd.Execute()
	be.Nonzero(t, err)
}
