package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronlimck/moolah/entry"
)

// newCategoriesCmd creates the categories command with its subcommands.
func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category reference commands",
		Long:  `Commands for inspecting the category vocabularies used by moolah.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `List the fixed category vocabularies, optionally filtered by transaction type.`,
		RunE:  categoriesListRun,
	}
	listCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	listCmd.Flags().String("type", "", "Filter by transaction type (expense, income)")

	cmd.AddCommand(listCmd)
	return cmd
}

// categoryRow pairs a category with the transaction type it belongs to.
type categoryRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

func categoriesListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	typeFilter, _ := cmd.Flags().GetString("type")
	if typeFilter != "" && !entry.TransactionType(typeFilter).Valid() {
		return fmt.Errorf("invalid type: %s (must be 'expense' or 'income')", typeFilter)
	}

	var rows []categoryRow
	for _, t := range []entry.TransactionType{entry.TypeExpense, entry.TypeIncome} {
		if typeFilter != "" && typeFilter != string(t) {
			continue
		}
		for _, c := range entry.CategoriesFor(t) {
			rows = append(rows, categoryRow{Key: c.Key, Label: c.Label, Type: string(t)})
		}
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(rows)
	case tableOutputFormat:
		return outputCategoriesTable(rows)
	default:
		return errors.New("unsupported output format")
	}
}

func outputCategoriesTable(rows []categoryRow) error {
	t := createStyledTable("KEY", "LABEL", "TYPE")

	for _, row := range rows {
		t.Row(row.Key, row.Label, row.Type)
	}

	fmt.Println(t)

	return nil
}
