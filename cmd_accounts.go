package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aaronlimck/moolah/api"
)

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Account management commands",
	Long:  `Commands for inspecting your moolah accounts.`,
}

// accountsListCmd represents the accounts list command.
var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Long:  `List all accounts with their IDs, balances, and default marker.`,
	RunE:  accountsListRun,
}

func init() {
	accountsCmd.AddCommand(accountsListCmd)

	accountsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func accountsListRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	userID, err := client.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}
	if userID == "" {
		return errors.New("no active session, sign in and try again")
	}

	accounts, err := client.AccountsForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	// Sort accounts by name for consistent output
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(accounts)
	case tableOutputFormat:
		return outputAccountsTable(accounts)
	default:
		return errors.New("unsupported output format")
	}
}

func outputAccountsTable(accounts []api.Account) error {
	t := createStyledTable("ID", "NAME", "BALANCE", "CURRENCY", "DEFAULT")

	for _, account := range accounts {
		t.Row(
			account.ID,
			account.Name,
			account.Money().Display(),
			account.Currency,
			strconv.FormatBool(account.IsDefault),
		)
	}

	fmt.Println(t)

	return nil
}
