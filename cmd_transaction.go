package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aaronlimck/moolah/api"
	"github.com/aaronlimck/moolah/entry"
)

// transactionCmd represents the transaction command.
var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Transaction management commands",
	Long:  `Commands for managing transactions in moolah.`,
}

// transactionCreateCmd represents the transaction create command.
var transactionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new transaction",
	Long:  `Create a new transaction for the signed-in user.`,
	RunE:  transactionCreateRun,
}

// transactionListCmd represents the transaction list command.
var transactionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long:  `List transactions for a date range, defaulting to the current month.`,
	RunE:  transactionListRun,
}

// transactionDeleteCmd represents the transaction delete command.
var transactionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  transactionDeleteRun,
}

func init() {
	transactionCmd.AddCommand(transactionCreateCmd)
	transactionCmd.AddCommand(transactionListCmd)
	transactionCmd.AddCommand(transactionDeleteCmd)

	// Transaction create flags
	transactionCreateCmd.Flags().String("account", "", "Account ID (defaults to your default account)")
	transactionCreateCmd.Flags().String("type", string(entry.TypeExpense), "Transaction type (expense, income)")
	transactionCreateCmd.Flags().String("description", "", "What the transaction was for (required)")
	transactionCreateCmd.Flags().String("category", "", "Category key, see 'moolah categories list' (required)")
	transactionCreateCmd.Flags().String("date", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD, defaults to today)")
	transactionCreateCmd.Flags().String("amount", "", "Transaction amount, a positive number (required)")
	transactionCreateCmd.Flags().String("notes", "", "Additional notes for the transaction")

	_ = transactionCreateCmd.MarkFlagRequired("description")
	_ = transactionCreateCmd.MarkFlagRequired("category")
	_ = transactionCreateCmd.MarkFlagRequired("amount")

	// Transaction list flags
	transactionListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	transactionListCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, defaults to the first of the month)")
	transactionListCmd.Flags().String("end", "", "End date (YYYY-MM-DD, defaults to today)")
}

// logNotifier routes pipeline notifications to the CLI logger.
type logNotifier struct{}

func (logNotifier) Success(msg string) { log.Info(msg) }
func (logNotifier) Error(msg string)   { log.Error(msg) }

// noopRevalidator satisfies the pipeline; one-shot CLI runs have no listing
// to refresh.
type noopRevalidator struct{}

func (noopRevalidator) Revalidate(string) {}

func transactionCreateRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	userID, err := client.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}
	if userID == "" {
		return fmt.Errorf("no active session, sign in and try again")
	}

	controller := entry.NewController(entry.Draft{})

	flagFields := map[string]string{
		entry.FieldAccount:     "account",
		entry.FieldType:        "type",
		entry.FieldDescription: "description",
		entry.FieldCategory:    "category",
		entry.FieldDate:        "date",
		entry.FieldAmount:      "amount",
		entry.FieldNotes:       "notes",
	}
	for field, flag := range flagFields {
		value, _ := cmd.Flags().GetString(flag)
		if value == "" {
			continue
		}
		if setErr := controller.SetField(field, value); setErr != nil {
			return fmt.Errorf("invalid --%s: %w", flag, setErr)
		}
	}

	// Fall back to the default account when none was given.
	if controller.Draft().AccountID == "" {
		resolver := entry.NewResolver(&accountSource{client: client}, log.Default())
		if _, resolveErr := resolver.Resolve(ctx, userID, controller); resolveErr != nil {
			return fmt.Errorf("failed to resolve default account: %w", resolveErr)
		}
	}

	pipeline := entry.NewPipeline(client, logNotifier{}, noopRevalidator{}, transactionsPath, log.Default())

	outcome := pipeline.Submit(ctx, controller)
	switch outcome {
	case entry.OutcomeCreated:
		return nil
	case entry.OutcomeRejected:
		errs := controller.Errors()
		for field, msg := range errs {
			log.Error("invalid field", "field", field, "error", msg)
		}
		return fmt.Errorf("transaction rejected: %d invalid field(s)", len(errs))
	default:
		return fmt.Errorf("transaction not created: %s", outcome)
	}
}

func transactionListRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	userID, err := client.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}

	now := time.Now()
	start, _ := cmd.Flags().GetString("start")
	if start == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}
	end, _ := cmd.Flags().GetString("end")
	if end == "" {
		end = now.Format("2006-01-02")
	}

	ts, err := client.Transactions(ctx, &api.TransactionFilters{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(ts)
	case tableOutputFormat:
		return outputTransactionsTable(ts)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputTransactionsTable(ts []api.Transaction) error {
	t := createStyledTable("ID", "DATE", "DESCRIPTION", "CATEGORY", "TYPE", "AMOUNT", "NOTES")

	for _, tx := range ts {
		notes := tx.Notes
		if notes == "" {
			notes = "-"
		}

		label := tx.Category
		if l, ok := entry.CategoryLabel(entry.TransactionType(tx.Type), tx.Category); ok {
			label = l
		}

		t.Row(
			tx.ID,
			tx.Date,
			tx.Description,
			label,
			tx.Type,
			tx.Money(currency).Display(),
			notes,
		)
	}

	fmt.Println(t)

	return nil
}

func transactionDeleteRun(cmd *cobra.Command, args []string) error {
	if err := client.DeleteTransaction(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	log.Info("Transaction deleted", "id", args[0])
	return nil
}
