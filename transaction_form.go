package main

import (
	"context"
	"errors"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/aaronlimck/moolah/api"
	"github.com/aaronlimck/moolah/entry"
)

const submitTimeout = 10 * time.Second

// newTransactionForm builds the entry form from the controller's current
// draft. The category options track the selected type; a previously chosen
// category is kept as-is when the type changes, see the known limitations
// section of the README.
func newTransactionForm(c *entry.Controller, accounts []entry.Account) *huh.Form {
	draft := c.Draft()

	typeValue := string(draft.Type)
	categoryValue := draft.Category
	descriptionValue := draft.Description
	dateValue := draft.Date.Format("2006-01-02")
	notesValue := draft.Notes
	accountValue := draft.AccountID

	amountValue := ""
	if draft.Amount > 0 {
		amountValue = strconv.FormatFloat(draft.Amount, 'f', -1, 64)
	}

	accountOpts := make([]huh.Option[string], len(accounts))
	for i, a := range accounts {
		label := a.Name
		if a.IsDefault {
			label += " (default)"
		}
		accountOpts[i] = huh.NewOption(label, a.ID)
	}

	typeOpts := []huh.Option[string]{
		huh.NewOption("Expense", string(entry.TypeExpense)),
		huh.NewOption("Income", string(entry.TypeIncome)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Account").
				Description("Where the money moves").
				Key("account").
				Options(accountOpts...).
				Value(&accountValue),

			huh.NewSelect[string]().
				Title("Type").
				Key("type").
				Options(typeOpts...).
				Value(&typeValue),

			huh.NewSelect[string]().
				Title("Category").
				Key("category").
				OptionsFunc(func() []huh.Option[string] {
					categories := entry.CategoriesFor(entry.TransactionType(typeValue))
					opts := make([]huh.Option[string], len(categories))
					for i, cat := range categories {
						opts[i] = huh.NewOption(cat.Label, cat.Key)
					}
					return opts
				}, &typeValue).
				Value(&categoryValue),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Key("description").
				Placeholder("Coffee with Sam...").
				Value(&descriptionValue).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("description is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Amount").
				Description("A positive number").
				Key("amount").
				Placeholder("4.50").
				Value(&amountValue).
				Validate(func(s string) error {
					_, err := entry.ParseAmount(s)
					return err
				}),

			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Key("date").
				Value(&dateValue).
				Validate(func(s string) error {
					_, err := entry.ParseDate(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Notes (Optional)").
				Key("notes").
				Placeholder("Enter notes...").
				Value(&notesValue),
		),
	)
}

// entryAccounts projects the fetched accounts into the entry package's shape.
func (m model) entryAccounts() []entry.Account {
	out := make([]entry.Account, len(m.accounts))
	for i, a := range m.accounts {
		out[i] = entry.Account{ID: a.ID, Name: a.Name, IsDefault: a.IsDefault}
	}
	return out
}

func openNewTransactionForm(m *model) (tea.Model, tea.Cmd) {
	accounts := m.entryAccounts()

	m.entryController.Reset(entry.Draft{})
	if def, ok := entry.DefaultAccount(accounts); ok {
		if err := m.entryController.SetField(entry.FieldAccount, def.ID); err != nil {
			log.Error("seeding default account", "error", err)
		}
	}

	m.editingID = ""
	m.entryForm = newTransactionForm(m.entryController, accounts)
	m.previousSessionState = m.sessionState
	m.sessionState = newTransaction

	return m, tea.Batch(m.entryForm.Init(), tea.WindowSize())
}

func openEditTransactionForm(m *model, t api.Transaction) (tea.Model, tea.Cmd) {
	date, err := t.ParsedDate()
	if err != nil {
		log.Error("parsing transaction date", "id", t.ID, "error", err)
	}

	m.entryController.Reset(entry.Draft{
		AccountID:   t.AccountID,
		Type:        entry.TransactionType(t.Type),
		Description: t.Description,
		Category:    t.Category,
		Date:        date,
		Amount:      t.Amount,
		Notes:       t.Notes,
	})

	m.editingID = t.ID
	m.entryForm = newTransactionForm(m.entryController, m.entryAccounts())
	m.previousSessionState = m.sessionState
	m.sessionState = editTransaction

	return m, tea.Batch(m.entryForm.Init(), tea.WindowSize())
}

func updateEntryForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.entryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.entryForm = f
	}

	if m.entryForm.State == huh.StateCompleted {
		m.previousSessionState = m.sessionState
		m.sessionState = transactions
		return m, m.submitEntry()
	}

	if m.entryForm.State == huh.StateAborted {
		m.editingID = ""
		m.sessionState = transactions
		return m, nil
	}

	return m, cmd
}

// submitEntry copies the completed form back into the controller and runs
// the submission pipeline off the update loop.
func (m model) submitEntry() tea.Cmd {
	form := m.entryForm
	id := m.editingID

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		fields := map[string]any{
			entry.FieldAccount:     form.GetString("account"),
			entry.FieldType:        form.GetString("type"),
			entry.FieldCategory:    form.GetString("category"),
			entry.FieldDescription: form.GetString("description"),
			entry.FieldAmount:      form.GetString("amount"),
			entry.FieldDate:        form.GetString("date"),
			entry.FieldNotes:       form.GetString("notes"),
		}
		for name, value := range fields {
			if err := m.entryController.SetField(name, value); err != nil {
				log.Error("setting entry field", "field", name, "error", err)
			}
		}

		var outcome entry.Outcome
		if id == "" {
			outcome = m.pipeline.Submit(ctx, m.entryController)
		} else {
			outcome = m.pipeline.SubmitUpdate(ctx, m.entryController, id)
		}

		return entrySubmittedMsg{
			outcome:      outcome,
			notices:      m.notices.drain(),
			refreshPaths: m.refreshes.drain(),
		}
	}
}

func entryFormView(m model) string {
	if m.entryForm == nil {
		return ""
	}
	return m.entryForm.View()
}
