package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaronlimck/moolah/api"
	"github.com/aaronlimck/moolah/entry"
)

type transactionItem struct {
	t        api.Transaction
	currency string
}

func (t transactionItem) Title() string {
	return t.t.Description
}

func (t transactionItem) Description() string {
	amount := t.t.Money(t.currency).Display()
	if t.t.Type == string(entry.TypeExpense) {
		amount = "-" + amount
	}

	return fmt.Sprintf("%s %s %s", t.t.Date, t.categoryLabel(), amount)
}

func (t transactionItem) FilterValue() string {
	return t.t.Description + " " + t.categoryLabel()
}

func (t transactionItem) categoryLabel() string {
	if label, ok := entry.CategoryLabel(entry.TransactionType(t.t.Type), t.t.Category); ok {
		return label
	}
	return t.t.Category
}

type transactionListKeyMap struct {
	overview        key.Binding
	newTransaction  key.Binding
	editTransaction key.Binding
	refresh         key.Binding
}

func newTransactionListKeyMap() *transactionListKeyMap {
	return &transactionListKeyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		newTransaction: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new transaction"),
		),
		editTransaction: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit transaction"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

func updateTransactions(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// if the list is filtering, don't process key events
		if m.transactions.FilterState() == list.Filtering {
			break
		}

		if key.Matches(msg, m.transactionsListKeys.overview) {
			m.sessionState = overviewState
			return m, nil
		}

		if key.Matches(msg, m.transactionsListKeys.newTransaction) {
			return openNewTransactionForm(&m)
		}

		if key.Matches(msg, m.transactionsListKeys.editTransaction) {
			ti, ok := m.transactions.SelectedItem().(transactionItem)
			if !ok {
				return m, nil
			}
			return openEditTransactionForm(&m, ti.t)
		}

		if key.Matches(msg, m.transactionsListKeys.refresh) {
			return m, m.getTransactions
		}
	}

	var cmd tea.Cmd
	m.transactions, cmd = m.transactions.Update(msg)

	return m, cmd
}

func transactionsView(m model) string {
	if len(m.transactions.Items()) == 0 {
		var b strings.Builder
		b.WriteString("No transactions in this period.\n\n")
		b.WriteString("Press 'n' to add one.")
		return b.String()
	}

	return m.transactions.View()
}
