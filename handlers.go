package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/aaronlimck/moolah/api"
	"github.com/aaronlimck/moolah/entry"
)

// Message types for different API responses.
type (
	getSessionMsg struct {
		userID string
	}

	// primaryDataMsg carries the initial accounts and transactions fetch.
	primaryDataMsg struct {
		accounts []api.Account
		ts       []api.Transaction
		period   Period
	}

	getAccountsMsg struct {
		accounts []api.Account
	}

	getTransactionsMsg struct {
		ts     []api.Transaction
		period Period
	}

	entrySubmittedMsg struct {
		outcome      entry.Outcome
		notices      []notice
		refreshPaths []string
	}

	deleteTransactionMsg struct {
		description string
		err         error
	}

	authErrorMsg struct {
		err error
	}
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.overview.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.overview.Viewport.Width = msg.Width
	m.overview.Viewport.Height = msg.Height - takenHeight

	m.transactions.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.configView.SetSize(msg.Width-h, msg.Height-v-takenHeight)

	m.help.Width = msg.Width

	if m.entryForm != nil {
		m.entryForm = m.entryForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleGetSession(msg getSessionMsg) (tea.Model, tea.Cmd) {
	m.userID = msg.userID
	m.overview.SetUser(msg.userID)
	m.loadingState.set("session")
	m.sessionState = m.checkIfLoading()

	return m, m.getPrimaryData
}

func (m model) handlePrimaryData(msg primaryDataMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	next, cmd := m.handleGetAccounts(getAccountsMsg{accounts: msg.accounts})
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	next, cmd = next.(model).handleGetTransactions(getTransactionsMsg{ts: msg.ts, period: msg.period})
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, tea.WindowSize())

	return next, tea.Batch(cmds...)
}

func (m model) handleGetAccounts(msg getAccountsMsg) (tea.Model, tea.Cmd) {
	m.accounts = msg.accounts
	m.overview.SetAccounts(msg.accounts)

	m.loadingState.set("accounts")
	m.sessionState = m.checkIfLoading()

	return m, nil
}

func (m model) handleGetTransactions(msg getTransactionsMsg) (tea.Model, tea.Cmd) {
	items := make([]list.Item, len(msg.ts))
	for i, t := range msg.ts {
		items[i] = transactionItem{t: t, currency: m.currency}
	}

	cmd := m.transactions.SetItems(items)

	m.overview.SetTransactions(msg.ts)
	m.period = msg.period

	m.loadingState.set("transactions")
	m.sessionState = m.checkIfLoading()

	return m, cmd
}

func (m model) handleDeleteTransaction(msg deleteTransactionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.transactions.NewStatusMessage(
			m.styles.errorStyle.Render("Could not delete " + msg.description),
		)
	}

	return m, tea.Batch(
		m.getTransactions,
		m.transactions.NewStatusMessage("Deleted "+msg.description),
	)
}

// API call functions.
func (m model) getSession() tea.Msg {
	userID, err := m.client.Session(context.Background())
	if err != nil {
		return authErrorMsg{err: err}
	}

	if userID == "" {
		return authErrorMsg{err: errors.New("no active session, sign in and try again")}
	}

	return getSessionMsg{userID: userID}
}

// getPrimaryData fetches accounts and transactions concurrently. The account
// fetch runs through the resolver so the default account lands in the entry
// draft before the form is ever opened.
func (m model) getPrimaryData() tea.Msg {
	ctx := context.Background()

	period := periodFor(m.currentPeriod, m.periodType)

	var errGroup errgroup.Group
	var ts []api.Transaction

	errGroup.Go(func() error {
		_, err := m.resolver.Resolve(ctx, m.userID, m.entryController)
		return err
	})

	errGroup.Go(func() error {
		sd := period.startDate()
		ed := period.endDate()

		fetched, err := m.client.Transactions(ctx, &api.TransactionFilters{
			UserID:    m.userID,
			StartDate: &sd,
			EndDate:   &ed,
		})
		if err != nil {
			return err
		}
		ts = fetched
		return nil
	})

	// either fetch may fail on its own; emit whatever arrived so the
	// loading tracker settles and the form degrades to an unselected
	// account instead of hanging on the spinner
	if err := errGroup.Wait(); err != nil {
		log.Error("loading primary data", "error", err)
	}

	return primaryDataMsg{accounts: m.source.snapshot(), ts: ts, period: period}
}

func (m model) getAccounts() tea.Msg {
	if _, err := m.resolver.Resolve(context.Background(), m.userID, m.entryController); err != nil {
		return nil
	}

	return getAccountsMsg{accounts: m.source.snapshot()}
}

func (m model) getTransactions() tea.Msg {
	ctx := context.Background()

	period := periodFor(m.currentPeriod, m.periodType)
	sd := period.startDate()
	ed := period.endDate()

	ts, err := m.client.Transactions(ctx, &api.TransactionFilters{
		UserID:    m.userID,
		StartDate: &sd,
		EndDate:   &ed,
	})
	if err != nil {
		return nil
	}

	return getTransactionsMsg{ts: ts, period: period}
}

func (m model) deleteTransaction(t api.Transaction) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteTransaction(context.Background(), t.ID)
		return deleteTransactionMsg{description: t.Description, err: err}
	}
}
