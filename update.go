package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/aaronlimck/moolah/entry"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case getSessionMsg:
		return m.handleGetSession(msg)

	case primaryDataMsg:
		return m.handlePrimaryData(msg)

	case getAccountsMsg:
		return m.handleGetAccounts(msg)

	case getTransactionsMsg:
		return m.handleGetTransactions(msg)

	case deleteTransactionMsg:
		return m.handleDeleteTransaction(msg)

	case entrySubmittedMsg:
		return m.handleEntrySubmitted(msg)

	case authErrorMsg:
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Check your API token: %s", msg.err.Error())
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case transactions:
		return updateTransactions(msg, m)

	case newTransaction, editTransaction:
		return updateEntryForm(msg, &m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleEntrySubmitted turns the pipeline outcome into list status messages
// and triggers the listing refresh the pipeline asked for.
func (m model) handleEntrySubmitted(msg entrySubmittedMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, n := range msg.notices {
		text := m.styles.successStyle.Render(n.text)
		if n.isErr {
			text = m.styles.errorStyle.Render(n.text)
		}
		cmds = append(cmds, m.transactions.NewStatusMessage(text))
	}

	switch msg.outcome {
	case entry.OutcomeCreated, entry.OutcomeUpdated:
		m.entryForm = nil
		m.editingID = ""

	case entry.OutcomeRejected, entry.OutcomeDomainError:
		if errs := m.entryController.Errors(); len(errs) > 0 {
			msgs := make([]string, 0, len(errs))
			for field, errMsg := range errs {
				msgs = append(msgs, fmt.Sprintf("%s: %s", field, errMsg))
			}
			cmds = append(cmds, m.transactions.NewStatusMessage(
				m.styles.errorStyle.Render(strings.Join(msgs, "; ")),
			))
		}

		// the draft survives in the controller; reopen the form populated
		// so the user can correct and resubmit
		m.entryForm = newTransactionForm(m.entryController, m.entryAccounts())
		m.sessionState = newTransaction
		if m.editingID != "" {
			m.sessionState = editTransaction
		}
		cmds = append(cmds, m.entryForm.Init(), tea.WindowSize())

	case entry.OutcomeBusy:
		log.Debug("submission already in flight, ignoring")

	case entry.OutcomeFailed:
		// notices already carry the user-facing message, transport errors
		// stay log-only
	}

	for _, path := range msg.refreshPaths {
		if path == transactionsPath {
			cmds = append(cmds, m.getTransactions)
		}
	}

	return m, tea.Batch(cmds...)
}
