package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// advancePeriod advances the current period by one month or year depending on the period type.
func advancePeriod(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(0, 1, 0)
	}

	if m.periodType == annualPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(1, 0, 0)
	}

	return reloadPeriod(m)
}

// retrievePreviousPeriod moves the current period back by one month or year
// depending on the period type.
func retrievePreviousPeriod(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(0, -1, 0)
	}

	if m.periodType == annualPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(-1, 0, 0)
	}

	return reloadPeriod(m)
}

func switchPeriodType(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.periodType = annualPeriodType
	} else {
		m.periodType = monthlyPeriodType
	}

	return reloadPeriod(m)
}

// reloadPeriod refetches the transactions for the newly selected period.
func reloadPeriod(m *model) (tea.Model, tea.Cmd) {
	m.previousSessionState = m.sessionState
	m.sessionState = loading
	m.loadingState.unset("transactions")

	return m, m.getTransactions
}
