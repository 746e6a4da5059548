// Package overview renders the landing view: a welcome header, the user's
// accounts with the default marked, and a summary of the current period's
// income, spending and category breakdown.
package overview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aaronlimck/moolah/api"
	"github.com/aaronlimck/moolah/entry"
)

var titleCaser = cases.Title(language.English)

// Model defines the state for the overview widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	summary      Summary
	transactions []api.Transaction
	accounts     []api.Account
	userID       string
	currency     string
}

// Summary aggregates the visible transactions.
type Summary struct {
	totalIncome *money.Money
	totalSpent  *money.Money
	net         *money.Money
}

type Styles struct {
	IncomeStyle   lipgloss.Style
	SpentStyle    lipgloss.Style
	TreeRootStyle lipgloss.Style
	AccountStyle  lipgloss.Style
	DefaultStyle  lipgloss.Style
	SummaryStyle  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#36d399")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f87272")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		AccountStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		DefaultStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#36d399")).Bold(true),
		SummaryStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

type Option func(*Model)

// WithCurrency sets the display currency, defaulting to USD.
func WithCurrency(currency string) Option {
	return func(m *Model) {
		if currency != "" {
			m.currency = currency
		}
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: "USD",
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.summary = Summary{
		totalIncome: money.New(0, m.currency),
		totalSpent:  money.New(0, m.currency),
		net:         money.New(0, m.currency),
	}

	m.UpdateViewport()

	return m
}

// SetTransactions replaces the summarized transactions.
func (m *Model) SetTransactions(transactions []api.Transaction) {
	m.transactions = transactions
	m.updateSummary()
	m.UpdateViewport()
}

// SetAccounts replaces the account list.
func (m *Model) SetAccounts(accounts []api.Account) {
	m.accounts = accounts
	m.UpdateViewport()
}

// SetUser sets the signed-in user identity for the header.
func (m *Model) SetUser(userID string) {
	m.userID = userID
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	accountsContent := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(m.accountTree().String())

	breakdown := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(lipgloss.Top,
				lipgloss.NewStyle().Bold(true).Render("Spending Breakdown"),
				table.New(
					table.WithColumns([]table.Column{
						{Title: "Category", Width: 20},
						{Title: "Total Spent", Width: 15},
						{Title: "% of Total", Width: 10},
					}),
					table.WithRows(m.calculateSpendingBreakdown()),
				).View(),
			),
		)

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryView(),
		accountsContent,
		breakdown,
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			mainContent,
		),
	)
}

func (m *Model) headerView() string {
	if m.userID == "" {
		return "Overview"
	}

	return fmt.Sprintf("Welcome back, %s!", m.userID)
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Income: %s\n", m.Styles.IncomeStyle.Render(m.summary.totalIncome.Display())))
	b.WriteString(fmt.Sprintf("Spent: %s\n", m.Styles.SpentStyle.Render(m.summary.totalSpent.Display())))
	if m.summary.net.IsNegative() {
		b.WriteString(fmt.Sprintf("Net: %s", m.Styles.SpentStyle.Render(m.summary.net.Display())))
	} else {
		b.WriteString(fmt.Sprintf("Net: %s", m.Styles.IncomeStyle.Render(m.summary.net.Display())))
	}

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m *Model) accountTree() *tree.Tree {
	t := tree.New().Root(m.Styles.TreeRootStyle.Render("Accounts"))

	for _, a := range m.accounts {
		text := fmt.Sprintf("%s (%s)", a.Name, a.Money().Display())
		if a.IsDefault {
			t.Child(m.Styles.DefaultStyle.Render(text + " *"))
			continue
		}
		t.Child(m.Styles.AccountStyle.Render(text))
	}

	return t
}

func (m *Model) updateSummary() {
	totalIncome := money.New(0, m.currency)
	totalSpent := money.New(0, m.currency)

	for _, t := range m.transactions {
		amount := t.Money(m.currency)
		if t.Type == string(entry.TypeIncome) {
			totalIncome, _ = totalIncome.Add(amount)
		} else {
			totalSpent, _ = totalSpent.Add(amount)
		}
	}

	net, _ := totalIncome.Subtract(totalSpent)

	m.summary = Summary{totalIncome: totalIncome, totalSpent: totalSpent, net: net}
}

func (m *Model) calculateSpendingBreakdown() []table.Row {
	categoryTotals := make(map[string]*money.Money)

	for _, t := range m.transactions {
		if t.Type == string(entry.TypeIncome) {
			continue
		}

		label := categoryDisplay(t.Category)
		if _, exists := categoryTotals[label]; !exists {
			categoryTotals[label] = money.New(0, m.currency)
		}
		categoryTotals[label], _ = categoryTotals[label].Add(t.Money(m.currency))
	}

	type categoryTotal struct {
		label string
		total *money.Money
	}
	totals := make([]categoryTotal, 0, len(categoryTotals))
	for label, total := range categoryTotals {
		totals = append(totals, categoryTotal{label: label, total: total})
	}

	// largest spend first, label as tiebreaker for stable output
	slices.SortFunc(totals, func(a, b categoryTotal) int {
		if c := int(b.total.Amount() - a.total.Amount()); c != 0 {
			return c
		}
		return strings.Compare(a.label, b.label)
	})

	totalSpent := m.summary.totalSpent
	rows := make([]table.Row, 0, len(totals))
	for _, ct := range totals {
		percentage := 0.0
		if totalSpent.Amount() != 0 {
			percentage = float64(ct.total.Amount()) / float64(totalSpent.Amount()) * 100
		}
		rows = append(rows, table.Row{ct.label, ct.total.Display(), fmt.Sprintf("%.2f%%", percentage)})
	}

	return rows
}

// categoryDisplay resolves a category key to its label, falling back to a
// title-cased key for values outside the known vocabularies.
func categoryDisplay(key string) string {
	if label, ok := entry.CategoryLabel(entry.TypeExpense, key); ok {
		return label
	}
	if label, ok := entry.CategoryLabel(entry.TypeIncome, key); ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(key, "-", " "))
}
