package main

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/aaronlimck/moolah/api"
	"github.com/aaronlimck/moolah/config"
	"github.com/aaronlimck/moolah/entry"
	"github.com/aaronlimck/moolah/overview"
)

// transactionsPath is the logical listing refreshed after a successful
// submission.
const transactionsPath = "/transactions"

type model struct {
	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model

	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme

	overview   overview.Model
	configView config.Model

	// transactionsListKeys is the keybindings for the transactions list
	transactionsListKeys *transactionListKeyMap
	sessionState         sessionState
	previousSessionState sessionState
	// transactions is a bubbletea list model of financial transactions
	transactions list.Model

	// entryForm is the active new/edit transaction form, nil when closed
	entryForm       *huh.Form
	entryController *entry.Controller
	resolver        *entry.Resolver
	pipeline        *entry.Pipeline
	notices         *noticeCollector
	refreshes       *refreshRecorder
	// editingID is the transaction being edited, empty while creating
	editingID string

	// userID is the signed-in user resolved from the session endpoint
	userID   string
	accounts []api.Account
	source   *accountSource
	currency string

	currentPeriod time.Time
	periodType    string
	period        Period

	loadingState loadingState
	errorMsg     string

	client *api.Client
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.getSession,
		m.loadingSpinner.Tick,
	)
}

func (m model) checkIfLoading() sessionState {
	if loaded, _ := m.loadingState.allLoaded(); !loaded {
		return loading
	}

	return overviewState
}

// accountSource adapts the API client to the account projection the entry
// package works with. It remembers the last fetch so the TUI can reuse the
// full account records without a second round trip.
type accountSource struct {
	client *api.Client

	mu   sync.Mutex
	last []api.Account
}

func (s *accountSource) AccountsForUser(ctx context.Context, userID string) ([]entry.Account, error) {
	accounts, err := s.client.AccountsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.last = accounts
	s.mu.Unlock()

	out := make([]entry.Account, len(accounts))
	for i, a := range accounts {
		out[i] = entry.Account{ID: a.ID, Name: a.Name, IsDefault: a.IsDefault}
	}
	return out, nil
}

func (s *accountSource) snapshot() []api.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// noticeCollector buffers pipeline notifications raised inside a tea.Cmd so
// the update loop can render them as list status messages.
type noticeCollector struct {
	mu      sync.Mutex
	notices []notice
}

type notice struct {
	text  string
	isErr bool
}

func (n *noticeCollector) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{text: msg})
}

func (n *noticeCollector) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{text: msg, isErr: true})
}

func (n *noticeCollector) drain() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	notices := n.notices
	n.notices = nil
	return notices
}

// refreshRecorder notes which listings the pipeline asked to refresh.
type refreshRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *refreshRecorder) Revalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *refreshRecorder) drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := r.paths
	r.paths = nil
	return paths
}

// rootAction starts the TUI.
func rootAction(_ context.Context, cfg config.Config, client *api.Client) error {
	theme := newTheme(cfg.Colors)

	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}

	notices := &noticeCollector{}
	refreshes := &refreshRecorder{}
	controller := entry.NewController(entry.Draft{})
	source := &accountSource{client: client}

	cfgView := config.New()
	cfgView.SetConfig(cfg)

	m := model{
		keys:                 initializeKeyMap(),
		help:                 createHelpModel(theme),
		styles:               createStyles(theme),
		theme:                theme,
		sessionState:         loading,
		client:               client,
		configView:           cfgView,
		currency:             currency,
		currentPeriod:        time.Now(),
		periodType:           monthlyPeriodType,
		loadingState:         newLoadingState("session", "accounts", "transactions"),
		transactionsListKeys: newTransactionListKeyMap(),
		entryController:      controller,
		source:               source,
		resolver:             entry.NewResolver(source, log.Default()),
		notices:              notices,
		refreshes:            refreshes,
		pipeline:             entry.NewPipeline(client, notices, refreshes, transactionsPath, log.Default()),
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
		overview: overview.New(overview.WithCurrency(currency)),
	}

	delegate := m.newItemDelegate(newDeleteKeyMap())

	transactionList := list.New([]list.Item{}, delegate, 0, 0)
	transactionList.SetShowTitle(false)
	transactionList.StatusMessageLifetime = 3 * time.Second
	transactionList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			m.transactionsListKeys.overview,
			m.transactionsListKeys.newTransaction,
			m.transactionsListKeys.editTransaction,
		}
	}
	m.transactions = transactionList

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

func main() {
	Execute()
}
