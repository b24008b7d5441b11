package tui

import (
	"time"

	"custctl/internal/api"
	"custctl/internal/config"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// confirmPrompt is a pending yes/no question blocking the list keys.
type confirmPrompt struct {
	prompt string
	id     string
	name   string
}

// Options tunes the browser. Zero values fall back to the config
// package defaults.
type Options struct {
	PageLimit      int
	SearchDebounce time.Duration
	RequestTimeout time.Duration
}

// model is the customer browser state. One instance per program; all
// fields are owned by the Bubble Tea event loop and never shared.
type model struct {
	svc CustomerService

	width  int
	height int
	ready  bool

	limit    int
	debounce time.Duration
	timeout  time.Duration

	// Query state. debouncedSearch lags the input by the debounce
	// window; debounceSeq invalidates superseded timers.
	searchInput     textinput.Model
	debouncedSearch string
	debounceSeq     int

	// List state. listReqSeq orders overlapping fetches so a slow,
	// stale response cannot clobber a newer one.
	customers  []api.Customer
	pagination api.Pagination
	page       int
	cursor     int
	isLoading  bool
	listErr    string
	listReqSeq int

	// Detail panel state. detailID is the customer the panel is
	// showing (or loading); selected stays nil until the fetch
	// resolves. panelKey increments on every forced re-render of the
	// panel subtree.
	detailOpen           bool
	detailID             string
	detailName           string
	selected             *api.Customer
	panelKey             int
	isMembershipUpdating bool

	barcodeActive bool
	barcodeInput  textinput.Model

	// Modal state. editing is nil when creating.
	modalOpen bool
	editing   *api.Customer
	form      customerForm

	confirm *confirmPrompt

	spinner   spinner.Model
	paginator paginator.Model
	keys      KeyMap
	help      help.Model

	statusMessage string
	statusKind    statusKind
	statusSeq     int

	quitting bool
}

// InitialModel builds the browser model. The first list fetch is
// issued from Init.
func InitialModel(svc CustomerService, opts Options) model {
	if opts.PageLimit <= 0 {
		opts.PageLimit = config.DefaultPageLimit
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = config.DefaultSearchDebounce
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = config.DefaultTimeout
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "Type to search customers"
	search.CharLimit = 64
	search.Focus()

	barcode := textinput.New()
	barcode.Prompt = ""
	barcode.Placeholder = "Membership barcode"
	barcode.CharLimit = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = activeDotStyle.Render("•")
	pg.InactiveDot = inactiveDotStyle.Render("•")
	pg.TotalPages = 1

	return model{
		svc:          svc,
		limit:        opts.PageLimit,
		debounce:     opts.SearchDebounce,
		timeout:      opts.RequestTimeout,
		searchInput:  search,
		barcodeInput: barcode,
		page:         1,
		pagination:   api.Pagination{CurrentPage: 1, TotalPages: 1},
		isLoading:    true,
		listReqSeq:   1,
		form:         newCustomerForm(nil),
		spinner:      sp,
		paginator:    pg,
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
}

func (m model) Init() tea.Cmd {
	// The first fetch happens here, with the empty search term;
	// InitialModel already marked the list as loading under sequence 1.
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		fetchCustomersCmd(m.svc, m.timeout, m.listReqSeq, m.page, m.limit, m.debouncedSearch),
	)
}

// cursorCustomer returns the customer under the cursor.
func (m *model) cursorCustomer() (api.Customer, bool) {
	if m.listErr != "" || m.cursor < 0 || m.cursor >= len(m.customers) {
		return api.Customer{}, false
	}
	return m.customers[m.cursor], true
}

// scheduleDebounce (re)starts the search quiet-period timer. Each call
// supersedes any timer still pending.
func (m *model) scheduleDebounce() tea.Cmd {
	m.debounceSeq++
	seq := m.debounceSeq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebouncedMsg{seq: seq}
	})
}

// startListFetch issues a list fetch for the current page and committed
// search term under a fresh sequence number.
func (m *model) startListFetch() tea.Cmd {
	m.listReqSeq++
	m.isLoading = true
	return tea.Batch(
		m.spinner.Tick,
		fetchCustomersCmd(m.svc, m.timeout, m.listReqSeq, m.page, m.limit, m.debouncedSearch),
	)
}

// goToPage navigates to page n. Out-of-range pages are a no-op.
func (m *model) goToPage(n int) tea.Cmd {
	if n < 1 || n > m.pagination.TotalPages {
		return nil
	}
	m.page = n
	return m.startListFetch()
}

// viewDetails opens the detail panel for c, or closes it when it is
// already showing c.
func (m *model) viewDetails(c api.Customer) tea.Cmd {
	if m.detailOpen && m.detailID == c.ID {
		m.closePanel()
		return nil
	}
	m.panelKey++
	m.detailOpen = true
	m.detailID = c.ID
	m.detailName = c.Name
	m.selected = nil // loading placeholder until the fetch resolves
	m.barcodeActive = false
	return tea.Batch(m.spinner.Tick, fetchCustomerDetailCmd(m.svc, m.timeout, c.ID))
}

func (m *model) closePanel() {
	m.detailOpen = false
	m.detailID = ""
	m.detailName = ""
	m.selected = nil
	m.barcodeActive = false
	m.barcodeInput.Blur()
}

func (m *model) openCreateModal() {
	m.modalOpen = true
	m.editing = nil
	m.form = newCustomerForm(nil)
}

func (m *model) openEditModal(c api.Customer) {
	m.modalOpen = true
	edited := c
	m.editing = &edited
	m.form = newCustomerForm(&edited)
}

func (m *model) closeModal() {
	m.modalOpen = false
	m.editing = nil
	m.form = newCustomerForm(nil)
}

// notify puts a message on the status bar and schedules its removal.
// A later notify supersedes the pending clear.
func (m *model) notify(kind statusKind, message string) tea.Cmd {
	m.statusMessage = message
	m.statusKind = kind
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
