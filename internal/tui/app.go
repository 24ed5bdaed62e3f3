package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"repo-showcase/internal/catalog"
	"repo-showcase/internal/loader"
	"repo-showcase/internal/model"
)

// Source loads the listing once and exposes it.
type Source interface {
	Load(ctx context.Context) error
	Snapshot() loader.Snapshot
}

// --- Messages ---

type reposLoadedMsg struct {
	snap loader.Snapshot
}

// --- Model ---

type Model struct {
	// Data
	ctx      context.Context
	source   Source
	engine   *catalog.Engine
	location *time.Location
	status   loader.Status
	all      []model.Repository
	view     catalog.View

	// UI state
	state     catalog.ViewState
	searching bool
	offset    int
	width     int
	height    int
}

func NewModel(ctx context.Context, source Source, engine *catalog.Engine, location *time.Location) Model {
	return Model{
		ctx:      ctx,
		source:   source,
		engine:   engine,
		location: location,
		status:   loader.StatusLoading,
		state:    catalog.DefaultViewState(),
	}
}

func (m Model) Init() tea.Cmd {
	return loadRepos(m.ctx, m.source)
}

func loadRepos(ctx context.Context, source Source) tea.Cmd {
	return func() tea.Msg {
		// The outcome is carried by the snapshot.
		_ = source.Load(ctx)
		return reposLoadedMsg{snap: source.Snapshot()}
	}
}

// State returns the current view state.
func (m Model) State() catalog.ViewState {
	return m.state
}

// Visible returns the current projection.
func (m Model) Visible() catalog.View {
	return m.view
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reposLoadedMsg:
		m.status = msg.snap.Status
		m.all = msg.snap.Repositories
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg), nil
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
	case tea.KeyEsc:
		m.searching = false
		m.setState(m.state.WithSearch(""))
	case tea.KeyBackspace:
		runes := []rune(m.state.Search)
		if len(runes) > 0 {
			m.setState(m.state.WithSearch(string(runes[:len(runes)-1])))
		}
	case tea.KeySpace:
		m.setState(m.state.WithSearch(m.state.Search + " "))
	case tea.KeyRunes:
		m.setState(m.state.WithSearch(m.state.Search + string(msg.Runes)))
	}
	return m
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		m.setState(m.state.ToggleCategory(catalog.Categories[idx]))
	case "n":
		m.setState(m.state.WithSortField(catalog.SortByName))
	case "s":
		m.setState(m.state.WithSortField(catalog.SortByStars))
	case "u":
		m.setState(m.state.WithSortField(catalog.SortByUpdated))
	case "o":
		m.setState(m.state.ToggleSortOrder())
	case "j", "down":
		if m.offset < len(m.view.Repositories)-1 {
			m.offset++
		}
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
	}
	return m, nil
}

func (m *Model) setState(state catalog.ViewState) {
	m.state = state
	m.recompute()
}

// recompute rebuilds the projection from the full listing; it runs on
// every state change.
func (m *Model) recompute() {
	m.view = m.engine.Project(m.all, m.state)
	m.offset = 0
}
