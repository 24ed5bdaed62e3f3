package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"repo-showcase/internal/catalog"
	"repo-showcase/internal/loader"
	"repo-showcase/internal/view"
)

const (
	defaultCardsShown = 4
	// Border and five content lines.
	cardHeight = 7
	chromeRows = 9
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Underline(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	templateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

var filterKeys = map[catalog.Category]string{
	catalog.CategoryTemplate:   "1",
	catalog.CategoryPOC:        "2",
	catalog.CategoryHelloWorld: "3",
	catalog.CategoryMisc:       "4",
}

var sortKeys = map[string]string{
	string(catalog.SortByName):    "n",
	string(catalog.SortByStars):   "s",
	string(catalog.SortByUpdated): "u",
	"order":                       "o",
}

func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render(view.Title)
	if m.status == loader.StatusReady {
		header += "  " + badgeStyle.Render(view.CountLabel(m.view.Filtered, m.view.Total))
	}
	b.WriteString(header + "\n\n")

	switch m.status {
	case loader.StatusLoading:
		b.WriteString(view.LoadingMessage + "\n")
		return b.String()
	case loader.StatusFailed:
		b.WriteString(errorStyle.Render(view.FetchFailureMessage) + "\n\n")
		b.WriteString(m.renderLinks())
		return b.String()
	}

	b.WriteString(m.renderSearch() + "\n")
	b.WriteString(m.renderControls() + "\n\n")
	b.WriteString(m.renderCards() + "\n")
	b.WriteString(m.renderLinks())
	b.WriteString(dimStyle.Render("/ search · 1-4 filter · n/s/u sort · o order · j/k scroll · q quit") + "\n")
	return b.String()
}

func (m Model) renderSearch() string {
	text := m.state.Search
	if m.searching {
		return activeStyle.Render("Search: ") + text + "█"
	}
	if text == "" {
		return inactiveStyle.Render("Search: (press /)")
	}
	return inactiveStyle.Render("Search: ") + text
}

func (m Model) renderControls() string {
	var filters []string
	for _, c := range view.FilterControls(m.state) {
		filters = append(filters, renderControl(filterKeys[catalog.Category(c.Key)], c))
	}
	var sorts []string
	for _, c := range view.SortControls(m.state) {
		sorts = append(sorts, renderControl(sortKeys[c.Key], c))
	}
	return "Filter: " + strings.Join(filters, " ") + "\n" + "Sort:   " + strings.Join(sorts, " ")
}

func renderControl(key string, c view.Control) string {
	label := fmt.Sprintf("[%s] %s", key, c.Title)
	if c.Active {
		return activeStyle.Render(label)
	}
	return inactiveStyle.Render(label)
}

func (m Model) renderCards() string {
	if len(m.view.Repositories) == 0 {
		return dimStyle.Render(view.EmptyResults) + "\n"
	}

	shown := defaultCardsShown
	if m.height > 0 {
		shown = max(1, (m.height-chromeRows)/cardHeight)
	}
	end := min(len(m.view.Repositories), m.offset+shown)

	width := 0
	if m.width > 4 {
		width = m.width - 4
	}

	var cards []string
	for _, repo := range m.view.Repositories[m.offset:end] {
		card := view.NewCard(repo, m.location)
		title := titleStyle.Render(card.Name) + "  ★ " + fmt.Sprint(card.Stars)
		if card.IsTemplate {
			title += "  " + templateStyle.Render("Template")
		}
		body := strings.Join([]string{
			title,
			card.Description,
			dimStyle.Render("Updated at: " + card.Updated),
			card.URL,
		}, "\n")
		style := cardStyle
		if width > 0 {
			style = style.Width(width)
		}
		cards = append(cards, style.Render(body))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if end < len(m.view.Repositories) || m.offset > 0 {
		out += "\n" + dimStyle.Render(fmt.Sprintf("showing %d-%d of %d", m.offset+1, end, len(m.view.Repositories)))
	}
	return out + "\n"
}

func (m Model) renderLinks() string {
	names := make([]string, len(view.PersonalLinks))
	for i, l := range view.PersonalLinks {
		names[i] = l.Name
	}
	return dimStyle.Render(view.PersonalLinksHeading+": "+strings.Join(names, " · ")) + "\n" +
		dimStyle.Render("Developed by "+view.Footer.Developer) + "\n"
}
