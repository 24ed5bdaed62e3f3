package api

import (
	"repo-showcase/internal/catalog"
	"repo-showcase/internal/view"
)

type controlLink struct {
	Title  string
	Active bool
	Href   string
}

type hiddenField struct {
	Name  string
	Value string
}

type pageData struct {
	Title       string
	Label       string
	Loading     bool
	Error       string
	Search      string
	Hidden      []hiddenField
	Filters     []controlLink
	Sorts       []controlLink
	Cards       []view.Card
	EmptyText   string
	LinksHeader string
	Links       []view.Link
	Footer      view.FooterInfo
}

func newPageData(state catalog.ViewState) pageData {
	data := pageData{
		Title:       view.Title,
		Search:      state.Search,
		EmptyText:   view.EmptyResults,
		LinksHeader: view.PersonalLinksHeading,
		Links:       view.PersonalLinks,
		Footer:      view.Footer,
	}

	// The search form resubmits the rest of the state untouched.
	rest := state.WithSearch("").Values()
	for _, name := range []string{catalog.ParamCategory, catalog.ParamSort, catalog.ParamOrder} {
		if v := rest.Get(name); v != "" {
			data.Hidden = append(data.Hidden, hiddenField{Name: name, Value: v})
		}
	}

	for _, c := range view.FilterControls(state) {
		data.Filters = append(data.Filters, toLink(c))
	}
	for _, c := range view.SortControls(state) {
		data.Sorts = append(data.Sorts, toLink(c))
	}
	return data
}

func toLink(c view.Control) controlLink {
	href := "/"
	if q := c.Next.Values().Encode(); q != "" {
		href += "?" + q
	}
	return controlLink{Title: c.Title, Active: c.Active, Href: href}
}

const indexTemplate = `<!doctype html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<div class="app">
<header>
  <h1>{{.Title}}</h1>
  {{if .Label}}<div class="repo-count-badge"><span>{{.Label}}</span></div>{{end}}
</header>
<main>
{{if .Loading}}
  <div class="loading">Loading...</div>
{{else if .Error}}
  <div class="error">{{.Error}}</div>
{{else}}
  <form class="search-bar" method="get" action="/">
    <input type="search" name="q" value="{{.Search}}" placeholder="Search repositories" aria-label="Search repositories">
    {{range .Hidden}}<input type="hidden" name="{{.Name}}" value="{{.Value}}">{{end}}
    <button type="submit">Search</button>
  </form>
  <div class="filter-bar">
    <nav class="filter-icons" aria-label="Repository filters">
      {{range .Filters}}<a class="filter-icon{{if .Active}} active{{end}}" href="{{.Href}}" aria-pressed="{{.Active}}">{{.Title}}</a>
      {{end}}
    </nav>
    <nav class="sort-controls" aria-label="Repository sort controls">
      {{range .Sorts}}<a class="sort-icon{{if .Active}} active{{end}}" href="{{.Href}}" aria-pressed="{{.Active}}">{{.Title}}</a>
      {{end}}
    </nav>
  </div>
  <div class="repo-grid">
  {{range .Cards}}
    <div class="repo-card" id="repo-{{.ID}}">
      <h2>{{.Name}}</h2>
      <div class="repo-details">
        <span class="star-info">&#9733; {{.Stars}}</span>
        {{if .IsTemplate}}<span class="template-badge">Template</span>{{end}}
      </div>
      <p>{{.Description}}</p>
      <span class="clock-info">Updated at: {{.Updated}}</span>
      <a href="{{.URL}}" target="_blank" rel="noopener noreferrer">View Repository</a>
    </div>
  {{else}}
    <p class="empty">{{.EmptyText}}</p>
  {{end}}
  </div>
{{end}}
</main>
<section class="personal-links">
  <h2>{{.LinksHeader}}</h2>
  <ul>
  {{range .Links}}<li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer" data-icon="{{.Icon}}">{{.Name}}</a></li>
  {{end}}
  </ul>
</section>
<footer>
  <img src="{{.Footer.PhotoURL}}" alt="{{.Footer.Developer}}" width="32" height="32">
  Developed by <a href="{{.Footer.DeveloperURL}}">{{.Footer.Developer}}</a>
  &middot; <a href="{{.Footer.GitHubURL}}">GitHub</a>
</footer>
</div>
</body>
</html>
`
