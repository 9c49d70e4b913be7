package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"vmac/cmd/vmac/ui"
	"vmac/internal/admin"
	"vmac/internal/content"
	"vmac/internal/nav"
	"vmac/internal/store"
)

// transitionMsg fires when a navigation delay has elapsed.
type transitionMsg struct {
	ticket nav.Transition
}

// App is the root bubbletea model: it owns the store-backed
// collections, the admin session, the navigator, and one page model
// per view.
type App struct {
	width  int
	height int

	log       *zap.Logger
	store     store.Store
	site      *content.Site
	session   *admin.Session
	navigator *nav.Navigator
	styles    ui.Styles
	spinner   spinner.Model

	home      ui.HomePageModel
	gallery   ui.GalleryPageModel
	committee ui.CommitteePageModel
	admin     ui.AdminPageModel
}

// NewApp wires the application over an open store.
func NewApp(s store.Store, styles ui.Styles, log *zap.Logger) *App {
	site := content.LoadSite(s)
	session := admin.NewSession(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	app := &App{
		log:       log,
		store:     s,
		site:      site,
		session:   session,
		navigator: nav.New(),
		styles:    styles,
		spinner:   sp,
		home:      ui.NewHomePageModel(styles),
		gallery:   ui.NewGalleryPageModel(styles),
		committee: ui.NewCommitteePageModel(styles),
		admin:     ui.NewAdminPageModel(styles, site, session),
	}
	app.refreshContent()
	return app
}

// refreshContent pushes the current collection state into every page.
func (a *App) refreshContent() {
	a.home.SetData(ui.HomeData{
		Notices:   a.site.Notices.All(),
		About:     a.site.About.Get(),
		Articles:  a.site.Articles.Sorted(),
		Gallery:   a.site.Gallery.Sorted(),
		Committee: a.site.Committee.Sorted(),
	})
	a.gallery.SetItems(a.site.Gallery.Sorted())
	a.committee.SetMembers(a.site.Committee.Sorted())
}

// Init starts the notice ticker and the transition spinner.
func (a *App) Init() tea.Cmd {
	return tea.Batch(ui.TickNotices(), a.spinner.Tick)
}

// navigate requests a view change and schedules its completion.
func (a *App) navigate(target nav.View) tea.Cmd {
	ticket, ok := a.navigator.Start(target)
	if !ok {
		return nil
	}
	return tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return transitionMsg{ticket: ticket}
	})
}

// Update routes messages to the navigator and the mounted page.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		ch := a.contentHeight()
		a.home.SetSize(msg.Width, ch)
		a.gallery.SetSize(msg.Width, ch)
		a.committee.SetSize(msg.Width, ch)
		a.admin.SetSize(msg.Width, ch)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case ui.NoticeTickMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.Update(msg)
		return a, cmd

	case ui.ContentChangedMsg:
		a.refreshContent()
		return a, nil

	case ui.GateDismissedMsg:
		return a, a.navigate(nav.ViewHome)

	case transitionMsg:
		if !a.navigator.Complete(msg.ticket) {
			return a, nil
		}
		a.mountCurrent()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updatePage(msg)
}

// mountCurrent runs the per-view mount effects after a swap: scroll
// positions reset and the admin session re-locks.
func (a *App) mountCurrent() {
	switch a.navigator.Current() {
	case nav.ViewHome:
		a.home.GotoTop()
	case nav.ViewGalleryAll:
		a.gallery.GotoTop()
	case nav.ViewCommitteeAll:
		a.committee.GotoTop()
	case nav.ViewAdmin:
		a.admin.Reset()
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-form.
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.capturing() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "h":
			return a, a.navigate(nav.ViewHome)
		case "g":
			return a, a.navigate(nav.ViewGalleryAll)
		case "c":
			return a, a.navigate(nav.ViewCommitteeAll)
		case "a":
			return a, a.navigate(nav.ViewAdmin)
		}
	}

	// Page keys are held back while the loading overlay is up;
	// navigation keys above still work so a quick second choice
	// supersedes the pending one.
	if a.navigator.Transitioning() {
		return a, nil
	}

	return a.updatePage(msg)
}

// capturing reports whether the mounted page is consuming plain keys.
func (a *App) capturing() bool {
	switch a.navigator.Current() {
	case nav.ViewHome:
		return a.home.Capturing()
	case nav.ViewAdmin:
		return a.admin.Capturing()
	}
	return false
}

func (a *App) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.navigator.Current() {
	case nav.ViewHome:
		a.home, cmd = a.home.Update(msg)
	case nav.ViewGalleryAll:
		a.gallery, cmd = a.gallery.Update(msg)
	case nav.ViewCommitteeAll:
		a.committee, cmd = a.committee.Update(msg)
	case nav.ViewAdmin:
		a.admin, cmd = a.admin.Update(msg)
	}
	return a, cmd
}

func (a *App) contentHeight() int {
	// Header and footer each take two lines.
	h := a.height - 4
	if h < 4 {
		h = 4
	}
	return h
}

// View composes header, mounted page and footer, with a loading
// overlay while a transition is pending.
func (a *App) View() string {
	header := a.styles.Header.Width(a.width).Render("V-MAC  Veterinary Medicine and Animal Welfare Club")
	footer := a.styles.Footer.Width(a.width).Render("h: home • g: gallery • c: committee • a: admin • q: quit")

	var page string
	switch a.navigator.Current() {
	case nav.ViewHome:
		page = a.home.View()
	case nav.ViewGalleryAll:
		page = a.gallery.View()
	case nav.ViewCommitteeAll:
		page = a.committee.View()
	case nav.ViewAdmin:
		page = a.admin.View()
	}

	if a.navigator.Transitioning() {
		// The outgoing view stays mounted, dimmed under the overlay.
		dimmed := a.styles.Dimmed.Render(page)
		overlay := a.styles.Overlay.Render(fmt.Sprintf("%s Loading V-MAC...", a.spinner.View()))
		page = lipgloss.JoinVertical(lipgloss.Left, overlay, dimmed)
	}

	body := a.styles.Content.Width(a.width).Height(a.contentHeight()).Render(page)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
