package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vmac/internal/content"
)

// GalleryPageModel is the full-gallery view: every post, newest first.
type GalleryPageModel struct {
	width    int
	height   int
	viewport viewport.Model
	items    []content.GalleryItem
	styles   Styles
}

// NewGalleryPageModel creates the full-gallery page.
func NewGalleryPageModel(styles Styles) GalleryPageModel {
	vp := viewport.New(0, 0)
	return GalleryPageModel{viewport: vp, styles: styles}
}

// SetItems replaces the rendered posts. Callers pass them already
// sorted newest first.
func (m *GalleryPageModel) SetItems(items []content.GalleryItem) {
	m.items = items
	m.viewport.SetContent(m.renderItems())
}

// GotoTop scrolls back to the top, called after every view swap.
func (m *GalleryPageModel) GotoTop() {
	m.viewport.GotoTop()
}

// Update handles scrolling.
func (m GalleryPageModel) Update(msg tea.Msg) (GalleryPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m GalleryPageModel) View() string {
	title := m.styles.Title.Render("Full Gallery")
	back := m.styles.Muted.Render("h: back to home")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), back)
}

func (m GalleryPageModel) renderItems() string {
	if len(m.items) == 0 {
		return m.styles.Muted.Render("No gallery items yet.")
	}
	var b strings.Builder
	for i, item := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		card := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Bold.Render(item.Caption),
			m.styles.Muted.Render(imageLabel(item.Image)),
			m.styles.Muted.Render(postDate(item.Timestamp)),
		)
		b.WriteString(m.styles.Card.Render(card))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize updates the layout.
func (m *GalleryPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4
	m.viewport.SetContent(m.renderItems())
}
