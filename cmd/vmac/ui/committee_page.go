package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vmac/internal/content"
)

// CommitteePageModel is the full-roster view, ordered by position.
type CommitteePageModel struct {
	width    int
	height   int
	viewport viewport.Model
	members  []content.CommitteeMember
	styles   Styles
}

// NewCommitteePageModel creates the full-roster page.
func NewCommitteePageModel(styles Styles) CommitteePageModel {
	vp := viewport.New(0, 0)
	return CommitteePageModel{viewport: vp, styles: styles}
}

// SetMembers replaces the rendered roster. Callers pass it already
// sorted by position.
func (m *CommitteePageModel) SetMembers(members []content.CommitteeMember) {
	m.members = members
	m.viewport.SetContent(m.renderMembers())
}

// GotoTop scrolls back to the top, called after every view swap.
func (m *CommitteePageModel) GotoTop() {
	m.viewport.GotoTop()
}

// Update handles scrolling.
func (m CommitteePageModel) Update(msg tea.Msg) (CommitteePageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m CommitteePageModel) View() string {
	title := m.styles.Title.Render("Committee Members")
	back := m.styles.Muted.Render("h: back to home")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), back)
}

func (m CommitteePageModel) renderMembers() string {
	var b strings.Builder
	for i, member := range m.members {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%s  %s",
			m.styles.Badge.Render(fmt.Sprintf("%d", member.Position)),
			m.styles.Bold.Render(member.Name),
		)
		card := lipgloss.JoinVertical(lipgloss.Left,
			line,
			m.styles.Muted.Render(member.Designation),
			m.styles.Muted.Render(imageLabel(member.Image)),
		)
		b.WriteString(m.styles.Card.Render(card))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize updates the layout.
func (m *CommitteePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4
	m.viewport.SetContent(m.renderMembers())
}
