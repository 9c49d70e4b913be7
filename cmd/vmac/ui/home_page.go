package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"vmac/internal/contact"
	"vmac/internal/content"
)

// clipboardWriteAll is a package-level variable to allow mocking in
// tests.
var clipboardWriteAll = clipboard.WriteAll

// noticeInterval is how long each notice stays on the ticker.
const noticeInterval = 5 * time.Second

// NoticeTickMsg advances the notice ticker.
type NoticeTickMsg time.Time

// TickNotices schedules the next ticker advance.
func TickNotices() tea.Cmd {
	return tea.Tick(noticeInterval, func(t time.Time) tea.Msg {
		return NoticeTickMsg(t)
	})
}

// HomeData is the read model the home page renders.
type HomeData struct {
	Notices   []content.Notice
	About     content.AboutData
	Articles  []content.Article // newest first
	Gallery   []content.GalleryItem
	Committee []content.CommitteeMember
}

// HomePageModel renders the landing view: notice ticker, about
// section, articles feed, gallery and committee previews, and the
// contact form. An article reader can overlay the page.
type HomePageModel struct {
	width  int
	height int
	styles Styles

	viewport viewport.Model
	renderer *glamour.TermRenderer

	data        HomeData
	noticeIndex int
	articleSel  int

	// Reader overlay
	reading *content.Article

	// Contact form
	contactOpen bool
	contactSent bool
	contactErr  string
	name        textinput.Model
	email       textinput.Model
	message     textarea.Model
	contactFoc  int

	status string
}

// NewHomePageModel creates the landing page.
func NewHomePageModel(styles Styles) HomePageModel {
	vp := viewport.New(0, 0)

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76))
	} else {
		renderer, _ = glamour.NewTermRenderer(glamour.WithStylePath("light"), glamour.WithWordWrap(76))
	}

	name := textinput.New()
	name.Placeholder = "John Doe"
	name.CharLimit = 120
	email := textinput.New()
	email.Placeholder = "john@example.com"
	email.CharLimit = 120
	message := textarea.New()
	message.Placeholder = "Write your comment here..."

	return HomePageModel{
		styles:   styles,
		viewport: vp,
		renderer: renderer,
		name:     name,
		email:    email,
		message:  message,
	}
}

// SetData replaces the rendered content.
func (m *HomePageModel) SetData(data HomeData) {
	m.data = data
	if m.noticeIndex >= len(data.Notices) {
		m.noticeIndex = 0
	}
	if m.articleSel >= len(data.Articles) {
		m.articleSel = 0
	}
	m.viewport.SetContent(m.renderBody())
}

// GotoTop scrolls back to the top, called after every view swap.
func (m *HomePageModel) GotoTop() {
	m.viewport.GotoTop()
}

// Capturing reports whether the page is consuming plain keys (reader
// overlay or contact form open), so global navigation shortcuts stay
// inactive.
func (m HomePageModel) Capturing() bool {
	return m.reading != nil || m.contactOpen
}

// Update handles ticker advances, article selection, the reader
// overlay and the contact form.
func (m HomePageModel) Update(msg tea.Msg) (HomePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case NoticeTickMsg:
		if len(m.data.Notices) > 1 {
			m.noticeIndex = (m.noticeIndex + 1) % len(m.data.Notices)
		}
		return m, TickNotices()

	case tea.KeyMsg:
		if m.contactOpen {
			return m.updateContactForm(msg)
		}
		if m.reading != nil {
			return m.updateReader(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.articleSel > 0 {
				m.articleSel--
				m.viewport.SetContent(m.renderBody())
			}
			return m, nil
		case "down", "j":
			if m.articleSel < len(m.data.Articles)-1 {
				m.articleSel++
				m.viewport.SetContent(m.renderBody())
			}
			return m, nil
		case "enter":
			if len(m.data.Articles) > 0 {
				art := m.data.Articles[m.articleSel]
				m.reading = &art
			}
			return m, nil
		case "s":
			m.shareSelected()
			return m, nil
		case "m":
			m.openContactForm()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m HomePageModel) updateReader(msg tea.KeyMsg) (HomePageModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.reading = nil
	case "s":
		m.shareSelected()
	}
	return m, nil
}

func (m *HomePageModel) shareSelected() {
	if len(m.data.Articles) == 0 {
		return
	}
	art := m.data.Articles[m.articleSel]
	// No system share sheet in a terminal; degrade to the clipboard.
	copied, err := contact.ShareArticle(nil, clipboardWriteAll, art)
	switch {
	case err != nil:
		m.status = m.styles.Error.Render("Could not copy link to clipboard")
	case copied:
		m.status = m.styles.Success.Render("Copied!")
	}
	m.viewport.SetContent(m.renderBody())
}

func (m *HomePageModel) openContactForm() {
	m.contactOpen = true
	m.contactSent = false
	m.contactErr = ""
	m.contactFoc = 0
	m.name.Focus()
	m.email.Blur()
	m.message.Blur()
}

func (m HomePageModel) updateContactForm(msg tea.KeyMsg) (HomePageModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.contactOpen = false
		return m, nil
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.contactFoc = (m.contactFoc + 1) % 3
		} else {
			m.contactFoc = (m.contactFoc + 2) % 3
		}
		m.name.Blur()
		m.email.Blur()
		m.message.Blur()
		switch m.contactFoc {
		case 0:
			m.name.Focus()
		case 1:
			m.email.Focus()
		case 2:
			m.message.Focus()
		}
		return m, nil
	case "enter":
		// The message field needs enter for line breaks; submit from
		// anywhere else.
		if m.contactFoc != 2 {
			return m.submitContact(), nil
		}
	}

	var cmd tea.Cmd
	switch m.contactFoc {
	case 0:
		m.name, cmd = m.name.Update(msg)
	case 1:
		m.email, cmd = m.email.Update(msg)
	case 2:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m HomePageModel) submitContact() HomePageModel {
	name := strings.TrimSpace(m.name.Value())
	email := strings.TrimSpace(m.email.Value())
	message := strings.TrimSpace(m.message.Value())
	if name == "" || email == "" || message == "" {
		m.contactErr = "Please fill in your name, email and message."
		return m
	}

	mailto := contact.BuildMailto(name, email, message)
	if err := clipboardWriteAll(mailto); err != nil {
		m.contactErr = "Could not hand the message to your mail client."
		return m
	}
	m.contactSent = true
	m.contactErr = ""
	m.name.SetValue("")
	m.email.SetValue("")
	m.message.SetValue("")
	return m
}

// View renders the page, the reader overlay, or the contact form.
func (m HomePageModel) View() string {
	if m.reading != nil {
		return m.renderReader()
	}
	if m.contactOpen {
		return m.renderContactForm()
	}

	ticker := m.renderTicker()
	help := m.styles.Muted.Render("j/k: select article • enter: read • s: share • m: leave a comment")
	parts := []string{ticker, m.viewport.View(), help}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m HomePageModel) renderTicker() string {
	if len(m.data.Notices) == 0 {
		return ""
	}
	notice := m.data.Notices[m.noticeIndex]
	return m.styles.Badge.Render("NOTICE") + " " + m.styles.Body.Render(notice.Text)
}

func (m HomePageModel) renderBody() string {
	var b strings.Builder

	// About
	b.WriteString(m.styles.SectionTitle.Render("About Us"))
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Width(max(20, m.width-4)).Render(m.data.About.Text))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(imageLabel(m.data.About.Image)))
	b.WriteString("\n\n")

	// Articles feed
	if len(m.data.Articles) > 0 {
		b.WriteString(m.styles.SectionTitle.Render("Articles"))
		b.WriteString("\n")
		for i, art := range m.data.Articles {
			marker := "  "
			if i == m.articleSel {
				marker = m.styles.Bold.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s\n", marker, m.styles.Bold.Render(art.Title)))
			b.WriteString("  " + m.styles.Muted.Render(fmt.Sprintf("By %s • %s", art.Author, art.Date)) + "\n")
			b.WriteString("  " + m.styles.Muted.Render(truncate(art.Content, 80)) + "\n")
		}
		b.WriteString("\n")
	}

	// Gallery preview (single newest post)
	b.WriteString(m.styles.SectionTitle.Render("Gallery"))
	b.WriteString("\n")
	if len(m.data.Gallery) > 0 {
		item := m.data.Gallery[0]
		b.WriteString(m.styles.Bold.Render(item.Caption) + "\n")
		b.WriteString(m.styles.Muted.Render(imageLabel(item.Image)) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("g: see full gallery") + "\n\n")

	// Committee preview (top two)
	b.WriteString(m.styles.SectionTitle.Render("Committee"))
	b.WriteString("\n")
	for i, member := range m.data.Committee {
		if i >= 2 {
			break
		}
		b.WriteString(m.styles.Bold.Render(member.Name) + " " + m.styles.Muted.Render(member.Designation) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("c: see all members") + "\n\n")

	// Contact
	b.WriteString(m.styles.SectionTitle.Render("Contact Us"))
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Render("Gono Bishwabidyalay (Gono University), Ashulia, Savar, Dhaka-1344, Bangladesh") + "\n")
	b.WriteString(m.styles.Body.Render("Email: "+contact.Recipient) + "\n")

	return b.String()
}

func (m HomePageModel) renderReader() string {
	art := m.reading

	body := art.Content
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(art.Content); err == nil {
			body = rendered
		}
	}

	head := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(art.Title),
		m.styles.Muted.Render(fmt.Sprintf("Written by %s • Published %s", art.Author, art.Date)),
		m.styles.Muted.Render(imageLabel(art.Image)),
	)
	foot := m.styles.Muted.Render("esc: back • s: share")
	parts := []string{head, body, foot}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m HomePageModel) renderContactForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Leave a Comment"))
	b.WriteString("\n")

	if m.contactSent {
		b.WriteString(m.styles.Success.Render("Thank you! Your email client has been opened to send your comment.") + "\n\n")
	}
	if m.contactErr != "" {
		b.WriteString(m.styles.Error.Render(m.contactErr) + "\n\n")
	}

	b.WriteString(m.styles.FormLabel.Render("Your Name") + "\n")
	b.WriteString(m.name.View() + "\n")
	b.WriteString(m.styles.FormLabel.Render("Your Email") + "\n")
	b.WriteString(m.email.View() + "\n")
	b.WriteString(m.styles.FormLabel.Render("Your Message / Comment") + "\n")
	b.WriteString(m.message.View() + "\n\n")
	b.WriteString(m.styles.Muted.Render("tab: next field • enter: send • esc: back") + "\n")
	b.WriteString(m.styles.Muted.Render("* Sending opens your default email application, addressed to " + contact.Recipient))
	return b.String()
}

// SetSize updates the layout.
func (m *HomePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 5
	m.name.Width = min(60, w-4)
	m.email.Width = min(60, w-4)
	m.message.SetWidth(min(76, w-4))
	m.viewport.SetContent(m.renderBody())
}
