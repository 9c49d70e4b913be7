package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vmac/internal/admin"
	"vmac/internal/content"
)

// ContentChangedMsg tells the application root that a collection was
// mutated and the public views need fresh data.
type ContentChangedMsg struct{}

func contentChanged() tea.Msg { return ContentChangedMsg{} }

// GateDismissedMsg tells the application root that the user backed out
// of the locked admin gate and wants to return home.
type GateDismissedMsg struct{}

func gateDismissed() tea.Msg { return GateDismissedMsg{} }

// Admin tab order mirrors the panel sections.
const (
	tabNotices = iota
	tabAbout
	tabArticles
	tabGallery
	tabCommittee
	tabSettings
	tabCount
)

var tabNames = [tabCount]string{"NOTICES", "ABOUT", "ARTICLES", "GALLERY", "COMMITTEE", "SETTINGS"}

// AdminPageModel is the password-gated customisation panel. While the
// session is locked only the password prompt is shown; once unlocked
// the panel offers one tab per collection plus settings.
type AdminPageModel struct {
	width   int
	height  int
	styles  Styles
	site    *content.Site
	session *admin.Session

	gateInput textinput.Model
	gateErr   string

	tab     int
	editing bool // typing into the active tab's form
	focus   int  // field index within the form
	sel     int  // item selection within the active tab's list
	status  string
	isError bool

	noticeText textinput.Model

	aboutImage textinput.Model
	aboutText  textarea.Model

	artTitle   textinput.Model
	artAuthor  textinput.Model
	artUpload  textinput.Model
	artURL     textinput.Model
	artContent textarea.Model

	galUpload  textinput.Model
	galURL     textinput.Model
	galCaption textinput.Model

	comName    textinput.Model
	comUpload  textinput.Model
	comURL     textinput.Model
	comDesig   textinput.Model
	comPos     textinput.Model

	pwCurrent textinput.Model
	pwNew     textinput.Model
	pwConfirm textinput.Model
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newFieldInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 300
	return in
}

// NewAdminPageModel creates the panel over the shared collections and
// session.
func NewAdminPageModel(styles Styles, site *content.Site, session *admin.Session) AdminPageModel {
	aboutText := textarea.New()
	aboutText.Placeholder = "About the club..."
	artContent := textarea.New()
	artContent.Placeholder = "Article body (markdown supported)..."

	return AdminPageModel{
		styles:  styles,
		site:    site,
		session: session,

		gateInput: newPasswordInput("Admin password"),

		noticeText: newFieldInput("New notice text"),

		aboutImage: newFieldInput("Image URL or local file path"),
		aboutText:  aboutText,

		artTitle:   newFieldInput("Title"),
		artAuthor:  newFieldInput("Author"),
		artUpload:  newFieldInput("Local image file to upload"),
		artURL:     newFieldInput("Or an image URL"),
		artContent: artContent,

		galUpload:  newFieldInput("Local image file to upload"),
		galURL:     newFieldInput("Or an image URL"),
		galCaption: newFieldInput("Caption"),

		comName:   newFieldInput("Member name"),
		comUpload: newFieldInput("Local image file to upload"),
		comURL:    newFieldInput("Or an image URL"),
		comDesig:  newFieldInput("Designation"),
		comPos:    newFieldInput("Position (1 = first)"),

		pwCurrent: newPasswordInput("Current password"),
		pwNew:     newPasswordInput("New password"),
		pwConfirm: newPasswordInput("Confirm new password"),
	}
}

// Reset locks the session and clears all transient panel state; called
// every time the admin view is mounted.
func (m *AdminPageModel) Reset() {
	m.session.Lock()
	m.gateInput.SetValue("")
	m.gateInput.Focus()
	m.gateErr = ""
	m.tab = tabNotices
	m.editing = false
	m.focus = 0
	m.sel = 0
	m.status = ""
	m.isError = false
	for tab := 0; tab < tabCount; tab++ {
		for _, f := range m.fields(tab) {
			f.reset()
		}
	}
}

// Capturing reports whether plain keys belong to the panel rather than
// global navigation. The gate and any open form capture everything.
func (m AdminPageModel) Capturing() bool {
	return !m.session.Unlocked() || m.editing
}

// Update drives the gate, tab switching, item deletion and the forms.
func (m AdminPageModel) Update(msg tea.Msg) (AdminPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.session.Unlocked() {
		return m.updateGate(key)
	}
	if m.editing {
		return m.updateForm(key)
	}
	return m.updateBrowse(key)
}

func (m AdminPageModel) updateGate(key tea.KeyMsg) (AdminPageModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		// The locked gate must never trap the user in the admin view.
		return m, gateDismissed
	case "enter":
		if err := m.session.Login(m.gateInput.Value()); err != nil {
			m.gateErr = err.Error()
			m.gateInput.SetValue("")
			return m, nil
		}
		m.gateErr = ""
		m.gateInput.SetValue("")
		m.gateInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.gateInput, cmd = m.gateInput.Update(key)
	return m, cmd
}

func (m AdminPageModel) updateBrowse(key tea.KeyMsg) (AdminPageModel, tea.Cmd) {
	switch key.String() {
	case "left":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.sel = 0
		m.status = ""
	case "right":
		m.tab = (m.tab + 1) % tabCount
		m.sel = 0
		m.status = ""
	case "up", "k":
		if m.sel > 0 {
			m.sel--
		}
	case "down", "j":
		if m.sel < m.itemCount()-1 {
			m.sel++
		}
	case "d":
		return m.deleteSelected()
	case "enter", "e", "i":
		m.editing = true
		m.focus = 0
		m.focusField()
	}
	return m, nil
}

func (m AdminPageModel) updateForm(key tea.KeyMsg) (AdminPageModel, tea.Cmd) {
	fields := m.fields(m.tab)
	switch key.String() {
	case "esc":
		m.editing = false
		m.blurFields()
		return m, nil
	case "tab":
		m.focus = (m.focus + 1) % len(fields)
		m.focusField()
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + len(fields) - 1) % len(fields)
		m.focusField()
		return m, nil
	case "enter":
		// Textareas keep enter for line breaks; submit from any
		// single-line field.
		if !fields[m.focus].multiline {
			return m.submit()
		}
	}
	cmd := fields[m.focus].update(key)
	return m, cmd
}

// formField wraps a textinput or textarea behind one surface so the
// form loop stays a flat index walk.
type formField struct {
	input     *textinput.Model
	area      *textarea.Model
	multiline bool
}

func (f formField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multiline {
		*f.area, cmd = f.area.Update(msg)
	} else {
		*f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f formField) focus() {
	if f.multiline {
		f.area.Focus()
	} else {
		f.input.Focus()
	}
}

func (f formField) blur() {
	if f.multiline {
		f.area.Blur()
	} else {
		f.input.Blur()
	}
}

func (f formField) reset() {
	if f.multiline {
		f.area.SetValue("")
	} else {
		f.input.SetValue("")
	}
	f.blur()
}

func field(in *textinput.Model) formField { return formField{input: in} }
func area(ta *textarea.Model) formField   { return formField{area: ta, multiline: true} }

func (m *AdminPageModel) fields(tab int) []formField {
	switch tab {
	case tabNotices:
		return []formField{field(&m.noticeText)}
	case tabAbout:
		return []formField{field(&m.aboutImage), area(&m.aboutText)}
	case tabArticles:
		return []formField{field(&m.artTitle), field(&m.artAuthor), field(&m.artUpload), field(&m.artURL), area(&m.artContent)}
	case tabGallery:
		return []formField{field(&m.galUpload), field(&m.galURL), field(&m.galCaption)}
	case tabCommittee:
		return []formField{field(&m.comName), field(&m.comUpload), field(&m.comURL), field(&m.comDesig), field(&m.comPos)}
	default:
		return []formField{field(&m.pwCurrent), field(&m.pwNew), field(&m.pwConfirm)}
	}
}

func (m *AdminPageModel) focusField() {
	for i, f := range m.fields(m.tab) {
		if i == m.focus {
			f.focus()
		} else {
			f.blur()
		}
	}
}

func (m *AdminPageModel) blurFields() {
	for _, f := range m.fields(m.tab) {
		f.blur()
	}
}

func (m *AdminPageModel) clearForm() {
	for _, f := range m.fields(m.tab) {
		f.reset()
	}
	m.editing = false
	m.focus = 0
}

func (m *AdminPageModel) itemCount() int {
	switch m.tab {
	case tabNotices:
		return len(m.site.Notices.All())
	case tabArticles:
		return len(m.site.Articles.Sorted())
	case tabGallery:
		return len(m.site.Gallery.Sorted())
	case tabCommittee:
		return len(m.site.Committee.Sorted())
	}
	return 0
}

func (m AdminPageModel) deleteSelected() (AdminPageModel, tea.Cmd) {
	switch m.tab {
	case tabNotices:
		items := m.site.Notices.All()
		if m.sel >= len(items) {
			return m, nil
		}
		m.site.Notices.Remove(items[m.sel].ID)
	case tabArticles:
		items := m.site.Articles.Sorted()
		if m.sel >= len(items) {
			return m, nil
		}
		m.site.Articles.Remove(items[m.sel].ID)
	case tabGallery:
		items := m.site.Gallery.Sorted()
		if m.sel >= len(items) {
			return m, nil
		}
		m.site.Gallery.Remove(items[m.sel].ID)
	case tabCommittee:
		items := m.site.Committee.Sorted()
		if m.sel >= len(items) {
			return m, nil
		}
		m.site.Committee.Remove(items[m.sel].ID)
	default:
		return m, nil
	}
	if m.sel >= m.itemCount() && m.sel > 0 {
		m.sel--
	}
	m.setStatus("Deleted.", false)
	return m, contentChanged
}

// resolveImage combines a local upload path and a URL field the way
// the forms expect: an upload always wins over the URL.
func (m *AdminPageModel) resolveImage(uploadPath, url string) (string, bool) {
	uploadPath = strings.TrimSpace(uploadPath)
	if uploadPath != "" {
		inline, err := content.EncodeImageFile(uploadPath)
		if err != nil {
			m.setStatus(fmt.Sprintf("Could not read image %q: %v", uploadPath, err), true)
			return "", false
		}
		return inline, true
	}
	return content.ResolveImage("", strings.TrimSpace(url)), true
}

func (m AdminPageModel) submit() (AdminPageModel, tea.Cmd) {
	switch m.tab {
	case tabNotices:
		if _, ok := m.site.Notices.Add(strings.TrimSpace(m.noticeText.Value())); !ok {
			m.setStatus("Notice text cannot be empty.", true)
			return m, nil
		}
		m.clearForm()
		m.setStatus("Notice added.", false)
		return m, contentChanged

	case tabAbout:
		// A single field accepts either a local file or a URL; a path
		// that exists on disk is encoded inline, anything else passes
		// through as a URL.
		image := strings.TrimSpace(m.aboutImage.Value())
		if image != "" {
			if _, err := os.Stat(image); err == nil {
				inline, err := content.EncodeImageFile(image)
				if err != nil {
					m.setStatus(fmt.Sprintf("Could not read image %q: %v", image, err), true)
					return m, nil
				}
				image = inline
			}
		}
		current := m.site.About.Get()
		if image == "" {
			image = current.Image
		}
		text := strings.TrimSpace(m.aboutText.Value())
		if text == "" {
			text = current.Text
		}
		m.site.About.Replace(content.AboutData{Image: image, Text: text})
		m.clearForm()
		m.setStatus("About section updated.", false)
		return m, contentChanged

	case tabArticles:
		image, ok := m.resolveImage(m.artUpload.Value(), m.artURL.Value())
		if !ok {
			return m, nil
		}
		_, err := m.site.Articles.Publish(
			strings.TrimSpace(m.artTitle.Value()),
			strings.TrimSpace(m.artAuthor.Value()),
			strings.TrimSpace(m.artContent.Value()),
			image,
		)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.clearForm()
		m.setStatus("Article published.", false)
		return m, contentChanged

	case tabGallery:
		image, ok := m.resolveImage(m.galUpload.Value(), m.galURL.Value())
		if !ok {
			return m, nil
		}
		_, err := m.site.Gallery.AddPost(image, strings.TrimSpace(m.galCaption.Value()))
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.clearForm()
		m.setStatus("Gallery post added.", false)
		return m, contentChanged

	case tabCommittee:
		image, ok := m.resolveImage(m.comUpload.Value(), m.comURL.Value())
		if !ok {
			return m, nil
		}
		_, err := m.site.Committee.AddMember(
			strings.TrimSpace(m.comName.Value()),
			image,
			strings.TrimSpace(m.comDesig.Value()),
			strings.TrimSpace(m.comPos.Value()),
		)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.clearForm()
		m.setStatus("Member added.", false)
		return m, contentChanged

	default: // settings
		err := m.session.ChangePassword(m.pwCurrent.Value(), m.pwNew.Value(), m.pwConfirm.Value())
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.clearForm()
		m.setStatus(admin.MsgPasswordChanged, false)
		return m, nil
	}
}

func (m *AdminPageModel) setStatus(text string, isError bool) {
	m.status = text
	m.isError = isError
}

// View renders the gate or the active tab.
func (m AdminPageModel) View() string {
	if !m.session.Unlocked() {
		return m.renderGate()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderTab())
	b.WriteString("\n")
	if m.status != "" {
		style := m.styles.Success
		if m.isError {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	if m.editing {
		b.WriteString(m.styles.Muted.Render("tab: next field • enter: save • esc: cancel"))
	} else {
		b.WriteString(m.styles.Muted.Render("←/→: section • j/k: select • d: delete • enter: edit • h: back to home"))
	}
	return b.String()
}

func (m AdminPageModel) renderGate() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Admin Access"))
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Render("Enter the admin password to customise the site.") + "\n\n")
	b.WriteString(m.gateInput.View() + "\n")
	if m.gateErr != "" {
		b.WriteString(m.styles.Error.Render(m.gateErr) + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: unlock • esc: back to home"))
	return b.String()
}

func (m AdminPageModel) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AdminPageModel) renderTab() string {
	var b strings.Builder
	labels := m.fieldLabels()
	fields := m.fields(m.tab)
	for i, f := range fields {
		label := labels[i]
		if m.editing && i == m.focus {
			label = m.styles.Bold.Render(label)
		} else {
			label = m.styles.FormLabel.Render(label)
		}
		b.WriteString(label + "\n")
		if f.multiline {
			b.WriteString(f.area.View() + "\n")
		} else {
			b.WriteString(f.input.View() + "\n")
		}
	}
	if list := m.renderItems(); list != "" {
		b.WriteString("\n" + list)
	}
	return b.String()
}

func (m *AdminPageModel) fieldLabels() []string {
	switch m.tab {
	case tabNotices:
		return []string{"Notice"}
	case tabAbout:
		return []string{"Image", "About Text"}
	case tabArticles:
		return []string{"Title", "Author", "Upload Image", "Image URL", "Content"}
	case tabGallery:
		return []string{"Upload Image", "Image URL", "Caption"}
	case tabCommittee:
		return []string{"Name", "Upload Image", "Image URL", "Designation", "Position"}
	default:
		return []string{"Current Password", "New Password", "Confirm New Password"}
	}
}

func (m AdminPageModel) renderItems() string {
	var lines []string
	switch m.tab {
	case tabNotices:
		for _, n := range m.site.Notices.All() {
			lines = append(lines, truncate(n.Text, 70))
		}
	case tabArticles:
		for _, a := range m.site.Articles.Sorted() {
			lines = append(lines, fmt.Sprintf("%s by %s (%s)", a.Title, a.Author, a.Date))
		}
	case tabGallery:
		for _, it := range m.site.Gallery.Sorted() {
			lines = append(lines, fmt.Sprintf("%s %s", it.Caption, m.styles.Muted.Render(imageLabel(it.Image))))
		}
	case tabCommittee:
		for _, c := range m.site.Committee.Sorted() {
			lines = append(lines, fmt.Sprintf("%d. %s, %s", c.Position, c.Name, c.Designation))
		}
	default:
		return ""
	}
	if len(lines) == 0 {
		return m.styles.Muted.Render("Nothing here yet.")
	}

	var b strings.Builder
	for i, line := range lines {
		marker := "  "
		if i == m.sel && !m.editing {
			marker = m.styles.Bold.Render("> ")
		}
		b.WriteString(marker + m.styles.Body.Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetSize updates the layout.
func (m *AdminPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	for _, in := range []*textinput.Model{
		&m.gateInput, &m.noticeText, &m.aboutImage,
		&m.artTitle, &m.artAuthor, &m.artUpload, &m.artURL,
		&m.galUpload, &m.galURL, &m.galCaption,
		&m.comName, &m.comUpload, &m.comURL, &m.comDesig, &m.comPos,
		&m.pwCurrent, &m.pwNew, &m.pwConfirm,
	} {
		in.Width = min(60, w-4)
	}
	m.aboutText.SetWidth(min(76, w-4))
	m.artContent.SetWidth(min(76, w-4))
}
