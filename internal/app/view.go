package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sidebarStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false)
)

const statusChrome = 2 // status line + hint line

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	if width <= 0 || height <= 0 {
		return
	}

	listWidth := width / 4
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > maxListWidth {
		listWidth = maxListWidth
	}
	if width-listWidth-1 < minEditorWidth {
		listWidth = width / 2
	}
	m.listWidth = listWidth

	editorWidth := m.editorWidth()
	contentHeight := m.bodyHeight() - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.filterInput.Width = listWidth - 4
	m.titleInput.Width = editorWidth - 2
	m.content.SetWidth(editorWidth)
	m.content.SetHeight(contentHeight)
	m.preview.Width = editorWidth
	m.preview.Height = contentHeight
	if m.previewOpen {
		m.renderPreview()
	}
}

func (m *Model) editorWidth() int {
	editor := m.width - m.listWidth - 1
	if editor < minEditorWidth {
		return minEditorWidth
	}
	return editor
}

func (m *Model) bodyHeight() int {
	body := m.height - statusChrome
	if body < minContentHeight {
		return minContentHeight
	}
	return body
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderEditor())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(), m.renderHints())
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.filterInput.View())
	b.WriteString("\n")

	visible := m.store.Visible()
	if len(visible) == 0 {
		if m.store.Len() == 0 {
			b.WriteString(dimStyle.Render("no notes"))
		} else {
			b.WriteString(dimStyle.Render("no matches"))
		}
	}
	maxRows := m.bodyHeight() - 1
	for i, note := range visible {
		if i >= maxRows {
			break
		}
		title := xansi.Truncate(displayTitle(note.Title), m.listWidth-3, "…")
		title = runewidth.FillRight(title, m.listWidth-3)
		if note.ID == m.store.ActiveID() {
			b.WriteString("> " + selectedStyle.Render(title))
		} else {
			b.WriteString("  " + title)
		}
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return sidebarStyle.
		Width(m.listWidth).
		Height(m.bodyHeight()).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderEditor() string {
	editorWidth := m.editorWidth()
	if m.store.Active() == nil {
		empty := dimStyle.Render("No note selected. ctrl+n creates one.")
		return lipgloss.NewStyle().
			Width(editorWidth).
			Height(m.bodyHeight()).
			Padding(0, 1).
			Render(empty)
	}

	separator := dimStyle.Render(strings.Repeat("─", editorWidth))
	body := m.content.View()
	if m.previewOpen {
		body = m.preview.View()
	}
	return lipgloss.NewStyle().
		Width(editorWidth).
		Height(m.bodyHeight()).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.titleInput.View(), separator, body))
}

func (m *Model) renderStatus() string {
	status := m.status
	if m.busy() {
		status = m.loader.View() + " " + status
	}
	return xansi.Truncate(status, m.width, "…")
}

func (m *Model) renderHints() string {
	hints := "tab focus  /: filter  ctrl+n new  ctrl+d delete  ctrl+r refresh  ctrl+p preview  ctrl+y copy  q quit"
	return dimStyle.Render(xansi.Truncate(hints, m.width, "…"))
}
