package app

import "github.com/charmbracelet/glamour"

func (m *Model) togglePreview() {
	m.previewOpen = !m.previewOpen
	if m.previewOpen {
		m.renderPreview()
		m.status = "preview on"
		return
	}
	m.status = "preview off"
}

// renderPreview renders the draft content as markdown into the preview
// viewport. Render failures fall back to the raw text.
func (m *Model) renderPreview() {
	text := m.content.Value()
	if m.store.Active() == nil {
		m.preview.SetContent(dimStyle.Render("No note selected."))
		return
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.editorWidth()),
	)
	if err != nil {
		m.preview.SetContent(text)
		return
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		m.preview.SetContent(text)
		return
	}
	m.preview.SetContent(rendered)
}
