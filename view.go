package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-timepick/dialogs"
)

func (m *model) modeLabel() string {
	switch m.activeDialog.(type) {
	case *dialogs.Help:
		return "HELP"
	case *dialogs.Save:
		return "SAVE"
	}
	if m.focus == focusTime {
		return "TIME"
	}
	return "RANGE"
}

func (m *model) historyView() string {
	lines := []string{historyTitleStyle.Render(fmt.Sprintf("History (last %d)", m.cfg.History))}
	entries := m.history.Entries()
	if len(entries) == 0 {
		lines = append(lines, historyEmptyStyle.Render("no commits yet"))
	}
	for i := len(entries) - 1; i >= 0; i-- {
		lines = append(lines, historyRowStyle.Render(entries[i].String()))
	}
	return historyArea.Render(strings.Join(lines, "\n"))
}

// footerView renders the 2-line footer. width is the usable content width.
func (m *model) footerView(width int) string {
	st := footerState{
		Mode:      m.modeLabel(),
		Value:     m.focusedValue(),
		Format:    m.cfg.Format,
		PanelOpen: m.panelOpen(),
		Commits:   m.history.Total(),
		Legend:    "(f1 help · tab next field · ctrl+y copy · ctrl+s save · ctrl+q quit)",
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.dialogOpen() {
		return dialogs.Place(m.activeDialog, m.terminalWidth, m.terminalHeight)
	}

	fields := fieldsArea.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("sftime"),
		"",
		m.timeField.View(),
		"",
		m.rangeField.View(),
	))
	body := lipgloss.JoinHorizontal(lipgloss.Top, fields, m.historyView())

	contentW := m.terminalWidth - appstyle.GetHorizontalFrameSize()
	if contentW <= 0 {
		contentW = lipgloss.Width(body)
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(contentW)))
}
