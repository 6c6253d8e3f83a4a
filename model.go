package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-timepick/clipboard"
	"github.com/andareed/siftly-timepick/config"
	"github.com/andareed/siftly-timepick/dialogs"
	"github.com/andareed/siftly-timepick/logging"
	"github.com/andareed/siftly-timepick/tui"
)

type focusTarget int

const (
	focusTime focusTarget = iota
	focusRange
	focusCount
)

const (
	timeFieldID  = "time"
	rangeFieldID = "range"
)

type uiState struct {
	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int
}

type model struct {
	cfg  *config.Config
	keys Keymap

	timeField  *tui.Field
	rangeField *tui.RangeField
	focus      focusTarget

	history      history
	activeDialog dialogs.Dialog
	ui           uiState

	terminalWidth  int
	terminalHeight int
	ready          bool
}

func newModel(cfg *config.Config) *model {
	return &model{
		cfg:        cfg,
		keys:       Keys,
		timeField:  tui.NewField(timeFieldID, "Time", cfg.Props()),
		rangeField: tui.NewRangeField(rangeFieldID, "Range", cfg.RangeProps()),
		history:    newHistory(cfg.History),
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sftime: initialised (format %s, steps %s)", m.cfg.Format, m.cfg.PickerSteps())
	return m.focusField(focusTime)
}

// focusField moves focus to t, blurring whichever field held it.
func (m *model) focusField(t focusTarget) tea.Cmd {
	var blur tea.Cmd
	switch {
	case m.timeField.Focused():
		blur = m.timeField.Blur()
	case m.rangeField.Focused():
		blur = m.rangeField.Blur()
	}
	m.focus = t
	var focus tea.Cmd
	if t == focusTime {
		focus = m.timeField.Focus()
	} else {
		focus = m.rangeField.Focus()
	}
	return tea.Sequence(blur, focus)
}

func (m *model) panelOpen() bool {
	return m.timeField.IsOpen() || m.rangeField.IsOpen()
}

func (m *model) focusedValue() string {
	if m.focus == focusTime {
		return m.timeField.Value().String()
	}
	return m.rangeField.Value().String()
}

func (m *model) dialogOpen() bool {
	return m.activeDialog != nil && m.activeDialog.IsVisible()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case tui.ChangeMsg:
		logging.Debugf("sftime: %s committed %q (set=%t)", msg.ID, msg.Value, msg.Value.IsSet())
		m.history.add(msg.ID, msg.Value.String())
		return m, nil
	case tui.RangeChangeMsg:
		logging.Debugf("sftime: %s committed %v", msg.ID, msg.Value.Pair())
		m.history.add(msg.ID, msg.Value.String())
		return m, nil
	case tui.OpenMsg:
		logging.Debugf("sftime: %s opened (%s)", msg.ID, msg.Trigger)
		return m, nil
	case tui.CloseMsg:
		logging.Debugf("sftime: %s closed (%s)", msg.ID, msg.Trigger)
		return m, nil
	case tui.FocusMsg, tui.BlurMsg:
		return m, nil

	case dialogs.SaveConfirmedMsg:
		m.activeDialog = nil
		if err := SaveSelection(m, msg.Path); err != nil {
			logging.Errorf("sftime: save %s: %v", msg.Path, err)
			return m, m.startNotice(err.Error(), noticeError, noticeDuration)
		}
		logging.Infof("sftime: selection saved to %s", msg.Path)
		return m, m.startNotice("Saved to "+msg.Path, noticeSuccess, noticeDuration)
	case dialogs.SaveCanceledMsg:
		m.activeDialog = nil
		return m, nil
	}

	return m, m.forward(msg)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.dialogOpen() {
		d, cmd := m.activeDialog.Update(msg)
		if !d.IsVisible() {
			d = nil
		}
		m.activeDialog = d
		return m, cmd
	}
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// an open panel owns every key, tab included
	if !m.panelOpen() {
		switch {
		case key.Matches(msg, m.keys.NextField):
			return m, m.focusField((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.focusField((m.focus + focusCount - 1) % focusCount)
		case key.Matches(msg, m.keys.OpenHelp):
			m.activeDialog = dialogs.NewHelpDialog(
				dialogs.HelpSection{Title: "Global", Bindings: m.keys.Legend()},
				dialogs.HelpSection{Title: "Picker", Bindings: tui.DefaultKeyMap.Legend()},
			)
			return m, nil
		case key.Matches(msg, m.keys.Save):
			dir := filepath.Dir(m.cfg.SavePath)
			if dir == "." {
				dir = ""
			}
			d := dialogs.NewSaveDialog(filepath.Base(m.cfg.SavePath), dir)
			m.activeDialog = d
			return m, d.Init()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyFocused()
		}
	}

	return m, m.forward(msg)
}

// forward hands msg to the dialog, if one is up, or else to the focused field.
func (m *model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.dialogOpen():
		m.activeDialog, cmd = m.activeDialog.Update(msg)
	case m.focus == focusTime:
		_, cmd = m.timeField.Update(msg)
	default:
		_, cmd = m.rangeField.Update(msg)
	}
	return cmd
}

func (m *model) copyFocused() tea.Cmd {
	text := m.focusedValue()
	method, err := clipboard.Copy(text)
	switch {
	case errors.Is(err, clipboard.ErrEmpty):
		return m.startNotice("Nothing to copy", noticeWarn, noticeDuration)
	case err != nil:
		logging.Errorf("sftime: copy: %v", err)
		return m.startNotice(err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %s (%s)", text, method), noticeSuccess, noticeDuration)
}
