package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type footerState struct {
	Mode  string
	Value string

	Format    string
	PanelOpen bool

	Commits int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	ValueFG    lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color(accentFGColor),
		ModePillFG: lipgloss.Color("#000000"),
		ValueFG:    lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// renderFooter draws the two footer lines into exactly width cells each.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	if st.Legend == "" {
		st.Legend = "(f1 help · tab next field · ctrl+q quit)"
	}
	if st.Commits < 0 {
		st.Commits = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	gapW := 1

	rightPlain := truncatePlain(fmt.Sprintf(" Commits %d", st.Commits), width)
	rightW := runewidth.StringWidth(rightPlain)
	leftW := max(0, width-rightW)
	if leftW < 2*gapW+1 {
		return applyBar(padRightPlain("", leftW)+rightPlain, styles.BarBG, styles.TextFG)
	}

	statePlain := stateLabel(st)
	stateColW := min(runewidth.StringWidth(statePlain), max(0, leftW/2))

	modeColW := min(runewidth.StringWidth(st.Mode)+2, max(0, leftW-stateColW-2*gapW))
	valueColW := max(0, leftW-modeColW-stateColW-2*gapW)

	modeSeg := renderModeSegment(modeColW, st, styles)
	valueSeg := renderValueSegment(valueColW, st, styles)
	stateSeg := applyFG(padRightPlain(truncatePlain(statePlain, stateColW), stateColW), styles.DimFG, styles.TextFG)

	left := modeSeg + strings.Repeat(" ", gapW) + valueSeg + strings.Repeat(" ", gapW) + stateSeg
	leftWActual := modeColW + valueColW + stateColW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runewidth.StringWidth(legendPlain)
	leftW := max(0, width-legendW)

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+st.Mode+" ", colW)
	pad := strings.Repeat(" ", colW-runewidth.StringWidth(pillPlain))

	pill := colorSeq(styles.ModePillBG, true) + colorSeq(styles.ModePillFG, false) + pillPlain
	pill += colorSeq(styles.BarBG, true) + colorSeq(styles.TextFG, false) + pad
	return pill
}

func renderValueSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	value := strings.TrimSpace(st.Value)
	if value == "" {
		value = "(no value)"
	}
	plain := padRightPlain(truncatePlain("▸ "+value, colW), colW)
	return applyFG(plain, styles.ValueFG, styles.TextFG)
}

func stateLabel(st footerState) string {
	panel := "closed"
	if st.PanelOpen {
		panel = "open"
	}
	return fmt.Sprintf("[FORMAT: %s] · [PANEL: %s]", st.Format, panel)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return colorSeq(bg, true) + colorSeq(baseFG, false) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return colorSeq(fg, false) + s + colorSeq(resetFG, false)
}

// colorSeq renders c for the detected terminal profile; an empty color
// resets to the terminal default.
func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

// truncatePlain cuts s to at most w terminal cells, never splitting a wide rune.
func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}
