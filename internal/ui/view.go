package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/custom-picker/internal/logging"
	"github.com/atomicstack/custom-picker/internal/logging/events"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled by the screen; use ANSI-aware truncation
}

// describer is implemented by screens that can narrate their focused row.
type describer interface {
	Describe() string
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := make([]styledLine, 0, 16)
	if header := m.header(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if top := m.stack.Top(); top != nil {
		for _, line := range strings.Split(top.View(m.width, m.bodyHeight()), "\n") {
			lines = append(lines, styledLine{text: line, raw: true})
		}
	}
	lines = append(lines, m.trailer()...)
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// trailer holds everything below the screen body.
func (m *Model) trailer() []styledLine {
	var lines []styledLine
	if m.verbose {
		if d, ok := m.stack.Top().(describer); ok {
			if text := d.Describe(); text != "" {
				lines = append(lines, styledLine{text: text, style: styles.Caption})
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	if m.showFooter {
		if footer := m.footer(); footer != "" {
			lines = append(lines, styledLine{})
			for _, line := range strings.Split(footer, "\n") {
				lines = append(lines, styledLine{text: line, raw: true})
			}
		}
	}
	return lines
}

func (m *Model) header() string {
	titles := m.stack.Titles()
	segments := make([]string, 0, len(titles))
	for _, title := range titles {
		if title = strings.TrimSpace(title); title != "" {
			segments = append(segments, title)
		}
	}
	return strings.Join(segments, headerSeparator)
}

func (m *Model) footer() string {
	keys := footerKeys{global: m.keys}
	if km, ok := m.stack.Top().(help.KeyMap); ok {
		keys.screen = km
	}
	return m.help.View(keys)
}

// bodyHeight is the number of rows left for the visible screen, or 0 when
// the height is unknown.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := len(m.trailer())
	if m.header() != "" {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// SetInfo shows message for a few seconds.
func (m *Model) SetInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) setError(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	logging.Error(err)
	events.Action.Error(err)
	m.errMsg = err.Error()
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
