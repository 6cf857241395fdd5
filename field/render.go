package field

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/shinyrainbow/thea5995property-sub000/internal/grapheme"
)

func (m Model) View() string {
	st := m.cfg.Style

	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(st.Prompt.Render(m.cfg.Prompt))
	}

	avail := 0
	if m.cfg.Width > 0 {
		avail = m.cfg.Width - grapheme.Width(m.cfg.Prompt)
		if avail < 1 {
			avail = 1
		}
	}

	clusters, widths := grapheme.SplitWidths(m.buf.Text())
	if len(clusters) == 0 && m.cfg.Placeholder != "" {
		sb.WriteString(m.renderPlaceholder(avail))
		return sb.String()
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	start, end := visibleWindow(widths, cursor, m.focused, avail)
	for i := start; i < end; i++ {
		style := st.Text
		if selOK && i >= sel.Start && i < sel.End {
			style = st.Selection
		}
		if m.focused && i == cursor {
			style = st.Cursor
		}
		sb.WriteString(style.Render(clusters[i]))
	}
	if m.focused && cursor == len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderPlaceholder(avail int) string {
	st := m.cfg.Style
	ph := m.cfg.Placeholder
	if avail > 0 && grapheme.Width(ph) > avail {
		ph = runewidth.Truncate(ph, avail, "…")
	}
	if !m.focused {
		return st.Placeholder.Render(ph)
	}
	clusters := grapheme.Split(ph)
	return st.Cursor.Render(clusters[0]) + st.Placeholder.Render(grapheme.Join(clusters[1:]))
}

// visibleWindow returns the cluster span [start, end) that fits avail cells
// while keeping the cursor cell on screen. avail <= 0 means unlimited.
func visibleWindow(widths []int, cursor int, focused bool, avail int) (int, int) {
	n := len(widths)
	if avail <= 0 {
		return 0, n
	}

	// The cursor past the end takes one cell of its own.
	used := 0
	if focused && cursor == n {
		used = 1
	}
	total := used
	for _, w := range widths {
		total += w
	}
	if total <= avail {
		return 0, n
	}

	// Grow leftwards from the cursor cluster, then fill to the right.
	start := min(cursor, n-1) + 1
	end := start
	for start > 0 && used+widths[start-1] <= avail {
		used += widths[start-1]
		start--
	}
	for end < n && used+widths[end] <= avail {
		used += widths[end]
		end++
	}
	return start, end
}
