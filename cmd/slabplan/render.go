package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	padStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	palette = []lipgloss.Color{"#98FB98", "#87CEEB", "#FFD700", "#FFA07A", "#DDA0DD", "#7FFFD4"}
)

const (
	padCell  = '~'
	freeCell = '.'
	maxRows  = 32
)

// renderer draws plans as text. Styles are applied only when styled is set,
// so output piped to a file stays plain.
type renderer struct {
	styled bool
}

func (r renderer) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r renderer) summary(p *plan) string {
	size := uint64(p.target.Size())
	used := uint64(p.used())

	backing := "mmap"
	if p.opts.wasm {
		backing = "wasm"
	}
	mode := "floating"
	if p.opts.exact {
		mode = "exact"
	}
	policy := "aligned"
	if p.opts.packed {
		policy = "packed"
	}

	return fmt.Sprintf("region %s (%s), used %s, free %s, offset %d, align %d, %s, %s",
		humanize.IBytes(size), backing, humanize.IBytes(used), humanize.IBytes(size-used),
		p.opts.offset, p.opts.align, mode, policy)
}

func (r renderer) table(p *plan, selected int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "type", "size", "align", "start", "end", "padded", "status")

	for i, e := range p.entries {
		row := []string{strconv.Itoa(i), e.name, strconv.FormatUint(uint64(e.layout.Size), 10), strconv.FormatUint(uint64(e.layout.Align), 10)}
		switch {
		case e.placed:
			row = append(row,
				strconv.FormatUint(uint64(e.record.StartOffset), 10),
				strconv.FormatUint(uint64(e.record.EndOffset), 10),
				strconv.FormatUint(uint64(e.record.EndOffsetPadded), 10),
				"ok")
		case i == p.failed:
			row = append(row, "-", "-", "-", errorKind(p.err))
		default:
			row = append(row, "-", "-", "-", "skipped")
		}
		t.Row(row...)
	}

	if r.styled {
		t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return selectedStyle
			case row == p.failed && col == 7:
				return errorStyle
			}
			return lipgloss.NewStyle()
		})
	}
	return t.String()
}

// mapColumns picks how many bytes fit on a byte map row of the given width.
func mapColumns(width int) int {
	if width <= 0 {
		return 32
	}
	cols := 8
	for _, c := range []int{16, 32, 64} {
		if width >= c+9 {
			cols = c
		}
	}
	return cols
}

// byteMap draws one cell per region byte: the entry letter for payload, '~'
// for padding, '.' for bytes no payload touched.
func (r renderer) byteMap(p *plan, cols, selected int) string {
	size := int(p.target.Size())
	shown := min(size, max(int(p.used())+cols, cols))
	shown = min(shown, maxRows*cols)

	owner := make([]int, shown)
	padding := make([]bool, shown)
	for i := range owner {
		owner[i] = -1
	}
	for i, e := range p.entries {
		if !e.placed {
			continue
		}
		for b := int(e.record.StartOffset); b < int(e.record.EndOffsetPadded) && b < shown; b++ {
			if b < int(e.record.EndOffset) {
				owner[b] = i
			} else if owner[b] < 0 {
				padding[b] = true
			}
		}
	}

	var sb strings.Builder
	for row := 0; row < shown; row += cols {
		fmt.Fprintf(&sb, "%06x  ", row)
		for b := row; b < min(row+cols, shown); b++ {
			sb.WriteString(r.cell(owner[b], padding[b], selected))
		}
		sb.WriteByte('\n')
	}
	if shown < size {
		sb.WriteString(r.render(helpStyle, fmt.Sprintf("... %s not shown", humanize.IBytes(uint64(size-shown)))))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r renderer) cell(owner int, padding bool, selected int) string {
	switch {
	case owner >= 0:
		c := string(rune('A' + owner%26))
		if owner == selected {
			return r.render(selectedStyle, c)
		}
		return r.render(lipgloss.NewStyle().Foreground(palette[owner%len(palette)]), c)
	case padding:
		return r.render(padStyle, string(padCell))
	}
	return r.render(padStyle, string(freeCell))
}
