package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"sourcehub/internal/catalog"
	"sourcehub/internal/source"
)

type pickerKind int

const (
	pickCategory pickerKind = iota
	pickTag
	pickSection
)

func (k pickerKind) String() string {
	switch k {
	case pickCategory:
		return "Categories"
	case pickTag:
		return "Tags"
	default:
		return "Sections"
	}
}

type option struct {
	value string
	label string
}

// picker is the filter bar for one facet. Options are captured when it opens
// so the cursor stays put while toggles change the view.
type picker struct {
	kind    pickerKind
	options []option
	cursor  int
}

func newPicker(kind pickerKind, s *catalog.Session) picker {
	p := picker{kind: kind}
	switch kind {
	case pickCategory:
		for _, info := range source.Categories() {
			p.options = append(p.options, option{value: string(info.Value), label: info.Label})
		}
	case pickTag:
		for _, tag := range s.AvailableTags() {
			p.options = append(p.options, option{value: tag, label: tag})
		}
	case pickSection:
		for _, info := range source.Sections() {
			p.options = append(p.options, option{value: string(info.Value), label: info.Label})
		}
	}
	return p
}

func (p *picker) move(delta int) {
	next := p.cursor + delta
	if next >= 0 && next < len(p.options) {
		p.cursor = next
	}
}

// toggle flips the option at idx in the session's filters.
func (p *picker) toggle(s *catalog.Session, idx int) bool {
	if idx < 0 || idx >= len(p.options) {
		return false
	}
	value := p.options[idx].value
	switch p.kind {
	case pickCategory:
		s.ToggleCategory(source.Category(value))
	case pickTag:
		s.ToggleTag(value)
	case pickSection:
		s.ToggleSection(source.Section(value))
	}
	return true
}

func (p picker) selected(filters source.FilterState, value string) bool {
	switch p.kind {
	case pickCategory:
		return slices.Contains(filters.Categories, source.Category(value))
	case pickTag:
		return slices.Contains(filters.Tags, value)
	default:
		return slices.Contains(filters.Sections, source.Section(value))
	}
}

func (p picker) render(filters source.FilterState, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	row := tabSeparatorStyle.Render(p.kind.String() + ": ")
	if len(p.options) == 0 {
		row += emptyStyle.Render("none in this collection")
	}
	for i, opt := range p.options {
		style := tabInactiveStyle
		if p.selected(filters, opt.value) {
			style = tabActiveStyle
		}
		label := opt.label
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if i == p.cursor {
			label = "[" + label + "]"
		}
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += style.Render(label)
		if lipgloss.Width(candidate) > width && i > p.cursor {
			break
		}
		row = candidate
	}
	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row)
}
