package menu

import (
	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// Button is a slot placed on every page of a screen.
type Button struct {
	Icon item.Stack
	// Action is returned when OnClick is nil.
	Action  gui.ClickAction
	OnClick func(ctx gui.ClickContext) gui.ClickAction
	// Visible decides per page whether the button is shown; nil means always.
	Visible func(page, pages int) bool
}

func (b *Button) Click(ctx gui.ClickContext) gui.ClickAction {
	if b.OnClick != nil {
		return b.OnClick(ctx)
	}
	return b.Action
}

func (b *Button) visibleOn(page, pages int) bool {
	return b.Visible == nil || b.Visible(page, pages)
}

// NextPageButton pages forwards and hides itself on the last page.
func NextPageButton(icon item.Stack) *Button {
	return &Button{
		Icon:    icon,
		Action:  gui.ActionPageForwards,
		Visible: func(page, pages int) bool { return page < pages-1 },
	}
}

// PreviousPageButton pages backwards and hides itself on the first page.
func PreviousPageButton(icon item.Stack) *Button {
	return &Button{
		Icon:    icon,
		Action:  gui.ActionPageBackwards,
		Visible: func(page, _ int) bool { return page > 0 },
	}
}

// Screen is a paged layout; every page is its own top inventory.
type Screen struct {
	title    string
	pages    []*inventory.Inventory
	editable *gui.Section
	filters  *gui.EditFilters
	buttons  map[int]*Button
}

// NewScreen creates a screen of rows x 9 slots with the given number of pages.
func NewScreen(title string, rows, pages int) *Screen {
	pages = max(pages, 1)
	s := &Screen{
		title:   title,
		pages:   make([]*inventory.Inventory, pages),
		buttons: make(map[int]*Button),
	}
	for i := range s.pages {
		s.pages[i] = inventory.New(inventory.GenericMenu(rows), title)
	}
	return s
}

// WithEditableSection opens the section's slots for free item placement.
func (s *Screen) WithEditableSection(sec *gui.Section) *Screen {
	s.editable = sec
	return s
}

// WithEditFilters restricts what may be placed in the editable section.
func (s *Screen) WithEditFilters(f *gui.EditFilters) *Screen {
	s.filters = f
	return s
}

// SetButton places b at slot on every page.
func (s *Screen) SetButton(slot int, b *Button) *Screen {
	s.buttons[slot] = b
	return s
}

func (s *Screen) Title() string { return s.title }

// Pages returns the number of pages.
func (s *Screen) Pages() int { return len(s.pages) }

// Page returns the inventory of page i, or nil.
func (s *Screen) Page(i int) *inventory.Inventory {
	if i < 0 || i >= len(s.pages) {
		return nil
	}
	return s.pages[i]
}

// PageIndex returns which page inv is, or -1.
func (s *Screen) PageIndex(inv *inventory.Inventory) int {
	for i, p := range s.pages {
		if p == inv {
			return i
		}
	}
	return -1
}

func (s *Screen) EditableSection() gui.Region {
	if s.editable == nil {
		return nil
	}
	return s.editable
}

func (s *Screen) EditFilters() gui.FilterPolicy {
	if s.filters == nil {
		return nil
	}
	return s.filters
}

func (s *Screen) ContainsInventory(inv *inventory.Inventory) bool {
	return s.PageIndex(inv) >= 0
}

func (s *Screen) ButtonAt(page *inventory.Inventory, slot int) gui.Button {
	if s.PageIndex(page) < 0 {
		return nil
	}
	b, ok := s.buttons[slot]
	if !ok {
		return nil
	}
	return b
}

func (s *Screen) IsButtonVisible(page *inventory.Inventory, slot int) bool {
	idx := s.PageIndex(page)
	b, ok := s.buttons[slot]
	if idx < 0 || !ok {
		return false
	}
	return b.visibleOn(idx, len(s.pages))
}

// UpdateInventories renders button icons into every page. Editable slots
// are left alone.
func (s *Screen) UpdateInventories() {
	for idx, page := range s.pages {
		for slot, b := range s.buttons {
			if b.visibleOn(idx, len(s.pages)) {
				page.SetItem(slot, b.Icon)
			} else {
				page.SetItem(slot, item.Empty())
			}
		}
	}
}
