package controller

import (
	"context"
	"strings"

	"minshuku/domain"
)

// DetailOpener runs the detail dialog of the row id and reports whether it was accepted.
type DetailOpener func(id int) bool

// FilterItems keeps the items whose label contains text, ignoring case.
func FilterItems(items []domain.ListItem, text string) []domain.ListItem {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]domain.ListItem, 0, len(items))
	for _, it := range items {
		if needle == "" || strings.Contains(strings.ToLower(it.Label), needle) {
			out = append(out, it)
		}
	}
	return out
}

// listCore holds the rows of a list view and the filter applied to them.
type listCore struct {
	ctx    context.Context
	view   ListView
	items  []domain.ListItem
	filter string
	load   func() ([]domain.ListItem, error)
}

// Refresh reloads every row and reapplies the current filter.
func (l *listCore) Refresh() {
	items, err := l.load()
	if err != nil {
		report(l.view, "Failed to load the list", err)
		return
	}
	l.items = items
	l.render()
}

func (l *listCore) SetFilter(text string) {
	l.filter = text
	l.render()
}

// Items returns the rows currently shown.
func (l *listCore) Items() []domain.ListItem {
	return FilterItems(l.items, l.filter)
}

func (l *listCore) render() {
	l.view.SetItems(l.Items())
}

func (l *listCore) openDetail(open DetailOpener, id int) {
	if open == nil || id <= 0 {
		return
	}
	if open(id) {
		l.Refresh()
	}
}

type HostListController struct {
	listCore
	uc   domain.HostUseCase
	open DetailOpener
}

func NewHostListController(ctx context.Context, view ListView, uc domain.HostUseCase, open DetailOpener) *HostListController {
	c := &HostListController{uc: uc, open: open}
	c.listCore = listCore{ctx: ctx, view: view, load: c.loadItems}
	view.OnIntent(c.handle)
	c.Refresh()
	return c
}

func (c *HostListController) loadItems() ([]domain.ListItem, error) {
	hosts, err := c.uc.ListHosts(c.ctx, domain.OrderByName)
	if err != nil {
		return nil, err
	}
	items := make([]domain.ListItem, 0, len(*hosts))
	for i := range *hosts {
		h := &(*hosts)[i]
		items = append(items, domain.ListItem{ID: h.HostID, Label: h.DisplayLabel()})
	}
	return items, nil
}

func (c *HostListController) handle(e Event) {
	switch e.Intent {
	case IntentRefresh:
		c.Refresh()
	case IntentFilter:
		c.SetFilter(e.Text)
	case IntentAdd:
		c.add()
	case IntentDelete:
		c.delete(e.ID)
	case IntentOpenDetail:
		c.openDetail(c.open, e.ID)
	}
}

func (c *HostListController) add() {
	if _, err := c.uc.CreateHost(c.ctx, hostFromForm(c.view.FormData())); err != nil {
		report(c.view, "Failed to add host", err)
		return
	}
	c.view.ClearForm()
	c.Refresh()
}

func (c *HostListController) delete(id int) {
	if id <= 0 {
		return
	}
	if err := c.uc.DeleteHost(c.ctx, id); err != nil {
		report(c.view, "Failed to delete host", err)
	}
	c.Refresh()
}

type GuestListController struct {
	listCore
	uc   domain.GuestUseCase
	open DetailOpener
}

func NewGuestListController(ctx context.Context, view ListView, uc domain.GuestUseCase, open DetailOpener) *GuestListController {
	c := &GuestListController{uc: uc, open: open}
	c.listCore = listCore{ctx: ctx, view: view, load: c.loadItems}
	view.OnIntent(c.handle)
	c.Refresh()
	return c
}

func (c *GuestListController) loadItems() ([]domain.ListItem, error) {
	guests, err := c.uc.ListGuests(c.ctx, domain.OrderByName)
	if err != nil {
		return nil, err
	}
	items := make([]domain.ListItem, 0, len(*guests))
	for i := range *guests {
		g := &(*guests)[i]
		items = append(items, domain.ListItem{ID: g.GuestID, Label: g.DisplayLabel()})
	}
	return items, nil
}

func (c *GuestListController) handle(e Event) {
	switch e.Intent {
	case IntentRefresh:
		c.Refresh()
	case IntentFilter:
		c.SetFilter(e.Text)
	case IntentAdd:
		c.add()
	case IntentDelete:
		c.delete(e.ID)
	case IntentOpenDetail:
		c.openDetail(c.open, e.ID)
	}
}

func (c *GuestListController) add() {
	guest, err := guestFromForm(c.view.FormData())
	if err == nil {
		_, err = c.uc.CreateGuest(c.ctx, guest)
	}
	if err != nil {
		report(c.view, "Failed to add guest", err)
		return
	}
	c.view.ClearForm()
	c.Refresh()
}

func (c *GuestListController) delete(id int) {
	if id <= 0 {
		return
	}
	if err := c.uc.DeleteGuest(c.ctx, id); err != nil {
		report(c.view, "Failed to delete guest", err)
	}
	c.Refresh()
}

type HouseListController struct {
	listCore
	view   HouseListView
	houses domain.HouseUseCase
	hosts  domain.HostUseCase
	open   DetailOpener
}

func NewHouseListController(ctx context.Context, view HouseListView, houses domain.HouseUseCase, hosts domain.HostUseCase, open DetailOpener) *HouseListController {
	c := &HouseListController{view: view, houses: houses, hosts: hosts, open: open}
	c.listCore = listCore{ctx: ctx, view: view, load: c.loadItems}
	view.OnIntent(c.handle)
	c.Refresh()
	return c
}

// loadItems also refreshes the host choices, which may have changed in the host tab.
func (c *HouseListController) loadItems() ([]domain.ListItem, error) {
	hostItems, err := hostChoices(c.ctx, c.hosts)
	if err != nil {
		return nil, err
	}
	c.view.SetHosts(hostItems)

	houses, err := c.houses.ListHouses(c.ctx, domain.OrderByName)
	if err != nil {
		return nil, err
	}
	items := make([]domain.ListItem, 0, len(*houses))
	for i := range *houses {
		h := &(*houses)[i]
		items = append(items, domain.ListItem{ID: h.HouseID, Label: h.DisplayLabel()})
	}
	return items, nil
}

func (c *HouseListController) handle(e Event) {
	switch e.Intent {
	case IntentRefresh:
		c.Refresh()
	case IntentFilter:
		c.SetFilter(e.Text)
	case IntentAdd:
		c.add()
	case IntentDelete:
		c.delete(e.ID)
	case IntentOpenDetail:
		c.openDetail(c.open, e.ID)
	}
}

func (c *HouseListController) add() {
	house, err := houseFromForm(c.view.FormData())
	if err == nil {
		_, err = c.houses.CreateHouse(c.ctx, house)
	}
	if err != nil {
		report(c.view, "Failed to add house", err)
		return
	}
	c.view.ClearForm()
	c.Refresh()
}

func (c *HouseListController) delete(id int) {
	if id <= 0 {
		return
	}
	if err := c.houses.DeleteHouse(c.ctx, id); err != nil {
		report(c.view, "Failed to delete house", err)
	}
	c.Refresh()
}

func hostChoices(ctx context.Context, uc domain.HostUseCase) ([]domain.ListItem, error) {
	hosts, err := uc.ListHosts(ctx, domain.OrderByName)
	if err != nil {
		return nil, err
	}
	items := make([]domain.ListItem, 0, len(*hosts))
	for _, h := range *hosts {
		items = append(items, domain.ListItem{ID: h.HostID, Label: h.FullName})
	}
	return items, nil
}
