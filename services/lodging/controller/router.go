package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"minshuku/config"
	"minshuku/domain"
)

const (
	ModuleGuests = "guests"
	ModuleHouses = "houses"
)

var ErrUnknownModule = errors.New("unknown module")

// ModuleBuilder creates the top-level dialog of a module together with its controllers.
type ModuleBuilder func() Dialog

// Router maps module keys to their builders.
type Router struct {
	modules map[string]ModuleBuilder
}

func NewRouter() *Router {
	return &Router{modules: map[string]ModuleBuilder{}}
}

func (r *Router) Register(key string, build ModuleBuilder) {
	r.modules[key] = build
}

// OpenModule runs the module key modally and calls onClose once it is dismissed.
func (r *Router) OpenModule(key string, onClose func()) error {
	build, ok := r.modules[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownModule, key)
	}
	config.GetLogrusInstance().WithField("module", key).Debug("opening module")
	build().Exec()
	if onClose != nil {
		onClose()
	}
	return nil
}

// Modules lists the registered keys in sorted order.
func (r *Router) Modules() []string {
	keys := make([]string, 0, len(r.modules))
	for k := range r.modules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Toolkit creates the concrete views of a presentation layer.
type Toolkit interface {
	GuestList() ModuleListView
	GuestDetail() GuestDetailView
	HouseMenu() HouseMenuView
	HostDetail() HostDetailView
	HouseDetail() HouseDetailView
	RoomEditor() EditorView
	BathroomEditor() EditorView
	FamilyMemberEditor() EditorView
}

type UseCases struct {
	Hosts         domain.HostUseCase
	Houses        domain.HouseUseCase
	Guests        domain.GuestUseCase
	FamilyMembers domain.FamilyMemberUseCase
}

// RegisterLodgingModules wires the guest and house modules into r.
func RegisterLodgingModules(r *Router, ctx context.Context, uc UseCases, tk Toolkit) {
	r.Register(ModuleGuests, func() Dialog {
		view := tk.GuestList()
		openMember := OpenFamilyMemberEditor(tk.FamilyMemberEditor)
		NewGuestListController(ctx, view, uc.Guests, OpenGuestDetail(ctx, uc.Guests, uc.FamilyMembers, openMember, tk.GuestDetail))
		return view
	})
	r.Register(ModuleHouses, func() Dialog {
		view := tk.HouseMenu()
		editors := HouseEditors{
			Room:     OpenRoomEditor(tk.RoomEditor),
			Bathroom: OpenBathroomEditor(tk.BathroomEditor),
		}
		NewHouseMenuController(ctx, view, uc,
			OpenHostDetail(ctx, uc.Hosts, tk.HostDetail),
			OpenHouseDetail(ctx, uc.Houses, uc.Hosts, editors, tk.HouseDetail))
		return view
	})
}

// HomeController hides the home window while a module runs.
type HomeController struct {
	view   HomeView
	router *Router
}

func NewHomeController(view HomeView, router *Router) *HomeController {
	c := &HomeController{view: view, router: router}
	view.OnIntent(c.handle)
	return c
}

func (c *HomeController) handle(e Event) {
	if e.Intent != IntentOpenModule {
		return
	}
	c.view.Hide()
	if err := c.router.OpenModule(e.Text, c.view.Show); err != nil {
		c.view.Show()
		c.view.Notify(Notice{Severity: SeverityError, Title: "Error", Message: err.Error()})
	}
}

const (
	TabHosts = iota
	TabHouses
)

// HouseMenuController drives the host and house tabs of the house module.
type HouseMenuController struct {
	view   HouseMenuView
	Hosts  *HostListController
	Houses *HouseListController
}

func NewHouseMenuController(ctx context.Context, view HouseMenuView, uc UseCases, openHost, openHouse DetailOpener) *HouseMenuController {
	c := &HouseMenuController{view: view}
	c.Hosts = NewHostListController(ctx, view.HostTab(), uc.Hosts, openHost)
	c.Houses = NewHouseListController(ctx, view.HouseTab(), uc.Houses, uc.Hosts, openHouse)
	view.OnIntent(c.handle)
	return c
}

func (c *HouseMenuController) handle(e Event) {
	if e.Intent != IntentTabChanged {
		return
	}
	switch c.view.CurrentTab() {
	case TabHosts:
		c.Hosts.Refresh()
	case TabHouses:
		c.Houses.Refresh()
	}
}
