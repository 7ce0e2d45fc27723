package controller

import (
	"context"
	"fmt"

	"minshuku/domain"
)

// detailCore is the Viewing/Editing state machine shared by the detail dialogs. restore puts
// the snapshot taken at edit entry back on the view.
type detailCore struct {
	ctx     context.Context
	view    DetailView
	editing bool
	saved   bool
	loaded  bool
	restore func()
	capture func()
}

func (d *detailCore) Editing() bool { return d.editing }

// Loaded reports whether the record could be read; a dialog that failed to load is
// already rejected and must not be run.
func (d *detailCore) Loaded() bool { return d.loaded }

func (d *detailCore) beginEdit() {
	if d.editing {
		return
	}
	d.capture()
	d.editing = true
	d.view.SetEditMode(true)
}

func (d *detailCore) finishSave() {
	d.editing = false
	d.saved = true
	d.view.SetEditMode(false)
	saved(d.view)
}

func (d *detailCore) cancel() {
	if !d.editing {
		return
	}
	d.restore()
	d.editing = false
	d.view.SetEditMode(false)
}

// close discards pending edits. The dialog is accepted, so the caller refreshes, unless it
// is closed mid-edit with nothing saved.
func (d *detailCore) close() {
	wasEditing := d.editing
	d.cancel()
	if wasEditing && !d.saved {
		d.view.Reject()
		return
	}
	d.view.Accept()
}

// failed reports err and closes the dialog when the record is gone.
func (d *detailCore) failed(action string, err error) {
	if report(d.view, action, err) {
		d.view.Reject()
	}
}

type HostDetailController struct {
	detailCore
	view     HostDetailView
	uc       domain.HostUseCase
	hostID   int
	snapshot FormData
}

func NewHostDetailController(ctx context.Context, view HostDetailView, uc domain.HostUseCase, hostID int) *HostDetailController {
	c := &HostDetailController{view: view, uc: uc, hostID: hostID}
	c.detailCore = detailCore{ctx: ctx, view: view, restore: c.restore, capture: c.capture}
	view.OnIntent(c.handle)
	c.loaded = c.load()
	view.SetEditMode(false)
	return c
}

func (c *HostDetailController) load() bool {
	host, err := c.uc.GetHost(c.ctx, c.hostID)
	if err != nil {
		report(c.view, "Failed to load host", err)
		c.view.Reject()
		return false
	}
	c.populate(host)
	return true
}

func (c *HostDetailController) populate(host *domain.Host) {
	form := hostToForm(host)
	c.view.SetFormData(form)
	houses := make([]domain.ListItem, 0, len(host.Houses))
	for _, h := range host.Houses {
		houses = append(houses, domain.ListItem{ID: h.HouseID, Label: fmt.Sprintf("%d: %s", h.HouseID, h.Address)})
	}
	c.view.SetHouses(houses)
	c.snapshot = form.Clone()
}

func (c *HostDetailController) capture() {
	c.snapshot = c.view.FormData().Clone()
}

func (c *HostDetailController) restore() {
	c.view.SetFormData(c.snapshot.Clone())
}

func (c *HostDetailController) handle(e Event) {
	switch e.Intent {
	case IntentEdit:
		c.beginEdit()
	case IntentSave:
		c.save()
	case IntentCancel:
		c.cancel()
	case IntentClose:
		c.close()
	}
}

func (c *HostDetailController) save() {
	if !c.editing {
		return
	}
	if err := c.uc.UpdateHost(c.ctx, c.hostID, hostFromForm(c.view.FormData())); err != nil {
		c.failed("Failed to save host", err)
		return
	}
	host, err := c.uc.GetHost(c.ctx, c.hostID)
	if err != nil {
		c.failed("Failed to reload host", err)
		return
	}
	c.populate(host)
	c.finishSave()
}

type GuestDetailController struct {
	detailCore
	view       GuestDetailView
	guests     domain.GuestUseCase
	family     domain.FamilyMemberUseCase
	openMember FamilyMemberEditorOpener
	guestID    int
	members    []domain.FamilyMember
	snapshot   FormData
}

func NewGuestDetailController(ctx context.Context, view GuestDetailView, guests domain.GuestUseCase, family domain.FamilyMemberUseCase, openMember FamilyMemberEditorOpener, guestID int) *GuestDetailController {
	c := &GuestDetailController{view: view, guests: guests, family: family, openMember: openMember, guestID: guestID}
	c.detailCore = detailCore{ctx: ctx, view: view, restore: c.restore, capture: c.capture}
	view.OnIntent(c.handle)
	c.loaded = c.load()
	view.SetEditMode(false)
	return c
}

func (c *GuestDetailController) load() bool {
	guest, err := c.guests.GetGuest(c.ctx, c.guestID)
	if err != nil {
		report(c.view, "Failed to load guest", err)
		c.view.Reject()
		return false
	}
	form := guestToForm(guest)
	c.view.SetFormData(form)
	c.snapshot = form.Clone()
	c.setMembers(guest.FamilyMembers)
	return true
}

func (c *GuestDetailController) setMembers(members []domain.FamilyMember) {
	c.members = members
	items := make([]domain.ListItem, 0, len(members))
	for i := range members {
		items = append(items, domain.ListItem{ID: members[i].FamilyMemberID, Label: members[i].DisplayLabel()})
	}
	c.view.SetFamilyMembers(items)
}

func (c *GuestDetailController) reloadMembers() {
	members, err := c.family.ListFamilyMembers(c.ctx, c.guestID)
	if err != nil {
		report(c.view, "Failed to load family members", err)
		return
	}
	c.setMembers(*members)
}

func (c *GuestDetailController) capture() {
	c.snapshot = c.view.FormData().Clone()
}

func (c *GuestDetailController) restore() {
	c.view.SetFormData(c.snapshot.Clone())
}

func (c *GuestDetailController) handle(e Event) {
	switch e.Intent {
	case IntentEdit:
		c.beginEdit()
	case IntentSave:
		c.save()
	case IntentCancel:
		c.cancel()
	case IntentClose:
		c.close()
	case IntentAddFamilyMember:
		c.addMember()
	case IntentEditFamilyMember:
		c.editMember(e.ID)
	case IntentDeleteFamilyMember:
		c.deleteMember(e.ID)
	}
}

func (c *GuestDetailController) save() {
	if !c.editing {
		return
	}
	guest, err := guestFromForm(c.view.FormData())
	if err == nil {
		err = c.guests.UpdateGuest(c.ctx, c.guestID, guest)
	}
	if err != nil {
		c.failed("Failed to save guest", err)
		return
	}
	fresh, err := c.guests.GetGuest(c.ctx, c.guestID)
	if err != nil {
		c.failed("Failed to reload guest", err)
		return
	}
	form := guestToForm(fresh)
	c.view.SetFormData(form)
	c.snapshot = form.Clone()
	c.finishSave()
}

// Family members are written as soon as their editor is accepted, independently of the
// guest's own edit mode.
func (c *GuestDetailController) addMember() {
	if c.openMember == nil {
		return
	}
	member, ok := c.openMember(nil)
	if !ok {
		return
	}
	member.GuestID = c.guestID
	if _, err := c.family.AddFamilyMember(c.ctx, &member); err != nil {
		c.failed("Failed to save family member", err)
		return
	}
	c.reloadMembers()
}

func (c *GuestDetailController) editMember(id int) {
	if c.openMember == nil {
		return
	}
	for i := range c.members {
		if c.members[i].FamilyMemberID != id {
			continue
		}
		current := c.members[i]
		member, ok := c.openMember(&current)
		if !ok {
			return
		}
		member.GuestID = c.guestID
		if err := c.family.UpdateFamilyMember(c.ctx, id, &member); err != nil {
			report(c.view, "Failed to save family member", err)
		}
		c.reloadMembers()
		return
	}
}

func (c *GuestDetailController) deleteMember(id int) {
	if id <= 0 {
		return
	}
	if err := c.family.DeleteFamilyMember(c.ctx, id); err != nil {
		report(c.view, "Failed to delete family member", err)
	}
	c.reloadMembers()
}

// HouseEditors opens the child dialogs of the house detail.
type HouseEditors struct {
	Room     RoomEditorOpener
	Bathroom BathroomEditorOpener
}

type houseSnapshot struct {
	form      FormData
	rooms     []domain.Room
	bathrooms []domain.Bathroom
}

// HouseDetailController stages rooms and bathrooms in memory. Saving replaces every stored
// child of the house with the staged lists.
type HouseDetailController struct {
	detailCore
	view      HouseDetailView
	houses    domain.HouseUseCase
	hosts     domain.HostUseCase
	editors   HouseEditors
	houseID   int
	rooms     []domain.Room
	bathrooms []domain.Bathroom
	snapshot  houseSnapshot
}

// NewHouseDetailController opens the house houseID, or an empty house when houseID is 0.
func NewHouseDetailController(ctx context.Context, view HouseDetailView, houses domain.HouseUseCase, hosts domain.HostUseCase, editors HouseEditors, houseID int) *HouseDetailController {
	c := &HouseDetailController{view: view, houses: houses, hosts: hosts, editors: editors, houseID: houseID}
	c.detailCore = detailCore{ctx: ctx, view: view, restore: c.restore, capture: c.capture}
	view.OnIntent(c.handle)
	c.loaded = c.load()
	view.SetEditMode(false)
	return c
}

func (c *HouseDetailController) load() bool {
	hostItems, err := hostChoices(c.ctx, c.hosts)
	if err != nil {
		report(c.view, "Failed to load hosts", err)
		c.view.Reject()
		return false
	}
	c.view.SetHosts(hostItems)

	house := &domain.House{}
	if c.houseID > 0 {
		house, err = c.houses.GetHouse(c.ctx, c.houseID)
		if err != nil {
			report(c.view, "Failed to load house", err)
			c.view.Reject()
			return false
		}
	}
	c.populate(house)
	return true
}

func (c *HouseDetailController) populate(house *domain.House) {
	c.view.SetFormData(houseToForm(house))
	c.rooms = cloneRooms(house.Rooms)
	c.bathrooms = cloneBathrooms(house.Bathrooms)
	c.renderChildren()
	c.capture()
}

func (c *HouseDetailController) capture() {
	c.snapshot = houseSnapshot{
		form:      c.view.FormData().Clone(),
		rooms:     cloneRooms(c.rooms),
		bathrooms: cloneBathrooms(c.bathrooms),
	}
}

func (c *HouseDetailController) restore() {
	c.view.SetFormData(c.snapshot.form.Clone())
	c.rooms = cloneRooms(c.snapshot.rooms)
	c.bathrooms = cloneBathrooms(c.snapshot.bathrooms)
	c.renderChildren()
}

func (c *HouseDetailController) renderChildren() {
	rooms := make([]domain.ListItem, 0, len(c.rooms))
	for i := range c.rooms {
		rooms = append(rooms, domain.ListItem{ID: c.rooms[i].RoomID, Label: roomLabel(i, &c.rooms[i])})
	}
	c.view.SetRooms(rooms)

	bathrooms := make([]domain.ListItem, 0, len(c.bathrooms))
	for i := range c.bathrooms {
		bathrooms = append(bathrooms, domain.ListItem{ID: c.bathrooms[i].BathroomID, Label: bathroomLabel(&c.bathrooms[i])})
	}
	c.view.SetBathrooms(bathrooms)
}

// StagedRooms returns a copy of the rooms that the next save will persist.
func (c *HouseDetailController) StagedRooms() []domain.Room {
	return cloneRooms(c.rooms)
}

func (c *HouseDetailController) StagedBathrooms() []domain.Bathroom {
	return cloneBathrooms(c.bathrooms)
}

func (c *HouseDetailController) HouseID() int {
	return c.houseID
}

func (c *HouseDetailController) handle(e Event) {
	switch e.Intent {
	case IntentEdit:
		c.beginEdit()
	case IntentSave:
		c.save()
	case IntentCancel:
		c.cancel()
	case IntentClose:
		c.close()
	case IntentAddRoom:
		c.editRoom(-1)
	case IntentEditRoom:
		c.editRoom(e.Index)
	case IntentDeleteRoom:
		c.deleteRoom(e.Index)
	case IntentAddBathroom:
		c.editBathroom(-1)
	case IntentEditBathroom:
		c.editBathroom(e.Index)
	case IntentDeleteBathroom:
		c.deleteBathroom(e.Index)
	}
}

func (c *HouseDetailController) save() {
	if !c.editing {
		return
	}
	house, err := houseFromForm(c.view.FormData())
	if err != nil {
		report(c.view, "Failed to save house", err)
		return
	}
	house.HouseID = c.houseID
	house.Rooms = cloneRooms(c.rooms)
	house.Bathrooms = cloneBathrooms(c.bathrooms)

	id, err := c.houses.SaveHouse(c.ctx, house)
	if err != nil {
		c.failed("Failed to save house", err)
		return
	}
	c.houseID = id

	fresh, err := c.houses.GetHouse(c.ctx, id)
	if err != nil {
		c.failed("Failed to reload house", err)
		return
	}
	c.populate(fresh)
	c.finishSave()
}

// editRoom opens the room editor on the staged room at index, or on a new room when index
// is negative. Child edits enter edit mode so that Cancel can undo them.
func (c *HouseDetailController) editRoom(index int) {
	if c.editors.Room == nil || index >= len(c.rooms) {
		return
	}
	c.beginEdit()

	var initial *domain.Room
	if index >= 0 {
		current := cloneRooms(c.rooms[index : index+1])[0]
		initial = &current
	}
	room, ok := c.editors.Room(initial)
	if !ok {
		return
	}
	if index < 0 {
		c.rooms = append(c.rooms, room)
	} else {
		room.RoomID = c.rooms[index].RoomID
		c.rooms[index] = room
	}
	c.renderChildren()
}

func (c *HouseDetailController) deleteRoom(index int) {
	if index < 0 || index >= len(c.rooms) {
		return
	}
	c.beginEdit()
	c.rooms = append(c.rooms[:index:index], c.rooms[index+1:]...)
	c.renderChildren()
}

func (c *HouseDetailController) editBathroom(index int) {
	if c.editors.Bathroom == nil || index >= len(c.bathrooms) {
		return
	}
	c.beginEdit()

	var initial *domain.Bathroom
	if index >= 0 {
		current := c.bathrooms[index]
		initial = &current
	}
	bathroom, ok := c.editors.Bathroom(initial)
	if !ok {
		return
	}
	if index < 0 {
		c.bathrooms = append(c.bathrooms, bathroom)
	} else {
		bathroom.BathroomID = c.bathrooms[index].BathroomID
		c.bathrooms[index] = bathroom
	}
	c.renderChildren()
}

func (c *HouseDetailController) deleteBathroom(index int) {
	if index < 0 || index >= len(c.bathrooms) {
		return
	}
	c.beginEdit()
	c.bathrooms = append(c.bathrooms[:index:index], c.bathrooms[index+1:]...)
	c.renderChildren()
}

func cloneRooms(rooms []domain.Room) []domain.Room {
	out := make([]domain.Room, len(rooms))
	for i, r := range rooms {
		r.Beds = append([]domain.Bed(nil), r.Beds...)
		r.House = nil
		out[i] = r
	}
	return out
}

func cloneBathrooms(bathrooms []domain.Bathroom) []domain.Bathroom {
	return append([]domain.Bathroom{}, bathrooms...)
}

// OpenHostDetail builds a DetailOpener running a fresh host detail dialog per call.
func OpenHostDetail(ctx context.Context, uc domain.HostUseCase, newView func() HostDetailView) DetailOpener {
	return func(id int) bool {
		view := newView()
		if !NewHostDetailController(ctx, view, uc, id).Loaded() {
			return false
		}
		return view.Exec()
	}
}

func OpenGuestDetail(ctx context.Context, guests domain.GuestUseCase, family domain.FamilyMemberUseCase, openMember FamilyMemberEditorOpener, newView func() GuestDetailView) DetailOpener {
	return func(id int) bool {
		view := newView()
		if !NewGuestDetailController(ctx, view, guests, family, openMember, id).Loaded() {
			return false
		}
		return view.Exec()
	}
}

func OpenHouseDetail(ctx context.Context, houses domain.HouseUseCase, hosts domain.HostUseCase, editors HouseEditors, newView func() HouseDetailView) DetailOpener {
	return func(id int) bool {
		view := newView()
		if !NewHouseDetailController(ctx, view, houses, hosts, editors, id).Loaded() {
			return false
		}
		return view.Exec()
	}
}
