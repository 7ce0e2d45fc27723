package controller_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"minshuku/config"
	"minshuku/domain"
	"minshuku/services/lodging/controller"
	"minshuku/services/lodging/repository"
	"minshuku/services/lodging/usecase"
)

type fakeView struct {
	form    controller.FormData
	notices []controller.Notice
	handler controller.IntentHandler
}

func (v *fakeView) Notify(n controller.Notice) { v.notices = append(v.notices, n) }
func (v *fakeView) OnIntent(h controller.IntentHandler) { v.handler = h }
func (v *fakeView) FormData() controller.FormData { return v.form.Clone() }
func (v *fakeView) SetFormData(f controller.FormData) { v.form = f.Clone() }
func (v *fakeView) send(intent controller.Intent) { v.handler(controller.Event{Intent: intent}) }
func (v *fakeView) sendEvent(e controller.Event) { v.handler(e) }
func (v *fakeView) set(key string, value interface{}) { v.form[key] = value }

func (v *fakeView) lastNotice() controller.Notice {
	if len(v.notices) == 0 {
		return controller.Notice{}
	}
	return v.notices[len(v.notices)-1]
}

// fakeDialog runs script from Exec, standing in for the user.
type fakeDialog struct {
	accepted, rejected bool
	script             func()
}

func (d *fakeDialog) Accept() { d.accepted = true }
func (d *fakeDialog) Reject() { d.rejected = true }
func (d *fakeDialog) Exec() bool {
	if d.script != nil {
		d.script()
	}
	return d.accepted
}

type fakeList struct {
	fakeView
	fakeDialog
	items   []domain.ListItem
	hosts   []domain.ListItem
	cleared bool
}

func newFakeList() *fakeList {
	return &fakeList{fakeView: fakeView{form: controller.FormData{}}}
}

func (l *fakeList) SetItems(items []domain.ListItem) { l.items = items }
func (l *fakeList) SetHosts(items []domain.ListItem) { l.hosts = items }
func (l *fakeList) ClearForm() {
	l.cleared = true
	l.form = controller.FormData{}
}

// fakeDetail serves every detail view flavor.
type fakeDetail struct {
	fakeView
	fakeDialog
	editMode  bool
	houses    []domain.ListItem
	hosts     []domain.ListItem
	rooms     []domain.ListItem
	bathrooms []domain.ListItem
	members   []domain.ListItem
}

func newFakeDetail() *fakeDetail {
	return &fakeDetail{fakeView: fakeView{form: controller.FormData{}}}
}

func (d *fakeDetail) SetEditMode(on bool) { d.editMode = on }
func (d *fakeDetail) SetHouses(items []domain.ListItem) { d.houses = items }
func (d *fakeDetail) SetHosts(items []domain.ListItem) { d.hosts = items }
func (d *fakeDetail) SetRooms(items []domain.ListItem) { d.rooms = items }
func (d *fakeDetail) SetBathrooms(items []domain.ListItem) { d.bathrooms = items }
func (d *fakeDetail) SetFamilyMembers(items []domain.ListItem) { d.members = items }

type fakeEditor struct {
	fakeView
	fakeDialog
}

// scriptedEditor returns an editor view factory whose Exec fills the form with fields and
// presses save.
func scriptedEditor(editors *[]*fakeEditor, fields controller.FormData) func() controller.EditorView {
	return func() controller.EditorView {
		e := &fakeEditor{fakeView: fakeView{form: controller.FormData{}}}
		e.script = func() {
			for k, v := range fields {
				e.set(k, v)
			}
			e.send(controller.IntentSave)
		}
		if editors != nil {
			*editors = append(*editors, e)
		}
		return e
	}
}

type fakeHome struct {
	notices []controller.Notice
	handler controller.IntentHandler
	hidden  bool
	shows   int
}

func (h *fakeHome) Notify(n controller.Notice) { h.notices = append(h.notices, n) }
func (h *fakeHome) OnIntent(fn controller.IntentHandler) { h.handler = fn }
func (h *fakeHome) Hide() { h.hidden = true }
func (h *fakeHome) Show() {
	h.hidden = false
	h.shows++
}

type fakeMenu struct {
	fakeDialog
	handler  controller.IntentHandler
	tab      int
	hostTab  *fakeList
	houseTab *fakeList
}

func (m *fakeMenu) OnIntent(fn controller.IntentHandler) { m.handler = fn }
func (m *fakeMenu) CurrentTab() int { return m.tab }
func (m *fakeMenu) HostTab() controller.ListView { return m.hostTab }
func (m *fakeMenu) HouseTab() controller.HouseListView { return m.houseTab }

type fixture struct {
	ctx    context.Context
	hosts  domain.HostUseCase
	houses domain.HouseUseCase
	guests domain.GuestUseCase
	family domain.FamilyMemberUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := config.OpenDB(config.DatabaseOptions{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "controller.sqlite"),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	hostRepo := repository.NewHostRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	to := 5 * time.Second
	return &fixture{
		ctx:    context.Background(),
		hosts:  usecase.NewHostUseCase(hostRepo, houseRepo, to),
		houses: usecase.NewHouseUseCase(houseRepo, hostRepo, to),
		guests: usecase.NewGuestUseCase(guestRepo, to),
		family: usecase.NewFamilyMemberUseCase(repository.NewFamilyMemberRepository(db), guestRepo, to),
	}
}

func (f *fixture) host(t *testing.T, name, rut string) int {
	t.Helper()
	id, err := f.hosts.CreateHost(f.ctx, &domain.Host{FullName: name, NationalID: rut, Sex: "Mujer", MaritalStatus: "Casada"})
	if err != nil {
		t.Fatalf("create host: %v", err)
	}
	return id
}

func (f *fixture) house(t *testing.T, hostID int) int {
	t.Helper()
	id, err := f.houses.SaveHouse(f.ctx, &domain.House{
		Address: "Av. Siempre Viva 742",
		HostID:  hostID,
		Rooms: []domain.Room{
			{Name: "Principal", Capacity: 2, Beds: []domain.Bed{{Type: domain.BedDouble}}},
		},
		Bathrooms: []domain.Bathroom{{Location: "Segundo piso", HasTub: true}},
	})
	if err != nil {
		t.Fatalf("save house: %v", err)
	}
	return id
}

func (f *fixture) guest(t *testing.T) int {
	t.Helper()
	id, err := f.guests.CreateGuest(f.ctx, &domain.Guest{
		FullName: "Luis Gómez", NationalID: "11.111.111-1", Email: "luis@example.com", Sex: "Hombre",
	})
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}
	return id
}
