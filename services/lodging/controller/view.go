package controller

import (
	"strconv"
	"strings"

	"minshuku/domain"
)

// Intent is a user action delivered by a passive view.
type Intent string

const (
	IntentRefresh    Intent = "refresh"
	IntentFilter     Intent = "filter"
	IntentAdd        Intent = "add"
	IntentDelete     Intent = "delete"
	IntentOpenDetail Intent = "open_detail"

	IntentEdit   Intent = "edit"
	IntentSave   Intent = "save"
	IntentCancel Intent = "cancel"
	IntentClose  Intent = "close"

	IntentAddRoom            Intent = "add_room"
	IntentEditRoom           Intent = "edit_room"
	IntentDeleteRoom         Intent = "delete_room"
	IntentAddBathroom        Intent = "add_bathroom"
	IntentEditBathroom       Intent = "edit_bathroom"
	IntentDeleteBathroom     Intent = "delete_bathroom"
	IntentAddFamilyMember    Intent = "add_family_member"
	IntentEditFamilyMember   Intent = "edit_family_member"
	IntentDeleteFamilyMember Intent = "delete_family_member"

	IntentOpenModule Intent = "open_module"
	IntentTabChanged Intent = "tab_changed"
)

// Event carries an intent and its argument: a row identity, a position in a staged
// child list, or free text (filter text, module key).
type Event struct {
	Intent Intent
	ID     int
	Index  int
	Text   string
}

type IntentHandler func(Event)

// FormData is the flat field-name to string-or-bool mapping exchanged with a view.
type FormData map[string]interface{}

func (f FormData) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func (f FormData) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Notice is a blocking, dismissable message shown to the user.
type Notice struct {
	Severity Severity
	Title    string
	Message  string
}

type Notifier interface {
	Notify(Notice)
}

type View interface {
	Notifier
	OnIntent(IntentHandler)
	FormData() FormData
	SetFormData(FormData)
}

// Dialog is a modal surface. Exec blocks until the dialog is closed and reports whether it
// was accepted.
type Dialog interface {
	Exec() bool
	Accept()
	Reject()
}

type ListView interface {
	View
	SetItems([]domain.ListItem)
	ClearForm()
}

type HouseListView interface {
	ListView
	SetHosts([]domain.ListItem)
}

// ModuleListView is a list shown by the router as a module of its own.
type ModuleListView interface {
	ListView
	Dialog
}

type DetailView interface {
	View
	Dialog
	SetEditMode(bool)
}

type HostDetailView interface {
	DetailView
	SetHouses([]domain.ListItem)
}

type HouseDetailView interface {
	DetailView
	SetHosts([]domain.ListItem)
	SetRooms([]domain.ListItem)
	SetBathrooms([]domain.ListItem)
}

type GuestDetailView interface {
	DetailView
	SetFamilyMembers([]domain.ListItem)
}

// EditorView is the modal form of a child record (room, bathroom, family member).
type EditorView interface {
	View
	Dialog
}

type HomeView interface {
	Notifier
	OnIntent(IntentHandler)
	Hide()
	Show()
}

// HouseMenuView is the tabbed host/house module.
type HouseMenuView interface {
	Dialog
	OnIntent(IntentHandler)
	CurrentTab() int
	HostTab() ListView
	HouseTab() HouseListView
}
