package controller

import (
	"minshuku/domain"
	"minshuku/services/lodging/usecase"
)

// Openers run a child editor modally. A nil initial value opens an empty form; the
// returned bool is false when the user cancelled.
type (
	RoomEditorOpener         func(initial *domain.Room) (domain.Room, bool)
	BathroomEditorOpener     func(initial *domain.Bathroom) (domain.Bathroom, bool)
	FamilyMemberEditorOpener func(initial *domain.FamilyMember) (domain.FamilyMember, bool)
)

// RoomEditorController validates the room dialog and accepts it. It never touches storage;
// the house detail stages the result.
type RoomEditorController struct {
	view   EditorView
	result domain.Room
}

func NewRoomEditorController(view EditorView, initial *domain.Room) *RoomEditorController {
	c := &RoomEditorController{view: view}
	if initial != nil {
		view.SetFormData(roomToForm(initial))
	} else {
		view.SetFormData(roomToForm(&domain.Room{Capacity: 1}))
	}
	view.OnIntent(c.handle)
	return c
}

func (c *RoomEditorController) handle(e Event) {
	switch e.Intent {
	case IntentSave:
		room, err := roomFromForm(c.view.FormData())
		if err == nil {
			err = invalidAsError(usecase.ValidateRoom(&room))
		}
		if err != nil {
			report(c.view, "Invalid room", err)
			return
		}
		c.result = room
		c.view.Accept()
	case IntentCancel, IntentClose:
		c.view.Reject()
	}
}

func (c *RoomEditorController) Room() domain.Room {
	return c.result
}

type BathroomEditorController struct {
	view   EditorView
	result domain.Bathroom
}

func NewBathroomEditorController(view EditorView, initial *domain.Bathroom) *BathroomEditorController {
	c := &BathroomEditorController{view: view}
	if initial != nil {
		view.SetFormData(bathroomToForm(initial))
	} else {
		view.SetFormData(bathroomToForm(&domain.Bathroom{}))
	}
	view.OnIntent(c.handle)
	return c
}

func (c *BathroomEditorController) handle(e Event) {
	switch e.Intent {
	case IntentSave:
		bathroom := bathroomFromForm(c.view.FormData())
		if err := invalidAsError(usecase.ValidateBathroom(&bathroom)); err != nil {
			report(c.view, "Invalid bathroom", err)
			return
		}
		c.result = bathroom
		c.view.Accept()
	case IntentCancel, IntentClose:
		c.view.Reject()
	}
}

func (c *BathroomEditorController) Bathroom() domain.Bathroom {
	return c.result
}

type FamilyMemberEditorController struct {
	view   EditorView
	result domain.FamilyMember
}

func NewFamilyMemberEditorController(view EditorView, initial *domain.FamilyMember) *FamilyMemberEditorController {
	c := &FamilyMemberEditorController{view: view}
	if initial != nil {
		view.SetFormData(familyMemberToForm(initial))
	} else {
		view.SetFormData(familyMemberToForm(&domain.FamilyMember{Sex: string(domain.SexMale)}))
	}
	view.OnIntent(c.handle)
	return c
}

func (c *FamilyMemberEditorController) handle(e Event) {
	switch e.Intent {
	case IntentSave:
		member, err := familyMemberFromForm(c.view.FormData())
		if err == nil {
			err = invalidAsError(usecase.ValidateFamilyMember(&member))
		}
		if err != nil {
			report(c.view, "Invalid family member", err)
			return
		}
		c.result = member
		c.view.Accept()
	case IntentCancel, IntentClose:
		c.view.Reject()
	}
}

func (c *FamilyMemberEditorController) FamilyMember() domain.FamilyMember {
	return c.result
}

func invalidAsError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationError(errs...)
}

func OpenRoomEditor(newView func() EditorView) RoomEditorOpener {
	return func(initial *domain.Room) (domain.Room, bool) {
		view := newView()
		c := NewRoomEditorController(view, initial)
		if !view.Exec() {
			return domain.Room{}, false
		}
		return c.Room(), true
	}
}

func OpenBathroomEditor(newView func() EditorView) BathroomEditorOpener {
	return func(initial *domain.Bathroom) (domain.Bathroom, bool) {
		view := newView()
		c := NewBathroomEditorController(view, initial)
		if !view.Exec() {
			return domain.Bathroom{}, false
		}
		return c.Bathroom(), true
	}
}

func OpenFamilyMemberEditor(newView func() EditorView) FamilyMemberEditorOpener {
	return func(initial *domain.FamilyMember) (domain.FamilyMember, bool) {
		view := newView()
		c := NewFamilyMemberEditorController(view, initial)
		if !view.Exec() {
			return domain.FamilyMember{}, false
		}
		return c.FamilyMember(), true
	}
}
