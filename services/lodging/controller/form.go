package controller

import (
	"fmt"
	"strconv"
	"strings"

	"minshuku/domain"
	"minshuku/utils"
)

// Form field names shared with the views.
const (
	FieldFullName          = "full_name"
	FieldNationalID        = "national_id"
	FieldPhone             = "phone"
	FieldEmail             = "email"
	FieldSex               = "sex"
	FieldMarried           = "married"
	FieldMaritalStatus     = "marital_status"
	FieldOwnershipRole     = "ownership_role"
	FieldAge               = "age"
	FieldArrivesWithFamily = "arrives_with_family"

	FieldAddress         = "address"
	FieldHostID          = "host_id"
	FieldCommonBathrooms = "common_bathrooms"
	FieldSingleBeds      = "single_beds"
	FieldDoubleBeds      = "double_beds"
	FieldBunkBeds        = "bunk_beds"
	FieldNotes           = "notes"

	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldBeds     = "beds"
	FieldLocation = "location"
	FieldHasTub   = "has_tub"
	FieldRelation = "relation"
)

func parseAge(form FormData) (*int, error) {
	age, err := utils.ParseOptionalInt(form.String(FieldAge))
	if err != nil {
		return nil, domain.NewValidationError("Age must be a number")
	}
	return age, nil
}

// parseCount reads a non-optional integer field; blank counts as zero.
func parseCount(form FormData, key, label string) (int, error) {
	s := form.String(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidationError(label + " must be a number")
	}
	return v, nil
}

func maritalStatus(form FormData) string {
	status := form.String(FieldMaritalStatus)
	married := form.Bool(FieldMarried)
	candidate := domain.Host{MaritalStatus: status}
	if status == "" || candidate.IsMarried() != married {
		if married {
			return "Casado"
		}
		return "Soltero"
	}
	return status
}

func hostToForm(h *domain.Host) FormData {
	return FormData{
		FieldFullName:      h.FullName,
		FieldNationalID:    h.NationalID,
		FieldPhone:         domain.StringValue(h.Phone),
		FieldEmail:         domain.StringValue(h.Email),
		FieldSex:           domain.SexLabel(h.Sex),
		FieldMarried:       h.IsMarried(),
		FieldMaritalStatus: h.MaritalStatus,
		FieldOwnershipRole: h.OwnershipRole,
	}
}

func hostFromForm(form FormData) *domain.Host {
	return &domain.Host{
		FullName:      form.String(FieldFullName),
		NationalID:    form.String(FieldNationalID),
		Phone:         domain.StringPtr(form.String(FieldPhone)),
		Email:         domain.StringPtr(form.String(FieldEmail)),
		Sex:           domain.ParseSex(form.String(FieldSex)),
		MaritalStatus: maritalStatus(form),
		OwnershipRole: form.String(FieldOwnershipRole),
	}
}

func guestToForm(g *domain.Guest) FormData {
	return FormData{
		FieldFullName:          g.FullName,
		FieldNationalID:        g.NationalID,
		FieldEmail:             g.Email,
		FieldPhone:             domain.StringValue(g.Phone),
		FieldAge:               utils.FormatOptionalInt(g.Age),
		FieldSex:               domain.SexLabel(g.Sex),
		FieldArrivesWithFamily: g.ArrivesWithFamily,
	}
}

func guestFromForm(form FormData) (*domain.Guest, error) {
	age, err := parseAge(form)
	if err != nil {
		return nil, err
	}
	return &domain.Guest{
		FullName:          form.String(FieldFullName),
		NationalID:        form.String(FieldNationalID),
		Email:             form.String(FieldEmail),
		Phone:             domain.StringPtr(form.String(FieldPhone)),
		Age:               age,
		Sex:               domain.ParseSex(form.String(FieldSex)),
		ArrivesWithFamily: form.Bool(FieldArrivesWithFamily),
	}, nil
}

func houseToForm(h *domain.House) FormData {
	hostID := ""
	if h.HostID > 0 {
		hostID = strconv.Itoa(h.HostID)
	}
	return FormData{
		FieldAddress:         h.Address,
		FieldHostID:          hostID,
		FieldCommonBathrooms: strconv.Itoa(h.CommonBathrooms),
		FieldSingleBeds:      strconv.Itoa(h.SingleBeds),
		FieldDoubleBeds:      strconv.Itoa(h.DoubleBeds),
		FieldBunkBeds:        strconv.Itoa(h.BunkBeds),
		FieldNotes:           domain.StringValue(h.Notes),
	}
}

func houseFromForm(form FormData) (*domain.House, error) {
	house := &domain.House{
		Address: form.String(FieldAddress),
		Notes:   domain.StringPtr(form.String(FieldNotes)),
	}
	if s := form.String(FieldHostID); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, domain.NewValidationError("Host is required")
		}
		house.HostID = id
	}

	counts := []struct {
		key, label string
		dst        *int
	}{
		{FieldCommonBathrooms, "Common bathrooms", &house.CommonBathrooms},
		{FieldSingleBeds, "Single beds", &house.SingleBeds},
		{FieldDoubleBeds, "Double beds", &house.DoubleBeds},
		{FieldBunkBeds, "Bunk beds", &house.BunkBeds},
	}
	for _, c := range counts {
		v, err := parseCount(form, c.key, c.label)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}
	return house, nil
}

func roomToForm(r *domain.Room) FormData {
	return FormData{
		FieldName:     r.Name,
		FieldCapacity: strconv.Itoa(r.Capacity),
		FieldBeds:     strings.Join(r.BedTypes(), ", "),
		FieldNotes:    domain.StringValue(r.Notes),
	}
}

// roomFromForm reads the bed list as comma separated type labels.
func roomFromForm(form FormData) (domain.Room, error) {
	capacity, err := parseCount(form, FieldCapacity, "Capacity")
	if err != nil {
		return domain.Room{}, err
	}
	room := domain.Room{
		Name:     form.String(FieldName),
		Capacity: capacity,
		Notes:    domain.StringPtr(form.String(FieldNotes)),
		Beds:     []domain.Bed{},
	}
	for _, t := range strings.Split(form.String(FieldBeds), ",") {
		if t = strings.TrimSpace(t); t != "" {
			room.Beds = append(room.Beds, domain.Bed{Type: t})
		}
	}
	return room, nil
}

func bathroomToForm(b *domain.Bathroom) FormData {
	return FormData{
		FieldLocation: b.Location,
		FieldHasTub:   b.HasTub,
	}
}

func bathroomFromForm(form FormData) domain.Bathroom {
	return domain.Bathroom{
		Location: form.String(FieldLocation),
		HasTub:   form.Bool(FieldHasTub),
	}
}

func familyMemberToForm(f *domain.FamilyMember) FormData {
	return FormData{
		FieldName:     f.Name,
		FieldAge:      utils.FormatOptionalInt(f.Age),
		FieldSex:      domain.SexLabel(f.Sex),
		FieldRelation: domain.StringValue(f.Relation),
	}
}

func familyMemberFromForm(form FormData) (domain.FamilyMember, error) {
	age, err := parseAge(form)
	if err != nil {
		return domain.FamilyMember{}, err
	}
	return domain.FamilyMember{
		Name:     form.String(FieldName),
		Age:      age,
		Sex:      domain.ParseSex(form.String(FieldSex)),
		Relation: domain.StringPtr(form.String(FieldRelation)),
	}, nil
}

func roomLabel(i int, r *domain.Room) string {
	label := fmt.Sprintf("Habitación %d", i+1)
	if r.Name != "" {
		label = r.Name
	}
	beds := "sin camas"
	if len(r.Beds) > 0 {
		beds = strings.Join(r.BedTypes(), ", ")
	}
	return fmt.Sprintf("%s - capacidad %d - %s", label, r.Capacity, beds)
}

func bathroomLabel(b *domain.Bathroom) string {
	if b.HasTub {
		return b.Location + " (con tina)"
	}
	return b.Location
}
