package usecase

import (
	"fmt"
	"strings"
	"time"

	"minshuku/domain"
	"minshuku/utils"

	"github.com/asaskevich/govalidator"
)

// ValidateOptions tunes the checks that depend on the operation: the national ID is only
// verified when a record is being created.
type ValidateOptions struct {
	CheckNationalID bool
}

var ageRangeMessage = fmt.Sprintf("Age must be between %d and %d", domain.MinAge, domain.MaxAge)

func blank(s string) bool {
	return govalidator.IsNull(strings.TrimSpace(s))
}

func validAge(age *int) bool {
	return age == nil || govalidator.InRangeInt(*age, domain.MinAge, domain.MaxAge)
}

func validSex(sex string) bool {
	return govalidator.IsIn(sex, domain.Sexes...)
}

// ValidateHost returns the business-rule failures of h in detection order. The email is
// optional for hosts and only checked when present.
func ValidateHost(h *domain.Host, opts ValidateOptions) []string {
	var errs []string
	if blank(h.FullName) {
		errs = append(errs, "Name is required")
	}
	if opts.CheckNationalID && !utils.IsValidRut(h.NationalID) {
		errs = append(errs, "Invalid national ID")
	}
	if email := domain.StringValue(h.Email); !blank(email) && !utils.IsValidEmail(email) {
		errs = append(errs, "Invalid email format")
	}
	if !validSex(h.Sex) {
		errs = append(errs, "Invalid sex")
	}
	return errs
}

// ValidateGuest is ValidateHost for guests, whose email is mandatory and who may carry an age.
func ValidateGuest(g *domain.Guest, opts ValidateOptions) []string {
	var errs []string
	if blank(g.FullName) {
		errs = append(errs, "Name is required")
	}
	if opts.CheckNationalID && !utils.IsValidRut(g.NationalID) {
		errs = append(errs, "Invalid national ID")
	}
	switch {
	case blank(g.Email):
		errs = append(errs, "Email is required")
	case !utils.IsValidEmail(g.Email):
		errs = append(errs, "Invalid email format")
	}
	if !validAge(g.Age) {
		errs = append(errs, ageRangeMessage)
	}
	if !validSex(g.Sex) {
		errs = append(errs, "Invalid sex")
	}
	return errs
}

func ValidateFamilyMember(f *domain.FamilyMember) []string {
	var errs []string
	if blank(f.Name) {
		errs = append(errs, "Name is required")
	}
	if !validAge(f.Age) {
		errs = append(errs, ageRangeMessage)
	}
	if !validSex(f.Sex) {
		errs = append(errs, "Invalid sex")
	}
	return errs
}

func ValidateRoom(r *domain.Room) []string {
	var errs []string
	if r.Capacity < 1 {
		errs = append(errs, "Capacity must be at least 1")
	}
	for _, b := range r.Beds {
		if blank(b.Type) {
			errs = append(errs, "Bed type is required")
			break
		}
	}
	return errs
}

func ValidateBathroom(b *domain.Bathroom) []string {
	if blank(b.Location) {
		return []string{"Location is required"}
	}
	return nil
}

// ValidateHouse checks the house row and every staged room and bathroom it carries.
func ValidateHouse(h *domain.House) []string {
	var errs []string
	if blank(h.Address) {
		errs = append(errs, "Address is required")
	}
	if h.HostID <= 0 {
		errs = append(errs, "Host is required")
	}
	counts := []struct {
		label string
		value int
	}{
		{"Common bathrooms", h.CommonBathrooms},
		{"Single beds", h.SingleBeds},
		{"Double beds", h.DoubleBeds},
		{"Bunk beds", h.BunkBeds},
	}
	for _, c := range counts {
		if c.value < 0 {
			errs = append(errs, c.label+" cannot be negative")
		}
	}
	for i := range h.Rooms {
		for _, e := range ValidateRoom(&h.Rooms[i]) {
			errs = append(errs, fmt.Sprintf("Room %d: %s", i+1, e))
		}
	}
	for i := range h.Bathrooms {
		for _, e := range ValidateBathroom(&h.Bathrooms[i]) {
			errs = append(errs, fmt.Sprintf("Bathroom %d: %s", i+1, e))
		}
	}
	return errs
}

func ValidateAssignment(a *domain.Assignment) []string {
	var errs []string
	if a.GuestID <= 0 {
		errs = append(errs, "Guest is required")
	}
	if a.HouseID <= 0 {
		errs = append(errs, "House is required")
	}
	start := time.Time(a.StartDate)
	if start.IsZero() {
		errs = append(errs, "Start date is required")
	}
	if a.EndDate != nil && !start.IsZero() && time.Time(*a.EndDate).Before(start) {
		errs = append(errs, "End date cannot be before start date")
	}
	if !govalidator.IsIn(a.Status, domain.AssignmentStatuses...) {
		errs = append(errs, "Invalid status")
	}
	return errs
}

func invalid(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationError(errs...)
}
