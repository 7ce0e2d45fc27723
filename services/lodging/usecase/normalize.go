package usecase

import (
	"strings"

	"minshuku/domain"
	"minshuku/utils"
)

func trimmedPtr(s *string) *string {
	return domain.StringPtr(strings.TrimSpace(domain.StringValue(s)))
}

func normalizeHost(h *domain.Host) {
	h.FullName = strings.TrimSpace(h.FullName)
	h.NationalID = utils.NormalizeRut(h.NationalID)
	h.Phone = utils.NormalizePhone(domain.StringValue(h.Phone))
	h.Email = domain.StringPtr(strings.ToLower(strings.TrimSpace(domain.StringValue(h.Email))))
	h.Sex = domain.ParseSex(h.Sex)
	h.MaritalStatus = strings.TrimSpace(h.MaritalStatus)
	h.OwnershipRole = strings.TrimSpace(h.OwnershipRole)
}

func normalizeGuest(g *domain.Guest) {
	g.FullName = strings.TrimSpace(g.FullName)
	g.NationalID = utils.NormalizeRut(g.NationalID)
	g.Phone = utils.NormalizePhone(domain.StringValue(g.Phone))
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	g.Sex = domain.ParseSex(g.Sex)
}

func normalizeFamilyMember(f *domain.FamilyMember) {
	f.Name = strings.TrimSpace(f.Name)
	f.Sex = domain.ParseSex(f.Sex)
	f.Relation = trimmedPtr(f.Relation)
}

func normalizeHouse(h *domain.House) {
	h.Address = strings.TrimSpace(h.Address)
	h.Notes = trimmedPtr(h.Notes)
	for i := range h.Rooms {
		r := &h.Rooms[i]
		r.Name = strings.TrimSpace(r.Name)
		r.Notes = trimmedPtr(r.Notes)
		for j := range r.Beds {
			r.Beds[j].Type = strings.TrimSpace(r.Beds[j].Type)
		}
	}
	for i := range h.Bathrooms {
		h.Bathrooms[i].Location = strings.TrimSpace(h.Bathrooms[i].Location)
	}
}

func normalizeAssignment(a *domain.Assignment) {
	a.Status = strings.ToLower(strings.TrimSpace(a.Status))
	if a.Status == "" {
		a.Status = string(domain.AssignmentPending)
	}
	a.Notes = trimmedPtr(a.Notes)
}
