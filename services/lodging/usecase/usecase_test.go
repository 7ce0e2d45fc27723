package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"minshuku/config"
	"minshuku/domain"
	"minshuku/services/lodging/repository"
	"minshuku/services/lodging/usecase"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	hosts       domain.HostUseCase
	houses      domain.HouseUseCase
	guests      domain.GuestUseCase
	family      domain.FamilyMemberUseCase
	assignments domain.AssignmentUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := config.OpenDB(config.DatabaseOptions{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "usecase.sqlite"),
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
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	memberRepo := repository.NewFamilyMemberRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	to := 5 * time.Second
	return &fixture{
		db:          db,
		hosts:       usecase.NewHostUseCase(hostRepo, houseRepo, to),
		houses:      usecase.NewHouseUseCase(houseRepo, hostRepo, to),
		guests:      usecase.NewGuestUseCase(guestRepo, to),
		family:      usecase.NewFamilyMemberUseCase(memberRepo, guestRepo, to),
		assignments: usecase.NewAssignmentUseCase(assignmentRepo, guestRepo, houseRepo, roomRepo, to),
	}
}

func (f *fixture) host(t *testing.T) int {
	t.Helper()
	id, err := f.hosts.CreateHost(context.Background(), &domain.Host{
		FullName: "Ana Pérez", NationalID: "12.345.678-5", Sex: "Mujer", MaritalStatus: "Casada",
	})
	if err != nil {
		t.Fatalf("create host: %v", err)
	}
	return id
}

func (f *fixture) count(t *testing.T, model interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Where(where, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestCreateHost_NormalizesInput(t *testing.T) {
	f := newFixture(t)
	id := f.host(t)

	got, err := f.hosts.GetHost(context.Background(), id)
	if err != nil {
		t.Fatalf("get host: %v", err)
	}
	if got.NationalID != "12345678-5" {
		t.Errorf("national ID = %q, want canonical form", got.NationalID)
	}
	if got.Sex != string(domain.SexFemale) {
		t.Errorf("sex = %q", got.Sex)
	}
	if !got.IsMarried() {
		t.Errorf("expected married host")
	}
}

func TestCreateHost_RejectsBadChecksum(t *testing.T) {
	f := newFixture(t)
	_, err := f.hosts.CreateHost(context.Background(), &domain.Host{FullName: "Ana", NationalID: "12345678-9", Sex: "female"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.First() != "Invalid national ID" {
		t.Fatalf("expected national ID validation error, got %v", err)
	}
}

func TestCreateGuest_DuplicateNationalID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := &domain.Guest{FullName: "Luis Soto", NationalID: "7654321-6", Email: "luis@example.com", Sex: "male", Phone: domain.StringPtr("+56 9 1234 5678")}
	id, err := f.guests.CreateGuest(ctx, first)
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}

	_, err = f.guests.CreateGuest(ctx, &domain.Guest{FullName: "Impostor", NationalID: "7.654.321-6", Email: "x@example.com", Sex: "male"})
	if !errors.Is(err, domain.ErrDuplicateNationalID) {
		t.Fatalf("expected duplicate national ID, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("duplicate should classify as invalid input")
	}

	got, err := f.guests.GetGuest(ctx, id)
	if err != nil {
		t.Fatalf("get guest: %v", err)
	}
	if got.FullName != "Luis Soto" || got.Email != "luis@example.com" {
		t.Errorf("prior row changed: %+v", got)
	}
	if domain.StringValue(got.Phone) != "56912345678" {
		t.Errorf("phone = %q, want digits only", domain.StringValue(got.Phone))
	}
}

func TestUpdateGuest_KeepsNationalID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, err := f.guests.CreateGuest(ctx, &domain.Guest{FullName: "Luis", NationalID: "7654321-6", Email: "luis@example.com", Sex: "male"})
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}

	err = f.guests.UpdateGuest(ctx, id, &domain.Guest{FullName: "Luis Soto", NationalID: "12345678-5", Email: "LUIS@example.com", Sex: "male", Age: func() *int { v := 30; return &v }()})
	if err != nil {
		t.Fatalf("update guest: %v", err)
	}
	got, err := f.guests.GetGuest(ctx, id)
	if err != nil {
		t.Fatalf("get guest: %v", err)
	}
	if got.NationalID != "7654321-6" || got.FullName != "Luis Soto" || got.Email != "luis@example.com" {
		t.Errorf("unexpected guest %+v", got)
	}

	if err := f.guests.UpdateGuest(ctx, id+50, &domain.Guest{FullName: "x", Email: "x@y.z", Sex: "male"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for stale id, got %v", err)
	}
}

func TestDeleteHouse_RemovesChildren(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	houseID, err := f.houses.CreateHouse(ctx, &domain.House{
		Address: "Los Aromos 123",
		HostID:  f.host(t),
		Rooms: []domain.Room{
			{Capacity: 2, Beds: []domain.Bed{{Type: domain.BedSingle}, {Type: domain.BedBunk}}},
			{Capacity: 1, Beds: []domain.Bed{{Type: domain.BedDouble}}},
		},
		Bathrooms: []domain.Bathroom{{Location: "primer piso"}},
	})
	if err != nil {
		t.Fatalf("create house: %v", err)
	}

	var roomIDs []int
	f.db.Model(&domain.Room{}).Where("house_id = ?", houseID).Pluck("room_id", &roomIDs)
	if len(roomIDs) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(roomIDs))
	}

	if err := f.houses.DeleteHouse(ctx, houseID); err != nil {
		t.Fatalf("delete house: %v", err)
	}
	if n := f.count(t, &domain.Room{}, "house_id = ?", houseID); n != 0 {
		t.Errorf("%d rooms left", n)
	}
	if n := f.count(t, &domain.Bathroom{}, "house_id = ?", houseID); n != 0 {
		t.Errorf("%d bathrooms left", n)
	}
	if n := f.count(t, &domain.Bed{}, "room_id IN ?", roomIDs); n != 0 {
		t.Errorf("%d beds left", n)
	}
}

func TestSaveHouse_FullReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	house := &domain.House{
		Address: "Calle Larga 9",
		HostID:  f.host(t),
		Rooms: []domain.Room{
			{Name: "1", Capacity: 1},
			{Name: "2", Capacity: 2},
			{Name: "3", Capacity: 3},
		},
	}
	houseID, err := f.houses.CreateHouse(ctx, house)
	if err != nil {
		t.Fatalf("create house: %v", err)
	}

	loaded, err := f.houses.GetHouse(ctx, houseID)
	if err != nil {
		t.Fatalf("get house: %v", err)
	}
	loaded.Rooms = append(loaded.Rooms[:1], loaded.Rooms[2:]...)
	if _, err := f.houses.SaveHouse(ctx, loaded); err != nil {
		t.Fatalf("save house: %v", err)
	}

	final, err := f.houses.GetHouse(ctx, houseID)
	if err != nil {
		t.Fatalf("reload house: %v", err)
	}
	if len(final.Rooms) != 2 || final.Rooms[0].Name != "1" || final.Rooms[1].Name != "3" {
		t.Errorf("unexpected rooms %+v", final.Rooms)
	}
	if n := f.count(t, &domain.Room{}, "house_id = ?", houseID); n != 2 {
		t.Errorf("expected exactly 2 stored rooms, got %d", n)
	}
}

func TestSaveHouse_UnknownHost(t *testing.T) {
	f := newFixture(t)
	_, err := f.houses.CreateHouse(context.Background(), &domain.House{Address: "x", HostID: 99})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddFamilyMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	guestID, err := f.guests.CreateGuest(ctx, &domain.Guest{FullName: "Luis", NationalID: "7654321-6", Email: "l@example.com", Sex: "male", ArrivesWithFamily: true})
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}

	age := 121
	if _, err := f.family.AddFamilyMember(ctx, &domain.FamilyMember{GuestID: guestID, Name: "Pedro", Sex: "male", Age: &age}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected validation error for age 121, got %v", err)
	}
	if _, err := f.family.AddFamilyMember(ctx, &domain.FamilyMember{GuestID: guestID + 10, Name: "Pedro", Sex: "male"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing guest, got %v", err)
	}

	if _, err := f.family.AddFamilyMember(ctx, &domain.FamilyMember{GuestID: guestID, Name: "Pedro", Sex: "Hombre", Relation: domain.StringPtr(" Hijo ")}); err != nil {
		t.Fatalf("add family member: %v", err)
	}
	members, err := f.family.ListFamilyMembers(ctx, guestID)
	if err != nil {
		t.Fatalf("list family: %v", err)
	}
	if len(*members) != 1 || domain.StringValue((*members)[0].Relation) != "Hijo" {
		t.Errorf("unexpected members %+v", *members)
	}
}

func TestCreateAssignment_RoomMustBelongToHouse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hostID := f.host(t)

	houseA, err := f.houses.CreateHouse(ctx, &domain.House{Address: "A", HostID: hostID, Rooms: []domain.Room{{Capacity: 1}}})
	if err != nil {
		t.Fatalf("create house: %v", err)
	}
	houseB, err := f.houses.CreateHouse(ctx, &domain.House{Address: "B", HostID: hostID})
	if err != nil {
		t.Fatalf("create house: %v", err)
	}
	guestID, err := f.guests.CreateGuest(ctx, &domain.Guest{FullName: "Luis", NationalID: "7654321-6", Email: "l@example.com", Sex: "male"})
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}
	withRooms, err := f.houses.GetHouse(ctx, houseA)
	if err != nil {
		t.Fatalf("get house: %v", err)
	}
	roomID := withRooms.Rooms[0].RoomID

	start := datatypes.Date(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	_, err = f.assignments.CreateAssignment(ctx, &domain.Assignment{GuestID: guestID, HouseID: houseB, RoomID: &roomID, StartDate: start})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}

	id, err := f.assignments.CreateAssignment(ctx, &domain.Assignment{GuestID: guestID, HouseID: houseA, RoomID: &roomID, StartDate: start})
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	got, err := f.assignments.GetAssignment(ctx, id)
	if err != nil {
		t.Fatalf("get assignment: %v", err)
	}
	if got.Status != string(domain.AssignmentPending) || !got.IsOpen() {
		t.Errorf("unexpected assignment %+v", got)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("API_SECRET", "test-secret")
	t.Setenv("OPERATOR_USERNAME", "recepcion")
	t.Setenv("OPERATOR_PASSWORD_HASH", string(hash))

	auth := usecase.NewAuthUseCase()
	token, err := auth.Login(context.Background(), &domain.LoginRequest{Username: "recepcion", Password: "s3cret"})
	if err != nil || token == nil || *token == "" {
		t.Fatalf("login = %v, %v", token, err)
	}
	if _, err := auth.Login(context.Background(), &domain.LoginRequest{Username: "recepcion", Password: "nope"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	t.Setenv("OPERATOR_PASSWORD_HASH", "")
	if _, err := auth.Login(context.Background(), &domain.LoginRequest{Username: "recepcion", Password: "s3cret"}); !errors.Is(err, domain.ErrLoginDisabled) {
		t.Errorf("expected ErrLoginDisabled, got %v", err)
	}
}
