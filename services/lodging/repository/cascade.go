package repository

import (
	"minshuku/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The helpers below run inside a caller-owned transaction and remove rows leaf-first, so the
// outcome does not depend on the engine enforcing ON DELETE rules.

func removeRooms(tx *gorm.DB, roomIDs []int) error {
	if len(roomIDs) == 0 {
		return nil
	}
	// assignments keep pointing at the house but lose the room
	if err := tx.Model(&domain.Assignment{}).Where("room_id IN ?", roomIDs).Update("room_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Where("room_id IN ?", roomIDs).Delete(&domain.Bed{}).Error; err != nil {
		return err
	}
	return tx.Where("room_id IN ?", roomIDs).Delete(&domain.Room{}).Error
}

func removeHouseChildren(tx *gorm.DB, houseID int) error {
	var roomIDs []int
	if err := tx.Model(&domain.Room{}).Where("house_id = ?", houseID).Pluck("room_id", &roomIDs).Error; err != nil {
		return err
	}
	if err := removeRooms(tx, roomIDs); err != nil {
		return err
	}
	return tx.Where("house_id = ?", houseID).Delete(&domain.Bathroom{}).Error
}

func removeHouse(tx *gorm.DB, houseID int) error {
	if err := tx.Where("house_id = ?", houseID).Delete(&domain.Assignment{}).Error; err != nil {
		return err
	}
	if err := removeHouseChildren(tx, houseID); err != nil {
		return err
	}
	return tx.Where("house_id = ?", houseID).Delete(&domain.House{}).Error
}

func removeGuest(tx *gorm.DB, guestID int) error {
	if err := tx.Where("guest_id = ?", guestID).Delete(&domain.Assignment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("guest_id = ?", guestID).Delete(&domain.FamilyMember{}).Error; err != nil {
		return err
	}
	return tx.Where("guest_id = ?", guestID).Delete(&domain.Guest{}).Error
}

// insertRoom stores room and its beds under houseID, filling in the new identities.
func insertRoom(tx *gorm.DB, houseID int, room *domain.Room) error {
	room.RoomID = 0
	room.HouseID = houseID
	if err := tx.Omit(clause.Associations).Create(room).Error; err != nil {
		return err
	}
	return insertBeds(tx, room)
}

func insertBeds(tx *gorm.DB, room *domain.Room) error {
	if len(room.Beds) == 0 {
		return nil
	}
	for i := range room.Beds {
		room.Beds[i].BedID = 0
		room.Beds[i].RoomID = room.RoomID
	}
	return tx.Omit(clause.Associations).Create(&room.Beds).Error
}

func insertBathroom(tx *gorm.DB, houseID int, bathroom *domain.Bathroom) error {
	bathroom.BathroomID = 0
	bathroom.HouseID = houseID
	return tx.Omit(clause.Associations).Create(bathroom).Error
}

// attachBeds loads the beds of every room in rooms.
func attachBeds(db *gorm.DB, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	ids := make([]int, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.RoomID)
	}
	var beds []domain.Bed
	if err := db.Where("room_id IN ?", ids).Order("bed_id ASC").Find(&beds).Error; err != nil {
		return err
	}
	byRoom := make(map[int][]domain.Bed, len(rooms))
	for _, b := range beds {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}
	for i := range rooms {
		rooms[i].Beds = byRoom[rooms[i].RoomID]
		if rooms[i].Beds == nil {
			rooms[i].Beds = []domain.Bed{}
		}
	}
	return nil
}
