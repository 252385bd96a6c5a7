package db

import (
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

type TargetType string

const (
	TargetPeople  TargetType = "people"
	TargetPlanet  TargetType = "planet"
	TargetVehicle TargetType = "vehicle"
)

var ErrUnknownTargetType = errors.New("unknown favorite target type")

type (
	// Target is the one entity a favorite points at.
	Target struct {
		Type TargetType
		ID   uint64
	}

	// Favorite rows are built with NewFavorite so that exactly one of
	// PlanetID, PeopleID and VehicleID is set. The table check constraint
	// rejects anything else.
	Favorite struct {
		ID        uint64   `gorm:"primarykey"`
		UserID    uint64   `gorm:"not null;index;uniqueIndex:uidx_favorite_user_planet;uniqueIndex:uidx_favorite_user_people;uniqueIndex:uidx_favorite_user_vehicle"`
		PlanetID  *uint64  `gorm:"uniqueIndex:uidx_favorite_user_planet;check:(planet_id IS NOT NULL AND people_id IS NULL AND vehicle_id IS NULL) OR (planet_id IS NULL AND people_id IS NOT NULL AND vehicle_id IS NULL) OR (planet_id IS NULL AND people_id IS NULL AND vehicle_id IS NOT NULL)"`
		PeopleID  *uint64  `gorm:"uniqueIndex:uidx_favorite_user_people"`
		VehicleID *uint64  `gorm:"uniqueIndex:uidx_favorite_user_vehicle"`
		User      *User    `gorm:"foreignKey:UserID"`
		Planet    *Planet  `gorm:"foreignKey:PlanetID"`
		People    *People  `gorm:"foreignKey:PeopleID"`
		Vehicle   *Vehicle `gorm:"foreignKey:VehicleID"`
	}
)

func ParseTargetType(s string) (TargetType, error) {
	switch t := TargetType(s); t {
	case TargetPeople, TargetPlanet, TargetVehicle:
		return t, nil
	}
	return "", errors.Wrapf(ErrUnknownTargetType, "%q", s)
}

// Column is the favorites column holding ids of this target type.
func (t TargetType) Column() string {
	return string(t) + "_id"
}

func NewFavorite(userID uint64, target Target) Favorite {
	id := target.ID
	f := Favorite{UserID: userID}
	switch target.Type {
	case TargetPlanet:
		f.PlanetID = &id
	case TargetPeople:
		f.PeopleID = &id
	case TargetVehicle:
		f.VehicleID = &id
	}
	return f
}

// Target reports which entity the favorite points at. ok is false when no
// foreign key is set.
func (f *Favorite) Target() (target Target, ok bool) {
	switch {
	case f.PlanetID != nil:
		return Target{Type: TargetPlanet, ID: *f.PlanetID}, true
	case f.PeopleID != nil:
		return Target{Type: TargetPeople, ID: *f.PeopleID}, true
	case f.VehicleID != nil:
		return Target{Type: TargetVehicle, ID: *f.VehicleID}, true
	}
	return Target{}, false
}

// Serialize expects the target association to be preloaded. A missing
// association leaves Details empty but keeps Type.
func (f *Favorite) Serialize() models.FavoriteResp {
	resp := models.FavoriteResp{
		ID:     f.ID,
		UserID: f.UserID,
	}

	target, ok := f.Target()
	if !ok {
		return resp
	}
	resp.Type = string(target.Type)

	switch target.Type {
	case TargetPlanet:
		if f.Planet != nil {
			resp.Details = f.Planet.Serialize()
		}
	case TargetPeople:
		if f.People != nil {
			resp.Details = f.People.Serialize()
		}
	case TargetVehicle:
		if f.Vehicle != nil {
			resp.Details = f.Vehicle.Serialize()
		}
	}
	return resp
}
