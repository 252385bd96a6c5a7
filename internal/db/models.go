package db

import (
	"time"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"

	NoInformation = "no information"
)

type (
	GormForkedModel struct {
		ID        uint64 `gorm:"primarykey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		ID               uint64     `gorm:"primarykey"`
		Username         string     `gorm:"size:100;unique;not null"`
		Name             string     `gorm:"size:100;not null"`
		Email            string     `gorm:"size:100;unique;not null"`
		Password         string     `gorm:"size:100;not null"`
		SubscriptionDate time.Time  `gorm:"autoCreateTime"`
		LastUpdate       time.Time  `gorm:"autoUpdateTime"`
		Favorites        []Favorite `gorm:"constraint:OnDelete:CASCADE"`
	}

	People struct {
		GormForkedModel
		FullName    string     `gorm:"size:100;unique;not null"`
		Gender      string     `gorm:"size:10;not null;check:gender IN ('MALE','FEMALE','OTHER')"`
		Description string     `gorm:"type:text;not null"`
		Height      float64    `gorm:"not null;default:0"`
		URL         string     `gorm:"size:150;not null"`
		Favorites   []Favorite `gorm:"constraint:OnDelete:CASCADE"`
	}

	Planet struct {
		GormForkedModel
		Name        string     `gorm:"size:100;unique;not null"`
		Climate     string     `gorm:"size:100;not null;default:'no information'"`
		Description string     `gorm:"type:text;not null"`
		Population  int64      `gorm:"not null;default:0"`
		URL         string     `gorm:"size:150;not null"`
		Favorites   []Favorite `gorm:"constraint:OnDelete:CASCADE"`
	}

	Vehicle struct {
		GormForkedModel
		Name        string     `gorm:"size:100;unique;not null"`
		Model       string     `gorm:"size:100;not null;default:'no information'"`
		Capacity    int64      `gorm:"not null;default:0"`
		Description string     `gorm:"type:text;not null"`
		URL         string     `gorm:"size:150;not null"`
		Favorites   []Favorite `gorm:"constraint:OnDelete:CASCADE"`
	}
)

func (People) TableName() string {
	return "people"
}

func (u *User) Serialize() models.UserResp {
	return models.UserResp{
		ID:               u.ID,
		Username:         u.Username,
		Name:             u.Name,
		Email:            u.Email,
		SubscriptionDate: u.SubscriptionDate,
		LastUpdate:       u.LastUpdate,
	}
}

func (p *People) Serialize() models.PeopleResp {
	return models.PeopleResp{
		ID:          p.ID,
		FullName:    p.FullName,
		Gender:      p.Gender,
		Height:      p.Height,
		Description: p.Description,
		URL:         p.URL,
	}
}

func (p *Planet) Serialize() models.PlanetResp {
	return models.PlanetResp{
		ID:          p.ID,
		Name:        p.Name,
		Climate:     p.Climate,
		Population:  p.Population,
		Description: p.Description,
		URL:         p.URL,
	}
}

func (v *Vehicle) Serialize() models.VehicleResp {
	return models.VehicleResp{
		ID:          v.ID,
		Name:        v.Name,
		Model:       v.Model,
		Capacity:    v.Capacity,
		Description: v.Description,
		URL:         v.URL,
	}
}
