package models

import "time"

type UserReq struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type PeopleReq struct {
	FullName    string   `json:"full_name" validate:"required,max=100"`
	Gender      string   `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Description string   `json:"description" validate:"required"`
	Height      *float64 `json:"height" validate:"omitempty,gte=0"`
	URL         string   `json:"url" validate:"required,max=150"`
}

type PlanetReq struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Climate     *string `json:"climate" validate:"omitempty,max=100"`
	Description string  `json:"description" validate:"required"`
	Population  *int64  `json:"population" validate:"omitempty,gte=0"`
	URL         string  `json:"url" validate:"required,max=150"`
}

type VehicleReq struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Model       *string `json:"model" validate:"omitempty,max=100"`
	Capacity    *int64  `json:"capacity" validate:"omitempty,gte=0"`
	Description string  `json:"description" validate:"required"`
	URL         string  `json:"url" validate:"required,max=150"`
}

type MessageResp struct {
	Message string `json:"message"`
	ID      uint64 `json:"id,omitempty"`
}

type UserResp struct {
	ID               uint64    `json:"id"`
	Username         string    `json:"username"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	SubscriptionDate time.Time `json:"subscription_date"`
	LastUpdate       time.Time `json:"last_update"`
}

type PeopleResp struct {
	ID          uint64  `json:"id"`
	FullName    string  `json:"full_name"`
	Gender      string  `json:"gender"`
	Height      float64 `json:"height"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
}

type PlanetResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Climate     string `json:"climate"`
	Population  int64  `json:"population"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type VehicleResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Model       string `json:"model"`
	Capacity    int64  `json:"capacity"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// FavoriteResp carries Type and Details only when the favorite has a target.
type FavoriteResp struct {
	ID      uint64      `json:"id"`
	UserID  uint64      `json:"user_id"`
	Type    string      `json:"type,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

type RouteResp struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type SitemapResp struct {
	Routes []RouteResp `json:"routes"`
}
