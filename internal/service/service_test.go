package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:", zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func newTestServices(t *testing.T) (*Catalog, *Favorites) {
	t.Helper()

	gdb := newTestDB(t)
	l := zap.NewNop().Sugar()
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	return NewCatalog(gdb, cfg, l), NewFavorites(gdb, l)
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func mustUser(t *testing.T, c *Catalog, username string) *db.User {
	t.Helper()

	u, err := c.UserCreate(context.Background(), models.UserReq{
		Email:    username + "@holonet.sw",
		Username: username,
		Name:     username,
		Password: "p",
	})
	require.NoError(t, err)
	return u
}

func mustPlanet(t *testing.T, c *Catalog, name string) *db.Planet {
	t.Helper()

	p, err := c.PlanetCreate(context.Background(), models.PlanetReq{
		Name:        name,
		Description: "a planet",
		URL:         "https://swapi.dev/api/planets/",
	})
	require.NoError(t, err)
	return p
}

func mustPeople(t *testing.T, c *Catalog, name string) *db.People {
	t.Helper()

	p, err := c.PeopleCreate(context.Background(), models.PeopleReq{
		FullName:    name,
		Gender:      db.GenderOther,
		Description: "someone",
		URL:         "https://swapi.dev/api/people/",
	})
	require.NoError(t, err)
	return p
}

func mustVehicle(t *testing.T, c *Catalog, name string) *db.Vehicle {
	t.Helper()

	v, err := c.VehicleCreate(context.Background(), models.VehicleReq{
		Name:        name,
		Description: "a vehicle",
		URL:         "https://swapi.dev/api/vehicles/",
	})
	require.NoError(t, err)
	return v
}
