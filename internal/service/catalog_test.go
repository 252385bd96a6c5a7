package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

func TestUserCreateGet(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.UserCreate(ctx, models.UserReq{
		Email:    "a@x.com",
		Username: "a",
		Name:     "A",
		Password: "p",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.SubscriptionDate.IsZero())

	got, err := catalog.UserGet(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "a", got.Username)
	assert.Equal(t, "A", got.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("p")))
}

func TestUserCreateConflict(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()
	mustUser(t, catalog, "leia")

	_, err := catalog.UserCreate(ctx, models.UserReq{Email: "leia@holonet.sw", Username: "other", Name: "x", Password: "p"})
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = catalog.UserCreate(ctx, models.UserReq{Email: "other@holonet.sw", Username: "leia", Name: "x", Password: "p"})
	assert.True(t, errors.Is(err, ErrConflict))

	users, err := catalog.UserList(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestPeopleCreateDefaults(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.PeopleCreate(ctx, models.PeopleReq{
		FullName:    "Luke Skywalker",
		Gender:      db.GenderMale,
		Description: "jedi",
		URL:         "https://swapi.dev/api/people/1",
	})
	require.NoError(t, err)

	got, err := catalog.PeopleGet(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PeopleResp{
		ID:          created.ID,
		FullName:    "Luke Skywalker",
		Gender:      db.GenderMale,
		Height:      0,
		Description: "jedi",
		URL:         "https://swapi.dev/api/people/1",
	}, got.Serialize())

	_, err = catalog.PeopleCreate(ctx, models.PeopleReq{FullName: "Luke Skywalker", Gender: db.GenderMale, Description: "d", URL: "u"})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestPlanetCreateDefaults(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	plain := mustPlanet(t, catalog, "Hoth")
	got, err := catalog.PlanetGet(ctx, plain.ID)
	require.NoError(t, err)
	assert.Equal(t, db.NoInformation, got.Climate)
	assert.Equal(t, int64(0), got.Population)

	full, err := catalog.PlanetCreate(ctx, models.PlanetReq{
		Name:        "Naboo",
		Climate:     strPtr("temperate"),
		Population:  int64Ptr(4500000000),
		Description: "green",
		URL:         "u",
	})
	require.NoError(t, err)
	got, err = catalog.PlanetGet(ctx, full.ID)
	require.NoError(t, err)
	assert.Equal(t, "temperate", got.Climate)
	assert.Equal(t, int64(4500000000), got.Population)
}

func TestVehicleCreateDefaults(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.VehicleCreate(ctx, models.VehicleReq{
		Name:        "Snowspeeder",
		Capacity:    int64Ptr(2),
		Description: "fast",
		URL:         "u",
	})
	require.NoError(t, err)

	got, err := catalog.VehicleGet(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, db.NoInformation, got.Model)
	assert.Equal(t, int64(2), got.Capacity)

	_, err = catalog.VehicleCreate(ctx, models.VehicleReq{Name: "Snowspeeder", Description: "d", URL: "u"})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestListOrdered(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"Tatooine", "Alderaan", "Yavin IV"} {
		mustPlanet(t, catalog, name)
	}

	planets, err := catalog.PlanetList(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 3)
	assert.Equal(t, "Tatooine", planets[0].Name)
	assert.Equal(t, "Alderaan", planets[1].Name)
	assert.Equal(t, "Yavin IV", planets[2].Name)
}

func TestGetNotFound(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	_, err := catalog.UserGet(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = catalog.PeopleGet(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = catalog.PlanetGet(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = catalog.VehicleGet(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDelete(t *testing.T) {
	catalog, _ := newTestServices(t)
	ctx := context.Background()

	v := mustVehicle(t, catalog, "AT-AT")
	mustVehicle(t, catalog, "AT-ST")

	err := catalog.VehicleDelete(ctx, 999)
	assert.True(t, errors.Is(err, ErrNotFound))

	vehicles, err := catalog.VehicleList(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)

	require.NoError(t, catalog.VehicleDelete(ctx, v.ID))

	vehicles, err = catalog.VehicleList(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "AT-ST", vehicles[0].Name)
}

func TestDeleteCascadesFavorites(t *testing.T) {
	catalog, favorites := newTestServices(t)
	ctx := context.Background()

	user := mustUser(t, catalog, "han")
	planet := mustPlanet(t, catalog, "Bespin")
	people := mustPeople(t, catalog, "Lando Calrissian")

	_, err := favorites.FavoriteAdd(ctx, user.ID, db.Target{Type: db.TargetPlanet, ID: planet.ID})
	require.NoError(t, err)
	_, err = favorites.FavoriteAdd(ctx, user.ID, db.Target{Type: db.TargetPeople, ID: people.ID})
	require.NoError(t, err)

	require.NoError(t, catalog.PlanetDelete(ctx, planet.ID))

	got, err := favorites.FavoriteList(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "people", got[0].Serialize().Type)

	require.NoError(t, catalog.UserDelete(ctx, user.ID))
	_, err = favorites.FavoriteList(ctx, user.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
