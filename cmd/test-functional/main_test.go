//go:build functional

package test_functional

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

func post(ctx context.Context, path, body string, result interface{}) (*resty.Response, error) {
	u := AppBaseURL
	u.Path = path

	r := resty.New().
		R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx)
	if body != "" {
		r.SetBody(body)
	}
	if result != nil {
		r.SetResult(result)
	}
	return r.Post(u.String())
}

func TestUserCreate(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		resp, err := post(ctx, "/user", `
			{"email": "luke@holonet.sw", "username": "luke", "name": "Luke", "password": "usetheforce"}
		`, &models.MessageResp{})
		require.Nil(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode())

		got, ok := resp.Result().(*models.MessageResp)
		assert.True(t, ok)
		assert.NotZero(t, got.ID)

		var (
			username string
			password string
		)
		err = DBConn.QueryRow(ctx, "SELECT username, password FROM users WHERE id=$1", got.ID).Scan(&username, &password)
		assert.Nil(t, err)
		assert.Equal(t, "luke", username)
		assert.NotEqual(t, "usetheforce", password)
	})

	t.Run("bad body", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		resp, err := post(ctx, "/user", `{"something": "???"}`, nil)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})
}

func TestFavoritePlanet(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	resp, err := post(ctx, "/user", `{"email": "luke@holonet.sw", "username": "luke", "name": "Luke", "password": "p"}`, nil)
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = post(ctx, "/planets", `{"name": "Hoth", "description": "ice planet", "url": "https://swapi.dev/api/planets/4/"}`, nil)
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = post(ctx, "/users/1/favorite/planet/1", "", nil)
	require.Nil(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = post(ctx, "/users/1/favorite/planet/1", "", nil)
	require.Nil(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	var count int
	err = DBConn.QueryRow(ctx, "SELECT count(*) FROM favorites WHERE user_id=1 AND planet_id=1").Scan(&count)
	assert.Nil(t, err)
	assert.Equal(t, 1, count)

	// the table itself refuses a favorite with two targets
	_, err = DBConn.Exec(ctx, "INSERT INTO people (full_name, gender, description, url) VALUES ('Luke', 'MALE', 'd', 'u')")
	require.Nil(t, err)
	_, err = DBConn.Exec(ctx, "INSERT INTO favorites (user_id, planet_id, people_id) VALUES (1, 1, 1)")
	assert.NotNil(t, err)

	u := AppBaseURL
	u.Path = "/users/1/favorites"
	list, err := resty.New().R().SetContext(ctx).Get(u.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, list.StatusCode())
	assert.Contains(t, list.String(), `"type":"planet"`)
}
