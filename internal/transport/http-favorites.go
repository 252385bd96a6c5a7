package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

var favoriteLabels = map[db.TargetType]string{
	db.TargetPeople:  "Person",
	db.TargetPlanet:  "Planet",
	db.TargetVehicle: "Vehicle",
}

func (s *HTTPServer) FavoriteList(c echo.Context) error {
	userID, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	favorites, err := s.favorites.FavoriteList(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]models.FavoriteResp, len(favorites))
	for i := range favorites {
		resp[i] = favorites[i].Serialize()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) FavoriteAdd(t db.TargetType) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, target, err := favoriteParams(c, t)
		if err != nil {
			return err
		}

		if _, err := s.favorites.FavoriteAdd(c.Request().Context(), userID, target); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, models.MessageResp{
			Message: favoriteLabels[t] + " added to favorites successfully",
		})
	}
}

func (s *HTTPServer) FavoriteRemove(t db.TargetType) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, target, err := favoriteParams(c, t)
		if err != nil {
			return err
		}

		if err := s.favorites.FavoriteRemove(c.Request().Context(), userID, target); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, models.MessageResp{
			Message: "Favorite " + string(t) + " deleted successfully",
		})
	}
}

func favoriteParams(c echo.Context, t db.TargetType) (uint64, db.Target, error) {
	userID, err := GetAndParseParam(c, "id")
	if err != nil {
		return 0, db.Target{}, err
	}
	targetID, err := GetAndParseParam(c, "targetID")
	if err != nil {
		return 0, db.Target{}, err
	}
	return userID, db.Target{Type: t, ID: targetID}, nil
}

func (s *HTTPServer) AdminList(c echo.Context) error {
	rows, err := s.overview.List(c.Request().Context(), c.Param("kind"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
