package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

func (s *HTTPServer) UserList(c echo.Context) error {
	users, err := s.catalog.UserList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.UserResp, len(users))
	for i := range users {
		resp[i] = users[i].Serialize()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) UserGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	user, err := s.catalog.UserGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Serialize())
}

func (s *HTTPServer) UserCreate(c echo.Context) error {
	req := models.UserReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.catalog.UserCreate(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.MessageResp{
		Message: "Your user save successfully",
		ID:      user.ID,
	})
}

func (s *HTTPServer) UserDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.UserDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Your user delete successfully"})
}

func (s *HTTPServer) PeopleList(c echo.Context) error {
	people, err := s.catalog.PeopleList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.PeopleResp, len(people))
	for i := range people {
		resp[i] = people[i].Serialize()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) PeopleGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	people, err := s.catalog.PeopleGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, people.Serialize())
}

func (s *HTTPServer) PeopleCreate(c echo.Context) error {
	req := models.PeopleReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	people, err := s.catalog.PeopleCreate(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.MessageResp{
		Message: "Your people save successfully",
		ID:      people.ID,
	})
}

func (s *HTTPServer) PeopleDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.PeopleDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Your people delete successfully"})
}

func (s *HTTPServer) PlanetList(c echo.Context) error {
	planets, err := s.catalog.PlanetList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.PlanetResp, len(planets))
	for i := range planets {
		resp[i] = planets[i].Serialize()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) PlanetGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	planet, err := s.catalog.PlanetGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planet.Serialize())
}

func (s *HTTPServer) PlanetCreate(c echo.Context) error {
	req := models.PlanetReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	planet, err := s.catalog.PlanetCreate(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.MessageResp{
		Message: "Your planet save successfully",
		ID:      planet.ID,
	})
}

func (s *HTTPServer) PlanetDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.PlanetDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Your planet delete successfully"})
}

func (s *HTTPServer) VehicleList(c echo.Context) error {
	vehicles, err := s.catalog.VehicleList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.VehicleResp, len(vehicles))
	for i := range vehicles {
		resp[i] = vehicles[i].Serialize()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) VehicleGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := s.catalog.VehicleGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicle.Serialize())
}

func (s *HTTPServer) VehicleCreate(c echo.Context) error {
	req := models.VehicleReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	vehicle, err := s.catalog.VehicleCreate(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.MessageResp{
		Message: "Your vehicle save successfully",
		ID:      vehicle.ID,
	})
}

func (s *HTTPServer) VehicleDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.VehicleDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Your vehicle delete successfully"})
}
