package transport

import (
	"context"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/admin"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/service"
)

var Module = fx.Provide(NewHTTPServer)

type (
	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		echo      *echo.Echo
		catalog   *service.Catalog
		favorites *service.Favorites
		overview  *admin.Overview
		metrics   *metrics
		logger    *zap.SugaredLogger
	}
)

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, catalog *service.Catalog, favorites *service.Favorites,
	overview *admin.Overview, logger *zap.SugaredLogger) *HTTPServer {
	instance := New(catalog, favorites, overview, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.HTTPAddr()
				logger.Infow("Starting HTTP server.", "addr", listen)
				if err := instance.echo.Start(listen); err != nil && err != http.ErrServerClosed {
					logger.Fatalw("shutting down the server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return instance.echo.Shutdown(ctx)
		},
	})

	return instance
}

// New builds the router without starting it.
func New(catalog *service.Catalog, favorites *service.Favorites, overview *admin.Overview, logger *zap.SugaredLogger) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	instance := &HTTPServer{
		echo:      e,
		catalog:   catalog,
		favorites: favorites,
		overview:  overview,
		metrics:   newMetrics(),
		logger:    logger,
	}

	e.Validator = NewValidator()
	e.HTTPErrorHandler = instance.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(instance.RequestLogger())
	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return !logger.Desugar().Core().Enabled(zap.DebugLevel)
		},
		Handler: instance.dumpBody,
	}))
	e.Use(middleware.CORS())
	e.Use(instance.metrics.Middleware)

	e.GET("/", instance.Sitemap)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/metrics", echo.WrapHandler(instance.metrics.Handler()))

	e.GET("/users", instance.UserList)
	e.GET("/user/:id", instance.UserGet)
	e.POST("/user", instance.UserCreate)
	e.DELETE("/user/:id", instance.UserDelete)

	e.GET("/people", instance.PeopleList)
	e.GET("/people/:id", instance.PeopleGet)
	e.POST("/people", instance.PeopleCreate)
	e.DELETE("/people/:id", instance.PeopleDelete)

	e.GET("/planets", instance.PlanetList)
	e.GET("/planets/:id", instance.PlanetGet)
	e.POST("/planets", instance.PlanetCreate)
	e.DELETE("/planets/:id", instance.PlanetDelete)

	e.GET("/vehicles", instance.VehicleList)
	e.GET("/vehicles/:id", instance.VehicleGet)
	e.POST("/vehicles", instance.VehicleCreate)
	e.DELETE("/vehicles/:id", instance.VehicleDelete)

	userG := e.Group("/users/:id")
	userG.GET("/favorites", instance.FavoriteList)
	for _, t := range []db.TargetType{db.TargetPeople, db.TargetPlanet, db.TargetVehicle} {
		userG.POST("/favorite/"+string(t)+"/:targetID", instance.FavoriteAdd(t))
		userG.DELETE("/favorite/"+string(t)+"/:targetID", instance.FavoriteRemove(t))
	}

	e.GET("/admin/:kind", instance.AdminList)

	return instance
}

// Handler exposes the router, mainly for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Routes lists every registered route sorted by path, then method.
func (s *HTTPServer) Routes() []models.RouteResp {
	routes := s.echo.Routes()
	resp := make([]models.RouteResp, 0, len(routes))
	for _, r := range routes {
		if r.Method == echo.RouteNotFound {
			continue
		}
		resp = append(resp, models.RouteResp{Method: r.Method, Path: r.Path})
	}
	sort.Slice(resp, func(i, j int) bool {
		if resp[i].Path != resp[j].Path {
			return resp[i].Path < resp[j].Path
		}
		return resp[i].Method < resp[j].Method
	})
	return resp
}

func (s *HTTPServer) Sitemap(c echo.Context) error {
	return c.JSON(http.StatusOK, models.SitemapResp{Routes: s.Routes()})
}

func (s *HTTPServer) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

// ErrorHandler maps service errors to status codes and renders
// {"message": ...}. Internal errors are logged and not echoed back.
func (s *HTTPServer) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he, ok := err.(*echo.HTTPError)
	if !ok {
		he = toHTTPError(err)
	}
	if he.Code >= http.StatusInternalServerError {
		s.logger.Errorw("request failed",
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}

	message, ok := he.Message.(string)
	if !ok {
		message = http.StatusText(he.Code)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, models.MessageResp{Message: message})
	}
	if err != nil {
		s.logger.Errorw("write error response", "error", err)
	}
}

func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		return echo.NewHTTPError(http.StatusBadRequest, publicMessage(err, service.ErrBadRequest))
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, publicMessage(err, service.ErrNotFound)+" not found")
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, publicMessage(err, service.ErrConflict))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
}

// publicMessage drops the trailing sentinel text, "Planet ID 3: not found"
// becomes "Planet ID 3".
func publicMessage(err, sentinel error) string {
	return strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
}

////////

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	return nil
}

// validationMessage lists the offending json fields.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Field()
	}
	return "You need to specify valid: " + strings.Join(fields, ", ")
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "You need to specify the request body as a json object")
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 64)
	if e != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return vv, nil
}
