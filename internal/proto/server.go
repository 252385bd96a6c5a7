package proto

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/service"
)

type HolonetServerImpl struct {
	catalog   *service.Catalog
	favorites *service.Favorites
	logger    *zap.SugaredLogger
}

func NewGRPCServer(lc fx.Lifecycle, cfg *config.Config, catalog *service.Catalog, favorites *service.Favorites,
	logger *zap.SugaredLogger) *HolonetServerImpl {
	instance := New(catalog, favorites, logger)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(instance.logCalls))
	RegisterHolonetServer(grpcServer, instance)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listen := cfg.GRPCAddr()
			lis, err := net.Listen("tcp", listen)
			if err != nil {
				return errors.Wrap(err, "grpc listen")
			}

			go func() {
				logger.Infow("Starting GRPC server.", "addr", listen)
				if err := grpcServer.Serve(lis); err != nil {
					logger.Errorw("grpc serve", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping GRPC server.")
			grpcServer.GracefulStop()
			return nil
		},
	})

	return instance
}

func New(catalog *service.Catalog, favorites *service.Favorites, logger *zap.SugaredLogger) *HolonetServerImpl {
	return &HolonetServerImpl{
		catalog:   catalog,
		favorites: favorites,
		logger:    logger,
	}
}

// ListFavorites expects {"user_id": <number>}.
func (s *HolonetServerImpl) ListFavorites(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	v, ok := req.GetFields()["user_id"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID := v.GetNumberValue()
	if userID < 1 || userID != float64(uint64(userID)) {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a positive integer")
	}

	favorites, err := s.favorites.FavoriteList(ctx, uint64(userID))
	if err != nil {
		return nil, s.toStatus(err)
	}

	items := make([]models.FavoriteResp, len(favorites))
	for i := range favorites {
		items[i] = favorites[i].Serialize()
	}
	return s.itemsStruct(items)
}

// ListEntities expects {"type": "users" | "people" | "planets" | "vehicles"}.
func (s *HolonetServerImpl) ListEntities(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var (
		items interface{}
		err   error
	)
	switch kind := req.GetFields()["type"].GetStringValue(); kind {
	case "users":
		items, err = s.users(ctx)
	case "people":
		items, err = s.people(ctx)
	case "planets":
		items, err = s.planets(ctx)
	case "vehicles":
		items, err = s.vehicles(ctx)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown entity type %q", kind)
	}
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.itemsStruct(items)
}

func (s *HolonetServerImpl) users(ctx context.Context) ([]models.UserResp, error) {
	rows, err := s.catalog.UserList(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.UserResp, len(rows))
	for i := range rows {
		out[i] = rows[i].Serialize()
	}
	return out, nil
}

func (s *HolonetServerImpl) people(ctx context.Context) ([]models.PeopleResp, error) {
	rows, err := s.catalog.PeopleList(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PeopleResp, len(rows))
	for i := range rows {
		out[i] = rows[i].Serialize()
	}
	return out, nil
}

func (s *HolonetServerImpl) planets(ctx context.Context) ([]models.PlanetResp, error) {
	rows, err := s.catalog.PlanetList(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PlanetResp, len(rows))
	for i := range rows {
		out[i] = rows[i].Serialize()
	}
	return out, nil
}

func (s *HolonetServerImpl) vehicles(ctx context.Context) ([]models.VehicleResp, error) {
	rows, err := s.catalog.VehicleList(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.VehicleResp, len(rows))
	for i := range rows {
		out[i] = rows[i].Serialize()
	}
	return out, nil
}

func (s *HolonetServerImpl) itemsStruct(items interface{}) (*structpb.Struct, error) {
	res, err := toStruct(map[string]interface{}{"items": items})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return res, nil
}

// toStruct goes through json so the payload matches the HTTP responses.
func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal")
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}
	res, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "new struct")
	}
	return res, nil
}

func (s *HolonetServerImpl) toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrBadRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	}
	s.logger.Errorw("grpc call failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *HolonetServerImpl) logCalls(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Infow("grpc call",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"latency", time.Since(start),
	)
	return resp, err
}
