package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

// Catalog is the CRUD service for users, people, planets and vehicles. Every
// call runs in a single transaction.
type Catalog struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	bcryptCost int
}

func NewCatalog(db *gorm.DB, cfg *config.Config, l *zap.SugaredLogger) *Catalog {
	return &Catalog{
		db:         db,
		logger:     l,
		bcryptCost: cfg.BcryptCost,
	}
}

func (s *Catalog) UserList(ctx context.Context) ([]db.User, error) {
	return listAll[db.User](s.db.WithContext(ctx), "users")
}

func (s *Catalog) UserGet(ctx context.Context, id uint64) (*db.User, error) {
	return findByID[db.User](s.db.WithContext(ctx), "User", id)
}

func (s *Catalog) UserCreate(ctx context.Context, req models.UserReq) (*db.User, error) {
	hash, err := s.bcryptGen(req.Password)
	if err != nil {
		return nil, err
	}

	model := db.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &db.User{}, "email", req.Email)
		if err != nil {
			return err
		}
		if taken {
			return errors.Wrap(ErrConflict, "User exist")
		}
		taken, err = exists(tx, &db.User{}, "username", req.Username)
		if err != nil {
			return err
		}
		if taken {
			return errors.Wrap(ErrConflict, "Username exist")
		}

		if err := tx.Create(&model).Error; err != nil {
			return conflictOr(err, "User exist", "create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user created", "id", model.ID, "username", model.Username)
	return &model, nil
}

func (s *Catalog) UserDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithFavorites[db.User](tx, "User", "user_id", id)
	})
}

func (s *Catalog) PeopleList(ctx context.Context) ([]db.People, error) {
	return listAll[db.People](s.db.WithContext(ctx), "people")
}

func (s *Catalog) PeopleGet(ctx context.Context, id uint64) (*db.People, error) {
	return findByID[db.People](s.db.WithContext(ctx), "People", id)
}

func (s *Catalog) PeopleCreate(ctx context.Context, req models.PeopleReq) (*db.People, error) {
	model := db.People{
		FullName:    req.FullName,
		Gender:      req.Gender,
		Description: req.Description,
		URL:         req.URL,
	}
	if req.Height != nil {
		model.Height = *req.Height
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &db.People{}, "full_name", req.FullName)
		if err != nil {
			return err
		}
		if taken {
			return errors.Wrap(ErrConflict, "People exist")
		}

		if err := tx.Create(&model).Error; err != nil {
			return conflictOr(err, "People exist", "create people")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("people created", "id", model.ID, "full_name", model.FullName)
	return &model, nil
}

func (s *Catalog) PeopleDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithFavorites[db.People](tx, "People", db.TargetPeople.Column(), id)
	})
}

func (s *Catalog) PlanetList(ctx context.Context) ([]db.Planet, error) {
	return listAll[db.Planet](s.db.WithContext(ctx), "planets")
}

func (s *Catalog) PlanetGet(ctx context.Context, id uint64) (*db.Planet, error) {
	return findByID[db.Planet](s.db.WithContext(ctx), "Planet", id)
}

func (s *Catalog) PlanetCreate(ctx context.Context, req models.PlanetReq) (*db.Planet, error) {
	model := db.Planet{
		Name:        req.Name,
		Climate:     db.NoInformation,
		Description: req.Description,
		URL:         req.URL,
	}
	if req.Climate != nil && *req.Climate != "" {
		model.Climate = *req.Climate
	}
	if req.Population != nil {
		model.Population = *req.Population
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &db.Planet{}, "name", req.Name)
		if err != nil {
			return err
		}
		if taken {
			return errors.Wrap(ErrConflict, "Planet exist")
		}

		if err := tx.Create(&model).Error; err != nil {
			return conflictOr(err, "Planet exist", "create planet")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("planet created", "id", model.ID, "name", model.Name)
	return &model, nil
}

func (s *Catalog) PlanetDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithFavorites[db.Planet](tx, "Planet", db.TargetPlanet.Column(), id)
	})
}

func (s *Catalog) VehicleList(ctx context.Context) ([]db.Vehicle, error) {
	return listAll[db.Vehicle](s.db.WithContext(ctx), "vehicles")
}

func (s *Catalog) VehicleGet(ctx context.Context, id uint64) (*db.Vehicle, error) {
	return findByID[db.Vehicle](s.db.WithContext(ctx), "Vehicle", id)
}

func (s *Catalog) VehicleCreate(ctx context.Context, req models.VehicleReq) (*db.Vehicle, error) {
	model := db.Vehicle{
		Name:        req.Name,
		Model:       db.NoInformation,
		Description: req.Description,
		URL:         req.URL,
	}
	if req.Model != nil && *req.Model != "" {
		model.Model = *req.Model
	}
	if req.Capacity != nil {
		model.Capacity = *req.Capacity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &db.Vehicle{}, "name", req.Name)
		if err != nil {
			return err
		}
		if taken {
			return errors.Wrap(ErrConflict, "Vehicle exist")
		}

		if err := tx.Create(&model).Error; err != nil {
			return conflictOr(err, "Vehicle exist", "create vehicle")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("vehicle created", "id", model.ID, "name", model.Name)
	return &model, nil
}

func (s *Catalog) VehicleDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithFavorites[db.Vehicle](tx, "Vehicle", db.TargetVehicle.Column(), id)
	})
}

func (s *Catalog) bcryptGen(pass string) (string, error) {
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errors.Wrap(ErrBadRequest, "Password must be at most 72 bytes")
	}
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}
