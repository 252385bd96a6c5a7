package service

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
)

type Favorites struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewFavorites(db *gorm.DB, l *zap.SugaredLogger) *Favorites {
	return &Favorites{
		db:     db,
		logger: l,
	}
}

// FavoriteList returns the user's favorites in insertion order with their
// targets loaded.
func (s *Favorites) FavoriteList(ctx context.Context, userID uint64) ([]db.Favorite, error) {
	favorites := make([]db.Favorite, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[db.User](tx, "User", userID); err != nil {
			return err
		}
		res := tx.Preload("Planet").Preload("People").Preload("Vehicle").
			Where("user_id = ?", userID).
			Order("id").
			Find(&favorites)
		if res.Error != nil {
			return errors.Wrap(res.Error, "list favorites")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// FavoriteAdd relies on the favorites unique indexes to reject duplicates,
// so two concurrent adds cannot both succeed.
func (s *Favorites) FavoriteAdd(ctx context.Context, userID uint64, target db.Target) (*db.Favorite, error) {
	model := db.NewFavorite(userID, target)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[db.User](tx, "User", userID); err != nil {
			return err
		}
		if err := targetExists(tx, target); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
			return conflictOr(err, "The "+string(target.Type)+" is already in the favorites", "add favorite")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("favorite added", "user_id", userID, "type", target.Type, "target_id", target.ID)
	return &model, nil
}

func (s *Favorites) FavoriteRemove(ctx context.Context, userID uint64, target db.Target) error {
	where, args, err := squirrel.Eq{
		"user_id":            userID,
		target.Type.Column(): target.ID,
	}.ToSql()
	if err != nil {
		return errors.Wrap(err, "build sql")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := db.Favorite{}
		res := tx.Where(where, args...).First(&model)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "Favorite %s for this user", target.Type)
			}
			return errors.Wrap(res.Error, "find favorite")
		}

		if err := tx.Delete(&model).Error; err != nil {
			return errors.Wrap(err, "delete favorite")
		}
		return nil
	})
}

func targetExists(tx *gorm.DB, target db.Target) error {
	var err error
	switch target.Type {
	case db.TargetPeople:
		_, err = findByID[db.People](tx, "People", target.ID)
	case db.TargetPlanet:
		_, err = findByID[db.Planet](tx, "Planet", target.ID)
	case db.TargetVehicle:
		_, err = findByID[db.Vehicle](tx, "Vehicle", target.ID)
	default:
		err = errors.Wrapf(ErrBadRequest, "unknown favorite type %q", target.Type)
	}
	return err
}
