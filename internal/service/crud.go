package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
)

func findByID[T any](tx *gorm.DB, label string, id uint64) (*T, error) {
	row := new(T)
	if err := tx.First(row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "%s ID %d", label, id)
		}
		return nil, errors.Wrapf(err, "get %s", label)
	}
	return row, nil
}

func listAll[T any](tx *gorm.DB, label string) ([]T, error) {
	rows := make([]T, 0)
	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", label)
	}
	return rows, nil
}

func exists(tx *gorm.DB, model interface{}, column, value string) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", value).Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "check %s", column)
	}
	return n > 0, nil
}

// deleteWithFavorites removes the row and every favorite pointing at it.
func deleteWithFavorites[T any](tx *gorm.DB, label, column string, id uint64) error {
	row, err := findByID[T](tx, label, id)
	if err != nil {
		return err
	}
	if err := tx.Where(column+" = ?", id).Delete(&db.Favorite{}).Error; err != nil {
		return errors.Wrapf(err, "delete %s favorites", label)
	}
	if err := tx.Delete(row).Error; err != nil {
		return errors.Wrapf(err, "delete %s", label)
	}
	return nil
}
