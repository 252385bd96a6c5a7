package admin

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/service"
)

const UnknownUser = "unknown user"

var Module = fx.Provide(NewOverview)

type (
	Row struct {
		Item        interface{} `json:"item"`
		FavoritedBy string      `json:"favorited_by"`
	}

	Overview struct {
		db *gorm.DB
	}

	ownerRow struct {
		TargetID uint64
		UserName *string
	}
)

func NewOverview(db *gorm.DB) *Overview {
	return &Overview{db: db}
}

// FormatOwners joins favorite owner names with ", ". A nil name stands for a
// favorite whose user row is gone.
func FormatOwners(names []*string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if name == nil {
			parts[i] = UnknownUser
			continue
		}
		parts[i] = *name
	}
	return strings.Join(parts, ", ")
}

// List renders every entity of kind ("people", "planets" or "vehicles") with
// the names of the users who favorited it.
func (o *Overview) List(ctx context.Context, kind string) ([]Row, error) {
	tx := o.db.WithContext(ctx)
	switch kind {
	case "people":
		return listRows(tx, db.TargetPeople, func(p *db.People) (uint64, interface{}) { return p.ID, p.Serialize() })
	case "planets":
		return listRows(tx, db.TargetPlanet, func(p *db.Planet) (uint64, interface{}) { return p.ID, p.Serialize() })
	case "vehicles":
		return listRows(tx, db.TargetVehicle, func(v *db.Vehicle) (uint64, interface{}) { return v.ID, v.Serialize() })
	}
	return nil, errors.Wrapf(service.ErrNotFound, "admin view %q", kind)
}

func listRows[T any](tx *gorm.DB, target db.TargetType, view func(*T) (uint64, interface{})) ([]Row, error) {
	items := make([]T, 0)
	if err := tx.Order("id").Find(&items).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", target)
	}

	owners, err := ownersOf(tx, target)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(items))
	for i := range items {
		id, item := view(&items[i])
		rows[i] = Row{
			Item:        item,
			FavoritedBy: FormatOwners(owners[id]),
		}
	}
	return rows, nil
}

func ownersOf(tx *gorm.DB, target db.TargetType) (map[uint64][]*string, error) {
	column := "f." + target.Column()
	sql, args, err := squirrel.
		Select(column+" AS target_id", "u.name AS user_name").From("favorites f").
		LeftJoin("users u ON u.id = f.user_id").
		Where(squirrel.NotEq{column: nil}).
		OrderBy("f.id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	found := make([]ownerRow, 0)
	if err := tx.Raw(sql, args...).Scan(&found).Error; err != nil {
		return nil, errors.Wrap(err, "scan owners")
	}

	owners := make(map[uint64][]*string, len(found))
	for _, r := range found {
		owners[r.TargetID] = append(owners[r.TargetID], r.UserName)
	}
	return owners, nil
}
