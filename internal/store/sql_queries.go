package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-car-keeper/models"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	userColumns = []string{"id", "last_name", "first_name", "user_name", "passcode"}
	carColumns  = []string{"id", "make", "make_id", "user_id"}
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Insert(user.TableName()).
		SetMap(sq.Eq{
			"last_name":  user.LastName,
			"first_name": user.FirstName,
			"user_name":  user.UserName,
			"passcode":   user.Passcode,
		}).
		Suffix("RETURNING id"))
}

func buildFindUserByUserNameQuery(userName string) (string, []any, error) {
	return toSQL(psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_name": userName}))
}

func buildListCarsQuery(userID int64) (string, []any, error) {
	return toSQL(psql.Select(carColumns...).
		From(models.Car{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id"))
}

func buildGetCarQuery(userID, carID int64) (string, []any, error) {
	return toSQL(psql.Select(carColumns...).
		From(models.Car{}.TableName()).
		Where(sq.Eq{"id": carID, "user_id": userID}))
}

func buildCreateCarQuery(car models.Car) (string, []any, error) {
	return toSQL(psql.Insert(car.TableName()).
		SetMap(sq.Eq{
			"make":    car.Make,
			"make_id": car.MakeID,
			"user_id": car.UserID,
		}).
		Suffix("RETURNING id"))
}

func buildUpdateCarQuery(car models.Car) (string, []any, error) {
	return toSQL(psql.Update(car.TableName()).
		SetMap(sq.Eq{"make": car.Make}).
		Where(sq.Eq{"id": car.ID, "user_id": car.UserID}))
}

func buildDeleteCarQuery(userID, carID int64) (string, []any, error) {
	return toSQL(psql.Delete(models.Car{}.TableName()).
		Where(sq.Eq{"id": carID, "user_id": userID}))
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
