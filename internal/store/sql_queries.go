package store

import (
	"github.com/MKhiriev/zephyr-centrum/models"
	sq "github.com/Masterminds/squirrel"
)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{"user_id", "username", "email", "role", "password_hash", "created_at"}

var usersTable = models.User{}.TableName()

func returningUserColumns() string {
	s := "RETURNING user_id"
	for _, c := range userColumns[1:] {
		s += ", " + c
	}
	return s
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "role", "password_hash").
		Values(user.Username, user.Email, string(user.Role), user.PasswordHash).
		Suffix(returningUserColumns()).
		ToSql()
}

// buildFindUserQuery selects the single user whose column equals value.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("user_id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("role", string(user.Role)).
		Set("password_hash", user.PasswordHash).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix(returningUserColumns()).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
