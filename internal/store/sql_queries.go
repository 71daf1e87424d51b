package store

import (
	"time"

	"github.com/MKhiriev/go-users-api/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "created_at"}

// userQueries builds the SQL for the users table in the placeholder format
// of the pool's dialect.
type userQueries struct {
	builder sq.StatementBuilderType
}

func newUserQueries(dialect Dialect) userQueries {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		format = sq.Dollar
	}

	return userQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q userQueries) listUsers() (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		ToSql()
}

func (q userQueries) getUser(id int64) (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q userQueries) createUser(user models.NewUser, createdAt time.Time) (string, []any, error) {
	return q.builder.
		Insert(models.User{}.TableName()).
		Columns("first_name", "last_name", "email", "created_at").
		Values(user.FirstName, user.LastName, user.Email, createdAt).
		ToSql()
}

func (q userQueries) deleteUser(id int64) (string, []any, error) {
	return q.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
