package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/dbx"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

const userColumns = `id, email, password_hash, full_name, role, status, rejection_reason, is_active, created_at, updated_at`

// SQLRepository stores users in postgres or sqlite. Queries are written
// with $N placeholders and rebound by the dialect.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	now     func() time.Time
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	if dialect == nil {
		dialect = dbx.PostgresDialect{}
	}
	return &SQLRepository{db: db, dialect: dialect, now: func() time.Time { return time.Now().UTC() }}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                  models.User
		fullName, reason   sql.NullString
		rawRole, rawStatus string
	)

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &fullName, &rawRole, &rawStatus,
		&reason, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}
	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	u.Role = role
	u.Status = status

	if fullName.Valid {
		u.FullName = &fullName.String
	}
	if reason.Valid {
		u.RejectionReason = &reason.String
	}

	return &u, nil
}

func (r *SQLRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, r.dialect.Rebind(query), arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, models.NormalizeEmail(email))
}

func (r *SQLRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (` + userColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := r.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}
	user.Email = models.NormalizeEmail(user.Email)

	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		user.ID, user.Email, user.PasswordHash, user.FullName, string(user.Role), string(user.Status),
		user.RejectionReason, user.IsActive, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) ConditionalUpdateStatus(ctx context.Context, id string, expected, next models.Status, reason *string) (*models.User, error) {
	query :=
		`UPDATE users SET status = $1, rejection_reason = $2, updated_at = $3
		 WHERE id = $4 AND status = $5
		 RETURNING ` + userColumns

	if next != models.StatusRejected {
		reason = nil
	}

	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		string(next), reason, r.now(), id, string(expected))
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInvalidState
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLRepository) ListByStatus(ctx context.Context, status models.Status, limit, offset int) ([]*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE status = $1
		 ORDER BY created_at, id
		 LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) CountByStatus(ctx context.Context, status models.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(`SELECT COUNT(*) FROM users WHERE status = $1`), string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3`),
		active, r.now(), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
