package postgres

import (
	"context"
	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type CredentialRepository struct {
	db *DB
}

func NewCredentialRepository(db *DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Create(ctx context.Context, input credential.CreateCredentialInput) (*credential.Credential, error) {
	query := `
		INSERT INTO credentials (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, role, created_at, updated_at
	`

	c := &credential.Credential{}
	err := r.db.Pool.QueryRow(ctx, query, input.Username, input.PasswordHash, input.Role).Scan(
		&c.ID,
		&c.Username,
		&c.PasswordHash,
		&c.Role,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("credential with this username already exists")
		}
		return nil, errFailedCreateCredential(err)
	}

	return c, nil
}

func (r *CredentialRepository) GetByUsername(ctx context.Context, username string) (*credential.Credential, error) {
	query := `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM credentials
		WHERE username = $1
	`

	c := &credential.Credential{}
	err := r.db.Pool.QueryRow(ctx, query, username).Scan(
		&c.ID,
		&c.Username,
		&c.PasswordHash,
		&c.Role,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errCredentialNotFound)
		}
		return nil, errFailedGetCredential(err)
	}

	return c, nil
}

func (r *CredentialRepository) UpdateRole(ctx context.Context, username string, role credential.Role) error {
	query := "UPDATE credentials SET role = $2, updated_at = NOW() WHERE username = $1"

	result, err := r.db.Pool.Exec(ctx, query, username, role)
	if err != nil {
		return errFailedUpdateCredential(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errCredentialNotFound)
	}

	return nil
}
