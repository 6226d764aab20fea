package handler

import (
	"context"

	"student-auth-service/internal/domain/credential"
	"student-auth-service/internal/domain/student"
)

// Consumer-side interfaces defined by handlers.
// Each interface contains only the methods needed by the specific handler.

// AuthHandler interfaces
type Authenticator interface {
	Register(ctx context.Context, username, secret string, role credential.Role) (*credential.Credential, error)
	Login(ctx context.Context, username, secret string) (string, error)
	Logout(ctx context.Context, token string) error
}

// StudentHandler interfaces
type StudentStore interface {
	Create(ctx context.Context, input student.CreateStudentInput) (*student.Student, error)
	GetByNumber(ctx context.Context, stuNumber int64) (*student.Student, error)
	List(ctx context.Context) ([]*student.Student, error)
	Update(ctx context.Context, input student.UpdateStudentInput) (*student.Student, error)
	Delete(ctx context.Context, stuNumber int64) error
}
