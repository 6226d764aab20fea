package postgres

import (
	"context"
	"student-auth-service/internal/domain/student"
	apperrors "student-auth-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type StudentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, input student.CreateStudentInput) (*student.Student, error) {
	query := `
		INSERT INTO students (full_name, father_name, branch_name)
		VALUES ($1, $2, $3)
		RETURNING stu_number, full_name, father_name, branch_name, created_at, updated_at
	`

	s := &student.Student{}
	err := r.db.Pool.QueryRow(ctx, query, input.FullName, input.FatherName, input.BranchName).Scan(
		&s.StuNumber,
		&s.FullName,
		&s.FatherName,
		&s.BranchName,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		return nil, errFailedCreateStudent(err)
	}

	return s, nil
}

func (r *StudentRepository) GetByNumber(ctx context.Context, stuNumber int64) (*student.Student, error) {
	query := `
		SELECT stu_number, full_name, father_name, branch_name, created_at, updated_at
		FROM students
		WHERE stu_number = $1
	`

	s := &student.Student{}
	err := r.db.Pool.QueryRow(ctx, query, stuNumber).Scan(
		&s.StuNumber,
		&s.FullName,
		&s.FatherName,
		&s.BranchName,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errStudentNotFound(stuNumber))
		}
		return nil, errFailedGetStudent(err)
	}

	return s, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	query := `
		SELECT stu_number, full_name, father_name, branch_name, created_at, updated_at
		FROM students
		ORDER BY stu_number
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListStudents(err)
	}
	defer rows.Close()

	var students []*student.Student
	for rows.Next() {
		s := &student.Student{}
		if err := rows.Scan(
			&s.StuNumber,
			&s.FullName,
			&s.FatherName,
			&s.BranchName,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, errFailedScanStudent(err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateStudents(err)
	}

	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, input student.UpdateStudentInput) (*student.Student, error) {
	query := `
		UPDATE students
		SET full_name = $2, father_name = $3, branch_name = $4, updated_at = NOW()
		WHERE stu_number = $1
		RETURNING stu_number, full_name, father_name, branch_name, created_at, updated_at
	`

	s := &student.Student{}
	err := r.db.Pool.QueryRow(ctx, query, input.StuNumber, input.FullName, input.FatherName, input.BranchName).Scan(
		&s.StuNumber,
		&s.FullName,
		&s.FatherName,
		&s.BranchName,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errStudentNotFound(input.StuNumber))
		}
		return nil, errFailedUpdateStudent(err)
	}

	return s, nil
}

func (r *StudentRepository) Delete(ctx context.Context, stuNumber int64) error {
	query := "DELETE FROM students WHERE stu_number = $1"

	result, err := r.db.Pool.Exec(ctx, query, stuNumber)
	if err != nil {
		return errFailedDeleteStudent(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errStudentNotFound(stuNumber))
	}

	return nil
}
