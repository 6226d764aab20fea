package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errCredentialNotFound = "credential not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	errFailedCreateCredentialFmt = "failed to create credential: %w"
	errFailedGetCredentialFmt    = "failed to get credential: %w"
	errFailedUpdateCredentialFmt = "failed to update credential: %w"

	errFailedCreateStudentFmt = "failed to create student: %w"
	errFailedGetStudentFmt    = "failed to get student: %w"
	errFailedListStudentsFmt  = "failed to list students: %w"
	errFailedScanStudentFmt   = "failed to scan student: %w"
	errIterateStudentsFmt     = "error iterating students: %w"
	errFailedUpdateStudentFmt = "failed to update student: %w"
	errFailedDeleteStudentFmt = "failed to delete student: %w"
)

func errStudentNotFound(stuNumber int64) string {
	return fmt.Sprintf("student details with id %d not found", stuNumber)
}

func errFailedParseDatabaseConfig(err error) error {
	return fmt.Errorf(errFailedParseDatabaseConfigFmt, err)
}

func errFailedCreateConnectionPool(err error) error {
	return fmt.Errorf(errFailedCreateConnectionPoolFmt, err)
}

func errFailedPingDatabase(err error) error {
	return fmt.Errorf(errFailedPingDatabaseFmt, err)
}

func errFailedCreateCredential(err error) error {
	return fmt.Errorf(errFailedCreateCredentialFmt, err)
}

func errFailedGetCredential(err error) error {
	return fmt.Errorf(errFailedGetCredentialFmt, err)
}

func errFailedUpdateCredential(err error) error {
	return fmt.Errorf(errFailedUpdateCredentialFmt, err)
}

func errFailedCreateStudent(err error) error {
	return fmt.Errorf(errFailedCreateStudentFmt, err)
}

func errFailedGetStudent(err error) error {
	return fmt.Errorf(errFailedGetStudentFmt, err)
}

func errFailedListStudents(err error) error {
	return fmt.Errorf(errFailedListStudentsFmt, err)
}

func errFailedScanStudent(err error) error {
	return fmt.Errorf(errFailedScanStudentFmt, err)
}

func errIterateStudents(err error) error {
	return fmt.Errorf(errIterateStudentsFmt, err)
}

func errFailedUpdateStudent(err error) error {
	return fmt.Errorf(errFailedUpdateStudentFmt, err)
}

func errFailedDeleteStudent(err error) error {
	return fmt.Errorf(errFailedDeleteStudentFmt, err)
}
