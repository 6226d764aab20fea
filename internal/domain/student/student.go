package student

import "time"

// Student is a student record. StuNumber is the unique student number
// assigned on creation.
type Student struct {
	StuNumber  int64
	FullName   string
	FatherName string
	BranchName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateStudentInput struct {
	FullName   string
	FatherName string
	BranchName string
}

type UpdateStudentInput struct {
	StuNumber  int64
	FullName   string
	FatherName string
	BranchName string
}
