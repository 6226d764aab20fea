package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"student-auth-service/internal/domain/student"
	apperrors "student-auth-service/pkg/errors"
)

type StudentHandler struct {
	students StudentStore
}

func NewStudentHandler(students StudentStore) *StudentHandler {
	return &StudentHandler{students: students}
}

type SaveStudentRequest struct {
	FullName   string `json:"fullName"`
	FatherName string `json:"fatherName"`
	BranchName string `json:"branchName"`
}

type UpdateStudentRequest struct {
	StuNumber  int64  `json:"stuNumber"`
	FullName   string `json:"fullName"`
	FatherName string `json:"fatherName"`
	BranchName string `json:"branchName"`
}

type StudentResponse struct {
	StuNumber  int64  `json:"stuNumber"`
	FullName   string `json:"fullName"`
	FatherName string `json:"fatherName"`
	BranchName string `json:"branchName"`
}

func toStudentResponse(s *student.Student) StudentResponse {
	return StudentResponse{
		StuNumber:  s.StuNumber,
		FullName:   s.FullName,
		FatherName: s.FatherName,
		BranchName: s.BranchName,
	}
}

func (h *StudentHandler) Save(c echo.Context) error {
	var req SaveStudentRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if strings.TrimSpace(req.FullName) == "" {
		return respondError(c, http.StatusBadRequest, "fullName is required")
	}

	created, err := h.students.Create(c.Request().Context(), student.CreateStudentInput{
		FullName:   req.FullName,
		FatherName: req.FatherName,
		BranchName: req.BranchName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toStudentResponse(created))
}

func (h *StudentHandler) GetByID(c echo.Context) error {
	stuNumber, err := strconv.ParseInt(c.Param(paramStudentID), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidStudentID)
	}

	s, err := h.students.GetByNumber(c.Request().Context(), stuNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, errorMessage(err))
		}
		return err
	}

	return c.JSON(http.StatusOK, toStudentResponse(s))
}

func (h *StudentHandler) GetAll(c echo.Context) error {
	students, err := h.students.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *StudentHandler) Update(c echo.Context) error {
	var req UpdateStudentRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.StuNumber <= 0 {
		return respondError(c, http.StatusBadRequest, msgInvalidStudentID)
	}

	updated, err := h.students.Update(c.Request().Context(), student.UpdateStudentInput{
		StuNumber:  req.StuNumber,
		FullName:   req.FullName,
		FatherName: req.FatherName,
		BranchName: req.BranchName,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, errorMessage(err))
		}
		return err
	}

	return c.JSON(http.StatusOK, toStudentResponse(updated))
}

func (h *StudentHandler) Delete(c echo.Context) error {
	stuNumber, err := strconv.ParseInt(c.Param(paramStudentID), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidStudentID)
	}

	if err := h.students.Delete(c.Request().Context(), stuNumber); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, errorMessage(err))
		}
		return err
	}

	return respondMessage(c, http.StatusOK, "student deleted")
}

// TestModerator and TestAdmin are liveness probes for the role tiers; the
// route policy does the actual gating.
func (h *StudentHandler) TestModerator(c echo.Context) error {
	return respondMessage(c, http.StatusOK, "moderator access granted")
}

func (h *StudentHandler) TestAdmin(c echo.Context) error {
	return respondMessage(c, http.StatusOK, "admin access granted")
}
