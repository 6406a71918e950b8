package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindwell-care/patients/auth"
	errs "github.com/mindwell-care/patients/errors"
)

// GET /api/patients
func (h *Handler) ListPatients(ec echo.Context) error {
	caller := auth.GetAuthData(ec.Request().Context())
	if caller == nil {
		return errs.Unauthorized
	}

	list, err := h.patients.List(ec.Request().Context(), caller.SubjectId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientsDto(list))
}

// GET /api/patients/:patientId
func (h *Handler) GetPatient(ec echo.Context, patientId string) error {
	caller := auth.GetAuthData(ec.Request().Context())
	if caller == nil {
		return errs.Unauthorized
	}

	patient, err := h.patients.Get(ec.Request().Context(), caller.SubjectId, patientId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientDto(patient))
}

// POST /api/patients
func (h *Handler) CreatePatient(ec echo.Context) error {
	caller := auth.GetAuthData(ec.Request().Context())
	if caller == nil {
		return errs.Unauthorized
	}

	request := CreatePatientRequest{}
	if err := ec.Bind(&request); err != nil {
		return errs.BadRequest
	}

	patient, err := h.patients.Create(ec.Request().Context(), caller.SubjectId, NewPatient(request))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientDto(patient))
}

// PUT /api/patients/:patientId
func (h *Handler) UpdatePatient(ec echo.Context, patientId string) error {
	caller := auth.GetAuthData(ec.Request().Context())
	if caller == nil {
		return errs.Unauthorized
	}

	request := UpdatePatientRequest{}
	if err := ec.Bind(&request); err != nil {
		return errs.BadRequest
	}

	patient, err := h.patients.Update(ec.Request().Context(), caller.SubjectId, patientId, NewPatientUpdate(request))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientDto(patient))
}
