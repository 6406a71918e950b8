package api

import (
	"go.uber.org/fx"

	"github.com/mindwell-care/patients/patients"
)

type Handler struct {
	patients patients.Service
}

type Params struct {
	fx.In

	Patients patients.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients: p.Patients,
	}
}
