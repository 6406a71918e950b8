package api

import (
	"github.com/mindwell-care/patients/patients"
)

func NewPatient(request CreatePatientRequest) patients.Patient {
	return patients.Patient{
		Name:        request.Name,
		Surname:     request.Surname,
		DateOfBirth: request.DateOfBirth,
		Email:       request.Email,
		Phone:       request.Phone,
		Diagnoses:   request.Diagnoses,
		Medications: request.Medications,
	}
}

func NewPatientUpdate(request UpdatePatientRequest) patients.PatientUpdate {
	return patients.PatientUpdate{
		Name:        request.Name,
		Surname:     request.Surname,
		DateOfBirth: request.DateOfBirth,
		Email:       request.Email,
		Phone:       request.Phone,
		Diagnoses:   request.Diagnoses,
		Medications: request.Medications,
	}
}

func NewPatientDto(patient *patients.Patient) PatientDto {
	dto := PatientDto{
		Name:        patient.Name,
		Surname:     patient.Surname,
		DateOfBirth: patient.DateOfBirth,
		Email:       patient.Email,
		Phone:       patient.Phone,
		Diagnoses:   patient.Diagnoses,
		Medications: patient.Medications,
	}
	if patient.Id != nil {
		dto.Id = patient.Id.Hex()
	}
	if patient.Owner != nil && patient.Owner.Id != nil {
		dto.Therapist = &TherapistDto{
			Id:    patient.Owner.Id.Hex(),
			Name:  patient.Owner.Name,
			Email: patient.Owner.Email,
		}
	} else if patient.Therapist != nil {
		dto.Therapist = &TherapistDto{
			Id: patient.Therapist.Hex(),
		}
	}
	return dto
}

func NewPatientsDto(list []*patients.Patient) []PatientDto {
	dtos := make([]PatientDto, 0, len(list))
	for _, patient := range list {
		dtos = append(dtos, NewPatientDto(patient))
	}
	return dtos
}
