package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindwell-care/patients/patients"
	"github.com/mindwell-care/patients/test"
)

func strp(s string) *string {
	return &s
}

func RandomPatient() patients.Patient {
	id := primitive.NewObjectID()
	therapist := primitive.NewObjectID()
	diagnoses := []string{test.Faker.Lorem().Word(), test.Faker.Lorem().Word()}
	medications := []string{test.Faker.Lorem().Word()}
	return patients.Patient{
		Id:          &id,
		Therapist:   &therapist,
		Name:        strp(test.Faker.Person().FirstName()),
		Surname:     strp(test.Faker.Person().LastName()),
		DateOfBirth: strp(test.Faker.Time().ISO8601(time.Now())[:10]),
		Email:       strp(test.Faker.Internet().Email()),
		Phone:       strp(test.Faker.Phone().Number()),
		Diagnoses:   &diagnoses,
		Medications: &medications,
	}
}

func RandomPatientUpdate() patients.PatientUpdate {
	patient := RandomPatient()
	return patients.PatientUpdate{
		Name:        patient.Name,
		Surname:     patient.Surname,
		DateOfBirth: patient.DateOfBirth,
		Email:       patient.Email,
		Phone:       patient.Phone,
		Diagnoses:   patient.Diagnoses,
		Medications: patient.Medications,
	}
}
