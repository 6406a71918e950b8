package api

// CreatePatientRequest is the body of POST /api/patients.
type CreatePatientRequest struct {
	Name        *string   `json:"name"`
	Surname     *string   `json:"surname"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Diagnoses   *[]string `json:"diagnoses"`
	Medications *[]string `json:"medications"`
}

// UpdatePatientRequest is the body of PUT /api/patients/{patientId}. Absent
// fields leave the stored values untouched.
type UpdatePatientRequest struct {
	Name        *string   `json:"name"`
	Surname     *string   `json:"surname"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Diagnoses   *[]string `json:"diagnoses"`
	Medications *[]string `json:"medications"`
}

type TherapistDto struct {
	Id    string  `json:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type PatientDto struct {
	Id          string        `json:"id"`
	Therapist   *TherapistDto `json:"therapist,omitempty"`
	Name        *string       `json:"name,omitempty"`
	Surname     *string       `json:"surname,omitempty"`
	DateOfBirth *string       `json:"dateOfBirth,omitempty"`
	Email       *string       `json:"email,omitempty"`
	Phone       *string       `json:"phone,omitempty"`
	Diagnoses   *[]string     `json:"diagnoses,omitempty"`
	Medications *[]string     `json:"medications,omitempty"`
}
