package patients

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	errs "github.com/mindwell-care/patients/errors"
)

var (
	ErrNotFound   = errs.New(errs.NotFound, "patient not found")
	ErrEmailInUse = errs.New(errs.BadRequest, "Email already in use.")
	ErrPhoneInUse = errs.New(errs.BadRequest, "Phone number already in use.")

	// ErrIdentifierInUse reports a duplicate key rejection that cannot be
	// attributed to a specific identifier index.
	ErrIdentifierInUse = errs.New(errs.BadRequest, "Email or phone number already in use.")
)

//go:generate mockgen --build_flags=--mod=mod -source=./patients.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	List(ctx context.Context, therapistId string) ([]*Patient, error)
	Get(ctx context.Context, therapistId string, id string) (*Patient, error)
	Create(ctx context.Context, therapistId string, patient Patient) (*Patient, error)
	Update(ctx context.Context, therapistId string, id string, update PatientUpdate) (*Patient, error)
}

// Patient is a single care recipient. Therapist references the owning user;
// Owner is resolved from the users collection on reads and never persisted.
type Patient struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	Therapist   *primitive.ObjectID `bson:"therapist,omitempty"`
	Name        *string             `bson:"name,omitempty"`
	Surname     *string             `bson:"surname,omitempty"`
	DateOfBirth *string             `bson:"dateOfBirth,omitempty"`
	Email       *string             `bson:"email,omitempty"`
	Phone       *string             `bson:"phone,omitempty"`
	Diagnoses   *[]string           `bson:"diagnoses,omitempty"`
	Medications *[]string           `bson:"medications,omitempty"`
	Owner       *Therapist          `bson:"owner,omitempty"`
}

// Therapist is the resolved owner of a patient record.
type Therapist struct {
	Id    *primitive.ObjectID `bson:"_id,omitempty"`
	Name  *string             `bson:"name,omitempty"`
	Email *string             `bson:"email,omitempty"`
}

// PatientUpdate describes a partial update. Nil fields were omitted from the
// request and must be left unchanged.
type PatientUpdate struct {
	Name        *string
	Surname     *string
	DateOfBirth *string
	Email       *string
	Phone       *string
	Diagnoses   *[]string
	Medications *[]string
}

// HasIdentifiers reports whether the update touches the unique contact
// identifiers and therefore requires a uniqueness check.
func (u PatientUpdate) HasIdentifiers() bool {
	return u.Email != nil || u.Phone != nil
}
