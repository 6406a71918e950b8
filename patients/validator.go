package patients

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen --build_flags=--mod=mod -source=./validator.go -destination=./test/mock_validator.go -package test MockUniquenessValidator

// UniquenessValidator decides whether proposed contact identifiers collide
// with another patient record. The exempt id allows a record to re-submit its
// own unchanged values on update.
type UniquenessValidator interface {
	CheckUnique(ctx context.Context, email *string, phone *string, exempt *primitive.ObjectID) error
}

func NewUniquenessValidator(repo Repository) (UniquenessValidator, error) {
	return &uniquenessValidator{repo: repo}, nil
}

type uniquenessValidator struct {
	repo Repository
}

func (v *uniquenessValidator) CheckUnique(ctx context.Context, email *string, phone *string, exempt *primitive.ObjectID) error {
	if email == nil && phone == nil {
		return nil
	}

	matches, err := v.repo.FindByIdentifiers(ctx, email, phone)
	if err != nil {
		return err
	}

	// An email conflict wins over a phone conflict even when the two collide
	// with different records.
	for _, match := range matches {
		if isExempt(match, exempt) {
			continue
		}
		if email != nil && match.Email != nil && *match.Email == *email {
			return ErrEmailInUse
		}
	}
	for _, match := range matches {
		if isExempt(match, exempt) {
			continue
		}
		if phone != nil && match.Phone != nil && *match.Phone == *phone {
			return ErrPhoneInUse
		}
	}

	return nil
}

func isExempt(patient *Patient, exempt *primitive.ObjectID) bool {
	return exempt != nil && patient.Id != nil && *patient.Id == *exempt
}
