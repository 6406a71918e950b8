package patients

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindwell-care/patients/authz"
)

// NewResourceFetcher adapts the patients repository to the ownership
// authorizer's resource view.
func NewResourceFetcher(repo Repository) authz.ResourceFetcher {
	return &resourceFetcher{repo: repo}
}

type resourceFetcher struct {
	repo Repository
}

func (f *resourceFetcher) GetResource(ctx context.Context, id primitive.ObjectID) (*authz.Resource, error) {
	patient, err := f.repo.FindById(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	resource := &authz.Resource{Id: id.Hex()}
	if patient.Therapist != nil {
		resource.Owner = patient.Therapist.Hex()
	}
	return resource, nil
}
