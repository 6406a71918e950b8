package patients

import (
	"context"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mindwell-care/patients/authz"
	errs "github.com/mindwell-care/patients/errors"
)

type service struct {
	repo       Repository
	validator  UniquenessValidator
	authorizer authz.OwnershipAuthorizer
	logger     *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, validator UniquenessValidator, authorizer authz.OwnershipAuthorizer, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:       repo,
		validator:  validator,
		authorizer: authorizer,
		logger:     logger,
	}, nil
}

// List returns the caller's patients, ordered by name. Ownership is applied
// as a query predicate so other therapists' records never reach this process.
func (s *service) List(ctx context.Context, therapistId string) ([]*Patient, error) {
	owner, err := callerId(therapistId)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByTherapist(ctx, owner)
}

func (s *service) Get(ctx context.Context, therapistId string, id string) (*Patient, error) {
	decision, err := s.authorizer.Authorize(ctx, therapistId, id)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		return nil, decision.Reason()
	}

	patientId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, authz.ErrMalformedId
	}
	return s.repo.FindById(ctx, patientId)
}

func (s *service) Create(ctx context.Context, therapistId string, patient Patient) (*Patient, error) {
	owner, err := callerId(therapistId)
	if err != nil {
		return nil, err
	}

	if err := s.validator.CheckUnique(ctx, patient.Email, patient.Phone, nil); err != nil {
		return nil, err
	}

	patient.Id = nil
	patient.Therapist = &owner
	patient.Owner = nil
	patient.Diagnoses = normalizeSet(patient.Diagnoses)
	patient.Medications = normalizeSet(patient.Medications)

	created, err := s.repo.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("created patient", "patientId", created.Id.Hex(), "therapistId", therapistId)
	return created, nil
}

func (s *service) Update(ctx context.Context, therapistId string, id string, update PatientUpdate) (*Patient, error) {
	decision, err := s.authorizer.Authorize(ctx, therapistId, id)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		return nil, decision.Reason()
	}

	patientId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, authz.ErrMalformedId
	}

	if update.HasIdentifiers() {
		if err := s.validator.CheckUnique(ctx, update.Email, update.Phone, &patientId); err != nil {
			return nil, err
		}
	}

	update.Diagnoses = normalizeSet(update.Diagnoses)
	update.Medications = normalizeSet(update.Medications)

	updated, err := s.repo.UpdateFields(ctx, patientId, update)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("updated patient", "patientId", id, "therapistId", therapistId)
	return updated, nil
}

func callerId(therapistId string) (primitive.ObjectID, error) {
	owner, err := primitive.ObjectIDFromHex(therapistId)
	if err != nil {
		return primitive.NilObjectID, errs.New(errs.Unauthorized, "caller identity is not valid")
	}
	return owner, nil
}

// normalizeSet deduplicates a set-valued attribute, sorted for stable output.
func normalizeSet(values *[]string) *[]string {
	if values == nil {
		return nil
	}
	deduplicated := mapset.NewThreadUnsafeSet[string](*values...).ToSlice()
	sort.Strings(deduplicated)
	return &deduplicated
}
