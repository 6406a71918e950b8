package patients

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/mindwell-care/patients/store"
)

const (
	patientsCollectionName = "patients"
	usersCollectionName    = "users"

	uniqueEmailIndexName = "UniqueEmail"
	uniquePhoneIndexName = "UniquePhone"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/mindwell-care/patients/patients=patients.go MockRepository

type Repository interface {
	ListByTherapist(ctx context.Context, therapistId primitive.ObjectID) ([]*Patient, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*Patient, error)
	FindByIdentifiers(ctx context.Context, email *string, phone *string) ([]*Patient, error)
	Insert(ctx context.Context, patient Patient) (*Patient, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, update PatientUpdate) (*Patient, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(patientsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return EnsureIndexes(ctx, db)
		},
	})

	return repo, nil
}

// EnsureIndexes declares the unique indexes that back the uniqueness
// validator. They are the authoritative guard against concurrent writes
// racing past the pre-write check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(patientsCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName(uniqueEmailIndexName).
				SetPartialFilterExpression(bson.D{{Key: "email", Value: bson.M{"$exists": true}}}),
		},
		{
			Keys: bson.D{
				{Key: "phone", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName(uniquePhoneIndexName).
				SetPartialFilterExpression(bson.D{{Key: "phone", Value: bson.M{"$exists": true}}}),
		},
		{
			Keys: bson.D{
				{Key: "therapist", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("TherapistName"),
		},
	})
	return err
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) ListByTherapist(ctx context.Context, therapistId primitive.ObjectID) ([]*Patient, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"therapist": therapistId}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	patients := make([]*Patient, 0)
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	return patients, nil
}

func (r *repository) FindById(ctx context.Context, id primitive.ObjectID) (*Patient, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	var patients []*Patient
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patient: %w", err)
	}
	if len(patients) == 0 {
		return nil, ErrNotFound
	}

	return patients[0], nil
}

func (r *repository) FindByIdentifiers(ctx context.Context, email *string, phone *string) ([]*Patient, error) {
	or := bson.A{}
	if email != nil {
		or = append(or, bson.M{"email": *email})
	}
	if phone != nil {
		or = append(or, bson.M{"phone": *phone})
	}
	if len(or) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"$or": or})
	if err != nil {
		return nil, fmt.Errorf("error finding patients by identifiers: %w", err)
	}

	var patients []*Patient
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patients by identifiers: %w", err)
	}

	return patients, nil
}

func (r *repository) Insert(ctx context.Context, patient Patient) (*Patient, error) {
	res, err := r.collection.InsertOne(ctx, patient)
	if err != nil {
		if conflict := asFieldConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.FindById(ctx, id)
}

func (r *repository) UpdateFields(ctx context.Context, id primitive.ObjectID, update PatientUpdate) (*Patient, error) {
	set := updateDocument(update)
	if len(set) == 0 {
		return r.FindById(ctx, id)
	}

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if conflict := asFieldConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("error updating patient: %w", err)
	}

	return r.FindById(ctx, id)
}

// ownerLookupStages resolves the owning therapist from the users collection,
// the aggregation equivalent of populating the therapist reference.
func ownerLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollectionName,
			"localField":   "therapist",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func updateDocument(update PatientUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Surname != nil {
		set["surname"] = *update.Surname
	}
	if update.DateOfBirth != nil {
		set["dateOfBirth"] = *update.DateOfBirth
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Diagnoses != nil {
		set["diagnoses"] = *update.Diagnoses
	}
	if update.Medications != nil {
		set["medications"] = *update.Medications
	}
	return set
}

// asFieldConflict translates a storage level duplicate key error into the
// same conflict the uniqueness validator reports, so a lost write race
// surfaces as a correctly attributed client error.
func asFieldConflict(err error) error {
	if !store.IsDuplicateKeyError(err) {
		return nil
	}
	switch store.DuplicateKeyIndex(err) {
	case uniqueEmailIndexName:
		return ErrEmailInUse
	case uniquePhoneIndexName:
		return ErrPhoneInUse
	default:
		return ErrIdentifierInUse
	}
}
