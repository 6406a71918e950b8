package patients_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/mindwell-care/patients/authz"
	authzTest "github.com/mindwell-care/patients/authz/test"
	errs "github.com/mindwell-care/patients/errors"
	"github.com/mindwell-care/patients/patients"
	patientsTest "github.com/mindwell-care/patients/patients/test"
	"github.com/mindwell-care/patients/test"
)

var _ = Describe("Patients Service", func() {
	var ctrl *gomock.Controller
	var repo *patientsTest.MockRepository
	var validator *patientsTest.MockUniquenessValidator
	var authorizer *authzTest.MockOwnershipAuthorizer
	var service patients.Service

	therapistId := primitive.NewObjectID()

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = patientsTest.NewMockRepository(ctrl)
		validator = patientsTest.NewMockUniquenessValidator(ctrl)
		authorizer = authzTest.NewMockOwnershipAuthorizer(ctrl)

		var err error
		service, err = patients.NewService(repo, validator, authorizer, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("List", func() {
		It("filters by the caller's identity at the query level", func() {
			expected := []*patients.Patient{}
			repo.EXPECT().
				ListByTherapist(gomock.Any(), therapistId).
				Return(expected, nil)

			result, err := service.List(context.Background(), therapistId.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(expected))
		})

		It("rejects a malformed caller identity", func() {
			_, err := service.List(context.Background(), "not-an-id")
			Expect(err).To(HaveOccurred())

			httpErr := errs.HttpError{}
			Expect(errors.As(err, &httpErr)).To(BeTrue())
			Expect(httpErr.Code).To(Equal(401))
		})
	})

	Describe("Get", func() {
		It("returns the record when the guard allows", func() {
			patient := patientsTest.RandomPatient()
			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patient.Id.Hex()).
				Return(authz.Allow(), nil)
			repo.EXPECT().
				FindById(gomock.Any(), *patient.Id).
				Return(&patient, nil)

			result, err := service.Get(context.Background(), therapistId.Hex(), patient.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(&patient))
		})

		It("surfaces the deny reason without touching the repository", func() {
			patientId := primitive.NewObjectID().Hex()
			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patientId).
				Return(authz.Deny(authz.ErrNotOwner), nil)

			_, err := service.Get(context.Background(), therapistId.Hex(), patientId)
			Expect(err).To(MatchError(authz.ErrNotOwner))
		})

		It("propagates authorization failures", func() {
			patientId := primitive.NewObjectID().Hex()
			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patientId).
				Return(authz.Decision{}, fmt.Errorf("connection reset"))

			_, err := service.Get(context.Background(), therapistId.Hex(), patientId)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Create", func() {
		It("persists a validated patient owned by the caller", func() {
			patient := patientsTest.RandomPatient()
			patient.Id = nil
			patient.Therapist = nil
			diagnoses := []string{"b", "a", "b"}
			patient.Diagnoses = &diagnoses

			validator.EXPECT().
				CheckUnique(gomock.Any(), patient.Email, patient.Phone, nil).
				Return(nil)
			repo.EXPECT().
				Insert(gomock.Any(), test.Match(func(p patients.Patient) bool {
					return p.Therapist != nil && *p.Therapist == therapistId &&
						p.Diagnoses != nil && len(*p.Diagnoses) == 2 &&
						(*p.Diagnoses)[0] == "a" && (*p.Diagnoses)[1] == "b"
				})).
				DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
					id := primitive.NewObjectID()
					p.Id = &id
					return &p, nil
				})

			created, err := service.Create(context.Background(), therapistId.Hex(), patient)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeNil())
			Expect(*created.Therapist).To(Equal(therapistId))
		})

		It("performs no write when the email is already in use", func() {
			patient := patientsTest.RandomPatient()
			validator.EXPECT().
				CheckUnique(gomock.Any(), patient.Email, patient.Phone, nil).
				Return(patients.ErrEmailInUse)

			_, err := service.Create(context.Background(), therapistId.Hex(), patient)
			Expect(err).To(MatchError(patients.ErrEmailInUse))
		})

		It("rejects a malformed caller identity before validating", func() {
			patient := patientsTest.RandomPatient()

			_, err := service.Create(context.Background(), "not-an-id", patient)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var patientId primitive.ObjectID

		BeforeEach(func() {
			patientId = primitive.NewObjectID()
		})

		It("checks ownership before uniqueness", func() {
			update := patientsTest.RandomPatientUpdate()
			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patientId.Hex()).
				Return(authz.Deny(authz.ErrNotOwner), nil)

			_, err := service.Update(context.Background(), therapistId.Hex(), patientId.Hex(), update)
			Expect(err).To(MatchError(authz.ErrNotOwner))
		})

		It("exempts the target record from the uniqueness check", func() {
			update := patientsTest.RandomPatientUpdate()
			expected := patientsTest.RandomPatient()

			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patientId.Hex()).
				Return(authz.Allow(), nil)
			validator.EXPECT().
				CheckUnique(gomock.Any(), update.Email, update.Phone, test.Match(func(exempt *primitive.ObjectID) bool {
					return exempt != nil && *exempt == patientId
				})).
				Return(nil)
			repo.EXPECT().
				UpdateFields(gomock.Any(), patientId, gomock.Any()).
				Return(&expected, nil)

			result, err := service.Update(context.Background(), therapistId.Hex(), patientId.Hex(), update)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(&expected))
		})

		It("skips the uniqueness check when identifiers are omitted", func() {
			update := patientsTest.RandomPatientUpdate()
			update.Email = nil
			update.Phone = nil
			expected := patientsTest.RandomPatient()

			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patientId.Hex()).
				Return(authz.Allow(), nil)
			repo.EXPECT().
				UpdateFields(gomock.Any(), patientId, gomock.Any()).
				Return(&expected, nil)

			result, err := service.Update(context.Background(), therapistId.Hex(), patientId.Hex(), update)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(&expected))
		})

		It("applies no mutation when the new email collides", func() {
			update := patientsTest.RandomPatientUpdate()
			authorizer.EXPECT().
				Authorize(gomock.Any(), therapistId.Hex(), patientId.Hex()).
				Return(authz.Allow(), nil)
			validator.EXPECT().
				CheckUnique(gomock.Any(), update.Email, update.Phone, gomock.Any()).
				Return(patients.ErrEmailInUse)

			_, err := service.Update(context.Background(), therapistId.Hex(), patientId.Hex(), update)
			Expect(err).To(MatchError(patients.ErrEmailInUse))
		})
	})
})
