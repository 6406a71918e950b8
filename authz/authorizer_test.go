package authz_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mindwell-care/patients/authz"
)

type staticFetcher struct {
	resources map[string]*authz.Resource
	err       error
}

func (s *staticFetcher) GetResource(ctx context.Context, id primitive.ObjectID) (*authz.Resource, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resources[id.Hex()], nil
}

var _ = Describe("Ownership Authorizer", func() {
	var fetcher *staticFetcher
	var authorizer authz.OwnershipAuthorizer

	ownerId := primitive.NewObjectID().Hex()
	otherId := primitive.NewObjectID().Hex()
	patientId := primitive.NewObjectID().Hex()

	BeforeEach(func() {
		fetcher = &staticFetcher{
			resources: map[string]*authz.Resource{
				patientId: {Id: patientId, Owner: ownerId},
			},
		}

		var err error
		authorizer, err = authz.NewOwnershipAuthorizer(fetcher, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	It("allows the owning therapist", func() {
		decision, err := authorizer.Authorize(context.Background(), ownerId, patientId)
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Allowed()).To(BeTrue())
		Expect(decision.Reason()).To(BeNil())
	})

	It("denies another therapist with a forbidden reason", func() {
		decision, err := authorizer.Authorize(context.Background(), otherId, patientId)
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Allowed()).To(BeFalse())
		Expect(decision.Reason()).To(MatchError(authz.ErrNotOwner))
	})

	It("denies an empty subject", func() {
		decision, err := authorizer.Authorize(context.Background(), "", patientId)
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Allowed()).To(BeFalse())
		Expect(decision.Reason()).To(MatchError(authz.ErrNotOwner))
	})

	It("denies a malformed record id before touching storage", func() {
		fetcher.err = fmt.Errorf("storage must not be used")

		decision, err := authorizer.Authorize(context.Background(), ownerId, "not-an-object-id")
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Allowed()).To(BeFalse())
		Expect(decision.Reason()).To(MatchError(authz.ErrMalformedId))
	})

	It("denies a well formed id that references no record", func() {
		decision, err := authorizer.Authorize(context.Background(), ownerId, primitive.NewObjectID().Hex())
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Allowed()).To(BeFalse())
		Expect(decision.Reason()).To(MatchError(authz.ErrNotFound))
	})

	It("propagates storage failures", func() {
		fetcher.err = fmt.Errorf("connection reset")

		_, err := authorizer.Authorize(context.Background(), ownerId, patientId)
		Expect(err).To(HaveOccurred())
	})

	Describe("Evaluate policy", func() {
		It("allows a subject matching the resource owner", func() {
			allowed, err := authorizer.EvaluatePolicy(context.Background(), map[string]interface{}{
				"subject": ownerId,
				"resource": map[string]interface{}{
					"id":    patientId,
					"owner": ownerId,
				},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(allowed).To(BeTrue())
		})

		It("denies a subject that does not own the resource", func() {
			allowed, err := authorizer.EvaluatePolicy(context.Background(), map[string]interface{}{
				"subject": otherId,
				"resource": map[string]interface{}{
					"id":    patientId,
					"owner": ownerId,
				},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(allowed).To(BeFalse())
		})
	})
})
