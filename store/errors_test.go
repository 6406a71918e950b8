package store_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindwell-care/patients/store"
)

var _ = Describe("Errors", func() {
	duplicateEmail := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{
				Code:    11000,
				Message: `E11000 duplicate key error collection: mindwell.patients index: UniqueEmail dup key: { email: "a@x.com" }`,
			},
		},
	}

	Describe("IsDuplicateKeyError", func() {
		It("recognizes duplicate key write exceptions", func() {
			Expect(store.IsDuplicateKeyError(duplicateEmail)).To(BeTrue())
		})

		It("recognizes wrapped duplicate key errors", func() {
			wrapped := fmt.Errorf("error inserting patient: %w", duplicateEmail)
			Expect(store.IsDuplicateKeyError(wrapped)).To(BeTrue())
		})

		It("ignores unrelated errors", func() {
			Expect(store.IsDuplicateKeyError(fmt.Errorf("connection reset"))).To(BeFalse())
		})
	})

	Describe("DuplicateKeyIndex", func() {
		It("returns the violated index name", func() {
			Expect(store.DuplicateKeyIndex(duplicateEmail)).To(Equal("UniqueEmail"))
		})

		It("returns the index name from wrapped errors", func() {
			wrapped := fmt.Errorf("error inserting patient: %w", duplicateEmail)
			Expect(store.DuplicateKeyIndex(wrapped)).To(Equal("UniqueEmail"))
		})

		It("returns an empty string when the index is unknown", func() {
			Expect(store.DuplicateKeyIndex(fmt.Errorf("connection reset"))).To(BeEmpty())
		})
	})
})
