package patients_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindwell-care/patients/patients"
)

func duplicateKeyError(message string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{
				Code:    11000,
				Message: message,
			},
		},
	}
}

var _ = Describe("Field conflicts", func() {
	It("attributes an email index violation to the email", func() {
		err := duplicateKeyError(`E11000 duplicate key error collection: mindwell.patients index: UniqueEmail dup key: { email: "a@x.com" }`)
		Expect(patients.AsFieldConflict(err)).To(MatchError(patients.ErrEmailInUse))
	})

	It("attributes a phone index violation to the phone number", func() {
		err := duplicateKeyError(`E11000 duplicate key error collection: mindwell.patients index: UniquePhone dup key: { phone: "555-0100" }`)
		Expect(patients.AsFieldConflict(err)).To(MatchError(patients.ErrPhoneInUse))
	})

	It("does not blame the email when the violated index is unknown", func() {
		err := duplicateKeyError(`E11000 duplicate key error collection: mindwell.patients`)
		Expect(patients.AsFieldConflict(err)).To(MatchError(patients.ErrIdentifierInUse))
	})

	It("ignores errors that are not duplicate key rejections", func() {
		Expect(patients.AsFieldConflict(fmt.Errorf("connection reset"))).To(BeNil())
	})
})
