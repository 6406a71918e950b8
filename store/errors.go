package store

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"
)

var indexNameRegexp = regexp.MustCompile(`index: (\S+)`)

func IsDuplicateKeyError(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(mongo.ServerError); ok {
			return e.HasErrorCode(11000) || e.HasErrorCode(11001) || e.HasErrorCode(12582) ||
				e.HasErrorCodeWithMessage(16460, " E11000 ")
		}
	}
	return false
}

// DuplicateKeyIndex returns the name of the unique index violated by a
// duplicate key error, or an empty string when it cannot be determined.
func DuplicateKeyIndex(err error) string {
	for ; err != nil; err = errors.Unwrap(err) {
		switch e := err.(type) {
		case mongo.WriteException:
			for _, we := range e.WriteErrors {
				if match := indexNameRegexp.FindStringSubmatch(we.Message); match != nil {
					return match[1]
				}
			}
		case mongo.CommandError:
			if match := indexNameRegexp.FindStringSubmatch(e.Message); match != nil {
				return match[1]
			}
		}
	}
	return ""
}
