// Package ident converts between the hex strings exposed over HTTP and the
// ObjectIDs assigned by the document store.
package ident

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobsearch/internal/errcode"
)

// Decode parses an external identifier. Anything that is not a 24 character
// hex string fails with errcode.MalformedIdentifier.
func Decode(external string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(external)
	if err != nil {
		return primitive.NilObjectID, errcode.Wrap(errcode.MalformedIdentifier, "invalid identifier format", err)
	}
	return id, nil
}

// DecodeField is Decode with the offending field named in the detail.
func DecodeField(field, external string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(external)
	if err != nil {
		return primitive.NilObjectID, errcode.Wrap(errcode.MalformedIdentifier, "invalid "+field+" format", err)
	}
	return id, nil
}

func Encode(id primitive.ObjectID) string {
	return id.Hex()
}
