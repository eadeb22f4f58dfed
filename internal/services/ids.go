package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseTaskID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", ErrInvalidTaskID, id, err)
	}
	return oid, nil
}
