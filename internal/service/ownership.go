package service

import (
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// requireOwner applies the ownership policy to a store lookup result: a
// store miss propagates as model.ErrNotFound, a resource owned by another
// user yields model.ErrForbidden, otherwise the resource is returned.
// Collection queries do not go through here; they are filtered by owner
// at the query level instead.
func requireOwner[T model.Owned](res T, err error, requesterID uuid.UUID) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if res.Owner() != requesterID {
		return zero, model.ErrForbidden
	}
	return res, nil
}
