package services

import (
	"errors"

	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
)

// wrapStore classifies a storage error unless it already carries a status.
func wrapStore(err error, notFoundMsg string) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.FromStore(err, notFoundMsg)
}
