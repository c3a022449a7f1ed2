package utils

import (
	"fmt"
	"io"
	"net/http"

	sgferrors "sgf_keeper/internal/errors"
)

const MaxBodyBytes = 8 << 20

// ReadRequestBody reads the whole body and fails with ErrBodyTooLarge
// instead of truncating past MaxBodyBytes.
func ReadRequestBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", sgferrors.ErrBodyTooLarge, MaxBodyBytes)
	}
	return body, nil
}
