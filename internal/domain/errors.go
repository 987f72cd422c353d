package domain

import "errors"

var (
	ErrSchemeNotFound = errors.New("scheme not found")
	ErrRowNotFound    = errors.New("generated row not found")

	ErrBidRequestPending = errors.New("a pending bid request already exists")
)
