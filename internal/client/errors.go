package client

import "errors"

var (
	// ErrNotSignedIn is returned by operations that need a session.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrUnknownItem is returned when an id is not in the local list.
	ErrUnknownItem = errors.New("item is not loaded")
	// ErrContactSales is returned for plans without a checkout price.
	ErrContactSales = errors.New("plan is sold through sales contact")

	ErrUnknownState = errors.New("unknown state")
	ErrUnknownCity  = errors.New("unknown city")
	ErrUnknownCNAE  = errors.New("unknown cnae class")
)
