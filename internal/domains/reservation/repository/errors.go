package repository

import "errors"

var (
	// ErrSlotTaken means the overlap check inside the booking transaction
	// found a competing non-cancelled reservation.
	ErrSlotTaken = errors.New("time slot already taken")

	// ErrStaleState means a conditional transition matched no row: the
	// reservation changed state under us since it was read.
	ErrStaleState = errors.New("reservation state changed concurrently")
)
