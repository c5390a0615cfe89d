package di

import (
	trustService "agenda/internal/domains/trust/service"
	waitlistService "agenda/internal/domains/waitlist/service"
)

// Sweeper bundles the services the scheduled sweep binary drives: the
// monthly trust counter reset and the waitlist expiry pass.
type Sweeper struct {
	Trust    trustService.Trust
	Waitlist waitlistService.Waitlist
}
