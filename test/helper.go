// Package aistest provides shared test helpers used by this module's
// table-driven decoder tests.
package aistest

import "time"

// UTCTime builds a UTC time.Time from a unix second count, avoiding test
// flakiness on machines running in a different timezone.
func UTCTime(sec int64) time.Time {
	return time.Unix(sec, 0).In(time.UTC)
}
