// Package timelog defines the seam between timestamp sources and the
// estimator: a source extracts instants from wherever the log lives
// and hands them to a receiver together with any extraction warnings.
package timelog

import "time"

type Receiver interface {
	Receive(instants []time.Time, warnings []string) error
}

type Subscriber interface {
	Subscribe(receiver Receiver) error
}
