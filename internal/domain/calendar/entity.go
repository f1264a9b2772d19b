package calendar

import "time"

const (
	StatusOff     = "off"
	StatusWorking = "working"
)

// Override is an explicit day classification that beats the weekend default
// for that exact date.
type Override struct {
	Date      time.Time
	Status    string
	Note      string
	CreatedAt time.Time
}
