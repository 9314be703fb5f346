package models

import (
	"time"
)

// Sample is one point on a synthesized BAC curve
type Sample struct {
	// Time is the instant this sample describes
	Time time.Time

	// Level is the estimated BAC percent at Time
	Level float64

	// IsPeak marks the sample emitted immediately after a drink is absorbed
	IsPeak bool
}
