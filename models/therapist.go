package models

import "time"

// WorkingHours is a daily availability window in 24-hour "HH:MM" form,
// local to the therapist. Start is inclusive, End exclusive.
type WorkingHours struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// TherapistProfile holds therapist-specific data keyed by the user's ID.
// WorkingHours is keyed by lowercase weekday name ("monday" .. "sunday");
// a missing key means the therapist does not work that day.
type TherapistProfile struct {
	UserID          string                  `bson:"userId" json:"userId"`
	Bio             string                  `bson:"bio,omitempty" json:"bio,omitempty"`
	Specializations []string                `bson:"specializations,omitempty" json:"specializations,omitempty"`
	RatePerSession  float64                 `bson:"ratePerSession,omitempty" json:"ratePerSession,omitempty"`
	Rating          float64                 `bson:"rating,omitempty" json:"rating,omitempty"`
	WorkingHours    map[string]WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	DaysOff         []time.Time             `bson:"daysOff,omitempty" json:"daysOff,omitempty"`
	CreatedAt       time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time               `bson:"updatedAt" json:"updatedAt"`
}
