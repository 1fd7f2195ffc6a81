package models

import "time"

// MoodEntry is a patient's self-reported mood on a 1-10 scale.
type MoodEntry struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	MoodLevel int       `bson:"moodLevel" json:"moodLevel"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
