package models

import "time"

// Reminder is a scheduled pet-care reminder (vaccines, medication, walks).
type Reminder struct {
	ID       string    `bson:"id" json:"id"`
	OwnerID  string    `bson:"ownerId" json:"owner_id"`
	PetID    string    `bson:"petId,omitempty" json:"pet_id,omitempty"`
	Title    string    `bson:"title" json:"title"`
	Body     string    `bson:"body" json:"body"`
	FireDate time.Time `bson:"fireDate" json:"fire_date"`
	Sent     bool      `bson:"sent" json:"sent"`
}

// ReminderPayload is the queue payload for a scheduled reminder delivery.
type ReminderPayload struct {
	OwnerID    string `json:"ownerId"`
	ReminderID string `json:"reminderId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
