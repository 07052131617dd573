package models

import "time"

// NewsletterSubscriber represents a persisted newsletter signup. Email is
// unique; duplicate signups are rejected, never upserted.
type NewsletterSubscriber struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}
