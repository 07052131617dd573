package dto

import "time"

// SubscribeNewsletterRequest is the newsletter signup payload.
type SubscribeNewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscriberResponse mirrors a stored newsletter subscriber.
type SubscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
