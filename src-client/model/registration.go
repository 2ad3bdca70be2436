package model

type RegistrationStatus string

const (
	RegistrationStatusPending    RegistrationStatus = "pending"
	RegistrationStatusConfirmed  RegistrationStatus = "confirmed"
	RegistrationStatusWaitlisted RegistrationStatus = "waitlisted"
	RegistrationStatusRejected   RegistrationStatus = "rejected"
)

// Registration links a user to an event. The backend owns it, the client
// only ever holds transient copies.
type Registration struct {
	ID        int64              `json:"id"`
	UserID    *int64             `json:"user_id,omitempty"`
	EventID   int64              `json:"event_id"`
	SessionID *int64             `json:"session_id,omitempty"`
	Status    RegistrationStatus `json:"status"`
	Attended  bool               `json:"attended"`
	CreatedAt Timestamp          `json:"created_at"`

	Student          *User   `json:"student,omitempty"`
	FeedbackRating   *int    `json:"feedback_rating,omitempty"`
	FeedbackComments *string `json:"feedback_comments,omitempty"`
}

type FeedbackInput struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

type InviteInput struct {
	Emails []string `json:"emails"`
}
