package domain

import "time"

// ActivityType categorises entries in the audit trail.
type ActivityType string

const (
	ActivityLoginSuccess   ActivityType = "auth.login.success"
	ActivityLoginFailure   ActivityType = "auth.login.failure"
	ActivityRegistered     ActivityType = "profile.registered"
	ActivityProfileUpdated ActivityType = "profile.updated"
)

// ActivityEvent records a single security-relevant action for auditing.
// SubjectID is empty for failed logins where no account was resolved.
type ActivityEvent struct {
	Type       ActivityType
	SubjectID  string
	Role       string
	Email      string
	OccurredAt time.Time
}
