package domain

// Identity is the authenticated actor for a single request. It is built by the
// auth middleware from a verified token, lives only in the request context and
// is never persisted.
type Identity struct {
	SubjectID string
	Role      string
}
