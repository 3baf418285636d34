// Package member implements the onboarding workflow: validate the request,
// provision a directory account, deliver the credential by mail.
package member

// AccountRequest is the transient per-invocation input. It is never
// persisted.
type AccountRequest struct {
	FirstName    string
	LastName     string
	PrivateEmail string
}

// ProvisionedAccount describes the directory entry that was created. The
// password exists only in memory between generation and delivery.
type ProvisionedAccount struct {
	LoginToken string
	Email      string
	Password   string
}
