package models

// Identity event types as delivered by the provider webhook
const (
	IdentityUserCreated = "user.created"
	IdentityUserUpdated = "user.updated"
	IdentityUserDeleted = "user.deleted"
)

// IdentityEvent is the verified payload of an identity-provider webhook
type IdentityEvent struct {
	Type string          `json:"type"`
	Data IdentityPayload `json:"data"`
}

// IdentityPayload mirrors the provider's user object shape
type IdentityPayload struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
}

// EmailAddress is one entry of the provider's email address list
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first email address, the provider lists the
// primary one first.
func (p *IdentityPayload) PrimaryEmail() string {
	if len(p.EmailAddresses) == 0 {
		return ""
	}
	return p.EmailAddresses[0].EmailAddress
}

// Profile maps the identity payload onto the identity-owned user fields
func (p *IdentityPayload) Profile() *UserProfile {
	return &UserProfile{
		Email:     p.PrimaryEmail(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		PhotoURL:  p.ImageURL,
	}
}
