package entities

// Partner is a referral entity selectable when registering an
// operation. Read-only from this service's perspective.

type Partner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
