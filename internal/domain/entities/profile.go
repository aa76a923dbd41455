package entities

// Role is the back-office access level stored on the profile row.

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Profile mirrors the identity provider's user in our own store. The id
// is the provider-issued principal id; role assignment is administrative
// and never mutated by this service.
//
// Storage model (DynamoDB):
//   - PK: id

type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}
