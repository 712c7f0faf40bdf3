package constants

// Role claim values stored in role_claims and carried in the JWT.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)
