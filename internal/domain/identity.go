package domain

// RoleUser is the role assigned on mock sign-in.
const RoleUser = "user"

// Identity is the signed-in user for the current session. The display name
// doubles as the booking ledger key.
type Identity struct {
	Name string
	Role string
}
