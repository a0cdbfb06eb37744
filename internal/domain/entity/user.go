package entity

// User is the credential-lookup record consumed by the auth service.
// Password holds a bcrypt hash.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
