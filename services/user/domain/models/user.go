package models

import "time"

// SystemUser is the audit identity recorded for mutations performed through
// the API.
const SystemUser = "SYSTEM"

// User is the back-office user record. Plain CRUD, no domain logic; email is
// unique across all users.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser constructs a User with audit fields initialized. The ID is
// assigned by the store on insert.
func NewUser(firstName, lastName, email, phone string) *User {
	now := time.Now().UTC()
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedBy: SystemUser,
		UpdatedBy: SystemUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the audit trail after a mutation.
func (u *User) Touch() {
	u.UpdatedBy = SystemUser
	u.UpdatedAt = time.Now().UTC()
}
