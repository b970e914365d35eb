package models

import "strings"

const RoleVendor = "Vendor"

type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Profile is always present on an Account; Username may be empty for
// accounts created before profiles existed.
type Profile struct {
	Username       string  `json:"username"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

type Account struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       Name     `json:"name"`
	Roles      []string `json:"roles"`
	Restricted bool     `json:"restricted"`
	Profile    Profile  `json:"profile"`
}

// AccountSummary is what a successful credential check yields. It never
// carries the password hash.
type AccountSummary struct {
	ID    string
	Name  Name
	Roles []string
}

type NewAccount struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	Username  string   `json:"username"`
	Bio       *string  `json:"bio"`
}

// Restricted reports whether the new account starts suspended. Vendors
// must be approved before they can log in.
func (n NewAccount) Restricted() bool {
	for _, r := range n.Roles {
		if r == RoleVendor || r == strings.ToLower(RoleVendor) {
			return true
		}
	}
	return false
}

// ProfileUpdate carries only the fields the caller supplied.
type ProfileUpdate struct {
	Username       *string `json:"username"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func (p Profile) Merge(u ProfileUpdate) Profile {
	if u.Username != nil {
		p.Username = *u.Username
	}
	if u.Bio != nil {
		p.Bio = u.Bio
	}
	if u.ProfilePicture != nil {
		p.ProfilePicture = u.ProfilePicture
	}
	return p
}

// Authenticated is the login result.
type Authenticated struct {
	ID          string `json:"id"`
	Name        Name   `json:"name"`
	AccessToken string `json:"accessToken"`
}

// SessionAccount is the check result.
type SessionAccount struct {
	ID string `json:"id"`
}
