// Package models holds the shapes the client decodes from the GraphQL API.
package models

import "strings"

type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Full joins first and last name, skipping empty parts.
func (n Name) Full() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}

type Authenticated struct {
	ID          string `json:"id"`
	Name        Name   `json:"name"`
	AccessToken string `json:"accessToken"`
}

type SessionAccount struct {
	ID string `json:"id"`
}

type Account struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       Name     `json:"name"`
	Roles      []string `json:"roles"`
	Restricted bool     `json:"restricted"`
}

type UploadURL struct {
	PreSignedURL string `json:"preSignedUrl"`
	FileURL      string `json:"fileUrl"`
}
