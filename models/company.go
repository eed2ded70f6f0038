// SPDX-License-Identifier: Apache-2.0

package models

// CompanyCreate is the inbound payload for registering a new company
// together with its owner account. All fields are validated by the
// validators package before any downstream call is made.
type CompanyCreate struct {
	// Username is the owner's login and must be a valid email address.
	Username string `json:"username" validate:"required,email"`

	// Password is the owner's plaintext password. It is forwarded to the
	// downstream user service as-is and never stored by the gateway.
	Password string `json:"password" validate:"required,min=8"`

	// FirstName is the owner's given name. Latin letters, Spanish accented
	// letters and spaces only.
	FirstName string `json:"first_name" validate:"required,min=1,max=50,person_name"`

	// LastName is the owner's family name, same alphabet as FirstName.
	LastName string `json:"last_name" validate:"required,min=1,max=50,person_name"`

	// Name is the company display name.
	Name string `json:"name" validate:"required,min=1,max=100"`

	// BirthDate is the owner's birth date. It may not be in the future.
	BirthDate Date `json:"birth_date" validate:"not_future"`

	// PhoneNumber must match the international format "+DD DDD DDD DDDD".
	PhoneNumber string `json:"phone_number" validate:"required,phone_intl"`

	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// CompanySummary is the trimmed {id, name} pair used inside
// [UserCompaniesResponseFiltered]. Company bodies are otherwise forwarded
// verbatim, so no full company response shape is modeled.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
