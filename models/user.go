// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// UserCreate is the inbound payload for registering an end user. The
// gateway does not expose a user-creation route itself, but the schema and
// its rules belong to the validation layer because the downstream user
// service shares this contract.
type UserCreate struct {
	Username  string `json:"username" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50,person_name"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50,person_name"`

	DocumentID   string `json:"document_id" validate:"required"`
	DocumentType string `json:"document_type" validate:"required"`

	BirthDate   Date   `json:"birth_date" validate:"not_future"`
	PhoneNumber string `json:"phone_number" validate:"required,phone_intl"`

	// Importance is the client-assigned priority score, 1 (lowest) to 10.
	Importance int `json:"importance" validate:"required,gte=1,lte=10"`

	AllowCall  bool `json:"allow_call"`
	AllowSMS   bool `json:"allow_sms"`
	AllowEmail bool `json:"allow_email"`
}

// UserDocumentInfo identifies a user by their legal document. It is the
// request body for the user-companies lookup.
type UserDocumentInfo struct {
	DocumentType string `json:"document_type" validate:"required"`
	DocumentID   string `json:"document_id" validate:"required"`
}

// UserCompanyRequest names the user/company pair whose incidents are
// aggregated by the users-view operation.
type UserCompanyRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// UserResponse mirrors the user profile returned by the downstream user
// service.
type UserResponse struct {
	ID           string `json:"id"`
	DocumentID   string `json:"document_id"`
	DocumentType string `json:"document_type"`

	BirthDate   Date   `json:"birth_date"`
	PhoneNumber string `json:"phone_number"`

	Importance int  `json:"importance"`
	AllowCall  bool `json:"allow_call"`
	AllowSMS   bool `json:"allow_sms"`
	AllowEmail bool `json:"allow_email"`

	RegistrationDate time.Time `json:"registration_date"`
}

// UserWithIncidents is the composite users-view response: the user profile
// plus the incidents reported for the requested company. It is only ever
// constructed after the user fetch has succeeded.
type UserWithIncidents struct {
	UserResponse

	Incidents []IncidentResponse `json:"incidents"`
}

// UserCompaniesResponseFiltered is the downstream response for the
// user-companies lookup: the resolved user plus the companies associated
// with them, trimmed to {id, name} pairs.
type UserCompaniesResponseFiltered struct {
	UserID    string           `json:"user_id"`
	Companies []CompanySummary `json:"companies"`
}
