package dto

import "github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"

// ContactRequest is the contact form payload. Optional fields are pointers
// so an absent field can be told apart from an explicit value.
type ContactRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Message     *string `json:"message,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
}

type ContactListResponse struct {
	Submissions []ContactSubmissionView `json:"submissions"`
	Total       int64                   `json:"total"`
	Limit       int                     `json:"limit"`
	Offset      int                     `json:"offset"`
}

// ContactSubmissionView is the admin view of a submission, including the
// spam flag hidden from visitors.
type ContactSubmissionView struct {
	models.ContactSubmission
	SpamReason string `json:"spamReason"`
}
