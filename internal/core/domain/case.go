package domain

import "time"

// Defaults applied to cases raised through the portal. Salesforce owns the
// rest of the case lifecycle.
const (
	CaseTypeCustomerRequest = "Customer Request"
	CaseStatusNew           = "New"
)

// Case is a support ticket as mirrored from Salesforce.
type Case struct {
	ID          string    `json:"case_id"`
	CustomerID  string    `json:"customer_id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
}
