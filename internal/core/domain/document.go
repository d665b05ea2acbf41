package domain

import "time"

// Document is a customer-visible file record as mirrored from Salesforce.
// The binary content lives behind DownloadURL; only metadata is stored here.
type Document struct {
	ID          string     `json:"document_id"`
	CustomerID  string     `json:"customer_id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	DownloadURL string     `json:"download_url"`
	CreatedDate *time.Time `json:"created_date,omitempty"`
}
