package domain

import (
	"fmt"
	"time"
)

type Resource struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Category       Category  `db:"category"`
	Tags           []string  `db:"tags"`
	SuggestedPrice int       `db:"suggested_price"`
	DriveFileID    string    `db:"drive_file_id"`
	ThumbnailURL   *string   `db:"thumbnail_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// DownloadURL resolves the storage location of the resource file. Empty when no file is attached.
func (r *Resource) DownloadURL(template string) string {
	if r.DriveFileID == "" {
		return ""
	}
	return fmt.Sprintf(template, r.DriveFileID)
}

type ResourceWithStats struct {
	Resource
	DownloadCount  int
	TotalDownloads int
	Rating         float64
	RatingCount    int
}

type Rating struct {
	ID          int64     `db:"id"`
	ResourceID  string    `db:"resource_id"`
	UserSession string    `db:"user_session"`
	Rating      int       `db:"rating"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Download struct {
	ID           int64     `db:"id"`
	ResourceID   string    `db:"resource_id"`
	UserSession  string    `db:"user_session"`
	DownloadedAt time.Time `db:"downloaded_at"`
}

// DownloadStats is a row of the resource_download_stats view.
type DownloadStats struct {
	ResourceID      string `db:"resource_id"`
	UniqueDownloads int    `db:"unique_downloads"`
	TotalDownloads  int    `db:"total_downloads"`
}

type ResourceFilter struct {
	Category Category
	Query    string
}

type ContributionRequest struct {
	Amount        int
	ResourceID    string
	ResourceTitle string
}

// PaymentOrder lives only at the gateway; it is never stored locally.
type PaymentOrder struct {
	OrderID    string
	Amount     int64
	Currency   string
	Receipt    string
	PublicKey  string
	ResourceID string
	Title      string
}

type PaymentVerification struct {
	OrderID   string
	PaymentID string
	Signature string
}

type Payment struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
	Method  string `json:"method"`
	OrderID string `json:"order_id"`
}

// Receipt is a locally kept record of a payment that passed verification.
type Receipt struct {
	Payment    Payment   `json:"payment"`
	VerifiedAt time.Time `json:"verified_at"`
	Attempts   int       `json:"attempts"`
}
