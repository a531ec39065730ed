package dto

type ResourceResponseDTO struct {
	ID             string   `json:"id" example:"9b2f7a52-6c55-4c1e-9a0c-1c8f4f7e2b10"`
	Title          string   `json:"title" example:"DBMS notes"`
	Description    string   `json:"description" example:"Handwritten notes for the whole semester"`
	Category       string   `json:"category" example:"notes"`
	Tags           []string `json:"tags" example:"dbms,sql"`
	SuggestedPrice int      `json:"suggested_price" example:"99"`
	DriveFileID    string   `json:"drive_file_id" example:"1AbCdEf"`
	ThumbnailURL   *string  `json:"thumbnail_url,omitempty"`
	CreatedAt      string   `json:"created_at" example:"2024-12-09T16:09:57+05:30"`
	UpdatedAt      string   `json:"updated_at" example:"2024-12-09T16:09:57+05:30"`
	DownloadCount  int      `json:"downloadCount" example:"42"`
	TotalDownloads int      `json:"totalDownloads" example:"57"`
	Rating         float64  `json:"rating" example:"4.3"`
	RatingCount    int      `json:"ratingCount" example:"12"`
}

type CategoryResponseDTO struct {
	ID    string `json:"id" example:"notes"`
	Label string `json:"label" example:"NOTES"`
	Icon  string `json:"icon" example:"book-open"`
	Color string `json:"color" example:"accent"`
}
