package dto

type SubmitRatingRequestDTO struct {
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"5"`
}

type UserRatingResponseDTO struct {
	Rating int `json:"rating" example:"4"`
}

type SuccessResponseDTO struct {
	Success bool `json:"success" example:"true"`
}
