package dto

type CreateOrderRequestDTO struct {
	Amount       int    `json:"amount" validate:"required,min=1,max=100000" example:"99"`
	ProjectID    string `json:"projectId" validate:"required,max=64" example:"9b2f7a52-6c55-4c1e-9a0c-1c8f4f7e2b10"`
	ProjectTitle string `json:"projectTitle" validate:"required,max=200" example:"DBMS notes"`
}

type CreateOrderResponseDTO struct {
	OrderID  string `json:"orderId" example:"order_P5Zt1y3i7d2X9c"`
	Amount   int64  `json:"amount" example:"9900"`
	Currency string `json:"currency" example:"INR"`
	Key      string `json:"key" example:"rzp_test_1DP5mmOlF5G5ag"`
}

type VerifyPaymentRequestDTO struct {
	OrderID   string `json:"razorpay_order_id" validate:"required" example:"order_P5Zt1y3i7d2X9c"`
	PaymentID string `json:"razorpay_payment_id" validate:"required" example:"pay_P5Zu4bVGc7Wf1S"`
	Signature string `json:"razorpay_signature" validate:"required,hexadecimal,len=64"`
}

type PaymentDTO struct {
	ID      string `json:"id" example:"pay_P5Zu4bVGc7Wf1S"`
	Amount  int64  `json:"amount" example:"9900"`
	Status  string `json:"status" example:"captured"`
	Method  string `json:"method" example:"upi"`
	OrderID string `json:"order_id" example:"order_P5Zt1y3i7d2X9c"`
}

type VerifyPaymentResponseDTO struct {
	Success bool       `json:"success" example:"true"`
	Payment PaymentDTO `json:"payment"`
}
