package request

type StartConversationRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}
