package handler

type messageResponse struct {
	Message string `json:"message"`
}
