package ticket

type SubmitTicketRequest struct {
	Department string `json:"department" validate:"max=100"`
	Priority   *int   `json:"priority"`
	Subject    string `json:"subject" validate:"max=200"`
	Message    string `json:"message"`
}
