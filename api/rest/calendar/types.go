package calendar

// GoogleLinkResponse carries a prefilled Google Calendar URL for a show
type GoogleLinkResponse struct {
	ShowID string `json:"show_id"`
	URL    string `json:"url"`
}
