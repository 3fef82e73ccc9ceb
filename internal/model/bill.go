package model

// Bill statuses as the backend reports them.
const (
	BillPending  = "pending"
	BillAccepted = "accepted"
	BillRefused  = "refused"
)

// Bill is one expense record. FileURL and FileName reference the receipt
// uploaded before the textual fields are submitted.
type Bill struct {
	Email      string `json:"email"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Amount     int    `json:"amount"`
	Date       string `json:"date"`
	VAT        string `json:"vat"`
	Pct        int    `json:"pct"`
	Commentary string `json:"commentary"`
	FileURL    string `json:"fileUrl"`
	FileName   string `json:"fileName"`
	Status     string `json:"status"`
}
