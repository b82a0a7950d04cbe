package models

// Campaign is one signature campaign tracked by the scraper. Campaigns are
// keyed by their display name: the document store writes it as _id and the
// relational schema as the name column, so ID doubles as the campaign name.
// Status is one of OPEN, CFNP (closed for new participants) or CLOSED.
type Campaign struct {
	ID        string         `json:"id" bson:"_id"`
	Status    string         `json:"status" bson:"status"`
	Slots     map[string]int `json:"slots,omitempty" bson:"slots,omitempty"`
	ThreadID  int64          `json:"thread_id,omitempty" bson:"thread_id,omitempty"`
	ThreadURL string         `json:"thread_url,omitempty" bson:"-"`
}

// CampaignListResponse is the API response for the campaign listing.
type CampaignListResponse struct {
	Campaigns []Campaign `json:"campaigns"`
	Count     int        `json:"count"`
}
