package models

import "time"

// UserRecord is one scraped forum member. Records are produced by the
// out-of-band scraper; this service only reads them.
type UserRecord struct {
	ID             string     `json:"id" bson:"_id"`
	Username       string     `json:"username" bson:"username"`
	Rank           string     `json:"rank" bson:"rank"`
	Merit          int        `json:"merit" bson:"merit"`
	Posts          int        `json:"posts" bson:"posts"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty" bson:"lastScrapedAt,omitempty"`
	PromotedAt     *time.Time `json:"promoted_at,omitempty" bson:"promotedAt,omitempty"`
	ProfileURL     string     `json:"profile_url" bson:"profileUrl"`
}

// UserListResponse is the API response for the filtered dashboard views.
type UserListResponse struct {
	Users []UserRecord `json:"users"`
	Count int          `json:"count"`
}
