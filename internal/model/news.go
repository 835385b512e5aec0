package model

// ObjectID mirrors the extended-JSON form the API uses for ids: {"$oid": "..."}.
type ObjectID struct {
	OID string `json:"$oid" yaml:"oid"`
}

// Post represents a single news item returned by the feed API.
type Post struct {
	ID          ObjectID `json:"_id" yaml:"id"`
	Description string   `json:"description" yaml:"description"`
	Feed        string   `json:"feed" yaml:"feed"` // publisher name
	Link        string   `json:"link" yaml:"link"`
	Title       string   `json:"title" yaml:"title"`
}

// Key returns the identifier used to key the post in a rendered list.
func (p Post) Key() string {
	return p.ID.OID
}

// FeedResponse is one page of the news feed, results in server order.
type FeedResponse struct {
	Page      int    `json:"page" yaml:"page"`
	PageSize  int    `json:"paged" yaml:"page_size"`
	PageCount int    `json:"pages" yaml:"page_count"`
	Results   []Post `json:"results" yaml:"results"`
}
