package entity

import "time"

type Hashtag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Hashtags  []Hashtag `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedFilter narrows the feed; Date is pre-parsed to a calendar day by the
// caller, nil means no date filter.
type FeedFilter struct {
	Title   string
	Hashtag string
	Date    *time.Time
}

func (f FeedFilter) Empty() bool {
	return f.Title == "" && f.Hashtag == "" && f.Date == nil
}
