package models

import "time"

// Show books an artist at a venue. Whether it is upcoming is derived from
// StartTime at read time.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowInput carries a show submission.
type ShowInput struct {
	ArtistID  int64     `form:"artist_id" validate:"required,gt=0"`
	VenueID   int64     `form:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `form:"start_time" validate:"required"`
}

// Upcoming reports whether the show starts after now.
func (s Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// ShowWithArtist is a show as listed on a venue page.
type ShowWithArtist struct {
	Show
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
}

// ShowWithVenue is a show as listed on an artist page.
type ShowWithVenue struct {
	Show
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
}

// ShowListing is a show with both sides of the booking inlined.
type ShowListing struct {
	Show
	VenueName       string `json:"venue_name"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
}
