package models

import "time"

// Artist represents a performer that can be booked at venues.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	WebsiteLink        string    `json:"website_link,omitempty"`
	Genres             []string  `json:"genres"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ArtistInput carries the editable artist attributes submitted through a form.
type ArtistInput struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	Genres             []string `form:"genres" validate:"dive,genre"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// Apply overwrites every editable attribute of a with the input values.
func (in ArtistInput) Apply(a *Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.ImageLink = in.ImageLink
	a.FacebookLink = in.FacebookLink
	a.WebsiteLink = in.WebsiteLink
	a.Genres = NormalizeGenres(in.Genres)
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ArtistInputFrom returns the input that reproduces a.
func ArtistInputFrom(a Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		Genres:             a.Genres,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ArtistDetail is an artist with its shows split around the time of the query.
type ArtistDetail struct {
	Artist
	PastShows          []ShowWithVenue `json:"past_shows"`
	UpcomingShows      []ShowWithVenue `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}
