package tmdb

// Optional and nullable provider fields are both pointer-typed: after schema
// validation a nil pointer uniformly means "no value", whether the field was
// absent or explicitly null.

// MoviePage is one page of movie results. Search, recommendations, discover,
// trending and upcoming all share this shape.
type MoviePage struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// MovieSummary is a movie as it appears in list results.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date,omitempty"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path,omitempty"`
}

// MovieDetails is the detailed movie info, with credits appended.
type MovieDetails struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate *string  `json:"release_date,omitempty"`
	PosterPath  *string  `json:"poster_path,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	Genres      []Genre  `json:"genres,omitempty"`
	Credits     *Credits `json:"credits,omitempty"`
}

// Genre is a TMDB genre. Genre ids are unique within a GenreList.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the full movie genre catalogue.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Credits holds cast and crew for a movie, in provider billing order.
type Credits struct {
	Cast []CastMember `json:"cast,omitempty"`
	Crew []CrewMember `json:"crew,omitempty"`
}

// CastMember is a single cast credit.
type CastMember struct {
	Name      string  `json:"name"`
	Character *string `json:"character,omitempty"`
}

// CrewMember is a single crew credit.
type CrewMember struct {
	Name string  `json:"name"`
	Job  *string `json:"job,omitempty"`
}

// ActorPage is one page of person search results.
type ActorPage struct {
	Page         int            `json:"page"`
	Results      []ActorSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// ActorSummary is a person as it appears in search results.
type ActorSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReviewPage is one page of reviews for a movie.
type ReviewPage struct {
	ID           int      `json:"id"`
	Page         int      `json:"page"`
	Results      []Review `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Review is a single user review.
type Review struct {
	Author        string         `json:"author"`
	Content       string         `json:"content"`
	CreatedAt     string         `json:"created_at"`
	ID            string         `json:"id"`
	UpdatedAt     string         `json:"updated_at"`
	URL           string         `json:"url"`
	AuthorDetails *AuthorDetails `json:"author_details,omitempty"`
}

// AuthorDetails is the optional author block attached to a review.
type AuthorDetails struct {
	Name       *string  `json:"name,omitempty"`
	Username   string   `json:"username"`
	AvatarPath *string  `json:"avatar_path,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}

// VideoList wraps the videos published for a movie.
type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// Video is a single published video (trailer, teaser, clip, ...).
type Video struct {
	ISO6391     string `json:"iso_639_1"`
	ISO31661    string `json:"iso_3166_1"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
	ID          string `json:"id"`
}

// ErrorResponse is an error body from the TMDB API.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
