package widget

import (
	"fmt"
	"net/url"
)

// Resource URIs follow ui://movies/{key}/{kind}. Keys are derived from the
// rendered entity (movie id, escaped query, or a synthetic tag), so a URI is
// always re-derivable from the request that produced it.

// DetailsURI returns the resource URI for a movie detail card.
func DetailsURI(movieID int) string {
	return fmt.Sprintf("ui://movies/%d/details", movieID)
}

// TrailerURI returns the resource URI for a movie trailer widget.
func TrailerURI(movieID int) string {
	return fmt.Sprintf("ui://movies/%d/trailer", movieID)
}

// CarouselURI returns the resource URI for a carousel keyed by a search
// query or synthetic tag. The key is percent-encoded.
func CarouselURI(key string) string {
	return fmt.Sprintf("ui://movies/%s/carousel", url.PathEscape(key))
}

// ActorTag returns the carousel key for a discover-by-actor result.
func ActorTag(actorID int) string {
	return fmt.Sprintf("actor-%d", actorID)
}

// GenreTag returns the carousel key for a discover-by-genre result.
func GenreTag(genreID int) string {
	return fmt.Sprintf("genre-%d", genreID)
}

// RecommendationsTag returns the carousel key for a recommendations result.
func RecommendationsTag(movieID int) string {
	return fmt.Sprintf("recommendations-%d", movieID)
}

// TrendingTag returns the carousel key for a trending result.
func TrendingTag(window string) string {
	return fmt.Sprintf("trending-%s", window)
}

// UpcomingTag is the carousel key for upcoming releases.
const UpcomingTag = "upcoming"
