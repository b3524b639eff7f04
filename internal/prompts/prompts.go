// Package prompts builds the natural-language instruction strings exposed as
// MCP prompts. Every function is pure string formatting over typed inputs.
package prompts

import (
	"fmt"
	"strings"
)

// ActorBio asks for a short biography based on an actor's notable works.
func ActorBio(actorName string, knownFor []string) string {
	return fmt.Sprintf("%s is known for starring in %s. Provide a brief biography highlighting their career and major achievements.",
		actorName, strings.Join(knownFor, ", "))
}

// DescribeMovie produces a user-friendly movie description.
func DescribeMovie(title, overview string, genres []string, releaseDate string) string {
	return fmt.Sprintf("**%s** (%s) is a %s movie. %s",
		title, releaseDate, strings.Join(genres, ", "), overview)
}

// GenreGuide describes a movie genre, with dedicated wording for Action and
// Drama and a generic fallback for everything else.
func GenreGuide(genre string) string {
	var traits string
	switch strings.ToLower(genre) {
	case "action":
		traits = "fast-paced sequences, high stakes, and physical conflicts"
	case "drama":
		traits = "emotional narratives and deep character development"
	default:
		traits = "unique themes and storytelling styles"
	}
	return fmt.Sprintf("The %s genre typically features %s. Would you like to see %s movies?", genre, traits, genre)
}

// MovieComparison asks for a comparison of two movies by title and genres.
func MovieComparison(title1 string, genres1 []string, title2 string, genres2 []string) string {
	return fmt.Sprintf("Compare %q (%s) with %q (%s) in terms of themes, style, and audience appeal.",
		title1, strings.Join(genres1, ", "), title2, strings.Join(genres2, ", "))
}

// MovieContext supplies cast and optional director context for a movie.
func MovieContext(movieTitle, director string, cast []string) string {
	directedBy := ""
	if director != "" {
		directedBy = fmt.Sprintf(" and is directed by %s", director)
	}
	return fmt.Sprintf("**%s** features %s%s. Use this context to answer questions about the movie.",
		movieTitle, strings.Join(cast, ", "), directedBy)
}

// MovieRecommendationQuery asks for recommendations matching free-text
// preferences.
func MovieRecommendationQuery(preferences string) string {
	return fmt.Sprintf("Find movies that match these preferences: %s. Suggest 3-5 titles with a brief explanation of why they fit.", preferences)
}

// MovieTrivia asks for trivia questions built from movie details.
func MovieTrivia(movieTitle, details string) string {
	return fmt.Sprintf("Create three trivia questions about %q based on these details: %s. Make them engaging and suitable for movie fans.",
		movieTitle, details)
}

// RecommendMovie presents similar titles for a movie the user liked.
func RecommendMovie(movieTitle string, recommendations []string) string {
	return fmt.Sprintf("Based on your interest in %q, here are some similar movies you might enjoy: %s. Which one would you like to explore?",
		movieTitle, strings.Join(recommendations, ", "))
}

// SummarizeReviews asks for a short summary of a numbered review list.
func SummarizeReviews(movieID int, reviews []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following reviews for movie ID %d in 2-3 sentences, highlighting the main sentiments and key points:\n\nReviews:\n", movieID)
	for i, review := range reviews {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, review)
	}
	return b.String()
}

// TrailerPreview describes what to expect from a movie's trailer.
func TrailerPreview(movieTitle, overview string) string {
	return fmt.Sprintf("The trailer for %q likely showcases: %s. Expect visuals and music that highlight the movie's key themes.",
		movieTitle, overview)
}
