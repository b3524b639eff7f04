package server

import (
	"context"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moviehall/moviehall/internal/prompts"
)

// Prompt arguments arrive as strings over MCP; list-valued arguments are
// comma-separated and split here before formatting.

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "actor-bio",
		Title:       "Actor Biography",
		Description: "Generate a short biography for an actor based on their notable works.",
		Arguments: []*mcp.PromptArgument{
			{Name: "actorName", Description: "The name of the actor", Required: true},
			{Name: "knownFor", Description: "Comma-separated list of notable movies or roles", Required: true},
		},
	}, promptHandler("assistant", func(args map[string]string) string {
		return prompts.ActorBio(args["actorName"], splitList(args["knownFor"]))
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "describe-movie",
		Title:       "Describe Movie",
		Description: "Generate a user-friendly description of a movie based on its details.",
		Arguments: []*mcp.PromptArgument{
			{Name: "title", Description: "The title of the movie", Required: true},
			{Name: "overview", Description: "The movie's overview or synopsis", Required: true},
			{Name: "genres", Description: "Comma-separated list of genre names", Required: true},
			{Name: "releaseDate", Description: "Release date of the movie", Required: true},
		},
	}, promptHandler("assistant", func(args map[string]string) string {
		return prompts.DescribeMovie(args["title"], args["overview"], splitList(args["genres"]), args["releaseDate"])
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "genre-guide",
		Title:       "Genre Guide",
		Description: "Generate a description of a movie genre for the user.",
		Arguments: []*mcp.PromptArgument{
			{Name: "genre", Description: "The movie genre to describe (e.g. Action, Drama)", Required: true},
		},
	}, promptHandler("assistant", func(args map[string]string) string {
		return prompts.GenreGuide(args["genre"])
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "movie-comparison",
		Title:       "Compare Movies",
		Description: "Generate a comparison between two movies based on their genres and titles.",
		Arguments: []*mcp.PromptArgument{
			{Name: "title1", Description: "Title of the first movie", Required: true},
			{Name: "genres1", Description: "Comma-separated genres of the first movie", Required: true},
			{Name: "title2", Description: "Title of the second movie", Required: true},
			{Name: "genres2", Description: "Comma-separated genres of the second movie", Required: true},
		},
	}, promptHandler("user", func(args map[string]string) string {
		return prompts.MovieComparison(args["title1"], splitList(args["genres1"]), args["title2"], splitList(args["genres2"]))
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "movie-context",
		Title:       "Movie Context",
		Description: "Provide additional context about a movie for richer AI responses.",
		Arguments: []*mcp.PromptArgument{
			{Name: "movieTitle", Description: "The title of the movie", Required: true},
			{Name: "director", Description: "The director of the movie", Required: false},
			{Name: "cast", Description: "Comma-separated list of main actors", Required: true},
		},
	}, promptHandler("assistant", func(args map[string]string) string {
		return prompts.MovieContext(args["movieTitle"], args["director"], splitList(args["cast"]))
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "movie-recommendation-query",
		Title:       "Movie Recommendation Query",
		Description: "Generate a query to find movies based on user preferences.",
		Arguments: []*mcp.PromptArgument{
			{Name: "preferences", Description: "The user's movie preferences (e.g. 'action movies with strong female leads')", Required: true},
		},
	}, promptHandler("user", func(args map[string]string) string {
		return prompts.MovieRecommendationQuery(args["preferences"])
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "movie-trivia",
		Title:       "Movie Trivia",
		Description: "Generate trivia questions based on movie details.",
		Arguments: []*mcp.PromptArgument{
			{Name: "movieTitle", Description: "The title of the movie", Required: true},
			{Name: "details", Description: "Key details about the movie (e.g. cast, director, plot points)", Required: true},
		},
	}, promptHandler("user", func(args map[string]string) string {
		return prompts.MovieTrivia(args["movieTitle"], args["details"])
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "recommend-movie",
		Title:       "Recommend Movie",
		Description: "Generate a recommendation prompt based on a movie and its similar titles.",
		Arguments: []*mcp.PromptArgument{
			{Name: "movieTitle", Description: "The title of the movie to base recommendations on", Required: true},
			{Name: "recommendations", Description: "Comma-separated list of recommended movie titles", Required: true},
		},
	}, promptHandler("user", func(args map[string]string) string {
		return prompts.RecommendMovie(args["movieTitle"], splitList(args["recommendations"]))
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "summarize-reviews",
		Title:       "Summarize Movie Reviews",
		Description: "Generate a concise summary of movie reviews for the AI to present.",
		Arguments: []*mcp.PromptArgument{
			{Name: "movieId", Description: "The ID of the movie to summarize reviews for", Required: true},
			{Name: "reviews", Description: "Comma-separated review texts to summarize", Required: true},
		},
	}, promptHandler("user", func(args map[string]string) string {
		movieID, _ := strconv.Atoi(args["movieId"])
		return prompts.SummarizeReviews(movieID, splitList(args["reviews"]))
	}))

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "trailer-preview",
		Title:       "Trailer Preview",
		Description: "Generate a description of what to expect from a movie's trailer.",
		Arguments: []*mcp.PromptArgument{
			{Name: "movieTitle", Description: "The title of the movie", Required: true},
			{Name: "overview", Description: "The movie's overview or synopsis", Required: true},
		},
	}, promptHandler("assistant", func(args map[string]string) string {
		return prompts.TrailerPreview(args["movieTitle"], args["overview"])
	}))
}

func promptHandler(role mcp.Role, format func(args map[string]string) string) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Messages: []*mcp.PromptMessage{
				{Role: role, Content: &mcp.TextContent{Text: format(req.Params.Arguments)}},
			},
		}, nil
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
