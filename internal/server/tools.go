package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moviehall/moviehall/internal/tmdb"
	"github.com/moviehall/moviehall/internal/widget"
)

// maxTextEntries caps the text projections (reviews, actors) the same way
// the carousel caps cards.
const maxTextEntries = 5

type searchMoviesInput struct {
	Query string `json:"query" jsonschema:"The search query for movies (e.g. 'Inception')"`
	Page  int    `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type movieIDByTitleInput struct {
	Title string `json:"title" jsonschema:"The title of the movie to search for (e.g., 'Inception')"`
}

type movieDetailsInput struct {
	MovieID int `json:"movieId" jsonschema:"The TMDB ID of the movie (e.g. 27205 for 'Inception')"`
}

type recommendationsInput struct {
	MovieID int `json:"movieId" jsonschema:"The TMDB ID of the movie to base recommendations on"`
	Page    int `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type genresInput struct{}

type searchActorsInput struct {
	Query string `json:"query" jsonschema:"The search query for actors (e.g. 'Leonardo DiCaprio')"`
	Page  int    `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type discoverByGenreInput struct {
	GenreID int `json:"genreId" jsonschema:"The TMDB genre ID (e.g. 28 for Action)"`
	Page    int `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type discoverByActorInput struct {
	ActorID int `json:"actorId" jsonschema:"The TMDB person ID of the actor"`
	Page    int `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type trendingInput struct {
	TimeWindow string `json:"timeWindow,omitempty" jsonschema:"The trending window, 'day' or 'week' (default: 'week')"`
	Page       int    `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type upcomingInput struct {
	Page int `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type reviewsInput struct {
	MovieID  int    `json:"movieId" jsonschema:"The TMDB ID of the movie to fetch reviews for"`
	Language string `json:"language,omitempty" jsonschema:"The reviews language (default: 'en-US')"`
	Page     int    `json:"page,omitempty" jsonschema:"The page number of results (default: 1)"`
}

type trailerInput struct {
	MovieID  int    `json:"movieId" jsonschema:"The TMDB ID of the movie to fetch the trailer for"`
	Language string `json:"language,omitempty" jsonschema:"The trailer language (default: 'en-US')"`
}

// reviewSummary is the reduced review projection returned as text. Rating is
// null when the review has no author rating.
type reviewSummary struct {
	Author    string   `json:"author"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Rating    *float64 `json:"rating"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, movieTool("get_movie_carousel", "Movie Carousel",
		"Search for movies using TMDB API and return a carousel UI with movie titles, overviews, and posters."),
		s.getMovieCarousel)
	mcp.AddTool(s.mcp, movieTool("get_movie_id_by_title", "Get Movie ID by Title",
		"Search for a movie by its title using TMDB API and return the ID of the first matching movie as plain text."),
		s.getMovieIDByTitle)
	mcp.AddTool(s.mcp, movieTool("get_movie_details", "Movie Details",
		"Fetch detailed information about a specific movie using TMDB API and return a UI widget with title, overview, genres, runtime, rating, and cast."),
		s.getMovieDetails)
	mcp.AddTool(s.mcp, movieTool("get_movie_recommendations", "Movie Recommendations",
		"Fetch movie recommendations based on a specific movie using TMDB API and return a carousel UI with recommended movie titles, overviews, and posters."),
		s.getMovieRecommendations)
	mcp.AddTool(s.mcp, movieTool("get_movie_genres", "Get Movie Genres",
		"Fetch the list of available movie genres from TMDB API and return them as plain text JSON. Use this before filtering movies by genre."),
		s.getMovieGenres)
	mcp.AddTool(s.mcp, movieTool("search_actors_ids", "Search Actors IDs",
		"Search for actors by name using TMDB API and return a list of actor IDs and names as plain text JSON."),
		s.searchActors)
	mcp.AddTool(s.mcp, movieTool("get_movies_by_genre", "Movies by Genre",
		"Discover movies by a specific genre using TMDB API and return a carousel UI. Use get_movie_genres first to get available genre IDs."),
		s.discoverMoviesByGenre)
	mcp.AddTool(s.mcp, movieTool("get_movies_by_actor", "Movies by Actor",
		"Discover movies featuring a specific actor using TMDB API and return a carousel UI with movie titles, overviews, and posters. Use search_actors_ids first to get the actor ID."),
		s.discoverMoviesByActor)
	mcp.AddTool(s.mcp, movieTool("get_trending", "Trending Movies",
		"Fetch trending movies for a specific time window using TMDB API and return a carousel UI with movie titles, overviews, and posters."),
		s.getTrendingMovies)
	mcp.AddTool(s.mcp, movieTool("get_upcoming", "Upcoming Movies",
		"Fetch upcoming movies using TMDB API and return a carousel UI with movie titles, overviews, and posters."),
		s.getUpcomingMovies)
	mcp.AddTool(s.mcp, movieTool("get_reviews", "Movie Reviews",
		"Fetch movie reviews for a specific movie using TMDB API and return them as plain text JSON. Use get_movie_id_by_title first to get the movie ID."),
		s.getMovieReviews)
	mcp.AddTool(s.mcp, movieTool("get_trailer", "Movie Trailer",
		"Fetch a YouTube trailer for a specific movie using TMDB API and return an embedded video UI. Use get_movie_id_by_title first to get the movie ID."),
		s.getMovieTrailer)
}

// movieTool builds tool metadata. Every tool here is a read-only, idempotent
// lookup against the provider.
func movieTool(name, title, description string) *mcp.Tool {
	no := false
	return &mcp.Tool{
		Name:        name,
		Description: description,
		Annotations: &mcp.ToolAnnotations{
			Title:           title,
			ReadOnlyHint:    true,
			DestructiveHint: &no,
			IdempotentHint:  true,
		},
	}
}

// callTool is the single failure-recovery boundary for every tool: it runs
// the provider operation and the projection, and converts any failure into a
// well-formed text response instead of a protocol-level error.
func callTool[T any](action string, fetch func() (T, error), render func(T) (*mcp.CallToolResult, error)) *mcp.CallToolResult {
	value, err := fetch()
	if err != nil {
		return errorText(action, err)
	}
	result, err := render(value)
	if err != nil {
		return errorText(action, err)
	}
	return result
}

func errorText(action string, err error) *mcp.CallToolResult {
	return textResult(fmt.Sprintf("Error %s: %s", action, err.Error()))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// resourceResult wraps a rendered HTML fragment in an embedded UI resource.
func resourceResult(uri, html string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.EmbeddedResource{
			Resource: &mcp.ResourceContents{
				URI:      uri,
				MIMEType: "text/html",
				Text:     html,
			},
		}},
	}
}

// jsonResult serializes a projection as a single text content item.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return textResult(string(data)), nil
}

func carouselResult(key string, page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
	html, err := widget.RenderCarousel(*page)
	if err != nil {
		return nil, err
	}
	return resourceResult(widget.CarouselURI(key), html), nil
}

func (s *Server) getMovieCarousel(ctx context.Context, req *mcp.CallToolRequest, in searchMoviesInput) (*mcp.CallToolResult, any, error) {
	return callTool("generating movie carousel",
		func() (*tmdb.MoviePage, error) { return s.client.SearchMovies(ctx, in.Query, in.Page) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) { return carouselResult(in.Query, page) },
	), nil, nil
}

// getMovieIDByTitle resolves a title to the id of the first search match, so
// id-keyed tools can be chained after a plain title.
func (s *Server) getMovieIDByTitle(ctx context.Context, req *mcp.CallToolRequest, in movieIDByTitleInput) (*mcp.CallToolResult, any, error) {
	return callTool("searching for movie ID by title",
		func() (*tmdb.MoviePage, error) { return s.client.SearchMovies(ctx, in.Title, 1) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
			if len(page.Results) == 0 {
				return textResult(fmt.Sprintf("No movie found with title %q", in.Title)), nil
			}
			return textResult(strconv.Itoa(page.Results[0].ID)), nil
		},
	), nil, nil
}

func (s *Server) getMovieDetails(ctx context.Context, req *mcp.CallToolRequest, in movieDetailsInput) (*mcp.CallToolResult, any, error) {
	return callTool("fetching movie details",
		func() (*tmdb.MovieDetails, error) { return s.client.GetMovieDetails(ctx, in.MovieID) },
		func(details *tmdb.MovieDetails) (*mcp.CallToolResult, error) {
			html, err := widget.RenderMovieDetails(*details)
			if err != nil {
				return nil, err
			}
			return resourceResult(widget.DetailsURI(details.ID), html), nil
		},
	), nil, nil
}

func (s *Server) getMovieRecommendations(ctx context.Context, req *mcp.CallToolRequest, in recommendationsInput) (*mcp.CallToolResult, any, error) {
	return callTool("fetching movie recommendations",
		func() (*tmdb.MoviePage, error) { return s.client.GetMovieRecommendations(ctx, in.MovieID, in.Page) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
			return carouselResult(widget.RecommendationsTag(in.MovieID), page)
		},
	), nil, nil
}

func (s *Server) getMovieGenres(ctx context.Context, req *mcp.CallToolRequest, in genresInput) (*mcp.CallToolResult, any, error) {
	return callTool("fetching movie genres",
		func() (*tmdb.GenreList, error) { return s.client.GetMovieGenres(ctx) },
		func(list *tmdb.GenreList) (*mcp.CallToolResult, error) { return jsonResult(list.Genres) },
	), nil, nil
}

func (s *Server) searchActors(ctx context.Context, req *mcp.CallToolRequest, in searchActorsInput) (*mcp.CallToolResult, any, error) {
	return callTool("searching actors",
		func() (*tmdb.ActorPage, error) { return s.client.SearchActors(ctx, in.Query, in.Page) },
		func(page *tmdb.ActorPage) (*mcp.CallToolResult, error) {
			actors := page.Results
			if len(actors) > maxTextEntries {
				actors = actors[:maxTextEntries]
			}
			return jsonResult(actors)
		},
	), nil, nil
}

func (s *Server) discoverMoviesByGenre(ctx context.Context, req *mcp.CallToolRequest, in discoverByGenreInput) (*mcp.CallToolResult, any, error) {
	return callTool("discovering movies by genre",
		func() (*tmdb.MoviePage, error) { return s.client.DiscoverMoviesByGenre(ctx, in.GenreID, in.Page) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
			return carouselResult(widget.GenreTag(in.GenreID), page)
		},
	), nil, nil
}

func (s *Server) discoverMoviesByActor(ctx context.Context, req *mcp.CallToolRequest, in discoverByActorInput) (*mcp.CallToolResult, any, error) {
	return callTool("discovering movies by actor",
		func() (*tmdb.MoviePage, error) { return s.client.DiscoverMoviesByActor(ctx, in.ActorID, in.Page) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
			return carouselResult(widget.ActorTag(in.ActorID), page)
		},
	), nil, nil
}

func (s *Server) getTrendingMovies(ctx context.Context, req *mcp.CallToolRequest, in trendingInput) (*mcp.CallToolResult, any, error) {
	window := tmdb.TrendingWindow(in.TimeWindow)
	if window == "" {
		window = tmdb.TrendingWeek
	}
	return callTool("fetching trending movies",
		func() (*tmdb.MoviePage, error) { return s.client.GetTrendingMovies(ctx, window, in.Page) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
			return carouselResult(widget.TrendingTag(string(window)), page)
		},
	), nil, nil
}

func (s *Server) getUpcomingMovies(ctx context.Context, req *mcp.CallToolRequest, in upcomingInput) (*mcp.CallToolResult, any, error) {
	return callTool("fetching upcoming movies",
		func() (*tmdb.MoviePage, error) { return s.client.GetUpcomingMovies(ctx, in.Page) },
		func(page *tmdb.MoviePage) (*mcp.CallToolResult, error) {
			return carouselResult(widget.UpcomingTag, page)
		},
	), nil, nil
}

func (s *Server) getMovieReviews(ctx context.Context, req *mcp.CallToolRequest, in reviewsInput) (*mcp.CallToolResult, any, error) {
	return callTool("fetching movie reviews",
		func() (*tmdb.ReviewPage, error) {
			return s.client.GetMovieReviews(ctx, in.MovieID, in.Language, in.Page)
		},
		func(page *tmdb.ReviewPage) (*mcp.CallToolResult, error) {
			reviews := page.Results
			if len(reviews) > maxTextEntries {
				reviews = reviews[:maxTextEntries]
			}
			summaries := make([]reviewSummary, len(reviews))
			for i, r := range reviews {
				summaries[i] = reviewSummary{
					Author:    r.Author,
					Content:   r.Content,
					CreatedAt: r.CreatedAt,
				}
				if r.AuthorDetails != nil {
					summaries[i].Rating = r.AuthorDetails.Rating
				}
			}
			return jsonResult(summaries)
		},
	), nil, nil
}

func (s *Server) getMovieTrailer(ctx context.Context, req *mcp.CallToolRequest, in trailerInput) (*mcp.CallToolResult, any, error) {
	return callTool("fetching movie trailer",
		func() (*tmdb.Video, error) { return s.client.GetMovieTrailer(ctx, in.MovieID, in.Language) },
		func(video *tmdb.Video) (*mcp.CallToolResult, error) {
			if video == nil {
				return textResult("No YouTube trailer found for this movie."), nil
			}
			html, err := widget.RenderTrailer(video.Key)
			if err != nil {
				return nil, err
			}
			return resourceResult(widget.TrailerURI(in.MovieID), html), nil
		},
	), nil, nil
}
