package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehall/moviehall/internal/config"
)

// TrendingWindow selects the time window for trending movies.
type TrendingWindow string

const (
	TrendingDay  TrendingWindow = "day"
	TrendingWeek TrendingWindow = "week"
)

// Client is a TMDB API client. Every operation issues one request, validates
// the response against the registered schema and returns the typed result.
// There is no caching, no retrying and no shared state across calls.
type Client struct {
	httpClient *http.Client
	config     config.TMDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client.
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "tmdb"
}

// SearchMovies searches for movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", pageParam(page))

	var result MoviePage
	if err := c.get(ctx, "/search/movie", params, moviePageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("page", result.Page).
		Int("results", len(result.Results)).
		Msg("Movie search completed")

	return &result, nil
}

// GetMovieDetails fetches detailed movie info, with credits appended.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits")

	var result MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, movieDetailsSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", movieID).
		Str("title", result.Title).
		Msg("Got movie details")

	return &result, nil
}

// GetMovieRecommendations fetches movies recommended for a given movie.
func (c *Client) GetMovieRecommendations(ctx context.Context, movieID, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("page", pageParam(page))

	var result MoviePage
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/recommendations", movieID), params, moviePageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", movieID).
		Int("results", len(result.Results)).
		Msg("Got movie recommendations")

	return &result, nil
}

// GetMovieGenres fetches the movie genre catalogue.
func (c *Client) GetMovieGenres(ctx context.Context) (*GenreList, error) {
	var result GenreList
	if err := c.get(ctx, "/genre/movie/list", url.Values{}, genreListSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("genres", len(result.Genres)).
		Msg("Got movie genres")

	return &result, nil
}

// SearchActors searches for people by name.
func (c *Client) SearchActors(ctx context.Context, query string, page int) (*ActorPage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", pageParam(page))

	var result ActorPage
	if err := c.get(ctx, "/search/person", params, actorPageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(result.Results)).
		Msg("Actor search completed")

	return &result, nil
}

// DiscoverMoviesByGenre lists movies belonging to a genre.
func (c *Client) DiscoverMoviesByGenre(ctx context.Context, genreID, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("page", pageParam(page))

	var result MoviePage
	if err := c.get(ctx, "/discover/movie", params, moviePageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("genreID", genreID).
		Int("results", len(result.Results)).
		Msg("Discovered movies by genre")

	return &result, nil
}

// DiscoverMoviesByActor lists movies featuring a person.
func (c *Client) DiscoverMoviesByActor(ctx context.Context, actorID, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("with_people", strconv.Itoa(actorID))
	params.Set("page", pageParam(page))

	var result MoviePage
	if err := c.get(ctx, "/discover/movie", params, moviePageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("actorID", actorID).
		Int("results", len(result.Results)).
		Msg("Discovered movies by actor")

	return &result, nil
}

// GetTrendingMovies lists trending movies for a day or week window.
// An empty window defaults to week.
func (c *Client) GetTrendingMovies(ctx context.Context, window TrendingWindow, page int) (*MoviePage, error) {
	if window == "" {
		window = TrendingWeek
	}

	params := url.Values{}
	params.Set("page", pageParam(page))

	var result MoviePage
	if err := c.get(ctx, fmt.Sprintf("/trending/movie/%s", window), params, moviePageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("window", string(window)).
		Int("results", len(result.Results)).
		Msg("Got trending movies")

	return &result, nil
}

// GetUpcomingMovies lists movies with upcoming releases.
func (c *Client) GetUpcomingMovies(ctx context.Context, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("page", pageParam(page))

	var result MoviePage
	if err := c.get(ctx, "/movie/upcoming", params, moviePageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("results", len(result.Results)).
		Msg("Got upcoming movies")

	return &result, nil
}

// GetMovieReviews fetches one page of reviews for a movie.
// An empty language defaults to the configured language.
func (c *Client) GetMovieReviews(ctx context.Context, movieID int, language string, page int) (*ReviewPage, error) {
	params := url.Values{}
	params.Set("language", c.language(language))
	params.Set("page", pageParam(page))

	var result ReviewPage
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/reviews", movieID), params, reviewPageSchema, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", movieID).
		Int("results", len(result.Results)).
		Msg("Got movie reviews")

	return &result, nil
}

// GetMovieTrailer fetches the videos for a movie and selects the first one
// with site "YouTube" and type "Trailer", in provider order. A nil video with
// a nil error means the movie has no trailer; callers must treat that as a
// normal empty result, not a failure.
func (c *Client) GetMovieTrailer(ctx context.Context, movieID int, language string) (*Video, error) {
	params := url.Values{}
	params.Set("language", c.language(language))

	var result VideoList
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), params, videoListSchema, &result); err != nil {
		return nil, err
	}

	for i := range result.Results {
		v := &result.Results[i]
		if v.Site == "YouTube" && v.Type == "Trailer" {
			c.logger.Debug().
				Int("id", movieID).
				Str("key", v.Key).
				Msg("Found movie trailer")
			return v, nil
		}
	}

	c.logger.Debug().
		Int("id", movieID).
		Int("videos", len(result.Results)).
		Msg("No trailer found")

	return nil, nil
}

// get performs an HTTP GET request, validates the JSON response against the
// schema and decodes it into result.
func (c *Client) get(ctx context.Context, path string, params url.Values, schema *responseSchema, result any) error {
	params.Set("api_key", c.config.APIKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.config.BaseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.StatusMessage != "" {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.StatusMessage).
				Str("path", path).
				Msg("TMDB API error")
		}
		return &HTTPError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return &ParseError{Err: err}
	}

	if err := schema.validate(raw); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Schema validation failed")
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &SchemaError{Schema: schema.name, Err: err}
	}

	return nil
}

func (c *Client) language(language string) string {
	if language == "" {
		return c.config.Language
	}
	return language
}

func pageParam(page int) string {
	if page < 1 {
		page = 1
	}
	return strconv.Itoa(page)
}
