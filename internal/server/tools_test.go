package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviehall/moviehall/internal/config"
	"github.com/moviehall/moviehall/internal/tmdb"
)

// newTestServer builds a Server backed by a fake TMDB API.
func newTestServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	client := tmdb.NewClient(config.TMDBConfig{
		APIKey:   "test-api-key",
		BaseURL:  backend.URL,
		Language: "en-US",
		Timeout:  5,
	}, zerolog.Nop())
	return New(client, zerolog.Nop())
}

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content is %T, want *mcp.TextContent", res.Content[0])
	return text.Text
}

func embeddedResource(t *testing.T, res *mcp.CallToolResult) *mcp.ResourceContents {
	t.Helper()
	require.Len(t, res.Content, 1)
	embedded, ok := res.Content[0].(*mcp.EmbeddedResource)
	require.True(t, ok, "content is %T, want *mcp.EmbeddedResource", res.Content[0])
	return embedded.Resource
}

func searchResultsBody(count int) string {
	results := ""
	for i := 0; i < count; i++ {
		if i > 0 {
			results += ","
		}
		results += fmt.Sprintf(`{"id": %d, "title": "Movie %d", "overview": "Overview %d", "poster_path": "/p%d.jpg"}`, i, i, i, i)
	}
	return fmt.Sprintf(`{"page": 1, "results": [%s], "total_pages": 1, "total_results": %d}`, results, count)
}

func TestGetMovieCarousel(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		require.Equal(t, "Inception", r.URL.Query().Get("query"))
		w.Write([]byte(searchResultsBody(8)))
	})

	res, _, err := s.getMovieCarousel(context.Background(), nil, searchMoviesInput{Query: "Inception"})
	require.NoError(t, err)

	resource := embeddedResource(t, res)
	assert.Equal(t, "ui://movies/Inception/carousel", resource.URI)
	assert.Equal(t, "text/html", resource.MIMEType)
	assert.Contains(t, resource.Text, "https://image.tmdb.org/t/p/w500/p0.jpg")
	// Eight provider results render as five cards.
	assert.Contains(t, resource.Text, "<h3>Movie 4</h3>")
	assert.NotContains(t, resource.Text, "Movie 5")
}

func TestGetMovieCarousel_ProviderError(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	res, _, err := s.getMovieCarousel(context.Background(), nil, searchMoviesInput{Query: "nope"})
	require.NoError(t, err, "provider failures must not become protocol errors")

	assert.Equal(t, "Error generating movie carousel: TMDB API error: 404 - Not Found", textContent(t, res))
}

func TestGetMovieIDByTitle(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		require.Equal(t, "Inception", r.URL.Query().Get("query"))
		require.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"page": 1, "results": [
			{"id": 27205, "title": "Inception", "overview": ""},
			{"id": 64956, "title": "Inception: The Cobol Job", "overview": ""}
		], "total_pages": 1, "total_results": 2}`))
	})

	res, _, err := s.getMovieIDByTitle(context.Background(), nil, movieIDByTitleInput{Title: "Inception"})
	require.NoError(t, err)
	// First match wins; the id comes back as plain text.
	assert.Equal(t, "27205", textContent(t, res))
}

func TestGetMovieIDByTitle_NoMatch(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`))
	})

	res, _, err := s.getMovieIDByTitle(context.Background(), nil, movieIDByTitleInput{Title: "Nonexistent Movie"})
	require.NoError(t, err)
	assert.Equal(t, `No movie found with title "Nonexistent Movie"`, textContent(t, res))
}

func TestGetMovieIDByTitle_Error(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	res, _, err := s.getMovieIDByTitle(context.Background(), nil, movieIDByTitleInput{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Error searching for movie ID by title: TMDB API error: 404 - Not Found", textContent(t, res))
}

func TestGetMovieDetails_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/27205", r.URL.Path)
		w.Write([]byte(`{"id": 27205, "title": "Inception", "overview": "A thief.", "poster_path": "/abc.jpg",
			"runtime": 148, "vote_average": 8.37, "genres": [{"id": 28, "name": "Action"}],
			"credits": {"cast": [{"name": "Leonardo DiCaprio", "character": "Cobb"}]}}`))
	})

	res, _, err := s.getMovieDetails(context.Background(), nil, movieDetailsInput{MovieID: 27205})
	require.NoError(t, err)

	resource := embeddedResource(t, res)
	assert.Equal(t, "ui://movies/27205/details", resource.URI)
	assert.Contains(t, resource.Text, "<h2>Inception</h2>")
	assert.Contains(t, resource.Text, "Leonardo DiCaprio as Cobb")
}

func TestGetMovieDetails_Tool_Error(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	res, _, err := s.getMovieDetails(context.Background(), nil, movieDetailsInput{MovieID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Error fetching movie details: TMDB API error: 401 - Unauthorized", textContent(t, res))
}

func TestGetMovieRecommendations_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/27205/recommendations", r.URL.Path)
		w.Write([]byte(searchResultsBody(2)))
	})

	res, _, err := s.getMovieRecommendations(context.Background(), nil, recommendationsInput{MovieID: 27205})
	require.NoError(t, err)
	assert.Equal(t, "ui://movies/recommendations-27205/carousel", embeddedResource(t, res).URI)
}

func TestGetMovieGenres_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}, {"id": 18, "name": "Drama"}]}`))
	})

	res, _, err := s.getMovieGenres(context.Background(), nil, genresInput{})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 28, "name": "Action"}, {"id": 18, "name": "Drama"}]`, textContent(t, res))
}

func TestSearchActors_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		results := ""
		for i := 0; i < 7; i++ {
			if i > 0 {
				results += ","
			}
			results += fmt.Sprintf(`{"id": %d, "name": "Actor %d"}`, i, i)
		}
		fmt.Fprintf(w, `{"page": 1, "results": [%s], "total_pages": 1, "total_results": 7}`, results)
	})

	res, _, err := s.searchActors(context.Background(), nil, searchActorsInput{Query: "Actor"})
	require.NoError(t, err)

	var actors []tmdb.ActorSummary
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &actors))
	require.Len(t, actors, 5)
	assert.Equal(t, "Actor 0", actors[0].Name)
}

func TestDiscoverTools(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/discover/movie", r.URL.Path)
		w.Write([]byte(searchResultsBody(1)))
	})

	res, _, err := s.discoverMoviesByGenre(context.Background(), nil, discoverByGenreInput{GenreID: 28})
	require.NoError(t, err)
	assert.Equal(t, "ui://movies/genre-28/carousel", embeddedResource(t, res).URI)

	res, _, err = s.discoverMoviesByActor(context.Background(), nil, discoverByActorInput{ActorID: 6193})
	require.NoError(t, err)
	assert.Equal(t, "ui://movies/actor-6193/carousel", embeddedResource(t, res).URI)
}

func TestGetTrendingMovies_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/trending/movie/week", r.URL.Path)
		w.Write([]byte(searchResultsBody(1)))
	})

	// empty window defaults to week, in the URI too
	res, _, err := s.getTrendingMovies(context.Background(), nil, trendingInput{})
	require.NoError(t, err)
	assert.Equal(t, "ui://movies/trending-week/carousel", embeddedResource(t, res).URI)
}

func TestGetUpcomingMovies_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/upcoming", r.URL.Path)
		w.Write([]byte(searchResultsBody(1)))
	})

	res, _, err := s.getUpcomingMovies(context.Background(), nil, upcomingInput{})
	require.NoError(t, err)
	assert.Equal(t, "ui://movies/upcoming/carousel", embeddedResource(t, res).URI)
}

func TestGetMovieReviews_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		results := ""
		for i := 0; i < 7; i++ {
			if i > 0 {
				results += ","
			}
			details := ""
			if i == 0 {
				details = `, "author_details": {"username": "u0", "rating": 9.0}`
			}
			results += fmt.Sprintf(`{"author": "author%d", "content": "content%d", "created_at": "2020-01-0%dT00:00:00Z", "id": "r%d", "updated_at": "t", "url": "u"%s}`,
				i, i, i+1, i, details)
		}
		fmt.Fprintf(w, `{"id": 27205, "page": 1, "results": [%s], "total_pages": 1, "total_results": 7}`, results)
	})

	res, _, err := s.getMovieReviews(context.Background(), nil, reviewsInput{MovieID: 27205})
	require.NoError(t, err)

	var summaries []reviewSummary
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &summaries))
	require.Len(t, summaries, 5)

	assert.Equal(t, "author0", summaries[0].Author)
	require.NotNil(t, summaries[0].Rating)
	assert.Equal(t, 9.0, *summaries[0].Rating)
	// Reviews without an author rating serialize rating as null.
	assert.Nil(t, summaries[1].Rating)
	assert.Contains(t, textContent(t, res), `"rating":null`)
}

func TestGetMovieTrailer_Tool(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/27205/videos", r.URL.Path)
		w.Write([]byte(`{"id": 27205, "results": [
			{"iso_639_1": "en", "iso_3166_1": "US", "name": "Official Trailer", "key": "O-b2VfmmbyA", "site": "YouTube", "size": 1080, "type": "Trailer", "official": true, "published_at": "t", "id": "v1"}
		]}`))
	})

	res, _, err := s.getMovieTrailer(context.Background(), nil, trailerInput{MovieID: 27205})
	require.NoError(t, err)

	resource := embeddedResource(t, res)
	assert.Equal(t, "ui://movies/27205/trailer", resource.URI)
	assert.Contains(t, resource.Text, "https://www.youtube.com/watch?v=O-b2VfmmbyA")
}

func TestGetMovieTrailer_Tool_NoTrailer(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "results": []}`))
	})

	res, _, err := s.getMovieTrailer(context.Background(), nil, trailerInput{MovieID: 1})
	require.NoError(t, err)
	assert.Equal(t, "No YouTube trailer found for this movie.", textContent(t, res))
}

func TestGetMovieTrailer_Tool_Error(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res, _, err := s.getMovieTrailer(context.Background(), nil, trailerInput{MovieID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Error fetching movie trailer: TMDB API error: 500 - Internal Server Error", textContent(t, res))
}
