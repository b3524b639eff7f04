package server

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moviehall/moviehall/internal/tmdb"
	"github.com/moviehall/moviehall/internal/widget"
)

func (s *Server) registerResources() {
	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "ui://movies/{movieId}/details",
		Name:        "movie-details",
		Title:       "Movie Details",
		Description: "Displays a detail card for a movie with poster, genres, rating, runtime, and cast.",
		MIMEType:    "text/html",
	}, s.readUIResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "ui://movies/{movieId}/trailer",
		Name:        "movie-trailer",
		Title:       "Movie Trailer",
		Description: "Displays a clickable thumbnail for a YouTube trailer video that opens in a new tab.",
		MIMEType:    "text/html",
	}, s.readUIResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "ui://movies/{query}/carousel",
		Name:        "movie-carousel",
		Title:       "Movie Carousel",
		Description: "Displays a scrollable carousel of movie cards for a search query or discovery tag.",
		MIMEType:    "text/html",
	}, s.readUIResource)
}

// readUIResource re-derives the widget addressed by a ui://movies/{key}/{kind}
// URI: it repeats the provider call the key encodes and renders the fragment.
func (s *Server) readUIResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	key, kind, err := parseUIResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	var html string
	switch kind {
	case "details":
		html, err = s.renderDetails(ctx, key)
	case "trailer":
		html, err = s.renderTrailer(ctx, key)
	case "carousel":
		html, err = s.renderCarousel(ctx, key)
	default:
		return nil, fmt.Errorf("unknown widget kind %q in %s", kind, req.Params.URI)
	}
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/html",
			Text:     html,
		}},
	}, nil
}

func (s *Server) renderDetails(ctx context.Context, key string) (string, error) {
	movieID, err := strconv.Atoi(key)
	if err != nil {
		return "", fmt.Errorf("invalid movie id %q", key)
	}
	details, err := s.client.GetMovieDetails(ctx, movieID)
	if err != nil {
		return "", err
	}
	return widget.RenderMovieDetails(*details)
}

func (s *Server) renderTrailer(ctx context.Context, key string) (string, error) {
	movieID, err := strconv.Atoi(key)
	if err != nil {
		return "", fmt.Errorf("invalid movie id %q", key)
	}
	video, err := s.client.GetMovieTrailer(ctx, movieID, "")
	if err != nil {
		return "", err
	}
	if video == nil {
		return "", fmt.Errorf("no trailer found for movie %d", movieID)
	}
	return widget.RenderTrailer(video.Key)
}

// renderCarousel maps a carousel key back to its provider operation: the
// synthetic tags produced by the discovery tools, or a plain search query.
func (s *Server) renderCarousel(ctx context.Context, key string) (string, error) {
	var (
		page *tmdb.MoviePage
		err  error
	)
	switch {
	case key == widget.UpcomingTag:
		page, err = s.client.GetUpcomingMovies(ctx, 1)
	case strings.HasPrefix(key, "trending-"):
		page, err = s.client.GetTrendingMovies(ctx, tmdb.TrendingWindow(strings.TrimPrefix(key, "trending-")), 1)
	case strings.HasPrefix(key, "genre-"):
		page, err = s.discoverByTag(ctx, key, "genre-", s.client.DiscoverMoviesByGenre)
	case strings.HasPrefix(key, "actor-"):
		page, err = s.discoverByTag(ctx, key, "actor-", s.client.DiscoverMoviesByActor)
	case strings.HasPrefix(key, "recommendations-"):
		page, err = s.discoverByTag(ctx, key, "recommendations-", s.client.GetMovieRecommendations)
	default:
		page, err = s.client.SearchMovies(ctx, key, 1)
	}
	if err != nil {
		return "", err
	}
	return widget.RenderCarousel(*page)
}

func (s *Server) discoverByTag(ctx context.Context, key, prefix string, op func(context.Context, int, int) (*tmdb.MoviePage, error)) (*tmdb.MoviePage, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
	if err != nil {
		return nil, fmt.Errorf("invalid %s tag %q", strings.TrimSuffix(prefix, "-"), key)
	}
	return op(ctx, id, 1)
}

// parseUIResourceURI splits ui://movies/{key}/{kind} into its parts. The key
// is percent-decoded.
func parseUIResourceURI(uri string) (key, kind string, err error) {
	rest, ok := strings.CutPrefix(uri, "ui://movies/")
	if !ok {
		return "", "", fmt.Errorf("unsupported resource URI %q", uri)
	}
	slash := strings.LastIndex(rest, "/")
	if slash <= 0 || slash == len(rest)-1 {
		return "", "", fmt.Errorf("unsupported resource URI %q", uri)
	}
	key, err = url.PathUnescape(rest[:slash])
	if err != nil {
		return "", "", fmt.Errorf("malformed resource key in %q: %w", uri, err)
	}
	return key, rest[slash+1:], nil
}
