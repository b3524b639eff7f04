// Package widget renders validated TMDB data into self-contained HTML
// fragments. Every renderer is a pure function of its input: no I/O, no
// hidden state, byte-identical output for identical input.
package widget

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/moviehall/moviehall/internal/tmdb"
)

const (
	posterBaseURL       = "https://image.tmdb.org/t/p/w500"
	youtubeWatchBaseURL = "https://www.youtube.com/watch?v="
	youtubeThumbBaseURL = "https://img.youtube.com/vi/"

	// maxCarouselCards caps carousel and cast lists; overflow is dropped
	// silently.
	maxCarouselCards = 5
	maxCastEntries   = 5
)

type detailsView struct {
	CSS       template.CSS
	PosterURL string
	Title     string
	Overview  string
	Genres    []string
	Rating    string
	Runtime   string
	Cast      []string
}

type trailerView struct {
	CSS      template.CSS
	WatchURL string
	ThumbURL string
}

type carouselCard struct {
	PosterURL string
	Title     string
	Overview  string
}

type carouselView struct {
	CSS   template.CSS
	Cards []carouselCard
}

// RenderMovieDetails renders a movie detail card: poster or placeholder,
// title, overview, genre tags, rating, runtime and the top cast entries,
// with textual fallbacks for every missing field.
func RenderMovieDetails(m tmdb.MovieDetails) (string, error) {
	v := detailsView{
		CSS:      designTokensCSS,
		Title:    m.Title,
		Overview: m.Overview,
		Rating:   "N/A",
		Runtime:  "N/A",
	}
	if v.Overview == "" {
		v.Overview = "No overview available."
	}
	if m.PosterPath != nil {
		v.PosterURL = posterBaseURL + *m.PosterPath
	}
	for _, g := range m.Genres {
		v.Genres = append(v.Genres, g.Name)
	}
	if m.VoteAverage != nil {
		v.Rating = strconv.FormatFloat(*m.VoteAverage, 'f', 1, 64)
	}
	if m.Runtime != nil && *m.Runtime > 0 {
		v.Runtime = fmt.Sprintf("%d minutes", *m.Runtime)
	}
	if m.Credits != nil {
		for _, actor := range m.Credits.Cast {
			if len(v.Cast) == maxCastEntries {
				break
			}
			character := "N/A"
			if actor.Character != nil && *actor.Character != "" {
				character = *actor.Character
			}
			v.Cast = append(v.Cast, fmt.Sprintf("%s as %s", actor.Name, character))
		}
	}

	return execute(detailsTmpl, v)
}

// RenderTrailer renders a clickable YouTube thumbnail for a trailer key,
// linking to the watch page in a new browsing context.
func RenderTrailer(trailerKey string) (string, error) {
	v := trailerView{
		CSS:      designTokensCSS,
		WatchURL: youtubeWatchBaseURL + trailerKey,
		ThumbURL: youtubeThumbBaseURL + trailerKey + "/hqdefault.jpg",
	}
	return execute(trailerTmpl, v)
}

// RenderCarousel renders up to the first five results of a movie page as a
// horizontally scrollable card list, preserving provider order.
func RenderCarousel(page tmdb.MoviePage) (string, error) {
	v := carouselView{CSS: designTokensCSS}
	for _, m := range page.Results {
		if len(v.Cards) == maxCarouselCards {
			break
		}
		card := carouselCard{Title: m.Title, Overview: m.Overview}
		if m.PosterPath != nil {
			card.PosterURL = posterBaseURL + *m.PosterPath
		}
		v.Cards = append(v.Cards, card)
	}
	return execute(carouselTmpl, v)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render %s widget: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}

var detailsTmpl = template.Must(template.New("details").Parse(`<style>
{{.CSS}}
.movie-details-container {
  padding: var(--space-12);
  max-width: var(--container-xl);
  margin-left: auto;
  margin-right: auto;
  background-color: var(--bg-primary);
}
.movie-details {
  display: flex;
  flex-wrap: wrap;
  gap: var(--space-12);
  background-color: var(--bg-secondary);
  border-radius: var(--radius-lg);
  padding: var(--space-12);
  box-shadow: var(--shadow-md);
}
.movie-poster {
  flex: 0 0 300px;
  max-width: 100%;
}
.movie-poster img {
  max-width: 100%;
  border-radius: var(--radius-base);
  object-fit: cover;
  height: 450px;
}
.movie-poster .no-poster {
  height: 450px;
  background-color: var(--bg-tertiary);
  display: flex;
  align-items: center;
  justify-content: center;
  border-radius: var(--radius-base);
  color: var(--text-secondary);
  font-size: var(--font-size-base);
  text-align: center;
}
.movie-info {
  flex: 1;
  min-width: 300px;
}
.movie-info h2 {
  font-size: var(--font-size-2xl);
  font-weight: var(--font-weight-semibold);
  color: var(--text-primary);
  margin-bottom: var(--space-6);
  line-height: var(--line-height-tight);
}
.movie-info p {
  font-size: var(--font-size-base);
  color: var(--text-secondary);
  margin-bottom: var(--space-8);
  line-height: var(--line-height-normal);
}
.movie-info .genres,
.movie-info .cast {
  font-size: var(--font-size-sm);
  color: var(--text-secondary);
  margin-bottom: var(--space-8);
}
.movie-info .genres span,
.movie-info .cast span {
  display: inline-block;
  background-color: var(--bg-tertiary);
  padding: var(--space-2) var(--space-4);
  border-radius: var(--radius-sm);
  margin-right: var(--space-4);
  margin-bottom: var(--space-4);
}
.movie-info .rating,
.movie-info .runtime {
  font-size: var(--font-size-sm);
  color: var(--text-secondary);
  margin-bottom: var(--space-8);
}
</style>
<div class="movie-details-container">
  <div class="movie-details">
    <div class="movie-poster">
      {{if .PosterURL}}<img src="{{.PosterURL}}" alt="{{.Title}}" loading="lazy">{{else}}<div class="no-poster">No Poster Available</div>{{end}}
    </div>
    <div class="movie-info">
      <h2>{{.Title}}</h2>
      <p>{{.Overview}}</p>
      <div class="genres">{{if .Genres}}{{range .Genres}}<span>{{.}}</span>{{end}}{{else}}No genres available.{{end}}</div>
      <div class="rating">Rating: {{.Rating}}/10</div>
      <div class="runtime">Runtime: {{.Runtime}}</div>
      <div class="cast">Cast: {{if .Cast}}{{range .Cast}}<span>{{.}}</span>{{end}}{{else}}No cast information available.{{end}}</div>
    </div>
  </div>
</div>
`))

var trailerTmpl = template.Must(template.New("trailer").Parse(`<style>
{{.CSS}}
.trailer-container {
  max-width: 800px;
  margin: 0 auto;
  padding: var(--space-8);
  background-color: var(--bg-primary);
  border-radius: var(--radius-lg);
  box-shadow: var(--shadow-md);
  display: flex;
  justify-content: center;
  align-items: center;
}
.trailer-link {
  display: flex;
  justify-content: center;
  align-items: center;
  text-decoration: none;
  max-width: 100%;
}
.trailer-image {
  width: 100%;
  max-width: 800px;
  aspect-ratio: 16 / 9;
  border-radius: var(--radius-xl);
  transition: transform var(--transition-base), opacity var(--transition-base);
  display: block;
  margin: 0 auto;
}
.trailer-link:hover .trailer-image {
  transform: scale(1.05);
  opacity: 0.9;
}
</style>
<div class="trailer-container">
  <a href="{{.WatchURL}}" target="_blank" rel="noopener noreferrer" class="trailer-link">
    <img src="{{.ThumbURL}}" alt="Movie Trailer Thumbnail" class="trailer-image"/>
  </a>
</div>
`))

var carouselTmpl = template.Must(template.New("carousel").Parse(`<style>
{{.CSS}}
.carousel-container {
  padding: var(--space-12);
  max-width: var(--container-xl);
  margin-left: auto;
  margin-right: auto;
}
.carousel {
  display: flex;
  overflow-x: auto;
  gap: var(--space-8);
  scroll-behavior: smooth;
  padding-bottom: var(--space-8);
  background-color: var(--bg-secondary);
  border-radius: var(--radius-lg);
}
.carousel::-webkit-scrollbar {
  height: var(--space-4);
}
.carousel::-webkit-scrollbar-track {
  background: var(--bg-tertiary);
  border-radius: var(--radius-sm);
}
.carousel::-webkit-scrollbar-thumb {
  background: var(--accent-blue);
  border-radius: var(--radius-sm);
}
.movie-card {
  flex: 0 0 240px;
  background-color: var(--bg-tertiary);
  border: 1px solid var(--text-tertiary);
  border-radius: var(--radius-lg);
  padding: var(--space-8);
  box-shadow: var(--shadow-md);
  transition: transform var(--transition-base);
}
.movie-card:hover {
  transform: translateY(calc(-1 * var(--space-2)));
}
.movie-card img {
  max-width: 100%;
  border-radius: var(--radius-base);
  object-fit: cover;
  height: 360px;
}
.movie-card .no-poster {
  height: 360px;
  background-color: var(--bg-secondary);
  display: flex;
  align-items: center;
  justify-content: center;
  border-radius: var(--radius-base);
  color: var(--text-secondary);
  font-size: var(--font-size-sm);
  text-align: center;
}
.movie-card h3 {
  font-size: var(--font-size-lg);
  font-weight: var(--font-weight-semibold);
  color: var(--text-primary);
  margin: var(--space-6) 0 var(--space-4);
  line-height: var(--line-height-tight);
}
.movie-card p {
  font-size: var(--font-size-sm);
  color: var(--text-secondary);
  overflow: hidden;
  text-overflow: ellipsis;
  display: -webkit-box;
  -webkit-line-clamp: 3;
  -webkit-box-orient: vertical;
}
</style>
<div class="carousel-container">
  <div class="carousel">{{range .Cards}}
    <div class="movie-card">
      {{if .PosterURL}}<img src="{{.PosterURL}}" alt="{{.Title}}" loading="lazy">{{else}}<div class="no-poster">No Poster Available</div>{{end}}
      <h3>{{.Title}}</h3>
      <p>{{.Overview}}</p>
    </div>{{end}}
  </div>
</div>
`))
