// Package taxonomy embeds the fiction and non-fiction genre trees and
// parses them on first use. The trees are static reference data; the
// genre service serves them read-only.
package taxonomy

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

//go:embed *.toml
var dataFS embed.FS

var (
	loadOnce   sync.Once
	loadErr    error
	fiction    []domain.Genre
	nonFiction []domain.Genre
)

// Fiction returns the fiction genre tree.
func Fiction() ([]domain.Genre, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return fiction, nil
}

// NonFiction returns the non-fiction genre tree.
func NonFiction() ([]domain.Genre, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return nonFiction, nil
}

func load() {
	fiction, loadErr = parse("fiction.toml")
	if loadErr != nil {
		return
	}
	nonFiction, loadErr = parse("nonfiction.toml")
}

// genreEntry mirrors domain.Genre with the TOML key names.
type genreEntry struct {
	Umbrella    string          `toml:"umbrella"`
	Name        string          `toml:"name"`
	Description string          `toml:"description"`
	Subgenres   []subgenreEntry `toml:"subgenres"`
}

type subgenreEntry struct {
	Name          string   `toml:"name"`
	Description   string   `toml:"description"`
	Setting       string   `toml:"setting"`
	Themes        []string `toml:"themes"`
	Tropes        []string `toml:"tropes"`
	MainCharacter string   `toml:"main_character"`
	TimePeriod    string   `toml:"time_period"`
	Subject       string   `toml:"subject"`
	Tone          string   `toml:"tone"`
	Format        string   `toml:"format"`
}

func parse(name string) ([]domain.Genre, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var doc struct {
		Genres []genreEntry `toml:"genres"`
	}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	genres := make([]domain.Genre, 0, len(doc.Genres))
	for _, entry := range doc.Genres {
		genres = append(genres, entry.toDomain())
	}
	return genres, nil
}

func (g genreEntry) toDomain() domain.Genre {
	genre := domain.Genre{
		Umbrella:    g.Umbrella,
		Name:        g.Name,
		Description: g.Description,
		Subgenres:   make([]domain.Subgenre, 0, len(g.Subgenres)),
	}
	for _, sub := range g.Subgenres {
		genre.Subgenres = append(genre.Subgenres, domain.Subgenre{
			Name:          sub.Name,
			Description:   sub.Description,
			Setting:       sub.Setting,
			Themes:        sub.Themes,
			Tropes:        sub.Tropes,
			MainCharacter: sub.MainCharacter,
			TimePeriod:    sub.TimePeriod,
			Subject:       sub.Subject,
			Tone:          sub.Tone,
			Format:        sub.Format,
		})
	}
	return genre
}
