package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/tmdb"
	"go.uber.org/zap"
)

// persistGraphs writes collected transfer graphs to storage in chunks of the
// configured batch size. Each chunk touches storage a fixed number of times
// per entity type, regardless of how many records it holds. A failed chunk is
// logged and skipped; the remaining chunks still land.
//
// The returned map resolves provider ids to stored catalog ids for every
// record that was persisted.
func (m MediaManager) persistGraphs(ctx context.Context, graphs []*TransferGraph) (map[int32]int32, error) {
	log := logger.FromCtx(ctx)

	ids := make(map[int32]int32)
	var chunkErr error

	for start := 0; start < len(graphs); start += m.config.BatchSize {
		end := start + m.config.BatchSize
		if end > len(graphs) {
			end = len(graphs)
		}

		chunkIDs, err := m.persistChunk(ctx, graphs[start:end])
		if err != nil {
			log.Error("failed to persist chunk",
				zap.Int("start", start),
				zap.Int("size", end-start),
				zap.Error(err))
			chunkErr = errors.Join(chunkErr, err)
			continue
		}

		for tmdbID, metadataID := range chunkIDs {
			ids[tmdbID] = metadataID
		}
	}

	if len(ids) == 0 && chunkErr != nil {
		// only fail outright when nothing landed
		return nil, chunkErr
	}

	return ids, nil
}

func (m MediaManager) persistChunk(ctx context.Context, graphs []*TransferGraph) (map[int32]int32, error) {
	ids, updated, inserted, err := m.persistMetadata(ctx, graphs)
	if err != nil {
		return nil, err
	}

	if err := m.persistGenres(ctx, graphs, ids); err != nil {
		return nil, err
	}

	if err := m.persistCredits(ctx, graphs, ids); err != nil {
		return nil, err
	}

	if err := m.persistImages(ctx, graphs, ids); err != nil {
		return nil, err
	}

	if err := m.persistVideos(ctx, graphs, ids); err != nil {
		return nil, err
	}

	if err := m.persistWatchProviders(ctx, graphs, ids); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("persisted chunk",
		zap.Int("records", len(graphs)),
		zap.Int("inserted", inserted),
		zap.Int("updated", updated))

	return ids, nil
}

// persistMetadata lands the chunk's catalog records with one existence lookup,
// one grouped insert for the new records and one update per changed record.
func (m MediaManager) persistMetadata(ctx context.Context, graphs []*TransferGraph) (map[int32]int32, int, int, error) {
	tmdbIDs := make([]int32, 0, len(graphs))
	for _, g := range graphs {
		tmdbIDs = append(tmdbIDs, int32(g.Detail.ID))
	}

	existing, err := m.storage.ListMovieMetadataByTmdbIDs(ctx, tmdbIDs)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("existing metadata lookup: %w", err)
	}

	existingByTmdbID := make(map[int32]*model.MovieMetadata, len(existing))
	for _, meta := range existing {
		existingByTmdbID[meta.TmdbID] = meta
	}

	var inserts []model.MovieMetadata
	var updated int

	now := time.Now()
	for _, g := range graphs {
		desired := FromMovieDetails(*g.Detail)

		current, ok := existingByTmdbID[desired.TmdbID]
		if !ok {
			inserts = append(inserts, desired)
			continue
		}

		if !metadataChanged(current, &desired) {
			continue
		}

		desired.ID = current.ID
		desired.CreatedAt = current.CreatedAt
		desired.UpdatedAt = &now
		if err := m.storage.UpdateMovieMetadata(ctx, desired); err != nil {
			return nil, 0, 0, fmt.Errorf("metadata update tmdb id %d: %w", desired.TmdbID, err)
		}
		updated++
	}

	if len(inserts) > 0 {
		if _, err := m.storage.BatchCreateMovieMetadata(ctx, inserts); err != nil {
			return nil, 0, 0, fmt.Errorf("metadata batch insert: %w", err)
		}
	}

	// one more lookup resolves the generated ids for the inserted rows
	all, err := m.storage.ListMovieMetadataByTmdbIDs(ctx, tmdbIDs)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("metadata id resolution: %w", err)
	}

	ids := make(map[int32]int32, len(all))
	for _, meta := range all {
		ids[meta.TmdbID] = meta.ID
	}

	return ids, updated, len(inserts), nil
}

// metadataChanged compares the refreshable fields. A record whose provider
// payload is unchanged must not get its updated_at bumped.
func metadataChanged(current, desired *model.MovieMetadata) bool {
	if current.Title != desired.Title {
		return true
	}
	if !ptrEq(current.OriginalTitle, desired.OriginalTitle) {
		return true
	}
	if !ptrEq(current.Overview, desired.Overview) {
		return true
	}
	if !ptrEq(current.Status, desired.Status) {
		return true
	}
	if !ptrEq(current.Runtime, desired.Runtime) {
		return true
	}
	if !ptrEq(current.VoteAverage, desired.VoteAverage) {
		return true
	}
	if !ptrEq(current.VoteCount, desired.VoteCount) {
		return true
	}
	if !ptrEq(current.Popularity, desired.Popularity) {
		return true
	}
	if !ptrEq(current.PosterPath, desired.PosterPath) {
		return true
	}
	if !timePtrEq(current.ReleaseDate, desired.ReleaseDate) {
		return true
	}
	return false
}

func ptrEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEq(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (m MediaManager) persistGenres(ctx context.Context, graphs []*TransferGraph, ids map[int32]int32) error {
	var genres []model.Genre
	var links []model.MovieGenre
	seen := make(map[int32]struct{})

	for _, g := range graphs {
		metadataID, ok := ids[int32(g.Detail.ID)]
		if !ok {
			continue
		}
		for _, genre := range g.Detail.Genres {
			genreID := int32(genre.ID)
			if _, dup := seen[genreID]; !dup {
				seen[genreID] = struct{}{}
				genres = append(genres, model.Genre{ID: genreID, Name: genre.Name})
			}
			links = append(links, model.MovieGenre{
				MovieMetadataID: metadataID,
				GenreID:         genreID,
			})
		}
	}

	if len(genres) == 0 {
		return nil
	}

	if err := m.storage.BatchCreateGenres(ctx, genres); err != nil {
		return fmt.Errorf("genre batch insert: %w", err)
	}
	if err := m.storage.BatchLinkMovieGenres(ctx, links); err != nil {
		return fmt.Errorf("genre link insert: %w", err)
	}
	return nil
}

func (m MediaManager) persistCredits(ctx context.Context, graphs []*TransferGraph, ids map[int32]int32) error {
	var people []model.Person
	peopleTmdbIDs := make([]int32, 0)
	seen := make(map[int32]struct{})

	collectPerson := func(tmdbID int32, name string, profilePath *string) {
		if _, dup := seen[tmdbID]; dup {
			return
		}
		seen[tmdbID] = struct{}{}
		people = append(people, model.Person{TmdbID: tmdbID, Name: name, ProfilePath: profilePath})
		peopleTmdbIDs = append(peopleTmdbIDs, tmdbID)
	}

	for _, g := range graphs {
		if g.Credits == nil {
			continue
		}
		if _, ok := ids[int32(g.Detail.ID)]; !ok {
			continue
		}
		for _, cast := range g.Credits.Cast {
			collectPerson(int32(cast.ID), cast.Name, cast.ProfilePath)
		}
		for _, crew := range g.Credits.Crew {
			collectPerson(int32(crew.ID), crew.Name, crew.ProfilePath)
		}
	}

	if len(people) == 0 {
		return nil
	}

	if err := m.storage.BatchCreatePeople(ctx, people); err != nil {
		return fmt.Errorf("person batch insert: %w", err)
	}

	stored, err := m.storage.ListPeopleByTmdbIDs(ctx, peopleTmdbIDs)
	if err != nil {
		return fmt.Errorf("person id resolution: %w", err)
	}
	personIDs := make(map[int32]int32, len(stored))
	for _, p := range stored {
		personIDs[p.TmdbID] = p.ID
	}

	var castRows []model.MovieCast
	var crewRows []model.MovieCrew
	for _, g := range graphs {
		if g.Credits == nil {
			continue
		}
		metadataID, ok := ids[int32(g.Detail.ID)]
		if !ok {
			continue
		}
		for _, cast := range g.Credits.Cast {
			personID, ok := personIDs[int32(cast.ID)]
			if !ok {
				continue
			}
			row := model.MovieCast{
				MovieMetadataID: metadataID,
				PersonID:        personID,
				CastOrder:       int32(cast.Order),
			}
			if cast.Character != "" {
				character := cast.Character
				row.CharacterName = &character
			}
			castRows = append(castRows, row)
		}
		for _, crew := range g.Credits.Crew {
			personID, ok := personIDs[int32(crew.ID)]
			if !ok {
				continue
			}
			row := model.MovieCrew{
				MovieMetadataID: metadataID,
				PersonID:        personID,
				Job:             crew.Job,
			}
			if crew.Department != "" {
				department := crew.Department
				row.Department = &department
			}
			crewRows = append(crewRows, row)
		}
	}

	if len(castRows) > 0 {
		if err := m.storage.BatchCreateMovieCast(ctx, castRows); err != nil {
			return fmt.Errorf("cast batch insert: %w", err)
		}
	}
	if len(crewRows) > 0 {
		if err := m.storage.BatchCreateMovieCrew(ctx, crewRows); err != nil {
			return fmt.Errorf("crew batch insert: %w", err)
		}
	}
	return nil
}

func (m MediaManager) persistImages(ctx context.Context, graphs []*TransferGraph, ids map[int32]int32) error {
	var rows []model.MovieImage

	appendImages := func(metadataID int32, images []tmdb.Image, imageType string) {
		for _, img := range images {
			row := model.MovieImage{
				MovieMetadataID: metadataID,
				FilePath:        img.FilePath,
				ImageType:       imageType,
				Locale:          img.ISO6391,
			}
			if img.Width != 0 {
				width := int32(img.Width)
				row.Width = &width
			}
			if img.Height != 0 {
				height := int32(img.Height)
				row.Height = &height
			}
			rows = append(rows, row)
		}
	}

	for _, g := range graphs {
		if g.Images == nil {
			continue
		}
		metadataID, ok := ids[int32(g.Detail.ID)]
		if !ok {
			continue
		}
		appendImages(metadataID, g.Images.Posters, "poster")
		appendImages(metadataID, g.Images.Backdrops, "backdrop")
	}

	if len(rows) == 0 {
		return nil
	}

	if _, err := m.storage.BatchCreateMovieImages(ctx, rows); err != nil {
		return fmt.Errorf("image batch insert: %w", err)
	}
	return nil
}

func (m MediaManager) persistVideos(ctx context.Context, graphs []*TransferGraph, ids map[int32]int32) error {
	var rows []model.MovieVideo

	for _, g := range graphs {
		if g.Videos == nil {
			continue
		}
		metadataID, ok := ids[int32(g.Detail.ID)]
		if !ok {
			continue
		}
		for _, video := range g.Videos.Results {
			row := model.MovieVideo{
				MovieMetadataID: metadataID,
				VideoKey:        video.Key,
				Official:        video.Official,
			}
			if video.Name != "" {
				name := video.Name
				row.Name = &name
			}
			if video.Site != "" {
				site := video.Site
				row.Site = &site
			}
			if video.Type != "" {
				videoType := video.Type
				row.VideoType = &videoType
			}
			if video.PublishedAt != "" {
				if published, err := time.Parse(time.RFC3339, video.PublishedAt); err == nil {
					row.PublishedAt = &published
				}
			}
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	if _, err := m.storage.BatchCreateMovieVideos(ctx, rows); err != nil {
		return fmt.Errorf("video batch insert: %w", err)
	}
	return nil
}

// persistWatchProviders flattens the configured region's offers into provider
// rows and link rows keyed by offer kind.
func (m MediaManager) persistWatchProviders(ctx context.Context, graphs []*TransferGraph, ids map[int32]int32) error {
	var providers []model.WatchProvider
	providerTmdbIDs := make([]int32, 0)
	seen := make(map[int32]struct{})

	type pendingLink struct {
		metadataID     int32
		providerTmdbID int32
		offerType      string
	}
	var pending []pendingLink

	collectOffers := func(metadataID int32, offers []tmdb.ProviderOffer, offerType string) {
		for _, offer := range offers {
			providerID := int32(offer.ProviderID)
			if _, dup := seen[providerID]; !dup {
				seen[providerID] = struct{}{}
				providers = append(providers, model.WatchProvider{
					TmdbID:          providerID,
					Name:            offer.ProviderName,
					LogoPath:        offer.LogoPath,
					DisplayPriority: int32(offer.DisplayPriority),
				})
				providerTmdbIDs = append(providerTmdbIDs, providerID)
			}
			pending = append(pending, pendingLink{
				metadataID:     metadataID,
				providerTmdbID: providerID,
				offerType:      offerType,
			})
		}
	}

	for _, g := range graphs {
		if g.Providers == nil {
			continue
		}
		metadataID, ok := ids[int32(g.Detail.ID)]
		if !ok {
			continue
		}
		region, ok := g.Providers.Results[m.config.Region]
		if !ok {
			continue
		}
		collectOffers(metadataID, region.Flatrate, "flatrate")
		collectOffers(metadataID, region.Rent, "rent")
		collectOffers(metadataID, region.Buy, "buy")
	}

	if len(providers) == 0 {
		return nil
	}

	if err := m.storage.BatchCreateWatchProviders(ctx, providers); err != nil {
		return fmt.Errorf("watch provider batch insert: %w", err)
	}

	stored, err := m.storage.ListWatchProvidersByTmdbIDs(ctx, providerTmdbIDs)
	if err != nil {
		return fmt.Errorf("watch provider id resolution: %w", err)
	}
	providerIDs := make(map[int32]int32, len(stored))
	for _, p := range stored {
		providerIDs[p.TmdbID] = p.ID
	}

	var links []model.MovieWatchProvider
	for _, p := range pending {
		providerID, ok := providerIDs[p.providerTmdbID]
		if !ok {
			continue
		}
		links = append(links, model.MovieWatchProvider{
			MovieMetadataID: p.metadataID,
			WatchProviderID: providerID,
			OfferType:       p.offerType,
			Region:          m.config.Region,
		})
	}

	if len(links) > 0 {
		if err := m.storage.BatchLinkMovieWatchProviders(ctx, links); err != nil {
			return fmt.Errorf("watch provider link insert: %w", err)
		}
	}
	return nil
}
