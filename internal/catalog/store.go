package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hlsmill/internal/config"
	"hlsmill/internal/media"
)

// Store manages catalog persistence backed by MongoDB.
type Store struct {
	client *mongo.Client
	movies *mongo.Collection
	series *mongo.Collection
}

// Connect establishes and verifies the catalog connection. It is called
// once at process start; a failure here fails the whole run.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	timeout := time.Duration(cfg.Mongo.ConnectTimeout) * time.Second
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connect catalog: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping catalog: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)
	return &Store{
		client: client,
		movies: db.Collection(cfg.Mongo.MoviesCollection),
		series: db.Collection(cfg.Mongo.SeriesCollection),
	}, nil
}

// Close disconnects from the catalog.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// SaveMovie assigns the movie its identifier, populates derived URLs, and
// writes the document. Returns the assigned identifier in hex form.
func (s *Store) SaveMovie(ctx context.Context, movie *media.Movie) (string, error) {
	if err := prepareMovie(movie); err != nil {
		return "", err
	}
	if _, err := s.movies.InsertOne(ctx, movie); err != nil {
		return "", fmt.Errorf("save movie %q: %w", movie.Title, err)
	}
	return movie.ID.Hex(), nil
}

// SaveSeries assigns the series its identifier, populates derived URLs for
// the series and every episode, and writes the document.
func (s *Store) SaveSeries(ctx context.Context, series *media.Series) (string, error) {
	if err := prepareSeries(series); err != nil {
		return "", err
	}
	if _, err := s.series.InsertOne(ctx, series); err != nil {
		return "", fmt.Errorf("save series %q: %w", series.Title, err)
	}
	return series.ID.Hex(), nil
}

func prepareMovie(movie *media.Movie) error {
	if movie == nil {
		return errors.New("movie is required")
	}
	if err := movie.Validate(); err != nil {
		return err
	}
	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now().UTC()
	}
	return movie.ApplyDerivedURLs()
}

func prepareSeries(series *media.Series) error {
	if series == nil {
		return errors.New("series is required")
	}
	if err := series.Validate(); err != nil {
		return err
	}
	if series.ID.IsZero() {
		series.ID = primitive.NewObjectID()
	}
	if series.CreatedAt.IsZero() {
		series.CreatedAt = time.Now().UTC()
	}
	return series.ApplyDerivedURLs()
}
