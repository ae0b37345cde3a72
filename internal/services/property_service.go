package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/config"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/db"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
)

// IPropertyService defines the interface for property-related operations.
type IPropertyService interface {
	FetchProperties(ctx context.Context) ([]models.Property, error)
	SearchProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error)
	FetchFeatured(ctx context.Context) ([]models.Property, error)
	FindPropertyByID(ctx context.Context, id int) (*models.Property, error)
	CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error)
	UpdateProperty(ctx context.Context, p *models.Property) (*models.Property, error)
	ToggleEstado(ctx context.Context, id int) (*models.Property, error)
	DeleteProperty(ctx context.Context, id int) error
}

const (
	propertiesCollection = "properties"
	cacheGenKey          = "properties:gen"
)

// propertyService implements IPropertyService over the hosted store, with a
// generation-keyed Redis cache in front of the search query.
type propertyService struct {
	db  *mongo.Database
	rdb *redis.Client
	cfg *config.Config
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(database *mongo.Database, rdb *redis.Client, cfg *config.Config) IPropertyService {
	return &propertyService{db: database, rdb: rdb, cfg: cfg}
}

// buildFilter translates the filter state into a store query. Sentinel and
// zero values contribute nothing; habitaciones is a minimum, not an exact
// count; ciudad and zona match exactly.
func buildFilter(f models.PropertyFilters) bson.M {
	filter := bson.M{}
	if f.Tipo != "" && f.Tipo != models.TipoTodos {
		filter["tipo"] = f.Tipo
	}
	if f.Operacion != "" && f.Operacion != models.OperacionTodas {
		filter["operacion"] = f.Operacion
	}
	precio := bson.M{}
	if f.PrecioMin > 0 {
		precio["$gte"] = f.PrecioMin
	}
	if f.PrecioMax > 0 {
		precio["$lte"] = f.PrecioMax
	}
	if len(precio) > 0 {
		filter["precio"] = precio
	}
	if f.Habitaciones > 0 {
		filter["habitaciones"] = bson.M{"$gte": f.Habitaciones}
	}
	if f.Ciudad != "" {
		filter["ciudad"] = f.Ciudad
	}
	if f.Zona != "" {
		filter["zona"] = f.Zona
	}
	return filter
}

var sortByFechaDesc = options.Find().SetSort(bson.D{{Key: "fecha_publicacion", Value: -1}})

// SearchProperties runs a filtered catalog query, newest first. Results are
// served from the cache when an entry for the current generation exists;
// cache trouble falls through to the store, never to the caller.
func (s *propertyService) SearchProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error) {
	cacheKey, ok := s.searchCacheKey(ctx, filters)
	if ok {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var results []models.Property
			if json.Unmarshal(cached, &results) == nil {
				return results, nil
			}
		}
	}

	results, err := s.findProperties(ctx, buildFilter(filters))
	if err != nil {
		return nil, err
	}

	if ok {
		if encoded, err := json.Marshal(results); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, encoded, s.cfg.SearchCacheTTL).Err(); err != nil {
				log.Printf("search cache write failed: %v", err)
			}
		}
	}
	return results, nil
}

// FetchProperties returns every listing regardless of state, newest first.
// The admin panel lists paused and sold listings too.
func (s *propertyService) FetchProperties(ctx context.Context) ([]models.Property, error) {
	return s.findProperties(ctx, bson.M{})
}

// FetchFeatured returns the curated homepage set, newest first.
func (s *propertyService) FetchFeatured(ctx context.Context) ([]models.Property, error) {
	return s.findProperties(ctx, bson.M{"destacada": true})
}

func (s *propertyService) findProperties(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := s.db.Collection(propertiesCollection).Find(ctx, filter, sortByFechaDesc)
	if err != nil {
		return nil, fmt.Errorf("error querying properties: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.Property{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding properties: %w", err)
	}
	return results, nil
}

// FindPropertyByID finds a property by its integer id.
func (s *propertyService) FindPropertyByID(ctx context.Context, id int) (*models.Property, error) {
	var p models.Property
	err := s.db.Collection(propertiesCollection).FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("error finding property %d: %w", id, err)
	}
	return &p, nil
}

// CreateProperty inserts a new listing. The store assigns the id and the
// publication date; insert defaults fill moneda, provincia and estado when
// the caller left them empty.
func (s *propertyService) CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error) {
	id, err := db.NextSequence(ctx, s.db, propertiesCollection)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.FechaPublicacion = time.Now().UTC()
	if p.Moneda == "" {
		p.Moneda = s.cfg.DefaultMoneda
	}
	if p.Provincia == "" {
		p.Provincia = s.cfg.DefaultProvincia
	}
	if p.Estado == "" {
		p.Estado = models.EstadoActiva
	}

	if _, err := s.db.Collection(propertiesCollection).InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to insert property %d: %w", p.ID, err)
	}
	s.invalidateSearchCache(ctx)
	return p, nil
}

// UpdateProperty replaces an existing listing's fields. The stored id and
// publication date are preserved; callers cannot move a listing in the
// default ordering by editing it.
func (s *propertyService) UpdateProperty(ctx context.Context, p *models.Property) (*models.Property, error) {
	existing, err := s.FindPropertyByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.FechaPublicacion = existing.FechaPublicacion

	result, err := s.db.Collection(propertiesCollection).ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	s.invalidateSearchCache(ctx)
	return p, nil
}

// ToggleEstado flips a listing between activa and pausada without touching
// any other field.
func (s *propertyService) ToggleEstado(ctx context.Context, id int) (*models.Property, error) {
	existing, err := s.FindPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := models.EstadoActiva
	if existing.Estado == models.EstadoActiva {
		next = models.EstadoPausada
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Property
	err = s.db.Collection(propertiesCollection).FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"estado": next}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to toggle estado for property %d: %w", id, err)
	}
	s.invalidateSearchCache(ctx)
	return &updated, nil
}

// DeleteProperty removes a listing permanently.
func (s *propertyService) DeleteProperty(ctx context.Context, id int) error {
	result, err := s.db.Collection(propertiesCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete property %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	s.invalidateSearchCache(ctx)
	return nil
}

// searchCacheKey derives the cache key for a filter state under the current
// cache generation. A false return means the cache is unavailable and the
// query should go straight to the store.
func (s *propertyService) searchCacheKey(ctx context.Context, filters models.PropertyFilters) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	gen, err := s.rdb.Get(ctx, cacheGenKey).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", false
	}
	return fmt.Sprintf("properties:search:%s:%s", gen, filters.Values().Encode()), true
}

// invalidateSearchCache bumps the cache generation so every cached result
// set is abandoned at once. Cached entries are never patched in place.
func (s *propertyService) invalidateSearchCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, cacheGenKey).Err(); err != nil {
		log.Printf("search cache invalidation failed: %v", err)
	}
}
