package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

const catsCollection = "cats"

type CatRepository struct {
	coll *mongo.Collection
}

func NewCatRepository(db *mongo.Database) *CatRepository {
	return &CatRepository{coll: db.Collection(catsCollection)}
}

type mongoCat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CatName   string             `bson:"cat_name"`
	Weight    float64            `bson:"weight"`
	Filename  string             `bson:"filename"`
	Birthdate time.Time          `bson:"birthdate"`
	Location  domain.Point       `bson:"location"`
	Owner     primitive.ObjectID `bson:"owner"`
	// OwnerDoc is populated by the $lookup stage on reads.
	OwnerDoc []mongoUser `bson:"owner_doc,omitempty"`
}

func (mc mongoCat) toDomain() *domain.Cat {
	cat := &domain.Cat{
		ID:        mc.ID.Hex(),
		CatName:   mc.CatName,
		Weight:    mc.Weight,
		Filename:  mc.Filename,
		Birthdate: mc.Birthdate,
		Location:  mc.Location,
		Owner:     mc.Owner.Hex(),
	}
	if len(mc.OwnerDoc) > 0 {
		profile := mc.OwnerDoc[0].toDomain().Profile()
		cat.OwnerProfile = &profile
	}
	return cat
}

// ownerLookup joins the owner's user document so reads can expose the public
// profile instead of the raw owner id alone.
var ownerLookup = bson.D{{Key: "$lookup", Value: bson.M{
	"from":         usersCollection,
	"localField":   "owner",
	"foreignField": "_id",
	"as":           "owner_doc",
}}}

func (r *CatRepository) Create(ctx context.Context, cat *domain.Cat) (*domain.Cat, error) {
	ownerID, err := primitive.ObjectIDFromHex(cat.Owner)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid owner id", domain.ErrInvalidInput)
	}

	doc := mongoCat{
		CatName:   cat.CatName,
		Weight:    cat.Weight,
		Filename:  cat.Filename,
		Birthdate: cat.Birthdate,
		Location:  cat.Location,
		Owner:     ownerID,
	}

	insertCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(insertCtx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cat: %w", err)
	}

	// Fetch back through the lookup pipeline so the response carries the
	// owner's profile.
	return r.FindByID(ctx, res.InsertedID.(primitive.ObjectID).Hex())
}

func (r *CatRepository) FindByID(ctx context.Context, id string) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	cats, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, domain.ErrCatNotFound
	}
	return cats[0], nil
}

func (r *CatRepository) FindAll(ctx context.Context) ([]*domain.Cat, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *CatRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []*domain.Cat{}, nil
	}
	return r.aggregate(ctx, bson.M{"owner": oid})
}

// FindWithinGeometry returns every cat whose location lies inside the polygon.
func (r *CatRepository) FindWithinGeometry(ctx context.Context, polygon domain.Polygon) ([]*domain.Cat, error) {
	return r.aggregate(ctx, bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$geometry": polygon,
			},
		},
	})
}

func (r *CatRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Cat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		ownerLookup,
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("query cats: %w", err)
	}
	defer cursor.Close(ctx)

	cats := []*domain.Cat{}
	for cursor.Next(ctx) {
		var mc mongoCat
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cat: %w", err)
		}
		cats = append(cats, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("query cats: %w", err)
	}
	return cats, nil
}

func (r *CatRepository) UpdateByID(ctx context.Context, id string, patch domain.CatPatch) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	set := bson.M{}
	if patch.CatName != nil {
		set["cat_name"] = *patch.CatName
	}
	if patch.Weight != nil {
		set["weight"] = *patch.Weight
	}
	if patch.Birthdate != nil {
		set["birthdate"] = *patch.Birthdate
	}
	if patch.Owner != nil {
		ownerID, err := primitive.ObjectIDFromHex(*patch.Owner)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid owner id", domain.ErrInvalidInput)
		}
		set["owner"] = ownerID
	}

	if len(set) > 0 {
		updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		res, err := r.coll.UpdateOne(updateCtx, bson.M{"_id": oid}, bson.M{"$set": set})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("update cat: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrCatNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *CatRepository) DeleteByID(ctx context.Context, id string) (*domain.Cat, error) {
	// Fetch through the lookup first so the deleted record's prior state,
	// owner profile included, can be returned.
	cat, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oid, _ := primitive.ObjectIDFromHex(id)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete cat: %w", err)
	}
	if res.DeletedCount == 0 {
		return nil, domain.ErrCatNotFound
	}
	return cat, nil
}

// EnsureIndexes creates the geospatial and owner indexes.
func (r *CatRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
