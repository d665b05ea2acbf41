package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/powerme/portal-api/internal/core/domain"
)

const userCollection = "portal_users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index the registration flow relies
// on. Call once at startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID               string `bson:"_id"`
	Email            string `bson:"email"`
	PasswordHash     string `bson:"password_hash"`
	Role             string `bson:"role"`
	LastIssuedToken  string `bson:"last_issued_token,omitempty"`
	ResetToken       string `bson:"reset_token,omitempty"`
	ResetTokenExpiry int64  `bson:"reset_token_expiry,omitempty"`
	CreatedAt        int64  `bson:"created_at"`
	UpdatedAt        int64  `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return r.FindByID(ctx, user.ID)
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByResetToken only matches rows whose recorded expiry is still in the
// future; expired tokens look exactly like unknown ones.
func (r *MongoUserRepository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"reset_token":        token,
		"reset_token_expiry": bson.M{"$gt": time.Now().UTC().Unix()},
	})
}

// Update replaces the user row in a single write and refreshes updated_at.
func (r *MongoUserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, toMongoUser(user))
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromMongoUser(mu), nil
}

func toMongoUser(user *domain.User) mongoUser {
	mu := mongoUser{
		ID:              user.ID,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		Role:            user.Role,
		LastIssuedToken: user.LastIssuedToken,
		ResetToken:      user.ResetToken,
		CreatedAt:       user.CreatedAt.Unix(),
		UpdatedAt:       user.UpdatedAt.Unix(),
	}
	if user.ResetTokenExpiry != nil {
		mu.ResetTokenExpiry = user.ResetTokenExpiry.Unix()
	}
	return mu
}

func fromMongoUser(mu mongoUser) *domain.User {
	u := &domain.User{
		ID:              mu.ID,
		Email:           mu.Email,
		PasswordHash:    mu.PasswordHash,
		Role:            mu.Role,
		LastIssuedToken: mu.LastIssuedToken,
		ResetToken:      mu.ResetToken,
		CreatedAt:       unixToTime(mu.CreatedAt),
		UpdatedAt:       unixToTime(mu.UpdatedAt),
	}
	if mu.ResetTokenExpiry != 0 {
		t := unixToTime(mu.ResetTokenExpiry)
		u.ResetTokenExpiry = &t
	}
	return u
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
