package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

const accountsCollection = "accounts"

// MongoAccountRepository persists account records. Emails are stored
// normalized (lower case) and guarded by a unique index, so case-insensitive
// lookup is a plain equality match.
type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountsCollection)}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoAccount struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	SecretHash   string `bson:"secret_hash"`
	FirstName    string `bson:"first_name"`
	LastName     string `bson:"last_name"`
	Phone        string `bson:"phone,omitempty"`
	Role         string `bson:"role"`
	ProfileImage string `bson:"profile_image,omitempty"`
	Active       bool   `bson:"is_active"`
	LastLoginAt  int64  `bson:"last_login_at,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func toMongoAccount(a *domain.Account) mongoAccount {
	return mongoAccount{
		ID:           a.ID,
		Email:        domain.NormalizeEmail(a.Email),
		SecretHash:   a.SecretHash,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        a.Phone,
		Role:         string(a.Role),
		ProfileImage: a.ProfileImage,
		Active:       a.Active,
		LastLoginAt:  unixOrZero(a.LastLoginAt),
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
}

func (m mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:           m.ID,
		Email:        m.Email,
		SecretHash:   m.SecretHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		Role:         domain.Role(m.Role),
		ProfileImage: m.ProfileImage,
		Active:       m.Active,
		LastLoginAt:  unixToTime(m.LastLoginAt),
		CreatedAt:    unixToTime(m.CreatedAt),
		UpdatedAt:    unixToTime(m.UpdatedAt),
	}
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := toMongoAccount(account)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": domain.NormalizeEmail(email)})
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

// List returns accounts in insertion order (created_at, then id as a
// tiebreaker for the seeded set which shares timestamps at second
// granularity).
func (r *MongoAccountRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Account, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = string(filter.Role)
	}
	if filter.Active != nil {
		query["is_active"] = *filter.Active
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []*domain.Account
	for cursor.Next(ctx) {
		var ma mongoAccount
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, ma.toDomain())
	}
	return accounts, cursor.Err()
}

func (r *MongoAccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.updateOne(ctx, id, bson.M{"is_active": active})
}

func (r *MongoAccountRepository) SetLastLogin(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{"last_login_at": time.Now().UTC().Unix()})
}

func (r *MongoAccountRepository) updateOne(ctx context.Context, id string, set bson.M) error {
	set["updated_at"] = time.Now().UTC().Unix()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *MongoAccountRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *MongoAccountRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// Stats aggregates the per-role and active counts for the admin dashboard.
func (r *MongoAccountRepository) Stats(ctx context.Context) (*ports.DirectoryStats, error) {
	stats := &ports.DirectoryStats{}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.Total = total

	byRole := map[domain.Role]*int64{
		domain.RoleClient:   &stats.Clients,
		domain.RoleHotelier: &stats.Hoteliers,
		domain.RoleAdmin:    &stats.Admins,
	}
	for role, dst := range byRole {
		n, err := r.coll.CountDocuments(ctx, bson.M{"role": string(role)})
		if err != nil {
			return nil, fmt.Errorf("count role %s: %w", role, err)
		}
		*dst = n
	}

	active, err := r.coll.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("count active: %w", err)
	}
	stats.Active = active

	return stats, nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
