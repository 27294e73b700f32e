package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trackswiftly/userservice/internal/core/domain"
)

const (
	usersCollection  = "users"
	groupsCollection = "groups"
	rolesCollection  = "roles"
	orgsCollection   = "organizations"
)

// IdentityStore is the MongoDB-backed view of the identity platform's data.
// Every method reads current truth; nothing is cached between calls.
type IdentityStore struct {
	users  *mongo.Collection
	groups *mongo.Collection
	roles  *mongo.Collection
	orgs   *mongo.Collection
}

func NewIdentityStore(db *mongo.Database) *IdentityStore {
	return &IdentityStore{
		users:  db.Collection(usersCollection),
		groups: db.Collection(groupsCollection),
		roles:  db.Collection(rolesCollection),
		orgs:   db.Collection(orgsCollection),
	}
}

type userDoc struct {
	ID        string   `bson:"_id"`
	Realm     string   `bson:"realm"`
	Username  string   `bson:"username"`
	Email     string   `bson:"email,omitempty"`
	FirstName string   `bson:"first_name,omitempty"`
	LastName  string   `bson:"last_name,omitempty"`
	Enabled   bool     `bson:"enabled"`
	Roles     []string `bson:"roles,omitempty"`
	Groups    []string `bson:"groups,omitempty"`
}

type groupDoc struct {
	ID    string `bson:"_id"`
	Realm string `bson:"realm"`
	Name  string `bson:"name"`
}

type orgDoc struct {
	ID      string   `bson:"_id"`
	Realm   string   `bson:"realm"`
	Name    string   `bson:"name"`
	Members []string `bson:"members,omitempty"`
}

func (s *IdentityStore) UserByID(ctx context.Context, realm, id string) (*domain.Principal, error) {
	return s.findUser(ctx, bson.M{"_id": id, "realm": realm})
}

func (s *IdentityStore) UserByEmail(ctx context.Context, realm, email string) (*domain.Principal, error) {
	return s.findUser(ctx, bson.M{"email": strings.ToLower(email), "realm": realm})
}

func (s *IdentityStore) findUser(ctx context.Context, filter bson.M) (*domain.Principal, error) {
	var doc userDoc
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.Principal{
		ID:        doc.ID,
		Username:  doc.Username,
		Email:     doc.Email,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Enabled:   doc.Enabled,
	}, nil
}

func (s *IdentityStore) GroupByName(ctx context.Context, realm, name string) (*domain.Group, error) {
	var doc groupDoc
	if err := s.groups.FindOne(ctx, bson.M{"realm": realm, "name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return &domain.Group{ID: doc.ID, Name: doc.Name}, nil
}

func (s *IdentityStore) GroupsByRealm(ctx context.Context, realm string) ([]domain.Group, error) {
	cur, err := s.groups.Find(ctx, bson.M{"realm": realm}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Group
	for cur.Next(ctx) {
		var doc groupDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode group: %w", err)
		}
		out = append(out, domain.Group{ID: doc.ID, Name: doc.Name})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return out, nil
}

func (s *IdentityStore) RoleExists(ctx context.Context, realm string, role domain.Role) (bool, error) {
	// Role names are case-sensitive within a realm.
	n, err := s.roles.CountDocuments(ctx, bson.M{"realm": realm, "name": role.String()})
	if err != nil {
		return false, fmt.Errorf("count roles: %w", err)
	}
	return n > 0, nil
}

func (s *IdentityStore) HasRole(ctx context.Context, realm, userID string, role domain.Role) (bool, error) {
	n, err := s.users.CountDocuments(ctx, bson.M{"_id": userID, "realm": realm, "roles": role.String()})
	if err != nil {
		return false, fmt.Errorf("check role membership: %w", err)
	}
	return n > 0, nil
}

func (s *IdentityStore) OrganizationsByMember(ctx context.Context, realm, userID string) ([]domain.Organization, error) {
	// Sorted by _id so "first organization" is stable across calls.
	cur, err := s.orgs.Find(ctx,
		bson.M{"realm": realm, "members": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Organization
	for cur.Next(ctx) {
		var doc orgDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode organization: %w", err)
		}
		out = append(out, domain.Organization{ID: doc.ID, Name: doc.Name})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate organizations: %w", err)
	}
	return out, nil
}

func (s *IdentityStore) JoinGroup(ctx context.Context, realm, userID, groupID string) error {
	// $addToSet keeps joining an already-joined group a no-op.
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID, "realm": realm},
		bson.M{"$addToSet": bson.M{"groups": groupID}},
	)
	if err != nil {
		return fmt.Errorf("join group: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
