package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

const collectionClients = "clients"

// ClientRepository implements ports.ClientRepository using MongoDB.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

type clientDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	JobTitle     string             `bson:"job_title"`
	Email        string             `bson:"email"`
	Organization string             `bson:"organization"`
	Phone        string             `bson:"phone"`
	Platform     string             `bson:"platform"`
	Stage        string             `bson:"stage"`
	Status       string             `bson:"status"`
	ProjectValue float64            `bson:"project_value"`
	MeetingAt    time.Time          `bson:"meeting_at"`
	NextAction   string             `bson:"next_action"`
	Link         string             `bson:"link,omitempty"`
	CreatedBy    string             `bson:"created_by"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty"`
}

func (d clientDoc) toDomain() domain.Client {
	return domain.Client{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		JobTitle:     d.JobTitle,
		Email:        d.Email,
		Organization: d.Organization,
		Phone:        d.Phone,
		Platform:     d.Platform,
		Stage:        d.Stage,
		Status:       d.Status,
		ProjectValue: d.ProjectValue,
		MeetingAt:    d.MeetingAt,
		NextAction:   d.NextAction,
		Link:         d.Link,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func fromDomainClient(c *domain.Client) clientDoc {
	return clientDoc{
		Name:         c.Name,
		JobTitle:     c.JobTitle,
		Email:        c.Email,
		Organization: c.Organization,
		Phone:        c.Phone,
		Platform:     c.Platform,
		Stage:        c.Stage,
		Status:       c.Status,
		ProjectValue: c.ProjectValue,
		MeetingAt:    c.MeetingAt,
		NextAction:   c.NextAction,
		Link:         c.Link,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	var docs []clientDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	clients := make([]domain.Client, len(docs))
	for i, d := range docs {
		clients[i] = d.toDomain()
	}
	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	c := d.toDomain()
	return &c, nil
}

func (r *ClientRepository) Insert(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, fromDomainClient(c))
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	stored := *c
	stored.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &stored, nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, fields ports.UpdateClientFields) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.JobTitle != nil {
		set["job_title"] = *fields.JobTitle
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.Organization != nil {
		set["organization"] = *fields.Organization
	}
	if fields.Phone != nil {
		set["phone"] = *fields.Phone
	}
	if fields.Platform != nil {
		set["platform"] = *fields.Platform
	}
	if fields.Stage != nil {
		set["stage"] = *fields.Stage
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	if fields.ProjectValue != nil {
		set["project_value"] = *fields.ProjectValue
	}
	if fields.MeetingAt != nil {
		set["meeting_at"] = *fields.MeetingAt
	}
	if fields.NextAction != nil {
		set["next_action"] = *fields.NextAction
	}
	if fields.Link != nil {
		set["link"] = *fields.Link
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("update client: %w", err)
	}

	c := d.toDomain()
	return &c, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *ClientRepository) InsertMany(ctx context.Context, clients []domain.Client) error {
	docs := make([]any, len(clients))
	for i := range clients {
		docs[i] = fromDomainClient(&clients[i])
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert clients: %w", err)
	}
	return nil
}

func (r *ClientRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "meeting_at", Value: 1}}},
	})
	return err
}
