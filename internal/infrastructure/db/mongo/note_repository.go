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

const collectionNotes = "notes"

// NoteRepository implements ports.NoteRepository using MongoDB.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNotes)}
}

type noteDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Category  string             `bson:"category"`
	Priority  string             `bson:"priority"`
	ClientID  string             `bson:"client_id,omitempty"`
	Tags      []string           `bson:"tags"`
	MeetingAt time.Time          `bson:"meeting_at,omitempty"`
	CreatedBy string             `bson:"created_by"`
	UpdatedBy string             `bson:"updated_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

func (d noteDoc) toDomain() domain.Note {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Note{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Category:  domain.NoteCategory(d.Category),
		Priority:  domain.NotePriority(d.Priority),
		ClientID:  d.ClientID,
		Tags:      tags,
		MeetingAt: d.MeetingAt,
		CreatedBy: d.CreatedBy,
		UpdatedBy: d.UpdatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *NoteRepository) List(ctx context.Context) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	var docs []noteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]domain.Note, len(docs))
	for i, d := range docs {
		notes[i] = d.toDomain()
	}
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d noteDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	n := d.toDomain()
	return &n, nil
}

func (r *NoteRepository) Insert(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := noteDoc{
		Title:     n.Title,
		Content:   n.Content,
		Category:  string(n.Category),
		Priority:  string(n.Priority),
		ClientID:  n.ClientID,
		Tags:      n.Tags,
		MeetingAt: n.MeetingAt,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	stored := *n
	stored.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &stored, nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, fields ports.UpdateNoteFields) (*domain.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Content != nil {
		set["content"] = *fields.Content
	}
	if fields.Category != nil {
		set["category"] = string(*fields.Category)
	}
	if fields.Priority != nil {
		set["priority"] = string(*fields.Priority)
	}
	if fields.ClientID != nil {
		set["client_id"] = *fields.ClientID
	}
	if fields.Tags != nil {
		set["tags"] = *fields.Tags
	}
	if fields.MeetingAt != nil {
		set["meeting_at"] = *fields.MeetingAt
	}
	if fields.UpdatedBy != nil {
		set["updated_by"] = *fields.UpdatedBy
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d noteDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	n := d.toDomain()
	return &n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *NoteRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	})
	return err
}
