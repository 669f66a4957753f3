package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myokyal/loopify/internal/catalog"
	"github.com/myokyal/loopify/internal/returns"
)

// Collection is the Firestore collection holding return records.
const Collection = "returns"

// returnDoc is the Firestore document shape. The selection fields are
// flattened at the top level alongside shipping and bookkeeping fields.
type returnDoc struct {
	Category     string                `firestore:"category"`
	Item         string                `firestore:"item"`
	Condition    string                `firestore:"condition"`
	Method       string                `firestore:"method"`
	Dropoff      *catalog.DropoffPoint `firestore:"dropoff,omitempty"`
	RewardType   string                `firestore:"rewardType,omitempty"`
	RewardAmount int                   `firestore:"rewardAmount"`

	Shipping *returns.ShippingAddress `firestore:"shipping,omitempty"`
	PhotoURL string                   `firestore:"photoUrl,omitempty"`

	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// FirestoreStore persists return requests in Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestore wraps an existing Firestore client.
func NewFirestore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create writes the request to the returns collection. Firestore assigns
// the document ID; the record starts with status pending.
func (s *FirestoreStore) Create(ctx context.Context, req *returns.Request) (string, error) {
	doc := toDoc(req)
	doc.Status = returns.StatusPending
	doc.CreatedAt = time.Now().UTC()

	ref, _, err := s.client.Collection(Collection).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("create return: %w", err)
	}

	req.ID = ref.ID
	req.Status = doc.Status
	req.CreatedAt = doc.CreatedAt
	return ref.ID, nil
}

// SetPhotoURL records the uploaded photo location on an existing return.
func (s *FirestoreStore) SetPhotoURL(ctx context.Context, id, url string) error {
	_, err := s.client.Collection(Collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "photoUrl", Value: url},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update photo url: %w", err)
	}
	return nil
}

// Get fetches a return record by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*returns.Request, error) {
	snap, err := s.client.Collection(Collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get return: %w", err)
	}

	var doc returnDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode return %s: %w", id, err)
	}
	return fromDoc(snap.Ref.ID, &doc), nil
}

// List fetches all return records, newest first.
func (s *FirestoreStore) List(ctx context.Context) ([]*returns.Request, error) {
	iter := s.client.Collection(Collection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []*returns.Request
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list returns: %w", err)
		}
		var doc returnDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode return %s: %w", snap.Ref.ID, err)
		}
		out = append(out, fromDoc(snap.Ref.ID, &doc))
	}
	return out, nil
}

func toDoc(req *returns.Request) *returnDoc {
	return &returnDoc{
		Category:     req.Selection.Category,
		Item:         req.Selection.Item,
		Condition:    req.Selection.Condition,
		Method:       req.Selection.Method,
		Dropoff:      req.Selection.Dropoff,
		RewardType:   req.Selection.RewardType,
		RewardAmount: req.Selection.RewardAmount,
		Shipping:     req.Shipping,
		PhotoURL:     req.PhotoURL,
	}
}

func fromDoc(id string, doc *returnDoc) *returns.Request {
	return &returns.Request{
		ID: id,
		Selection: returns.Selection{
			Category:     doc.Category,
			Item:         doc.Item,
			Condition:    doc.Condition,
			Method:       doc.Method,
			Dropoff:      doc.Dropoff,
			RewardType:   doc.RewardType,
			RewardAmount: doc.RewardAmount,
		},
		Shipping:  doc.Shipping,
		PhotoURL:  doc.PhotoURL,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
	}
}
