package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nestera/savings-api/internal/core/domain"
)

const planCollection = "plans"

type MongoPlanRepository struct {
	coll *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *MongoPlanRepository {
	return &MongoPlanRepository{coll: db.Collection(planCollection)}
}

type mongoPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Type          string             `bson:"type"`
	AmountStroops int64              `bson:"amount_stroops"`
	DurationDays  int                `bson:"duration_days"`
	Status        string             `bson:"status"`
	TxHash        string             `bson:"tx_hash,omitempty"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (r *MongoPlanRepository) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	doc := mongoPlan{
		UserID:        plan.UserID,
		Type:          string(plan.Type),
		AmountStroops: plan.AmountStroops,
		DurationDays:  plan.DurationDays,
		Status:        string(plan.Status),
		TxHash:        plan.TxHash,
		CreatedAt:     plan.CreatedAt.Unix(),
		UpdatedAt:     plan.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	created := *plan
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoPlanRepository) FindByID(ctx context.Context, id string) (*domain.Plan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlanNotFound
	}

	var mp mongoPlan
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPlanRepository) ListByUser(ctx context.Context, userID string) ([]domain.Plan, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoPlanRepository) ListAll(ctx context.Context) ([]domain.Plan, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoPlanRepository) list(ctx context.Context, filter bson.M) ([]domain.Plan, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cur.Close(ctx)

	plans := []domain.Plan{}
	for cur.Next(ctx) {
		var mp mongoPlan
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		plans = append(plans, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (r *MongoPlanRepository) UpdateStatus(ctx context.Context, id string, status domain.PlanStatus, txHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlanNotFound
	}

	set := bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}
	if txHash != "" {
		set["tx_hash"] = txHash
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func (mp *mongoPlan) toDomain() *domain.Plan {
	return &domain.Plan{
		ID:            mp.ID.Hex(),
		UserID:        mp.UserID,
		Type:          domain.PlanType(mp.Type),
		AmountStroops: mp.AmountStroops,
		DurationDays:  mp.DurationDays,
		Status:        domain.PlanStatus(mp.Status),
		TxHash:        mp.TxHash,
		CreatedAt:     unixToTime(mp.CreatedAt),
		UpdatedAt:     unixToTime(mp.UpdatedAt),
	}
}
