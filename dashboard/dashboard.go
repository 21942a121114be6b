package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"brookside/db"
	"brookside/models"
	"brookside/rdx"
	"brookside/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	cacheKey = "dashboard:stats"
	cacheTTL = 30 * time.Second
	topN     = 5
)

type recentOrder struct {
	models.Order `bson:",inline"`
	User         []models.UserSummary `json:"user" bson:"user"`
}

type stats struct {
	Products          int64            `json:"products"`
	Users             int64            `json:"users"`
	Orders            int64            `json:"orders"`
	UnreadMessages    int64            `json:"unread_messages"`
	PendingTours      int64            `json:"pending_tours"`
	ActiveSubscribers int64            `json:"active_subscribers"`
	Revenue           float64          `json:"revenue"`
	RecentOrders      []recentOrder    `json:"recent_orders"`
	TopProducts       []PopularProduct `json:"top_products"`
}

// GET /api/admin/dashboard  (admin)
//
// The aggregate is cached briefly in redis since every widget on the
// admin home hits this endpoint.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	s, err := collectStats(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}

	if payload, err := json.Marshal(s); err == nil {
		rdx.SetWithExpiry(cacheKey, string(payload), cacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, s)
}

func collectStats(ctx context.Context) (*stats, error) {
	var s stats
	var err error

	counts := []struct {
		coll   *mongo.Collection
		filter bson.M
		dst    *int64
	}{
		{db.ProductCollection, bson.M{}, &s.Products},
		{db.UserCollection, bson.M{}, &s.Users},
		{db.OrdersCollection, bson.M{}, &s.Orders},
		{db.ContactCollection, bson.M{"read": false}, &s.UnreadMessages},
		{db.TourBookingCollection, bson.M{"status": models.TourPending}, &s.PendingTours},
		{db.NewsletterCollection, bson.M{"active": true}, &s.ActiveSubscribers},
	}
	for _, c := range counts {
		if *c.dst, err = c.coll.CountDocuments(ctx, c.filter); err != nil {
			return nil, err
		}
	}

	if s.Revenue, err = sumRevenue(ctx); err != nil {
		return nil, err
	}
	if s.RecentOrders, err = fetchRecentOrders(ctx); err != nil {
		return nil, err
	}
	if s.TopProducts, err = fetchTopProducts(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}

// sumRevenue totals only orders whose payment actually completed.
func sumRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"payment_status": models.PaymentCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

func fetchRecentOrders(ctx context.Context) ([]recentOrder, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$limit", Value: 5}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userid",
			"foreignField": "userid",
			"as":           "user",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"user.password_hash": 0,
		}}},
	}

	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []recentOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// fetchTopProducts ranks products by total quantity ordered. The final
// ordering is redone in Go because $sort alone leaves ties unordered.
func fetchTopProducts(ctx context.Context) ([]PopularProduct, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$items.productid",
			"total_quantity": bson.M{"$sum": "$items.quantity"},
		}}},
		// the secondary _id sort keeps the cutoff deterministic when
		// quantities tie across the limit boundary
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "total_quantity", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: topN * 2}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "_id",
			"foreignField": "productid",
			"as":           "product",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$product", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$project", Value: bson.M{
			"total_quantity": 1,
			"name":           "$product.name",
			"price":          "$product.price",
		}}},
	}

	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []PopularProduct{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return rankPopular(products, topN), nil
}
