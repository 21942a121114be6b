package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"brookside/db"
	"brookside/models"
	"brookside/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler owns the invoice signing key; the CRUD handlers hang off it
// so routes wire a single value.
type Handler struct {
	invoiceKey []byte
}

func NewHandler(invoiceKey []byte) *Handler {
	return &Handler{invoiceKey: invoiceKey}
}

// POST /api/orders  (authenticated)
//
// The authenticated requester is stamped as owner. totalAmount is
// caller-supplied and deliberately not recomputed from catalog prices.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.GetUserFromRequest(r)
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg, ok := ValidateNewOrder(&order); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	order.OrderID = "o" + uuid.NewString()
	order.UserID = user.UserID
	order.OrderStatus = models.OrderPending
	order.PaymentStatus = models.PaymentPending
	order.CreatedAt = now
	order.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GET /api/orders  (authenticated)
//
// Admins see every order with owner and product summaries embedded;
// everyone else sees only their own orders.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.GetUserFromRequest(r)
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !user.IsAdmin {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		orders, err := utils.FindAndDecode[models.Order](ctx, db.OrdersCollection, bson.M{"userid": user.UserID}, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": orders})
		return
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userid",
			"foreignField": "userid",
			"as":           "user",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "items.productid",
			"foreignField": "productid",
			"as":           "products",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"user.password_hash": 0,
		}}},
	}

	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.OrderExpanded
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode orders")
		return
	}
	if orders == nil {
		orders = []models.OrderExpanded{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": orders})
}

// GET /api/orders/:id  (owner or admin)
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, status, msg := h.loadOwned(r, ps.ByName("id"))
	if order == nil {
		utils.RespondWithError(w, status, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// PUT /api/orders/:id  (admin), status updates only, checked against
// the transition tables.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		OrderStatus   models.OrderStatus   `json:"order_status"`
		PaymentStatus models.PaymentStatus `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("id")}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	update := bson.M{"updatedAt": time.Now()}

	if input.OrderStatus != "" {
		if !input.OrderStatus.Valid() {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
			return
		}
		if !order.OrderStatus.CanTransition(input.OrderStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, "Illegal order status transition")
			return
		}
		update["order_status"] = input.OrderStatus
	}

	if input.PaymentStatus != "" {
		if !input.PaymentStatus.Valid() {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown payment status")
			return
		}
		if !order.PaymentStatus.CanTransition(input.PaymentStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, "Illegal payment status transition")
			return
		}
		update["payment_status"] = input.PaymentStatus
	}

	res := db.OrdersCollection.FindOneAndUpdate(ctx,
		bson.M{"orderid": order.OrderID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Order
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// loadOwned fetches an order and applies the owner-or-admin rule.
func (h *Handler) loadOwned(r *http.Request, orderID string) (*models.Order, int, string) {
	user := utils.GetUserFromRequest(r)
	if user == nil {
		return nil, http.StatusUnauthorized, "Not authorized"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		return nil, http.StatusNotFound, "Order not found"
	}

	if order.UserID != user.UserID && !user.IsAdmin {
		return nil, http.StatusForbidden, "Not allowed to view this order"
	}
	return &order, 0, ""
}

// ValidateNewOrder checks the required fields of an incoming order.
func ValidateNewOrder(o *models.Order) (string, bool) {
	if len(o.Items) == 0 {
		return "Order must contain at least one item", false
	}
	for _, item := range o.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return "Each item needs a product and a quantity of at least 1", false
		}
	}
	switch {
	case o.TotalAmount < 0:
		return "Total amount must be non-negative", false
	case o.ShippingAddress == "":
		return "Shipping address is required", false
	case o.PaymentMethod == "":
		return "Payment method is required", false
	}
	return "", true
}
