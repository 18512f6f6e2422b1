package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"student-exchange/internal/exchangeerrors"
	model "student-exchange/internal/models"
	"student-exchange/utils"
)

const mongoOpTimeout = 10 * time.Second

// MongoRepo is a MongoDB-backed implementation of ExchangeDB.
//
// The single-holder guarantee on accept does not rely on multi-document
// transactions: the item document is claimed with a conditional
// FindOneAndUpdate (status must still be Available), so of two concurrent
// accepts for the same item only one can flip it to On Hold. Cart and
// pending-request uniqueness are enforced by unique indexes, not by
// read-then-write checks.
type MongoRepo struct {
	client       *mongo.Client
	itemsColl    *mongo.Collection
	cartColl     *mongo.Collection
	requestsColl *mongo.Collection
}

type mongoItemDoc struct {
	ID            string    `bson:"_id"`
	Seller        string    `bson:"seller"`
	Title         string    `bson:"title"`
	Description   string    `bson:"description"`
	Price         float64   `bson:"price"`
	Category      string    `bson:"category,omitempty"`
	Image         string    `bson:"image,omitempty"`
	Status        string    `bson:"status"`
	AcceptedBuyer string    `bson:"accepted_buyer,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
}

type mongoCartDoc struct {
	ID      string    `bson:"_id"`
	Buyer   string    `bson:"buyer"`
	ItemID  string    `bson:"item_id"`
	AddedAt time.Time `bson:"added_at"`
}

type mongoRequestDoc struct {
	ID              string    `bson:"_id"`
	Buyer           string    `bson:"buyer"`
	ItemID          string    `bson:"item_id"`
	ContactEmail    string    `bson:"contact_email"`
	ContactPhone    string    `bson:"contact_phone"`
	Message         string    `bson:"message,omitempty"`
	Status          string    `bson:"status"`
	ClearedByBuyer  bool      `bson:"cleared_by_buyer"`
	ClearedBySeller bool      `bson:"cleared_by_seller"`
	RequestedAt     time.Time `bson:"requested_at"`
}

// NewMongoRepo connects to MongoDB and prepares the marketplace collections
func NewMongoRepo(ctx context.Context, mongoURI, dbName string) (*MongoRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	repo := &MongoRepo{
		client:       client,
		itemsColl:    db.Collection("items"),
		cartColl:     db.Collection("cart_items"),
		requestsColl: db.Collection("buy_requests"),
	}

	// Uniqueness on (buyer, item) in the cart and on (buyer, item) among
	// pending requests is enforced at write time by these indexes.
	_, _ = repo.itemsColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "seller", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	_, _ = repo.cartColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "buyer", Value: 1}, {Key: "item_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = repo.requestsColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "item_id", Value: 1}}},
		{Keys: bson.D{{Key: "buyer", Value: 1}, {Key: "requested_at", Value: -1}}},
		{
			Keys: bson.D{{Key: "buyer", Value: 1}, {Key: "item_id", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "status", Value: string(model.RequestPending)}}),
		},
	})

	utils.Info("MongoDB connected", map[string]any{"db": dbName})
	return repo, nil
}

// Close disconnects the underlying client
func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), mongoOpTimeout)
}

func itemDocToModel(d mongoItemDoc) model.Item {
	return model.Item{
		ItemID:        d.ID,
		Seller:        d.Seller,
		Title:         d.Title,
		Description:   d.Description,
		Price:         d.Price,
		Category:      d.Category,
		Image:         d.Image,
		Status:        model.ItemStatus(d.Status),
		AcceptedBuyer: d.AcceptedBuyer,
		CreatedAt:     d.CreatedAt,
	}
}

func itemModelToDoc(item model.Item) mongoItemDoc {
	return mongoItemDoc{
		ID:            item.ItemID,
		Seller:        item.Seller,
		Title:         item.Title,
		Description:   item.Description,
		Price:         item.Price,
		Category:      item.Category,
		Image:         item.Image,
		Status:        string(item.Status),
		AcceptedBuyer: item.AcceptedBuyer,
		CreatedAt:     item.CreatedAt,
	}
}

func requestDocToModel(d mongoRequestDoc) model.BuyRequest {
	return model.BuyRequest{
		RequestID:       d.ID,
		Buyer:           d.Buyer,
		ItemID:          d.ItemID,
		ContactEmail:    d.ContactEmail,
		ContactPhone:    d.ContactPhone,
		Message:         d.Message,
		Status:          model.RequestStatus(d.Status),
		ClearedByBuyer:  d.ClearedByBuyer,
		ClearedBySeller: d.ClearedBySeller,
		RequestedAt:     d.RequestedAt,
	}
}

func requestModelToDoc(req model.BuyRequest) mongoRequestDoc {
	return mongoRequestDoc{
		ID:              req.RequestID,
		Buyer:           req.Buyer,
		ItemID:          req.ItemID,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Message:         req.Message,
		Status:          string(req.Status),
		ClearedByBuyer:  req.ClearedByBuyer,
		ClearedBySeller: req.ClearedBySeller,
		RequestedAt:     req.RequestedAt,
	}
}

func (r *MongoRepo) CreateItem(item model.Item) error {
	ctx, cancel := opCtx()
	defer cancel()

	_, err := r.itemsColl.InsertOne(ctx, itemModelToDoc(item))
	return err
}

func (r *MongoRepo) GetItem(itemID string) (model.Item, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var doc mongoItemDoc
	err := r.itemsColl.FindOne(ctx, bson.M{"_id": itemID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, err
	}
	return itemDocToModel(doc), nil
}

func (r *MongoRepo) GetItems(filter model.ItemFilter) ([]model.Item, error) {
	ctx, cancel := opCtx()
	defer cancel()

	query := bson.M{}
	if filter.Seller != "" {
		query["seller"] = filter.Seller
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	cur, err := r.itemsColl.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]model.Item, 0)
	for cur.Next(ctx) {
		var doc mongoItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, itemDocToModel(doc))
	}
	return items, cur.Err()
}

func (r *MongoRepo) UpdateItem(seller, itemID string, patch model.ItemPatch) (model.Item, error) {
	ctx, cancel := opCtx()
	defer cancel()

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if len(set) == 0 {
		return r.ownedItem(ctx, seller, itemID, "update")
	}

	var doc mongoItemDoc
	err := r.itemsColl.FindOneAndUpdate(ctx,
		bson.M{"_id": itemID, "seller": seller},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.Item{}, r.missingOrForbidden(ctx, itemID, "update item")
	}
	if err != nil {
		return model.Item{}, err
	}
	return itemDocToModel(doc), nil
}

func (r *MongoRepo) ownedItem(ctx context.Context, seller, itemID, op string) (model.Item, error) {
	var doc mongoItemDoc
	err := r.itemsColl.FindOne(ctx, bson.M{"_id": itemID, "seller": seller}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.Item{}, r.missingOrForbidden(ctx, itemID, op+" item")
	}
	if err != nil {
		return model.Item{}, err
	}
	return itemDocToModel(doc), nil
}

// missingOrForbidden distinguishes a missing row from one owned by someone else
func (r *MongoRepo) missingOrForbidden(ctx context.Context, itemID, op string) error {
	n, err := r.itemsColl.CountDocuments(ctx, bson.M{"_id": itemID})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, itemID, exchangeerrors.ErrItemNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, itemID, exchangeerrors.ErrForbidden)
}

func (r *MongoRepo) SetItemStatus(seller, itemID string, status model.ItemStatus, acceptedBuyer string) (model.Item, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var doc mongoItemDoc
	err := r.itemsColl.FindOneAndUpdate(ctx,
		bson.M{"_id": itemID, "seller": seller},
		bson.M{"$set": bson.M{"status": string(status), "accepted_buyer": acceptedBuyer}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.Item{}, r.missingOrForbidden(ctx, itemID, "set status for item")
	}
	if err != nil {
		return model.Item{}, err
	}
	return itemDocToModel(doc), nil
}

func (r *MongoRepo) DeleteItem(seller, itemID string) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.itemsColl.DeleteOne(ctx, bson.M{"_id": itemID, "seller": seller})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return r.missingOrForbidden(ctx, itemID, "delete item")
	}
	return nil
}

func (r *MongoRepo) AddCartEntry(entry model.CartEntry) error {
	ctx, cancel := opCtx()
	defer cancel()

	n, err := r.itemsColl.CountDocuments(ctx, bson.M{"_id": entry.ItemID})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("add to cart for item %s: %w", entry.ItemID, exchangeerrors.ErrItemNotFound)
	}

	doc := mongoCartDoc{
		ID:      entry.Buyer + ":" + entry.ItemID,
		Buyer:   entry.Buyer,
		ItemID:  entry.ItemID,
		AddedAt: entry.AddedAt,
	}
	_, err = r.cartColl.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("add to cart for item %s: %w", entry.ItemID, exchangeerrors.ErrDuplicateCartEntry)
	}
	return err
}

func (r *MongoRepo) cartEntries(ctx context.Context, buyer string) ([]mongoCartDoc, error) {
	cur, err := r.cartColl.Find(ctx, bson.M{"buyer": buyer},
		options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []mongoCartDoc
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoRepo) itemsByID(ctx context.Context, ids []string) (map[string]model.Item, error) {
	byID := make(map[string]model.Item, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	cur, err := r.itemsColl.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var doc mongoItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		byID[doc.ID] = itemDocToModel(doc)
	}
	return byID, cur.Err()
}

func (r *MongoRepo) GetCartItems(buyer string) ([]model.Item, error) {
	ctx, cancel := opCtx()
	defer cancel()

	entries, err := r.cartEntries(ctx, buyer)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ItemID)
	}
	byID, err := r.itemsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(entries))
	for _, e := range entries {
		if item, ok := byID[e.ItemID]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *MongoRepo) RemoveCartEntry(buyer, itemID string) error {
	ctx, cancel := opCtx()
	defer cancel()

	_, err := r.cartColl.DeleteOne(ctx, bson.M{"buyer": buyer, "item_id": itemID})
	return err
}

func (r *MongoRepo) ClearCart(buyer string) error {
	ctx, cancel := opCtx()
	defer cancel()

	_, err := r.cartColl.DeleteMany(ctx, bson.M{"buyer": buyer})
	return err
}

// CheckoutCart converts the buyer's cart into pending requests and empties
// the cart. The insert is ordered; if it fails, already-inserted requests
// are removed again so the cart and ledger are left as they were.
func (r *MongoRepo) CheckoutCart(buyer string, build func(item model.Item) model.BuyRequest) ([]model.BuyRequest, error) {
	ctx, cancel := opCtx()
	defer cancel()

	items, err := r.GetCartItems(buyer)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("checkout for buyer %s: %w", buyer, exchangeerrors.ErrEmptyCart)
	}

	reqs := make([]model.BuyRequest, 0, len(items))
	docs := make([]interface{}, 0, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		req := build(item)
		reqs = append(reqs, req)
		docs = append(docs, requestModelToDoc(req))
		ids = append(ids, req.RequestID)
	}

	if _, err := r.requestsColl.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		_, _ = r.requestsColl.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("checkout for buyer %s: %w", buyer, exchangeerrors.ErrDuplicateRequest)
		}
		return nil, err
	}

	if _, err := r.cartColl.DeleteMany(ctx, bson.M{"buyer": buyer}); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *MongoRepo) CreateRequest(req model.BuyRequest) error {
	ctx, cancel := opCtx()
	defer cancel()

	n, err := r.itemsColl.CountDocuments(ctx, bson.M{"_id": req.ItemID})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("submit request for item %s: %w", req.ItemID, exchangeerrors.ErrItemNotFound)
	}

	_, err = r.requestsColl.InsertOne(ctx, requestModelToDoc(req))
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("submit request for item %s: %w", req.ItemID, exchangeerrors.ErrDuplicateRequest)
	}
	return err
}

func (r *MongoRepo) GetRequest(requestID string) (model.BuyRequest, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var doc mongoRequestDoc
	err := r.requestsColl.FindOne(ctx, bson.M{"_id": requestID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.BuyRequest{}, fmt.Errorf("get request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if err != nil {
		return model.BuyRequest{}, err
	}
	return requestDocToModel(doc), nil
}

func (r *MongoRepo) RequestsForSeller(seller string) ([]model.RequestWithItem, error) {
	ctx, cancel := opCtx()
	defer cancel()

	sellerItems, err := r.GetItems(model.ItemFilter{Seller: seller})
	if err != nil {
		return nil, err
	}
	if len(sellerItems) == 0 {
		return []model.RequestWithItem{}, nil
	}
	byID := make(map[string]model.Item, len(sellerItems))
	ids := make([]string, 0, len(sellerItems))
	for _, item := range sellerItems {
		byID[item.ItemID] = item
		ids = append(ids, item.ItemID)
	}

	cur, err := r.requestsColl.Find(ctx,
		bson.M{"item_id": bson.M{"$in": ids}, "cleared_by_seller": false},
		options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return r.joinRows(ctx, cur, byID)
}

func (r *MongoRepo) RequestsForBuyer(buyer string) ([]model.RequestWithItem, error) {
	ctx, cancel := opCtx()
	defer cancel()

	cur, err := r.requestsColl.Find(ctx,
		bson.M{"buyer": buyer, "cleared_by_buyer": false},
		options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []mongoRequestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ItemID)
	}
	byID, err := r.itemsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]model.RequestWithItem, 0, len(docs))
	for _, d := range docs {
		item, ok := byID[d.ItemID]
		if !ok {
			continue
		}
		rows = append(rows, joinRequest(requestDocToModel(d), item))
	}
	return rows, nil
}

func (r *MongoRepo) joinRows(ctx context.Context, cur *mongo.Cursor, byID map[string]model.Item) ([]model.RequestWithItem, error) {
	rows := make([]model.RequestWithItem, 0)
	for cur.Next(ctx) {
		var doc mongoRequestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		item, ok := byID[doc.ItemID]
		if !ok {
			continue
		}
		rows = append(rows, joinRequest(requestDocToModel(doc), item))
	}
	return rows, cur.Err()
}

func (r *MongoRepo) ClearForBuyer(requestID, buyer string) error {
	ctx, cancel := opCtx()
	defer cancel()

	req, err := r.GetRequest(requestID)
	if err != nil {
		return err
	}
	if req.Buyer != buyer {
		return fmt.Errorf("clear request %s: %w", requestID, exchangeerrors.ErrForbidden)
	}
	if !req.Status.Terminal() {
		return fmt.Errorf("clear request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	_, err = r.requestsColl.UpdateOne(ctx, bson.M{"_id": requestID},
		bson.M{"$set": bson.M{"cleared_by_buyer": true}})
	return err
}

func (r *MongoRepo) ClearForSeller(requestID, seller string) error {
	ctx, cancel := opCtx()
	defer cancel()

	req, err := r.GetRequest(requestID)
	if err != nil {
		return err
	}
	item, err := r.GetItem(req.ItemID)
	if err != nil || item.Seller != seller {
		return fmt.Errorf("clear request %s: %w", requestID, exchangeerrors.ErrForbidden)
	}
	if !req.Status.Terminal() {
		return fmt.Errorf("clear request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	_, err = r.requestsColl.UpdateOne(ctx, bson.M{"_id": requestID},
		bson.M{"$set": bson.M{"cleared_by_seller": true}})
	return err
}

// AcceptRequest claims the item with a conditional update before touching
// the ledger, so two concurrent accepts on the same item cannot both win.
func (r *MongoRepo) AcceptRequest(seller, requestID string) (model.AcceptOutcome, error) {
	ctx, cancel := opCtx()
	defer cancel()

	req, err := r.GetRequest(requestID)
	if err != nil {
		return model.AcceptOutcome{}, err
	}
	item, err := r.GetItem(req.ItemID)
	if err != nil || item.Seller != seller {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Status != model.RequestPending {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	// Claim the item first. Losers of a concurrent race fail here.
	var itemDoc mongoItemDoc
	err = r.itemsColl.FindOneAndUpdate(ctx,
		bson.M{"_id": req.ItemID, "status": string(model.ItemAvailable)},
		bson.M{"$set": bson.M{"status": string(model.ItemOnHold), "accepted_buyer": req.Buyer}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&itemDoc)
	if err == mongo.ErrNoDocuments {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s: item %s already taken: %w", requestID, req.ItemID, exchangeerrors.ErrConflict)
	}
	if err != nil {
		return model.AcceptOutcome{}, err
	}

	res, err := r.requestsColl.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": string(model.RequestPending)},
		bson.M{"$set": bson.M{"status": string(model.RequestAccepted)}})
	if err == nil && res.ModifiedCount == 0 {
		err = fmt.Errorf("accept request %s: %w", requestID, exchangeerrors.ErrConflict)
	}
	if err != nil {
		// Release the claim so the item is not stranded on hold.
		_, _ = r.itemsColl.UpdateOne(ctx,
			bson.M{"_id": req.ItemID, "accepted_buyer": req.Buyer},
			bson.M{"$set": bson.M{"status": string(model.ItemAvailable), "accepted_buyer": ""}})
		return model.AcceptOutcome{}, err
	}

	cur, err := r.requestsColl.Find(ctx, bson.M{
		"item_id": req.ItemID,
		"_id":     bson.M{"$ne": requestID},
		"status":  string(model.RequestPending),
	})
	if err != nil {
		return model.AcceptOutcome{}, err
	}
	var siblings []mongoRequestDoc
	if err := cur.All(ctx, &siblings); err != nil {
		return model.AcceptOutcome{}, err
	}
	rejected := make([]string, 0, len(siblings))
	for _, s := range siblings {
		rejected = append(rejected, s.ID)
	}
	if len(rejected) > 0 {
		if _, err := r.requestsColl.UpdateMany(ctx,
			bson.M{"_id": bson.M{"$in": rejected}, "status": string(model.RequestPending)},
			bson.M{"$set": bson.M{"status": string(model.RequestRejected)}}); err != nil {
			return model.AcceptOutcome{}, err
		}
	}

	req.Status = model.RequestAccepted
	return model.AcceptOutcome{
		Accepted:    req,
		RejectedIDs: rejected,
		Item:        itemDocToModel(itemDoc),
	}, nil
}

func (r *MongoRepo) DenyRequest(seller, requestID string, target model.RequestStatus) (model.BuyRequest, error) {
	ctx, cancel := opCtx()
	defer cancel()

	req, err := r.GetRequest(requestID)
	if err != nil {
		return model.BuyRequest{}, err
	}
	item, err := r.GetItem(req.ItemID)
	if err != nil || item.Seller != seller {
		return model.BuyRequest{}, fmt.Errorf("deny request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}

	res, err := r.requestsColl.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": string(model.RequestPending)},
		bson.M{"$set": bson.M{"status": string(target)}})
	if err != nil {
		return model.BuyRequest{}, err
	}
	if res.MatchedCount == 0 {
		return model.BuyRequest{}, fmt.Errorf("deny request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	req.Status = target
	return req, nil
}

func (r *MongoRepo) CancelRequest(buyer, requestID string) (model.BuyRequest, error) {
	ctx, cancel := opCtx()
	defer cancel()

	req, err := r.GetRequest(requestID)
	if err != nil {
		return model.BuyRequest{}, err
	}
	if req.Buyer != buyer {
		return model.BuyRequest{}, fmt.Errorf("cancel request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Status != model.RequestPending && req.Status != model.RequestAccepted {
		return model.BuyRequest{}, fmt.Errorf("cancel request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	res, err := r.requestsColl.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": string(req.Status)},
		bson.M{"$set": bson.M{"status": string(model.RequestCancelled)}})
	if err != nil {
		return model.BuyRequest{}, err
	}
	if res.MatchedCount == 0 {
		return model.BuyRequest{}, fmt.Errorf("cancel request %s: %w", requestID, exchangeerrors.ErrConflict)
	}

	if req.Status == model.RequestAccepted {
		// Release the held item back to the market.
		_, _ = r.itemsColl.UpdateOne(ctx,
			bson.M{"_id": req.ItemID, "accepted_buyer": buyer},
			bson.M{"$set": bson.M{"status": string(model.ItemAvailable), "accepted_buyer": ""}})
	}

	req.Status = model.RequestCancelled
	return req, nil
}
