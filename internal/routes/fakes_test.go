package routes_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/internal/repository"
	"elystate/model"
)

// In-memory stand-ins for the Mongo-backed repositories. They mimic the
// result documents the driver produces so handler responses keep their
// shape.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (r *fakeUserRepo) FindAll(context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, user model.User) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.Email]; ok {
		user.ID = existing.ID
		r.users[user.Email] = user
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	user.ID = bson.NewObjectID()
	r.users[user.Email] = user
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: user.ID}, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	u.Role = role
	r.users[email] = u
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

type fakePropertyRepo struct {
	mu    sync.Mutex
	props map[bson.ObjectID]model.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{props: make(map[bson.ObjectID]model.Property)}
}

func (r *fakePropertyRepo) Insert(_ context.Context, p model.Property) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = bson.NewObjectID()
	r.props[p.ID] = p
	return &mongo.InsertOneResult{InsertedID: p.ID, Acknowledged: true}, nil
}

func (r *fakePropertyRepo) FindAll(context.Context) ([]model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Property, 0, len(r.props))
	for _, p := range r.props {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePropertyRepo) FindByAgent(_ context.Context, agentEmail string) ([]model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Property
	for _, p := range r.props {
		if p.AgentEmail == agentEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) FindByID(_ context.Context, id bson.ObjectID) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.props[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePropertyRepo) Replace(_ context.Context, id bson.ObjectID, in model.Property) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.props[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	p.Title = in.Title
	p.Location = in.Location
	p.Image = in.Image
	p.Description = in.Description
	p.Price = in.Price
	r.props[id] = p
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakePropertyRepo) SetVerification(_ context.Context, id bson.ObjectID, verification string) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.props[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	p.Verification = verification
	r.props[id] = p
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakePropertyRepo) DeleteByID(_ context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.props[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.props, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakePropertyRepo) DeleteByAgent(_ context.Context, agentEmail string) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, p := range r.props {
		if p.AgentEmail == agentEmail {
			delete(r.props, id)
			n++
		}
	}
	return &mongo.DeleteResult{DeletedCount: n}, nil
}

type fakeWishlistRepo struct {
	mu      sync.Mutex
	entries map[bson.ObjectID]model.WishlistEntry
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[bson.ObjectID]model.WishlistEntry)}
}

func (r *fakeWishlistRepo) Exists(_ context.Context, propertyID, userEmail string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pairExists(propertyID, userEmail), nil
}

func (r *fakeWishlistRepo) pairExists(propertyID, userEmail string) bool {
	for _, e := range r.entries {
		if e.PropertyID == propertyID && e.UserEmail == userEmail {
			return true
		}
	}
	return false
}

func (r *fakeWishlistRepo) Insert(_ context.Context, entry model.WishlistEntry) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pairExists(entry.PropertyID, entry.UserEmail) {
		return nil, repository.ErrDuplicate
	}
	entry.ID = bson.NewObjectID()
	r.entries[entry.ID] = entry
	return &mongo.InsertOneResult{InsertedID: entry.ID, Acknowledged: true}, nil
}

func (r *fakeWishlistRepo) FindAll(context.Context) ([]model.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.WishlistEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeWishlistRepo) FindByUser(_ context.Context, userEmail string) ([]model.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.WishlistEntry{}
	for _, e := range r.entries {
		if e.UserEmail == userEmail {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) FindByID(_ context.Context, id bson.ObjectID) (*model.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeWishlistRepo) DeleteByID(_ context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.entries, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	offers map[bson.ObjectID]model.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[bson.ObjectID]model.Offer)}
}

func (r *fakeOfferRepo) Insert(_ context.Context, offer model.Offer) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offer.ID = bson.NewObjectID()
	r.offers[offer.ID] = offer
	return &mongo.InsertOneResult{InsertedID: offer.ID, Acknowledged: true}, nil
}

func (r *fakeOfferRepo) FindByBuyer(_ context.Context, buyerEmail string) ([]model.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Offer{}
	for _, o := range r.offers {
		if o.BuyerEmail == buyerEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) FindByAgent(_ context.Context, agentEmail string) ([]model.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Offer{}
	for _, o := range r.offers {
		if o.AgentEmail == agentEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) FindByID(_ context.Context, id bson.ObjectID) (*model.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.offers[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r *fakeOfferRepo) SetStatus(_ context.Context, id bson.ObjectID, status string) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	o.Status = status
	r.offers[id] = o
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}
