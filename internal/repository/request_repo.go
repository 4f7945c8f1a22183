package repository

import (
	"luxdrive/internal/db"
	"luxdrive/internal/store"
)

// RequestRepository persists "rent out your own vehicle" submissions.
type RequestRepository struct {
	Store *store.Store
}

func NewRequestRepository(s *store.Store) *RequestRepository {
	return &RequestRepository{Store: s}
}

// ListRequests returns all stored requests, oldest first. Malformed content
// reads back as an empty list.
func (r *RequestRepository) ListRequests() []db.RentalRequest {
	var requests []db.RentalRequest
	r.Store.Read(store.KeyRequests, &requests)
	return requests
}

// GetRequest returns the request with the given ID, or nil.
func (r *RequestRepository) GetRequest(id string) *db.RentalRequest {
	for _, req := range r.ListRequests() {
		if req.ID == id {
			out := req
			return &out
		}
	}
	return nil
}

// AppendRequest stores a new submission.
func (r *RequestRepository) AppendRequest(req db.RentalRequest) error {
	var requests []db.RentalRequest
	return r.Store.Update(store.KeyRequests, &requests, func() (interface{}, error) {
		return append(requests, req), nil
	})
}

// UpdateRequest replaces the stored request carrying the same ID. It reports
// whether a matching record existed.
func (r *RequestRepository) UpdateRequest(req db.RentalRequest) (bool, error) {
	var requests []db.RentalRequest
	found := false
	err := r.Store.Update(store.KeyRequests, &requests, func() (interface{}, error) {
		for i := range requests {
			if requests[i].ID == req.ID {
				requests[i] = req
				found = true
				break
			}
		}
		return requests, nil
	})
	return found, err
}

// DeleteRequest removes a request at any status. It reports whether a
// matching record existed.
func (r *RequestRepository) DeleteRequest(id string) (bool, error) {
	var requests []db.RentalRequest
	found := false
	err := r.Store.Update(store.KeyRequests, &requests, func() (interface{}, error) {
		out := requests[:0]
		for _, req := range requests {
			if req.ID == id {
				found = true
				continue
			}
			out = append(out, req)
		}
		return out, nil
	})
	return found, err
}
