package services

import (
	"errors"

	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/model/request"
)

// ErrNoMatch is returned when no dispatchable combination of posting,
// request and driver exists. This occurs when there are no open postings,
// no unfulfilled food requests or no free drivers.
var ErrNoMatch = errors.New("no dispatchable match found")

// Match is a dispatchable combination: an open posting to pick up, the food
// request it should serve and the free driver to carry it.
type Match struct {
	Posting posting.Posting
	Request request.FoodRequest
	Driver  driver.Profile
}

// Dispatcher is a domain service that pairs open surplus postings with
// unfulfilled food requests and free drivers.
//
// Business rules:
//   - Only Open postings, unfulfilled requests and free drivers take part
//   - The oldest open posting is dispatched first
//   - Among unfulfilled requests, one the posting can fully cover is
//     preferred; otherwise the oldest request wins
//   - The first free driver is chosen
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch selects a Match from the given candidates. The posting slice
// may contain postings in any state and the request slice fulfilled
// requests; both are filtered here. The drivers slice must contain only
// free drivers, the caller knows the assignments.
//
// Returns ErrNoMatch when any of the three sides has no candidate.
func (d Dispatcher) Dispatch(
	postings []posting.Posting,
	requests []request.FoodRequest,
	freeDrivers []driver.Profile,
) (Match, error) {
	if len(freeDrivers) == 0 {
		return Match{}, ErrNoMatch
	}

	chosenPosting, ok := d.firstOpenPosting(postings)
	if !ok {
		return Match{}, ErrNoMatch
	}

	chosenRequest, ok := d.bestRequest(chosenPosting, requests)
	if !ok {
		return Match{}, ErrNoMatch
	}

	return Match{
		Posting: chosenPosting,
		Request: chosenRequest,
		Driver:  freeDrivers[0],
	}, nil
}

func (d Dispatcher) firstOpenPosting(postings []posting.Posting) (posting.Posting, bool) {
	for _, p := range postings {
		if p.Status() == posting.Open {
			return p, true
		}
	}
	return posting.Posting{}, false
}

func (d Dispatcher) bestRequest(p posting.Posting, requests []request.FoodRequest) (request.FoodRequest, bool) {
	var (
		fallback request.FoodRequest
		found    bool
	)

	for _, r := range requests {
		if r.Fulfilled() {
			continue
		}
		if r.QuantityKg() <= p.QuantityKg() {
			return r, true
		}
		if !found {
			fallback = r
			found = true
		}
	}

	return fallback, found
}
