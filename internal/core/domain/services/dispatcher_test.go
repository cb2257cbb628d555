package services_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosting(t *testing.T, id kernel.ID, quantityKg int) posting.Posting {
	t.Helper()
	p, err := posting.NewPosting(kernel.ID(1), posting.Grains, quantityKg, time.Now().Add(24*time.Hour), "boxed")
	require.NoError(t, err)
	return p.WithID(id)
}

func makeAssignedPosting(t *testing.T, id kernel.ID) posting.Posting {
	t.Helper()
	p, err := makePosting(t, id, 10).Assign()
	require.NoError(t, err)
	return p
}

func makeRequest(t *testing.T, id kernel.ID, quantityKg int) request.FoodRequest {
	t.Helper()
	r, err := request.NewFoodRequest(kernel.ID(2), "staples", quantityKg)
	require.NoError(t, err)
	return r.WithID(id)
}

func makeDriver(t *testing.T, id kernel.ID) driver.Profile {
	t.Helper()
	d, err := driver.NewProfile("Bo", "5550001111", "bo@x.com", "2 Rd", time.Now())
	require.NoError(t, err)
	return d.WithID(id)
}

func TestDispatch(t *testing.T) {
	dispatcher := services.NewDispatcher()

	t.Run("matches_oldest_open_posting", func(t *testing.T) {
		postings := []posting.Posting{
			makeAssignedPosting(t, kernel.ID(10)),
			makePosting(t, kernel.ID(11), 10),
			makePosting(t, kernel.ID(12), 10),
		}
		requests := []request.FoodRequest{makeRequest(t, kernel.ID(20), 5)}
		drivers := []driver.Profile{makeDriver(t, kernel.ID(30))}

		match, err := dispatcher.Dispatch(postings, requests, drivers)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(11), match.Posting.ID())
		assert.Equal(t, kernel.ID(20), match.Request.ID())
		assert.Equal(t, kernel.ID(30), match.Driver.ID())
	})

	t.Run("prefers_request_the_posting_can_cover", func(t *testing.T) {
		postings := []posting.Posting{makePosting(t, kernel.ID(10), 8)}
		requests := []request.FoodRequest{
			makeRequest(t, kernel.ID(20), 50),
			makeRequest(t, kernel.ID(21), 6),
		}
		drivers := []driver.Profile{makeDriver(t, kernel.ID(30))}

		match, err := dispatcher.Dispatch(postings, requests, drivers)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(21), match.Request.ID())
	})

	t.Run("falls_back_to_oldest_uncoverable_request", func(t *testing.T) {
		postings := []posting.Posting{makePosting(t, kernel.ID(10), 8)}
		requests := []request.FoodRequest{
			makeRequest(t, kernel.ID(20), 50),
			makeRequest(t, kernel.ID(21), 40),
		}
		drivers := []driver.Profile{makeDriver(t, kernel.ID(30))}

		match, err := dispatcher.Dispatch(postings, requests, drivers)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(20), match.Request.ID())
	})

	t.Run("skips_fulfilled_requests", func(t *testing.T) {
		postings := []posting.Posting{makePosting(t, kernel.ID(10), 8)}
		requests := []request.FoodRequest{makeRequest(t, kernel.ID(20), 5).MarkFulfilled()}
		drivers := []driver.Profile{makeDriver(t, kernel.ID(30))}

		_, err := dispatcher.Dispatch(postings, requests, drivers)
		require.ErrorIs(t, err, services.ErrNoMatch)
	})

	t.Run("no_match_without_candidates", func(t *testing.T) {
		postings := []posting.Posting{makePosting(t, kernel.ID(10), 8)}
		requests := []request.FoodRequest{makeRequest(t, kernel.ID(20), 5)}
		drivers := []driver.Profile{makeDriver(t, kernel.ID(30))}

		_, err := dispatcher.Dispatch(nil, requests, drivers)
		require.ErrorIs(t, err, services.ErrNoMatch)

		_, err = dispatcher.Dispatch(postings, nil, drivers)
		require.ErrorIs(t, err, services.ErrNoMatch)

		_, err = dispatcher.Dispatch(postings, requests, nil)
		require.ErrorIs(t, err, services.ErrNoMatch)
	})
}
