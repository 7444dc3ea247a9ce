package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurant_Address(t *testing.T) {
	t.Run("full address wins", func(t *testing.T) {
		r := &Restaurant{
			FullAddress:  "123 Main St, Wylie, TX 75098",
			AddressLine1: "ignored",
		}
		assert.Equal(t, "123 Main St, Wylie, TX 75098", r.Address())
	})

	t.Run("assembled from components", func(t *testing.T) {
		r := &Restaurant{
			AddressLine1: "123 Main St",
			AddressLine2: "Suite 4",
			City:         "Wylie",
			State:        "TX",
			PostalCode:   "75098",
		}
		assert.Equal(t, "123 Main St, Suite 4, Wylie, TX, 75098", r.Address())
	})

	t.Run("skips empty components", func(t *testing.T) {
		r := &Restaurant{AddressLine1: "123 Main St", City: "Wylie"}
		assert.Equal(t, "123 Main St, Wylie", r.Address())
	})

	t.Run("all empty", func(t *testing.T) {
		assert.Equal(t, "", (&Restaurant{}).Address())
	})
}

func TestClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restaurants/rest-42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "Joe's Diner", "full_address": "123 Main St", "phone": "(214) 555-0100"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	restaurant, err := client.Lookup(context.Background(), "rest-42")
	require.NoError(t, err)

	assert.Equal(t, "rest-42", restaurant.ID)
	assert.Equal(t, "Joe's Diner", restaurant.Name)
	assert.Equal(t, "123 Main St", restaurant.Address())
	assert.Equal(t, "(214) 555-0100", restaurant.Phone)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	restaurant, err := client.Lookup(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, restaurant)
}
