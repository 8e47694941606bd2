package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"billing_service/internal/infrastructure/discovery"
	"billing_service/internal/infrastructure/httpclient"
	"billing_service/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClients(t *testing.T, h http.HandlerFunc) (*CustomerHTTPClient, *InventoryHTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	resolver := discovery.StaticResolver{
		CustomerServiceName:  srv.URL,
		InventoryServiceName: srv.URL,
	}
	hc := httpclient.NewClient(nil, nil)
	return NewCustomerHTTPClient(hc, resolver, time.Second), NewInventoryHTTPClient(hc, resolver, time.Second), srv
}

func TestCustomerHTTPClient_FindCustomerByID(t *testing.T) {
	customers, _, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/customers/1":
			_, _ = w.Write([]byte(`{"id":1,"name":"Alice","email":"alice@example.com"}`))
		case "/customers/2":
			// Spring Data REST style body without an id field.
			_, _ = w.Write([]byte(`{"name":"Bob","email":"bob@example.com","_links":{"self":{"href":"http://customers/customers/2"}}}`))
		case "/customers/500":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c, err := customers.FindCustomerByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, "Alice", c.Name)
		assert.Equal(t, "alice@example.com", c.Email)
	})

	t.Run("id from self link", func(t *testing.T) {
		c, err := customers.FindCustomerByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), c.ID)
		assert.Equal(t, "Bob", c.Name)
	})

	t.Run("not found is a zero value", func(t *testing.T) {
		c, err := customers.FindCustomerByID(ctx, 404)
		require.NoError(t, err)
		assert.Zero(t, c.ID)
	})

	t.Run("server error is upstream unavailable", func(t *testing.T) {
		_, err := customers.FindCustomerByID(ctx, 500)
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable), "got %v", err)
	})
}

func TestCustomerHTTPClient_Unreachable(t *testing.T) {
	customers, _, srv := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := customers.FindCustomerByID(context.Background(), 1)
	assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable), "got %v", err)
}

func TestCustomerHTTPClient_UnknownService(t *testing.T) {
	c := NewCustomerHTTPClient(httpclient.NewClient(nil, nil), discovery.StaticResolver{}, 0)
	_, err := c.FindCustomerByID(context.Background(), 1)
	assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable))
	assert.True(t, errors.Is(err, discovery.ErrUnknownService))
}

func TestCustomerHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewCustomerHTTPClient(httpclient.NewClient(nil, nil), discovery.StaticResolver{CustomerServiceName: srv.URL}, 50*time.Millisecond)
	_, err := c.FindCustomerByID(context.Background(), 1)
	assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestInventoryHTTPClient_FindProductByID(t *testing.T) {
	_, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/10":
			_, _ = w.Write([]byte(`{"id":10,"name":"Widget","price":5.0}`))
		case "/products/11":
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	p, err := inventory.FindProductByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.ID)
	assert.Equal(t, 5.0, p.Price)

	p, err = inventory.FindProductByID(ctx, 12)
	require.NoError(t, err)
	assert.Zero(t, p.ID)

	_, err = inventory.FindProductByID(ctx, 11)
	assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable))
}

func TestInventoryHTTPClient_ListProducts(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		_, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":10,"name":"Widget","price":5.0},{"id":11,"name":"Gadget","price":12.5}]`))
		})

		products, err := inventory.ListProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(10), products[0].ID)
		assert.Equal(t, 12.5, products[1].Price)
	})

	t.Run("hal pages are followed in order", func(t *testing.T) {
		var srvURL string
		_, inventory, srv := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("page") {
			case "":
				fmt.Fprintf(w, `{"_embedded":{"products":[
					{"name":"Widget","price":5.0,"_links":{"self":{"href":"%[1]s/products/10"}}},
					{"name":"Gadget","price":12.5,"_links":{"self":{"href":"%[1]s/products/11{?projection}"}}}
				]},"_links":{"next":{"href":"%[1]s/products?page=1"}}}`, srvURL)
			case "1":
				_, _ = w.Write([]byte(`{"_embedded":{"products":[{"id":12,"name":"Gizmo","price":1.25}]},"_links":{}}`))
			}
		})
		srvURL = srv.URL

		products, err := inventory.ListProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, []int64{10, 11, 12}, []int64{products[0].ID, products[1].ID, products[2].ID})
	})

	t.Run("empty hal page", func(t *testing.T) {
		_, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"_embedded":{"products":[]}}`))
		})

		products, err := inventory.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("malformed listing", func(t *testing.T) {
		_, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`"nope"`))
		})

		_, err := inventory.ListProducts(context.Background())
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable))
	})

	t.Run("next link back to the same page fails", func(t *testing.T) {
		var srvURL string
		_, inventory, srv := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"_embedded":{"products":[{"id":10,"name":"Widget","price":5.0}]},
				"_links":{"next":{"href":"%s/products"}}}`, srvURL)
		})
		srvURL = srv.URL

		products, err := inventory.ListProducts(context.Background())
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable), "got %v", err)
		assert.Nil(t, products)
	})

	t.Run("listing longer than the page cap fails", func(t *testing.T) {
		var srvURL string
		var pages atomic.Int32
		_, inventory, srv := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			n := pages.Add(1)
			fmt.Fprintf(w, `{"_embedded":{"products":[{"id":%d,"name":"P","price":1.0}]},
				"_links":{"next":{"href":"%s/products?page=%d"}}}`, n, srvURL, n)
		})
		srvURL = srv.URL

		products, err := inventory.ListProducts(context.Background())
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable), "got %v", err)
		assert.Nil(t, products)
		assert.Equal(t, int32(maxListingPages), pages.Load())
	})

	t.Run("product without id or self link", func(t *testing.T) {
		_, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":10,"name":"Widget","price":5.0},{}]`))
		})

		_, err := inventory.ListProducts(context.Background())
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable))
	})

	t.Run("listing 404", func(t *testing.T) {
		_, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := inventory.ListProducts(context.Background())
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable))
	})
}

func TestIDFromSelf(t *testing.T) {
	link := func(href string) halLinks {
		var l halLinks
		l.Self = &struct {
			Href string `json:"href"`
		}{Href: href}
		return l
	}
	assert.Equal(t, int64(7), idFromSelf(link("http://x/products/7")))
	assert.Equal(t, int64(7), idFromSelf(link("http://x/products/7/")))
	assert.Equal(t, int64(7), idFromSelf(link("http://x/products/7{?projection}")))
	assert.Zero(t, idFromSelf(link("http://x/products")))
	assert.Zero(t, idFromSelf(halLinks{}))
}

func TestRemoteClients_EmptyBodyIsUpstreamFailure(t *testing.T) {
	customers, inventory, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/customers/7", "/products/10":
			_, _ = w.Write([]byte(`null`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	})
	ctx := context.Background()

	for _, id := range []int64{7, 8} {
		c, err := customers.FindCustomerByID(ctx, id)
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable), "customer %d: got %v", id, err)
		assert.True(t, errors.Is(err, errEmptyResource))
		assert.Zero(t, c)
	}

	for _, id := range []int64{10, 11} {
		p, err := inventory.FindProductByID(ctx, id)
		assert.True(t, errors.Is(err, interfaces.ErrUpstreamUnavailable), "product %d: got %v", id, err)
		assert.Zero(t, p)
	}
}
