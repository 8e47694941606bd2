package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"billing_service/internal/domain/entities"
	"billing_service/internal/infrastructure/discovery"
	"billing_service/internal/infrastructure/httpclient"
	"billing_service/internal/usecase/interfaces"
)

// maxListingPages caps how many HAL pages ListProducts follows.
const maxListingPages = 100

type productDTO struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Links halLinks `json:"_links"`
}

func (p productDTO) toEntity() entities.Product {
	id := p.ID
	if id == 0 {
		id = idFromSelf(p.Links)
	}
	return entities.Product{ID: id, Name: p.Name, Price: p.Price}
}

type productPage struct {
	Embedded struct {
		Products []productDTO `json:"products"`
	} `json:"_embedded"`
	Links halLinks `json:"_links"`
}

// InventoryHTTPClient reads products from the inventory service.
type InventoryHTTPClient struct {
	base
}

var _ interfaces.IProductCatalog = (*InventoryHTTPClient)(nil)

func NewInventoryHTTPClient(client *httpclient.Client, resolver discovery.Resolver, timeout time.Duration) *InventoryHTTPClient {
	return &InventoryHTTPClient{base: newBase(client, resolver, InventoryServiceName, timeout)}
}

func (c *InventoryHTTPClient) FindProductByID(ctx context.Context, id int64) (entities.Product, error) {
	var dto productDTO
	found, err := c.get(ctx, "find_product", fmt.Sprintf("/products/%d", id), &dto)
	if err != nil || !found {
		return entities.Product{}, err
	}
	if isEmptyResource(dto.ID, dto.Name, dto.Links) {
		return entities.Product{}, c.emptyBodyError("find_product")
	}

	p := dto.toEntity()
	if p.ID == 0 {
		p.ID = id
	}
	return p, nil
}

// ListProducts accepts a plain JSON array or a Spring Data REST HAL page,
// following _links.next until the listing is exhausted. Order is preserved.
//
// A next link that was already visited, or a listing longer than
// maxListingPages, fails the whole call: a truncated or repeated listing
// would compose the wrong set of line items.
func (c *InventoryHTTPClient) ListProducts(ctx context.Context) ([]entities.Product, error) {
	baseURL, err := c.resolve(ctx)
	if err != nil {
		return nil, err
	}

	products := []entities.Product{}
	visited := make(map[string]struct{})
	for next := baseURL + "/products"; next != ""; {
		if _, seen := visited[next]; seen {
			return nil, fmt.Errorf("%w: %s list_products: next link %s repeats", interfaces.ErrUpstreamUnavailable, c.service, next)
		}
		if len(visited) >= maxListingPages {
			return nil, fmt.Errorf("%w: %s list_products: listing exceeds %d pages", interfaces.ErrUpstreamUnavailable, c.service, maxListingPages)
		}
		visited[next] = struct{}{}

		var raw json.RawMessage
		if err := c.getPage(ctx, next, &raw); err != nil {
			return nil, err
		}
		items, nextHref, err := decodeListing(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s list_products: %w", interfaces.ErrUpstreamUnavailable, c.service, err)
		}
		for _, dto := range items {
			p := dto.toEntity()
			if p.ID == 0 {
				return nil, fmt.Errorf("%w: %s list_products: product without id", interfaces.ErrUpstreamUnavailable, c.service)
			}
			products = append(products, p)
		}
		next = nextHref
	}
	return products, nil
}

func (c *InventoryHTTPClient) getPage(ctx context.Context, rawURL string, out *json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	found, err := c.getURL(ctx, "list_products", rawURL, out)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s list_products: page %s returned 404", interfaces.ErrUpstreamUnavailable, c.service, rawURL)
	}
	return nil
}

func decodeListing(raw json.RawMessage) ([]productDTO, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []productDTO
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, "", err
		}
		return items, "", nil
	}

	var page productPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, "", err
	}
	next := ""
	if page.Links.Next != nil {
		next = page.Links.Next.Href
	}
	return page.Embedded.Products, next, nil
}
