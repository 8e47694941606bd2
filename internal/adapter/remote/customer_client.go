package remote

import (
	"context"
	"fmt"
	"time"

	"billing_service/internal/domain/entities"
	"billing_service/internal/infrastructure/discovery"
	"billing_service/internal/infrastructure/httpclient"
	"billing_service/internal/usecase/interfaces"
)

type customerDTO struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Links halLinks `json:"_links"`
}

// CustomerHTTPClient reads customers from GET {customer-service}/customers/{id}.
type CustomerHTTPClient struct {
	base
}

var _ interfaces.ICustomerDirectory = (*CustomerHTTPClient)(nil)

func NewCustomerHTTPClient(client *httpclient.Client, resolver discovery.Resolver, timeout time.Duration) *CustomerHTTPClient {
	return &CustomerHTTPClient{base: newBase(client, resolver, CustomerServiceName, timeout)}
}

func (c *CustomerHTTPClient) FindCustomerByID(ctx context.Context, id int64) (entities.Customer, error) {
	var dto customerDTO
	found, err := c.get(ctx, "find_customer", fmt.Sprintf("/customers/%d", id), &dto)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	if isEmptyResource(dto.ID, dto.Name, dto.Links) {
		return entities.Customer{}, c.emptyBodyError("find_customer")
	}

	if dto.ID == 0 {
		dto.ID = idFromSelf(dto.Links)
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	return entities.Customer{ID: dto.ID, Name: dto.Name, Email: dto.Email}, nil
}
