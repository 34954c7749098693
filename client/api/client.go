package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is the typed HTTP client behind every thunk action. Errors it
// returns already carry the human-readable message the reducers store:
// the response body's message field when present, the transport error's
// text otherwise.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
			return errors.New(payload.Message)
		}
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// text is do for the plain-string endpoints (paypal config, upload).
func (c *Client) text(method, path, token string) (string, error) {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}
	return string(data), nil
}

func (c *Client) Login(email, password string) (UserInfo, error) {
	var info UserInfo
	err := c.do(http.MethodPost, "/api/users/login", "",
		map[string]string{"email": email, "password": password}, &info)
	return info, err
}

func (c *Client) Register(name, email, password string) (UserInfo, error) {
	var info UserInfo
	err := c.do(http.MethodPost, "/api/users", "",
		map[string]string{"name": name, "email": email, "password": password}, &info)
	return info, err
}

func (c *Client) GetProfile(token string) (UserInfo, error) {
	var info UserInfo
	err := c.do(http.MethodGet, "/api/users/profile", token, nil, &info)
	return info, err
}

func (c *Client) UpdateProfile(token string, patch ProfilePatch) (UserInfo, error) {
	var info UserInfo
	err := c.do(http.MethodPut, "/api/users/profile", token, patch, &info)
	return info, err
}

func (c *Client) GetUser(token, id string) (UserInfo, error) {
	var info UserInfo
	err := c.do(http.MethodGet, "/api/users/"+id, token, nil, &info)
	return info, err
}

func (c *Client) ListUsers(token string) ([]UserInfo, error) {
	var users []UserInfo
	err := c.do(http.MethodGet, "/api/users", token, nil, &users)
	return users, err
}

func (c *Client) UpdateUser(token, id string, patch AdminUserPatch) (UserInfo, error) {
	var info UserInfo
	err := c.do(http.MethodPut, "/api/users/"+id, token, patch, &info)
	return info, err
}

func (c *Client) DeleteUser(token, id string) error {
	return c.do(http.MethodDelete, "/api/users/"+id, token, nil, nil)
}

func (c *Client) ListProducts(keyword string, page int) (ProductPage, error) {
	query := url.Values{}
	if keyword != "" {
		query.Set("keyword", keyword)
	}
	if page > 1 {
		query.Set("pageNumber", strconv.Itoa(page))
	}
	path := "/api/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result ProductPage
	err := c.do(http.MethodGet, path, "", nil, &result)
	return result, err
}

func (c *Client) TopProducts() ([]Product, error) {
	var products []Product
	err := c.do(http.MethodGet, "/api/products/top", "", nil, &products)
	return products, err
}

func (c *Client) GetProduct(id string) (Product, error) {
	var product Product
	err := c.do(http.MethodGet, "/api/products/"+id, "", nil, &product)
	return product, err
}

func (c *Client) CreateProduct(token string) (Product, error) {
	var product Product
	err := c.do(http.MethodPost, "/api/products", token, nil, &product)
	return product, err
}

func (c *Client) UpdateProduct(token, id string, input ProductInput) (Product, error) {
	var product Product
	err := c.do(http.MethodPut, "/api/products/"+id, token, input, &product)
	return product, err
}

func (c *Client) DeleteProduct(token, id string) error {
	return c.do(http.MethodDelete, "/api/products/"+id, token, nil, nil)
}

func (c *Client) CreateReview(token, id string, rating float64, comment string) error {
	return c.do(http.MethodPost, "/api/products/"+id+"/reviews", token,
		map[string]any{"rating": rating, "comment": comment}, nil)
}

func (c *Client) CreateOrder(token string, input OrderInput) (Order, error) {
	var order Order
	err := c.do(http.MethodPost, "/api/orders", token, input, &order)
	return order, err
}

func (c *Client) GetOrder(token, id string) (OrderDetail, error) {
	var order OrderDetail
	err := c.do(http.MethodGet, "/api/orders/"+id, token, nil, &order)
	return order, err
}

func (c *Client) PayOrder(token, id string, payment PaymentPayload) (Order, error) {
	var order Order
	err := c.do(http.MethodPut, "/api/orders/"+id+"/pay", token, payment, &order)
	return order, err
}

func (c *Client) DeliverOrder(token, id string) (Order, error) {
	var order Order
	err := c.do(http.MethodPut, "/api/orders/"+id+"/deliver", token,
		map[string]string{}, &order)
	return order, err
}

func (c *Client) MyOrders(token string) ([]Order, error) {
	var orders []Order
	err := c.do(http.MethodGet, "/api/orders/myorders", token, nil, &orders)
	return orders, err
}

func (c *Client) ListOrders(token string) ([]Order, error) {
	var orders []Order
	err := c.do(http.MethodGet, "/api/orders", token, nil, &orders)
	return orders, err
}

func (c *Client) PayPalClientID() (string, error) {
	return c.text(http.MethodGet, "/api/config/paypal", "")
}
