package urlparser

import (
	"errors"
	"strconv"
	"strings"
)

type ProductParams struct {
	ProductId int
}

// ParseProductPath handles /products/{productId}.
func ParseProductPath(path string) (ProductParams, error) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")

	params := ProductParams{}

	if len(parts) != 2 || parts[0] != "products" {
		return params, errors.New("invalid path, expected /products/{productId}")
	}
	productId, err := strconv.Atoi(parts[1])
	if err != nil {
		return params, errors.New("invalid productId, must be int")
	}
	params.ProductId = productId
	return params, nil
}

type OrderParams struct {
	Number   string
	IsStatus bool
}

// ParseOrderPath handles /orders/{number} and /orders/{number}/status.
// A number without the leading "#" is accepted and normalized, so
// clients do not have to percent-encode it.
func ParseOrderPath(path string) (OrderParams, error) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")

	params := OrderParams{}

	switch len(parts) {
	case 2:
		if parts[0] != "orders" {
			return params, errors.New("invalid path, expected /orders/{number}")
		}
		params.Number = normalizeNumber(parts[1])
		return params, nil
	case 3:
		if parts[0] != "orders" || parts[2] != "status" {
			return params, errors.New("invalid path, expected /orders/{number}/status")
		}
		params.Number = normalizeNumber(parts[1])
		params.IsStatus = true
		return params, nil
	default:
		return params, errors.New("wrong url format")
	}
}

type CartItemParams struct {
	ProductId int
}

// ParseCartItemPath handles /pos/cart/items/{productId}.
func ParseCartItemPath(path string) (CartItemParams, error) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")

	params := CartItemParams{}

	if len(parts) != 4 || parts[0] != "pos" || parts[1] != "cart" || parts[2] != "items" {
		return params, errors.New("invalid path, expected /pos/cart/items/{productId}")
	}
	productId, err := strconv.Atoi(parts[3])
	if err != nil {
		return params, errors.New("invalid productId, must be int")
	}
	params.ProductId = productId
	return params, nil
}

func normalizeNumber(number string) string {
	if !strings.HasPrefix(number, "#") {
		return "#" + number
	}
	return number
}
