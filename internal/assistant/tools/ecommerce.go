package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
)

const lowStockThreshold = 10

var orderStatusEmoji = map[string]string{
	"pending":    "⏳",
	"processing": "📦",
	"shipped":    "🚚",
	"delivered":  "✅",
}

// NewEcommerceTools returns the tools of the shopping assistant.
func NewEcommerceTools(catalog Catalog) []domain.Tool {
	return []domain.Tool{
		NewProductSearchTool(catalog),
		NewOrderStatusTool(catalog),
		NewProductDetailsTool(catalog),
	}
}

// ProductSearchTool searches the catalog by name and category.
type ProductSearchTool struct {
	catalog Catalog
}

// NewProductSearchTool creates a new ProductSearchTool.
func NewProductSearchTool(catalog Catalog) ProductSearchTool {
	return ProductSearchTool{catalog: catalog}
}

// Spec returns the tool spec of ProductSearchTool.
func (t ProductSearchTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "search_products",
		Summary: "Search for products in the MegaStore catalog.",
		Params: []domain.ToolParam{
			{
				Name:        "query",
				Kind:        domain.ToolParamKind_String,
				Description: "Search term to find products by name (optional)",
				Default:     "",
			},
			{
				Name:        "category",
				Kind:        domain.ToolParamKind_String,
				Description: "Filter by category - electronics, sports, or home (optional)",
				Default:     "",
			},
		},
	}
}

type productSearchArgs struct {
	Query    string `mapstructure:"query"`
	Category string `mapstructure:"category"`
}

// Call filters the catalog by category and then by a case-insensitive name match.
func (t ProductSearchTool) Call(_ context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in productSearchArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}

	results := make([]Product, 0, len(t.catalog.Products))
	category := strings.ToLower(strings.TrimSpace(in.Category))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, p := range t.catalog.Products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		results = append(results, p)
	}

	var tip any
	if in.Category == "" && len(results) > 5 {
		tip = "Use category filter for better results!"
	}

	return domain.ToolResult{
		"success":              true,
		"query":                orDefault(in.Query, "all products"),
		"category_filter":      orDefault(in.Category, "all categories"),
		"total_found":          len(results),
		"products":             results,
		"available_categories": t.catalog.Categories(),
		"tip":                  tip,
	}, nil
}

// OrderStatusTool looks up customer orders.
type OrderStatusTool struct {
	catalog Catalog
}

// NewOrderStatusTool creates a new OrderStatusTool.
func NewOrderStatusTool(catalog Catalog) OrderStatusTool {
	return OrderStatusTool{catalog: catalog}
}

// Spec returns the tool spec of OrderStatusTool.
func (t OrderStatusTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "check_order_status",
		Summary: "Check the current status of a customer order.",
		Params: []domain.ToolParam{
			{
				Name:        "order_id",
				Kind:        domain.ToolParamKind_String,
				Description: "The order ID to look up (e.g., ORD-1001)",
			},
		},
	}
}

type orderStatusArgs struct {
	OrderID string `mapstructure:"order_id"`
}

// Call normalizes the order id to the ORD-<n> format and returns the order status.
func (t OrderStatusTool) Call(_ context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in orderStatusArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}

	orderID := normalizeOrderID(in.OrderID)
	order, found := t.catalog.Order(orderID)
	if !found {
		return domain.ToolResult{
			"success":       false,
			"error":         fmt.Sprintf("Order '%s' not found", orderID),
			"suggestion":    "Please verify your order ID. Valid formats: ORD-1001 or just 1001",
			"sample_orders": t.catalog.OrderIDs(),
		}, nil
	}

	emoji, ok := orderStatusEmoji[order.Status]
	if !ok {
		emoji = "📋"
	}

	var tracking any
	if order.Tracking != nil {
		tracking = *order.Tracking
	}

	return domain.ToolResult{
		"success":            true,
		"order_id":           orderID,
		"status":             fmt.Sprintf("%s %s", emoji, common.TitleCase(order.Status)),
		"items":              order.Items,
		"order_total":        fmt.Sprintf("$%.2f", order.Total),
		"estimated_delivery": order.ETA,
		"tracking_number":    tracking,
		"tracking_available": order.Tracking != nil,
	}, nil
}

func normalizeOrderID(id string) string {
	id = strings.ToUpper(strings.TrimSpace(id))
	if !strings.HasPrefix(id, "ORD-") {
		id = "ORD-" + id
	}
	return id
}

// ProductDetailsTool returns the details, shipping and policies of a product.
type ProductDetailsTool struct {
	catalog Catalog
}

// NewProductDetailsTool creates a new ProductDetailsTool.
func NewProductDetailsTool(catalog Catalog) ProductDetailsTool {
	return ProductDetailsTool{catalog: catalog}
}

// Spec returns the tool spec of ProductDetailsTool.
func (t ProductDetailsTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "get_product_details",
		Summary: "Get detailed information about a specific product.",
		Params: []domain.ToolParam{
			{
				Name:        "product_id",
				Kind:        domain.ToolParamKind_Integer,
				Description: "The numeric product ID (1-10)",
			},
		},
	}
}

type productDetailsArgs struct {
	ProductID int `mapstructure:"product_id"`
}

// Call returns the product details or a not-found result.
func (t ProductDetailsTool) Call(_ context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in productDetailsArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}

	p, found := t.catalog.Product(in.ProductID)
	if !found {
		return domain.ToolResult{
			"success":       false,
			"error":         fmt.Sprintf("Product ID %d not found", in.ProductID),
			"suggestion":    "Product IDs range from 1 to 10. Try searching for products first!",
			"available_ids": t.catalog.ProductIDs(),
		}, nil
	}

	return domain.ToolResult{
		"success": true,
		"product": map[string]any{
			"id":              p.ID,
			"name":            p.Name,
			"price":           fmt.Sprintf("$%.2f", p.Price),
			"category":        common.TitleCase(p.Category),
			"rating":          fmt.Sprintf("⭐ %s/5.0", formatRating(p.Rating)),
			"reviews_count":   p.Stock * 3,
			"availability":    stockStatus(p.Stock),
			"units_available": p.Stock,
		},
		"shipping": map[string]any{
			"free_shipping":      p.Price >= 50,
			"estimated_delivery": "3-5 business days",
			"express_available":  true,
		},
		"policies": map[string]any{
			"returns":  "30-day free returns",
			"warranty": "1 year manufacturer warranty",
		},
	}, nil
}

func stockStatus(stock int) string {
	switch {
	case stock <= 0:
		return "Out of Stock"
	case stock < lowStockThreshold:
		return fmt.Sprintf("Low Stock - Only %d left!", stock)
	default:
		return "In Stock"
	}
}

// formatRating renders ratings the way they are stored, e.g. 4.7 or 5.0.
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
