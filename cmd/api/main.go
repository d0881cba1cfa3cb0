package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/safar/go-retail-store/internal/config"
	"github.com/safar/go-retail-store/internal/discount"
	"github.com/safar/go-retail-store/internal/models"
	"github.com/safar/go-retail-store/internal/report"
	"github.com/safar/go-retail-store/internal/store"
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	products := store.NewProducts()
	customers := store.NewCustomers()
	orders := store.NewOrders(products)
	reviews := store.NewReviews()
	pricing := discount.Default()
	exporter := report.NewExporter(cfg.Report.Dir)

	if cfg.Seed.DemoCatalog {
		seedDemoCatalog(products)
		logger.Info("seeded demo catalog")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/customers", handleCustomers(customers))
	mux.HandleFunc("/customers/", handleCustomerByID(customers, orders))
	mux.HandleFunc("/products", handleProducts(products))
	mux.HandleFunc("/products/", handleProductByID(products, customers, reviews, pricing))
	mux.HandleFunc("/orders", handleOrders(orders, products, customers))
	mux.HandleFunc("/orders/stats", handleOrderStats(orders))
	mux.HandleFunc("/reports/orders", handleOrderReport(orders, exporter))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// seedDemoCatalog loads the built-in demo products.
func seedDemoCatalog(products *store.Products) {
	products.AddProduct(&models.Product{
		ID: 1, Name: "Leather Jacket", Category: "Jackets",
		Price: decimal.NewFromFloat(89.99), Stock: 10, Sizes: []string{"S", "M", "L"},
	})
	products.AddProduct(&models.Product{
		ID: 2, Name: "Running Shoes", Category: "Shoes",
		Price: decimal.NewFromFloat(59.49), Stock: 15, Sizes: []string{"M", "L"},
	})
	products.AddProduct(&models.Product{
		ID: 3, Name: "Wool Scarf", Category: "Accessories",
		Price: decimal.NewFromFloat(25.00), Stock: 30, Sizes: []string{"one size"},
	})
}

func handleCustomers(customers *store.Customers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				Name               string   `json:"name"`
				Email              string   `json:"email"`
				VIP                bool     `json:"vip"`
				FavoriteCategories []string `json:"favorite_categories"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			customer := models.NewCustomer(req.Name, req.Email)
			customer.VIP = req.VIP
			customer.FavoriteCategories = req.FavoriteCategories
			customers.RegisterCustomer(customer)

			respondJSON(w, http.StatusCreated, customer)

		case http.MethodGet:
			respondJSON(w, http.StatusOK, customers.ListAllCustomers())

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleCustomerByID(customers *store.Customers, orders *store.Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest, err := splitIDPath(r.URL.Path, "/customers/")
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid customer ID")
			return
		}

		switch rest {
		case "":
			customer, err := customers.GetCustomerByID(id)
			if err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, customer)

		case "orders":
			if r.Method != http.MethodGet {
				respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
				return
			}
			respondJSON(w, http.StatusOK, orders.GetOrdersForCustomer(id))

		case "vip":
			if r.Method != http.MethodPut {
				respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
				return
			}
			var req struct {
				VIP bool `json:"vip"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			if err := customers.SetVIP(id, req.VIP); err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			customer, _ := customers.GetCustomerByID(id)
			respondJSON(w, http.StatusOK, customer)

		default:
			respondError(w, http.StatusNotFound, "Not found")
		}
	}
}

func handleProducts(products *store.Products) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				ID       int64    `json:"id"`
				Name     string   `json:"name"`
				Category string   `json:"category"`
				Price    float64  `json:"price"`
				Stock    int      `json:"stock"`
				Sizes    []string `json:"sizes"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			product := &models.Product{
				ID:       req.ID,
				Name:     req.Name,
				Category: req.Category,
				Price:    decimal.NewFromFloat(req.Price),
				Stock:    req.Stock,
				Sizes:    req.Sizes,
			}
			products.AddProduct(product)

			respondJSON(w, http.StatusCreated, product)

		case http.MethodGet:
			respondJSON(w, http.StatusOK, products.ListAllProducts())

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleProductByID(products *store.Products, customers *store.Customers, reviews *store.Reviews, pricing *discount.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, rest, err := splitIDPath(r.URL.Path, "/products/")
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid product ID")
			return
		}

		switch rest {
		case "":
			product, err := products.FindProductByID(id)
			if err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, product)

		case "price":
			product, err := products.FindProductByID(id)
			if err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}

			var customer *models.Customer
			if raw := r.URL.Query().Get("customer_id"); raw != "" {
				customerID, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					respondError(w, http.StatusBadRequest, "Invalid customer ID")
					return
				}
				customer, err = customers.GetCustomerByID(customerID)
				if err != nil {
					respondError(w, http.StatusNotFound, err.Error())
					return
				}
			}

			respondJSON(w, http.StatusOK, map[string]any{
				"product_id":  product.ID,
				"list_price":  product.Price,
				"final_price": pricing.FinalPrice(customer, product),
			})

		case "reviews":
			switch r.Method {
			case http.MethodPost:
				product, err := products.FindProductByID(id)
				if err != nil {
					respondError(w, http.StatusNotFound, err.Error())
					return
				}

				var req struct {
					CustomerID int64  `json:"customer_id"`
					Rating     int    `json:"rating"`
					Comment    string `json:"comment"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					respondError(w, http.StatusBadRequest, "Invalid request body")
					return
				}

				customer, err := customers.GetCustomerByID(req.CustomerID)
				if err != nil {
					respondError(w, http.StatusNotFound, err.Error())
					return
				}

				review := &models.Review{
					Customer: customer,
					Product:  product,
					Rating:   req.Rating,
					Comment:  req.Comment,
				}
				if err := reviews.AddReview(review); err != nil {
					respondError(w, http.StatusBadRequest, err.Error())
					return
				}

				respondJSON(w, http.StatusCreated, review)

			case http.MethodGet:
				respondJSON(w, http.StatusOK, reviews.GetReviewsForProduct(id))

			default:
				respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			}

		default:
			respondError(w, http.StatusNotFound, "Not found")
		}
	}
}

func handleOrders(orders *store.Orders, products *store.Products, customers *store.Customers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req struct {
			CustomerID int64 `json:"customer_id"`
			Items      []struct {
				ProductID int64 `json:"product_id"`
				Quantity  int   `json:"quantity"`
			} `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		customer, err := customers.GetCustomerByID(req.CustomerID)
		if err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}

		var items []models.OrderItem
		for _, item := range req.Items {
			product, err := products.FindProductByID(item.ProductID)
			if err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			items = append(items, models.OrderItem{Product: product, Quantity: item.Quantity})
		}

		order, err := orders.CreateOrder(customer, items)
		if err != nil {
			respondError(w, statusForOrderError(err), err.Error())
			return
		}

		logger.Info("order created",
			zap.Int64("order_id", order.ID),
			zap.Int64("customer_id", customer.ID),
			zap.String("total", order.Total().StringFixed(2)),
		)
		respondJSON(w, http.StatusCreated, order)
	}
}

func handleOrderStats(orders *store.Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		stats := map[string]any{
			"order_count":         orders.OrderCount(),
			"total_revenue":       orders.TotalRevenue(),
			"average_order_value": orders.AverageOrderValue(),
		}
		if highest := orders.HighestValueOrder(); highest != nil {
			stats["highest_value_order"] = highest
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

func handleOrderReport(orders *store.Orders, exporter *report.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		path, err := exporter.ExportOrders(orders.ListAllOrders())
		if err != nil {
			logger.Error("export order report", zap.Error(err))
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"path": path})
	}
}

func statusForOrderError(err error) int {
	switch {
	case errors.Is(err, store.ErrProductNotFound), errors.Is(err, store.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, store.ErrEmptyOrder), errors.Is(err, store.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// splitIDPath parses "/prefix/{id}" and "/prefix/{id}/{rest}" paths.
func splitIDPath(path, prefix string) (int64, string, error) {
	trimmed := strings.TrimPrefix(path, prefix)
	idStr, rest, _ := strings.Cut(trimmed, "/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, "", err
	}
	return id, rest, nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encode JSON response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
