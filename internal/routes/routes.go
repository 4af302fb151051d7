package routes

import (
	"net/http"

	adminhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/admin"
	authhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/auth"
	carthandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/cart"
	menuhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/menu"
	orderhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/order"
	recommendhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/recommend"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	authservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/auth"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/urlparser"
)

// SessionResolver turns a bearer token into a live session.
type SessionResolver interface {
	SessionByToken(token string) (authservice.Session, bool)
}

type Routes struct {
	sessions         SessionResolver
	authHandler      *authhandler.Handler
	menuHandler      *menuhandler.Handler
	cartHandler      *carthandler.Handler
	orderHandler     *orderhandler.Handler
	adminHandler     *adminhandler.Handler
	recommendHandler *recommendhandler.Handler
}

func New(
	sessions SessionResolver,
	authHandler *authhandler.Handler,
	menuHandler *menuhandler.Handler,
	cartHandler *carthandler.Handler,
	orderHandler *orderhandler.Handler,
	adminHandler *adminhandler.Handler,
	recommendHandler *recommendhandler.Handler,
) *Routes {
	return &Routes{
		sessions:         sessions,
		authHandler:      authHandler,
		menuHandler:      menuHandler,
		cartHandler:      cartHandler,
		orderHandler:     orderHandler,
		adminHandler:     adminHandler,
		recommendHandler: recommendHandler,
	}
}

func (r *Routes) Register(mux *http.ServeMux) {
	mux.HandleFunc("/auth/", r.authParser)
	mux.HandleFunc("/menu", r.menuRoot)
	mux.HandleFunc("/menu/", r.menuParser)
	mux.HandleFunc("/recommendations", r.recommendations)
	mux.HandleFunc("/cart", r.cartRoot)
	mux.HandleFunc("/cart/", r.cartParser)
	mux.HandleFunc("/orders", r.ordersRoot)
	mux.HandleFunc("/orders/", r.ordersParser)
	mux.HandleFunc("/admin/", r.adminParser)
}

func (r *Routes) session(req *http.Request) (authservice.Session, bool) {
	token := authhandler.BearerToken(req)
	if token == "" {
		return authservice.Session{}, false
	}
	return r.sessions.SessionByToken(token)
}

func (r *Routes) requireUser(ww http.ResponseWriter, req *http.Request) (authservice.Session, bool) {
	session, ok := r.session(req)
	if !ok {
		http.Error(ww, "Unauthorized", http.StatusUnauthorized)
		return authservice.Session{}, false
	}
	return session, true
}

func (r *Routes) requireAdmin(ww http.ResponseWriter, req *http.Request) (authservice.Session, bool) {
	session, ok := r.requireUser(ww, req)
	if !ok {
		return authservice.Session{}, false
	}
	if session.Role != models.RoleAdmin {
		http.Error(ww, "Forbidden", http.StatusForbidden)
		return authservice.Session{}, false
	}
	return session, true
}

func (r *Routes) authParser(ww http.ResponseWriter, req *http.Request) {
	params, err := urlparser.Parse(req.URL.Path)
	if err != nil || req.Method != http.MethodPost {
		http.NotFound(ww, req)
		return
	}

	switch params.Id {
	case "signup":
		// POST /auth/signup
		r.authHandler.Signup(ww, req)
	case "login":
		// POST /auth/login
		r.authHandler.Login(ww, req)
	case "logout":
		// POST /auth/logout
		r.authHandler.Logout(ww, req)
	default:
		http.NotFound(ww, req)
	}
}

func (r *Routes) menuRoot(ww http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		// GET /menu
		r.menuHandler.Page(ww, req)
	case http.MethodPost:
		// POST /menu (admin)
		if _, ok := r.requireAdmin(ww, req); !ok {
			return
		}
		r.menuHandler.AddItem(ww, req)
	default:
		http.NotFound(ww, req)
	}
}

func (r *Routes) menuParser(ww http.ResponseWriter, req *http.Request) {
	params, err := urlparser.Parse(req.URL.Path)
	if err != nil {
		http.NotFound(ww, req)
		return
	}

	switch {
	case params.Sub == "" && req.Method == http.MethodGet:
		// GET /menu/{id}
		r.menuHandler.Item(ww, req, params.Id)
	case params.Sub == "" && req.Method == http.MethodDelete:
		// DELETE /menu/{id} (admin)
		if _, ok := r.requireAdmin(ww, req); !ok {
			return
		}
		r.menuHandler.DeleteItem(ww, req, params.Id)
	case params.Sub == "image" && req.Method == http.MethodGet:
		// GET /menu/{id}/image
		r.menuHandler.Image(ww, req, params.Id)
	case params.Sub == "image" && req.Method == http.MethodPost:
		// POST /menu/{id}/image (admin)
		if _, ok := r.requireAdmin(ww, req); !ok {
			return
		}
		r.menuHandler.UploadImage(ww, req, params.Id)
	default:
		http.NotFound(ww, req)
	}
}

func (r *Routes) recommendations(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.NotFound(ww, req)
		return
	}
	r.recommendHandler.Recommendations(ww, req)
}

func (r *Routes) cartRoot(ww http.ResponseWriter, req *http.Request) {
	session, ok := r.requireUser(ww, req)
	if !ok {
		return
	}

	switch req.Method {
	case http.MethodGet:
		// GET /cart
		r.cartHandler.ViewCart(ww, req, session.UserId)
	case http.MethodDelete:
		// DELETE /cart
		r.cartHandler.ClearCart(ww, req, session.UserId)
	default:
		http.NotFound(ww, req)
	}
}

func (r *Routes) cartParser(ww http.ResponseWriter, req *http.Request) {
	params, err := urlparser.Parse(req.URL.Path)
	if err != nil || params.Id != "items" {
		http.NotFound(ww, req)
		return
	}

	session, ok := r.requireUser(ww, req)
	if !ok {
		return
	}

	switch {
	case params.Sub == "" && req.Method == http.MethodPost:
		// POST /cart/items
		r.cartHandler.AddToCart(ww, req, session.UserId)
	case params.Sub != "" && req.Method == http.MethodDelete:
		// DELETE /cart/items/{foodId}
		r.cartHandler.RemoveFromCart(ww, req, session.UserId, params.Sub)
	default:
		http.NotFound(ww, req)
	}
}

func (r *Routes) ordersRoot(ww http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		// POST /orders
		session, ok := r.requireUser(ww, req)
		if !ok {
			return
		}
		r.orderHandler.PlaceOrder(ww, req, session.UserId)
	case http.MethodGet:
		// GET /orders (admin)
		if _, ok := r.requireAdmin(ww, req); !ok {
			return
		}
		r.orderHandler.ListOrders(ww, req)
	default:
		http.NotFound(ww, req)
	}
}

func (r *Routes) ordersParser(ww http.ResponseWriter, req *http.Request) {
	params, err := urlparser.Parse(req.URL.Path)
	if err != nil || params.Id == "" || params.Sub != "" || req.Method != http.MethodDelete {
		http.NotFound(ww, req)
		return
	}

	// DELETE /orders/{id} (admin)
	if _, ok := r.requireAdmin(ww, req); !ok {
		return
	}
	r.orderHandler.DeleteOrder(ww, req, params.Id)
}

func (r *Routes) adminParser(ww http.ResponseWriter, req *http.Request) {
	params, err := urlparser.Parse(req.URL.Path)
	if err != nil || req.Method != http.MethodGet {
		http.NotFound(ww, req)
		return
	}

	if _, ok := r.requireAdmin(ww, req); !ok {
		return
	}

	switch {
	case params.Id == "stats" && params.Sub == "":
		// GET /admin/stats
		r.adminHandler.Stats(ww, req)
	case params.Id == "analytics" && params.Sub == "":
		// GET /admin/analytics
		r.adminHandler.Analytics(ww, req)
	case params.Id == "orders" && params.Sub == "export":
		// GET /admin/orders/export
		r.adminHandler.ExportOrders(ww, req)
	default:
		http.NotFound(ww, req)
	}
}
