package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Id           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

const (
	CategoryMainCourse = "Main Course"
	CategoryBeverage   = "Beverage"
	CategorySideDish   = "Side Dish"
	CategoryDessert    = "Dessert"
)

// KnownCategory reports whether c is one of the menu categories.
func KnownCategory(c string) bool {
	switch c {
	case CategoryMainCourse, CategoryBeverage, CategorySideDish, CategoryDessert:
		return true
	}
	return false
}

// MenuItem price is stored in paise to avoid float money arithmetic.
type MenuItem struct {
	Id       int      `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Price    int64    `json:"price" db:"price"`
	Rating   float64  `json:"rating" db:"rating"`
	Category string   `json:"category" db:"category"`
	Tags     []string `json:"tags" db:"tags"`
	HasImage bool     `json:"has_image" db:"has_image"`
}

type MenuPage struct {
	Items      []MenuItem `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

type CartItem struct {
	FoodId   int    `json:"food_id" db:"food_id"`
	Name     string `json:"name" db:"name"`
	Price    int64  `json:"price" db:"price"`
	Quantity int    `json:"quantity" db:"quantity"`
}

type Cart struct {
	UserId     int        `json:"user_id"`
	Items      []CartItem `json:"items"`
	ItemsTotal int64      `json:"items_total"`
}

// OrderLine snapshots name and unit price at placement time, so later menu
// edits do not rewrite order history.
type OrderLine struct {
	FoodId    int    `json:"food_id" db:"food_id"`
	Name      string `json:"name" db:"name"`
	UnitPrice int64  `json:"unit_price" db:"unit_price"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

type Order struct {
	Id           int         `json:"id" db:"id"`
	CustomerName string      `json:"customer_name" db:"customer_name"`
	Teacher      bool        `json:"teacher" db:"teacher"`
	Lines        []OrderLine `json:"lines"`
	Total        int64       `json:"total" db:"total"`
	PlacedAt     time.Time   `json:"placed_at" db:"placed_at"`
}

type Stats struct {
	TotalOrders int   `json:"total_orders"`
	Revenue     int64 `json:"revenue"`
	MenuItems   int   `json:"menu_items"`
	AvgOrder    int64 `json:"avg_order"`
}

type ItemCount struct {
	FoodId  int    `json:"food_id" db:"food_id"`
	Name    string `json:"name" db:"name"`
	Ordered int    `json:"ordered" db:"ordered"`
}

type Analytics struct {
	TopItems []ItemCount `json:"top_items"`
	Teachers int         `json:"teachers"`
	Students int         `json:"students"`
}
