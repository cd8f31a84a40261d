package models

type User struct {
	ID           uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	FullName     string `gorm:"column:full_name"                        json:"full_name"`
	Email        string `json:"email"`
	Username     string `gorm:"unique;not null"                         json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null"           json:"-"`
	IsLoggedIn   bool   `gorm:"column:is_logged_in;default:false"       json:"is_logged_in"`
}

func (User) TableName() string { return "tblusers" }

type Product struct {
	ProductNumber string  `gorm:"column:product_number;primaryKey" json:"product_number"`
	Name          string  `gorm:"not null"                         json:"name"`
	Price         float64 `gorm:"not null;check:price >= 0"        json:"price"`
}

func (Product) TableName() string { return "tblproducts" }

type Customer struct {
	CustomerID string `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	Name       string `gorm:"not null"                      json:"name"`
	Phone      string `gorm:"not null"                      json:"phone"`
}

func (Customer) TableName() string { return "tblcustomers" }

type Order struct {
	OrderNumber uint            `gorm:"column:order_number;primaryKey;autoIncrement"    json:"order_number"`
	Date        string          `gorm:"not null"                                        json:"date"`
	CustomerID  string          `gorm:"column:customer_id;not null"                     json:"customer_id"`
	TotalPrice  float64         `gorm:"column:total_price;not null"                     json:"total_price"`
	Items       []OrderLineItem `gorm:"foreignKey:OrderNumber;references:OrderNumber"   json:"items,omitempty"`
}

func (Order) TableName() string { return "tblorders" }

// OrderLineItem references its product by number only. The column is
// deliberately not a database constraint: deleting a product must leave
// historical orders and their subtotal snapshots queryable.
type OrderLineItem struct {
	OrderNumber   uint    `gorm:"column:order_number;not null;index"   json:"order_number"`
	ProductNumber string  `gorm:"column:product_number;not null"       json:"product_number"`
	Qty           uint    `gorm:"not null;check:qty > 0"               json:"qty"`
	Subtotal      float64 `gorm:"not null;check:subtotal >= 0"         json:"subtotal"`
}

func (OrderLineItem) TableName() string { return "tblorder_products" }
