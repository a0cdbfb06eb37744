package gormdb

import "time"

// Customer maps the customers table. The uuid default lets Postgres assign
// ids on insert; GORM reads them back via RETURNING.
type Customer struct {
	ID       string `gorm:"column:id;primaryKey;default:gen_random_uuid()"`
	Name     string
	Email    string
	ImageURL string    `gorm:"column:image_url"`
	Invoices []Invoice `gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string { return "customers" }

// Invoice maps the invoices table for the customer-statistics read path only.
// All invoice writes go through the raw-SQL repository.
type Invoice struct {
	ID         string `gorm:"column:id;primaryKey"`
	CustomerID string
	Amount     int64
	Status     string
	Date       time.Time
}

func (Invoice) TableName() string { return "invoices" }
