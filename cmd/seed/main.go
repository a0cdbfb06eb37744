package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/finboard/dashboard/config"
	"github.com/finboard/dashboard/pkg/helpers"
)

type customerSeed struct {
	name     string
	email    string
	imageURL string
}

type invoiceSeed struct {
	customerIdx int
	amount      int64 // cents
	status      string
	date        string
}

var customers = []customerSeed{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []invoiceSeed{
	{0, 15795, "pending", "2022-12-06"},
	{1, 20348, "pending", "2022-11-14"},
	{4, 3040, "paid", "2022-10-29"},
	{3, 44800, "paid", "2023-09-10"},
	{5, 34577, "pending", "2023-08-05"},
	{2, 54246, "pending", "2023-07-16"},
	{0, 666, "pending", "2023-06-27"},
	{3, 32545, "paid", "2023-06-09"},
	{4, 1250, "paid", "2023-06-17"},
	{5, 8546, "paid", "2023-06-07"},
	{1, 500, "paid", "2023-08-19"},
	{5, 8945, "paid", "2023-06-03"},
	{2, 1000, "paid", "2022-06-05"},
}

var revenue = map[string]int64{
	"Jan": 2000, "Feb": 1800, "Mar": 2200, "Apr": 2500,
	"May": 2300, "Jun": 3200, "Jul": 3500, "Aug": 3700,
	"Sep": 2500, "Oct": 2800, "Nov": 3000, "Dec": 4800,
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "user@nextmail.com"
	password := "123456"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "User", email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	customerIDs := make([]string, len(customers))
	for i, c := range customers {
		err := db.QueryRow(`
			INSERT INTO customers (name, email, image_url)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, image_url = EXCLUDED.image_url
			RETURNING id
		`, c.name, c.email, c.imageURL).Scan(&customerIDs[i])
		if err != nil {
			log.Fatalf("failed to seed customer %q: %v", c.name, err)
		}
	}
	fmt.Printf("seeded %d customers\n", len(customers))

	for _, inv := range invoices {
		if _, err := db.Exec(`
			INSERT INTO invoices (customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4)
		`, customerIDs[inv.customerIdx], inv.amount, inv.status, inv.date); err != nil {
			log.Fatalf("failed to seed invoice: %v", err)
		}
	}
	fmt.Printf("seeded %d invoices\n", len(invoices))

	for _, m := range months {
		if _, err := db.Exec(`
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO UPDATE SET revenue = EXCLUDED.revenue
		`, m, revenue[m]); err != nil {
			log.Fatalf("failed to seed revenue for %s: %v", m, err)
		}
	}
	fmt.Printf("seeded %d revenue months\n", len(months))
}
