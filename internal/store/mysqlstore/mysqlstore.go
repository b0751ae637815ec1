// Package mysqlstore is the durable store.Store implementation over MySQL.
package mysqlstore

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

// Store wraps a *sql.DB opened with parseTime=true.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// EnsureSchema creates the tables when missing. Runs at startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS properties (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(100) NOT NULL,
			address VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(50) NOT NULL,
			zip_code VARCHAR(20) NOT NULL,
			contact_phone VARCHAR(50),
			contact_email VARCHAR(255),
			meeting_point VARCHAR(255) NOT NULL,
			UNIQUE KEY uniq_slug (slug)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS trips (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			departure_date DATETIME NOT NULL,
			return_date DATETIME NOT NULL,
			departure_time VARCHAR(20) NOT NULL,
			return_time VARCHAR(20) NOT NULL,
			max_capacity INT NOT NULL DEFAULT 30,
			price_per_seat BIGINT NOT NULL,
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			booking_close_hours INT NOT NULL DEFAULT 24,
			departure_location VARCHAR(255) NOT NULL,
			return_location VARCHAR(255) NOT NULL,
			KEY idx_departure (departure_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id BIGINT NOT NULL,
			property_id BIGINT NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			number_of_seats INT NOT NULL DEFAULT 1,
			total_amount BIGINT NOT NULL,
			payment_ref VARCHAR(255),
			payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
			booking_status VARCHAR(20) NOT NULL DEFAULT 'reserved',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_trip (trip_id),
			KEY idx_property (property_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS property_trips (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			property_id BIGINT NOT NULL,
			trip_id BIGINT NOT NULL,
			UNIQUE KEY uniq_property_trip (property_id, trip_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			UNIQUE KEY uniq_username (username)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}
	for _, stmt := range ddl {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
