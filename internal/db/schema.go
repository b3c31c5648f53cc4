package db

import "database/sql"

// EnsureSchema creates the tables the application expects. Every statement is
// idempotent so the bootstrap can run on every start.
//
// The bookings table carries a stored generated column seat_hold that mirrors
// seat_number while the booking is in an active status (BOOKED, PAID, FREE)
// and is NULL otherwise. The unique key on (trip_id, seat_hold) is what makes
// a double-booking insert fail closed instead of relying on the availability
// read that precedes it.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(100) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'CUSTOMER',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_username (username),
		UNIQUE KEY uniq_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS buses (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		origin VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		departure_time DATETIME NOT NULL,
		price DECIMAL(10,2) NOT NULL DEFAULT 0,
		total_seats INT NOT NULL DEFAULT 50,
		seats_per_row INT NOT NULL DEFAULT 4,
		is_available TINYINT(1) NOT NULL DEFAULT 1
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bus_inventory (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		bus_id BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'NEW',
		purchase_date DATE NOT NULL,
		UNIQUE KEY uniq_bus (bus_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS trips (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		bus_id BIGINT NOT NULL,
		departure_time DATETIME NOT NULL,
		origin VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		price DECIMAL(10,2) NOT NULL DEFAULT 0,
		active TINYINT(1) NOT NULL DEFAULT 1,
		KEY idx_bus (bus_id),
		KEY idx_departure (departure_time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		trip_id BIGINT NOT NULL,
		seat_number VARCHAR(3) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'BOOKED',
		loyalty_points INT NOT NULL DEFAULT 0,
		booking_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		seat_hold VARCHAR(3) GENERATED ALWAYS AS (
			CASE WHEN status IN ('BOOKED','PAID','FREE') THEN seat_number ELSE NULL END
		) STORED,
		UNIQUE KEY uniq_trip_seat_hold (trip_id, seat_hold),
		KEY idx_customer (customer_id),
		KEY idx_trip (trip_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS loyalty (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		points INT NOT NULL DEFAULT 0,
		free_trip_eligible TINYINT(1) NOT NULL DEFAULT 0,
		UNIQUE KEY uniq_customer (customer_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS ticket_sales (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		bus_id BIGINT NOT NULL,
		trip_id BIGINT NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		reference VARCHAR(64) NOT NULL DEFAULT '',
		sold_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		KEY idx_sold_at (sold_at),
		KEY idx_bus (bus_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS locations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		UNIQUE KEY uniq_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS route_prices (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		origin_id BIGINT NOT NULL,
		destination_id BIGINT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		UNIQUE KEY uniq_route (origin_id, destination_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

func EnsureSchema(db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return migrateSeatHold(db)
}

// migrateSeatHold backfills the generated column and its unique key on
// databases created before seat_hold existed. CREATE TABLE IF NOT EXISTS
// leaves such tables untouched, so the column has to be added here.
func migrateSeatHold(db *sql.DB) error {
	if !HasTable(db, "bookings") || HasColumn(db, "bookings", "seat_hold") {
		return nil
	}
	if _, err := db.Exec(`
		ALTER TABLE bookings
		ADD COLUMN seat_hold VARCHAR(3) GENERATED ALWAYS AS (
			CASE WHEN status IN ('BOOKED','PAID','FREE') THEN seat_number ELSE NULL END
		) STORED
	`); err != nil {
		return err
	}
	_, err := db.Exec(`ALTER TABLE bookings ADD UNIQUE KEY uniq_trip_seat_hold (trip_id, seat_hold)`)
	return err
}
