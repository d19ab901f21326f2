package cmd

import "time"

// Config carries the environment configuration of the service. RedisAddr is
// optional: when empty the service falls back to the in-process locker,
// which is only safe for a single instance.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr string

	// LaborRate is the hourly rate the cost engine applies to planned and
	// confirmed hours.
	LaborRate string

	// Supervisors are the actors allowed to override release prerequisites.
	Supervisors []string

	// Technicians seeds the mock workforce directory. The directory fails
	// closed, so an unseeded directory rejects every assignment.
	Technicians []string

	MaterialsCacheTTL   time.Duration
	TechniciansCacheTTL time.Duration
}
