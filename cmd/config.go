package cmd

// Config holds the process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string

	// CartCleanupSchedule is a six-field cron expression with a seconds
	// column, e.g. "0 */10 * * * *".
	CartCleanupSchedule string
}
