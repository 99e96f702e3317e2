package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	Port string

	// Local store holding connection profiles, preferences and snapshots
	StoreDriver string // sqlite, mysql or postgres
	StorePath   string // sqlite file path
	DBHost      string
	DBPort      int
	DBUser      string
	DBPass      string
	DBName      string

	// Secret used to seal stored Oracle passwords
	EncryptionKey string

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// Oracle access
	OracleConnectTimeout time.Duration // bounds the Connecting state of an activation
	OracleQueryTimeout   time.Duration
	OracleMaxOpenConns   int
	SQLTextCacheSize     int

	// Schemas treated as Oracle-maintained by filters, exports and statistics
	SystemSchemas []string

	// Background jobs
	SnapshotCron          string
	SnapshotRetentionDays int
	HealthCron            string
	TablespaceAlertPct    float64

	// Alert mail, disabled when SMTPHost is empty
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	AlertEmails  []string
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// defaultSystemSchemas lists the Oracle-maintained accounts excluded by default.
var defaultSystemSchemas = []string{
	"ANONYMOUS", "APEX_PUBLIC_USER", "APPQOSSYS", "AUDSYS", "CTXSYS", "DBSFWUSER",
	"DBSNMP", "DIP", "DVF", "DVSYS", "GGSYS", "GSMADMIN_INTERNAL", "GSMCATUSER",
	"GSMUSER", "LBACSYS", "MDDATA", "MDSYS", "OJVMSYS", "OLAPSYS", "ORACLE_OCM",
	"ORDDATA", "ORDPLUGINS", "ORDSYS", "OUTLN", "REMOTE_SCHEDULER_AGENT",
	"SI_INFORMTN_SCHEMA", "SYS", "SYS$UMF", "SYSBACKUP", "SYSDG", "SYSKM", "SYSRAC",
	"SYSTEM", "WMSYS", "XDB", "XS$NULL",
}

// LoadConfig loads and validates application configuration from .env file and environment variables.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		// logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg.Port = getEnv("PORT", "8000")

	Cfg.StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", "sqlite"))
	Cfg.StorePath = getEnv("STORE_PATH", "oraconsole.sqlite")
	Cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	Cfg.DBUser = getEnv("DB_USER", "root")
	Cfg.DBPass = getEnv("DB_PASS", "")
	Cfg.DBName = getEnv("DB_NAME", "oraconsole")
	Cfg.DBPort = getEnvInt("DB_PORT", defaultStorePort(Cfg.StoreDriver))

	Cfg.EncryptionKey = getEnv("ENCRYPTION_KEY", "")

	Cfg.LogLevel = getEnv("LOG_LEVEL", "INFO")
	Cfg.LogFile = getEnv("LOG_FILE", "logs/oraconsoleapi.log")
	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	Cfg.OracleConnectTimeout = time.Duration(getEnvInt("ORACLE_CONNECT_TIMEOUT", 5)) * time.Second
	Cfg.OracleQueryTimeout = time.Duration(getEnvInt("ORACLE_QUERY_TIMEOUT", 60)) * time.Second
	Cfg.OracleMaxOpenConns = getEnvInt("ORACLE_MAX_OPEN_CONNS", 5)
	Cfg.SQLTextCacheSize = getEnvInt("SQL_TEXT_CACHE_SIZE", 512)

	Cfg.SystemSchemas = getEnvStringSlice("SYSTEM_SCHEMAS", defaultSystemSchemas)

	Cfg.SnapshotCron = getEnv("SNAPSHOT_CRON", "*/10 * * * * *")
	Cfg.SnapshotRetentionDays = getEnvInt("SNAPSHOT_RETENTION_DAYS", 7)
	Cfg.HealthCron = getEnv("HEALTH_CRON", "0 */5 * * * *")
	Cfg.TablespaceAlertPct = getEnvFloat("TABLESPACE_ALERT_PCT", 90)

	Cfg.SMTPHost = getEnv("SMTP_HOST", "")
	Cfg.SMTPPort = getEnvInt("SMTP_PORT", 587)
	Cfg.SMTPUser = getEnv("SMTP_USER", "")
	Cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	Cfg.SMTPFrom = getEnv("SMTP_FROM", "oraconsole@localhost")
	Cfg.AlertEmails = getEnvStringSlice("ALERT_EMAILS", nil)

	log.Printf("[INFO] Config loaded - Store: %s, Port: %s, LogLevel: %s",
		Cfg.StoreDriver, Cfg.Port, Cfg.LogLevel)
	log.Printf("[INFO] Oracle config - ConnectTimeout: %v, QueryTimeout: %v, MaxOpenConns: %d",
		Cfg.OracleConnectTimeout, Cfg.OracleQueryTimeout, Cfg.OracleMaxOpenConns)
	log.Printf("[INFO] Scheduler config - Snapshot: %q (retention %dd), Health: %q, Alert at %.0f%%",
		Cfg.SnapshotCron, Cfg.SnapshotRetentionDays, Cfg.HealthCron, Cfg.TablespaceAlertPct)

	return nil
}

func defaultStorePort(driver string) int {
	switch driver {
	case "postgres":
		return 5432
	default:
		return 3306
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

// getEnvStringSlice parses comma-separated environment variable into string slice
// Format: "item1,item2,item3" -> []string{"item1", "item2", "item3"}
func getEnvStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		items := strings.Split(val, ",")
		result := make([]string, 0, len(items))
		for _, item := range items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultVal
}

// IsSystemSchema reports whether an Oracle account is in the system exclusion list.
func IsSystemSchema(name string) bool {
	for _, s := range Cfg.SystemSchemas {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// MailEnabled reports whether alert notifications can be sent.
func MailEnabled() bool {
	return Cfg.SMTPHost != "" && len(Cfg.AlertEmails) > 0
}
