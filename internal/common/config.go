package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	OCR     OCRConfig
	NLP     NLPConfig
	Scoring ScoringConfig
	Verify  VerifyConfig
	Store   StoreConfig
	Intake  IntakeConfig
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	EasyOCR       string // secondary engine binary; if empty -> "easyocr"
	Pdftoppm      string // rasterizer for scanned PDF pages
	TesseractLang string
	TessdataDir   string
	DPI           int
	PSM           int
	OEM           int
	MaxPages      int // 0 = no limit
}

// NLPConfig holds entity-recognition configuration
type NLPConfig struct {
	Disabled bool // force the recognizer into unavailable mode
}

// ScoringConfig holds the candidate fit-scoring weights and education levels.
// The weights are tunable, not invariants.
type ScoringConfig struct {
	SkillsWeight     float64
	ExperienceWeight float64
	EducationWeight  float64
	TenureWeight     float64
	GrowthWeight     float64

	PhDScore      float64
	MasterScore   float64
	BachelorScore float64
	DefaultScore  float64

	ShortlistThreshold float64
}

// VerifyConfig holds QR URL verification configuration
type VerifyConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// StoreConfig holds the audit-log database configuration
type StoreConfig struct {
	Path string // sqlite file; empty disables the audit log
}

// IntakeConfig holds batch/watch intake configuration
type IntakeConfig struct {
	Dir         string
	OutDir      string
	Concurrency int
	Debounce    time.Duration
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is honored when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			EasyOCR:       getEnv("EASYOCR_BIN", "easyocr"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			PSM:           getEnvAsInt("OCR_PSM", 6),
			OEM:           getEnvAsInt("OCR_OEM", 3),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		NLP: NLPConfig{
			Disabled: getEnvAsBool("NLP_DISABLED", false),
		},
		Scoring: ScoringConfig{
			SkillsWeight:       getEnvAsFloat("FIT_SKILLS_WEIGHT", 0.4),
			ExperienceWeight:   getEnvAsFloat("FIT_EXPERIENCE_WEIGHT", 0.3),
			EducationWeight:    getEnvAsFloat("FIT_EDUCATION_WEIGHT", 0.2),
			TenureWeight:       getEnvAsFloat("FIT_TENURE_WEIGHT", 0.05),
			GrowthWeight:       getEnvAsFloat("FIT_GROWTH_WEIGHT", 0.05),
			PhDScore:           getEnvAsFloat("FIT_PHD_SCORE", 100),
			MasterScore:        getEnvAsFloat("FIT_MASTER_SCORE", 90),
			BachelorScore:      getEnvAsFloat("FIT_BACHELOR_SCORE", 80),
			DefaultScore:       getEnvAsFloat("FIT_DEFAULT_EDU_SCORE", 50),
			ShortlistThreshold: getEnvAsFloat("SHORTLIST_THRESHOLD", 70),
		},
		Verify: VerifyConfig{
			Timeout:   getEnvAsDuration("VERIFY_TIMEOUT", 10*time.Second),
			UserAgent: getEnv("VERIFY_USER_AGENT", "hiredocs/1.0 (Verification Bot)"),
		},
		Store: StoreConfig{
			Path: getEnv("AUDIT_DB_PATH", ""),
		},
		Intake: IntakeConfig{
			Dir:         getEnv("INTAKE_DIR", "uploads"),
			OutDir:      getEnv("OUTPUT_DIR", "outputs"),
			Concurrency: getEnvAsInt("INTAKE_CONCURRENCY", 4),
			Debounce:    getEnvAsDuration("INTAKE_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
