package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Platform PlatformConfig `mapstructure:"platform"`
	Database DatabaseConfig `mapstructure:"database"`
	Booking  BookingConfig  `mapstructure:"booking"`
}

// PlatformConfig describes the remote scheduling platform: where it lives,
// which course to drive, and how patient the browser session should be.
// Selectors are configuration rather than code because the remote markup
// drifts independently of this engine.
type PlatformConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	LoginPath string `mapstructure:"login_path" validate:"required"`

	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	CourseCode string `mapstructure:"course_code" validate:"required"`

	Headless  bool   `mapstructure:"headless"`
	UserAgent string `mapstructure:"user_agent"`

	WaitTimeoutSeconds   int `mapstructure:"wait_timeout_seconds" validate:"gte=1,lte=60"`
	SettleDelayMs        int `mapstructure:"settle_delay_ms" validate:"gte=0"`
	ScriptTimeoutSeconds int `mapstructure:"script_timeout_seconds" validate:"gte=1,lte=300"`
	MaxTablePages        int `mapstructure:"max_table_pages" validate:"gte=1,lte=100"`

	Selectors SelectorConfig `mapstructure:"selectors"`
	Columns   ColumnConfig   `mapstructure:"columns"`
}

// ColumnConfig maps lesson table columns to their cell indices. The grid's
// column order is remote markup, so it is configuration.
type ColumnConfig struct {
	Level       int `mapstructure:"level"`
	Number      int `mapstructure:"number"`
	Description int `mapstructure:"description"`
	Grade       int `mapstructure:"grade"`
	Status      int `mapstructure:"status"`
	Date        int `mapstructure:"date"`
	Location    int `mapstructure:"location"`
}

// SelectorConfig maps logical page elements to DOM selectors.
type SelectorConfig struct {
	LoginUsername  string `mapstructure:"login_username"`
	LoginPassword  string `mapstructure:"login_password"`
	LoginSubmit    string `mapstructure:"login_submit"`
	InfoPopupClose string `mapstructure:"info_popup_close"`
	DashboardName  string `mapstructure:"dashboard_name"`
	ScheduleIcon   string `mapstructure:"schedule_icon"`
	CourseRow      string `mapstructure:"course_row"`
	StartButton    string `mapstructure:"start_button"`
	DialogRoot     string `mapstructure:"dialog_root"`
	LessonRows     string `mapstructure:"lesson_rows"`
	NextPage       string `mapstructure:"next_page"`
	AssignButton   string `mapstructure:"assign_button"`
	ErrorBanner    string `mapstructure:"error_banner"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type BookingConfig struct {
	DelayMs        int `mapstructure:"delay_ms" validate:"gte=0"`
	MaxDialogPages int `mapstructure:"max_dialog_pages" validate:"gte=1,lte=100"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/smartbooker")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("platform.base_url", "https://schoolpack.smart.edu.co/idiomas")
	v.SetDefault("platform.login_path", "/alumnos.aspx")
	v.SetDefault("platform.course_code", "INGA1C1")
	v.SetDefault("platform.headless", true)
	v.SetDefault("platform.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("platform.wait_timeout_seconds", 15)
	v.SetDefault("platform.settle_delay_ms", 2000)
	v.SetDefault("platform.script_timeout_seconds", 180)
	v.SetDefault("platform.max_table_pages", 26)
	v.SetDefault("platform.selectors.login_username", "#vUSUCOD")
	v.SetDefault("platform.selectors.login_password", "#vPASS")
	v.SetDefault("platform.selectors.login_submit", "#BUTTON1")
	v.SetDefault("platform.selectors.info_popup_close", "#gxp0_cls")
	v.SetDefault("platform.selectors.dashboard_name", "#vUSUNOMBRE")
	v.SetDefault("platform.selectors.schedule_icon", "#IMAGE18")
	v.SetDefault("platform.selectors.course_row", "tr[data-gxrow='0001']")
	v.SetDefault("platform.selectors.start_button", "#W0030BUTTON1")
	v.SetDefault("platform.selectors.dialog_root", ".gxwebcomponent")
	v.SetDefault("platform.selectors.lesson_rows", "table.Grid tr[data-gxrow]")
	v.SetDefault("platform.selectors.next_page", "[id$='GRIDPAGINGBAR_NEXT']")
	v.SetDefault("platform.selectors.assign_button", "input[value*='Asignar']")
	v.SetDefault("platform.selectors.error_banner", ".ErrorViewer, .gx-warning-message")
	v.SetDefault("platform.columns.level", 0)
	v.SetDefault("platform.columns.number", 1)
	v.SetDefault("platform.columns.description", 2)
	v.SetDefault("platform.columns.grade", 3)
	v.SetDefault("platform.columns.status", 4)
	v.SetDefault("platform.columns.date", 5)
	v.SetDefault("platform.columns.location", 6)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "smartbooker")
	v.SetDefault("database.username", "user")
	v.SetDefault("booking.delay_ms", 1000)
	v.SetDefault("booking.max_dialog_pages", 26)

	// Platform credentials come from the environment only, never from the config file.
	if err := v.BindEnv("platform.username", "PLATFORM_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind PLATFORM_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("platform.password", "PLATFORM_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind PLATFORM_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
