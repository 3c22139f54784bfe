package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env). Los defaults son solo para desarrollo
// local y deben sobreescribirse en cualquier despliegue real.
type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	Admin   AdminConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig ubicación del archivo SQLite. ":memory:" sirve para pruebas.
type DBConfig struct {
	Path string
}

// SessionConfig secreto de firma de la cookie y flags de la misma.
type SessionConfig struct {
	Secret       string
	CookieSecure bool // true detrás de terminación TLS
	DemoMode     bool // habilita POST /auth/demo
}

// AdminConfig credencial que siembra el bootstrap.
type AdminConfig struct {
	Email    string
	Password string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, DB_PATH, SESSION_SECRET, COOKIE_SECURE, DEMO_MODE, ADMIN_EMAIL,
// ADMIN_PASSWORD, HTTP_HOST, HTTP_PORT.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "clientes-api"),
		},
		DB: DBConfig{
			Path: getString(v, "DB_PATH", "clientes.sqlite"),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", "dev-change-me"),
			CookieSecure: getBool(v, "COOKIE_SECURE", false),
			DemoMode:     getBool(v, "DEMO_MODE", false),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", "admin@local"),
			Password: getString(v, "ADMIN_PASSWORD", "changeme"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		// Acepta "true"/"false" en cualquier capitalización, como el resto
		// del entorno.
		return strings.EqualFold(strings.TrimSpace(v.GetString(key)), "true")
	}
	return def
}
