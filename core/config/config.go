package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	PrivateKeyName    = "private_key"
	AppLogName        = "app.log"
)

// Configuration holds the shell and server settings loaded from the config
// directory.
type Configuration struct {
	configFs afero.Fs

	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	Prompt   string `json:"prompt" validate:"required"`
	Motd     string `json:"motd"`

	SSHPort          int      `json:"ssh_port" validate:"gte=0,lte=65535"`
	SSHBanner        string   `json:"ssh_banner"`
	AllowAnyPassword bool     `json:"allow_any_password"`
	GlobalPasswords  []string `json:"global_passwords"`
	Users            []User   `json:"users" validate:"unique=Username"`

	// SessionBytesPerSecond throttles writes to remote sessions. Zero
	// disables the throttle.
	SessionBytesPerSecond int64 `json:"session_bytes_per_second" validate:"gte=0"`

	Aliases   map[string]string `json:"aliases"`
	Bookmarks map[string]string `json:"bookmarks"`
}

// User is one account allowed to log in over SSH.
type User struct {
	Username  string   `json:"username" validate:"required"`
	Passwords []string `json:"passwords" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// PrivateKeyPem returns the bytes of the SSH host key.
func (c *Configuration) PrivateKeyPem() ([]byte, error) {
	return afero.ReadFile(c.fs(), PrivateKeyName)
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// GetPasswords returns allowable passwords for the given username.
func (c *Configuration) GetPasswords(username string) []string {
	var out []string
	for _, v := range c.Users {
		if v.Username == username {
			out = append(out, v.Passwords...)
		}
	}

	out = append(out, c.GlobalPasswords...)
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
