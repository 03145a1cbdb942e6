package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ctxKeyOptions is used to store options within a cobra command context.
type ctxKeyOptions struct{}

// DefaultsFile is the optional per-corpus settings file looked up in the
// root directory.
const DefaultsFile = "scripturelens.yaml"

// envPassword is the environment variable carrying the upload secret.
const envPassword = "UPLOAD_PASSWORD"

// UploadDefaults are the upload settings persisted alongside a corpus so
// flags don't need repeating on every run.
type UploadDefaults struct {
	APIURL    string `yaml:"api_url"`
	Tradition string `yaml:"tradition"`
	Source    string `yaml:"source"`
	Work      string `yaml:"work"`
}

// Options contains global flags shared by all commands.
type Options struct {
	RootDir    string
	JSONOutput bool
	Verbose    bool
	DryRun     bool
	LogFile    string
	Upload     UploadDefaults

	logger   *logrus.Logger
	logClose func() error
}

var (
	optionsMu sync.RWMutex
	current   *Options
)

// New creates a new Options instance populated with defaults.
func New() *Options {
	return &Options{
		Upload: UploadDefaults{
			APIURL:    "http://localhost:3000/api/upload",
			Tradition: "KJV",
			Source:    "KJV Source",
			Work:      "Holy Bible",
		},
	}
}

// Init populates options, loads the optional .env and defaults file, and
// configures logging.
func (o *Options) Init(root string, jsonOut, verbose, dry bool, logFile string) error {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}
		root = cwd
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path: %w", err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return fmt.Errorf("root path invalid: %w", err)
	}

	o.RootDir = absRoot
	o.JSONOutput = jsonOut
	o.Verbose = verbose
	o.DryRun = dry
	o.LogFile = logFile

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if verbose {
		logger.SetLevel(logrus.InfoLevel)
		var output io.Writer = os.Stderr
		if logFile != "" {
			// #nosec G304 -- log file path provided via command flag
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			output = f
			o.logClose = f.Close
		}
		logger.SetOutput(output)
	} else {
		logger.SetLevel(logrus.WarnLevel)
		logger.SetOutput(io.Discard)
	}
	o.logger = logger

	if err := godotenv.Load(filepath.Join(absRoot, ".env")); err != nil {
		logger.WithField("component", "config").Info(".env file not found, using system environment")
	}
	if err := o.loadDefaults(); err != nil {
		return err
	}

	SetCurrent(o)
	return nil
}

// loadDefaults merges the optional scripturelens.yaml into the upload
// settings; a missing file is fine, unparsable yaml is not.
func (o *Options) loadDefaults() error {
	path := filepath.Join(o.RootDir, DefaultsFile)
	// #nosec G304 -- defaults file lives inside the validated root
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", DefaultsFile, err)
	}

	var loaded UploadDefaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse %s: %w", DefaultsFile, err)
	}
	if loaded.APIURL != "" {
		o.Upload.APIURL = loaded.APIURL
	}
	if loaded.Tradition != "" {
		o.Upload.Tradition = loaded.Tradition
	}
	if loaded.Source != "" {
		o.Upload.Source = loaded.Source
	}
	if loaded.Work != "" {
		o.Upload.Work = loaded.Work
	}
	return nil
}

// UploadPassword returns the shared-secret password from the environment.
func (o *Options) UploadPassword() string {
	return os.Getenv(envPassword)
}

// SetCurrent stores the provided options as the globally accessible configuration.
func SetCurrent(o *Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	current = o
}

// Current retrieves the globally stored options.
func Current() (*Options, error) {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	if current == nil {
		return nil, fmt.Errorf("configuration not initialised")
	}
	return current, nil
}

// Close releases any resources held by options (e.g., log files).
func (o *Options) Close() error {
	if o.logClose != nil {
		return o.logClose()
	}
	return nil
}

// WithContext returns a new context with the options stored.
func (o *Options) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyOptions{}, o)
}

// FromContext extracts Options from command context.
func FromContext(ctx context.Context) (*Options, error) {
	if ctx == nil {
		return nil, fmt.Errorf("nil context provided")
	}
	if opts, ok := ctx.Value(ctxKeyOptions{}).(*Options); ok {
		return opts, nil
	}
	return Current()
}

// Logger exposes the configured logger.
func (o *Options) Logger() *logrus.Logger {
	if o.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		o.logger = logger
	}
	return o.logger
}
