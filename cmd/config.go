package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "github.com/rehagoal/e2ecov/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "e2ecov"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportsFlagName = "reports"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"
	hostFlagName    = "host"
	portFlagName    = "port"
	excludeFlagName = "exclude"

	wwwKey           = "paths.www"
	instrumentedKey  = "paths.instrumented"
	coverageKey      = "paths.coverage"
	reportsKey       = "paths.reports"
	hostKey          = "server.host"
	portKey          = "server.port"
	readyTimeoutKey  = "server.ready_timeout"
	pollIntervalKey  = "server.poll_interval"
	excludeConfigKey = "instrument.exclude"
	extensionsKey    = "instrument.extensions"
	nycKey           = "tools.nyc"
	npmKey           = "tools.npm"
	serverScriptKey  = "scripts.server"
	e2eScriptKey     = "scripts.e2e"

	envPrefix = "E2ECOV"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".e2ecov.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds the error from reading e2ecov.yaml, reported by the
// first command that needs the configuration.
var configReadErr error

func init() {
	initConfig()
}

// initConfig wires viper to e2ecov.yaml and E2ECOV_* environment variables,
// registers the defaults and reads the config file if there is one.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	configReadErr = readConfigFile()
}

// readConfigFile merges e2ecov.yaml into viper. A missing file is not an
// error.
func readConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", configFileName, err)
}

// setConfigDefaults registers every configuration key with the value the
// build pipeline was written against.
func setConfigDefaults() {
	d := m.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(wwwKey, string(d.Paths.WWW))
	viper.SetDefault(instrumentedKey, string(d.Paths.Instrumented))
	viper.SetDefault(coverageKey, string(d.Paths.Coverage))
	viper.SetDefault(reportsKey, string(d.Paths.Reports))

	viper.SetDefault(hostKey, d.Server.Host)
	viper.SetDefault(portKey, d.Server.Port)
	viper.SetDefault(readyTimeoutKey, d.Server.ReadyTimeout.String())
	viper.SetDefault(pollIntervalKey, d.Server.PollInterval.String())

	viper.SetDefault(excludeConfigKey, d.Instrument.Exclude)
	viper.SetDefault(extensionsKey, d.Instrument.Extensions)

	viper.SetDefault(nycKey, d.Tools.NYC)
	viper.SetDefault(npmKey, d.Tools.NPM)
	viper.SetDefault(serverScriptKey, d.Scripts.Server)
	viper.SetDefault(e2eScriptKey, d.Scripts.E2E)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// loadConfig builds the effective configuration from defaults, the config
// file, the environment and flags, in increasing precedence.
func loadConfig() (m.Config, error) {
	if configReadErr != nil {
		return m.Config{}, configReadErr
	}

	var cfg m.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return m.Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return m.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger. Records go to console
// (timestamped, one line per step) and to a rotated log file.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(console io.Writer, logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(io.MultiWriter(console, logWriter), &slog.HandlerOptions{
		Level: logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
