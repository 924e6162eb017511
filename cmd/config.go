package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"salvager.dev/pkg/salvager/internal/adapter"
	"salvager.dev/pkg/salvager/internal/domain"
	m "salvager.dev/pkg/salvager/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "salvager"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	worldFlagName    = "world"
	playerFlagName   = "player"
	verboseFlagName  = "verbose"
	forceFlagName    = "force"
	diffFlagName     = "diff"
	allFlagName      = "all"
	parallelFlagName = "parallel"
	limitFlagName    = "limit"

	worldConfigKey        = "world"
	enabledConfigKey      = "grinder.enabled"
	maxDistanceConfigKey  = "grinder.max_distance"
	maxItemCountConfigKey = "grinder.max_item_count"
	maxSlotsConfigKey     = "salvage.max_slots"
	massMarginConfigKey   = "salvage.mass_margin"
	volumeMarginConfigKey = "salvage.volume_margin"
	powerDownConfigKey    = "salvage.power_down"
	categoriesConfigKey   = "salvage.categories"
	checkParallelKey      = "check.parallel"
	telemetryEnabledKey   = "telemetry.enabled"
	telemetryDBKey        = "telemetry.db"
	refreshURLKey         = "refresh.url"

	defaultWorld         = "world.yaml"
	defaultEnabled       = true
	defaultMaxDistance   = 1000.0
	defaultMaxItemCount  = 1000
	defaultPowerDown     = true
	defaultCheckParallel = 4
	defaultTelemetry     = true
	defaultTelemetryDB   = ".salvager/telemetry.db"

	envPrefix = "SALVAGER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".salvager.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setDefaults() {
	budget := domain.DefaultBudget()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(worldConfigKey, defaultWorld)

	viper.SetDefault(enabledConfigKey, defaultEnabled)
	viper.SetDefault(maxDistanceConfigKey, defaultMaxDistance)
	viper.SetDefault(maxItemCountConfigKey, defaultMaxItemCount)

	viper.SetDefault(maxSlotsConfigKey, budget.MaxSlots)
	viper.SetDefault(massMarginConfigKey, budget.MassMargin)
	viper.SetDefault(volumeMarginConfigKey, budget.VolumeMargin)
	viper.SetDefault(powerDownConfigKey, defaultPowerDown)
	viper.SetDefault(categoriesConfigKey, defaultCategories())

	viper.SetDefault(checkParallelKey, defaultCheckParallel)
	viper.SetDefault(telemetryEnabledKey, defaultTelemetry)
	viper.SetDefault(telemetryDBKey, defaultTelemetryDB)
	viper.SetDefault(refreshURLKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func defaultCategories() map[string]string {
	categories := map[string]string{}
	for category, action := range domain.DefaultCategoryPolicy() {
		categories[category] = string(action)
	}

	return categories
}

// loadSettings resolves the checker and engine configuration from viper.
func loadSettings() domain.Settings {
	return domain.Settings{
		Checker: domain.CheckerConfig{
			Enabled:      viper.GetBool(enabledConfigKey),
			MaxDistance:  viper.GetFloat64(maxDistanceConfigKey),
			MaxItemCount: viper.GetInt(maxItemCountConfigKey),
		},
		Engine: domain.EngineConfig{
			Budget: m.TransferBudget{
				MaxSlots:     viper.GetInt(maxSlotsConfigKey),
				MassMargin:   viper.GetFloat64(massMarginConfigKey),
				VolumeMargin: viper.GetFloat64(volumeMarginConfigKey),
			},
			Categories: domain.NewCategoryPolicy(viper.GetStringMapString(categoriesConfigKey)),
			PowerDown:  viper.GetBool(powerDownConfigKey),
		},
	}
}

func newTelemetry() adapter.TelemetryReporter {
	if !viper.GetBool(telemetryEnabledKey) {
		return adapter.NopTelemetry{}
	}

	return adapter.NewSQLiteTelemetry(viper.GetString(telemetryDBKey))
}

func newRefresher() adapter.ViewRefresher {
	url := strings.TrimSpace(viper.GetString(refreshURLKey))
	if url == "" {
		return adapter.NopRefresher{}
	}

	return adapter.NewWebsocketRefresher(url)
}

// configSettings lists every known configuration key with its resolved value.
func configSettings() []m.Setting {
	keys := viper.AllKeys()
	sort.Strings(keys)

	settings := make([]m.Setting, 0, len(keys))
	for _, key := range keys {
		settings = append(settings, m.Setting{Key: key, Value: formatConfigValue(viper.Get(key))})
	}

	return settings
}

func formatConfigValue(value any) string {
	switch v := value.(type) {
	case map[string]any:
		return formatConfigMap(v)
	case map[string]string:
		generic := make(map[string]any, len(v))
		for key, val := range v {
			generic[key] = val
		}

		return formatConfigMap(generic)
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func formatConfigMap(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, values[key]))
	}

	return strings.Join(pairs, ", ")
}

func isKnownConfigKey(key string) bool {
	for _, known := range viper.AllKeys() {
		if known == key {
			return true
		}
	}

	return false
}

// parseConfigValue converts raw to the type of the key's current value.
func parseConfigValue(key, raw string) (any, error) {
	switch viper.Get(key).(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int, int64:
		return strconv.Atoi(raw)
	case float64:
		return strconv.ParseFloat(raw, 64)
	case map[string]any, map[string]string:
		return nil, fmt.Errorf("%s is a map; edit %s instead", key, configFileName)
	default:
		return raw, nil
	}
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

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
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

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
