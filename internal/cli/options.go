package cli

import (
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonwraymond/envloader/loader"
	"github.com/jonwraymond/envloader/observe"
)

// Flag names double as viper keys. Every key can also be set through
// ENV_LOADER_<KEY> with dashes replaced by underscores.
const (
	keyPass            = "pass"
	keyIgnoreMissing   = "ignore-missing"
	keyEnvPrefix       = "env-prefix"
	keyConcurrency     = "concurrency"
	keySecretTimeout   = "secret-timeout"
	keySecretAttempts  = "secret-attempts"
	keyAWSRegion       = "aws-region"
	keyLogLevel        = "log-level"
	keyTraceExporter   = "trace-exporter"
	keyMetricsExporter = "metrics-exporter"
	keyDryRun          = "dry-run"

	envPrefix = "ENV_LOADER"
)

// Options is the decoded command line.
type Options struct {
	Loader loader.Config

	SecretTimeout  time.Duration
	SecretAttempts int
	AWSRegion      string

	LogLevel        string
	TraceExporter   string
	MetricsExporter string

	DryRun  bool
	Command []string
}

func defineFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(keyPass, "p", nil, "pass `NAME` through untouched (repeatable)")
	fs.BoolP(keyIgnoreMissing, "i", false, "drop variables that cannot be resolved instead of aborting")
	fs.StringP(keyEnvPrefix, "e", "", "only resolve variables whose name starts with `PREFIX`")
	fs.Int(keyConcurrency, 1, "number of parallel secret lookups")
	fs.Duration(keySecretTimeout, 0, "timeout per secret lookup attempt (0 = none)")
	fs.Int(keySecretAttempts, 1, "attempts per secret lookup")
	fs.String(keyAWSRegion, "", "AWS region for secret lookups (default: SDK chain)")
	fs.String(keyLogLevel, "info", "log level: debug|info|warn|error")
	fs.String(keyTraceExporter, "none", "trace exporter: none|stdout|otlp|jaeger")
	fs.String(keyMetricsExporter, "none", "metrics exporter: none|stdout|otlp|prometheus")
	fs.Bool(keyDryRun, false, "print the resulting variable names and exit")
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeOptions reads flags and environment overrides from v.
func decodeOptions(v *viper.Viper, args []string) (Options, error) {
	if len(args) == 0 {
		return Options{}, usageError("a command to run is required")
	}

	cfg := loader.Config{
		Pass:          splitList(v.GetStringSlice(keyPass)),
		IgnoreMissing: v.GetBool(keyIgnoreMissing),
		Concurrency:   v.GetInt(keyConcurrency),
	}
	if v.IsSet(keyEnvPrefix) {
		cfg = cfg.WithPrefix(v.GetString(keyEnvPrefix))
	}
	if err := cfg.Validate(); err != nil {
		return Options{}, &ExitError{Code: ExitUsage, Err: err}
	}

	opts := Options{
		Loader:          cfg,
		SecretTimeout:   v.GetDuration(keySecretTimeout),
		SecretAttempts:  v.GetInt(keySecretAttempts),
		AWSRegion:       v.GetString(keyAWSRegion),
		LogLevel:        v.GetString(keyLogLevel),
		TraceExporter:   v.GetString(keyTraceExporter),
		MetricsExporter: v.GetString(keyMetricsExporter),
		DryRun:          v.GetBool(keyDryRun),
		Command:         args,
	}

	if opts.SecretTimeout < 0 {
		return Options{}, usageError("--%s must not be negative, got %s", keySecretTimeout, opts.SecretTimeout)
	}
	if opts.SecretAttempts < 1 {
		return Options{}, usageError("--%s must be at least 1, got %d", keySecretAttempts, opts.SecretAttempts)
	}

	obsCfg := opts.observeConfig(nil)
	if err := obsCfg.Validate(); err != nil {
		return Options{}, &ExitError{Code: ExitUsage, Err: err}
	}

	return opts, nil
}

// observeConfig builds the telemetry configuration. Logs and stdout
// exporters go to stderr.
func (o Options) observeConfig(stderr io.Writer) observe.Config {
	cfg := observe.Config{
		ServiceName: "env-loader",
		Version:     Version,
		Tracing: observe.TracingConfig{
			Enabled:   o.TraceExporter != "" && o.TraceExporter != "none",
			Exporter:  o.TraceExporter,
			SamplePct: 1.0,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  o.MetricsExporter != "" && o.MetricsExporter != "none",
			Exporter: o.MetricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   o.LogLevel,
		},
	}
	if stderr != nil {
		cfg.Logging.Output = stderr
		cfg.ExporterOutput = stderr
	}
	return cfg
}

// providerConfig returns the aws_sm factory configuration.
func (o Options) providerConfig() map[string]any {
	cfg := map[string]any{"max_attempts": o.SecretAttempts}
	if o.AWSRegion != "" {
		cfg["region"] = o.AWSRegion
	}
	if o.SecretTimeout > 0 {
		cfg["timeout"] = o.SecretTimeout
	}
	return cfg
}

// splitList accepts both repeated flags and comma or space separated values
// from the environment.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, part)
		}
	}
	return out
}
