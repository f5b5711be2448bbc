// Package awssm resolves aws_sm:: references against AWS Secrets Manager.
package awssm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"

	"github.com/jonwraymond/envloader/resilience"
	"github.com/jonwraymond/envloader/secret"
)

// ErrNoSecretString indicates the secret has no string payload, for example a
// binary-only secret.
var ErrNoSecretString = errors.New("awssm: secret has no string value")

// SecretsAPI is the subset of the Secrets Manager client the provider uses.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Config configures a Provider.
type Config struct {
	// Region overrides the SDK region chain when set.
	Region string

	// Timeout bounds every lookup attempt. Zero means no timeout.
	Timeout time.Duration

	// MaxAttempts is the number of attempts per lookup. Default: 1
	MaxAttempts int

	// Client replaces the SDK client, mainly for tests.
	Client SecretsAPI
}

// loadClient builds the SDK client from the default credential chain.
var loadClient = func(ctx context.Context, region string) (SecretsAPI, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("awssm: failed to load AWS config: %w", err)
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// Provider looks up SecretString payloads by secret id or ARN.
//
// The SDK client is created on the first lookup, so a run that never
// references aws_sm:: never loads AWS configuration. Provider is safe for
// concurrent use.
type Provider struct {
	cfg  Config
	exec *resilience.Executor

	once      sync.Once
	client    SecretsAPI
	clientErr error
}

// New creates a provider.
func New(cfg Config) *Provider {
	retry := resilience.NewRetry(resilience.RetryConfig{
		MaxAttempts: cfg.MaxAttempts,
		Jitter:      true,
		RetryIf:     retryable,
	})
	return &Provider{
		cfg:  cfg,
		exec: resilience.NewExecutor(resilience.WithRetry(retry), resilience.WithTimeout(cfg.Timeout)),
	}
}

// Name returns the aws_sm marker.
func (p *Provider) Name() string {
	return secret.AWSSecretsManagerMarker
}

// Resolve fetches the SecretString of the secret identified by ref.
func (p *Provider) Resolve(ctx context.Context, ref string) (string, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	var value string
	err = p.exec.Execute(ctx, func(ctx context.Context) error {
		out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(ref),
		})
		if err != nil {
			return err
		}
		if out.SecretString == nil {
			return ErrNoSecretString
		}
		value = *out.SecretString
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("awssm: get secret value: %w", err)
	}
	return value, nil
}

// Close releases nothing; the SDK client holds no closable resources.
func (p *Provider) Close() error {
	return nil
}

func (p *Provider) getClient(ctx context.Context) (SecretsAPI, error) {
	p.once.Do(func() {
		if p.cfg.Client != nil {
			p.client = p.cfg.Client
			return
		}
		p.client, p.clientErr = loadClient(ctx, p.cfg.Region)
	})
	return p.client, p.clientErr
}

// retryable rejects client faults, missing payloads and cancellation.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoSecretString) || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorFault() == smithy.FaultClient {
		return false
	}
	return true
}
