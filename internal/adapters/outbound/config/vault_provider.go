package config

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read once and kept for the lifetime of the provider.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	mu     sync.Mutex
	values map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "agenthub").
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get retrieves a configuration value from Vault.
//
// Returns an error if the secret cannot be read or does not contain the key,
// so that a composite provider can fall back to the next source.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	values, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}

	return strValue, nil
}

func (vp *VaultProvider) load(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.values != nil {
		return vp.values, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.values = secret.Data
	return vp.values, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider.
// Vault is optional: when VAULT_ADDR is not set only environment variables are used.
type InitVaultProvider struct {
	Logger     *log.Logger `resolve:""`
	Server     string      `config:"VAULT_ADDR" default:"-"`
	Token      string      `config:"VAULT_TOKEN" default:"-"`
	MountPath  string      `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string      `config:"VAULT_SECRET_PATH" default:"agenthub"`
}

// Initialize sets up the VaultProvider and registers it in a composite provider as a global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		ivp.Logger.Print("InitVaultProvider: VAULT_ADDR not set, using environment variables only")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
