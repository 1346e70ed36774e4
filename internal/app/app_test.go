package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/keyaddr/configs"
	"github.com/weisyn/keyaddr/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigEmbeddedDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Address)
	assert.Equal(t, "mainnet", *cfg.Address.Network)
	assert.Equal(t, "educational", *cfg.Address.KeyDerivation)
	assert.False(t, *cfg.Address.Cache.Enabled)
}

func TestLoadConfigServeDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadConfig("", configs.GetServeConfig())
	require.NoError(t, err)
	require.NotNil(t, cfg.API)
	assert.Equal(t, "127.0.0.1:8080", *cfg.API.Listen)
	assert.True(t, *cfg.Address.Cache.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	path := writeConfig(t, `{"address":{"network":"testnet3","version_byte":0}}`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "testnet3", *cfg.Address.Network)
	require.NotNil(t, cfg.Address.VersionByte, "显式的 0 也要保留")
	assert.Equal(t, uint8(0), *cfg.Address.VersionByte)
}

func TestLoadConfigEnvOverridesPath(t *testing.T) {
	envPath := writeConfig(t, `{"address":{"network":"regtest"}}`)
	flagPath := writeConfig(t, `{"address":{"network":"testnet3"}}`)
	t.Setenv(ConfigPathEnv, envPath)

	cfg, err := LoadConfig(flagPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "regtest", *cfg.Address.Network)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"), nil)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", *cfg.Address.Network)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	_, err := LoadConfig(writeConfig(t, `{"address":`), nil)
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"address":{"network":"moonnet"}}`), nil)
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"batch":{"workers":-1}}`), nil)
	assert.Error(t, err)
}

func TestStartWithOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	app, err := Start(
		WithLogLevel("error"),
		WithAddress(&types.UserAddressConfig{Network: types.StringPtr("testnet3")}),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Stop()) }()

	services := app.Services()
	assert.Nil(t, services.Server, "默认不启用API")
	assert.Equal(t, byte(0x6f), services.AddressManager.Version())

	result, err := services.Pipeline.DeriveFromText("correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, types.Address("mymh5YGrPk7v577xuy3vppU2BFU1LPJbqD"), result.Address)
}

func TestStartWithEntropy(t *testing.T) {
	app, err := Start(
		WithAppConfig(&types.AppConfig{Log: &types.UserLogConfig{Level: types.StringPtr("error")}}),
		WithEntropy(bytes.NewReader(make([]byte, types.SecretLength))),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Stop()) }()

	secret, result, err := app.Services().Pipeline.DeriveRandom()
	require.NoError(t, err)
	assert.True(t, secret.IsZero())
	assert.Equal(t, types.Address("1GRL3t9frCCE3r5itsJgbo3RzbT1hipNRk"), result.Address)
}

func TestStartInvalidOverride(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	_, err := Start(WithAddress(&types.UserAddressConfig{KeyDerivation: types.StringPtr("ed25519")}))
	assert.Error(t, err)
}

func TestStartWithAPI(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	app, err := Start(
		WithEmbeddedConfig(configs.GetServeConfig()),
		WithLogLevel("error"),
		WithListen("127.0.0.1:0"),
		WithAPI(),
	)
	require.NoError(t, err)

	server := app.Services().Server
	require.NotNil(t, server)
	assert.NotEmpty(t, server.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Wait(ctx))
}
