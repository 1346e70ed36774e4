package config

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/weisyn/keyaddr/internal/config/address"
	configInterface "github.com/weisyn/keyaddr/pkg/interfaces/config"
	"github.com/weisyn/keyaddr/pkg/types"
)

type staticAppOptions struct {
	cfg *types.AppConfig
}

func (s staticAppOptions) GetAppConfig() *types.AppConfig { return s.cfg }

func TestProviderDefaults(t *testing.T) {
	for name, cfg := range map[string]*types.AppConfig{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			p := NewProvider(cfg)

			assert.Equal(t, "info", p.GetLog().Level)
			assert.Equal(t, "stderr", p.GetLog().FilePath)

			assert.Equal(t, byte(0x00), p.GetAddress().VersionByte)
			assert.Equal(t, address.KeyDerivationEducational, p.GetAddress().KeyDerivation)

			assert.Equal(t, "127.0.0.1:8080", p.GetAPI().Listen)
			assert.True(t, p.GetAPI().EnableMetrics)

			assert.Equal(t, min(runtime.NumCPU(), 256), p.GetBatch().Workers)
		})
	}
}

func TestProviderOverrides(t *testing.T) {
	p := NewProvider(&types.AppConfig{
		Log: &types.UserLogConfig{Level: types.StringPtr("debug")},
		Address: &types.UserAddressConfig{
			Network: types.StringPtr("testnet3"),
		},
		API:   &types.UserAPIConfig{Listen: types.StringPtr(":9999"), EnableMetrics: types.BoolPtr(false)},
		Batch: &types.UserBatchConfig{Workers: types.IntPtr(3)},
	})

	assert.Equal(t, "debug", p.GetLog().Level)
	assert.Equal(t, byte(0x6f), p.GetAddress().VersionByte)
	assert.Equal(t, ":9999", p.GetAPI().Listen)
	assert.False(t, p.GetAPI().EnableMetrics)
	assert.Equal(t, 3, p.GetBatch().Workers)
}

func TestModuleProvidesOptions(t *testing.T) {
	var (
		provider configInterface.Provider
		addr     *address.AddressOptions
	)
	app := fxtest.New(t,
		fx.Provide(func() configInterface.AppOptions {
			return staticAppOptions{cfg: &types.AppConfig{Address: &types.UserAddressConfig{VersionByte: types.Uint8Ptr(0x05)}}}
		}),
		Module(),
		fx.Populate(&provider, &addr),
	)
	require.NoError(t, app.Start(context.Background()))
	defer app.RequireStop()

	require.NotNil(t, provider)
	assert.Equal(t, byte(0x05), addr.VersionByte)
}

func TestModuleWithoutAppOptions(t *testing.T) {
	var provider configInterface.Provider
	app := fxtest.New(t, Module(), fx.Populate(&provider))
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, byte(0x00), provider.GetAddress().VersionByte)
}
