package address

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/keyaddr/pkg/types"
)

func TestDefaults(t *testing.T) {
	opts := New(nil).GetOptions()
	assert.Equal(t, "mainnet", opts.Network)
	assert.Equal(t, byte(0x00), opts.VersionByte)
	assert.Equal(t, KeyDerivationEducational, opts.KeyDerivation)
	assert.False(t, opts.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, opts.Cache.LifeWindow)
	assert.Equal(t, 10000, opts.Cache.MaxEntries)
}

func TestNetworkVersionBytes(t *testing.T) {
	cases := []struct {
		network string
		version byte
	}{
		{"mainnet", 0x00},
		{"testnet3", 0x6f},
		{"regtest", 0x6f},
		{"signet", 0x6f},
		{"simnet", 0x3f},
		{"  TestNet3 ", 0x6f},
	}
	for _, tc := range cases {
		t.Run(tc.network, func(t *testing.T) {
			cfg := New(&types.UserAddressConfig{Network: types.StringPtr(tc.network)})
			assert.Equal(t, tc.version, cfg.GetVersionByte())
		})
	}
}

func TestExplicitVersionByteWins(t *testing.T) {
	t.Run("覆盖网络", func(t *testing.T) {
		cfg := New(&types.UserAddressConfig{
			Network:     types.StringPtr("testnet3"),
			VersionByte: types.Uint8Ptr(0x05),
		})
		assert.Equal(t, "testnet3", cfg.GetOptions().Network)
		assert.Equal(t, byte(0x05), cfg.GetVersionByte())
	})

	t.Run("显式零值", func(t *testing.T) {
		cfg := New(&types.UserAddressConfig{
			Network:     types.StringPtr("simnet"),
			VersionByte: types.Uint8Ptr(0x00),
		})
		assert.Equal(t, byte(0x00), cfg.GetVersionByte())
	})
}

func TestCacheOverrides(t *testing.T) {
	cfg := New(&types.UserAddressConfig{
		KeyDerivation: types.StringPtr(KeyDerivationSecp256k1),
		Cache: &types.UserAddressCacheConfig{
			Enabled:    types.BoolPtr(true),
			LifeWindow: types.StringPtr("90s"),
			MaxEntries: types.IntPtr(64),
		},
	})
	opts := cfg.GetOptions()
	assert.Equal(t, KeyDerivationSecp256k1, cfg.GetKeyDerivation())
	assert.True(t, opts.Cache.Enabled)
	assert.Equal(t, 90*time.Second, opts.Cache.LifeWindow)
	assert.Equal(t, 64, opts.Cache.MaxEntries)
}

func TestInvalidValuesKeepDefaults(t *testing.T) {
	cfg := New(&types.UserAddressConfig{
		Network: types.StringPtr("nonesuch"),
		Cache: &types.UserAddressCacheConfig{
			LifeWindow: types.StringPtr("soon"),
			MaxEntries: types.IntPtr(-1),
		},
	})
	opts := cfg.GetOptions()
	assert.Equal(t, "mainnet", opts.Network)
	assert.Equal(t, byte(0x00), opts.VersionByte)
	assert.Equal(t, 10*time.Minute, opts.Cache.LifeWindow)
	assert.Equal(t, 10000, opts.Cache.MaxEntries)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(nil))
	require.NoError(t, Validate(&types.UserAddressConfig{Network: types.StringPtr("signet")}))

	assert.Error(t, Validate(&types.UserAddressConfig{Network: types.StringPtr("nonesuch")}))
	assert.Error(t, Validate(&types.UserAddressConfig{KeyDerivation: types.StringPtr("ed25519")}))
	assert.Error(t, Validate(&types.UserAddressConfig{
		Cache: &types.UserAddressCacheConfig{LifeWindow: types.StringPtr("-1m")},
	}))
	assert.Error(t, Validate(&types.UserAddressConfig{
		Cache: &types.UserAddressCacheConfig{MaxEntries: types.IntPtr(0)},
	}))
}
