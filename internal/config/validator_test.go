package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/keyaddr/pkg/types"
)

func TestValidateAppConfig(t *testing.T) {
	t.Run("空配置通过", func(t *testing.T) {
		assert.NoError(t, ValidateAppConfig(nil))
		assert.NoError(t, ValidateAppConfig(&types.AppConfig{}))
	})

	t.Run("合法配置通过", func(t *testing.T) {
		err := ValidateAppConfig(&types.AppConfig{
			Log:     &types.UserLogConfig{Level: types.StringPtr("DEBUG")},
			Address: &types.UserAddressConfig{Network: types.StringPtr("regtest")},
			API:     &types.UserAPIConfig{Listen: types.StringPtr(":8080")},
			Batch:   &types.UserBatchConfig{Workers: types.IntPtr(0)},
		})
		assert.NoError(t, err)
	})

	t.Run("收集全部错误", func(t *testing.T) {
		err := ValidateAppConfig(&types.AppConfig{
			Log:     &types.UserLogConfig{Level: types.StringPtr("loud")},
			Address: &types.UserAddressConfig{Network: types.StringPtr("moonnet")},
			API:     &types.UserAPIConfig{Listen: types.StringPtr("8080")},
			Batch:   &types.UserBatchConfig{Workers: types.IntPtr(-1)},
		})
		require.Error(t, err)

		var verrs *ValidationErrors
		require.True(t, errors.As(err, &verrs))
		require.Len(t, verrs.Errors, 4)

		fields := make([]string, 0, len(verrs.Errors))
		for _, e := range verrs.Errors {
			var ve *ValidationError
			require.True(t, errors.As(e, &ve))
			fields = append(fields, ve.Field)
		}
		assert.Equal(t, []string{"log.level", "address", "api.listen", "batch.workers"}, fields)
		assert.Contains(t, err.Error(), "moonnet")
	})
}
