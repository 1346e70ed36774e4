package handlers

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apitypes "github.com/weisyn/keyaddr/internal/api/http/types"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/types"
)

// AddressHandlers 地址推导API处理器
//
// 📍 端点：
//   - POST /v1/address/derive   种子 → 完整推导结果
//   - GET  /v1/address/:address 地址 → 版本字节、hash160、校验和
type AddressHandlers struct {
	pipeline       crypto.Pipeline
	secretSource   crypto.SecretSource
	addressManager crypto.AddressManager
	logger         log.Logger
}

// NewAddressHandlers 创建地址推导API处理器
func NewAddressHandlers(
	pipeline crypto.Pipeline,
	secretSource crypto.SecretSource,
	addressManager crypto.AddressManager,
	logger log.Logger,
) *AddressHandlers {
	return &AddressHandlers{
		pipeline:       pipeline,
		secretSource:   secretSource,
		addressManager: addressManager,
		logger:         logger,
	}
}

// RegisterRoutes 注册地址路由
func (h *AddressHandlers) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/address")
	group.POST("/derive", h.Derive)
	group.GET("/:address", h.Decode)
}

// Derive 推导地址
//
// 请求体必须且只能给出 seed_text / secret_hex / mnemonic / random 之一。
// reveal=true 时响应附带十六进制种子与24词助记词。
func (h *AddressHandlers) Derive(c *gin.Context) {
	var req apitypes.DeriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(c, http.StatusRequestEntityTooLarge, apitypes.ErrBodyTooLarge, "请求体过大")
			return
		}
		writeError(c, http.StatusBadRequest, apitypes.ErrInvalidRequest, "请求体不是有效的JSON")
		return
	}
	if req.SourceCount() != 1 {
		writeError(c, http.StatusBadRequest, apitypes.ErrInvalidRequest,
			"seed_text、secret_hex、mnemonic、random 必须且只能给出一个")
		return
	}

	seed, result, err := h.resolve(&req)
	defer seed.Wipe()
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var view types.DerivationView
	if req.Reveal {
		view = types.NewDerivationView(result, &seed)
		mnemonic, err := h.secretSource.SecretToMnemonic(seed)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		view.Mnemonic = mnemonic
	} else {
		view = types.NewDerivationView(result, nil)
	}

	h.logger.Debugf("地址推导完成: address=%s deriver=%s reveal=%v", result.Address, result.Deriver, req.Reveal)
	c.JSON(http.StatusOK, view)
}

// resolve 按请求来源得到种子并推导
func (h *AddressHandlers) resolve(req *apitypes.DeriveRequest) (types.Secret, *types.DerivationResult, error) {
	if req.Random {
		return h.pipeline.DeriveRandom()
	}

	var (
		seed types.Secret
		err  error
	)
	switch {
	case req.SeedText != nil:
		seed = h.secretSource.SecretFromText(*req.SeedText)
	case req.SecretHex != nil:
		seed, err = h.secretSource.SecretFromHex(*req.SecretHex)
	case req.Mnemonic != nil:
		seed, err = h.secretSource.SecretFromMnemonic(*req.Mnemonic)
	}
	if err != nil {
		return types.Secret{}, nil, err
	}

	result, err := h.pipeline.Derive(seed)
	if err != nil {
		return seed, nil, err
	}
	return seed, result, nil
}

// Decode 解码地址
//
// 可选查询参数 expected_version（0-255）：给出时额外检查版本字节。
func (h *AddressHandlers) Decode(c *gin.Context) {
	addr := c.Param("address")

	decoded, err := h.addressManager.Decode(addr)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	if raw := c.Query("expected_version"); raw != "" {
		expected, err := strconv.ParseUint(raw, 0, 8)
		if err != nil {
			writeError(c, http.StatusBadRequest, apitypes.ErrInvalidRequest, "expected_version 必须是 0-255 的整数")
			return
		}
		if err := h.addressManager.Validate(addr, byte(expected)); err != nil {
			writeDomainError(c, err)
			return
		}
	}

	payload := decoded.Payload()
	checksum := decoded.Checksum()
	c.JSON(http.StatusOK, apitypes.DecodeResponse{
		Address:      addr,
		Valid:        true,
		Version:      payload.Version(),
		Hash160:      payload.Digest().Hex(),
		Checksum:     hex.EncodeToString(checksum[:]),
		AddressBytes: decoded.Hex(),
	})
}
