package util

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// litePayload 受限校验只关心的两个字段。
type litePayload struct {
	UserID string `json:"userId"`
	Exp    int64  `json:"exp"`
}

// DecodeTokenUnverified 对 token 做结构和过期校验，**不验证签名**。
//
// 会话门卫（页面中间件）运行在拿不到签名库和数据库的受限上下文里，
// 只能做这种廉价预检：按 "." 切成三段、base64url 解出中间的负载、
// 比对 exp 和当前时间。已知缺口：签名被篡改但负载完好的 token 会
// 通过这里的检查，要等到 API 层 ParseToken 验签时才被拒绝 —— 任何
// 只信任门卫结论的路径都是不安全的。
func DecodeTokenUnverified(tokenStr string, now time.Time) (string, bool) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return "", false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}

	var payload litePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", false
	}

	// exp 缺失时视为不过期，和签发侧保持宽松一致
	if payload.Exp != 0 && now.Unix() >= payload.Exp {
		return "", false
	}

	return payload.UserID, true
}
