// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab_drill"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultRecommendationLimit = 10
	DefaultSessionSize         = 10
	DefaultPointMultiplier     = 10
	DefaultSessionTTL          = 2 * time.Hour
	DefaultJWTExpirationHours  = 24
	DefaultMailerType          = "log"
)
