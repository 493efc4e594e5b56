// internal/model/recommendation.go
package model

// RecommendationEntry は復習優先度の計算結果です。保存せず、毎回計算します。
type RecommendationEntry struct {
	Word     *WordCard `json:"word"`
	Priority int       `json:"priority"`
	Reason   string    `json:"reason"`
}
