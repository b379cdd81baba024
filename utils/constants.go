package utils

// User-facing error messages. The frontend copy is Japanese; these strings
// must stay aligned with it.
const (
	MsgInvalidUsername   = "有効なユーザー名を提供してください。"
	MsgUserIDRequired    = "ユーザーIDが必要です。"
	MsgQuotaExceeded     = "本日の無料チェック回数の上限に達しました。"
	MsgParseFailure      = "信頼性スコアを解析できませんでした。"
	MsgUpstreamFailure   = "Dify APIエラーが発生しました。"
	MsgUsageFetchFailure = "ユーザー使用状況の取得中にエラーが発生しました。"
	MsgPaymentFailure    = "支払い処理の準備中にエラーが発生しました。"
	MsgMethodNotAllowed  = "Method Not Allowed"
	MsgNotFound          = "Not Found"
)
