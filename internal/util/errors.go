package util

import "errors"

// Validation reasons are surfaced verbatim to the caller, in the wording the
// frontend shows. Persistence and delivery failures stay generic.
var (
	ErrNameRequired     = errors.New("名前は必須です")
	ErrSchoolRequired   = errors.New("学校は必須です")
	ErrContactRequired = errors.New("電話番号かメールアドレスのいずれかは必須です")
	ErrEmailInvalid     = errors.New("メールアドレスの形式が正しくありません")
	ErrConsentRequired  = errors.New("同意が必要です")
	ErrSubjectRequired  = errors.New("件名を入力してください")
	ErrContentRequired  = errors.New("お問い合わせ内容を入力してください")
	ErrLeadSaveFailed   = errors.New("保存中にエラーが発生しました")
	ErrMailSendFailed   = errors.New("メール送信に失敗しました。サーバー設定を確認してください。")
)
