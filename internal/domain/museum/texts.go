package museum

import "time"

// TranslationRow is an optional override row from the ui_translations
// table. Missing or empty values fall back to the built-in catalog per key.
type TranslationRow struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string    `gorm:"not null;uniqueIndex" json:"key"`
	EN        string    `gorm:"column:en" json:"en"`
	JA        string    `gorm:"column:ja" json:"ja"`
	CreatedAt time.Time `json:"created_at"`
}

func (TranslationRow) TableName() string { return "ui_translations" }

// DefaultTexts returns a copy of the built-in UI text catalog for one
// language.
func DefaultTexts(lang Language) map[string]string {
	src := defaultTextsEN
	if lang == LangJA {
		src = defaultTextsJA
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// MergeTexts overlays translation rows onto the built-in catalog. Only
// known keys with a non-empty value for the language override the default.
func MergeTexts(lang Language, rows []TranslationRow) map[string]string {
	out := DefaultTexts(lang)
	for _, row := range rows {
		if _, known := out[row.Key]; !known {
			continue
		}
		v := row.EN
		if lang == LangJA {
			v = row.JA
		}
		if v != "" {
			out[row.Key] = v
		}
	}
	return out
}

// WelcomeMessage is the curator's greeting turn for a fresh transcript.
func WelcomeMessage(lang Language) string {
	return DefaultTexts(lang)["welcomeMessage"]
}

// ChatApology is the fixed in-transcript message used when the curator AI
// call fails. The transcript never shows a raw error.
func ChatApology(lang Language) string {
	if lang == LangJA {
		return "申し訳ありません。アーカイブへの接続に一時的な問題が発生しています。"
	}
	return "Apologies, I am momentarily unable to access the archives. Please try again."
}

var defaultTextsEN = map[string]string{
	"title":             "ART MUSEUM",
	"subtitle":          "The Grand Archives",
	"intro":             "Wander through centuries of human expression. Each piece is a window into the soul of its era, curated for the discerning intellect.",
	"searchPlaceholder": "Search archives...",
	"noResults":         "No masterpieces found in the archives.",
	"returnGallery":     "Return to Gallery",
	"analyzing":         "THE ARCHIVIST IS ANALYZING...",
	"visualDesc":        "I. Visual Description",
	"techAnalysis":      "II. Technical Analysis",
	"histContext":       "III. Historical Context",
	"symbolism":         "Symbolism",
	"chatTitle":         "THE CURATOR",
	"chatSubtitle":      "AI Powered Guide",
	"chatInput":         "Ask about art history...",
	"chatSend":          "Send",
	"askCurator":        "ASK CURATOR",
	"addArtwork":        "Add Artwork",
	"uploadImage":       "Upload Image",
	"formTitle":         "Artwork Title",
	"formArtist":        "Artist Name",
	"formYear":          "Year Created",
	"formPeriod":        "Art Period",
	"formSubmit":        "Archive Work",
	"formCancel":        "Cancel",
	"welcomeMessage":    "Welcome to Art Museum. I am your curator. How may I assist you in your journey through art history today?",
	"analyzeBtn":        "Analyze",
	"est":               "Est. 2025",
	"filterTitle":       "Refine Collection",
	"filterPeriod":      "Period / Era",
	"filterArtist":      "Artist",
	"filterClear":       "Clear Filters",
	"filterApply":       "View Results",
	"loading":           "Retrieving from Archives...",
	"uploading":         "Archiving new acquisition...",
	"errorLoading":      "Failed to load collection. Please refresh.",
	"errorUploading":    "Failed to archive artwork. Please try again.",
}

var defaultTextsJA = map[string]string{
	"title":             "アートミュージアム",
	"subtitle":          "大回廊アーカイブ",
	"intro":             "数世紀にわたる人類の表現の旅へ。知的好奇心を満たすために厳選された、魂の窓としての名画をご堪能ください。",
	"searchPlaceholder": "収蔵品を検索...",
	"noResults":         "該当する作品は見つかりませんでした。",
	"returnGallery":     "ギャラリーに戻る",
	"analyzing":         "AI学芸員が分析中...",
	"visualDesc":        "I. 視覚的特徴",
	"techAnalysis":      "II. 技法と素材",
	"histContext":       "III. 歴史的背景",
	"symbolism":         "象徴・メタファー",
	"chatTitle":         "主任学芸員",
	"chatSubtitle":      "AI ガイド",
	"chatInput":         "美術史について質問する...",
	"chatSend":          "送信",
	"askCurator":        "AI 学芸員に質問",
	"addArtwork":        "作品を寄贈(追加)",
	"uploadImage":       "画像をアップロード",
	"formTitle":         "作品名",
	"formArtist":        "作者名",
	"formYear":          "制作年",
	"formPeriod":        "芸術様式・時代",
	"formSubmit":        "収蔵する",
	"formCancel":        "キャンセル",
	"welcomeMessage":    "ようこそ、アートミュージアムへ。主任学芸員です。本日はどのようなご案内をいたしましょうか？",
	"analyzeBtn":        "分析する",
	"est":               "2025年",
	"filterTitle":       "収蔵品の絞り込み",
	"filterPeriod":      "時代・様式",
	"filterArtist":      "作者",
	"filterClear":       "条件をクリア",
	"filterApply":       "結果を表示",
	"loading":           "アーカイブを取得中...",
	"uploading":         "新規作品を収蔵処理中...",
	"errorLoading":      "コレクションの読み込みに失敗しました。再読み込みしてください。",
	"errorUploading":    "作品の収蔵に失敗しました。もう一度お試しください。",
}
