// Package main provides localization for the zoomline CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Timeline scale and zoom-region layout engine for video annotation.": "動画アノテーション向けタイムラインスケール・ズームリージョンレイアウトエンジン",

		// Preview command
		"Render a timeline preview image for a video.": "動画のタイムラインプレビュー画像を描画",
		"MP4 file to probe for the duration.":          "メディア長を取得するMP4ファイル",
		"Media duration in milliseconds (alternative to probing a file).": "メディア長（ミリ秒、ファイルの代わりに指定）",
		"Output PNG file path.":                 "出力PNGファイルパス",
		"YAML file with the region set.":        "リージョンセットのYAMLファイル",
		"YAML configuration file.":              "YAML設定ファイル",
		"Output image width (default: 960).":    "出力画像の幅（デフォルト: 960）",
		"Output image height (default: 160).":   "出力画像の高さ（デフォルト: 160）",
		"TTF font for axis labels.":             "軸ラベル用TTFフォント",

		// Scale command
		"Print the scale selected for a duration.": "メディア長に対して選択されるスケールを表示",
		"Durations in seconds.":                    "メディア長（秒）",

		// Place command
		"Find an insertion slot among existing regions.": "既存リージョン間の挿入スロットを探索",
		"Media duration in milliseconds.":                "メディア長（ミリ秒）",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"zoomline version %s":       "zoomline バージョン %s",

		// Logging options
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Runtime messages
		"An input file or --duration-ms is required": "入力ファイルまたは --duration-ms が必要です",
		"Slot found: %dms-%dms":                      "スロットが見つかりました: %dms-%dms",
	})
}
