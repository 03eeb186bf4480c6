package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Engine level messages (info)
		"Duration loaded: %.3fs":                  "メディア長を読み込みました: %.3f秒",
		"Scale selected: %dms interval, %dms grid": "スケールを選択: 間隔 %dms, グリッド %dms",
		"Normalized %d regions after duration change": "メディア長の変更により %d 個のリージョンを正規化しました",
		"Viewport clamped to %dms-%dms":           "ビューポートを %dms-%dms に制限しました",

		// Region mutations
		"Region %s added at %dms-%dms":     "リージョン %s を %dms-%dms に追加しました",
		"Region %s updated to %dms-%dms":   "リージョン %s を %dms-%dms に更新しました",
		"Placement rejected: no free slot of %dms": "配置が拒否されました: %dms の空きスロットがありません",
		"Mutation rejected for region %s":  "リージョン %s の変更が拒否されました",
		"Placement conflict for new region": "新しいリージョンの配置が競合しました",
		"No space available for a new zoom region": "新しいズームリージョンを配置する空きがありません",

		// Seek
		"Seek to %.3fs": "%.3f秒 へシーク",

		// Preview composition
		"Rendering preview: %dx%d canvas, %d markers, %d regions": "プレビューを描画中: %dx%d キャンバス, マーカー %d 個, リージョン %d 個",
		"Preview saved to %s": "プレビューを %s に保存しました",

		// Probe
		"Probing duration of %s": "%s のメディア長を取得中",
		"Probed duration: %.3fs": "メディア長: %.3f秒",
	})
}
