package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/database"
)

// PruneOldViews deletes page views older than the retention window.
func PruneOldViews(ctx context.Context, db database.DBTX, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	tag, err := db.Exec(ctx, `DELETE FROM page_views WHERE viewed_at < $1`, cutoff)
	if err != nil {
		slog.Error("analytics: failed to prune page views", "error", err)
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		slog.Info("analytics: pruned page views", "rows", n)
	}
}

func StartPruneLoop(ctx context.Context, db database.DBTX, retention, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("analytics: prune loop shutting down")
				return
			case <-ticker.C:
				PruneOldViews(ctx, db, retention)
			}
		}
	}()
}
