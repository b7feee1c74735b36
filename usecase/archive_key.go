package usecase

import (
	"fmt"
	"strings"
	"time"
)

const archiveTimestampLayout = "2006-01-02T15-04-05Z"

// BuildArchiveKey returns the Hive-style partitioned object key for now, e.g.
// raw-data/year=2024/month=03/day=07/hour=15/youtube_trending_stats_2024-03-07T15-04-05Z.json
func BuildArchiveKey(prefix, source string, now time.Time) string {
	now = now.UTC()
	prefix = strings.Trim(prefix, "/")
	key := fmt.Sprintf("year=%04d/month=%02d/day=%02d/hour=%02d/%s_stats_%s.json",
		now.Year(), int(now.Month()), now.Day(), now.Hour(), source, now.Format(archiveTimestampLayout))
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
