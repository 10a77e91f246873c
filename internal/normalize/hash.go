package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/MasLazu/suricata-sensor-agent/pkg/sensorpb"
)

// Hash computes the content hash used by the coalescing queue to merge
// repeated alerts (spec.md §4.1 "Hash algorithm", §4.2). It is computed
// over a canonical, field-sorted key=value rendering of the event's
// identifying fields rather than a struct dump (SPEC_FULL.md §4.1): a
// struct's %+v is not guaranteed stable across Go
// versions once field layout changes, and would silently change every
// event's hash on an unrelated struct reorder. Metrics are intentionally
// excluded — the hash identifies the alert, not any one observation of it.
func Hash(e *sensorpb.SensorEvent) string {
	var b strings.Builder

	writeField(&b, "event_seconds", strconv.FormatInt(e.EventSeconds, 10))
	writeField(&b, "sensor_id", e.SensorID)
	writeField(&b, "snort_action", e.SnortAction)
	writeField(&b, "snort_classification", e.SnortClassification)
	writeField(&b, "snort_direction", e.SnortDirection)
	writeField(&b, "snort_interface", e.SnortInterface)
	writeField(&b, "snort_message", e.SnortMessage)
	writeField(&b, "snort_priority", strconv.FormatInt(e.SnortPriority, 10))
	writeField(&b, "snort_protocol", e.SnortProtocol)
	writeField(&b, "snort_rule", e.SnortRule)
	writeField(&b, "snort_rule_gid", strconv.FormatInt(e.SnortRuleGid, 10))
	writeField(&b, "snort_rule_rev", strconv.FormatInt(e.SnortRuleRev, 10))
	writeField(&b, "snort_rule_sid", strconv.FormatInt(e.SnortRuleSid, 10))
	writeField(&b, "snort_seconds", strconv.FormatInt(e.SnortSeconds, 10))
	writeField(&b, "snort_service", e.SnortService)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteByte('\n')
}
