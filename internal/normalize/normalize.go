// Package normalize turns one parsed Suricata alert into a canonical
// SensorEvent plus the single Metric row it was observed with. It is a
// pure function: no I/O, no shared state, deterministic given its
// input (spec.md §4.1, §8 invariant 5).
package normalize

import (
	"fmt"
	"time"

	"github.com/MasLazu/suricata-sensor-agent/internal/suricata"
	"github.com/MasLazu/suricata-sensor-agent/pkg/sensorpb"
)

// suricataTimeLayout is Suricata's EVE timestamp format:
// "2025-12-15T07:46:41.123456+0000".
const suricataTimeLayout = "2006-01-02T15:04:05.000000-0700"

// ParseTimestamp parses a Suricata EVE timestamp into seconds since the
// epoch. An unparseable value yields zero (spec.md §4.1). This is a real
// parser, not the placeholder the reference client shipped with — see
// SPEC_FULL.md §9 open question 2.
func ParseTimestamp(ts string) int64 {
	t, err := time.Parse(suricataTimeLayout, ts)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// Normalize converts a parsed Alert into a SensorEvent and its first
// Metric row. It returns ok=false when the alert has no alert
// sub-record — such a record carries no security-relevant content and
// is silently dropped (spec.md §3 invariant, §8 invariant 6).
func Normalize(alert *suricata.Alert) (event *sensorpb.SensorEvent, metric *sensorpb.Metric, ok bool) {
	if alert.Alert == nil {
		return nil, nil, false
	}
	a := alert.Alert

	eventSeconds := ParseTimestamp(alert.Timestamp)

	event = &sensorpb.SensorEvent{
		SensorID:            alert.Metadata.SensorID,
		SensorVersion:       alert.Metadata.SensorVersion,
		SnortRuleGid:        a.GID,
		SnortRuleSid:        a.SignatureID,
		SnortRuleRev:        a.Rev,
		SnortRule:           fmt.Sprintf("%d:%d:%d", a.GID, a.SignatureID, a.Rev),
		SnortMessage:        a.Signature,
		SnortClassification: a.Category,
		SnortPriority:       a.Severity,
		SnortAction:         a.Action,
		SnortService:        alert.AppProto,
		SnortInterface:      alert.InIface,
		SnortDirection:      alert.Direction,
		SnortProtocol:       alert.Proto,
		SnortTypeOfService:  0,
		EventSeconds:        eventSeconds,
		SnortSeconds:        eventSeconds,
		EventReadAt:         alert.Metadata.ReadAt,
		EventSentAt:         alert.Metadata.SentAt,
		EventReceivedAt:     alert.Metadata.ReceivedAt,
		EventMetricsCount:   1,
	}

	// The hash is computed before any Metric is attached (spec.md
	// §4.1 step 3); Metrics is deliberately left nil/empty here.
	event.EventHashSha256 = Hash(event)

	metric = buildMetric(alert)

	return event, metric, true
}

func buildMetric(alert *suricata.Alert) *sensorpb.Metric {
	m := &sensorpb.Metric{
		SnortTimestamp:  alert.Timestamp,
		SnortSrcAddress: alert.SrcIP,
		SnortDstAddress: alert.DestIP,
		SnortBase64Data: alert.Payload,
		SnortPktGen:     alert.PktSrc,
	}

	if alert.SrcPort != nil {
		m.SnortSrcPort = *alert.SrcPort
	}
	if alert.DestPort != nil {
		m.SnortDstPort = *alert.DestPort
	}
	if alert.PcapCnt != nil {
		m.SnortPktNumber = *alert.PcapCnt
	}
	if alert.ICMPType != nil {
		m.SnortIcmpType = *alert.ICMPType
	}
	if alert.ICMPCode != nil {
		m.SnortIcmpCode = *alert.ICMPCode
	}

	var pktLen int64
	if alert.PktLen != nil {
		pktLen = *alert.PktLen
		m.SnortPktLength = pktLen
	}

	if alert.SrcIP != "" && alert.SrcPort != nil {
		m.SnortSrcAp = fmt.Sprintf("%s:%d", alert.SrcIP, *alert.SrcPort)
	}
	if alert.DestIP != "" && alert.DestPort != nil {
		m.SnortDstAp = fmt.Sprintf("%s:%d", alert.DestIP, *alert.DestPort)
	}

	if alert.Ether != nil {
		m.SnortEthSrc = alert.Ether.SrcMAC
		m.SnortEthDst = alert.Ether.DestMAC
	}

	if alert.Flow != nil {
		if alert.Flow.BytesToServer != nil {
			m.SnortClientBytes = *alert.Flow.BytesToServer
		}
		if alert.Flow.PktsToServer != nil {
			m.SnortClientPkts = *alert.Flow.PktsToServer
		}
		if alert.Flow.BytesToClient != nil {
			m.SnortServerBytes = *alert.Flow.BytesToClient
		}
		if alert.Flow.PktsToClient != nil {
			m.SnortServerPkts = *alert.Flow.PktsToClient
		}
		if alert.Flow.Start != "" {
			m.SnortFlowstartTime = ParseTimestamp(alert.Flow.Start)
		}
	}

	ipVersion := int64(4)
	if alert.IPVersion != nil {
		ipVersion = *alert.IPVersion
	}
	m.SnortEthType = ethType(ipVersion)
	m.SnortEthLen = pktLen + 18

	if tcp, ok := tcpLen(alert.Proto, pktLen); ok {
		m.SnortTcpLen = tcp
	}
	if udp, ok := udpLen(alert.Proto, pktLen); ok {
		m.SnortUdpLength = udp
	}

	return m
}

// ethType returns the synthetic EtherType string for the given IP
// version: 0x86dd for IPv6, 0x800 for everything else, including the
// unset/unknown case (spec.md §4.1 step 4, §8 invariant 9).
func ethType(ipVersion int64) string {
	if ipVersion == 6 {
		return "0x86dd"
	}
	return "0x800"
}

// tcpLen returns pkt_len-34 when proto is TCP and the result is
// strictly positive; otherwise it reports absence (spec.md §8 invariant 8).
func tcpLen(proto string, pktLen int64) (int64, bool) {
	if proto != "TCP" {
		return 0, false
	}
	if v := pktLen - 34; v > 0 {
		return v, true
	}
	return 0, false
}

// udpLen returns pkt_len-20 when proto is UDP and the result is
// strictly positive; otherwise it reports absence (spec.md §8 invariant 8).
func udpLen(proto string, pktLen int64) (int64, bool) {
	if proto != "UDP" {
		return 0, false
	}
	if v := pktLen - 20; v > 0 {
		return v, true
	}
	return 0, false
}
