// Code generated by protoc-gen-gogo from sensor.proto. Hand-maintained
// in this tree rather than regenerated on every build, the same way
// grafana-tempo checks in pkg/tempopb.
// source: sensor.proto

package sensorpb

import (
	proto "github.com/gogo/protobuf/proto"
)

// Metric is one packet/flow observation attached to a SensorEvent.
type Metric struct {
	SnortTimestamp      string `protobuf:"bytes,1,opt,name=snort_timestamp,json=snortTimestamp,proto3" json:"snort_timestamp,omitempty"`
	SnortSrcAddress     string `protobuf:"bytes,2,opt,name=snort_src_address,json=snortSrcAddress,proto3" json:"snort_src_address,omitempty"`
	SnortSrcPort        int64  `protobuf:"varint,3,opt,name=snort_src_port,json=snortSrcPort,proto3" json:"snort_src_port,omitempty"`
	SnortSrcAp          string `protobuf:"bytes,4,opt,name=snort_src_ap,json=snortSrcAp,proto3" json:"snort_src_ap,omitempty"`
	SnortDstAddress     string `protobuf:"bytes,5,opt,name=snort_dst_address,json=snortDstAddress,proto3" json:"snort_dst_address,omitempty"`
	SnortDstPort        int64  `protobuf:"varint,6,opt,name=snort_dst_port,json=snortDstPort,proto3" json:"snort_dst_port,omitempty"`
	SnortDstAp          string `protobuf:"bytes,7,opt,name=snort_dst_ap,json=snortDstAp,proto3" json:"snort_dst_ap,omitempty"`
	SnortClientPkts     int64  `protobuf:"varint,8,opt,name=snort_client_pkts,json=snortClientPkts,proto3" json:"snort_client_pkts,omitempty"`
	SnortClientBytes    int64  `protobuf:"varint,9,opt,name=snort_client_bytes,json=snortClientBytes,proto3" json:"snort_client_bytes,omitempty"`
	SnortServerPkts     int64  `protobuf:"varint,10,opt,name=snort_server_pkts,json=snortServerPkts,proto3" json:"snort_server_pkts,omitempty"`
	SnortServerBytes    int64  `protobuf:"varint,11,opt,name=snort_server_bytes,json=snortServerBytes,proto3" json:"snort_server_bytes,omitempty"`
	SnortFlowstartTime  int64  `protobuf:"varint,12,opt,name=snort_flowstart_time,json=snortFlowstartTime,proto3" json:"snort_flowstart_time,omitempty"`
	SnortEthSrc         string `protobuf:"bytes,13,opt,name=snort_eth_src,json=snortEthSrc,proto3" json:"snort_eth_src,omitempty"`
	SnortEthDst         string `protobuf:"bytes,14,opt,name=snort_eth_dst,json=snortEthDst,proto3" json:"snort_eth_dst,omitempty"`
	SnortEthType        string `protobuf:"bytes,15,opt,name=snort_eth_type,json=snortEthType,proto3" json:"snort_eth_type,omitempty"`
	SnortEthLen         int64  `protobuf:"varint,16,opt,name=snort_eth_len,json=snortEthLen,proto3" json:"snort_eth_len,omitempty"`
	SnortBase64Data     string `protobuf:"bytes,17,opt,name=snort_base64_data,json=snortBase64Data,proto3" json:"snort_base64_data,omitempty"`
	SnortIcmpType       int64  `protobuf:"varint,18,opt,name=snort_icmp_type,json=snortIcmpType,proto3" json:"snort_icmp_type,omitempty"`
	SnortIcmpCode       int64  `protobuf:"varint,19,opt,name=snort_icmp_code,json=snortIcmpCode,proto3" json:"snort_icmp_code,omitempty"`
	SnortVlan           int64  `protobuf:"varint,20,opt,name=snort_vlan,json=snortVlan,proto3" json:"snort_vlan,omitempty"`
	SnortTimeToLive     int64  `protobuf:"varint,21,opt,name=snort_time_to_live,json=snortTimeToLive,proto3" json:"snort_time_to_live,omitempty"`
	SnortPktLength      int64  `protobuf:"varint,22,opt,name=snort_pkt_length,json=snortPktLength,proto3" json:"snort_pkt_length,omitempty"`
	SnortPktNumber      int64  `protobuf:"varint,23,opt,name=snort_pkt_number,json=snortPktNumber,proto3" json:"snort_pkt_number,omitempty"`
	SnortPktGen         string `protobuf:"bytes,24,opt,name=snort_pkt_gen,json=snortPktGen,proto3" json:"snort_pkt_gen,omitempty"`
	SnortTcpLen         int64  `protobuf:"varint,25,opt,name=snort_tcp_len,json=snortTcpLen,proto3" json:"snort_tcp_len,omitempty"`
	SnortUdpLength      int64  `protobuf:"varint,26,opt,name=snort_udp_length,json=snortUdpLength,proto3" json:"snort_udp_length,omitempty"`
	SnortTcpFlags       string `protobuf:"bytes,27,opt,name=snort_tcp_flags,json=snortTcpFlags,proto3" json:"snort_tcp_flags,omitempty"`
}

func (m *Metric) Reset()         { *m = Metric{} }
func (m *Metric) String() string { return proto.CompactTextString(m) }
func (*Metric) ProtoMessage()    {}

// SensorEvent is the canonical outbound record emitted to the collector.
type SensorEvent struct {
	SensorID            string    `protobuf:"bytes,1,opt,name=sensor_id,json=sensorId,proto3" json:"sensor_id,omitempty"`
	SensorVersion        string    `protobuf:"bytes,2,opt,name=sensor_version,json=sensorVersion,proto3" json:"sensor_version,omitempty"`
	SnortRuleGid         int64     `protobuf:"varint,3,opt,name=snort_rule_gid,json=snortRuleGid,proto3" json:"snort_rule_gid,omitempty"`
	SnortRuleSid         int64     `protobuf:"varint,4,opt,name=snort_rule_sid,json=snortRuleSid,proto3" json:"snort_rule_sid,omitempty"`
	SnortRuleRev         int64     `protobuf:"varint,5,opt,name=snort_rule_rev,json=snortRuleRev,proto3" json:"snort_rule_rev,omitempty"`
	SnortRule            string    `protobuf:"bytes,6,opt,name=snort_rule,json=snortRule,proto3" json:"snort_rule,omitempty"`
	SnortMessage         string    `protobuf:"bytes,7,opt,name=snort_message,json=snortMessage,proto3" json:"snort_message,omitempty"`
	SnortClassification  string    `protobuf:"bytes,8,opt,name=snort_classification,json=snortClassification,proto3" json:"snort_classification,omitempty"`
	SnortPriority        int64     `protobuf:"varint,9,opt,name=snort_priority,json=snortPriority,proto3" json:"snort_priority,omitempty"`
	SnortAction          string    `protobuf:"bytes,10,opt,name=snort_action,json=snortAction,proto3" json:"snort_action,omitempty"`
	SnortService         string    `protobuf:"bytes,11,opt,name=snort_service,json=snortService,proto3" json:"snort_service,omitempty"`
	SnortInterface       string    `protobuf:"bytes,12,opt,name=snort_interface,json=snortInterface,proto3" json:"snort_interface,omitempty"`
	SnortDirection       string    `protobuf:"bytes,13,opt,name=snort_direction,json=snortDirection,proto3" json:"snort_direction,omitempty"`
	SnortProtocol        string    `protobuf:"bytes,14,opt,name=snort_protocol,json=snortProtocol,proto3" json:"snort_protocol,omitempty"`
	SnortTypeOfService   int64     `protobuf:"varint,15,opt,name=snort_type_of_service,json=snortTypeOfService,proto3" json:"snort_type_of_service,omitempty"`
	EventSeconds         int64     `protobuf:"varint,16,opt,name=event_seconds,json=eventSeconds,proto3" json:"event_seconds,omitempty"`
	SnortSeconds         int64     `protobuf:"varint,17,opt,name=snort_seconds,json=snortSeconds,proto3" json:"snort_seconds,omitempty"`
	EventReadAt          int64     `protobuf:"varint,18,opt,name=event_read_at,json=eventReadAt,proto3" json:"event_read_at,omitempty"`
	EventSentAt          int64     `protobuf:"varint,19,opt,name=event_sent_at,json=eventSentAt,proto3" json:"event_sent_at,omitempty"`
	EventReceivedAt      int64     `protobuf:"varint,20,opt,name=event_received_at,json=eventReceivedAt,proto3" json:"event_received_at,omitempty"`
	EventHashSha256      string    `protobuf:"bytes,21,opt,name=event_hash_sha256,json=eventHashSha256,proto3" json:"event_hash_sha256,omitempty"`
	EventMetricsCount    int64     `protobuf:"varint,22,opt,name=event_metrics_count,json=eventMetricsCount,proto3" json:"event_metrics_count,omitempty"`
	Metrics              []*Metric `protobuf:"bytes,23,rep,name=metrics,proto3" json:"metrics,omitempty"`
}

func (m *SensorEvent) Reset()         { *m = SensorEvent{} }
func (m *SensorEvent) String() string { return proto.CompactTextString(m) }
func (*SensorEvent) ProtoMessage()    {}

// GetMetrics returns m.Metrics, or nil on a nil receiver — the usual
// generated-accessor nil-safety idiom.
func (m *SensorEvent) GetMetrics() []*Metric {
	if m != nil {
		return m.Metrics
	}
	return nil
}

// StreamAck is the single acknowledgement the collector sends at the
// end of a StreamData call.
type StreamAck struct {
	EventsReceived int64 `protobuf:"varint,1,opt,name=events_received,json=eventsReceived,proto3" json:"events_received,omitempty"`
}

func (m *StreamAck) Reset()         { *m = StreamAck{} }
func (m *StreamAck) String() string { return proto.CompactTextString(m) }
func (*StreamAck) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Metric)(nil), "sensorpb.Metric")
	proto.RegisterType((*SensorEvent)(nil), "sensorpb.SensorEvent")
	proto.RegisterType((*StreamAck)(nil), "sensorpb.StreamAck")
}
