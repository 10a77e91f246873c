// Package suricata defines the wire shape of Suricata EVE JSON alert
// records as they arrive on the ingestion socket.
package suricata

// Metadata is the internal envelope the agent attaches to (or reads
// from) an EVE record. Upstream-provided values are accepted at parse
// time but sensor_id is always overwritten by the agent's configured
// identity (see internal/parser).
type Metadata struct {
	SensorID      string `json:"sensor_id"`
	SensorVersion string `json:"sensor_version"`
	SentAt        int64  `json:"sent_at"`
	ReadAt        int64  `json:"read_at"`
	ReceivedAt    int64  `json:"received_at"`
	HashSHA256    string `json:"hash_sha256"`
}

// Alert is one Suricata EVE JSON line. Most fields are optional in the
// wire format; Go zero values (empty string, 0, nil) stand in for
// "absent" throughout the normalizer.
type Alert struct {
	Metadata  Metadata   `json:"metadata"`
	Timestamp string     `json:"timestamp"`
	EventType string     `json:"event_type,omitempty"`
	FlowID    *int64     `json:"flow_id,omitempty"`
	PcapCnt   *int64     `json:"pcap_cnt,omitempty"`
	SrcIP     string     `json:"src_ip,omitempty"`
	SrcPort   *int64     `json:"src_port,omitempty"`
	DestIP    string     `json:"dest_ip,omitempty"`
	DestPort  *int64     `json:"dest_port,omitempty"`
	Proto     string     `json:"proto,omitempty"`
	IPVersion *int64     `json:"ip_v,omitempty"`
	PktSrc    string     `json:"pkt_src,omitempty"`
	InIface   string     `json:"in_iface,omitempty"`
	ICMPType  *int64     `json:"icmp_type,omitempty"`
	ICMPCode  *int64     `json:"icmp_code,omitempty"`
	Payload   string     `json:"payload,omitempty"`
	PktLen    *int64     `json:"pkt_len,omitempty"`
	Ether     *Ether     `json:"ether,omitempty"`
	TxID      *int64     `json:"tx_id,omitempty"`
	Alert     *AlertInfo `json:"alert,omitempty"`
	HTTP      *HTTP      `json:"http,omitempty"`
	Files     []FileInfo `json:"files,omitempty"`
	AppProto  string     `json:"app_proto,omitempty"`
	Direction string     `json:"direction,omitempty"`
	Flow      *Flow      `json:"flow,omitempty"`
}

// Ether carries layer-2 source/destination addresses.
type Ether struct {
	SrcMAC  string `json:"src_mac,omitempty"`
	DestMAC string `json:"dest_mac,omitempty"`
}

// AlertInfo is the Suricata rule-hit sub-record. Its absence on an Alert
// means the record carries no security-relevant content (see
// internal/normalize).
type AlertInfo struct {
	Action      string        `json:"action"`
	GID         int64         `json:"gid"`
	SignatureID int64         `json:"signature_id"`
	Rev         int64         `json:"rev"`
	Signature   string        `json:"signature"`
	Category    string        `json:"category"`
	Severity    int64         `json:"severity"`
	Metadata    *AlertSigMeta `json:"metadata,omitempty"`
}

// AlertSigMeta holds Suricata rule metadata keywords. These are parsed
// so a well-formed EVE record always deserializes cleanly, but they are
// not projected onto SensorEvent — the canonical wire format has no
// slot reserved for them.
type AlertSigMeta struct {
	AffectedProduct   []string `json:"affected_product,omitempty"`
	AttackTarget      []string `json:"attack_target,omitempty"`
	CreatedAt         []string `json:"created_at,omitempty"`
	Deployment        []string `json:"deployment,omitempty"`
	FormerCategory    []string `json:"former_category,omitempty"`
	SignatureSeverity []string `json:"signature_severity,omitempty"`
	UpdatedAt         []string `json:"updated_at,omitempty"`
}

// HTTP carries the subset of Suricata's http event fields the agent
// tolerates during parsing.
type HTTP struct {
	Hostname        string `json:"hostname,omitempty"`
	HTTPPort        *int64 `json:"http_port,omitempty"`
	URL             string `json:"url,omitempty"`
	HTTPContentType string `json:"http_content_type,omitempty"`
	HTTPMethod      string `json:"http_method,omitempty"`
	Protocol        string `json:"protocol,omitempty"`
	Status          *int64 `json:"status,omitempty"`
	Length          *int64 `json:"length,omitempty"`
}

// FileInfo describes one extracted file referenced by a flow.
type FileInfo struct {
	Filename string `json:"filename,omitempty"`
	Gaps     *bool  `json:"gaps,omitempty"`
	State    string `json:"state,omitempty"`
	Stored   *bool  `json:"stored,omitempty"`
	Size     *int64 `json:"size,omitempty"`
	TxID     *int64 `json:"tx_id,omitempty"`
}

// ApplyDefaults fills in the defaults the reference client applies when
// an EVE line omits the internal metadata envelope entirely (real
// Suricata output never includes it). sensor_id is deliberately left
// alone here — internal/parser always overwrites it with the agent's
// configured identity regardless of what, if anything, arrived on the
// wire.
func (a *Alert) ApplyDefaults() {
	if a.Metadata.SensorVersion == "" {
		a.Metadata.SensorVersion = "unknown"
	}
}

// Flow carries per-direction packet/byte counters and the flow start
// time.
type Flow struct {
	PktsToServer  *int64 `json:"pkts_toserver,omitempty"`
	PktsToClient  *int64 `json:"pkts_toclient,omitempty"`
	BytesToServer *int64 `json:"bytes_toserver,omitempty"`
	BytesToClient *int64 `json:"bytes_toclient,omitempty"`
	Start         string `json:"start,omitempty"`
	SrcIP         string `json:"src_ip,omitempty"`
	DestIP        string `json:"dest_ip,omitempty"`
	SrcPort       *int64 `json:"src_port,omitempty"`
	DestPort      *int64 `json:"dest_port,omitempty"`
}
