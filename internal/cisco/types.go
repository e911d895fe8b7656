package cisco

// LinkStatus represents the operational state reported by
// "show interfaces status"
type LinkStatus string

const (
	StatusConnected   LinkStatus = "connected"
	StatusNotConnect  LinkStatus = "notconnect"
	StatusDisabled    LinkStatus = "disabled"
	StatusErrDisabled LinkStatus = "err-disabled"
)

// Down reports whether the port is administratively or error disabled
func (s LinkStatus) Down() bool {
	return s == StatusDisabled || s == StatusErrDisabled
}

// Interface is one row of "show interfaces status"
type Interface struct {
	Name        string
	Description string
	Status      LinkStatus
	Vlan        string
}

// MacEntry is one row of "show mac address-table vlan N"
type MacEntry struct {
	Vlan string
	Mac  string
	Port string
}

// ArpEntry is one row of "show ip arp"
type ArpEntry struct {
	IP  string
	Mac string
}
