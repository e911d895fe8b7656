package cisco

import (
	"regexp"
	"strings"
)

var (
	statusRegexp = regexp.MustCompile(
		`(?m)^(?P<port>[A-Za-z]+[\d/.]+)\s+(?P<name>.*?)\s+(?P<status>connected|notconnect|disabled|err-disabled|inactive|suspended|monitoring)\s+(?P<vlan>\S+)`,
	)
	macRegexp = regexp.MustCompile(
		`(?m)^[\s*]*(?P<vlan>\d+)\s+(?P<mac>[0-9a-fA-F]{4}\.[0-9a-fA-F]{4}\.[0-9a-fA-F]{4})\s+\S+\s+(?P<port>\S+)\s*$`,
	)
	arpRegexp = regexp.MustCompile(
		`(?m)^Internet\s+(?P<ip>\d{1,3}(?:\.\d{1,3}){3})\s+\S+\s+(?P<mac>[0-9a-fA-F]{4}\.[0-9a-fA-F]{4}\.[0-9a-fA-F]{4})`,
	)
)

// ParseInterfaceStatus parses "show interfaces status" output.
// The Name column doubles as the currently configured description,
// truncated by the device.
func ParseInterfaceStatus(out string) []Interface {
	interfaces := []Interface{}

	for _, match := range statusRegexp.FindAllStringSubmatch(out, -1) {
		iface := Interface{}

		for i, name := range statusRegexp.SubexpNames() {
			switch name {
			case "port":
				iface.Name = match[i]
			case "name":
				iface.Description = strings.TrimSpace(match[i])
			case "status":
				iface.Status = LinkStatus(match[i])
			case "vlan":
				iface.Vlan = match[i]
			}
		}

		interfaces = append(interfaces, iface)
	}

	return interfaces
}

// ParseMacTable parses "show mac address-table vlan N" output
func ParseMacTable(out string) []MacEntry {
	entries := []MacEntry{}

	for _, match := range macRegexp.FindAllStringSubmatch(out, -1) {
		entry := MacEntry{}

		for i, name := range macRegexp.SubexpNames() {
			switch name {
			case "vlan":
				entry.Vlan = match[i]
			case "mac":
				entry.Mac = NormalizeMac(match[i])
			case "port":
				entry.Port = match[i]
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// ParseArpTable parses "show ip arp" output
func ParseArpTable(out string) []ArpEntry {
	entries := []ArpEntry{}

	for _, match := range arpRegexp.FindAllStringSubmatch(out, -1) {
		entry := ArpEntry{}

		for i, name := range arpRegexp.SubexpNames() {
			switch name {
			case "ip":
				entry.IP = match[i]
			case "mac":
				entry.Mac = NormalizeMac(match[i])
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// NormalizeMac lowercases dotted-quad IOS mac notation so entries
// from different devices compare equal
func NormalizeMac(mac string) string {
	return strings.ToLower(strings.TrimSpace(mac))
}
