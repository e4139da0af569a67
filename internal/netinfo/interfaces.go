package netinfo

import (
	"context"
	"net"
	"slices"

	gnet "github.com/shirou/gopsutil/v4/net"

	"lcars/internal/errors"
)

// Address is one configured interface address
type Address struct {
	Address  string `json:"address"`
	Netmask  string `json:"netmask"`
	Internal bool   `json:"internal"`
}

// Interface groups an interface's addresses by family
type Interface struct {
	Name string    `json:"name"`
	IPv4 []Address `json:"ipv4"`
	IPv6 []Address `json:"ipv6"`
}

// Interfaces lists network interfaces that carry at least one address
func Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, errors.NewNetworkError("interfaces", "", "cannot list network interfaces", err)
	}

	var out []Interface
	for _, st := range stats {
		if iface, ok := convertInterface(st); ok {
			out = append(out, iface)
		}
	}
	return out, nil
}

func convertInterface(st gnet.InterfaceStat) (Interface, bool) {
	internal := slices.Contains(st.Flags, "loopback")
	iface := Interface{Name: st.Name}

	for _, a := range st.Addrs {
		ip, ipnet, err := net.ParseCIDR(a.Addr)
		if err != nil {
			ip = net.ParseIP(a.Addr)
			if ip == nil {
				continue
			}
		}
		addr := Address{Address: ip.String(), Internal: internal}
		if ipnet != nil {
			addr.Netmask = net.IP(ipnet.Mask).String()
		}
		if ip.To4() != nil {
			iface.IPv4 = append(iface.IPv4, addr)
		} else {
			iface.IPv6 = append(iface.IPv6, addr)
		}
	}

	if len(iface.IPv4) == 0 && len(iface.IPv6) == 0 {
		return Interface{}, false
	}
	return iface, true
}
