package codec

import (
	"net"

	"github.com/shaban/bytewire/wire"
)

// EncodeIpv4Addr writes addr's four octets, with no length prefix: a v4
// address's size is fixed and known to both sides ahead of time.
func EncodeIpv4Addr(out *wire.Output, addr [4]byte) error {
	return out.Write(addr[:])
}

// DecodeIpv4Addr reads four octets.
func DecodeIpv4Addr(in *wire.Input) ([4]byte, error) {
	var addr [4]byte
	if err := in.ReadInto(addr[:]); err != nil {
		return addr, err
	}
	return addr, nil
}

// EncodeIpv6Addr writes addr's sixteen octets.
func EncodeIpv6Addr(out *wire.Output, addr [16]byte) error {
	return out.Write(addr[:])
}

// DecodeIpv6Addr reads sixteen octets.
func DecodeIpv6Addr(in *wire.Input) ([16]byte, error) {
	var addr [16]byte
	if err := in.ReadInto(addr[:]); err != nil {
		return addr, err
	}
	return addr, nil
}

// IpAddrKind tags which variant of Rust's IpAddr a wire value carries.
type IpAddrKind uint8

const (
	IpAddrV4 IpAddrKind = 4
	IpAddrV6 IpAddrKind = 6
)

// EncodeIpAddr writes a variant byte followed by the address's fixed-width
// octets, the oneof rendering of Rust's IpAddr enum.
func EncodeIpAddr(out *wire.Output, ip net.IP) error {
	if v4 := ip.To4(); v4 != nil {
		if err := out.WriteByte(uint8(IpAddrV4)); err != nil {
			return err
		}
		var addr [4]byte
		copy(addr[:], v4)
		return EncodeIpv4Addr(out, addr)
	}
	if err := out.WriteByte(uint8(IpAddrV6)); err != nil {
		return err
	}
	var addr [16]byte
	copy(addr[:], ip.To16())
	return EncodeIpv6Addr(out, addr)
}

// DecodeIpAddr reads a variant byte and the matching address form.
func DecodeIpAddr(in *wire.Input) (net.IP, error) {
	kind, err := in.ReadByte()
	if err != nil {
		return nil, err
	}
	switch IpAddrKind(kind) {
	case IpAddrV4:
		addr, err := DecodeIpv4Addr(in)
		if err != nil {
			return nil, err
		}
		return net.IPv4(addr[0], addr[1], addr[2], addr[3]), nil
	case IpAddrV6:
		addr, err := DecodeIpv6Addr(in)
		if err != nil {
			return nil, err
		}
		return net.IP(addr[:]), nil
	default:
		return nil, NewUnassignedDiscriminant[error, error](kind)
	}
}

// SocketAddrV4 is the Go rendering of Rust's SocketAddrV4: an address and
// a port, in that order, with no length prefix.
type SocketAddrV4 struct {
	Addr [4]byte
	Port uint16
}

// Encode writes the address followed by the port.
func (s SocketAddrV4) Encode(out *wire.Output) error {
	if err := EncodeIpv4Addr(out, s.Addr); err != nil {
		return err
	}
	return EncodeUint16(out, s.Port)
}

// Decode reads an address followed by a port.
func (s *SocketAddrV4) Decode(in *wire.Input) error {
	addr, err := DecodeIpv4Addr(in)
	if err != nil {
		return err
	}
	port, err := DecodeUint16(in)
	if err != nil {
		return err
	}
	s.Addr, s.Port = addr, port
	return nil
}

// SocketAddrV6 is the Go rendering of Rust's SocketAddrV6: an address, a
// port, a flow-info label, and a scope ID, in that order.
type SocketAddrV6 struct {
	Addr     [16]byte
	Port     uint16
	FlowInfo uint32
	ScopeID  uint32
}

// Encode writes the fields in order.
func (s SocketAddrV6) Encode(out *wire.Output) error {
	if err := EncodeIpv6Addr(out, s.Addr); err != nil {
		return err
	}
	if err := EncodeUint16(out, s.Port); err != nil {
		return err
	}
	if err := EncodeUint32(out, s.FlowInfo); err != nil {
		return err
	}
	return EncodeUint32(out, s.ScopeID)
}

// Decode reads the fields in order.
func (s *SocketAddrV6) Decode(in *wire.Input) error {
	addr, err := DecodeIpv6Addr(in)
	if err != nil {
		return err
	}
	port, err := DecodeUint16(in)
	if err != nil {
		return err
	}
	flowInfo, err := DecodeUint32(in)
	if err != nil {
		return err
	}
	scopeID, err := DecodeUint32(in)
	if err != nil {
		return err
	}
	s.Addr, s.Port, s.FlowInfo, s.ScopeID = addr, port, flowInfo, scopeID
	return nil
}

// SocketAddrKind tags which variant of Rust's SocketAddr a wire value
// carries.
type SocketAddrKind uint8

const (
	SocketAddrV4Kind SocketAddrKind = iota
	SocketAddrV6Kind
)

// EncodeSocketAddr writes a variant byte followed by the matching form.
func EncodeSocketAddr(out *wire.Output, v4 *SocketAddrV4, v6 *SocketAddrV6) error {
	if v4 != nil {
		if err := out.WriteByte(uint8(SocketAddrV4Kind)); err != nil {
			return err
		}
		return v4.Encode(out)
	}
	if err := out.WriteByte(uint8(SocketAddrV6Kind)); err != nil {
		return err
	}
	return v6.Encode(out)
}

// DecodeSocketAddr reads a variant byte and the matching form, returning
// whichever of v4/v6 matched (the other is nil).
func DecodeSocketAddr(in *wire.Input) (v4 *SocketAddrV4, v6 *SocketAddrV6, err error) {
	kind, err := in.ReadByte()
	if err != nil {
		return nil, nil, err
	}
	switch SocketAddrKind(kind) {
	case SocketAddrV4Kind:
		var a SocketAddrV4
		if err := a.Decode(in); err != nil {
			return nil, nil, err
		}
		return &a, nil, nil
	case SocketAddrV6Kind:
		var a SocketAddrV6
		if err := a.Decode(in); err != nil {
			return nil, nil, err
		}
		return nil, &a, nil
	default:
		return nil, nil, NewUnassignedDiscriminant[error, error](kind)
	}
}
